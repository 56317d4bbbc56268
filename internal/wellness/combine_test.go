package wellness

import (
	"math"
	"testing"
)

func TestCombineDayMoodEmpty(t *testing.T) {
	got := CombineDayMood(nil, nil)
	if got.Source != "" || got.JournalMood != nil || got.AverageMood != nil {
		t.Errorf("CombineDayMood(nil, nil) = %+v, want empty", got)
	}
}

func TestCombineDayMoodManualOnly(t *testing.T) {
	got := CombineDayMood(&ManualMood{Emotion: "happy", Score: 9, Probability: 1}, nil)
	if got.Source != MoodSourceManual {
		t.Errorf("Source = %q, want %q", got.Source, MoodSourceManual)
	}
	if got.JournalMood != nil || got.AverageMood != nil {
		t.Error("manual-only day should have no journal or average mood")
	}
}

func TestCombineDayMoodJournalOnly(t *testing.T) {
	rows := []JournalEmotionRow{
		{Emotion: "happy", Probability: 0.8, Count: 2},
		{Emotion: "sad", Probability: 0.6, Count: 1},
	}
	got := CombineDayMood(nil, rows)

	if got.Source != MoodSourceJournal {
		t.Fatalf("Source = %q, want %q", got.Source, MoodSourceJournal)
	}
	jm := got.JournalMood
	if jm == nil {
		t.Fatal("JournalMood = nil")
	}
	if jm.Emotion != "happy" {
		t.Errorf("dominant emotion = %q, want happy", jm.Emotion)
	}
	// (9*2 + 3*1) / 3
	if jm.Score != 7 {
		t.Errorf("Score = %v, want 7", jm.Score)
	}
	// (0.8*2 + 0.6*1) / 3
	if math.Abs(jm.Probability-0.7333333333333334) > 1e-9 {
		t.Errorf("Probability = %v, want ~0.7333", jm.Probability)
	}
	if jm.Count != 3 {
		t.Errorf("Count = %d, want 3", jm.Count)
	}
}

func TestCombineDayMoodBothSources(t *testing.T) {
	// Manual happy with unset score and probability; journal says sad.
	manual := &ManualMood{Emotion: "happy"}
	rows := []JournalEmotionRow{{Emotion: "sad", Probability: 0.5, Count: 1}}

	got := CombineDayMood(manual, rows)

	if got.Source != MoodSourceCombined {
		t.Fatalf("Source = %q, want %q", got.Source, MoodSourceCombined)
	}
	avg := got.AverageMood
	if avg == nil {
		t.Fatal("AverageMood = nil")
	}
	// Manual score falls back to 9 (happy), journal score is 3; mean is 6,
	// which resolves to calm (the tie against neutral goes to the earlier
	// enumeration entry).
	if avg.Score != 6 {
		t.Errorf("Score = %v, want 6", avg.Score)
	}
	if avg.Emotion != "calm" {
		t.Errorf("Emotion = %q, want calm", avg.Emotion)
	}
	// Manual probability defaults to 1.0; (1.0 + 0.5) / 2.
	if avg.Probability != 0.75 {
		t.Errorf("Probability = %v, want 0.75", avg.Probability)
	}
}

func TestCombineDayMoodJournalTie(t *testing.T) {
	// Equal counts: the row encountered first wins.
	rows := []JournalEmotionRow{
		{Emotion: "anxious", Probability: 0.9, Count: 2},
		{Emotion: "calm", Probability: 0.9, Count: 2},
	}
	got := CombineDayMood(nil, rows)
	if got.JournalMood.Emotion != "anxious" {
		t.Errorf("dominant emotion = %q, want anxious", got.JournalMood.Emotion)
	}
}
