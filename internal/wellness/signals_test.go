package wellness

import (
	"reflect"
	"testing"
)

func TestAggregateSignalsEmpty(t *testing.T) {
	s := AggregateSignals(nil, nil, nil, 0, nil)

	if s.HasData() {
		t.Error("HasData() = true for empty signals")
	}
	if s.TaskCompletionRate != 0 || s.ConsistencyRate != 0 {
		t.Errorf("rates = %d%%, %d%%, want 0 for empty input", s.TaskCompletionRate, s.ConsistencyRate)
	}
	if s.AverageMoodScore != 0 {
		t.Errorf("AverageMoodScore = %v, want 0", s.AverageMoodScore)
	}
}

func TestAggregateSignals(t *testing.T) {
	journals := []JournalSignal{
		{Emotion: "happy", Probability: 0.9},
		{Emotion: "sad", Probability: 0.7},
		{Emotion: "happy", Probability: 0.8},
	}
	moods := []MoodObservation{
		{Emotion: "calm", Score: 7},
		{Emotion: "anxious"}, // unset score falls back to the emotion table
	}
	tasks := []TaskSignal{
		{Completed: true},
		{Completed: true},
		{Completed: false},
	}
	tracking := []HabitMark{
		{Completed: true},
		{Completed: false},
		{Completed: true},
	}

	s := AggregateSignals(journals, moods, tasks, 2, tracking)

	if !s.HasData() {
		t.Fatal("HasData() = false")
	}
	if s.JournalCount != 3 || s.MoodCount != 2 || s.TaskTotal != 3 || s.HabitCount != 2 {
		t.Errorf("counts = %d/%d/%d/%d, want 3/2/3/2", s.JournalCount, s.MoodCount, s.TaskTotal, s.HabitCount)
	}
	if want := []string{"happy", "sad", "happy"}; !reflect.DeepEqual(s.JournalEmotions, want) {
		t.Errorf("JournalEmotions = %v, want %v", s.JournalEmotions, want)
	}
	// (7 + 4) / 2
	if s.AverageMoodScore != 5.5 {
		t.Errorf("AverageMoodScore = %v, want 5.5", s.AverageMoodScore)
	}
	// 2/3 rounds to 67
	if s.TaskCompleted != 2 || s.TaskCompletionRate != 67 {
		t.Errorf("task rate = %d completed, %d%%, want 2, 67%%", s.TaskCompleted, s.TaskCompletionRate)
	}
	if s.TrackingTotal != 3 || s.TrackingComplete != 2 || s.ConsistencyRate != 67 {
		t.Errorf("tracking = %d/%d at %d%%, want 2/3 at 67%%", s.TrackingComplete, s.TrackingTotal, s.ConsistencyRate)
	}
}

func TestDataPoints(t *testing.T) {
	if got := (Signals{}).DataPoints(); got != 0 {
		t.Errorf("DataPoints() = %d, want 0 for empty signals", got)
	}

	s := Signals{JournalCount: 3, MoodCount: 2, TaskTotal: 4, TrackingTotal: 5}
	if got := s.DataPoints(); got != 14 {
		t.Errorf("DataPoints() = %d, want 14", got)
	}
}

func TestDominantEmotion(t *testing.T) {
	tests := []struct {
		name      string
		emotions  []string
		want      string
		wantCount int
	}{
		{"empty", nil, "", 0},
		{"single", []string{"calm"}, "calm", 1},
		{"clear majority", []string{"sad", "happy", "sad"}, "sad", 2},
		// First encountered wins the tie.
		{"tie", []string{"sad", "happy"}, "sad", 1},
		// The winner is whichever tied emotion appeared first, not
		// whichever reached the shared count first.
		{"late tie", []string{"happy", "sad", "sad", "happy"}, "happy", 2},
		{"late tie reversed", []string{"sad", "happy", "happy", "sad"}, "sad", 2},
		{"majority beats earlier", []string{"happy", "sad", "sad"}, "sad", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, count := DominantEmotion(tt.emotions)
			if got != tt.want || count != tt.wantCount {
				t.Errorf("DominantEmotion(%v) = (%q, %d), want (%q, %d)", tt.emotions, got, count, tt.want, tt.wantCount)
			}
		})
	}
}
