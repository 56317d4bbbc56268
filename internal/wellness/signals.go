package wellness

import "math"

// JournalSignal is one journal entry's detected emotion within the window.
type JournalSignal struct {
	Emotion     string
	Probability float64
}

// MoodObservation is one manual mood entry within the window,
// most-recent-first. Score is the entry's asserted score; zero means unset.
type MoodObservation struct {
	Emotion string
	Score   int
}

// TaskSignal is one task created within the window.
type TaskSignal struct {
	Completed bool
}

// HabitMark is one habit-tracking row within the window.
type HabitMark struct {
	Completed bool
}

// Signals holds the per-user, per-window summary every insight strategy
// consumes. Computed fresh on each request; never persisted.
type Signals struct {
	JournalCount    int
	JournalEmotions []string

	MoodCount        int
	RecentEmotions   []string
	AverageMoodScore float64

	TaskTotal          int
	TaskCompleted      int
	TaskCompletionRate int

	HabitCount       int
	TrackingTotal    int
	TrackingComplete int
	ConsistencyRate  int
}

// HasData reports whether any signal category contains at least one row.
// A user with no data at all gets the starter insight payload instead of
// the rule engine.
func (s Signals) HasData() bool {
	return s.JournalCount > 0 || s.MoodCount > 0 || s.TaskTotal > 0 || s.TrackingTotal > 0
}

// DataPoints is the total number of raw observations behind the signals,
// reported alongside generated insights.
func (s Signals) DataPoints() int {
	return s.JournalCount + s.MoodCount + s.TaskTotal + s.TrackingTotal
}

// AggregateSignals reduces raw per-signal collections into summary counts
// and rates. Pure function: no I/O, no side effects. The caller fetches the
// collections; habits is the number of habits the user tracks.
func AggregateSignals(journals []JournalSignal, moods []MoodObservation, tasks []TaskSignal, habits int, tracking []HabitMark) Signals {
	s := Signals{
		JournalCount: len(journals),
		MoodCount:    len(moods),
		TaskTotal:    len(tasks),
		HabitCount:   habits,
	}

	for _, j := range journals {
		if j.Emotion != "" {
			s.JournalEmotions = append(s.JournalEmotions, j.Emotion)
		}
	}

	var scoreSum float64
	for _, m := range moods {
		s.RecentEmotions = append(s.RecentEmotions, m.Emotion)
		if m.Score > 0 {
			scoreSum += float64(m.Score)
		} else {
			scoreSum += float64(EmotionScore(m.Emotion))
		}
	}
	if len(moods) > 0 {
		s.AverageMoodScore = scoreSum / float64(len(moods))
	}

	for _, t := range tasks {
		if t.Completed {
			s.TaskCompleted++
		}
	}
	s.TaskCompletionRate = ratePercent(s.TaskCompleted, s.TaskTotal)

	s.TrackingTotal = len(tracking)
	for _, h := range tracking {
		if h.Completed {
			s.TrackingComplete++
		}
	}
	s.ConsistencyRate = ratePercent(s.TrackingComplete, s.TrackingTotal)

	return s
}

// DominantEmotion returns the emotion with the highest occurrence count and
// that count. Ties on the final count go to the emotion that first appears
// earlier in the input. Returns ("", 0) for an empty input.
func DominantEmotion(emotions []string) (string, int) {
	counts := make(map[string]int, len(emotions))
	for _, e := range emotions {
		counts[e]++
	}

	// Scanning in input order with a strict comparison keeps the
	// earliest-seen emotion among those sharing the top count.
	dominant := ""
	best := 0
	for _, e := range emotions {
		if counts[e] > best {
			best = counts[e]
			dominant = e
		}
	}
	return dominant, best
}

// ratePercent returns completed/total as a rounded integer percentage,
// guarding the total == 0 case.
func ratePercent(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}
