package wellness

// Mood source values reported by the combined mood-of-day payload.
const (
	MoodSourceManual   = "manual"
	MoodSourceJournal  = "journal"
	MoodSourceCombined = "combined"
)

// ManualMood is a user's manual mood entry for one day.
// Probability defaults to 1.0 when unset; Score falls back to the emotion
// table when zero.
type ManualMood struct {
	Emotion     string
	Score       int
	Probability float64
}

// JournalEmotionRow is one (emotion, probability) group from a single day's
// journal entries with its occurrence count.
type JournalEmotionRow struct {
	Emotion     string
	Probability float64
	Count       int
}

// DayMood is an aggregated mood for one day.
type DayMood struct {
	Emotion     string  `json:"emotion"`
	Score       float64 `json:"score"`
	Probability float64 `json:"probability"`
	Count       int     `json:"count,omitempty"`
}

// CombinedMood merges the manual entry and journal-derived emotions of one
// calendar day. JournalMood and AverageMood are nil when their inputs are
// absent; Source is empty when the day has no data at all.
type CombinedMood struct {
	JournalMood *DayMood
	AverageMood *DayMood
	Source      string
}

// CombineDayMood computes the mood-of-day view from at most one manual entry
// and zero or more journal emotion rows.
func CombineDayMood(manual *ManualMood, rows []JournalEmotionRow) CombinedMood {
	var combined CombinedMood

	if len(rows) > 0 {
		combined.JournalMood = aggregateJournalRows(rows)
	}

	switch {
	case manual != nil && combined.JournalMood != nil:
		manualScore := float64(manual.Score)
		if manual.Score == 0 {
			manualScore = float64(EmotionScore(manual.Emotion))
		}
		manualProb := manual.Probability
		if manualProb == 0 {
			manualProb = 1.0
		}

		avgScore := (manualScore + combined.JournalMood.Score) / 2
		combined.AverageMood = &DayMood{
			Emotion:     NearestEmotion(avgScore),
			Score:       avgScore,
			Probability: (manualProb + combined.JournalMood.Probability) / 2,
		}
		combined.Source = MoodSourceCombined
	case manual != nil:
		combined.Source = MoodSourceManual
	case combined.JournalMood != nil:
		combined.Source = MoodSourceJournal
	}

	return combined
}

// aggregateJournalRows reduces one day's journal emotion groups into a
// single mood: dominant emotion by count (first-encountered wins ties),
// score and probability as count-weighted averages.
func aggregateJournalRows(rows []JournalEmotionRow) *DayMood {
	total := 0
	dominant := ""
	best := 0
	var scoreSum, probSum float64

	for _, row := range rows {
		total += row.Count
		scoreSum += float64(EmotionScore(row.Emotion)) * float64(row.Count)
		probSum += row.Probability * float64(row.Count)
		if row.Count > best {
			best = row.Count
			dominant = row.Emotion
		}
	}
	if total == 0 {
		return nil
	}

	return &DayMood{
		Emotion:     dominant,
		Score:       scoreSum / float64(total),
		Probability: probSum / float64(total),
		Count:       total,
	}
}
