package wellness

import "math"

// emotionOrder is the canonical enumeration of the closed emotion set.
// Scan order matters: nearest-emotion lookups resolve ties in favor of the
// emotion that appears earlier in this list.
var emotionOrder = []string{
	"joy", "happy", "excited", "calm", "neutral", "anxious", "sad", "angry", "fear",
}

// emotionScores maps each emotion to its 1-10 weight. Never mutated after init.
var emotionScores = map[string]int{
	"joy":     10,
	"happy":   9,
	"excited": 8,
	"calm":    7,
	"neutral": 5,
	"anxious": 4,
	"sad":     3,
	"angry":   2,
	"fear":    1,
}

// defaultEmotionScore is used for unknown or missing emotions.
const defaultEmotionScore = 5

var positiveEmotions = map[string]bool{
	"happy": true, "joy": true, "excited": true, "calm": true,
}

// EmotionScore returns the numeric weight for an emotion, defaulting to the
// neutral midpoint for anything outside the closed set.
func EmotionScore(emotion string) int {
	if score, ok := emotionScores[emotion]; ok {
		return score
	}
	return defaultEmotionScore
}

// KnownEmotion reports whether the emotion is part of the closed set.
func KnownEmotion(emotion string) bool {
	_, ok := emotionScores[emotion]
	return ok
}

// IsPositiveEmotion reports whether the emotion belongs to the positive
// bucket used by the rule engine.
func IsPositiveEmotion(emotion string) bool {
	return positiveEmotions[emotion]
}

// NearestEmotion returns the emotion whose score is closest to the given
// value. Ties go to the first match in enumeration order (only a strictly
// smaller distance replaces the current candidate).
func NearestEmotion(score float64) string {
	closest := "neutral"
	minDiff := math.Inf(1)
	for _, emotion := range emotionOrder {
		diff := math.Abs(float64(emotionScores[emotion]) - score)
		if diff < minDiff {
			minDiff = diff
			closest = emotion
		}
	}
	return closest
}
