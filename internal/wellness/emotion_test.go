package wellness

import "testing"

func TestEmotionScore(t *testing.T) {
	tests := []struct {
		emotion string
		want    int
	}{
		{"joy", 10},
		{"happy", 9},
		{"excited", 8},
		{"calm", 7},
		{"neutral", 5},
		{"anxious", 4},
		{"sad", 3},
		{"angry", 2},
		{"fear", 1},
		{"bewildered", 5},
		{"", 5},
	}
	for _, tt := range tests {
		if got := EmotionScore(tt.emotion); got != tt.want {
			t.Errorf("EmotionScore(%q) = %d, want %d", tt.emotion, got, tt.want)
		}
	}
}

func TestNearestEmotion(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  string
	}{
		{"exact joy", 10, "joy"},
		{"exact fear", 1, "fear"},
		{"below range", 0, "fear"},
		{"above range", 12, "joy"},
		{"closest neutral", 5.4, "neutral"},
		// 6 is equidistant from calm (7) and neutral (5); the earlier
		// enumeration entry wins.
		{"tie calm over neutral", 6, "calm"},
		// 8.5 is equidistant from happy (9) and excited (8).
		{"tie happy over excited", 8.5, "happy"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NearestEmotion(tt.score); got != tt.want {
				t.Errorf("NearestEmotion(%v) = %q, want %q", tt.score, got, tt.want)
			}
		})
	}
}

func TestIsPositiveEmotion(t *testing.T) {
	for _, e := range []string{"happy", "joy", "excited", "calm"} {
		if !IsPositiveEmotion(e) {
			t.Errorf("IsPositiveEmotion(%q) = false, want true", e)
		}
	}
	for _, e := range []string{"sad", "anxious", "angry", "fear", "neutral", ""} {
		if IsPositiveEmotion(e) {
			t.Errorf("IsPositiveEmotion(%q) = true, want false", e)
		}
	}
}

func TestKnownEmotion(t *testing.T) {
	if !KnownEmotion("calm") {
		t.Error("KnownEmotion(calm) = false, want true")
	}
	if KnownEmotion("melancholy") {
		t.Error("KnownEmotion(melancholy) = true, want false")
	}
}
