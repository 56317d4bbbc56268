package wellness

import (
	"errors"
	"strings"
	"testing"
)

func TestExtractJSONArray(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{"bare array", `[{"a":1}]`, `[{"a":1}]`, true},
		{"prose wrapped", "Sure! [1,2] there you go", "[1,2]", true},
		{"code fence", "```json\n[true]\n```", "[true]", true},
		{"no array", "nothing here", "", false},
		{"only open bracket", "start [ end", "", false},
		{"reversed brackets", "] before [", "", false},
		{"spans widest range", "[1] and [2]", "[1] and [2]", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractJSONArray(tt.text)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ExtractJSONArray(%q) = (%q, %v), want (%q, %v)", tt.text, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestParseInsightItems(t *testing.T) {
	items, err := ParseInsightItems(`ok: [{"icon":"🌟","title":"T","text":"B"}]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].Title != "T" {
		t.Errorf("items = %v", items)
	}
}

func TestParseInsightItemsErrors(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr error
	}{
		{"no array", "plain text", ErrNoJSONArray},
		{"not objects", "[1, 2]", ErrMalformedInsights},
		{"empty array", "[]", ErrMalformedInsights},
		{"missing title", `[{"icon":"x","title":"","text":"b"}]`, ErrMalformedInsights},
		{"missing text", `[{"icon":"x","title":"a","text":""}]`, ErrMalformedInsights},
		{"invalid json", `[{"icon":}]`, ErrMalformedInsights},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseInsightItems(tt.text); !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseInsightItems(%q) error = %v, want %v", tt.text, err, tt.wantErr)
			}
		})
	}
}

func TestBuildInsightPrompt(t *testing.T) {
	s := Signals{
		JournalCount:       2,
		JournalEmotions:    []string{"happy", "calm"},
		MoodCount:          3,
		AverageMoodScore:   7.5,
		TaskTotal:          4,
		TaskCompleted:      3,
		TaskCompletionRate: 75,
		HabitCount:         2,
		TrackingComplete:   5,
		ConsistencyRate:    83,
	}

	prompt := BuildInsightPrompt(s, nil)
	if strings.Contains(prompt, "User Profile:") {
		t.Error("nil profile should not produce a profile section")
	}
	for _, want := range []string{"happy, calm", "7.5/10", "3/4 (75% completion rate)", "2 habits, 5 completed days (83% consistency)"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}

	profile := &Profile{Name: "Ada", Age: 30, Occupation: "engineer", Interests: []string{"running", "chess"}}
	prompt = BuildInsightPrompt(s, profile)
	for _, want := range []string{"User Profile:", "Name: Ada, Age: 30", "Occupation: engineer", "Interests: running, chess"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
