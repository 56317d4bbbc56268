package wellness

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

// stubGenerator returns a canned response or error.
type stubGenerator struct {
	text string
	err  error
}

func (s *stubGenerator) Generate(_ context.Context, _ string) (string, error) {
	return s.text, s.err
}

func sampleSignals() Signals {
	return Signals{
		JournalCount:       2,
		JournalEmotions:    []string{"happy", "happy"},
		MoodCount:          1,
		RecentEmotions:     []string{"happy"},
		AverageMoodScore:   9,
		TaskTotal:          4,
		TaskCompleted:      3,
		TaskCompletionRate: 75,
	}
}

func TestGenerateInsightsNoData(t *testing.T) {
	c := NewCoordinator(&stubGenerator{text: `[{"icon":"x","title":"t","text":"b"}]`})
	items, source := c.GenerateInsights(context.Background(), Signals{}, nil, true)

	if source != SourceDefault {
		t.Errorf("source = %q, want %q", source, SourceDefault)
	}
	if !reflect.DeepEqual(items, StarterInsights()) {
		t.Errorf("items = %v, want starter payload", items)
	}
}

func TestGenerateInsightsGenerative(t *testing.T) {
	response := `Here are your insights:
[
  {"icon": "🌟", "title": "One", "text": "first"},
  {"icon": "🌙", "title": "Two", "text": "second"},
  {"icon": "☀️", "title": "Three", "text": "third"}
]
Hope that helps!`
	c := NewCoordinator(&stubGenerator{text: response})

	items, source := c.GenerateInsights(context.Background(), sampleSignals(), nil, true)

	if source != SourceGenerative {
		t.Fatalf("source = %q, want %q", source, SourceGenerative)
	}
	if len(items) != 3 || items[0].Title != "One" || items[2].Text != "third" {
		t.Errorf("items = %v", items)
	}
}

func TestGenerateInsightsPadsShortGenerativeList(t *testing.T) {
	c := NewCoordinator(&stubGenerator{text: `[{"icon":"🌟","title":"Only","text":"one"}]`})
	items, source := c.GenerateInsights(context.Background(), sampleSignals(), nil, true)

	if source != SourceGenerative {
		t.Fatalf("source = %q, want %q", source, SourceGenerative)
	}
	if len(items) != 3 {
		t.Fatalf("len = %d, want 3", len(items))
	}
	if items[1] != fillerInsights[1] || items[2] != fillerInsights[2] {
		t.Errorf("short list not padded with fillers: %v", items)
	}
}

func TestGenerateInsightsFallsBackOnError(t *testing.T) {
	s := sampleSignals()
	c := NewCoordinator(&stubGenerator{err: errors.New("provider down")})

	items, source := c.GenerateInsights(context.Background(), s, nil, true)

	if source != SourceRules {
		t.Errorf("source = %q, want %q", source, SourceRules)
	}
	if !reflect.DeepEqual(items, RuleBasedInsights(s)) {
		t.Errorf("fallback items differ from rule engine output: %v", items)
	}
}

func TestGenerateInsightsFallsBackOnMalformedOutput(t *testing.T) {
	tests := []string{
		"no array here",
		"[1, 2, 3]",
		"[]",
		`[{"icon":"x","title":"","text":"missing title"}]`,
	}
	s := sampleSignals()
	want := RuleBasedInsights(s)

	for _, text := range tests {
		c := NewCoordinator(&stubGenerator{text: text})
		items, source := c.GenerateInsights(context.Background(), s, nil, true)
		if source != SourceRules {
			t.Errorf("response %q: source = %q, want %q", text, source, SourceRules)
		}
		if !reflect.DeepEqual(items, want) {
			t.Errorf("response %q: items differ from rule engine output", text)
		}
	}
}

func TestGenerateInsightsSkipsGenerativeWhenDisabled(t *testing.T) {
	s := sampleSignals()
	c := NewCoordinator(&stubGenerator{text: `[{"icon":"🌟","title":"One","text":"first"}]`})

	_, source := c.GenerateInsights(context.Background(), s, nil, false)
	if source != SourceRules {
		t.Errorf("source = %q, want %q with generative disabled", source, SourceRules)
	}
}

func TestGenerateInsightsNilGenerator(t *testing.T) {
	s := sampleSignals()
	c := NewCoordinator(nil)

	items, source := c.GenerateInsights(context.Background(), s, nil, true)
	if source != SourceRules {
		t.Errorf("source = %q, want %q", source, SourceRules)
	}
	if len(items) != 3 {
		t.Errorf("len = %d, want 3", len(items))
	}
}
