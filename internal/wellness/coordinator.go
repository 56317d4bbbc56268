package wellness

import (
	"context"
	"log/slog"
)

// Provenance tags identifying which strategy produced an insight payload.
const (
	SourceGenerative = "generative"
	SourceRules      = "rules"
	SourceDefault    = "default"
)

// Coordinator selects between the generative and rule-based insight
// strategies. The generative path gets one attempt; any failure (missing
// configuration, provider error, malformed output) falls through to the
// rule engine, which is total. GenerateInsights never returns an error.
type Coordinator struct {
	gen TextGenerator
}

// NewCoordinator wires a coordinator around an optional text generator.
// A nil generator means the provider is not configured and every request
// takes the rule-based path.
func NewCoordinator(gen TextGenerator) *Coordinator {
	return &Coordinator{gen: gen}
}

// GenerateInsights returns exactly three insight items and the provenance
// of the strategy that produced them.
func (c *Coordinator) GenerateInsights(ctx context.Context, s Signals, profile *Profile, useGenerative bool) ([]InsightItem, string) {
	if !s.HasData() {
		return StarterInsights(), SourceDefault
	}

	if useGenerative && c.gen != nil {
		if items, ok := c.tryGenerative(ctx, s, profile); ok {
			return items, SourceGenerative
		}
	}

	return RuleBasedInsights(s), SourceRules
}

// tryGenerative runs the single generative attempt and validates its
// output. Failures are logged and converted into a fallback decision.
func (c *Coordinator) tryGenerative(ctx context.Context, s Signals, profile *Profile) ([]InsightItem, bool) {
	text, err := c.gen.Generate(ctx, BuildInsightPrompt(s, profile))
	if err != nil {
		slog.Warn("generative insights failed, falling back to rules", "error", err)
		return nil, false
	}

	items, err := ParseInsightItems(text)
	if err != nil {
		slog.Warn("generative insights unparseable, falling back to rules", "error", err)
		return nil, false
	}

	return normalizeInsights(items), true
}
