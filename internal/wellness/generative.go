package wellness

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// TextGenerator is the single external boundary of the insight engine: it
// takes a prompt and returns free-form text. Implementations must honor the
// context deadline.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Profile is optional user context used only to enrich the generative
// prompt. A nil or empty profile never blocks either strategy.
type Profile struct {
	Name       string
	Age        int
	Gender     string
	Pronouns   string
	Occupation string
	Location   string
	Interests  []string
	Bio        string
}

var (
	// ErrNoJSONArray means the provider response contained no [...] span.
	ErrNoJSONArray = errors.New("response contains no JSON array")
	// ErrMalformedInsights means the array did not decode into insight items.
	ErrMalformedInsights = errors.New("response array is not a list of insight items")
)

// BuildInsightPrompt serializes aggregated signals and optional profile
// context into the generative prompt. Only filled profile fields are
// included.
func BuildInsightPrompt(s Signals, profile *Profile) string {
	var b strings.Builder

	b.WriteString("You are a compassionate wellness AI analyzing a user's activity data to provide actionable insights.\n\n")

	if lines := profileLines(profile); len(lines) > 0 {
		b.WriteString("User Profile:\n")
		for _, line := range lines {
			b.WriteString(line)
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}

	b.WriteString("User Activity Data (last 14 days):\n")
	fmt.Fprintf(&b, "- Journal entries: %d. Recent emotions: %s\n", s.JournalCount, joinOrNone(s.JournalEmotions, 10))
	fmt.Fprintf(&b, "- Manual mood entries: %d. Average mood score: %.1f/10\n", s.MoodCount, s.AverageMoodScore)
	fmt.Fprintf(&b, "- Task completion: %d/%d (%d%% completion rate)\n", s.TaskCompleted, s.TaskTotal, s.TaskCompletionRate)
	fmt.Fprintf(&b, "- Habit tracking: %d habits, %d completed days (%d%% consistency)\n", s.HabitCount, s.TrackingComplete, s.ConsistencyRate)

	b.WriteString(`
Generate exactly 3 personalized, actionable insights. Each insight should
reference the user's actual behavior patterns, provide encouragement or
advice, and stay under 3 sentences.

Format as a JSON array only, no explanations:
[{"icon": "emoji", "title": "Short Title", "text": "insight text"}]`)

	return b.String()
}

func profileLines(p *Profile) []string {
	if p == nil {
		return nil
	}
	var lines []string
	if p.Name != "" {
		line := "- Name: " + p.Name
		if p.Age > 0 {
			line += fmt.Sprintf(", Age: %d", p.Age)
		}
		lines = append(lines, line)
	}
	if p.Gender != "" || p.Pronouns != "" {
		line := "- "
		if p.Gender != "" {
			line += "Gender: " + p.Gender
		}
		if p.Pronouns != "" {
			line += " (" + p.Pronouns + ")"
		}
		lines = append(lines, line)
	}
	if p.Occupation != "" {
		lines = append(lines, "- Occupation: "+p.Occupation)
	}
	if p.Location != "" {
		lines = append(lines, "- Location: "+p.Location)
	}
	if len(p.Interests) > 0 {
		lines = append(lines, "- Interests: "+strings.Join(p.Interests, ", "))
	}
	if p.Bio != "" {
		lines = append(lines, `- Bio: "`+p.Bio+`"`)
	}
	return lines
}

func joinOrNone(items []string, limit int) string {
	if len(items) == 0 {
		return "none"
	}
	if len(items) > limit {
		items = items[:limit]
	}
	return strings.Join(items, ", ")
}

// ExtractJSONArray locates the first [...] span in free text. Providers wrap
// the array in prose or code fences; everything outside the span is ignored.
func ExtractJSONArray(text string) (string, bool) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

// ParseInsightItems defensively decodes a provider response into insight
// items. The result is tagged by the returned error: callers never see a
// panic or a partially-valid list.
func ParseInsightItems(text string) ([]InsightItem, error) {
	fragment, ok := ExtractJSONArray(text)
	if !ok {
		return nil, ErrNoJSONArray
	}

	var items []InsightItem
	if err := json.Unmarshal([]byte(fragment), &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInsights, err)
	}
	if len(items) == 0 {
		return nil, ErrMalformedInsights
	}
	for _, item := range items {
		if item.Title == "" || item.Text == "" {
			return nil, ErrMalformedInsights
		}
	}
	return items, nil
}
