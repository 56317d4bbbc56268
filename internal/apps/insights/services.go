package insights

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wellspringhq/wellspring-backend/internal/wellness"
)

// Recommendation is one card of the recommendations payload.
type Recommendation struct {
	Type    string `json:"type"`
	Icon    string `json:"icon"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// promptsByEmotion backs the rule-based journaling prompt rotation.
var promptsByEmotion = map[string][]string{
	"happy": {
		"What made you smile today? Let's capture that joy! 🌻",
		"Describe a moment you felt proud of yourself ✨",
		"What are you grateful for right now? 🙏",
	},
	"sad": {
		"What's weighing on your heart today? It's okay to share 💙",
		"What would help you feel a little better right now?",
		"What's one small thing that brought you comfort today? ☁️",
	},
	"anxious": {
		"What's on your mind? Let's unpack those thoughts 🌊",
		"What would you tell a friend feeling the same way?",
		"What's one thing you can control right now? 🧘",
	},
	"calm": {
		"What brought you peace today? 🕊️",
		"Describe this moment of calm - what do you see, hear, feel?",
		"What helps you feel grounded? 🌿",
	},
	"neutral": {
		"What's something interesting that happened today? 🤔",
		"What are you looking forward to? 🌅",
		"What's one thing you learned recently? 📚",
	},
}

// Service produces daily insights, journaling prompts, and recommendations.
type Service struct {
	gatherer    *Gatherer
	coordinator *wellness.Coordinator
	gen         wellness.TextGenerator
}

func NewService(gatherer *Gatherer, coordinator *wellness.Coordinator, gen wellness.TextGenerator) *Service {
	return &Service{gatherer: gatherer, coordinator: coordinator, gen: gen}
}

// Insights runs the two-week insight engine with the user's profile context.
// The last return value is the number of raw observations the insights were
// derived from.
func (s *Service) Insights(ctx context.Context, userID uuid.UUID) ([]wellness.InsightItem, string, int, error) {
	signals, err := s.gatherer.Gather(userID, 14)
	if err != nil {
		return nil, "", 0, err
	}

	profile, err := s.gatherer.ProfileFor(userID)
	if err != nil {
		profile = nil
	}

	items, source := s.coordinator.GenerateInsights(ctx, signals, profile, true)
	return items, source, signals.DataPoints(), nil
}

// Prompts returns three journaling prompts for today. The generative path
// gets one attempt; the fallback picks from the dominant recent emotion's
// prompt set, rotated by a date seed so prompts vary day to day.
func (s *Service) Prompts(ctx context.Context, userID uuid.UUID) ([]string, error) {
	emotions, err := s.gatherer.RecentEmotions(userID, 5)
	if err != nil {
		return nil, err
	}

	if s.gen != nil {
		if prompts, ok := s.tryGenerativePrompts(ctx, emotions); ok {
			return prompts, nil
		}
	}

	dominant, _ := wellness.DominantEmotion(emotions)
	base, ok := promptsByEmotion[dominant]
	if !ok {
		base = promptsByEmotion["neutral"]
	}

	seed := dateSeed(time.Now())
	return []string{
		base[seed%len(base)],
		base[(seed+1)%len(base)],
		base[(seed+2)%len(base)],
	}, nil
}

func (s *Service) tryGenerativePrompts(ctx context.Context, emotions []string) ([]string, bool) {
	recent := strings.Join(emotions, ", ")
	if recent == "" {
		recent = "neutral"
	}

	prompt := fmt.Sprintf(`You are a compassionate journaling coach. Based on the user's recent emotions (%s), generate exactly 3 thoughtful journaling prompts for today. Make them personal, engaging, and emotionally supportive. Format as a JSON array of strings only, no explanations. Example: ["What brought you joy today? 🌻", "..."]`, recent)

	text, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		slog.Warn("generative prompts failed, falling back to rotation", "error", err)
		return nil, false
	}

	fragment, ok := wellness.ExtractJSONArray(text)
	if !ok {
		return nil, false
	}
	var prompts []string
	if err := json.Unmarshal([]byte(fragment), &prompts); err != nil || len(prompts) == 0 {
		return nil, false
	}
	if len(prompts) > 3 {
		prompts = prompts[:3]
	}
	return prompts, true
}

// Recommendations returns static wellness cards tuned to the given mood.
func (s *Service) Recommendations(mood string) []Recommendation {
	affirmation := "You're doing amazing! Keep up the great energy!"
	if mood == "sad" {
		affirmation = "It's okay to feel sad. Be gentle with yourself. Tomorrow is a new day."
	}

	return []Recommendation{
		{
			Type:    "affirmation",
			Icon:    "✨",
			Title:   "Daily Affirmation",
			Content: affirmation,
		},
		{
			Type:    "habit",
			Icon:    "🎯",
			Title:   "Habit Suggestion",
			Content: `Based on your patterns, try adding a "5-minute meditation" habit in the evening.`,
		},
	}
}

// dateSeed derives a small rotation seed from the calendar date.
func dateSeed(now time.Time) int {
	n, _ := strconv.Atoi(now.Format("20060102"))
	return n % 10
}
