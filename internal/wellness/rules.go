package wellness

import "fmt"

// InsightItem is one natural-language insight. Ephemeral; regenerated on
// every request.
type InsightItem struct {
	Icon  string `json:"icon"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// insightCount is the fixed size of every insight response.
const insightCount = 3

// fillerInsights pad a response when fewer than three rules fired, appended
// in fixed round-robin order.
var fillerInsights = []InsightItem{
	{Icon: "💫", Title: "Keep Going", Text: "Continue tracking your moods and journaling. The more data you provide, the better insights we can offer about your emotional patterns and wellbeing."},
	{Icon: "🧘", Title: "Mindful Moments", Text: "Taking time for mindfulness helps you stay grounded. Even 5 minutes makes a difference."},
	{Icon: "💚", Title: "Small Wins", Text: "Remember to celebrate small wins. Progress is progress, no matter how small."},
}

// StarterInsights is the fixed payload for users with no data in any signal
// category.
func StarterInsights() []InsightItem {
	return []InsightItem{
		{Icon: "✨", Title: "Start Your Journey", Text: "Begin by tracking your mood daily. Regular check-ins help you understand emotional patterns and trends over time."},
		{Icon: "📝", Title: "Journal Your Feelings", Text: "Writing about your emotions provides deeper insights. Our AI will analyze your entries and help you understand what affects your mood."},
		{Icon: "🎯", Title: "Build Healthy Habits", Text: "Track habits and tasks to see how your daily actions influence your emotional well-being."},
	}
}

// RuleBasedInsights deterministically derives insights from aggregated
// signals. Always returns exactly three items and cannot fail: dimensions
// with no data are skipped, short results are padded, long ones truncated.
func RuleBasedInsights(s Signals) []InsightItem {
	if !s.HasData() {
		return StarterInsights()
	}

	var insights []InsightItem

	if item, ok := dominantMoodInsight(s); ok {
		insights = append(insights, item)
	}
	if item, ok := taskCompletionInsight(s); ok {
		insights = append(insights, item)
	}
	if item, ok := habitConsistencyInsight(s); ok {
		insights = append(insights, item)
	}
	if item, ok := moodVariabilityInsight(s); ok {
		insights = append(insights, item)
	}

	return normalizeInsights(insights)
}

// normalizeInsights pads or truncates a candidate list to exactly three
// items.
func normalizeInsights(insights []InsightItem) []InsightItem {
	for len(insights) < insightCount {
		insights = append(insights, fillerInsights[len(insights)%len(fillerInsights)])
	}
	return insights[:insightCount]
}

func dominantMoodInsight(s Signals) (InsightItem, bool) {
	emotions := s.JournalEmotions
	if len(emotions) == 0 {
		emotions = s.RecentEmotions
	}
	dominant, count := DominantEmotion(emotions)
	if dominant == "" {
		return InsightItem{}, false
	}

	percentage := ratePercent(count, len(emotions))
	if IsPositiveEmotion(dominant) {
		return InsightItem{
			Icon:  "✨",
			Title: "Positive Energy",
			Text:  fmt.Sprintf("You've been feeling %s %d%% of the time recently. This positive trend shows you're engaging in activities that bring you joy. Keep identifying and doing more of what makes you feel this way!", dominant, percentage),
		}, true
	}
	return InsightItem{
		Icon:  "💙",
		Title: "Emotional Support",
		Text:  fmt.Sprintf("Your mood has been %s %d%% of the time. Remember, it's okay to feel this way. Consider reaching out to supportive friends, practicing self-care activities, or talking to a professional if these feelings persist.", dominant, percentage),
	}, true
}

func taskCompletionInsight(s Signals) (InsightItem, bool) {
	if s.TaskTotal == 0 {
		return InsightItem{}, false
	}

	rate := s.TaskCompletionRate
	switch {
	case rate >= 70:
		return InsightItem{
			Icon:  "✅",
			Title: "Productivity Win",
			Text:  fmt.Sprintf("Impressive %d%% task completion rate! You're staying on top of your goals, and this sense of accomplishment likely contributes to your overall wellbeing.", rate),
		}, true
	case rate >= 40:
		return InsightItem{
			Icon:  "📝",
			Title: "Task Management",
			Text:  fmt.Sprintf("You're completing %d%% of your tasks. Try breaking larger tasks into smaller, manageable steps. Small wins can boost your mood and motivation.", rate),
		}, true
	default:
		return InsightItem{
			Icon:  "🎯",
			Title: "Fresh Focus",
			Text:  fmt.Sprintf("Focus on 1-3 priority tasks per day to boost your %d%% completion rate. Momentum builds from the first small win.", rate),
		}, true
	}
}

func habitConsistencyInsight(s Signals) (InsightItem, bool) {
	if s.TrackingTotal == 0 {
		return InsightItem{}, false
	}

	rate := s.ConsistencyRate
	switch {
	case rate >= 70:
		return InsightItem{
			Icon:  "🔥",
			Title: "Habit Consistency",
			Text:  fmt.Sprintf("Amazing %d%% consistency across your %d habits! Your dedication is building a strong foundation.", rate, s.HabitCount),
		}, true
	case rate >= 40:
		return InsightItem{
			Icon:  "🌱",
			Title: "Habit Growth",
			Text:  fmt.Sprintf("You're tracking %d habits with %d%% consistency. Small improvements each week add up to big changes.", s.HabitCount, rate),
		}, true
	default:
		return InsightItem{
			Icon:  "💪",
			Title: "Habit Building",
			Text:  fmt.Sprintf("Habit building takes time. With %d habits at %d%% consistency, start by focusing on just one. Consistency beats intensity.", s.HabitCount, rate),
		}, true
	}
}

func moodVariabilityInsight(s Signals) (InsightItem, bool) {
	if len(s.RecentEmotions) < 5 {
		return InsightItem{}, false
	}

	recent := s.RecentEmotions
	if len(recent) > 7 {
		recent = recent[:7]
	}
	distinct := make(map[string]bool, len(recent))
	for _, e := range recent {
		distinct[e] = true
	}

	switch {
	case len(distinct) <= 2:
		return InsightItem{
			Icon:  "🌊",
			Title: "Mood Stability",
			Text:  "Your mood has been relatively consistent recently, fluctuating between just a few emotions. This stability can be comforting and indicates emotional balance in your daily life.",
		}, true
	case len(distinct) >= 5:
		return InsightItem{
			Icon:  "🎭",
			Title: "Emotional Range",
			Text:  fmt.Sprintf("You've experienced %d different emotions this week. This variety is natural. Identifying triggers for different moods can help you cultivate more positive experiences.", len(distinct)),
		}, true
	default:
		return InsightItem{}, false
	}
}
