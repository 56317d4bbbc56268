package mood

import (
	"context"
	"errors"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/wellspringhq/wellspring-backend/internal/apps/insights"
	"github.com/wellspringhq/wellspring-backend/internal/wellness"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const dayFormat = "2006-01-02"

// Service owns manual mood entries and the combined mood-of-day view.
type Service struct {
	db          *gorm.DB
	gatherer    *insights.Gatherer
	coordinator *wellness.Coordinator
}

func NewService(db *gorm.DB, gatherer *insights.Gatherer, coordinator *wellness.Coordinator) *Service {
	return &Service{db: db, gatherer: gatherer, coordinator: coordinator}
}

// Save upserts the manual mood entry for a day. A second save for the same
// day replaces the first; score falls back to the emotion table when zero.
func (s *Service) Save(userID uuid.UUID, emotion string, score int, note, dateStr string) (*Entry, error) {
	if emotion == "" {
		return nil, errors.New("emotion is required")
	}

	day := time.Now()
	if dateStr != "" {
		parsed, err := time.Parse(dayFormat, dateStr)
		if err != nil {
			return nil, errors.New("date must be YYYY-MM-DD")
		}
		day = parsed
	}
	day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)

	if score == 0 {
		score = wellness.EmotionScore(emotion)
	}

	entry := Entry{
		ID:          uuid.New(),
		UserID:      userID,
		Emotion:     emotion,
		Score:       score,
		Note:        note,
		Probability: 1.0,
		Date:        day,
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"emotion", "score", "note", "probability", "updated_at",
		}),
	}).Create(&entry).Error
	if err != nil {
		return nil, err
	}

	var saved Entry
	if err := s.db.Where("user_id = ? AND date = ?", userID, day).First(&saved).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

// Today combines the day's manual entry with journal-derived emotions.
func (s *Service) Today(userID uuid.UUID) (*TodayResponse, error) {
	today := time.Now().Format(dayFormat)

	var manual Entry
	hasManual, err := manualLookupState(
		s.db.Where("user_id = ? AND date = ?", userID, today).First(&manual).Error)
	if err != nil {
		return nil, err
	}

	var rows []struct {
		Emotion     string
		Probability float64
		Count       int
	}
	err = s.db.Table("journal_entries").
		Select("emotion, probability, COUNT(*) as count").
		Where("user_id = ? AND DATE(created_at) = ? AND emotion <> '' AND deleted_at IS NULL", userID, today).
		Group("emotion, probability").
		Order("count DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	journalRows := make([]wellness.JournalEmotionRow, 0, len(rows))
	for _, r := range rows {
		journalRows = append(journalRows, wellness.JournalEmotionRow{
			Emotion:     r.Emotion,
			Probability: r.Probability,
			Count:       r.Count,
		})
	}

	var manualMood *wellness.ManualMood
	resp := &TodayResponse{}
	if hasManual {
		resp.ManualEntry = &manual
		manualMood = &wellness.ManualMood{
			Emotion:     manual.Emotion,
			Score:       manual.Score,
			Probability: manual.Probability,
		}
	}

	combined := wellness.CombineDayMood(manualMood, journalRows)
	resp.JournalMood = combined.JournalMood
	resp.AverageMood = combined.AverageMood
	resp.Source = combined.Source
	return resp, nil
}

// manualLookupState classifies the manual-entry lookup result. A missing row
// is a valid state (the day simply has no manual entry); anything else is a
// failure the caller must surface.
func manualLookupState(err error) (found bool, fail error) {
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return false, nil
	default:
		return false, err
	}
}

// Delete removes the manual entry for a day. Deleting a day that has no
// entry is not an error.
func (s *Service) Delete(userID uuid.UUID, dateStr string) error {
	if _, err := time.Parse(dayFormat, dateStr); err != nil {
		return errors.New("date must be YYYY-MM-DD")
	}
	return s.db.Where("user_id = ? AND date = ?", userID, dateStr).Delete(&Entry{}).Error
}

// Stats summarizes journal-detected emotions, optionally bounded by a
// created_at range.
func (s *Service) Stats(userID uuid.UUID, startDate, endDate string) (*StatsResponse, error) {
	q := s.db.Table("journal_entries").
		Select("emotion, COUNT(*) as count").
		Where("user_id = ? AND emotion <> '' AND deleted_at IS NULL", userID)
	if startDate != "" && endDate != "" {
		q = q.Where("created_at BETWEEN ? AND ?", startDate, endDate)
	}

	var rows []struct {
		Emotion string
		Count   int
	}
	if err := q.Group("emotion").Scan(&rows).Error; err != nil {
		return nil, err
	}

	resp := &StatsResponse{
		MostCommonMood:   "neutral",
		MoodDistribution: []MoodSlice{},
	}

	total := 0
	for _, r := range rows {
		total += r.Count
	}
	resp.TotalEntries = total
	resp.CurrentPeriodCount = total
	if total == 0 {
		return resp, nil
	}

	var scoreSum float64
	best := 0
	for _, r := range rows {
		scoreSum += float64(wellness.EmotionScore(r.Emotion)) * float64(r.Count)
		resp.MoodDistribution = append(resp.MoodDistribution, MoodSlice{
			Mood:       r.Emotion,
			Count:      r.Count,
			Percentage: round1(float64(r.Count) / float64(total) * 100),
		})
		if r.Count > best {
			best = r.Count
			resp.MostCommonMood = r.Emotion
		}
	}
	resp.AverageMood = round1(scoreSum / float64(total))
	return resp, nil
}

// Trends produces the per-day average score series plus a 35-day calendar
// ending today. Journal groups and manual entries both contribute
// observations; the calendar shows each day's most common emotion.
func (s *Service) Trends(userID uuid.UUID, startDate, endDate string) (*TrendsResponse, error) {
	type obs struct {
		emotion string
		count   int
	}

	journalQ := s.db.Table("journal_entries").
		Select("DATE(created_at)::text as date, emotion, COUNT(*) as count").
		Where("user_id = ? AND emotion <> '' AND deleted_at IS NULL", userID)
	if startDate != "" && endDate != "" {
		journalQ = journalQ.Where("created_at BETWEEN ? AND ?", startDate, endDate)
	}

	var journalRows []struct {
		Date    string
		Emotion string
		Count   int
	}
	if err := journalQ.Group("DATE(created_at), emotion").Order("date").Scan(&journalRows).Error; err != nil {
		return nil, err
	}

	moodQ := s.db.Model(&Entry{}).
		Select("to_char(date, 'YYYY-MM-DD') as date, emotion").
		Where("user_id = ?", userID)
	if startDate != "" && endDate != "" {
		moodQ = moodQ.Where("date BETWEEN ? AND ?", startDate, endDate)
	}

	var moodRows []struct {
		Date    string
		Emotion string
	}
	if err := moodQ.Order("date").Scan(&moodRows).Error; err != nil {
		return nil, err
	}

	byDate := make(map[string][]obs)
	for _, r := range journalRows {
		byDate[r.Date] = append(byDate[r.Date], obs{emotion: r.Emotion, count: r.Count})
	}
	for _, r := range moodRows {
		byDate[r.Date] = append(byDate[r.Date], obs{emotion: r.Emotion, count: 1})
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	scores := make([]float64, 0, len(dates))
	for _, d := range dates {
		var weighted float64
		total := 0
		for _, o := range byDate[d] {
			weighted += float64(wellness.EmotionScore(o.emotion)) * float64(o.count)
			total += o.count
		}
		scores = append(scores, round1(weighted/float64(total)))
	}

	// 35-day calendar ending today, empty mood for days without data.
	today := time.Now()
	calendar := make([]CalendarDay, 0, 35)
	for i := 34; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		dateStr := day.Format(dayFormat)
		cell := CalendarDay{Date: dateStr, Day: day.Day()}
		if dayObs := byDate[dateStr]; len(dayObs) > 0 {
			best := dayObs[0]
			for _, o := range dayObs[1:] {
				if o.count > best.count {
					best = o
				}
			}
			cell.Mood = best.emotion
		}
		calendar = append(calendar, cell)
	}

	return &TrendsResponse{Dates: dates, Scores: scores, Calendar: calendar}, nil
}

// Insights runs the two-week insight engine for the mood dashboard.
func (s *Service) Insights(ctx context.Context, userID uuid.UUID) ([]wellness.InsightItem, string, error) {
	signals, err := s.gatherer.Gather(userID, 14)
	if err != nil {
		return nil, "", err
	}
	items, source := s.coordinator.GenerateInsights(ctx, signals, nil, true)
	return items, source, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
