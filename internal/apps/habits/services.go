package habits

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/wellspringhq/wellspring-backend/internal/wellness"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const dayFormat = "2006-01-02"

var ErrHabitNotFound = errors.New("habit not found")

// Service owns habits and their daily tracking.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) List(userID uuid.UUID) ([]HabitWithDays, error) {
	var list []Habit
	if err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, err
	}

	result := make([]HabitWithDays, 0, len(list))
	for _, h := range list {
		days, err := s.markedDays(h.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, HabitWithDays{Habit: h, MarkedDays: days})
	}
	return result, nil
}

func (s *Service) Create(userID uuid.UUID, name, icon, frequency string) (*HabitWithDays, error) {
	if name == "" {
		return nil, errors.New("name is required")
	}
	if icon == "" {
		icon = "🎯"
	}
	if frequency == "" {
		frequency = "daily"
	}
	if !validFrequency(frequency) {
		return nil, errors.New("frequency must be daily, weekly, monthly, or custom")
	}

	habit := Habit{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Icon:      icon,
		Frequency: frequency,
	}
	if err := s.db.Create(&habit).Error; err != nil {
		return nil, err
	}
	return &HabitWithDays{Habit: habit, MarkedDays: []string{}}, nil
}

func (s *Service) Update(userID, habitID uuid.UUID, name, icon, frequency string) (*HabitWithDays, error) {
	var habit Habit
	if err := s.db.Where("id = ? AND user_id = ?", habitID, userID).First(&habit).Error; err != nil {
		return nil, ErrHabitNotFound
	}

	if name != "" {
		habit.Name = name
	}
	if icon != "" {
		habit.Icon = icon
	}
	if frequency != "" {
		if !validFrequency(frequency) {
			return nil, errors.New("frequency must be daily, weekly, monthly, or custom")
		}
		habit.Frequency = frequency
	}

	if err := s.db.Save(&habit).Error; err != nil {
		return nil, err
	}

	days, err := s.markedDays(habit.ID)
	if err != nil {
		return nil, err
	}
	return &HabitWithDays{Habit: habit, MarkedDays: days}, nil
}

// Delete removes a habit and all of its tracking rows.
func (s *Service) Delete(userID, habitID uuid.UUID) error {
	var habit Habit
	if err := s.db.Where("id = ? AND user_id = ?", habitID, userID).First(&habit).Error; err != nil {
		return ErrHabitNotFound
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("habit_id = ?", habitID).Delete(&Tracking{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&habit).Error
	})
}

// Mark upserts a completed tracking row for the given day. Marking an
// already-marked day is a no-op success.
func (s *Service) Mark(userID, habitID uuid.UUID, dateStr string) error {
	day, err := s.ownedDay(userID, habitID, dateStr)
	if err != nil {
		return err
	}

	row := Tracking{
		ID:        uuid.New(),
		HabitID:   habitID,
		Date:      day,
		Completed: true,
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "habit_id"}, {Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"completed": true}),
	}).Create(&row).Error
}

// Unmark removes the tracking row for the given day.
func (s *Service) Unmark(userID, habitID uuid.UUID, dateStr string) error {
	day, err := s.ownedDay(userID, habitID, dateStr)
	if err != nil {
		return err
	}
	return s.db.Where("habit_id = ? AND date = ?", habitID, day).Delete(&Tracking{}).Error
}

// Stats reports total completed days, the current streak anchored at today,
// and the completed dates newest first.
func (s *Service) Stats(userID, habitID uuid.UUID) (*StatsResponse, error) {
	var habit Habit
	if err := s.db.Where("id = ? AND user_id = ?", habitID, userID).First(&habit).Error; err != nil {
		return nil, ErrHabitNotFound
	}

	var rows []Tracking
	if err := s.db.Where("habit_id = ? AND completed = true", habitID).
		Order("date DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	marked := make([]string, 0, len(rows))
	dates := make([]time.Time, 0, len(rows))
	for _, r := range rows {
		marked = append(marked, r.Date.Format(dayFormat))
		dates = append(dates, r.Date)
	}

	return &StatsResponse{
		TotalDays:     len(marked),
		CurrentStreak: wellness.CurrentStreakFrom(time.Now(), dates),
		MarkedDays:    marked,
	}, nil
}

func (s *Service) markedDays(habitID uuid.UUID) ([]string, error) {
	var rows []Tracking
	if err := s.db.Where("habit_id = ? AND completed = true", habitID).
		Order("date DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	days := make([]string, 0, len(rows))
	for _, r := range rows {
		days = append(days, r.Date.Format(dayFormat))
	}
	return days, nil
}

func (s *Service) ownedDay(userID, habitID uuid.UUID, dateStr string) (time.Time, error) {
	var habit Habit
	if err := s.db.Where("id = ? AND user_id = ?", habitID, userID).First(&habit).Error; err != nil {
		return time.Time{}, ErrHabitNotFound
	}

	if dateStr == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	day, err := time.Parse(dayFormat, dateStr)
	if err != nil {
		return time.Time{}, errors.New("date must be YYYY-MM-DD")
	}
	return day, nil
}
