package habits

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Habit is a recurring practice the user tracks day by day.
type Habit struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	Icon      string         `gorm:"size:10;default:'🎯'" json:"icon"`
	Frequency string         `gorm:"size:10;default:'daily'" json:"frequency"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Tracking is one marked day for a habit. One row per habit per date,
// enforced by the composite unique index; re-marking a day upserts it.
type Tracking struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	HabitID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_tracking_habit_date" json:"habit_id"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:idx_tracking_habit_date" json:"date"`
	Completed bool      `gorm:"default:true" json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

func (Tracking) TableName() string { return "habit_tracking" }

// HabitWithDays is a habit plus its completed tracking dates, newest first.
type HabitWithDays struct {
	Habit
	MarkedDays []string `json:"marked_days"`
}

// StatsResponse summarizes one habit's tracking history.
type StatsResponse struct {
	TotalDays     int      `json:"total_days"`
	CurrentStreak int      `json:"current_streak"`
	MarkedDays    []string `json:"marked_days"`
}

func validFrequency(f string) bool {
	switch f {
	case "daily", "weekly", "monthly", "custom":
		return true
	}
	return false
}
