package tasks

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Valid priority and task type values.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"

	TypeTodo     = "todo"
	TypeGoal     = "goal"
	TypeReminder = "reminder"
)

// Task is a user to-do, goal, or reminder.
type Task struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Title        string         `gorm:"size:200;not null" json:"title"`
	Description  string         `gorm:"type:text" json:"description"`
	Priority     string         `gorm:"size:10;default:'medium'" json:"priority"`
	DueDate      *time.Time     `gorm:"type:date;index" json:"due_date"`
	TaskType     string         `gorm:"size:10;default:'todo'" json:"task_type"`
	ReminderTime *time.Time     `json:"reminder_time"`
	IsImportant  bool           `gorm:"default:false" json:"is_important"`
	Notes        string         `gorm:"type:text" json:"notes"`
	Completed    bool           `gorm:"default:false;index" json:"completed"`
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// ListFilter narrows a task listing. Zero values mean "not filtered".
type ListFilter struct {
	Date      string
	StartDate string
	EndDate   string
	Completed *bool
}

func validPriority(p string) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

func validType(t string) bool {
	return t == TypeTodo || t == TypeGoal || t == TypeReminder
}
