package mood

import (
	"time"

	"github.com/google/uuid"
	"github.com/wellspringhq/wellspring-backend/internal/wellness"
)

// Entry is a manual mood check-in. One entry per user per calendar day,
// enforced by the composite unique index; saving again replaces the day.
type Entry struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_mood_user_date" json:"user_id"`
	Emotion     string    `gorm:"size:20;not null" json:"emotion"`
	Score       int       `gorm:"not null" json:"score"`
	Note        string    `gorm:"size:500" json:"note"`
	Probability float64   `gorm:"default:1.0" json:"probability"`
	Date        time.Time `gorm:"type:date;not null;uniqueIndex:idx_mood_user_date" json:"date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Entry) TableName() string { return "mood_entries" }

// TodayResponse is the mood-of-day view combining the manual entry with
// journal-derived emotions.
type TodayResponse struct {
	ManualEntry *Entry            `json:"manual_entry"`
	JournalMood *wellness.DayMood `json:"journal_mood"`
	AverageMood *wellness.DayMood `json:"average_mood"`
	Source      string            `json:"source"`
}

// MoodSlice is one emotion's share of the period distribution.
type MoodSlice struct {
	Mood       string  `json:"mood"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// StatsResponse summarizes journal-detected emotions over a period.
type StatsResponse struct {
	TotalEntries       int         `json:"total_entries"`
	AverageMood        float64     `json:"average_mood"`
	MostCommonMood     string      `json:"most_common_mood"`
	MoodDistribution   []MoodSlice `json:"mood_distribution"`
	CurrentPeriodCount int         `json:"current_period_count"`
}

// CalendarDay is one cell of the 35-day trends calendar. Mood is empty when
// the day has no data.
type CalendarDay struct {
	Date string `json:"date"`
	Mood string `json:"mood,omitempty"`
	Day  int    `json:"day"`
}

// TrendsResponse feeds the mood charts: per-day average scores plus a
// five-week calendar ending today.
type TrendsResponse struct {
	Dates    []string      `json:"dates"`
	Scores   []float64     `json:"scores"`
	Calendar []CalendarDay `json:"calendar"`
}
