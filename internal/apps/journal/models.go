package journal

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Entry is a journal entry with an optional classified emotion. Emotion
// classification happens upstream of this service; clients submit the label
// and its probability alongside the text.
type Entry struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Title       string         `gorm:"size:200" json:"title"`
	Content     string         `gorm:"type:text;not null" json:"content"`
	Emotion     string         `gorm:"size:20;index" json:"emotion"`
	Probability float64        `gorm:"default:0" json:"probability"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Entry) TableName() string { return "journal_entries" }

// SearchFilter narrows a journal search. Zero values mean "not filtered".
type SearchFilter struct {
	Query     string
	Emotion   string
	Date      string
	StartDate string
	EndDate   string
}
