package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// User carries authentication credentials plus the optional profile fields
// the insight prompt builder draws from.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email     string    `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Password  string    `gorm:"not null" json:"-"`

	Name       string         `gorm:"size:100" json:"name"`
	Gender     string         `gorm:"size:50" json:"gender"`
	Pronouns   string         `gorm:"size:50" json:"pronouns"`
	Birthday   *time.Time     `gorm:"type:date" json:"birthday"`
	Bio        string         `gorm:"type:text" json:"bio"`
	Occupation string         `gorm:"size:100" json:"occupation"`
	Location   string         `gorm:"size:100" json:"location"`
	Timezone   string         `gorm:"size:50" json:"timezone"`
	Interests  datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"interests"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
