package models

import (
	"time"

	"github.com/google/uuid"
)

type Achievement struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index:idx_user_achievement,unique" json:"user_id"`
	Code        string    `gorm:"type:text;not null;index:idx_user_achievement,unique" json:"code"`
	Title       string    `gorm:"type:text;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Icon        string    `gorm:"type:text" json:"icon"`
	Category    string    `gorm:"type:text" json:"category"`
	EarnedAt    time.Time `gorm:"type:timestamp;default:now()" json:"earned_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Achievement) TableName() string {
	return "achievements"
}
