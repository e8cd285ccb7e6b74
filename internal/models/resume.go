package models

import (
	"time"

	"github.com/google/uuid"
)

type Resume struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	FileName       string    `gorm:"type:text" json:"file_name"`
	FilePath       string    `gorm:"type:text" json:"-"`
	JobRole        string    `gorm:"type:text;not null" json:"job_role"`
	JobDescription string    `gorm:"type:text" json:"job_description,omitempty"`
	ATSScore       int       `gorm:"not null;default:0" json:"ats_score"`
	ResumeText     string    `gorm:"type:text" json:"-"`
	AnalysisResult string    `gorm:"type:text" json:"-"`
	CreatedAt      time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt      time.Time `gorm:"type:timestamp;default:now()" json:"updated_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Resume) TableName() string {
	return "resumes"
}
