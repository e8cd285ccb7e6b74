package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Email             string    `gorm:"type:text;uniqueIndex;not null" json:"email"`
	Name              string    `gorm:"type:text" json:"name"`
	PasswordHash      string    `gorm:"type:text" json:"-"`
	Age               *int      `json:"age,omitempty"`
	TechRole          string    `gorm:"type:text" json:"tech_role,omitempty"`
	ExperienceLevel   string    `gorm:"type:text" json:"experience_level,omitempty"`
	Phone             string    `gorm:"type:text" json:"phone,omitempty"`
	Location          string    `gorm:"type:text" json:"location,omitempty"`
	Skills            string    `gorm:"type:text" json:"skills,omitempty"`
	LinkedInURL       string    `gorm:"type:text" json:"linkedin_url,omitempty"`
	GithubURL         string    `gorm:"type:text" json:"github_url,omitempty"`
	PortfolioURL      string    `gorm:"type:text" json:"portfolio_url,omitempty"`
	Bio               string    `gorm:"type:text" json:"bio,omitempty"`
	GoogleID          string    `gorm:"type:text;index" json:"-"`
	ProfilePictureURL string    `gorm:"type:text" json:"profile_picture_url,omitempty"`
	IsGuest           bool      `gorm:"not null;default:false" json:"is_guest"`
	CreatedAt         time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt         time.Time `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
