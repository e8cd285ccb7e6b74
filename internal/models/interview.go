package models

import (
	"time"

	"github.com/google/uuid"

	"resumentor/internal/analyzer"
)

type SessionStatus string

const (
	SessionOngoing   SessionStatus = "ONGOING"
	SessionCompleted SessionStatus = "COMPLETED"
	SessionAbandoned SessionStatus = "ABANDONED"
)

type InterviewSession struct {
	ID              uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID          uuid.UUID     `gorm:"type:uuid;not null;index" json:"user_id"`
	ResumeID        uuid.UUID     `gorm:"type:uuid;not null" json:"resume_id"`
	Status          SessionStatus `gorm:"not null;default:'ONGOING'" json:"status"`
	StartTime       time.Time     `gorm:"type:timestamp;default:now()" json:"start_time"`
	EndTime         *time.Time    `gorm:"type:timestamp" json:"end_time,omitempty"`
	DurationMinutes *int          `json:"duration_minutes,omitempty"`
	Score           *int          `json:"score,omitempty"`

	// Relations
	User      User                `gorm:"foreignKey:UserID" json:"-"`
	Resume    Resume              `gorm:"foreignKey:ResumeID" json:"-"`
	Questions []InterviewQuestion `gorm:"foreignKey:SessionID" json:"-"`
}

func (InterviewSession) TableName() string {
	return "interview_sessions"
}

type InterviewQuestion struct {
	ID             uuid.UUID                `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SessionID      uuid.UUID                `gorm:"type:uuid;not null;index" json:"session_id"`
	QuestionNumber int                      `gorm:"not null" json:"question_number"`
	QuestionText   string                   `gorm:"type:text;not null" json:"question_text"`
	Difficulty     analyzer.DifficultyLevel `gorm:"type:text;not null" json:"difficulty_level"`
	UserAnswer     *string                  `gorm:"type:text" json:"user_answer,omitempty"`
	Feedback       *string                  `gorm:"type:text" json:"feedback,omitempty"`
	AnswerScore    *int                     `json:"answer_score,omitempty"`
	CreatedAt      time.Time                `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt      time.Time                `gorm:"type:timestamp;default:now()" json:"updated_at"`

	// Relations
	Session InterviewSession `gorm:"foreignKey:SessionID" json:"-"`
}

func (InterviewQuestion) TableName() string {
	return "interview_questions"
}
