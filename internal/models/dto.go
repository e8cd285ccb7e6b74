package models

import (
	"resumentor/internal/analyzer"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type GoogleLoginRequest struct {
	GoogleID          string `json:"google_id" validate:"required"`
	Email             string `json:"email" validate:"required,email"`
	Name              string `json:"name"`
	ProfilePictureURL string `json:"profile_picture_url"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

type UpdateProfileRequest struct {
	Name            string `json:"name"`
	Age             *int   `json:"age"`
	TechRole        string `json:"tech_role"`
	ExperienceLevel string `json:"experience_level"`
	Phone           string `json:"phone"`
	Location        string `json:"location"`
	Skills          string `json:"skills"`
	LinkedInURL     string `json:"linkedin_url"`
	GithubURL       string `json:"github_url"`
	PortfolioURL    string `json:"portfolio_url"`
	Bio             string `json:"bio"`
}

type ResumeAnalysisResponse struct {
	ResumeID uuid.UUID `json:"resume_id"`
	analyzer.ResumeAnalysis
}

type StartInterviewRequest struct {
	ResumeID string `json:"resume_id" validate:"required,uuid"`
}

type SubmitAnswerRequest struct {
	SessionID  string `json:"session_id" validate:"required,uuid"`
	QuestionID string `json:"question_id" validate:"required,uuid"`
	Answer     string `json:"answer"`
}

// InterviewStateResponse describes where the candidate is in an ongoing
// session: the next question to answer plus progress bookkeeping.
type InterviewStateResponse struct {
	SessionID      uuid.UUID                `json:"session_id"`
	QuestionID     uuid.UUID                `json:"question_id"`
	Question       string                   `json:"current_question"`
	QuestionNumber int                      `json:"question_number"`
	TotalQuestions int                      `json:"total_questions"`
	Difficulty     analyzer.DifficultyLevel `json:"difficulty_level"`
	JobRole        string                   `json:"job_role"`
	ElapsedMinutes int                      `json:"elapsed_minutes"`
	IsCompleted    bool                     `json:"is_completed"`
}

// QuestionFeedback is one row of the session report, covering answered and
// unanswered questions alike.
type QuestionFeedback struct {
	QuestionNumber int                      `json:"question_number"`
	Question       string                   `json:"question"`
	UserAnswer     *string                  `json:"user_answer,omitempty"`
	Feedback       *string                  `json:"feedback,omitempty"`
	Score          *int                     `json:"score,omitempty"`
	Difficulty     analyzer.DifficultyLevel `json:"difficulty"`
	Category       string                   `json:"category"`
}

type InterviewReportResponse struct {
	SessionID       uuid.UUID `json:"session_id"`
	DurationMinutes int       `json:"duration_minutes"`
	analyzer.Report
	Questions []QuestionFeedback `json:"question_feedbacks"`
}

type DashboardStats struct {
	TotalResumesAnalyzed   int     `json:"total_resumes_analyzed"`
	AverageATSScore        float64 `json:"average_ats_score"`
	BestATSScore           int     `json:"best_ats_score"`
	TotalInterviewSessions int     `json:"total_interview_sessions"`
	CompletedInterviews    int     `json:"completed_interviews"`
	AverageInterviewScore  float64 `json:"average_interview_score"`
}

// ScorePoint is one entry in a dashboard progress series.
type ScorePoint struct {
	Date    string `json:"date"`
	Score   int    `json:"score"`
	JobRole string `json:"job_role,omitempty"`
}

type TrendInfo struct {
	Delta     int    `json:"delta"`
	Direction string `json:"direction"`
}

type ProgressData struct {
	ResumeScores    []ScorePoint `json:"resume_scores"`
	InterviewScores []ScorePoint `json:"interview_scores"`
	ResumeTrend     TrendInfo    `json:"resume_trend"`
	InterviewTrend  TrendInfo    `json:"interview_trend"`
	FeedbackThemes  []string     `json:"feedback_themes"`
}

// AchievementStatus merges the static catalog with a user's earned rows.
type AchievementStatus struct {
	Code        string `json:"code"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Category    string `json:"category"`
	Earned      bool   `json:"earned"`
	EarnedAt    string `json:"earned_at,omitempty"`
}
