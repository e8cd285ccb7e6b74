package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"resumentor/internal/models"
)

type InterviewRepository interface {
	CreateSession(session *models.InterviewSession) error
	FindSessionByID(id uuid.UUID) (*models.InterviewSession, error)
	FindSessionsByUser(userID uuid.UUID) ([]models.InterviewSession, error)
	UpdateSession(session *models.InterviewSession) error
	DeleteSession(session *models.InterviewSession) error

	CreateQuestions(questions []models.InterviewQuestion) error
	FindQuestionByID(id uuid.UUID) (*models.InterviewQuestion, error)
	FindQuestionsBySession(sessionID uuid.UUID) ([]models.InterviewQuestion, error)
	SaveAnswer(questionID uuid.UUID, answer, feedback string, score int) error
}

type interviewRepository struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) InterviewRepository {
	return &interviewRepository{db: db}
}

func (r *interviewRepository) CreateSession(session *models.InterviewSession) error {
	if err := r.db.Create(session).Error; err != nil {
		return fmt.Errorf("failed to create interview session: %w", err)
	}
	return nil
}

func (r *interviewRepository) FindSessionByID(id uuid.UUID) (*models.InterviewSession, error) {
	var session models.InterviewSession
	if err := r.db.Where("id = ?", id).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find interview session: %w", err)
	}
	return &session, nil
}

func (r *interviewRepository) FindSessionsByUser(userID uuid.UUID) ([]models.InterviewSession, error) {
	var sessions []models.InterviewSession
	err := r.db.
		Where("user_id = ?", userID).
		Order("start_time DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list interview sessions: %w", err)
	}
	return sessions, nil
}

func (r *interviewRepository) UpdateSession(session *models.InterviewSession) error {
	if err := r.db.Save(session).Error; err != nil {
		return fmt.Errorf("failed to update interview session: %w", err)
	}
	return nil
}

// DeleteSession removes a session together with its questions.
func (r *interviewRepository) DeleteSession(session *models.InterviewSession) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ?", session.ID).
			Delete(&models.InterviewQuestion{}).Error; err != nil {
			return fmt.Errorf("failed to delete session questions: %w", err)
		}
		if err := tx.Delete(session).Error; err != nil {
			return fmt.Errorf("failed to delete session: %w", err)
		}
		return nil
	})
}

func (r *interviewRepository) CreateQuestions(questions []models.InterviewQuestion) error {
	if err := r.db.Create(&questions).Error; err != nil {
		return fmt.Errorf("failed to create interview questions: %w", err)
	}
	return nil
}

func (r *interviewRepository) FindQuestionByID(id uuid.UUID) (*models.InterviewQuestion, error) {
	var question models.InterviewQuestion
	if err := r.db.Where("id = ?", id).First(&question).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find interview question: %w", err)
	}
	return &question, nil
}

func (r *interviewRepository) FindQuestionsBySession(sessionID uuid.UUID) ([]models.InterviewQuestion, error) {
	var questions []models.InterviewQuestion
	err := r.db.
		Where("session_id = ?", sessionID).
		Order("question_number ASC").
		Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list interview questions: %w", err)
	}
	return questions, nil
}

func (r *interviewRepository) SaveAnswer(questionID uuid.UUID, answer, feedback string, score int) error {
	result := r.db.Model(&models.InterviewQuestion{}).
		Where("id = ?", questionID).
		Updates(map[string]interface{}{
			"user_answer":  answer,
			"feedback":     feedback,
			"answer_score": score,
			"updated_at":   time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to save answer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
