package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"resumentor/internal/analyzer"
	"resumentor/internal/models"
	"resumentor/internal/repositories"
)

// SessionTimeLimit caps how long an interview stays answerable. Sessions past
// the limit are completed with whatever was answered so far.
const SessionTimeLimit = 30 * time.Minute

var (
	ErrSessionCompleted = errors.New("interview session is already completed")
	ErrSessionExpired   = errors.New("interview session time limit reached")
	ErrSessionOngoing   = errors.New("interview session is still in progress")
)

type InterviewService interface {
	Start(userID, resumeID uuid.UUID) (*models.InterviewStateResponse, error)
	CurrentQuestion(userID, sessionID uuid.UUID) (*models.InterviewStateResponse, error)
	SubmitAnswer(userID, sessionID, questionID uuid.UUID, answer string) (*models.InterviewStateResponse, error)
	End(userID, sessionID uuid.UUID) (*models.InterviewSession, error)
	Report(userID, sessionID uuid.UUID) (*models.InterviewReportResponse, error)
	History(userID uuid.UUID) ([]models.InterviewSession, error)
	Delete(userID, sessionID uuid.UUID) error
}

type interviewService struct {
	interviewRepo repositories.InterviewRepository
	resumeRepo    repositories.ResumeRepository
	engine        *analyzer.Analyzer
	worker        AchievementWorker
	logger        *zap.Logger
}

func NewInterviewService(
	interviewRepo repositories.InterviewRepository,
	resumeRepo repositories.ResumeRepository,
	engine *analyzer.Analyzer,
	worker AchievementWorker,
	logger *zap.Logger,
) InterviewService {
	return &interviewService{
		interviewRepo: interviewRepo,
		resumeRepo:    resumeRepo,
		engine:        engine,
		worker:        worker,
		logger:        logger,
	}
}

func (s *interviewService) Start(userID, resumeID uuid.UUID) (*models.InterviewStateResponse, error) {
	resume, err := s.resumeRepo.FindByID(resumeID)
	if err != nil {
		return nil, err
	}
	if resume.UserID != userID {
		return nil, ErrForbidden
	}

	session := &models.InterviewSession{
		UserID:    userID,
		ResumeID:  resume.ID,
		Status:    models.SessionOngoing,
		StartTime: time.Now(),
	}
	if err := s.interviewRepo.CreateSession(session); err != nil {
		return nil, err
	}

	questionTexts := s.engine.GenerateQuestions(resume.ResumeText, resume.JobRole)
	questions := make([]models.InterviewQuestion, 0, len(questionTexts))
	for i, text := range questionTexts {
		questions = append(questions, models.InterviewQuestion{
			SessionID:      session.ID,
			QuestionNumber: i + 1,
			QuestionText:   text,
			Difficulty:     analyzer.DifficultyForPosition(i),
		})
	}
	if err := s.interviewRepo.CreateQuestions(questions); err != nil {
		return nil, err
	}

	s.logger.Info("interview started",
		zap.String("session_id", session.ID.String()),
		zap.String("job_role", resume.JobRole))

	return s.stateResponse(session, resume.JobRole)
}

func (s *interviewService) CurrentQuestion(userID, sessionID uuid.UUID) (*models.InterviewStateResponse, error) {
	session, err := s.ownedSession(userID, sessionID)
	if err != nil {
		return nil, err
	}

	if err := s.expireIfOverdue(session); err != nil {
		return nil, err
	}

	resume, err := s.resumeRepo.FindByID(session.ResumeID)
	if err != nil {
		return nil, err
	}

	return s.stateResponse(session, resume.JobRole)
}

func (s *interviewService) SubmitAnswer(userID, sessionID, questionID uuid.UUID, answer string) (*models.InterviewStateResponse, error) {
	session, err := s.ownedSession(userID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status != models.SessionOngoing {
		return nil, ErrSessionCompleted
	}
	if time.Since(session.StartTime) > SessionTimeLimit {
		if err := s.finalize(session); err != nil {
			return nil, err
		}
		return nil, ErrSessionExpired
	}

	question, err := s.interviewRepo.FindQuestionByID(questionID)
	if err != nil {
		return nil, err
	}
	if question.SessionID != session.ID {
		return nil, ErrForbidden
	}

	resume, err := s.resumeRepo.FindByID(session.ResumeID)
	if err != nil {
		return nil, err
	}

	evaluation := s.engine.EvaluateAnswer(question.QuestionText, answer, resume.ResumeText)
	if err := s.interviewRepo.SaveAnswer(question.ID, answer, evaluation.Feedback, evaluation.Score); err != nil {
		return nil, err
	}

	questions, err := s.interviewRepo.FindQuestionsBySession(session.ID)
	if err != nil {
		return nil, err
	}
	if allAnswered(questions) {
		if err := s.finalize(session); err != nil {
			return nil, err
		}
	}

	return s.stateResponse(session, resume.JobRole)
}

func (s *interviewService) End(userID, sessionID uuid.UUID) (*models.InterviewSession, error) {
	session, err := s.ownedSession(userID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status != models.SessionOngoing {
		return nil, ErrSessionCompleted
	}

	if err := s.finalize(session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *interviewService) Report(userID, sessionID uuid.UUID) (*models.InterviewReportResponse, error) {
	session, err := s.ownedSession(userID, sessionID)
	if err != nil {
		return nil, err
	}

	if err := s.expireIfOverdue(session); err != nil {
		return nil, err
	}
	if session.Status == models.SessionOngoing {
		return nil, ErrSessionOngoing
	}

	resume, err := s.resumeRepo.FindByID(session.ResumeID)
	if err != nil {
		return nil, err
	}
	questions, err := s.interviewRepo.FindQuestionsBySession(session.ID)
	if err != nil {
		return nil, err
	}

	results := make([]analyzer.QuestionResult, 0, len(questions))
	feedbacks := make([]models.QuestionFeedback, 0, len(questions))
	for _, q := range questions {
		result := analyzer.QuestionResult{
			Number:     q.QuestionNumber,
			Question:   q.QuestionText,
			Difficulty: q.Difficulty,
		}
		if q.UserAnswer != nil {
			result.Answer = *q.UserAnswer
		}
		if q.AnswerScore != nil {
			result.Score = *q.AnswerScore
		}
		results = append(results, result)

		feedbacks = append(feedbacks, models.QuestionFeedback{
			QuestionNumber: q.QuestionNumber,
			Question:       q.QuestionText,
			UserAnswer:     q.UserAnswer,
			Feedback:       q.Feedback,
			Score:          q.AnswerScore,
			Difficulty:     q.Difficulty,
			Category:       analyzer.QuestionCategory(q.QuestionText),
		})
	}

	report := s.engine.BuildReport(resume.JobRole, results)

	duration := 0
	if session.DurationMinutes != nil {
		duration = *session.DurationMinutes
	}

	return &models.InterviewReportResponse{
		SessionID:       session.ID,
		DurationMinutes: duration,
		Report:          report,
		Questions:       feedbacks,
	}, nil
}

func (s *interviewService) History(userID uuid.UUID) ([]models.InterviewSession, error) {
	return s.interviewRepo.FindSessionsByUser(userID)
}

func (s *interviewService) Delete(userID, sessionID uuid.UUID) error {
	session, err := s.ownedSession(userID, sessionID)
	if err != nil {
		return err
	}
	return s.interviewRepo.DeleteSession(session)
}

func (s *interviewService) ownedSession(userID, sessionID uuid.UUID) (*models.InterviewSession, error) {
	session, err := s.interviewRepo.FindSessionByID(sessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, ErrForbidden
	}
	return session, nil
}

// expireIfOverdue completes a session whose time limit has passed.
func (s *interviewService) expireIfOverdue(session *models.InterviewSession) error {
	if session.Status != models.SessionOngoing {
		return nil
	}
	if time.Since(session.StartTime) <= SessionTimeLimit {
		return nil
	}
	return s.finalize(session)
}

// finalize marks the session COMPLETED with its duration and the mean score
// over substantively answered questions, then queues an achievement check.
// Blank submissions advance the session but carry no score weight.
func (s *interviewService) finalize(session *models.InterviewSession) error {
	questions, err := s.interviewRepo.FindQuestionsBySession(session.ID)
	if err != nil {
		return err
	}

	sum, answered := 0, 0
	for _, q := range questions {
		if q.UserAnswer == nil || strings.TrimSpace(*q.UserAnswer) == "" {
			continue
		}
		answered++
		if q.AnswerScore != nil {
			sum += *q.AnswerScore
		}
	}

	score := 0
	if answered > 0 {
		score = sum / answered
	}

	now := time.Now()
	minutes := int(now.Sub(session.StartTime).Minutes())
	if minutes > int(SessionTimeLimit.Minutes()) {
		minutes = int(SessionTimeLimit.Minutes())
	}

	session.Status = models.SessionCompleted
	session.EndTime = &now
	session.DurationMinutes = &minutes
	session.Score = &score

	if err := s.interviewRepo.UpdateSession(session); err != nil {
		return err
	}

	s.logger.Info("interview completed",
		zap.String("session_id", session.ID.String()),
		zap.Int("score", score),
		zap.Int("answered", answered))

	s.worker.Enqueue(session.UserID)
	return nil
}

func (s *interviewService) stateResponse(session *models.InterviewSession, jobRole string) (*models.InterviewStateResponse, error) {
	questions, err := s.interviewRepo.FindQuestionsBySession(session.ID)
	if err != nil {
		return nil, err
	}

	elapsed := int(time.Since(session.StartTime).Minutes())
	state := &models.InterviewStateResponse{
		SessionID:      session.ID,
		TotalQuestions: len(questions),
		JobRole:        jobRole,
		ElapsedMinutes: elapsed,
	}

	if session.Status != models.SessionOngoing {
		state.IsCompleted = true
		return state, nil
	}

	for _, q := range questions {
		if q.UserAnswer == nil {
			state.QuestionID = q.ID
			state.Question = q.QuestionText
			state.QuestionNumber = q.QuestionNumber
			state.Difficulty = q.Difficulty
			return state, nil
		}
	}

	state.IsCompleted = true
	return state, nil
}

// allAnswered reports whether every question has a submitted answer. A blank
// submission still counts: it consumed the question, it just scores zero.
func allAnswered(questions []models.InterviewQuestion) bool {
	for _, q := range questions {
		if q.UserAnswer == nil {
			return false
		}
	}
	return len(questions) > 0
}
