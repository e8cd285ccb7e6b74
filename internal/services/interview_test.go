package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"resumentor/internal/analyzer"
	"resumentor/internal/models"
)

type noopWorker struct{}

func (noopWorker) Start()               {}
func (noopWorker) Stop()                {}
func (noopWorker) Enqueue(id uuid.UUID) {}

func newInterviewFixture(t *testing.T) (InterviewService, *fakeInterviewRepo, uuid.UUID, uuid.UUID) {
	t.Helper()

	resumeRepo := &fakeResumeRepo{}
	interviewRepo := &fakeInterviewRepo{}

	userID := uuid.New()
	resume := &models.Resume{
		UserID:     userID,
		JobRole:    "Backend Developer",
		ResumeText: "java spring boot rest api sql git microservices",
	}
	require.NoError(t, resumeRepo.Create(resume))

	svc := NewInterviewService(interviewRepo, resumeRepo, analyzer.New(), noopWorker{}, zap.NewNop())
	return svc, interviewRepo, userID, resume.ID
}

func TestStartCreatesSessionWithFullQuestionSet(t *testing.T) {
	svc, interviewRepo, userID, resumeID := newInterviewFixture(t)

	state, err := svc.Start(userID, resumeID)
	require.NoError(t, err)

	assert.Equal(t, analyzer.TotalQuestions, state.TotalQuestions)
	assert.Equal(t, 1, state.QuestionNumber)
	assert.Equal(t, analyzer.DifficultyBasic, state.Difficulty)
	assert.Equal(t, "Backend Developer", state.JobRole)
	assert.NotEmpty(t, state.Question)
	assert.False(t, state.IsCompleted)

	questions, err := interviewRepo.FindQuestionsBySession(state.SessionID)
	require.NoError(t, err)
	require.Len(t, questions, analyzer.TotalQuestions)
	assert.Equal(t, analyzer.DifficultyAdvanced, questions[analyzer.TotalQuestions-1].Difficulty)
}

func TestStartRejectsForeignResume(t *testing.T) {
	svc, _, _, resumeID := newInterviewFixture(t)

	_, err := svc.Start(uuid.New(), resumeID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestSubmitAnswerAdvancesToNextQuestion(t *testing.T) {
	svc, _, userID, resumeID := newInterviewFixture(t)

	state, err := svc.Start(userID, resumeID)
	require.NoError(t, err)

	next, err := svc.SubmitAnswer(userID, state.SessionID, state.QuestionID,
		"I am a backend developer with six years of experience building APIs and services.")
	require.NoError(t, err)

	assert.Equal(t, 2, next.QuestionNumber)
	assert.NotEqual(t, state.QuestionID, next.QuestionID)
	assert.False(t, next.IsCompleted)
}

func TestSubmitAllAnswersCompletesSession(t *testing.T) {
	svc, interviewRepo, userID, resumeID := newInterviewFixture(t)

	state, err := svc.Start(userID, resumeID)
	require.NoError(t, err)
	sessionID := state.SessionID

	answer := "First, I analyze the problem carefully. For example, in my experience I improved " +
		"performance by 40% using caching and clear processes across the whole team."

	for !state.IsCompleted {
		state, err = svc.SubmitAnswer(userID, sessionID, state.QuestionID, answer)
		require.NoError(t, err)
	}

	session, err := interviewRepo.FindSessionByID(sessionID)
	require.NoError(t, err)
	assert.Equal(t, models.SessionCompleted, session.Status)
	require.NotNil(t, session.Score)
	assert.GreaterOrEqual(t, *session.Score, 0)
	assert.LessOrEqual(t, *session.Score, 100)
	require.NotNil(t, session.EndTime)
	require.NotNil(t, session.DurationMinutes)
}

func TestBlankAnswerAdvancesToNextQuestion(t *testing.T) {
	svc, interviewRepo, userID, resumeID := newInterviewFixture(t)

	state, err := svc.Start(userID, resumeID)
	require.NoError(t, err)

	next, err := svc.SubmitAnswer(userID, state.SessionID, state.QuestionID, "   ")
	require.NoError(t, err)

	assert.Equal(t, 2, next.QuestionNumber)
	assert.NotEqual(t, state.QuestionID, next.QuestionID)
	assert.False(t, next.IsCompleted)

	question, err := interviewRepo.FindQuestionByID(state.QuestionID)
	require.NoError(t, err)
	require.NotNil(t, question.AnswerScore)
	assert.Equal(t, 0, *question.AnswerScore)
	require.NotNil(t, question.Feedback)
	assert.NotEmpty(t, *question.Feedback)
}

func TestAllBlankAnswersStillCompleteSession(t *testing.T) {
	svc, interviewRepo, userID, resumeID := newInterviewFixture(t)

	state, err := svc.Start(userID, resumeID)
	require.NoError(t, err)
	sessionID := state.SessionID

	for !state.IsCompleted {
		state, err = svc.SubmitAnswer(userID, sessionID, state.QuestionID, "")
		require.NoError(t, err)
	}

	session, err := interviewRepo.FindSessionByID(sessionID)
	require.NoError(t, err)
	assert.Equal(t, models.SessionCompleted, session.Status)
	require.NotNil(t, session.Score)
	assert.Equal(t, 0, *session.Score)

	report, err := svc.Report(userID, sessionID)
	require.NoError(t, err)
	assert.Equal(t, 0, report.AnsweredQuestions)
}

func TestReportRequiresCompletedSession(t *testing.T) {
	svc, _, userID, resumeID := newInterviewFixture(t)

	state, err := svc.Start(userID, resumeID)
	require.NoError(t, err)

	_, err = svc.Report(userID, state.SessionID)
	assert.ErrorIs(t, err, ErrSessionOngoing)
}

func TestEndEarlyProducesReport(t *testing.T) {
	svc, _, userID, resumeID := newInterviewFixture(t)

	state, err := svc.Start(userID, resumeID)
	require.NoError(t, err)

	_, err = svc.SubmitAnswer(userID, state.SessionID, state.QuestionID,
		"I have worked on several projects, for example a billing system that cut costs by 20%.")
	require.NoError(t, err)

	session, err := svc.End(userID, state.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.SessionCompleted, session.Status)

	report, err := svc.Report(userID, state.SessionID)
	require.NoError(t, err)
	assert.Equal(t, analyzer.TotalQuestions, report.TotalQuestions)
	assert.Equal(t, 1, report.AnsweredQuestions)
	assert.Equal(t, report.AnsweredQuestions,
		report.CorrectAnswers+report.PartialAnswers+report.IncorrectAnswers)
	assert.Len(t, report.Questions, analyzer.TotalQuestions)

	// No further answers once completed.
	_, err = svc.SubmitAnswer(userID, state.SessionID, state.QuestionID, "late answer")
	assert.ErrorIs(t, err, ErrSessionCompleted)
}

func TestDeleteSessionRemovesQuestions(t *testing.T) {
	svc, interviewRepo, userID, resumeID := newInterviewFixture(t)

	state, err := svc.Start(userID, resumeID)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(userID, state.SessionID))

	_, err = interviewRepo.FindSessionByID(state.SessionID)
	assert.Error(t, err)

	questions, err := interviewRepo.FindQuestionsBySession(state.SessionID)
	require.NoError(t, err)
	assert.Empty(t, questions)
}
