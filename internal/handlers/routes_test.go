package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"resumentor/internal/middleware"
	"resumentor/internal/models"
	"resumentor/internal/repositories"
	"resumentor/internal/services"
)

type stubAuthService struct {
	user models.User
}

func (s *stubAuthService) Register(models.RegisterRequest) (*models.AuthResponse, error) {
	return &models.AuthResponse{Token: "token", User: &s.user}, nil
}

func (s *stubAuthService) Login(models.LoginRequest) (*models.AuthResponse, error) {
	return &models.AuthResponse{Token: "token", User: &s.user}, nil
}

func (s *stubAuthService) GoogleLogin(models.GoogleLoginRequest) (*models.AuthResponse, error) {
	return &models.AuthResponse{Token: "token", User: &s.user}, nil
}

func (s *stubAuthService) GuestLogin() (*models.AuthResponse, error) {
	return &models.AuthResponse{Token: "token", User: &s.user}, nil
}

func (s *stubAuthService) GetProfile(userID uuid.UUID) (*models.User, error) {
	if userID != s.user.ID {
		return nil, repositories.ErrNotFound
	}
	u := s.user
	return &u, nil
}

func (s *stubAuthService) UpdateProfile(userID uuid.UUID, req models.UpdateProfileRequest) (*models.User, error) {
	if userID != s.user.ID {
		return nil, repositories.ErrNotFound
	}
	u := s.user
	if req.Name != "" {
		u.Name = req.Name
	}
	return &u, nil
}

type stubResumeService struct{}

func (stubResumeService) AnalyzeUpload(uuid.UUID, *multipart.FileHeader, string, string) (*models.ResumeAnalysisResponse, error) {
	return &models.ResumeAnalysisResponse{}, nil
}

func (stubResumeService) GetResume(uuid.UUID, uuid.UUID) (*models.Resume, error) {
	return &models.Resume{}, nil
}

func (stubResumeService) GetAnalysis(uuid.UUID, uuid.UUID) (*models.ResumeAnalysisResponse, error) {
	return &models.ResumeAnalysisResponse{}, nil
}

func (stubResumeService) ListByUser(uuid.UUID) ([]models.Resume, error) {
	return []models.Resume{}, nil
}

func (stubResumeService) Delete(uuid.UUID, uuid.UUID) error { return nil }

type stubInterviewService struct{}

func (stubInterviewService) Start(uuid.UUID, uuid.UUID) (*models.InterviewStateResponse, error) {
	return &models.InterviewStateResponse{}, nil
}

func (stubInterviewService) CurrentQuestion(uuid.UUID, uuid.UUID) (*models.InterviewStateResponse, error) {
	return &models.InterviewStateResponse{}, nil
}

func (stubInterviewService) SubmitAnswer(uuid.UUID, uuid.UUID, uuid.UUID, string) (*models.InterviewStateResponse, error) {
	return &models.InterviewStateResponse{}, nil
}

func (stubInterviewService) End(uuid.UUID, uuid.UUID) (*models.InterviewSession, error) {
	return &models.InterviewSession{}, nil
}

func (stubInterviewService) Report(uuid.UUID, uuid.UUID) (*models.InterviewReportResponse, error) {
	return &models.InterviewReportResponse{}, nil
}

func (stubInterviewService) History(uuid.UUID) ([]models.InterviewSession, error) {
	return []models.InterviewSession{}, nil
}

func (stubInterviewService) Delete(uuid.UUID, uuid.UUID) error { return nil }

type stubDashboardService struct{}

func (stubDashboardService) Stats(uuid.UUID) (*models.DashboardStats, error) {
	return &models.DashboardStats{TotalResumesAnalyzed: 3}, nil
}

func (stubDashboardService) ResumeHistory(uuid.UUID) ([]models.Resume, error) {
	return []models.Resume{}, nil
}

func (stubDashboardService) InterviewHistory(uuid.UUID) ([]models.InterviewSession, error) {
	return []models.InterviewSession{}, nil
}

func (stubDashboardService) Progress(uuid.UUID) (*models.ProgressData, error) {
	return &models.ProgressData{}, nil
}

type stubAchievementService struct{}

func (stubAchievementService) Evaluate(uuid.UUID) error { return nil }

func (stubAchievementService) Status(uuid.UUID) ([]models.AchievementStatus, error) {
	return []models.AchievementStatus{}, nil
}

func newRouterApp(t *testing.T) (*fiber.App, string) {
	t.Helper()

	auth := &stubAuthService{user: models.User{
		ID:    uuid.New(),
		Email: "dev@example.com",
		Name:  "Dev",
	}}
	tokens := services.NewTokenService("routes-test-secret", time.Hour)
	token, err := tokens.Issue(auth.user.ID, auth.user.Email)
	require.NoError(t, err)

	router := &Router{
		Auth:        NewAuthHandler(auth),
		Resume:      NewResumeHandler(stubResumeService{}),
		Interview:   NewInterviewHandler(stubInterviewService{}),
		Dashboard:   NewDashboardHandler(stubDashboardService{}, stubAchievementService{}, auth),
		RequireAuth: middleware.RequireAuth(tokens),
	}

	app := fiber.New()
	router.Register(app)
	return app, token
}

func jsonRequest(method, target string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

func TestAuthRoutePaths(t *testing.T) {
	app, token := newRouterApp(t)

	tests := []struct {
		name       string
		method     string
		path       string
		body       any
		bearer     bool
		wantStatus int
	}{
		{"google login", http.MethodPost, "/api/auth/login/google", models.GoogleLoginRequest{GoogleID: "g-1", Email: "dev@example.com"}, false, http.StatusOK},
		{"guest login", http.MethodPost, "/api/auth/guest-login", nil, false, http.StatusCreated},
		{"validate with token", http.MethodGet, "/api/auth/validate", nil, true, http.StatusOK},
		{"validate without token", http.MethodGet, "/api/auth/validate", nil, false, http.StatusUnauthorized},
		{"legacy google path removed", http.MethodPost, "/api/auth/google", models.GoogleLoginRequest{GoogleID: "g-1", Email: "dev@example.com"}, false, http.StatusNotFound},
		{"legacy guest path removed", http.MethodPost, "/api/auth/guest", nil, false, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := jsonRequest(tt.method, tt.path, tt.body)
			if tt.bearer {
				req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()
			require.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestValidateReturnsCaller(t *testing.T) {
	app, token := newRouterApp(t)

	req := jsonRequest(http.MethodGet, "/api/auth/validate", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var user models.User
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&user))
	require.Equal(t, "dev@example.com", user.Email)
}

func TestDashboardUserRoute(t *testing.T) {
	app, token := newRouterApp(t)

	req := jsonRequest(http.MethodGet, "/api/dashboard/user", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		User  models.User           `json:"user"`
		Stats models.DashboardStats `json:"stats"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "dev@example.com", body.User.Email)
	require.Equal(t, 3, body.Stats.TotalResumesAnalyzed)
}

func TestDashboardProfileUpdateRoute(t *testing.T) {
	app, token := newRouterApp(t)

	req := jsonRequest(http.MethodPut, "/api/dashboard/profile", models.UpdateProfileRequest{Name: "Updated Name"})
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var user models.User
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&user))
	require.Equal(t, "Updated Name", user.Name)
}
