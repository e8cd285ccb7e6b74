package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"resumentor/internal/models"
	"resumentor/internal/repositories"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type AuthService interface {
	Register(req models.RegisterRequest) (*models.AuthResponse, error)
	Login(req models.LoginRequest) (*models.AuthResponse, error)
	GoogleLogin(req models.GoogleLoginRequest) (*models.AuthResponse, error)
	GuestLogin() (*models.AuthResponse, error)
	GetProfile(userID uuid.UUID) (*models.User, error)
	UpdateProfile(userID uuid.UUID, req models.UpdateProfileRequest) (*models.User, error)
}

type authService struct {
	userRepo repositories.UserRepository
	tokens   TokenService
	worker   AchievementWorker
}

func NewAuthService(
	userRepo repositories.UserRepository,
	tokens TokenService,
	worker AchievementWorker,
) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		worker:   worker,
	}
}

func (s *authService) Register(req models.RegisterRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		Name:         req.Name,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return s.issueResponse(user)
}

func (s *authService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if user.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueResponse(user)
}

// GoogleLogin links an existing account by google id or email, creating a
// fresh user when neither matches.
func (s *authService) GoogleLogin(req models.GoogleLoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.FindByGoogleID(req.GoogleID)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	if user == nil {
		email := strings.ToLower(strings.TrimSpace(req.Email))
		user, err = s.userRepo.FindByEmail(email)
		if err != nil {
			if !errors.Is(err, repositories.ErrNotFound) {
				return nil, err
			}
			user = &models.User{
				Email:             email,
				Name:              req.Name,
				GoogleID:          req.GoogleID,
				ProfilePictureURL: req.ProfilePictureURL,
			}
			if err := s.userRepo.Create(user); err != nil {
				return nil, err
			}
		} else {
			user.GoogleID = req.GoogleID
			if user.ProfilePictureURL == "" {
				user.ProfilePictureURL = req.ProfilePictureURL
			}
			if err := s.userRepo.Update(user); err != nil {
				return nil, err
			}
		}
	}

	s.worker.Enqueue(user.ID)
	return s.issueResponse(user)
}

// GuestLogin creates a throwaway account so the product can be tried without
// registration.
func (s *authService) GuestLogin() (*models.AuthResponse, error) {
	user := &models.User{
		Email:   fmt.Sprintf("guest-%s@resumentor.local", uuid.New().String()[:8]),
		Name:    "Guest",
		IsGuest: true,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return s.issueResponse(user)
}

func (s *authService) GetProfile(userID uuid.UUID) (*models.User, error) {
	return s.userRepo.FindByID(userID)
}

func (s *authService) UpdateProfile(userID uuid.UUID, req models.UpdateProfileRequest) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Age != nil {
		user.Age = req.Age
	}
	user.TechRole = req.TechRole
	user.ExperienceLevel = req.ExperienceLevel
	user.Phone = req.Phone
	user.Location = req.Location
	user.Skills = req.Skills
	user.LinkedInURL = req.LinkedInURL
	user.GithubURL = req.GithubURL
	user.PortfolioURL = req.PortfolioURL
	user.Bio = req.Bio

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	s.worker.Enqueue(user.ID)
	return user, nil
}

func (s *authService) issueResponse(user *models.User) (*models.AuthResponse, error) {
	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{Token: token, User: user}, nil
}
