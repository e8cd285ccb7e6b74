package services

import (
	"fmt"

	"github.com/google/uuid"

	"resumentor/internal/models"
	"resumentor/internal/repositories"
)

// AchievementDef is one entry of the static catalog. Codes are stable and
// unique per user, so awarding twice is a no-op.
type AchievementDef struct {
	Code        string
	Title       string
	Description string
	Icon        string
	Category    string
}

var achievementCatalog = []AchievementDef{
	{"FIRST_RESUME", "First Steps", "Analyzed your first resume", "📄", "resume"},
	{"RESUME_MASTER", "Resume Master", "Analyzed 5 resumes", "📚", "resume"},
	{"RESUME_EXPERT", "Resume Expert", "Analyzed 10 resumes", "🏆", "resume"},
	{"HIGH_SCORER", "High Scorer", "Reached an ATS score of 85 or higher", "🎯", "resume"},
	{"PERFECT_SCORE", "Perfect Score", "Reached a perfect ATS score of 100", "💯", "resume"},
	{"FIRST_INTERVIEW", "Breaking the Ice", "Completed your first mock interview", "🎤", "interview"},
	{"INTERVIEW_PRO", "Interview Pro", "Completed 5 mock interviews", "🗣️", "interview"},
	{"INTERVIEW_MASTER", "Interview Master", "Completed 10 mock interviews", "👑", "interview"},
	{"STRONG_PERFORMER", "Strong Performer", "Scored 80 or higher in an interview", "💪", "interview"},
	{"OUTSTANDING_PERFORMANCE", "Outstanding", "Scored 90 or higher in an interview", "🌟", "interview"},
	{"QUICK_THINKER", "Quick Thinker", "Finished a full interview in under 10 minutes", "⚡", "interview"},
	{"ALL_ROUNDER", "All-Rounder", "Analyzed a resume and completed an interview", "🎖️", "general"},
	{"GOOGLE_CONNECTED", "Connected", "Linked your Google account", "🔗", "profile"},
	{"PROFILE_COMPLETED", "Identity Established", "Filled in your full profile", "✅", "profile"},
}

type AchievementService interface {
	// Evaluate inspects the user's records and awards anything newly earned.
	Evaluate(userID uuid.UUID) error
	// Status merges the catalog with the user's earned rows.
	Status(userID uuid.UUID) ([]models.AchievementStatus, error)
}

type achievementService struct {
	achievementRepo repositories.AchievementRepository
	userRepo        repositories.UserRepository
	resumeRepo      repositories.ResumeRepository
	interviewRepo   repositories.InterviewRepository
}

func NewAchievementService(
	achievementRepo repositories.AchievementRepository,
	userRepo repositories.UserRepository,
	resumeRepo repositories.ResumeRepository,
	interviewRepo repositories.InterviewRepository,
) AchievementService {
	return &achievementService{
		achievementRepo: achievementRepo,
		userRepo:        userRepo,
		resumeRepo:      resumeRepo,
		interviewRepo:   interviewRepo,
	}
}

func (s *achievementService) Evaluate(userID uuid.UUID) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return err
	}
	resumes, err := s.resumeRepo.FindByUser(userID)
	if err != nil {
		return err
	}
	sessions, err := s.interviewRepo.FindSessionsByUser(userID)
	if err != nil {
		return err
	}

	completed := 0
	bestInterviewScore := 0
	fastestCompletion := 0
	for _, sess := range sessions {
		if sess.Status != models.SessionCompleted {
			continue
		}
		completed++
		if sess.Score != nil && *sess.Score > bestInterviewScore {
			bestInterviewScore = *sess.Score
		}
		if sess.DurationMinutes != nil {
			if fastestCompletion == 0 || *sess.DurationMinutes < fastestCompletion {
				fastestCompletion = *sess.DurationMinutes
			}
		}
	}

	bestATS := 0
	for _, r := range resumes {
		if r.ATSScore > bestATS {
			bestATS = r.ATSScore
		}
	}

	earned := []string{}
	if len(resumes) >= 1 {
		earned = append(earned, "FIRST_RESUME")
	}
	if len(resumes) >= 5 {
		earned = append(earned, "RESUME_MASTER")
	}
	if len(resumes) >= 10 {
		earned = append(earned, "RESUME_EXPERT")
	}
	if bestATS >= 85 {
		earned = append(earned, "HIGH_SCORER")
	}
	if bestATS >= 100 {
		earned = append(earned, "PERFECT_SCORE")
	}
	if completed >= 1 {
		earned = append(earned, "FIRST_INTERVIEW")
	}
	if completed >= 5 {
		earned = append(earned, "INTERVIEW_PRO")
	}
	if completed >= 10 {
		earned = append(earned, "INTERVIEW_MASTER")
	}
	if bestInterviewScore >= 80 {
		earned = append(earned, "STRONG_PERFORMER")
	}
	if bestInterviewScore >= 90 {
		earned = append(earned, "OUTSTANDING_PERFORMANCE")
	}
	if completed >= 1 && fastestCompletion > 0 && fastestCompletion < 10 {
		earned = append(earned, "QUICK_THINKER")
	}
	if len(resumes) >= 1 && completed >= 1 {
		earned = append(earned, "ALL_ROUNDER")
	}
	if user.GoogleID != "" {
		earned = append(earned, "GOOGLE_CONNECTED")
	}
	if profileComplete(user) {
		earned = append(earned, "PROFILE_COMPLETED")
	}

	for _, code := range earned {
		def, ok := lookupAchievement(code)
		if !ok {
			continue
		}
		err := s.achievementRepo.Award(&models.Achievement{
			UserID:      userID,
			Code:        def.Code,
			Title:       def.Title,
			Description: def.Description,
			Icon:        def.Icon,
			Category:    def.Category,
		})
		if err != nil {
			return fmt.Errorf("failed to record achievement %s: %w", code, err)
		}
	}

	return nil
}

func (s *achievementService) Status(userID uuid.UUID) ([]models.AchievementStatus, error) {
	earned, err := s.achievementRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	earnedAt := make(map[string]string, len(earned))
	for _, a := range earned {
		earnedAt[a.Code] = a.EarnedAt.Format("2006-01-02")
	}

	statuses := make([]models.AchievementStatus, 0, len(achievementCatalog))
	for _, def := range achievementCatalog {
		at, ok := earnedAt[def.Code]
		statuses = append(statuses, models.AchievementStatus{
			Code:        def.Code,
			Title:       def.Title,
			Description: def.Description,
			Icon:        def.Icon,
			Category:    def.Category,
			Earned:      ok,
			EarnedAt:    at,
		})
	}
	return statuses, nil
}

func lookupAchievement(code string) (AchievementDef, bool) {
	for _, def := range achievementCatalog {
		if def.Code == code {
			return def, true
		}
	}
	return AchievementDef{}, false
}

func profileComplete(user *models.User) bool {
	return user.Name != "" &&
		user.TechRole != "" &&
		user.ExperienceLevel != "" &&
		user.Location != "" &&
		user.Skills != "" &&
		user.Bio != ""
}
