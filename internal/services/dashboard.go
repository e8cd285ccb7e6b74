package services

import (
	"github.com/google/uuid"

	"resumentor/internal/models"
	"resumentor/internal/repositories"
)

type DashboardService interface {
	Stats(userID uuid.UUID) (*models.DashboardStats, error)
	ResumeHistory(userID uuid.UUID) ([]models.Resume, error)
	InterviewHistory(userID uuid.UUID) ([]models.InterviewSession, error)
	Progress(userID uuid.UUID) (*models.ProgressData, error)
}

type dashboardService struct {
	resumeRepo    repositories.ResumeRepository
	interviewRepo repositories.InterviewRepository
}

func NewDashboardService(
	resumeRepo repositories.ResumeRepository,
	interviewRepo repositories.InterviewRepository,
) DashboardService {
	return &dashboardService{
		resumeRepo:    resumeRepo,
		interviewRepo: interviewRepo,
	}
}

func (s *dashboardService) Stats(userID uuid.UUID) (*models.DashboardStats, error) {
	resumes, err := s.resumeRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	sessions, err := s.interviewRepo.FindSessionsByUser(userID)
	if err != nil {
		return nil, err
	}

	stats := &models.DashboardStats{
		TotalResumesAnalyzed:   len(resumes),
		TotalInterviewSessions: len(sessions),
	}

	atsSum := 0
	for _, r := range resumes {
		atsSum += r.ATSScore
		if r.ATSScore > stats.BestATSScore {
			stats.BestATSScore = r.ATSScore
		}
	}
	if len(resumes) > 0 {
		stats.AverageATSScore = roundTo1(float64(atsSum) / float64(len(resumes)))
	}

	interviewSum, completed := 0, 0
	for _, sess := range sessions {
		if sess.Status != models.SessionCompleted || sess.Score == nil {
			continue
		}
		completed++
		interviewSum += *sess.Score
	}
	stats.CompletedInterviews = completed
	if completed > 0 {
		stats.AverageInterviewScore = roundTo1(float64(interviewSum) / float64(completed))
	}

	return stats, nil
}

func (s *dashboardService) ResumeHistory(userID uuid.UUID) ([]models.Resume, error) {
	return s.resumeRepo.FindByUser(userID)
}

func (s *dashboardService) InterviewHistory(userID uuid.UUID) ([]models.InterviewSession, error) {
	return s.interviewRepo.FindSessionsByUser(userID)
}

// Progress builds the last-10 score series for both tracks, the half-over-half
// trend for each, and feedback themes keyed off the recent averages.
func (s *dashboardService) Progress(userID uuid.UUID) (*models.ProgressData, error) {
	resumes, err := s.resumeRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	sessions, err := s.interviewRepo.FindSessionsByUser(userID)
	if err != nil {
		return nil, err
	}

	// Repos return newest first; the chart wants oldest first.
	resumePoints := make([]models.ScorePoint, 0, 10)
	for i := len(resumes) - 1; i >= 0; i-- {
		resumePoints = append(resumePoints, models.ScorePoint{
			Date:    resumes[i].CreatedAt.Format("2006-01-02"),
			Score:   resumes[i].ATSScore,
			JobRole: resumes[i].JobRole,
		})
	}
	resumePoints = lastN(resumePoints, 10)

	interviewPoints := make([]models.ScorePoint, 0, 10)
	for i := len(sessions) - 1; i >= 0; i-- {
		sess := sessions[i]
		if sess.Status != models.SessionCompleted || sess.Score == nil {
			continue
		}
		interviewPoints = append(interviewPoints, models.ScorePoint{
			Date:  sess.StartTime.Format("2006-01-02"),
			Score: *sess.Score,
		})
	}
	interviewPoints = lastN(interviewPoints, 10)

	return &models.ProgressData{
		ResumeScores:    resumePoints,
		InterviewScores: interviewPoints,
		ResumeTrend:     computeTrend(resumePoints),
		InterviewTrend:  computeTrend(interviewPoints),
		FeedbackThemes:  feedbackThemes(resumePoints, interviewPoints),
	}, nil
}

func lastN(points []models.ScorePoint, n int) []models.ScorePoint {
	if len(points) > n {
		return points[len(points)-n:]
	}
	return points
}

// computeTrend compares the first-half average against the second-half
// average of a chronological series.
func computeTrend(points []models.ScorePoint) models.TrendInfo {
	if len(points) < 4 {
		return models.TrendInfo{Direction: "insufficient_data"}
	}

	half := len(points) / 2
	firstAvg := averagePoints(points[:half])
	secondAvg := averagePoints(points[half:])
	delta := secondAvg - firstAvg

	trend := models.TrendInfo{Delta: delta}
	switch {
	case delta > 2:
		trend.Direction = "improving"
	case delta < -2:
		trend.Direction = "declining"
	default:
		trend.Direction = "stable"
	}
	return trend
}

func averagePoints(points []models.ScorePoint) int {
	if len(points) == 0 {
		return 0
	}
	sum := 0
	for _, p := range points {
		sum += p.Score
	}
	return sum / len(points)
}

func feedbackThemes(resumePoints, interviewPoints []models.ScorePoint) []string {
	var themes []string

	if len(resumePoints) > 0 {
		switch avg := averagePoints(resumePoints); {
		case avg >= 75:
			themes = append(themes, "Your resumes consistently rank well against ATS filters")
		case avg >= 50:
			themes = append(themes, "Resume keyword coverage is decent but leaves points on the table")
		default:
			themes = append(themes, "Resume alignment with target roles needs significant work")
		}
	}

	if len(interviewPoints) > 0 {
		switch avg := averagePoints(interviewPoints); {
		case avg >= 75:
			themes = append(themes, "Interview answers are strong across difficulty levels")
		case avg >= 50:
			themes = append(themes, "Interview answers land but often lack depth or examples")
		default:
			themes = append(themes, "Interview preparation should be your current focus")
		}
	}

	if len(resumePoints) == 0 && len(interviewPoints) == 0 {
		themes = append(themes, "Analyze a resume or run a mock interview to start tracking progress")
	}

	return themes
}

func roundTo1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
