package handlers

import (
	"github.com/gofiber/fiber/v2"

	"resumentor/internal/middleware"
	"resumentor/internal/models"
	"resumentor/internal/services"
)

type DashboardHandler struct {
	dashboardService   services.DashboardService
	achievementService services.AchievementService
	authService        services.AuthService
}

func NewDashboardHandler(
	dashboardService services.DashboardService,
	achievementService services.AchievementService,
	authService services.AuthService,
) *DashboardHandler {
	return &DashboardHandler{
		dashboardService:   dashboardService,
		achievementService: achievementService,
		authService:        authService,
	}
}

// HandleUser returns the caller's profile together with their headline stats.
func (h *DashboardHandler) HandleUser(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	user, err := h.authService.GetProfile(userID)
	if err != nil {
		return serviceError(c, err)
	}

	stats, err := h.dashboardService.Stats(userID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"user":  user,
		"stats": stats,
	})
}

func (h *DashboardHandler) HandleUpdateProfile(c *fiber.Ctx) error {
	var req models.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	user, err := h.authService.UpdateProfile(middleware.UserID(c), req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(user)
}

func (h *DashboardHandler) HandleStats(c *fiber.Ctx) error {
	stats, err := h.dashboardService.Stats(middleware.UserID(c))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(stats)
}

func (h *DashboardHandler) HandleResumeHistory(c *fiber.Ctx) error {
	resumes, err := h.dashboardService.ResumeHistory(middleware.UserID(c))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"resumes": resumes,
	})
}

func (h *DashboardHandler) HandleInterviewHistory(c *fiber.Ctx) error {
	sessions, err := h.dashboardService.InterviewHistory(middleware.UserID(c))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"sessions": sessions,
	})
}

func (h *DashboardHandler) HandleProgress(c *fiber.Ctx) error {
	progress, err := h.dashboardService.Progress(middleware.UserID(c))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(progress)
}

func (h *DashboardHandler) HandleAchievements(c *fiber.Ctx) error {
	achievements, err := h.achievementService.Status(middleware.UserID(c))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"achievements": achievements,
	})
}
