package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// Router owns the API route table for the four handler groups.
type Router struct {
	Auth        *AuthHandler
	Resume      *ResumeHandler
	Interview   *InterviewHandler
	Dashboard   *DashboardHandler
	RequireAuth fiber.Handler
}

func (r *Router) Register(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	auth := api.Group("/auth")
	auth.Post("/register", r.Auth.HandleRegister)
	auth.Post("/login", r.Auth.HandleLogin)
	auth.Post("/login/google", r.Auth.HandleGoogleLogin)
	auth.Post("/guest-login", r.Auth.HandleGuestLogin)
	auth.Get("/validate", r.RequireAuth, r.Auth.HandleValidate)

	resume := api.Group("/resume", r.RequireAuth)
	resume.Post("/upload", r.Resume.HandleUpload)
	resume.Get("/user", r.Resume.HandleListResumes)
	resume.Get("/analysis/:id", r.Resume.HandleGetAnalysis)
	resume.Get("/:id", r.Resume.HandleGetResume)
	resume.Delete("/:id", r.Resume.HandleDeleteResume)

	interview := api.Group("/interview", r.RequireAuth)
	interview.Post("/start", r.Interview.HandleStart)
	interview.Post("/submit-answer", r.Interview.HandleSubmitAnswer)
	interview.Get("/user/history", r.Interview.HandleHistory)
	interview.Get("/:id/question", r.Interview.HandleCurrentQuestion)
	interview.Post("/:id/end", r.Interview.HandleEnd)
	interview.Get("/:id/report", r.Interview.HandleReport)
	interview.Delete("/:id", r.Interview.HandleDelete)

	dashboard := api.Group("/dashboard", r.RequireAuth)
	dashboard.Get("/user", r.Dashboard.HandleUser)
	dashboard.Put("/profile", r.Dashboard.HandleUpdateProfile)
	dashboard.Get("/stats", r.Dashboard.HandleStats)
	dashboard.Get("/resume-history", r.Dashboard.HandleResumeHistory)
	dashboard.Get("/interview-history", r.Dashboard.HandleInterviewHistory)
	dashboard.Get("/progress", r.Dashboard.HandleProgress)
	dashboard.Get("/achievements", r.Dashboard.HandleAchievements)
}
