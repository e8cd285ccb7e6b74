package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resumentor/internal/middleware"
	"resumentor/internal/services"
)

type ResumeHandler struct {
	resumeService services.ResumeService
}

func NewResumeHandler(resumeService services.ResumeService) *ResumeHandler {
	return &ResumeHandler{
		resumeService: resumeService,
	}
}

func (h *ResumeHandler) HandleUpload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "resume file is required",
		})
	}

	jobRole := c.FormValue("jobRole")
	if jobRole == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "jobRole is required",
		})
	}
	jobDescription := c.FormValue("jobDescription")

	resp, err := h.resumeService.AnalyzeUpload(middleware.UserID(c), file, jobRole, jobDescription)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *ResumeHandler) HandleGetResume(c *fiber.Ctx) error {
	resumeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid resume ID format",
		})
	}

	resume, err := h.resumeService.GetResume(middleware.UserID(c), resumeID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(resume)
}

func (h *ResumeHandler) HandleGetAnalysis(c *fiber.Ctx) error {
	resumeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid resume ID format",
		})
	}

	analysis, err := h.resumeService.GetAnalysis(middleware.UserID(c), resumeID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(analysis)
}

func (h *ResumeHandler) HandleListResumes(c *fiber.Ctx) error {
	resumes, err := h.resumeService.ListByUser(middleware.UserID(c))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"resumes": resumes,
	})
}

func (h *ResumeHandler) HandleDeleteResume(c *fiber.Ctx) error {
	resumeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid resume ID format",
		})
	}

	if err := h.resumeService.Delete(middleware.UserID(c), resumeID); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "resume deleted",
	})
}
