package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resumentor/internal/middleware"
	"resumentor/internal/models"
	"resumentor/internal/services"
)

type InterviewHandler struct {
	interviewService services.InterviewService
}

func NewInterviewHandler(interviewService services.InterviewService) *InterviewHandler {
	return &InterviewHandler{
		interviewService: interviewService,
	}
}

func (h *InterviewHandler) HandleStart(c *fiber.Ctx) error {
	var req models.StartInterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	resumeID, err := uuid.Parse(req.ResumeID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid resume ID format",
		})
	}

	state, err := h.interviewService.Start(middleware.UserID(c), resumeID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(state)
}

func (h *InterviewHandler) HandleCurrentQuestion(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid session ID format",
		})
	}

	state, err := h.interviewService.CurrentQuestion(middleware.UserID(c), sessionID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(state)
}

func (h *InterviewHandler) HandleSubmitAnswer(c *fiber.Ctx) error {
	var req models.SubmitAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	sessionID, err := uuid.Parse(req.SessionID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid session ID format",
		})
	}
	questionID, err := uuid.Parse(req.QuestionID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid question ID format",
		})
	}

	state, err := h.interviewService.SubmitAnswer(middleware.UserID(c), sessionID, questionID, req.Answer)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(state)
}

func (h *InterviewHandler) HandleEnd(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid session ID format",
		})
	}

	session, err := h.interviewService.End(middleware.UserID(c), sessionID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(session)
}

func (h *InterviewHandler) HandleReport(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid session ID format",
		})
	}

	report, err := h.interviewService.Report(middleware.UserID(c), sessionID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(report)
}

func (h *InterviewHandler) HandleHistory(c *fiber.Ctx) error {
	sessions, err := h.interviewService.History(middleware.UserID(c))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"sessions": sessions,
	})
}

func (h *InterviewHandler) HandleDelete(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid session ID format",
		})
	}

	if err := h.interviewService.Delete(middleware.UserID(c), sessionID); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "session deleted",
	})
}
