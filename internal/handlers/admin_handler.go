package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/mozhii/platform/internal/dto"
	"github.com/mozhii/platform/internal/middleware"
	"github.com/mozhii/platform/internal/services"
)

// AdminHandler serves the authenticated review endpoints.
type AdminHandler struct {
	submissions *services.SubmissionService
	feedback    *services.FeedbackService
}

func NewAdminHandler(submissions *services.SubmissionService, feedback *services.FeedbackService) *AdminHandler {
	return &AdminHandler{submissions: submissions, feedback: feedback}
}

func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	resp, err := h.submissions.Stats()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load stats",
		})
	}
	return c.JSON(resp)
}

func (h *AdminHandler) ListSubmissions(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", 15)
	if limit < 1 || limit > 100 {
		limit = 15
	}

	filters := services.ListFilters{
		Status:   c.Query("status"),
		Language: c.Query("language"),
		Search:   c.Query("search"),
		DateFrom: c.Query("date_from"),
		DateTo:   c.Query("date_to"),
	}

	resp, err := h.submissions.List(filters, page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load submissions",
		})
	}
	return c.JSON(resp)
}

func (h *AdminHandler) SubmissionDetail(c *fiber.Ctx) error {
	resp, err := h.submissions.Detail(c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrSubmissionNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Submission not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load submission",
		})
	}
	return c.JSON(resp)
}

func (h *AdminHandler) Approve(c *fiber.Ctx) error {
	var req dto.ApproveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	adminUser, err := middleware.Username(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	resp, err := h.submissions.Approve(c.Params("id"), &req, adminUser)
	if err != nil {
		return h.decisionError(c, err)
	}
	return c.JSON(resp)
}

func (h *AdminHandler) Reject(c *fiber.Ctx) error {
	var req dto.RejectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	adminUser, err := middleware.Username(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	resp, err := h.submissions.Reject(c.Params("id"), &req, adminUser)
	if err != nil {
		return h.decisionError(c, err)
	}
	return c.JSON(resp)
}

func (h *AdminHandler) decisionError(c *fiber.Ctx, err error) error {
	if errors.Is(err, services.ErrSubmissionNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Submission not found",
		})
	}
	if errors.Is(err, services.ErrAlreadyDecided) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Error: true, Message: "Submission has already been reviewed",
		})
	}
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: true, Message: err.Error(),
	})
}

func (h *AdminHandler) AuditLog(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", 50)
	if limit < 1 || limit > 200 {
		limit = 50
	}

	resp, err := h.submissions.AuditLog(page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load audit log",
		})
	}
	return c.JSON(resp)
}

func (h *AdminHandler) Feedbacks(c *fiber.Ctx) error {
	resp, err := h.feedback.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load feedbacks",
		})
	}
	return c.JSON(resp)
}
