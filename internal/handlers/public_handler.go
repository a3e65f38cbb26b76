package handlers

import (
	"io"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/mozhii/platform/internal/dto"
	"github.com/mozhii/platform/internal/services"
)

// PublicHandler serves the unauthenticated contributor endpoints.
type PublicHandler struct {
	submissions *services.SubmissionService
	feedback    *services.FeedbackService
	settings    *services.SettingsService
	validate    *validator.Validate
}

func NewPublicHandler(submissions *services.SubmissionService, feedback *services.FeedbackService, settings *services.SettingsService) *PublicHandler {
	return &PublicHandler{
		submissions: submissions,
		feedback:    feedback,
		settings:    settings,
		validate:    validator.New(),
	}
}

func (h *PublicHandler) Submit(c *fiber.Ctx) error {
	req := services.CreateSubmission{
		Language:         c.FormValue("language"),
		ContributorName:  c.FormValue("contributor_name"),
		ContributorEmail: c.FormValue("contributor_email"),
		TextContent:      c.FormValue("text_content"),
		Consent:          c.FormValue("consent") == "true",
	}

	if form, err := c.MultipartForm(); err == nil && form != nil {
		for _, fh := range form.File["files"] {
			if fh.Size > services.MaxFileSize {
				return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
					Error: true, Message: "File " + fh.Filename + " exceeds 20MB",
				})
			}
			f, err := fh.Open()
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
					Error: true, Message: "Failed to read " + fh.Filename,
				})
			}
			data, err := io.ReadAll(f)
			f.Close()
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
					Error: true, Message: "Failed to read " + fh.Filename,
				})
			}
			req.Files = append(req.Files, services.IntakeFile{Name: fh.Filename, Data: data})
		}
	}

	resp, err := h.submissions.Create(&req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	slog.Info("submission received", "submission", resp.SubmissionID, "language", req.Language, "files", len(req.Files))
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *PublicHandler) Feedback(c *fiber.Ctx) error {
	var req dto.FeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Message is required and email must be valid",
		})
	}

	if err := h.feedback.Create(&req); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to save feedback",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success"})
}

func (h *PublicHandler) PublicStats(c *fiber.Ctx) error {
	resp, err := h.settings.PublicStats()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load stats",
		})
	}
	return c.JSON(resp)
}
