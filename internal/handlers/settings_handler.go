package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mozhii/platform/internal/dto"
	"github.com/mozhii/platform/internal/services"
)

type SettingsHandler struct {
	settings    *services.SettingsService
	hf          *services.HFClient
	submissions *services.SubmissionService
}

func NewSettingsHandler(settings *services.SettingsService, hf *services.HFClient, submissions *services.SubmissionService) *SettingsHandler {
	return &SettingsHandler{settings: settings, hf: hf, submissions: submissions}
}

func (h *SettingsHandler) GetHFSettings(c *fiber.Ctx) error {
	resp, err := h.settings.GetHFSettings()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load settings",
		})
	}
	return c.JSON(resp)
}

func (h *SettingsHandler) UpdateHFSettings(c *fiber.Ctx) error {
	var req dto.HFSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.settings.UpdateHFSettings(&req); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to save settings",
		})
	}
	return c.JSON(fiber.Map{"status": "success"})
}

func (h *SettingsHandler) TestHF(c *fiber.Ctx) error {
	username, err := h.hf.Whoami()
	if err != nil {
		return c.JSON(dto.HFTestResponse{Success: false, Error: err.Error()})
	}
	return c.JSON(dto.HFTestResponse{Success: true, Username: username})
}

func (h *SettingsHandler) StorageInfo(c *fiber.Ctx) error {
	resp, err := h.submissions.StorageInfo()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load storage info",
		})
	}
	return c.JSON(resp)
}

func (h *SettingsHandler) UpdateStatsOverride(c *fiber.Ctx) error {
	var req dto.StatsOverrideRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.settings.UpdateStatsOverride(&req); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to save overrides",
		})
	}
	return c.JSON(fiber.Map{"status": "success"})
}
