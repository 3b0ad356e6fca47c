package handlers

import (
	"errors"

	applog "agroconnect/internal/log"
	"agroconnect/internal/services"

	"github.com/gofiber/fiber/v2"
)

type AssistantHandler struct {
	Assistant *services.AssistantService
}

type chatRequest struct {
	Prompt string `json:"prompt"`
}

type analyzeRequest struct {
	Image  string `json:"image"`
	Prompt string `json:"prompt"`
}

func (h *AssistantHandler) Chat(c *fiber.Ctx) error {
	var req chatRequest
	if err := c.BodyParser(&req); err != nil {
		applog.Error(c, "assistant.chat.body", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": services.MsgChatFailed})
	}
	reply, err := h.Assistant.Chat(req.Prompt)
	if err != nil {
		var ce *services.ChatError
		if errors.As(err, &ce) {
			body := fiber.Map{"error": ce.Msg}
			if len(ce.Details) > 0 {
				body["details"] = ce.Details
			}
			return c.Status(ce.Status).JSON(body)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": services.MsgChatFailed})
	}
	return c.JSON(fiber.Map{"reply": reply})
}

// Analyze always answers 200; failures come back as a fallback analysis.
func (h *AssistantHandler) Analyze(c *fiber.Ctx) error {
	var req analyzeRequest
	if err := c.BodyParser(&req); err != nil {
		applog.Security(c, "assistant.analyze.body", map[string]any{"err": err.Error()})
	}
	return c.JSON(fiber.Map{"analysis": h.Assistant.Analyze(req.Image, req.Prompt)})
}
