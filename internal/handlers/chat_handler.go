package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"resumeforge/internal/models"
	"resumeforge/internal/services"
)

type ChatHandler struct {
	gemini  services.GeminiService
	prompts *services.PromptBuilder
	model   string
}

func NewChatHandler(gemini services.GeminiService, model string) *ChatHandler {
	return &ChatHandler{
		gemini:  gemini,
		prompts: services.NewPromptBuilder(),
		model:   model,
	}
}

// HandleChat handles POST /chat, the conversational editing copilot. Blank
// optional fields in the model reply are normalized to JSON null, and the
// deliberation-step count is narrowed to an integer or null.
func (h *ChatHandler) HandleChat(c *fiber.Ctx) error {
	var req models.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Content-Type must be application/json",
		})
	}

	message := strings.TrimSpace(req.Message)
	jobDescription := strings.TrimSpace(req.JobDescription)
	currentPreview := strings.TrimSpace(req.CurrentPreview)

	if message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing message",
		})
	}

	instruction, content := h.prompts.BuildChat(message, jobDescription, currentPreview)

	result, err := h.gemini.Generate(c.UserContext(), services.GenerationRequest{
		Model:       h.model,
		Instruction: instruction,
		Content:     content,
		Temperature: services.ChatTemperature,
		Schema:      services.ChatSchema,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	resp := models.ChatResponse{
		ReplyText: strings.TrimSpace(fieldString(result.Fields, "reply_text")),
	}

	if preview := strings.TrimSpace(fieldString(result.Fields, "updated_preview")); preview != "" {
		resp.UpdatedPreview = &preview
	}
	if reasoning := strings.TrimSpace(fieldString(result.Fields, "reasoning_summary")); reasoning != "" {
		resp.ReasoningSummary = &reasoning
	}
	if steps, ok := fieldInt(result.Fields, "deliberation_steps"); ok {
		resp.DeliberationSteps = &steps
	}

	return c.JSON(resp)
}
