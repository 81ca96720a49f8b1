package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"resumeforge/internal/models"
	"resumeforge/internal/services"
)

type CoverLetterHandler struct {
	gemini  services.GeminiService
	prompts *services.PromptBuilder
	model   string
}

func NewCoverLetterHandler(gemini services.GeminiService, model string) *CoverLetterHandler {
	return &CoverLetterHandler{
		gemini:  gemini,
		prompts: services.NewPromptBuilder(),
		model:   model,
	}
}

// HandleGenerateCoverLetter handles POST /generate_cover_letter.
func (h *CoverLetterHandler) HandleGenerateCoverLetter(c *fiber.Ctx) error {
	var req models.CoverLetterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing job description or resume text in JSON body",
		})
	}

	if strings.TrimSpace(req.JobDescription) == "" || strings.TrimSpace(req.ResumeText) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Job description and resume text cannot be empty",
		})
	}

	style := req.TemplateStyle
	if style == "" {
		style = services.DefaultTemplateStyle
	}

	instruction, content := h.prompts.BuildCoverLetter(req.JobDescription, req.ResumeText, style)

	result, err := h.gemini.Generate(c.UserContext(), services.GenerationRequest{
		Model:       h.model,
		Instruction: instruction,
		Content:     content,
		Temperature: services.CoverLetterTemperature,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(models.CoverLetterResponse{
		CoverLetter: result.Text,
	})
}
