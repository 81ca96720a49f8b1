package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"resumeforge/internal/models"
	"resumeforge/internal/services"
)

type ATSHandler struct {
	gemini  services.GeminiService
	prompts *services.PromptBuilder
	model   string
}

func NewATSHandler(gemini services.GeminiService, model string) *ATSHandler {
	return &ATSHandler{
		gemini:  gemini,
		prompts: services.NewPromptBuilder(),
		model:   model,
	}
}

// HandleGetATSScore handles POST /get_ats_score. A structurally valid reply
// with a score outside 0-100 is still rejected rather than forwarded.
func (h *ATSHandler) HandleGetATSScore(c *fiber.Ctx) error {
	var req models.ATSScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing original resume input for scoring in JSON body.",
		})
	}

	if strings.TrimSpace(req.OriginalResume) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing original resume input for scoring in JSON body.",
		})
	}

	instruction, content := h.prompts.BuildATSScore(req.OriginalResume)

	result, err := h.gemini.Generate(c.UserContext(), services.GenerationRequest{
		Model:       h.model,
		Instruction: instruction,
		Content:     content,
		Temperature: services.ATSScoreTemperature,
		Schema:      services.ATSScoreSchema,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	score, ok := fieldInt(result.Fields, "ats_score")
	if !ok || score < 0 || score > 100 {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate ATS score: score out of range",
		})
	}

	return c.JSON(models.ATSScoreResponse{
		ATSScore:          score,
		Strengths:         fieldString(result.Fields, "strengths"),
		Improvements:      fieldString(result.Fields, "improvements"),
		OverallAssessment: fieldString(result.Fields, "overall_assessment"),
	})
}
