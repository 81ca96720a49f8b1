package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"resumeforge/internal/models"
	"resumeforge/internal/services"
)

type SkillGapHandler struct {
	gemini  services.GeminiService
	prompts *services.PromptBuilder
	model   string
}

func NewSkillGapHandler(gemini services.GeminiService, model string) *SkillGapHandler {
	return &SkillGapHandler{
		gemini:  gemini,
		prompts: services.NewPromptBuilder(),
		model:   model,
	}
}

// HandleAnalyzeSkillGap handles POST /analyze_skill_gap. The model reply is
// constrained to the skill-gap schema and validated before it is forwarded.
func (h *SkillGapHandler) HandleAnalyzeSkillGap(c *fiber.Ctx) error {
	var req models.SkillGapRequest
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

	instruction, content := h.prompts.BuildSkillGap(req.JobDescription, req.ResumeText)

	result, err := h.gemini.Generate(c.UserContext(), services.GenerationRequest{
		Model:       h.model,
		Instruction: instruction,
		Content:     content,
		Temperature: services.SkillGapTemperature,
		Schema:      services.SkillGapSchema,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(models.SkillGapResponse{
		MatchingSkills: fieldString(result.Fields, "matching_skills"),
		Improvements:   fieldString(result.Fields, "improvements"),
	})
}
