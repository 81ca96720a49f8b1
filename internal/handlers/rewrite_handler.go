package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"resumeforge/internal/models"
	"resumeforge/internal/services"
)

type RewriteHandler struct {
	storage     services.StorageService
	parser      services.PDFParserService
	gemini      services.GeminiService
	prompts     *services.PromptBuilder
	model       string
	maxFileSize int64
}

func NewRewriteHandler(
	storage services.StorageService,
	parser services.PDFParserService,
	gemini services.GeminiService,
	model string,
	maxFileSize int64,
) *RewriteHandler {
	return &RewriteHandler{
		storage:     storage,
		parser:      parser,
		gemini:      gemini,
		prompts:     services.NewPromptBuilder(),
		model:       model,
		maxFileSize: maxFileSize,
	}
}

// HandleRewriteResume handles POST /rewrite_resume. It extracts the uploaded
// resume's text and asks the model for a rewrite tailored to the submitted
// job description.
func (h *RewriteHandler) HandleRewriteResume(c *fiber.Ctx) error {
	jobDescription := c.FormValue("job_description")
	if strings.TrimSpace(jobDescription) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing file or job description",
		})
	}

	resumeText, status, err := extractResumeFile(c, h.storage, h.parser, h.maxFileSize)
	if err != nil {
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	instruction, content := h.prompts.BuildResumeRewrite(jobDescription, resumeText)

	result, err := h.gemini.Generate(c.UserContext(), services.GenerationRequest{
		Model:       h.model,
		Instruction: instruction,
		Content:     content,
		Temperature: services.RewriteTemperature,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(models.RewriteResponse{
		RewrittenResume: result.Text,
		OriginalResume:  resumeText,
	})
}
