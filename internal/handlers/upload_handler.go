package handlers

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"resumeforge/internal/services"
)

type UploadHandler struct {
	storage     services.StorageService
	parser      services.PDFParserService
	maxFileSize int64
}

func NewUploadHandler(
	storage services.StorageService,
	parser services.PDFParserService,
	maxFileSize int64,
) *UploadHandler {
	return &UploadHandler{
		storage:     storage,
		parser:      parser,
		maxFileSize: maxFileSize,
	}
}

// HandleUploadForATS handles POST /upload_resume_for_ats.
func (h *UploadHandler) HandleUploadForATS(c *fiber.Ctx) error {
	text, status, err := extractResumeFile(c, h.storage, h.parser, h.maxFileSize)
	if err != nil {
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"original_resume": text})
}

// HandleUploadForCoverLetter handles POST /upload_resume_for_cover_letter.
func (h *UploadHandler) HandleUploadForCoverLetter(c *fiber.Ctx) error {
	text, status, err := extractResumeFile(c, h.storage, h.parser, h.maxFileSize)
	if err != nil {
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"resume_text": text})
}

// HandleUploadForSkillGap handles POST /upload_resume_for_skill_gap.
func (h *UploadHandler) HandleUploadForSkillGap(c *fiber.Ctx) error {
	text, status, err := extractResumeFile(c, h.storage, h.parser, h.maxFileSize)
	if err != nil {
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"resume_text": text})
}

// extractResumeFile validates the uploaded resume, stores it, extracts its
// text, and deletes the stored file on every path. Returns the extracted
// text, or the HTTP status and error to reply with.
func extractResumeFile(
	c *fiber.Ctx,
	storage services.StorageService,
	parser services.PDFParserService,
	maxFileSize int64,
) (string, int, error) {
	file, err := c.FormFile("resume")
	if err != nil {
		return "", fiber.StatusBadRequest, errors.New("No file uploaded")
	}

	if file.Filename == "" {
		return "", fiber.StatusBadRequest, errors.New("No selected file")
	}

	if !strings.HasSuffix(strings.ToLower(file.Filename), ".pdf") {
		return "", fiber.StatusBadRequest, errors.New("Unsupported file type. Please upload a PDF file.")
	}

	if file.Size > maxFileSize {
		return "", fiber.StatusBadRequest, fmt.Errorf("Resume file too large. Max size: %d bytes", maxFileSize)
	}

	filename, filePath, err := storage.SaveFile(file)
	if err != nil {
		return "", fiber.StatusInternalServerError, fmt.Errorf("failed to save resume file: %v", err)
	}

	text, extractErr := parser.ExtractText(filePath)

	// The stored file is removed whether or not extraction worked
	if err := storage.DeleteFile(filename); err != nil {
		log.Printf("failed to delete uploaded file %s: %v", filename, err)
	}

	if extractErr != nil {
		return "", fiber.StatusInternalServerError, errors.New("Could not extract text from PDF. The file might be corrupted or image-only.")
	}

	return text, 0, nil
}
