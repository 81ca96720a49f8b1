package handlers

import "github.com/gofiber/fiber/v2"

// PagesHandler serves the browser front end.
type PagesHandler struct{}

func NewPagesHandler() *PagesHandler {
	return &PagesHandler{}
}

func (h *PagesHandler) HandleHome(c *fiber.Ctx) error {
	return c.Render("home", fiber.Map{"Title": "AI Resume Toolkit"})
}

func (h *PagesHandler) HandleATSChecker(c *fiber.Ctx) error {
	return c.Render("ats_checker", fiber.Map{"Title": "ATS Score Checker"})
}

func (h *PagesHandler) HandleResumeGenerator(c *fiber.Ctx) error {
	return c.Render("resume_generator", fiber.Map{"Title": "Resume Generator"})
}

func (h *PagesHandler) HandleCoverLetter(c *fiber.Ctx) error {
	return c.Render("cover_letter", fiber.Map{"Title": "Cover Letter Generator"})
}

func (h *PagesHandler) HandleSkillGap(c *fiber.Ctx) error {
	return c.Render("skill_gap", fiber.Map{"Title": "Skill Gap Analysis"})
}
