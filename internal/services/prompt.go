package services

import (
	"fmt"
	"strings"
)

// Per-use-case sampling temperatures.
const (
	RewriteTemperature     float32 = 0.6
	CoverLetterTemperature float32 = 0.7
	SkillGapTemperature    float32 = 0.3
	ATSScoreTemperature    float32 = 0.2
	ChatTemperature        float32 = 0.4
)

// Preview tags used by the chat endpoint to mark which document kind the
// front end is currently editing.
const (
	CoverLetterPreviewTag = "COVER_LETTER:"
	ResumePreviewTag      = "RESUME:"
)

// DefaultTemplateStyle is used when a cover-letter request names an unknown
// style.
const DefaultTemplateStyle = "professional"

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildResumeRewrite returns the instruction and content for rewriting an
// existing resume against a job description.
func (pb *PromptBuilder) BuildResumeRewrite(jobDescription, resumeText string) (string, string) {
	instruction := "You are an expert HR and professional resume writer. " +
		"Your task is to rewrite the provided 'Existing Resume' to perfectly match " +
		"the 'Job Description'. Use existing content that is suitable. " +
		"If any required skills or projects are missing for the job role, seamlessly add them based on common job requirements. " +
		"Rephrase and reformat content to highlight keywords and relevance. " +
		"Use bullet points and proper professional sections. " +
		"Heading (like project names, technical skills, education, certification, and awards) should be in **bold and uppercase**." +
		"The output must be the full, complete, and rewritten resume text, formatted clearly with Markdown. " +
		"DO NOT include any introductory dialogue or surrounding text—only the resume. " +
		"DO NOT use the hash symbol for headings - use **bold** formatting instead. " +
		"DO NOT use --- separators anywhere in the resume. " +
		"The resume can be longer than one page if necessary."

	content := fmt.Sprintf(
		"Job Description:\n---\n%s\n---\n\n"+
			"Existing Resume:\n---\n%s\n---\n\n"+
			"REWRITTEN PROFESSIONAL RESUME:",
		jobDescription, resumeText,
	)

	return instruction, content
}

var templateInstructions = map[string]string{
	"professional": "Write a professional, formal cover letter with clear structure including: " +
		"proper business letter format with date, recipient address, greeting, " +
		"3-4 paragraphs (introduction, body with specific examples, closing), " +
		"and professional sign-off.",
	"modern": "Write a modern, engaging cover letter that stands out while remaining professional. " +
		"Use a more conversational tone, include specific achievements with metrics, " +
		"and demonstrate passion for the role. Structure: compelling opening, " +
		"2-3 body paragraphs with concrete examples, and strong closing.",
	"creative": "Write a creative cover letter that showcases personality while maintaining professionalism. " +
		"Use storytelling elements, include unique angles about why you're perfect for the role, " +
		"and demonstrate creativity in presentation. Structure: hook opening, " +
		"narrative body with examples, memorable closing.",
	"executive": "Write an executive-level cover letter with strategic focus and leadership emphasis. " +
		"Highlight vision, strategic thinking, and high-level achievements. " +
		"Use confident language and focus on business impact. Structure: " +
		"executive summary opening, strategic body paragraphs, leadership-focused closing.",
}

// BuildCoverLetter returns the instruction and content for generating a
// cover letter in one of the named template styles. An unknown style falls
// back to the professional template.
func (pb *PromptBuilder) BuildCoverLetter(jobDescription, resumeText, templateStyle string) (string, string) {
	templatePrompt, ok := templateInstructions[templateStyle]
	if !ok {
		templatePrompt = templateInstructions[DefaultTemplateStyle]
	}

	instruction := "You are an expert professional cover letter writer. " +
		templatePrompt + " " +
		"Extract relevant information from both the job description and resume to create a compelling cover letter. " +
		"Use specific examples from the resume that match job requirements. " +
		"Address the hiring manager directly and demonstrate knowledge of the company/role. " +
		"The output must be the complete cover letter text, properly formatted. " +
		"DO NOT include any introductory dialogue or surrounding text—only the cover letter. " +
		"Use proper business letter formatting with appropriate spacing and structure."

	content := fmt.Sprintf(
		"Job Description:\n---\n%s\n---\n\n"+
			"Resume Information:\n---\n%s\n---\n\n"+
			"PROFESSIONAL COVER LETTER:",
		jobDescription, resumeText,
	)

	return instruction, content
}

// BuildSkillGap returns the instruction and content for analyzing skill gaps
// between a resume and a job description.
func (pb *PromptBuilder) BuildSkillGap(jobDescription, resumeText string) (string, string) {
	instruction := "You are an expert career advisor and skills analyst. " +
		"Your task is to analyze the given resume against the job description to identify: " +
		"1. Skills that match between the resume and job requirements " +
		"2. Missing skills and areas for improvement " +
		"Your output MUST be a single JSON object that strictly conforms to the provided schema."

	content := fmt.Sprintf(
		"Job Description:\n---\n%s\n---\n\n"+
			"Resume:\n---\n%s\n---\n\n"+
			"Analyze the resume against the job description and provide:\n"+
			"1. A comprehensive list of matching skills (technical skills, soft skills, tools, technologies, etc.)\n"+
			"2. Missing skills and areas for improvement that would make the candidate more suitable for this role\n\n"+
			"Focus on specific, actionable insights that help the candidate understand their skill alignment.",
		jobDescription, resumeText,
	)

	return instruction, content
}

// BuildATSScore returns the instruction and content for scoring a single
// resume for general ATS compatibility. No job description is involved.
func (pb *PromptBuilder) BuildATSScore(originalResume string) (string, string) {
	instruction := "You are an expert ATS (Applicant Tracking System) analyst and Senior Recruiter. " +
		"Your task is to evaluate the given resume for general ATS compatibility and overall quality. " +
		"Provide a numerical score out of 100 that represents the likelihood this resume will pass ATS screening for most job applications. " +
		"Focus on technical formatting, keyword optimization, structure, and overall professional presentation. " +
		"Your output MUST be a single JSON object that strictly conforms to the provided schema."

	content := fmt.Sprintf(
		"Resume to Analyze:\n---\n%s\n---\n\n"+
			"Analyze this resume for general ATS compatibility. Consider:\n"+
			"- Technical formatting (proper headers, consistent structure, clean layout)\n"+
			"- Keyword optimization and industry-relevant terms\n"+
			"- Contact information completeness\n"+
			"- Professional summary quality\n"+
			"- Skills section organization\n"+
			"- Work experience formatting and detail\n"+
			"- Education section completeness\n"+
			"- Overall readability and ATS-friendly formatting\n"+
			"- Length appropriateness (not too short, not too long)\n"+
			"- Action verbs and quantified achievements\n\n"+
			"Generate a score that reflects how well this resume would perform across various job applications and ATS systems.",
		originalResume,
	)

	return instruction, content
}

// BuildChat returns the instruction and content for the conversational
// editing copilot. The current preview may carry a COVER_LETTER: or RESUME:
// tag; untagged previews are treated as resumes for legacy clients.
func (pb *PromptBuilder) BuildChat(message, jobDescription, currentPreview string) (string, string) {
	instruction := "You are a friendly, concise resume and cover letter writing copilot for end users. " +
		"Help improve the user's resume or cover letter for a given job description. " +
		"When the user asks for a change, produce the updated full text (resume or cover letter), formatted with clear Markdown (bold for sections, bullet points). " +
		"For cover letters, maintain proper business letter formatting with appropriate spacing and structure. " +
		"If the user is only asking for advice, set 'updated_preview' to an empty string. " +
		"Keep the tone professional and helpful. " +
		"Determine from context whether the user is editing a resume or cover letter."

	var parts []string
	if jobDescription != "" {
		parts = append(parts, fmt.Sprintf("Job Description:\n---\n%s\n---\n", jobDescription))
	}
	if currentPreview != "" {
		switch {
		case strings.HasPrefix(currentPreview, CoverLetterPreviewTag):
			text := strings.TrimPrefix(currentPreview, CoverLetterPreviewTag)
			parts = append(parts, fmt.Sprintf("Current Cover Letter Preview (Raw HTML/Text):\n---\n%s\n---\n", text))
		case strings.HasPrefix(currentPreview, ResumePreviewTag):
			text := strings.TrimPrefix(currentPreview, ResumePreviewTag)
			parts = append(parts, fmt.Sprintf("Current Resume Preview (Raw HTML/Text):\n---\n%s\n---\n", text))
		default:
			// Older front ends send the preview untagged; treat as a resume
			parts = append(parts, fmt.Sprintf("Current Resume Preview (Raw HTML/Text):\n---\n%s\n---\n", currentPreview))
		}
	}
	parts = append(parts, fmt.Sprintf("User Message:\n---\n%s\n---\n", message))
	parts = append(parts,
		"If the user's message requests modifications, update the document fully and return it as updated_preview in Markdown format. "+
			"Prefix your response with 'COVER_LETTER:' if editing a cover letter, or 'RESUME:' if editing a resume. "+
			"If no update is needed, set updated_preview to an empty string. "+
			"Do not include any introductory dialogue in the 'updated_preview' field.")

	return instruction, strings.Join(parts, "\n\n")
}
