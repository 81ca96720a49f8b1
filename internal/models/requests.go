package models

type CoverLetterRequest struct {
	JobDescription string `json:"job_description"`
	ResumeText     string `json:"resume_text"`
	TemplateStyle  string `json:"template_style"`
}

type SkillGapRequest struct {
	JobDescription string `json:"job_description"`
	ResumeText     string `json:"resume_text"`
}

type ATSScoreRequest struct {
	OriginalResume string `json:"original_resume"`
}

type ChatRequest struct {
	Message        string `json:"message"`
	JobDescription string `json:"job_description"`
	CurrentPreview string `json:"current_preview"`
}
