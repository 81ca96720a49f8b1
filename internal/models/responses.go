package models

type RewriteResponse struct {
	RewrittenResume string `json:"rewritten_resume"`
	OriginalResume  string `json:"original_resume"`
}

type CoverLetterResponse struct {
	CoverLetter string `json:"cover_letter"`
}

type SkillGapResponse struct {
	MatchingSkills string `json:"matching_skills"`
	Improvements   string `json:"improvements"`
}

type ATSScoreResponse struct {
	ATSScore          int    `json:"ats_score"`
	Strengths         string `json:"strengths"`
	Improvements      string `json:"improvements"`
	OverallAssessment string `json:"overall_assessment"`
}

// ChatResponse uses pointers for the optional fields so that blank values
// from the model serialize as JSON null rather than empty strings.
type ChatResponse struct {
	ReplyText         string  `json:"reply_text"`
	UpdatedPreview    *string `json:"updated_preview"`
	ReasoningSummary  *string `json:"reasoning_summary"`
	DeliberationSteps *int    `json:"deliberation_steps"`
}
