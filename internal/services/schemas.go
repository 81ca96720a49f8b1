package services

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"google.golang.org/genai"
)

type SchemaKind string

const (
	KindString  SchemaKind = "STRING"
	KindInteger SchemaKind = "INTEGER"
	KindObject  SchemaKind = "OBJECT"
)

// Schema is a static declaration of the shape a structured model response
// must satisfy. Declared once per use case, never mutated at runtime.
type Schema struct {
	Kind        SchemaKind
	Description string
	Properties  map[string]*Schema
	Required    []string
}

// SkillGapSchema is the response shape for skill-gap analysis.
var SkillGapSchema = &Schema{
	Kind: KindObject,
	Properties: map[string]*Schema{
		"matching_skills": {
			Kind:        KindString,
			Description: "HTML formatted list of skills that match between resume and job description. Use bullet points and highlight key matches.",
		},
		"improvements": {
			Kind:        KindString,
			Description: "HTML formatted list of missing skills and areas for improvement. Use bullet points and be specific about what's needed.",
		},
	},
	Required: []string{"matching_skills", "improvements"},
}

// ATSScoreSchema is the response shape for general ATS scoring.
var ATSScoreSchema = &Schema{
	Kind: KindObject,
	Properties: map[string]*Schema{
		"ats_score": {
			Kind:        KindInteger,
			Description: "The general ATS compatibility score out of 100. Must be between 0 and 100.",
		},
		"strengths": {
			Kind:        KindString,
			Description: "List 3-5 key strengths of the resume that make it ATS-friendly.",
		},
		"improvements": {
			Kind:        KindString,
			Description: "List 3-5 specific areas for improvement to increase ATS compatibility.",
		},
		"overall_assessment": {
			Kind:        KindString,
			Description: "A brief overall assessment of the resume's ATS readiness and professional quality.",
		},
	},
	Required: []string{"ats_score", "strengths", "improvements", "overall_assessment"},
}

// ChatSchema is the response shape for the editing copilot.
var ChatSchema = &Schema{
	Kind: KindObject,
	Properties: map[string]*Schema{
		"reply_text": {
			Kind:        KindString,
			Description: "Short assistant reply to display in chat.",
		},
		"updated_preview": {
			Kind:        KindString,
			Description: "If the user requested edits, the fully updated resume text in Markdown. Otherwise empty string.",
		},
		"reasoning_summary": {
			Kind:        KindString,
			Description: "One or two concise sentences that explain the assistant's approach.",
		},
		"deliberation_steps": {
			Kind:        KindInteger,
			Description: "Rough step-count the model considered (1-10).",
		},
	},
	Required: []string{"reply_text", "updated_preview", "reasoning_summary", "deliberation_steps"},
}

// GenAI projects the declaration into the shape the Gemini API expects
// alongside a JSON response MIME type.
func (s *Schema) GenAI() *genai.Schema {
	out := &genai.Schema{
		Description: s.Description,
	}

	switch s.Kind {
	case KindString:
		out.Type = genai.TypeString
	case KindInteger:
		out.Type = genai.TypeInteger
	case KindObject:
		out.Type = genai.TypeObject
		out.Required = s.Required
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = prop.GenAI()
		}
	}

	return out
}

// JSONSchema projects the declaration into a plain JSON Schema document used
// to validate the parsed model output locally.
func (s *Schema) JSONSchema() map[string]any {
	out := map[string]any{}
	if s.Description != "" {
		out["description"] = s.Description
	}

	switch s.Kind {
	case KindString:
		out["type"] = "string"
	case KindInteger:
		out["type"] = "integer"
	case KindObject:
		out["type"] = "object"
		props := map[string]any{}
		for name, prop := range s.Properties {
			props[name] = prop.JSONSchema()
		}
		out["properties"] = props
		if len(s.Required) > 0 {
			out["required"] = s.Required
		}
	}

	return out
}

// Compile builds a validator for the declaration.
func (s *Schema) Compile() (*jsonschema.Schema, error) {
	raw, err := json.Marshal(s.JSONSchema())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}

	compiled, err := compiler.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	return compiled, nil
}
