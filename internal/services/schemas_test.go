package services

import (
	"testing"

	"google.golang.org/genai"
)

func TestATSScoreSchemaProjection(t *testing.T) {
	projected := ATSScoreSchema.GenAI()

	if projected.Type != genai.TypeObject {
		t.Fatalf("expected object schema, got %v", projected.Type)
	}
	if len(projected.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(projected.Properties))
	}
	if projected.Properties["ats_score"].Type != genai.TypeInteger {
		t.Errorf("ats_score should be an integer field")
	}
	if len(projected.Required) != 4 {
		t.Errorf("expected all 4 fields required, got %v", projected.Required)
	}
}

func TestSchemaValidation(t *testing.T) {
	compiled, err := ChatSchema.Compile()
	if err != nil {
		t.Fatalf("failed to compile chat schema: %v", err)
	}

	valid := map[string]any{
		"reply_text":         "Done.",
		"updated_preview":    "",
		"reasoning_summary":  "Reworded the summary.",
		"deliberation_steps": float64(3),
	}
	if err := compiled.Validate(valid); err != nil {
		t.Errorf("valid payload rejected: %v", err)
	}

	missing := map[string]any{
		"reply_text": "Done.",
	}
	if err := compiled.Validate(missing); err == nil {
		t.Errorf("payload with missing required fields accepted")
	}

	wrongType := map[string]any{
		"reply_text":         "Done.",
		"updated_preview":    "",
		"reasoning_summary":  "ok",
		"deliberation_steps": "three",
	}
	if err := compiled.Validate(wrongType); err == nil {
		t.Errorf("payload with non-integer step count accepted")
	}
}
