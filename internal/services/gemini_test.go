package services

import (
	"context"
	"errors"
	"testing"
)

func TestGenerateWithoutCredential(t *testing.T) {
	svc, err := NewGeminiService("")
	if err != nil {
		t.Fatalf("construction without a credential should succeed: %v", err)
	}

	_, err = svc.Generate(context.Background(), GenerationRequest{
		Model:       "gemini-2.5-pro",
		Instruction: "instruction",
		Content:     "content",
	})
	if !errors.Is(err, ErrClientUnavailable) {
		t.Errorf("expected ErrClientUnavailable, got %v", err)
	}
}

func TestDecodeStructured(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		text := `{"matching_skills": "<ul><li>Go</li></ul>", "improvements": "<ul><li>Kubernetes</li></ul>"}`
		fields, err := decodeStructured(text, SkillGapSchema)
		if err != nil {
			t.Fatalf("valid payload rejected: %v", err)
		}
		if fields["matching_skills"] != "<ul><li>Go</li></ul>" {
			t.Errorf("unexpected matching_skills: %v", fields["matching_skills"])
		}
	})

	t.Run("malformed JSON", func(t *testing.T) {
		_, err := decodeStructured("not json at all", SkillGapSchema)
		if !errors.Is(err, ErrGenerationFailed) {
			t.Errorf("expected ErrGenerationFailed, got %v", err)
		}
	})

	t.Run("shape mismatch", func(t *testing.T) {
		_, err := decodeStructured(`{"matching_skills": "only one field"}`, SkillGapSchema)
		if !errors.Is(err, ErrGenerationFailed) {
			t.Errorf("expected ErrGenerationFailed, got %v", err)
		}
	})

	t.Run("non-object payload", func(t *testing.T) {
		_, err := decodeStructured(`["a", "b"]`, SkillGapSchema)
		if !errors.Is(err, ErrGenerationFailed) {
			t.Errorf("expected ErrGenerationFailed, got %v", err)
		}
	})

	t.Run("wrong field type", func(t *testing.T) {
		text := `{"ats_score": "eighty", "strengths": "s", "improvements": "i", "overall_assessment": "o"}`
		_, err := decodeStructured(text, ATSScoreSchema)
		if !errors.Is(err, ErrGenerationFailed) {
			t.Errorf("expected ErrGenerationFailed, got %v", err)
		}
	})
}
