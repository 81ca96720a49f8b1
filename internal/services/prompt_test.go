package services

import (
	"strings"
	"testing"
)

func TestBuildResumeRewriteInterpolatesInputs(t *testing.T) {
	pb := NewPromptBuilder()

	jobDescription := "Senior Go developer, Kubernetes experience required"
	resumeText := "Jane Doe\nBackend engineer, 5 years of Go"

	instruction, content := pb.BuildResumeRewrite(jobDescription, resumeText)

	if !strings.Contains(content, "Job Description:\n---\n"+jobDescription+"\n---") {
		t.Errorf("content does not carry the job description between delimiters:\n%s", content)
	}
	if !strings.Contains(content, "Existing Resume:\n---\n"+resumeText+"\n---") {
		t.Errorf("content does not carry the resume text between delimiters:\n%s", content)
	}
	if strings.Contains(instruction, "#") {
		t.Errorf("rewrite instruction must not contain a literal markdown heading marker: %s", instruction)
	}
}

func TestBuildCoverLetterStyles(t *testing.T) {
	pb := NewPromptBuilder()

	styles := []string{"professional", "modern", "creative", "executive"}
	seen := map[string]string{}
	for _, style := range styles {
		instruction, _ := pb.BuildCoverLetter("jd", "resume", style)
		for prev, prevInstruction := range seen {
			if prevInstruction == instruction {
				t.Errorf("styles %q and %q produced identical instructions", prev, style)
			}
		}
		seen[style] = instruction
	}
}

func TestBuildCoverLetterUnknownStyleFallsBack(t *testing.T) {
	pb := NewPromptBuilder()

	defaultInstruction, _ := pb.BuildCoverLetter("jd", "resume", "professional")
	unknownInstruction, _ := pb.BuildCoverLetter("jd", "resume", "futuristic")

	if unknownInstruction != defaultInstruction {
		t.Errorf("unknown style should fall back to the professional instruction")
	}
}

func TestBuildChatPreviewTagging(t *testing.T) {
	pb := NewPromptBuilder()

	cases := []struct {
		name        string
		preview     string
		wantLabel   string
		wantText    string
		rejectLabel string
	}{
		{
			name:        "resume tag",
			preview:     "RESUME:abc",
			wantLabel:   "Current Resume Preview",
			wantText:    "---\nabc\n---",
			rejectLabel: "Current Cover Letter Preview",
		},
		{
			name:        "cover letter tag",
			preview:     "COVER_LETTER:xyz",
			wantLabel:   "Current Cover Letter Preview",
			wantText:    "---\nxyz\n---",
			rejectLabel: "Current Resume Preview",
		},
		{
			name:        "legacy untagged preview",
			preview:     "plain old preview",
			wantLabel:   "Current Resume Preview",
			wantText:    "---\nplain old preview\n---",
			rejectLabel: "Current Cover Letter Preview",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, content := pb.BuildChat("tighten my summary", "", tc.preview)

			if !strings.Contains(content, tc.wantLabel) {
				t.Errorf("content missing label %q:\n%s", tc.wantLabel, content)
			}
			if !strings.Contains(content, tc.wantText) {
				t.Errorf("content missing preview text %q:\n%s", tc.wantText, content)
			}
			if strings.Contains(content, tc.rejectLabel) {
				t.Errorf("content carries wrong label %q:\n%s", tc.rejectLabel, content)
			}
		})
	}
}

func TestBuildChatOmitsAbsentSections(t *testing.T) {
	pb := NewPromptBuilder()

	_, content := pb.BuildChat("hello", "", "")

	if strings.Contains(content, "Job Description:") {
		t.Errorf("content should not include a job description section:\n%s", content)
	}
	if strings.Contains(content, "Preview") {
		t.Errorf("content should not include a preview section:\n%s", content)
	}
	if !strings.Contains(content, "User Message:\n---\nhello\n---") {
		t.Errorf("content missing user message:\n%s", content)
	}
}
