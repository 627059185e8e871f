package llm

import (
	"reflect"
	"strings"
	"testing"

	"swiftdoc/internal/domain"
)

func TestSectionPrompt(t *testing.T) {
	tests := []struct {
		name        string
		docType     domain.DocType
		wantContain string
		wantAbsent  string
	}{
		{
			name:        "pptx uses slide style",
			docType:     domain.DocTypePowerPoint,
			wantContain: "POWERPOINT SLIDE",
			wantAbsent:  "WORD DOCUMENT",
		},
		{
			name:        "docx uses document style",
			docType:     domain.DocTypeWord,
			wantContain: "WORD DOCUMENT",
			wantAbsent:  "POWERPOINT SLIDE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt := SectionPrompt(tt.docType, "glacier retreat", "Introduction")
			if !strings.Contains(prompt, tt.wantContain) {
				t.Errorf("prompt missing %q", tt.wantContain)
			}
			if strings.Contains(prompt, tt.wantAbsent) {
				t.Errorf("prompt contains %q", tt.wantAbsent)
			}
			if !strings.Contains(prompt, "glacier retreat") || !strings.Contains(prompt, "Introduction") {
				t.Error("prompt missing topic or section title")
			}
		})
	}
}

func TestRefinePrompt(t *testing.T) {
	prompt := RefinePrompt("old prose", "make it shorter")
	if !strings.Contains(prompt, "old prose") || !strings.Contains(prompt, "make it shorter") {
		t.Errorf("prompt missing content or instruction: %q", prompt)
	}
}

func TestParseOutline(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{
			name:     "clean lines",
			raw:      "Introduction\nMethods\nResults",
			expected: []string{"Introduction", "Methods", "Results"},
		},
		{
			name:     "strips numbering",
			raw:      "1. Introduction\n2. Methods\n12. Appendix",
			expected: []string{"Introduction", "Methods", "Appendix"},
		},
		{
			name:     "strips bullet prefixes",
			raw:      "- Introduction\n* Methods\n-- Results",
			expected: []string{"Introduction", "Methods", "Results"},
		},
		{
			name:     "drops blank lines and whitespace",
			raw:      "\n  Introduction  \n\n\tMethods\n   \n",
			expected: []string{"Introduction", "Methods"},
		},
		{
			name:     "keeps interior numbers and dashes",
			raw:      "Top 10 Causes\nRisk-Benefit Analysis",
			expected: []string{"Top 10 Causes", "Risk-Benefit Analysis"},
		},
		{
			name:     "empty input",
			raw:      "",
			expected: nil,
		},
		{
			name:     "bare number without dot survives",
			raw:      "2024 Outlook",
			expected: []string{"2024 Outlook"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseOutline(tt.raw)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ParseOutline(%q) = %v, want %v", tt.raw, got, tt.expected)
			}
		})
	}
}
