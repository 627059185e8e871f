package llm

import (
	"fmt"
	"strings"

	"swiftdoc/internal/domain"
)

// Style instructions keyed by document type. PowerPoint slides get short punchy
// text; Word sections get long-form prose with nested bullets.
const (
	slideStyle = `FORMAT FOR POWERPOINT SLIDE:
- INTELLIGENTLY CHOOSE FORMAT based on the section title:
    - IF the section is 'Introduction', 'Conclusion', 'Summary', or 'History': Write 1-4 clear, concise paragraphs. Do NOT use bullet points.
    - IF the section is 'Types', 'Causes', 'Features', 'Steps', or 'Benefits': Use a bulleted list (3-5 items).
- Use standard markdown bullet symbols (- or *) ONLY for lists.
- Bold key terms using **bold syntax**.
- Keep text concise and punchy.`

	documentStyle = `FORMAT FOR WORD DOCUMENT:
- Write a DETAILED, COMPREHENSIVE response (approx. 300-500 words).
- Structure the content using a mix of:
    1. Well-written paragraphs for introductions and explanations.
    2. Bulleted lists (using * or -).
    3. **Nested sub-bullets:** Indent sub-points with 2 spaces (e.g., "  - Subpoint").
- Use **bold** for important terminology.
- Use _underscores_ for italics.
- Maintain a professional, academic tone.`
)

// SectionPrompt builds the prompt that drafts content for one section.
func SectionPrompt(docType domain.DocType, topic, sectionTitle string) string {
	style := documentStyle
	if docType == domain.DocTypePowerPoint {
		style = slideStyle
	}

	return fmt.Sprintf(`You are an expert technical writer drafting a section for a %s.

Context:
- Topic: %q
- Section: %q

Task:
Write content strictly for the section %q.

%s

Strict constraints:
- Do NOT include the section title in your output.
- Do NOT include introductions or conclusions for the whole document.`,
		docType, topic, sectionTitle, sectionTitle, style)
}

// RefinePrompt builds the prompt that rewrites existing section content
// according to a user instruction.
func RefinePrompt(content, instruction string) string {
	return fmt.Sprintf("Original text: %s\n\nInstruction: %s\n\nRewrite the text:", content, instruction)
}

// OutlinePrompt builds the prompt that asks for a document outline.
func OutlinePrompt(docType domain.DocType, topic string) string {
	return fmt.Sprintf(`You are an expert document planner.
Task: Generate a structured outline for a %s about %q.

Rules:
1. If it's a 'pptx', generate 5-7 slide titles.
2. If it's a 'docx', generate 5-7 section headers.
3. Return ONLY the titles, one per line.
4. Do not include numbering (1. 2. etc) or bullet points.
5. Do not include any intro text, just the raw titles.`, docType, topic)
}

// ParseOutline turns a raw outline completion into a clean ordered list of
// titles: one per line, numbering and bullet prefixes stripped, blanks dropped.
// Models do not always follow the "no numbering" rule, so prefixes get
// stripped here as well.
func ParseOutline(raw string) []string {
	var titles []string
	for _, line := range strings.Split(raw, "\n") {
		title := strings.TrimSpace(line)
		title = strings.TrimLeft(title, "-*")
		title = stripLeadingNumber(title)
		title = strings.TrimSpace(title)
		if title != "" {
			titles = append(titles, title)
		}
	}
	return titles
}

// stripLeadingNumber removes prefixes like "1." or "12." from a title.
func stripLeadingNumber(s string) string {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i > 0 && i < len(s) && s[i] == '.' {
		return s[i+1:]
	}
	return s
}
