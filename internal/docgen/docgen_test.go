package docgen

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"swiftdoc/internal/domain"
)

func readZip(t *testing.T, data []byte) map[string]string {
	t.Helper()
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("open zip: %v", err)
	}

	parts := make(map[string]string)
	for _, f := range reader.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open part %s: %v", f.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("read part %s: %v", f.Name, err)
		}
		parts[f.Name] = string(content)
	}
	return parts
}

func testProject(docType domain.DocType) *domain.Project {
	return &domain.Project{
		ID:      "p1",
		Title:   "Glacier Retreat",
		DocType: docType,
		Topic:   "alpine glaciers under warming",
	}
}

func TestWriteDocx(t *testing.T) {
	sections := []domain.Section{
		{ID: "s1", Title: "Introduction", Content: "Glaciers are **shrinking**.\n- evidence one\n  - nested point"},
		{ID: "s2", Title: "Methods", Content: ""},
	}

	var buf bytes.Buffer
	if err := WriteDocx(&buf, testProject(domain.DocTypeWord), sections); err != nil {
		t.Fatalf("write docx: %v", err)
	}
	parts := readZip(t, buf.Bytes())

	for _, name := range []string{"[Content_Types].xml", "_rels/.rels", "word/document.xml", "word/styles.xml"} {
		if _, ok := parts[name]; !ok {
			t.Errorf("missing part %s", name)
		}
	}

	doc := parts["word/document.xml"]
	for _, want := range []string{"Glacier Retreat", "Introduction", "Methods", "[No content]", "shrinking", "<w:b/>"} {
		if !strings.Contains(doc, want) {
			t.Errorf("document.xml missing %q", want)
		}
	}
}

func TestWriteDocxEscapesMarkup(t *testing.T) {
	sections := []domain.Section{
		{ID: "s1", Title: "A < B", Content: "cats & dogs"},
	}

	var buf bytes.Buffer
	if err := WriteDocx(&buf, testProject(domain.DocTypeWord), sections); err != nil {
		t.Fatalf("write docx: %v", err)
	}
	doc := readZip(t, buf.Bytes())["word/document.xml"]

	if strings.Contains(doc, "A < B") || strings.Contains(doc, "cats & dogs") {
		t.Error("raw markup characters leaked into document.xml")
	}
	if !strings.Contains(doc, "A &lt; B") || !strings.Contains(doc, "cats &amp; dogs") {
		t.Error("markup characters not escaped")
	}
}

func TestWritePptx(t *testing.T) {
	sections := []domain.Section{
		{ID: "s1", Title: "Overview", Content: "- point one\n- point two"},
		{ID: "s2", Title: "Outlook", Content: ""},
	}

	var buf bytes.Buffer
	if err := WritePptx(&buf, testProject(domain.DocTypePowerPoint), sections); err != nil {
		t.Fatalf("write pptx: %v", err)
	}
	parts := readZip(t, buf.Bytes())

	for _, name := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"ppt/presentation.xml",
		"ppt/slideMasters/slideMaster1.xml",
		"ppt/theme/theme1.xml",
	} {
		if _, ok := parts[name]; !ok {
			t.Errorf("missing part %s", name)
		}
	}

	// Title slide plus one slide per section.
	slideCount := 0
	for name := range parts {
		if strings.HasPrefix(name, "ppt/slides/slide") && !strings.Contains(name, "_rels") {
			slideCount++
		}
	}
	if slideCount != 3 {
		t.Errorf("slide count = %d, want 3", slideCount)
	}

	if !strings.Contains(parts["ppt/slides/slide1.xml"], "Glacier Retreat") {
		t.Error("title slide missing project title")
	}
	if !strings.Contains(parts["ppt/slides/slide2.xml"], "point one") {
		t.Error("section slide missing bullet content")
	}
}
