package service

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"testing"

	"swiftdoc/internal/domain"
)

func TestExport(t *testing.T) {
	projects := newFakeProjectRepo()
	sections := newFakeSectionRepo()
	svc := NewExportService(projects, sections, testLogger())

	seed := func(t *testing.T, docType domain.DocType) string {
		t.Helper()
		project := &domain.Project{UserID: "u1", Title: "Field Notes", DocType: docType, Topic: "glaciers"}
		if err := projects.Create(context.Background(), project); err != nil {
			t.Fatalf("seed project: %v", err)
		}
		if err := sections.Create(context.Background(), &domain.Section{
			ProjectID: project.ID, Title: "Introduction", Content: "Some **prose**.",
		}); err != nil {
			t.Fatalf("seed section: %v", err)
		}
		return project.ID
	}

	t.Run("docx project exports as document.docx", func(t *testing.T) {
		id := seed(t, domain.DocTypeWord)

		data, filename, err := svc.Export(context.Background(), id, "u1")
		if err != nil {
			t.Fatalf("export: %v", err)
		}
		if filename != "document.docx" {
			t.Errorf("filename = %q, want document.docx", filename)
		}
		if _, err := zip.NewReader(bytes.NewReader(data), int64(len(data))); err != nil {
			t.Errorf("artifact is not a valid zip: %v", err)
		}
	})

	t.Run("pptx project exports as document.pptx", func(t *testing.T) {
		id := seed(t, domain.DocTypePowerPoint)

		_, filename, err := svc.Export(context.Background(), id, "u1")
		if err != nil {
			t.Fatalf("export: %v", err)
		}
		if filename != "document.pptx" {
			t.Errorf("filename = %q, want document.pptx", filename)
		}
	})

	t.Run("other users cannot export the project", func(t *testing.T) {
		id := seed(t, domain.DocTypeWord)

		if _, _, err := svc.Export(context.Background(), id, "u2"); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})
}
