package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"swiftdoc/internal/domain"
	"swiftdoc/internal/domain/services"
	"swiftdoc/internal/httputil"
)

// stubSectionService drives the handler tests with canned results.
type stubSectionService struct {
	content string
	err     error

	lastSectionID   string
	lastInstruction string
}

func (s *stubSectionService) Generate(ctx context.Context, sectionID, userID string) (string, error) {
	s.lastSectionID = sectionID
	return s.content, s.err
}

func (s *stubSectionService) Refine(ctx context.Context, sectionID, userID string, req *services.RefineRequest) (string, error) {
	s.lastSectionID = sectionID
	s.lastInstruction = req.Instruction
	return s.content, s.err
}

func (s *stubSectionService) SubmitFeedback(ctx context.Context, sectionID, userID string, req *services.FeedbackRequest) error {
	s.lastSectionID = sectionID
	return s.err
}

func newSectionMux(svc services.SectionService) *http.ServeMux {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewSectionHandler(svc, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/sections/{id}/generate", h.Generate)
	mux.HandleFunc("POST /api/sections/{id}/refine", h.Refine)
	mux.HandleFunc("POST /api/sections/{id}/feedback", h.SubmitFeedback)
	return mux
}

func authedRequest(method, path string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, path, body)
	return httputil.WithUserID(req, "user-1")
}

func TestSectionHandlerGenerate(t *testing.T) {
	t.Run("returns the generated content", func(t *testing.T) {
		svc := &stubSectionService{content: "generated prose"}
		mux := newSectionMux(svc)

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/sections/s1/generate", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		var resp map[string]string
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp["content"] != "generated prose" {
			t.Errorf("content = %q", resp["content"])
		}
		if svc.lastSectionID != "s1" {
			t.Errorf("section id = %q, want s1", svc.lastSectionID)
		}
	})

	t.Run("unknown section maps to a 404 problem", func(t *testing.T) {
		svc := &stubSectionService{err: &domain.NotFoundError{Message: "section not found"}}
		mux := newSectionMux(svc)

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/sections/missing/generate", nil))

		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
		var problem httputil.ProblemDetail
		if err := json.NewDecoder(rec.Body).Decode(&problem); err != nil {
			t.Fatalf("decode problem: %v", err)
		}
		if problem.Status != http.StatusNotFound || problem.Detail == "" {
			t.Errorf("problem = %+v", problem)
		}
	})

	t.Run("unauthenticated requests get 401", func(t *testing.T) {
		mux := newSectionMux(&stubSectionService{})

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/sections/s1/generate", nil))

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})
}

func TestSectionHandlerRefine(t *testing.T) {
	t.Run("passes the instruction through", func(t *testing.T) {
		svc := &stubSectionService{content: "refined prose"}
		mux := newSectionMux(svc)

		body := strings.NewReader(`{"instruction": "make it formal"}`)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/sections/s1/refine", body))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if svc.lastInstruction != "make it formal" {
			t.Errorf("instruction = %q", svc.lastInstruction)
		}
	})

	t.Run("malformed body gets 400", func(t *testing.T) {
		mux := newSectionMux(&stubSectionService{})

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/sections/s1/refine", strings.NewReader("{")))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("validation failures map to 400", func(t *testing.T) {
		svc := &stubSectionService{err: &domain.ValidationError{Message: "instruction cannot be blank"}}
		mux := newSectionMux(svc)

		body := strings.NewReader(`{"instruction": ""}`)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/sections/s1/refine", body))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})
}
