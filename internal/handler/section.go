package handler

import (
	"log/slog"
	"net/http"

	"swiftdoc/internal/domain/services"
	"swiftdoc/internal/httputil"
)

// SectionHandler handles section generate/refine/feedback HTTP requests
type SectionHandler struct {
	sectionService services.SectionService
	logger         *slog.Logger
}

// NewSectionHandler creates a new section handler
func NewSectionHandler(sectionService services.SectionService, logger *slog.Logger) *SectionHandler {
	return &SectionHandler{
		sectionService: sectionService,
		logger:         logger,
	}
}

type contentResponse struct {
	Content string `json:"content"`
}

// Generate drafts fresh content for a section
// POST /api/sections/{id}/generate
func (h *SectionHandler) Generate(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "section ID is required")
		return
	}

	content, err := h.sectionService.Generate(r.Context(), id, userID)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, contentResponse{Content: content})
}

// Refine rewrites a section's content per the user instruction
// POST /api/sections/{id}/refine
func (h *SectionHandler) Refine(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "section ID is required")
		return
	}

	var req services.RefineRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	content, err := h.sectionService.Refine(r.Context(), id, userID, &req)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, contentResponse{Content: content})
}

// SubmitFeedback records a reaction to a section's content
// POST /api/sections/{id}/feedback
func (h *SectionHandler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "section ID is required")
		return
	}

	var req services.FeedbackRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.sectionService.SubmitFeedback(r.Context(), id, userID, &req); err != nil {
		respondError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
