package handler

import (
	"log/slog"
	"net/http"

	"swiftdoc/internal/domain/services"
	"swiftdoc/internal/httputil"
)

// OutlineHandler handles outline suggestion HTTP requests
type OutlineHandler struct {
	outlineService services.OutlineService
	logger         *slog.Logger
}

// NewOutlineHandler creates a new outline handler
func NewOutlineHandler(outlineService services.OutlineService, logger *slog.Logger) *OutlineHandler {
	return &OutlineHandler{
		outlineService: outlineService,
		logger:         logger,
	}
}

// Suggest generates an ordered list of section titles for a topic
// POST /api/outline/suggest
func (h *OutlineHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUserID(w, r); !ok {
		return
	}

	var req services.SuggestOutlineRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.outlineService.Suggest(r.Context(), &req)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, resp)
}
