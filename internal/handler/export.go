package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"swiftdoc/internal/domain/services"
	"swiftdoc/internal/httputil"
)

// ExportHandler handles artifact export HTTP requests
type ExportHandler struct {
	exportService services.ExportService
	logger        *slog.Logger
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportService services.ExportService, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
		logger:        logger,
	}
}

// Export composes the project artifact and streams it as an attachment
// GET /api/projects/{id}/export
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "project ID is required")
		return
	}

	artifact, filename, err := h.exportService.Export(r.Context(), id, userID)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(artifact)))
	w.WriteHeader(http.StatusOK)
	w.Write(artifact)
}
