package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/terraview/authd/internal/api/dto"
	"github.com/terraview/authd/internal/database/models"
	"github.com/terraview/authd/internal/viewport"
)

type ViewportHandler struct {
	service *viewport.Service
	logger  *slog.Logger
}

func NewViewportHandler(service *viewport.Service, logger *slog.Logger) *ViewportHandler {
	return &ViewportHandler{service: service, logger: logger}
}

// Update upserts the caller-supplied user's viewport bounds. The endpoint
// is unauthenticated and trusts user_id as provided; see DESIGN.md.
func (h *ViewportHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.ViewportUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Missing required fields"})
		return
	}

	if !req.Complete() {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Missing required fields"})
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid user id"})
		return
	}

	pref := models.ViewportPreference{
		UserID: userID,
		MinLat: *req.MinLat,
		MaxLat: *req.MaxLat,
		MinLon: *req.MinLon,
		MaxLon: *req.MaxLon,
	}

	if err := h.service.Upsert(r.Context(), &pref); err != nil {
		h.logger.Error("viewport upsert failed", "error", err, "user_id", userID)
		writeJSON(w, http.StatusInternalServerError, dto.ViewportUpdateResponse{
			OK:    false,
			Error: "Failed to update viewport",
		})
		return
	}

	writeJSON(w, http.StatusOK, dto.ViewportUpdateResponse{OK: true})
}
