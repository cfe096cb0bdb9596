package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/terraview/authd/internal/api/dto"
	"github.com/terraview/authd/internal/auth"
)

type AdminHandler struct {
	authService *auth.Service
	logger      *slog.Logger
}

func NewAdminHandler(authService *auth.Service, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{authService: authService, logger: logger}
}

// ListUsers returns every non-admin account, including already-approved
// ones; the caller filters on is_approved for a pending-only view.
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.authService.ListUsers(r.Context())
	if err != nil {
		h.logger.Error("failed to list users", "error", err)
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to fetch users"})
		return
	}

	out := make([]dto.AdminUser, 0, len(users))
	for _, u := range users {
		out = append(out, dto.AdminUser{
			ID:         u.ID.String(),
			Name:       u.Name,
			Email:      u.Email,
			Position:   u.Position,
			IsApproved: u.IsApproved,
		})
	}

	writeJSON(w, http.StatusOK, out)
}

// ApproveUser is idempotent; approving an already-approved user succeeds
// and leaves the flag set.
func (h *AdminHandler) ApproveUser(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid user id"})
		return
	}

	if err := h.authService.ApproveUser(r.Context(), userID); err != nil {
		h.logger.Error("failed to approve user", "error", err, "user_id", userID)
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to approve user"})
		return
	}

	writeJSON(w, http.StatusOK, dto.SuccessResponse{Message: "User approved"})
}
