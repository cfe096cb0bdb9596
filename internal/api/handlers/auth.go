package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/hibiken/asynq"
	"github.com/terraview/authd/internal/api/dto"
	"github.com/terraview/authd/internal/auth"
	"github.com/terraview/authd/internal/database/models"
	"github.com/terraview/authd/internal/tasks"
)

type AuthHandler struct {
	authService *auth.Service
	queue       *asynq.Client
	logger      *slog.Logger
}

func NewAuthHandler(authService *auth.Service, queue *asynq.Client, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		queue:       queue,
		logger:      logger,
	}
}

const weakPasswordMessage = "Password must be at least 8 characters with both uppercase and lowercase letters"

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if msg := req.Validate(); msg != "" {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: msg})
		return
	}

	userID, err := h.authService.Register(r.Context(), auth.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Position: req.Position,
	})

	if err != nil {
		switch {
		case errors.Is(err, auth.ErrWeakPassword):
			writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: weakPasswordMessage})
		case errors.Is(err, auth.ErrEmailTaken):
			writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Email already in use"})
		default:
			h.logger.Error("registration failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Registration failed"})
		}
		return
	}

	writeJSON(w, http.StatusCreated, dto.RegisterResponse{
		Message: "Registration successful. Awaiting admin approval.",
		UserID:  userID.String(),
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	result, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUserNotFound):
			writeJSON(w, http.StatusUnauthorized, dto.ErrorResponse{Error: "User not found"})
		case errors.Is(err, auth.ErrNotApproved):
			writeJSON(w, http.StatusUnauthorized, dto.ErrorResponse{Error: "Account not approved yet"})
		case errors.Is(err, auth.ErrInvalidCredentials):
			writeJSON(w, http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid credentials"})
		default:
			h.logger.Error("login failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Login failed"})
		}
		return
	}

	writeJSON(w, http.StatusOK, dto.LoginResponse{
		AccessToken: result.AccessToken,
		IsAdmin:     result.IsAdmin,
		Name:        result.Name,
	})
}

func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req dto.ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	resetToken, err := h.authService.ForgotPassword(r.Context(), req.Email)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUserNotFound):
			writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Error: "User not found"})
		default:
			h.logger.Error("forgot password failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to process password reset"})
		}
		return
	}

	h.enqueueResetEmail(req.Email, resetToken)

	writeJSON(w, http.StatusOK, dto.ForgotPasswordResponse{
		Message: "Password reset link sent to email",
		Token:   resetToken.Token,
	})
}

func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req dto.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	err := h.authService.ResetPassword(r.Context(), req.Token, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidResetToken):
			writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid or expired token"})
		case errors.Is(err, auth.ErrWeakPassword):
			writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: weakPasswordMessage})
		default:
			h.logger.Error("password reset failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Password reset failed"})
		}
		return
	}

	writeJSON(w, http.StatusOK, dto.SuccessResponse{Message: "Password reset successful"})
}

// enqueueResetEmail hands the token to the background worker for
// out-of-band delivery. Delivery is best effort; the token is already
// persisted and returned to the caller either way.
func (h *AuthHandler) enqueueResetEmail(email string, resetToken *models.PasswordResetToken) {
	if h.queue == nil {
		return
	}

	task, err := tasks.NewPasswordResetEmailTask(tasks.PasswordResetEmailPayload{
		UserID:    resetToken.UserID,
		Email:     email,
		Token:     resetToken.Token,
		ExpiresAt: resetToken.ExpiresAt,
	})
	if err != nil {
		h.logger.Error("failed to build reset email task", "error", err)
		return
	}

	if _, err := h.queue.Enqueue(task); err != nil {
		h.logger.Error("failed to enqueue reset email", "error", err)
	}
}
