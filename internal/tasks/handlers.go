package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
)

// Mailer delivers reset tokens out of band. The service itself never
// sends email; production deployments plug in a real transport here.
type Mailer interface {
	SendPasswordReset(ctx context.Context, to, token string, expiresAt time.Time) error
}

// LogMailer is the default Mailer: it records the delivery instead of
// sending anything.
type LogMailer struct {
	logger *slog.Logger
}

func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) SendPasswordReset(ctx context.Context, to, token string, expiresAt time.Time) error {
	m.logger.Info("password reset email",
		"to", to,
		"token", token,
		"expires_at", expiresAt,
	)
	return nil
}

type Handler struct {
	logger *slog.Logger
	mailer Mailer
}

func NewHandler(logger *slog.Logger, mailer Mailer) *Handler {
	return &Handler{
		logger: logger,
		mailer: mailer,
	}
}

func (h *Handler) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(TypePasswordResetEmail, h.HandlePasswordResetEmail)
}

func (h *Handler) HandlePasswordResetEmail(ctx context.Context, t *asynq.Task) error {
	var payload PasswordResetEmailPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	h.logger.Info("delivering password reset token",
		"user_id", payload.UserID,
		"email", payload.Email,
	)

	if err := h.mailer.SendPasswordReset(ctx, payload.Email, payload.Token, payload.ExpiresAt); err != nil {
		h.logger.Error("reset delivery failed", "error", err, "email", payload.Email)
		return err
	}

	return nil
}
