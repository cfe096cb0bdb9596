package tasks

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/terraview/authd/pkg/util"
)

type recordingMailer struct {
	to    string
	token string
}

func (m *recordingMailer) SendPasswordReset(ctx context.Context, to, token string, expiresAt time.Time) error {
	m.to = to
	m.token = token
	return nil
}

func TestHandlePasswordResetEmail(t *testing.T) {
	mailer := &recordingMailer{}
	handler := NewHandler(util.NewLogger("test"), mailer)

	payload := PasswordResetEmailPayload{
		UserID:    uuid.New(),
		Email:     "user@example.com",
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(time.Hour),
	}

	task, err := NewPasswordResetEmailTask(payload)
	require.NoError(t, err)
	assert.Equal(t, TypePasswordResetEmail, task.Type())

	require.NoError(t, handler.HandlePasswordResetEmail(context.Background(), task))
	assert.Equal(t, "user@example.com", mailer.to)
	assert.Equal(t, payload.Token, mailer.token)
}

func TestHandlePasswordResetEmail_BadPayload(t *testing.T) {
	handler := NewHandler(util.NewLogger("test"), NewLogMailer(util.NewLogger("test")))

	task := asynq.NewTask(TypePasswordResetEmail, []byte("not-json"))
	assert.Error(t, handler.HandlePasswordResetEmail(context.Background(), task))
}
