package auth

import (
	"context"

	"github.com/google/uuid"
	"github.com/terraview/authd/internal/database/models"
)

// Authenticator defines the interface for account and credential operations.
type Authenticator interface {
	Register(ctx context.Context, input RegisterInput) (uuid.UUID, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	ForgotPassword(ctx context.Context, email string) (*models.PasswordResetToken, error)
	ResetPassword(ctx context.Context, token, newPassword string) error
	ListUsers(ctx context.Context) ([]models.User, error)
	ApproveUser(ctx context.Context, userID uuid.UUID) error
}

// TokenService defines the interface for session token operations.
type TokenService interface {
	GenerateToken(userID uuid.UUID, email string, isAdmin bool) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

// Compile-time interface satisfaction checks
var (
	_ Authenticator = (*Service)(nil)
	_ TokenService  = (*JWTService)(nil)
)
