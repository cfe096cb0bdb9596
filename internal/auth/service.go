package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/terraview/authd/internal/database/models"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already in use")
	ErrNotApproved        = errors.New("account not approved")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWeakPassword       = errors.New("password does not meet policy")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
)

const resetTokenTTL = time.Hour

type Service struct {
	db  *gorm.DB
	jwt *JWTService
}

func NewService(db *gorm.DB, jwt *JWTService) *Service {
	return &Service{db: db, jwt: jwt}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Position string
}

type LoginResult struct {
	AccessToken string
	IsAdmin     bool
	Name        string
}

// Register creates an account awaiting admin approval. Admin accounts are
// never created through this path.
func (s *Service) Register(ctx context.Context, input RegisterInput) (uuid.UUID, error) {
	if err := ValidatePassword(input.Password); err != nil {
		return uuid.Nil, err
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return uuid.Nil, err
	}

	user := models.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Position:     input.Position,
		IsAdmin:      false,
		IsApproved:   false,
	}

	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return uuid.Nil, ErrEmailTaken
		}
		return uuid.Nil, err
	}

	return user.ID, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !user.IsApproved {
		return nil, ErrNotApproved
	}

	if !CheckPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Email, user.IsAdmin)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		AccessToken: token,
		IsAdmin:     user.IsAdmin,
		Name:        user.Name,
	}, nil
}

// ForgotPassword issues a single-use reset token valid for one hour.
// Delivery to the user happens out of band; the caller decides what to
// do with the returned token.
func (s *Service) ForgotPassword(ctx context.Context, email string) (*models.PasswordResetToken, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	resetToken := models.PasswordResetToken{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(resetTokenTTL),
		Used:      false,
	}

	if err := s.db.WithContext(ctx).Create(&resetToken).Error; err != nil {
		return nil, err
	}

	resetToken.User = &user
	return &resetToken, nil
}

// ResetPassword consumes a reset token and replaces the user's password.
// Nonexistent, expired and already-used tokens are indistinguishable to
// the caller. The password update and token consumption commit together:
// the conditional update on used=false makes a second completion with the
// same token lose the race and roll back.
func (s *Service) ResetPassword(ctx context.Context, token, newPassword string) error {
	var resetToken models.PasswordResetToken
	err := s.db.WithContext(ctx).
		Where("token = ? AND used = ? AND expires_at > ?", token, false, time.Now()).
		First(&resetToken).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidResetToken
		}
		return err
	}

	if err := ValidatePassword(newPassword); err != nil {
		return err
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.PasswordResetToken{}).
			Where("id = ? AND used = ?", resetToken.ID, false).
			Update("used", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInvalidResetToken
		}

		return tx.Model(&models.User{}).
			Where("id = ?", resetToken.UserID).
			Update("password_hash", hash).Error
	})
}

// ListUsers returns every non-admin account, approved or not. Callers
// filter on is_approved when they only want the pending queue.
func (s *Service) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := s.db.WithContext(ctx).
		Select("id", "name", "email", "position", "is_approved").
		Where("is_admin = ?", false).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// ApproveUser unlocks login for the given account. Approving an already
// approved or unknown user is a no-op.
func (s *Service) ApproveUser(ctx context.Context, userID uuid.UUID) error {
	return s.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Update("is_approved", true).Error
}
