package viewport

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/terraview/authd/internal/database/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Upsert inserts the viewport row for pref.UserID or overwrites all four
// bounds and the timestamp if one already exists.
func (s *Service) Upsert(ctx context.Context, pref *models.ViewportPreference) error {
	pref.UpdatedAt = time.Now()

	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"min_lat", "max_lat", "min_lon", "max_lon", "updated_at",
		}),
	}).Create(pref).Error
}

// Get returns the stored viewport for a user, or gorm.ErrRecordNotFound.
func (s *Service) Get(ctx context.Context, userID uuid.UUID) (*models.ViewportPreference, error) {
	var pref models.ViewportPreference
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&pref).Error; err != nil {
		return nil, err
	}
	return &pref, nil
}
