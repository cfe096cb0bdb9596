package viewport_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/terraview/authd/internal/database/models"
	"github.com/terraview/authd/internal/testutil"
	"github.com/terraview/authd/internal/viewport"
)

func TestUpsert(t *testing.T) {
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.CleanupTestDB(t, db) })

	svc := viewport.NewService(db)
	ctx := context.Background()

	user := testutil.CreateTestUser(t, db, true)

	first := models.ViewportPreference{
		UserID: user.ID,
		MinLat: -33.9,
		MaxLat: -33.7,
		MinLon: 151.0,
		MaxLon: 151.3,
	}
	require.NoError(t, svc.Upsert(ctx, &first))

	stored, err := svc.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, -33.9, stored.MinLat)
	firstUpdated := stored.UpdatedAt

	time.Sleep(10 * time.Millisecond)

	second := models.ViewportPreference{
		UserID: user.ID,
		MinLat: 51.3,
		MaxLat: 51.7,
		MinLon: -0.5,
		MaxLon: 0.3,
	}
	require.NoError(t, svc.Upsert(ctx, &second))

	var count int64
	db.Model(&models.ViewportPreference{}).Where("user_id = ?", user.ID).Count(&count)
	assert.EqualValues(t, 1, count)

	stored, err = svc.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 51.3, stored.MinLat)
	assert.Equal(t, 51.7, stored.MaxLat)
	assert.Equal(t, -0.5, stored.MinLon)
	assert.Equal(t, 0.3, stored.MaxLon)
	assert.True(t, stored.UpdatedAt.After(firstUpdated))
}
