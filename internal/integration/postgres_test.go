package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sociable/social-api/internal/models"
	"github.com/sociable/social-api/internal/service"
	"github.com/sociable/social-api/internal/testdb"
	"github.com/sociable/social-api/internal/types"
)

// Runs the registration/follow flow against real PostgreSQL, including the
// constraints the SQLite-backed unit tests cannot fully vouch for.
func TestPostgresRegistrationAndFollowFlow(t *testing.T) {
	pg := testdb.SetupPostgres(t)
	db := pg.DB
	ctx := context.Background()

	auth := service.NewAuthService(db, "integration-secret")
	profiles := service.NewProfileService(db)
	follows := service.NewFollowService(db)

	anna, err := auth.Register(ctx, &types.RegisterRequest{
		Email: "anna@example.com", Username: "anna", Password: "pass123",
		FirstName: "Anna", LastName: "Maywood", Gender: "Female",
	})
	require.NoError(t, err)
	bob, err := auth.Register(ctx, &types.RegisterRequest{
		Email: "bob@example.com", Username: "bob", Password: "pass123",
		FirstName: "Bob", LastName: "Riley", Gender: "Male",
	})
	require.NoError(t, err)

	var bobProfile models.Profile
	require.NoError(t, db.Where("user_id = ?", bob.ID).First(&bobProfile).Error)

	require.NoError(t, follows.SetFollowing(ctx, anna.ID, bobProfile.ID, service.ActionFollow))

	detail, err := profiles.Detail(ctx, anna.ID, bobProfile.ID)
	require.NoError(t, err)
	assert.True(t, detail.Following)

	// The join table's check constraint holds on Postgres.
	err = db.Create(&models.Follow{FollowerID: anna.ID, FolloweeID: anna.ID}).Error
	assert.Error(t, err)

	// So does the composite uniqueness of the pair.
	err = db.Create(&models.Follow{FollowerID: anna.ID, FolloweeID: bob.ID}).Error
	assert.Error(t, err)

	// Deleting the user cascades to the profile.
	require.NoError(t, db.Delete(&models.User{}, bob.ID).Error)
	var count int64
	require.NoError(t, db.Model(&models.Profile{}).Where("user_id = ?", bob.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}
