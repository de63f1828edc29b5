package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/sociable/social-api/internal/models"
)

func profileOf(t *testing.T, db *gorm.DB, userID uint) *models.Profile {
	t.Helper()
	var profile models.Profile
	require.NoError(t, db.Where("user_id = ?", userID).First(&profile).Error)
	return &profile
}

func followCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.Follow{}).Count(&count).Error)
	return count
}

func TestFollowIsIdempotent(t *testing.T) {
	_, db := newAuthService(t)
	anna := seedUser(t, db, "anna@example.com", "anna", "Anna", "Maywood")
	bob := seedUser(t, db, "bob@example.com", "bob", "Bob", "Riley")
	bobProfile := profileOf(t, db, bob.ID)

	svc := NewFollowService(db)
	require.NoError(t, svc.SetFollowing(context.Background(), anna.ID, bobProfile.ID, ActionFollow))
	require.NoError(t, svc.SetFollowing(context.Background(), anna.ID, bobProfile.ID, ActionFollow))

	assert.EqualValues(t, 1, followCount(t, db))
}

func TestUnfollowIsIdempotent(t *testing.T) {
	_, db := newAuthService(t)
	anna := seedUser(t, db, "anna@example.com", "anna", "Anna", "Maywood")
	bob := seedUser(t, db, "bob@example.com", "bob", "Bob", "Riley")
	bobProfile := profileOf(t, db, bob.ID)

	svc := NewFollowService(db)
	require.NoError(t, svc.SetFollowing(context.Background(), anna.ID, bobProfile.ID, ActionFollow))
	require.NoError(t, svc.SetFollowing(context.Background(), anna.ID, bobProfile.ID, ActionUnfollow))
	require.NoError(t, svc.SetFollowing(context.Background(), anna.ID, bobProfile.ID, ActionUnfollow))

	assert.EqualValues(t, 0, followCount(t, db))
}

func TestSelfFollowRejected(t *testing.T) {
	_, db := newAuthService(t)
	anna := seedUser(t, db, "anna@example.com", "anna", "Anna", "Maywood")
	annaProfile := profileOf(t, db, anna.ID)

	svc := NewFollowService(db)
	err := svc.SetFollowing(context.Background(), anna.ID, annaProfile.ID, ActionFollow)
	assert.ErrorIs(t, err, ErrValidation)
	assert.EqualValues(t, 0, followCount(t, db))
}

func TestFollowUnknownTarget(t *testing.T) {
	_, db := newAuthService(t)
	anna := seedUser(t, db, "anna@example.com", "anna", "Anna", "Maywood")

	svc := NewFollowService(db)
	err := svc.SetFollowing(context.Background(), anna.ID, 424242, ActionFollow)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFollowUnknownAction(t *testing.T) {
	_, db := newAuthService(t)
	anna := seedUser(t, db, "anna@example.com", "anna", "Anna", "Maywood")
	bob := seedUser(t, db, "bob@example.com", "bob", "Bob", "Riley")
	bobProfile := profileOf(t, db, bob.ID)

	svc := NewFollowService(db)
	err := svc.SetFollowing(context.Background(), anna.ID, bobProfile.ID, "befriend")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestFollowJoinTableRejectsSelfEdge(t *testing.T) {
	_, db := newAuthService(t)
	anna := seedUser(t, db, "anna@example.com", "anna", "Anna", "Maywood")

	// Bypass the service layer; the check constraint still holds.
	err := db.Create(&models.Follow{FollowerID: anna.ID, FolloweeID: anna.ID}).Error
	assert.Error(t, err)
}

func TestFollowingAndFollowersListings(t *testing.T) {
	_, db := newAuthService(t)
	anna := seedUser(t, db, "anna@example.com", "anna", "Anna", "Maywood")
	bob := seedUser(t, db, "bob@example.com", "bob", "Bob", "Riley")
	cara := seedUser(t, db, "cara@example.com", "cara", "Cara", "Quinn")

	svc := NewFollowService(db)
	require.NoError(t, svc.SetFollowing(context.Background(), anna.ID, profileOf(t, db, bob.ID).ID, ActionFollow))
	require.NoError(t, svc.SetFollowing(context.Background(), anna.ID, profileOf(t, db, cara.ID).ID, ActionFollow))
	require.NoError(t, svc.SetFollowing(context.Background(), cara.ID, profileOf(t, db, bob.ID).ID, ActionFollow))

	following, err := svc.Following(context.Background(), anna.ID)
	require.NoError(t, err)
	require.Len(t, following, 2)
	assert.Equal(t, "bob", following[0].Username)
	assert.Equal(t, "cara", following[1].Username)

	followers, err := svc.Followers(context.Background(), bob.ID)
	require.NoError(t, err)
	require.Len(t, followers, 2)
	assert.Equal(t, "anna", followers[0].Username)
	assert.Equal(t, "cara", followers[1].Username)

	// Anna follows nobody back, so her followers list is empty.
	followers, err = svc.Followers(context.Background(), anna.ID)
	require.NoError(t, err)
	assert.Empty(t, followers)
}

func TestFollowScenario(t *testing.T) {
	_, db := newAuthService(t)
	anna := seedUser(t, db, "a@x.com", "alice", "Alice", "Archer")
	bob := seedUser(t, db, "b@x.com", "bob", "Bob", "Riley")
	bobProfile := profileOf(t, db, bob.ID)

	follows := NewFollowService(db)
	profiles := NewProfileService(db)

	require.NoError(t, follows.SetFollowing(context.Background(), anna.ID, bobProfile.ID, ActionFollow))

	detail, err := profiles.Detail(context.Background(), anna.ID, bobProfile.ID)
	require.NoError(t, err)
	assert.True(t, detail.Following)

	// Repeating the follow changes nothing.
	require.NoError(t, follows.SetFollowing(context.Background(), anna.ID, bobProfile.ID, ActionFollow))
	assert.EqualValues(t, 1, followCount(t, db))

	require.NoError(t, follows.SetFollowing(context.Background(), anna.ID, bobProfile.ID, ActionUnfollow))

	detail, err = profiles.Detail(context.Background(), anna.ID, bobProfile.ID)
	require.NoError(t, err)
	assert.False(t, detail.Following)
}
