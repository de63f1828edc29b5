package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/sociable/social-api/internal/models"
	"github.com/sociable/social-api/internal/types"
)

// Follow actions accepted by SetFollowing. The action is a write-only field,
// separate from the computed following flag on the detail view.
const (
	ActionFollow   = "follow"
	ActionUnfollow = "unfollow"
)

// FollowService maintains the follow graph.
type FollowService struct {
	db *gorm.DB
}

var _ IFollowService = (*FollowService)(nil)

func NewFollowService(db *gorm.DB) *FollowService {
	return &FollowService{db: db}
}

// SetFollowing applies a follow or unfollow action from the requester
// against the profile with the given id. Both directions are idempotent:
// repeating an action leaves the graph unchanged.
func (s *FollowService) SetFollowing(ctx context.Context, followerID, profileID uint, action string) error {
	var target models.Profile
	if err := s.db.WithContext(ctx).First(&target, profileID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if target.UserID == followerID {
		return validationf("cannot follow yourself")
	}

	switch action {
	case ActionFollow:
		edge := models.Follow{FollowerID: followerID, FolloweeID: target.UserID}
		return s.db.WithContext(ctx).
			Where("follower_id = ? AND followee_id = ?", followerID, target.UserID).
			FirstOrCreate(&edge).Error
	case ActionUnfollow:
		return s.db.WithContext(ctx).
			Where("follower_id = ? AND followee_id = ?", followerID, target.UserID).
			Delete(&models.Follow{}).Error
	default:
		return validationf("action must be %q or %q", ActionFollow, ActionUnfollow)
	}
}

// Following lists the profiles of the users the given user follows.
func (s *FollowService) Following(ctx context.Context, userID uint) ([]types.ProfileSummary, error) {
	return s.listEdges(ctx, "follows.follower_id = ?", "follows.followee_id", userID)
}

// Followers lists the profiles of the users following the given user.
func (s *FollowService) Followers(ctx context.Context, userID uint) ([]types.ProfileSummary, error) {
	return s.listEdges(ctx, "follows.followee_id = ?", "follows.follower_id", userID)
}

func (s *FollowService) listEdges(ctx context.Context, matchColumn, otherColumn string, userID uint) ([]types.ProfileSummary, error) {
	var rows []summaryRow
	err := s.db.WithContext(ctx).Model(&models.Follow{}).
		Joins("JOIN profiles ON profiles.user_id = "+otherColumn).
		Joins("JOIN users ON users.id = profiles.user_id").
		Where(matchColumn, userID).
		Select("profiles.id AS id, users.username AS username, users.first_name AS first_name, users.last_name AS last_name").
		Order("profiles.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return summarize(rows), nil
}
