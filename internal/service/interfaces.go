package service

import (
	"context"
	"io"

	"github.com/sociable/social-api/internal/models"
	"github.com/sociable/social-api/internal/types"
)

// IAuthService defines the interface for registration and token operations.
type IAuthService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, email, password string) (*types.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}

// IProfileService defines the interface for profile views, search and edits.
type IProfileService interface {
	GetSelf(ctx context.Context, userID uint) (*types.ProfileView, error)
	UpdateSelf(ctx context.Context, userID uint, req *types.UpdateProfileRequest) (*types.ProfileView, error)
	Detail(ctx context.Context, viewerID, profileID uint) (*types.ProfileDetail, error)
	Search(ctx context.Context, viewerID uint, filters types.SearchFilters, page, pageSize int) (*types.SearchPage, error)
	SetProfileImage(ctx context.Context, userID uint, url string) error
}

// IFollowService defines the interface for follow graph operations.
type IFollowService interface {
	SetFollowing(ctx context.Context, followerID, profileID uint, action string) error
	Following(ctx context.Context, userID uint) ([]types.ProfileSummary, error)
	Followers(ctx context.Context, userID uint) ([]types.ProfileSummary, error)
}

// IImageService defines the interface for profile image storage.
type IImageService interface {
	UploadProfileImage(ctx context.Context, userID uint, contentType string, body io.Reader) (string, error)
}
