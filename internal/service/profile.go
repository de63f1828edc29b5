package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/sociable/social-api/internal/models"
	"github.com/sociable/social-api/internal/types"
)

// ProfileService handles the merged profile+user views and the self-profile
// edit path.
type ProfileService struct {
	db *gorm.DB
}

var _ IProfileService = (*ProfileService)(nil)

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// GetSelf returns the requester's own merged view.
func (s *ProfileService) GetSelf(ctx context.Context, userID uint) (*types.ProfileView, error) {
	profile, err := s.loadByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return profileView(profile), nil
}

// UpdateSelf applies an edit to the requester's account and profile. The
// user-owned and profile-owned fields are two separate records; both writes
// run in one transaction so a failed half leaves nothing applied.
func (s *ProfileService) UpdateSelf(ctx context.Context, userID uint, req *types.UpdateProfileRequest) (*types.ProfileView, error) {
	var updated *models.Profile

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var profile models.Profile
		if err := tx.Where("user_id = ?", userID).First(&profile).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			return err
		}

		if err := applyUserFields(tx, &user, req); err != nil {
			return err
		}
		if req.Hobby != nil {
			profile.Hobby = *req.Hobby
		}
		if req.ProfileImage != nil {
			profile.ProfileImage = *req.ProfileImage
		}

		if err := tx.Save(&user).Error; err != nil {
			return err
		}
		if err := tx.Save(&profile).Error; err != nil {
			return err
		}

		profile.User = user
		updated = &profile
		return nil
	})
	if err != nil {
		return nil, err
	}

	return profileView(updated), nil
}

// Detail returns another user's profile merged with account fields, plus the
// read-only flag saying whether the viewer follows the owner.
func (s *ProfileService) Detail(ctx context.Context, viewerID, profileID uint) (*types.ProfileDetail, error) {
	var profile models.Profile
	if err := s.db.WithContext(ctx).Joins("User").First(&profile, "profiles.id = ?", profileID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var count int64
	err := s.db.WithContext(ctx).Model(&models.Follow{}).
		Where("follower_id = ? AND followee_id = ?", viewerID, profile.UserID).
		Count(&count).Error
	if err != nil {
		return nil, err
	}

	return &types.ProfileDetail{
		ID:           profile.ID,
		Username:     profile.User.Username,
		FirstName:    profile.User.FirstName,
		LastName:     profile.User.LastName,
		Gender:       string(profile.User.Gender),
		Hobby:        profile.Hobby,
		ProfileImage: profile.ProfileImage,
		Following:    count > 0,
	}, nil
}

// SetProfileImage stores the uploaded image URL on the requester's profile.
func (s *ProfileService) SetProfileImage(ctx context.Context, userID uint, url string) error {
	res := s.db.WithContext(ctx).Model(&models.Profile{}).
		Where("user_id = ?", userID).
		Update("profile_image", url)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// applyUserFields copies the permitted user-owned fields from the request
// onto the user record. The mapping is explicit: anything not listed here
// cannot be changed through the profile endpoint.
func applyUserFields(tx *gorm.DB, user *models.User, req *types.UpdateProfileRequest) error {
	if req.Username != nil && *req.Username != user.Username {
		var count int64
		if err := tx.Model(&models.User{}).
			Where("username = ? AND id <> ?", *req.Username, user.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return validationf("username already taken")
		}
		if len(*req.Username) > 24 {
			return validationf("username must be at most 24 characters")
		}
		user.Username = *req.Username
	}
	if req.Email != nil {
		email := normalizeEmail(*req.Email)
		if email != user.Email {
			var count int64
			if err := tx.Model(&models.User{}).
				Where("email = ? AND id <> ?", email, user.ID).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return validationf("email already registered")
			}
			user.Email = email
		}
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Gender != nil {
		gender := models.Gender(*req.Gender)
		if !gender.Valid() {
			return validationf("gender must be %q or %q", models.GenderMale, models.GenderFemale)
		}
		user.Gender = gender
	}
	if req.Password != nil {
		if len(*req.Password) < 5 {
			return validationf("password must be at least 5 characters")
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user.PasswordHash = string(hashed)
	}
	return nil
}

func (s *ProfileService) loadByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.WithContext(ctx).Joins("User").First(&profile, "profiles.user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func profileView(p *models.Profile) *types.ProfileView {
	return &types.ProfileView{
		ID:           p.ID,
		Username:     p.User.Username,
		Email:        p.User.Email,
		FirstName:    p.User.FirstName,
		LastName:     p.User.LastName,
		Gender:       string(p.User.Gender),
		Hobby:        p.Hobby,
		ProfileImage: p.ProfileImage,
	}
}
