package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/sociable/social-api/internal/models"
	"github.com/sociable/social-api/internal/types"
)

const (
	accessTokenTTL  = time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour
)

// AuthService handles registration, login and token issuance.
type AuthService struct {
	db        *gorm.DB
	jwtSecret string
}

var _ IAuthService = (*AuthService)(nil)

func NewAuthService(db *gorm.DB, jwtSecret string) *AuthService {
	return &AuthService{
		db:        db,
		jwtSecret: jwtSecret,
	}
}

// Register creates a user together with its profile in one transaction.
// Every user has exactly one profile from the moment this returns.
func (s *AuthService) Register(ctx context.Context, req *types.RegisterRequest) (*models.User, error) {
	gender := models.Gender(req.Gender)
	if !gender.Valid() {
		return nil, validationf("gender must be %q or %q", models.GenderMale, models.GenderFemale)
	}
	if len(req.Password) < 5 {
		return nil, validationf("password must be at least 5 characters")
	}

	email := normalizeEmail(req.Email)

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:        email,
		Username:     req.Username,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: string(hashed),
		Gender:       gender,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return validationf("email already registered")
		}
		if err := tx.Model(&models.User{}).Where("username = ?", req.Username).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return validationf("username already taken")
		}

		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		profile := models.Profile{UserID: user.ID}
		return tx.Create(&profile).Error
	})
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// Login verifies the credentials and issues an access/refresh token pair.
func (s *AuthService) Login(ctx context.Context, email, password string) (*types.TokenPair, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", normalizeEmail(email)).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	access, err := s.generateToken(&user, types.TokenTypeAccess, accessTokenTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := s.generateToken(&user, types.TokenTypeRefresh, refreshTokenTTL)
	if err != nil {
		return nil, err
	}

	return &types.TokenPair{Access: access, Refresh: refresh}, nil
}

// Refresh exchanges a valid refresh token for a new access token.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.parseToken(refreshToken)
	if err != nil {
		return "", err
	}
	if claims.TokenType != types.TokenTypeRefresh {
		return "", ErrInvalidToken
	}

	var user models.User
	if err := s.db.WithContext(ctx).First(&user, claims.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidToken
		}
		return "", err
	}

	return s.generateToken(&user, types.TokenTypeAccess, accessTokenTTL)
}

// ValidateToken checks an access token and returns its claims. Refresh
// tokens are rejected here so they cannot be used against the API itself.
func (s *AuthService) ValidateToken(tokenString string) (*types.TokenClaims, error) {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != types.TokenTypeAccess {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *AuthService) generateToken(user *models.User, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID:    user.ID,
		Username:  user.Username,
		TokenType: tokenType,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *AuthService) parseToken(tokenString string) (*types.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &types.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*types.TokenClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// normalizeEmail lower-cases and trims the address so lookups and the
// uniqueness constraint are case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
