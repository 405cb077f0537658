package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/pageza/recipebook/backend/internal/models"
	"github.com/pageza/recipebook/backend/internal/types"
)

var (
	ErrInvalidToken = types.ErrInvalidToken
	ErrTokenExpired = types.ErrTokenExpired
)

// AuthService registers users, checks credentials and signs session tokens
type AuthService struct {
	db        *gorm.DB
	jwtSecret []byte
	expiry    time.Duration
	log       zerolog.Logger
}

// NewAuthService creates a new AuthService instance
func NewAuthService(db *gorm.DB, jwtSecret string, expiry time.Duration, log zerolog.Logger) *AuthService {
	if expiry <= 0 {
		expiry = 7 * 24 * time.Hour
	}
	return &AuthService{
		db:        db,
		jwtSecret: []byte(jwtSecret),
		expiry:    expiry,
		log:       log,
	}
}

// Register creates an account and returns it with a fresh token
func (s *AuthService) Register(ctx context.Context, req *types.RegisterRequest) (*models.User, string, error) {
	email := strings.TrimSpace(req.Email)
	username := strings.TrimSpace(req.Username)
	db := s.db.WithContext(ctx)

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, "", internal("Server error during registration", err)
	}
	if count > 0 {
		return nil, "", conflict("User with this email already exists")
	}
	if err := db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return nil, "", internal("Server error during registration", err)
	}
	if count > 0 {
		return nil, "", conflict("Username is already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", internal("Server error during registration", err)
	}

	user := models.User{
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Email:        email,
		Username:     username,
		PasswordHash: string(hash),
		Bio:          req.Bio,
	}
	if err := db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", conflict("User with this email or username already exists")
		}
		return nil, "", internal("Server error during registration", err)
	}

	token, err := s.GenerateToken(user.ID)
	if err != nil {
		return nil, "", internal("Server error during registration", err)
	}
	s.log.Info().Str("user_id", user.ID.String()).Str("username", user.Username).Msg("user registered")
	return &user, token, nil
}

// Login verifies an email/password pair
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	if email == "" || password == "" {
		return nil, "", validationError("Please provide email and password")
	}

	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", strings.TrimSpace(email)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", unauthorized("Invalid credentials")
		}
		return nil, "", internal("Server error during login", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", unauthorized("Invalid credentials")
	}

	token, err := s.GenerateToken(user.ID)
	if err != nil {
		return nil, "", internal("Server error during login", err)
	}
	return &user, token, nil
}

// Refresh issues a new token for a user that still exists
func (s *AuthService) Refresh(ctx context.Context, userID uuid.UUID) (string, error) {
	if _, err := s.GetUserByID(ctx, userID); err != nil {
		return "", err
	}
	token, err := s.GenerateToken(userID)
	if err != nil {
		return "", internal("Server error", err)
	}
	return token, nil
}

// GetUserByID loads a user
func (s *AuthService) GetUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		return nil, storeError(err, "User not found")
	}
	return &user, nil
}

// Me returns the caller with favorite and created recipe summaries resolved
func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*ProfileView, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return buildProfileView(ctx, s.db, user, false)
}

// GenerateToken signs a session token for userID
func (s *AuthService) GenerateToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := &types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
		UserID: userID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateToken checks the signature and expiry of a session token
func (s *AuthService) ValidateToken(tokenString string) (*types.TokenClaims, error) {
	claims := &types.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid || claims.UserID == uuid.Nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
