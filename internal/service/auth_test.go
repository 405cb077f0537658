package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pageza/recipebook/backend/internal/models"
	"github.com/pageza/recipebook/backend/internal/service"
	"github.com/pageza/recipebook/backend/internal/testhelpers"
	"github.com/pageza/recipebook/backend/internal/types"
)

const testSecret = "test-secret"

func setupAuthTest(t *testing.T) (*gorm.DB, *service.AuthService) {
	db := testhelpers.SetupTestDatabase(t)
	return db, service.NewAuthService(db, testSecret, time.Hour, zerolog.Nop())
}

func registerRequest(email, username string) *types.RegisterRequest {
	return &types.RegisterRequest{
		FirstName: "A",
		LastName:  "B",
		Email:     email,
		Username:  username,
		Password:  "secret1",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	_, auth := setupAuthTest(t)
	ctx := context.Background()

	user, token, err := auth.Register(ctx, registerRequest("a@x.com", "a"))
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotEqual(t, "secret1", user.PasswordHash)

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)

	loggedIn, token2, err := auth.Login(ctx, "a@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
	assert.NotEmpty(t, token2)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	db, auth := setupAuthTest(t)
	ctx := context.Background()

	first, _, err := auth.Register(ctx, registerRequest("a@x.com", "a"))
	require.NoError(t, err)

	_, _, err = auth.Register(ctx, registerRequest("a@x.com", "other"))
	assert.True(t, service.IsKind(err, service.KindConflict))
	assert.Equal(t, "User with this email already exists", service.MessageOf(err))

	_, _, err = auth.Register(ctx, registerRequest("b@x.com", "a"))
	assert.True(t, service.IsKind(err, service.KindConflict))
	assert.Equal(t, "Username is already taken", service.MessageOf(err))

	// uniqueness is case sensitive
	_, _, err = auth.Register(ctx, registerRequest("c@x.com", "A"))
	assert.NoError(t, err)

	var stored models.User
	require.NoError(t, db.First(&stored, "id = ?", first.ID).Error)
	assert.Equal(t, "a", stored.Username)
	assert.Equal(t, "a@x.com", stored.Email)
}

func TestLoginFailures(t *testing.T) {
	_, auth := setupAuthTest(t)
	ctx := context.Background()
	_, _, err := auth.Register(ctx, registerRequest("a@x.com", "a"))
	require.NoError(t, err)

	_, _, err = auth.Login(ctx, "a@x.com", "wrong-password")
	assert.True(t, service.IsKind(err, service.KindUnauthorized))

	_, _, err = auth.Login(ctx, "nobody@x.com", "secret1")
	assert.True(t, service.IsKind(err, service.KindUnauthorized))

	_, _, err = auth.Login(ctx, "", "")
	assert.True(t, service.IsKind(err, service.KindValidation))
}

func TestValidateTokenRejectsBadTokens(t *testing.T) {
	_, auth := setupAuthTest(t)

	other := service.NewAuthService(nil, "another-secret", time.Hour, zerolog.Nop())
	foreign, err := other.GenerateToken(uuid.New())
	require.NoError(t, err)
	_, err = auth.ValidateToken(foreign)
	assert.ErrorIs(t, err, service.ErrInvalidToken)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute))},
		UserID:           uuid.New(),
	})
	signed, err := expired.SignedString([]byte(testSecret))
	require.NoError(t, err)
	_, err = auth.ValidateToken(signed)
	assert.ErrorIs(t, err, service.ErrTokenExpired)

	_, err = auth.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestRefreshAndMe(t *testing.T) {
	db, auth := setupAuthTest(t)
	ctx := context.Background()

	user := testhelpers.CreateUser(t, db, "chef", models.RoleUser)
	recipe := testhelpers.CreateRecipe(t, db, user.ID, "Pasta")

	token, err := auth.Refresh(ctx, user.ID)
	require.NoError(t, err)
	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)

	me, err := auth.Me(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, me.CreatedRecipes, 1)
	assert.Equal(t, recipe.ID, me.CreatedRecipes[0].ID)
	assert.Equal(t, "Pasta", me.CreatedRecipes[0].Name)
	assert.Empty(t, me.FavoriteRecipes)

	_, err = auth.Refresh(ctx, uuid.New())
	assert.True(t, service.IsKind(err, service.KindNotFound))
}
