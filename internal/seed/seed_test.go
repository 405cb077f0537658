package seed_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/pageza/recipebook/backend/internal/models"
	"github.com/pageza/recipebook/backend/internal/seed"
	"github.com/pageza/recipebook/backend/internal/testhelpers"
)

func TestRun(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	ctx := context.Background()
	opts := seed.Options{AdminPassword: "admin-secret"}

	result, err := seed.Run(ctx, db, opts, zerolog.Nop())
	require.NoError(t, err)
	assert.False(t, result.Skipped)
	assert.Equal(t, 2, result.Users)
	assert.Positive(t, result.Recipes)

	var demo models.User
	require.NoError(t, db.Where("email = ?", seed.DemoEmail).First(&demo).Error)
	assert.Equal(t, "emilycooks", demo.Username)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(demo.PasswordHash), []byte(seed.DemoPassword)))
	assert.Len(t, demo.CreatedRecipes, result.Recipes)

	var admin models.User
	require.NoError(t, db.Where("email = ?", seed.AdminEmail).First(&admin).Error)
	assert.True(t, admin.IsAdmin())

	var owned int64
	require.NoError(t, db.Model(&models.Recipe{}).Where("user_id = ?", demo.ID).Count(&owned).Error)
	assert.Equal(t, int64(result.Recipes), owned)

	again, err := seed.Run(ctx, db, opts, zerolog.Nop())
	require.NoError(t, err)
	assert.True(t, again.Skipped)

	reset, err := seed.Run(ctx, db, seed.Options{Reset: true, AdminPassword: "admin-secret"}, zerolog.Nop())
	require.NoError(t, err)
	assert.False(t, reset.Skipped)
	var users int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	assert.Equal(t, int64(2), users)
}

func TestRunRequiresAdminPassword(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	_, err := seed.Run(context.Background(), db, seed.Options{}, zerolog.Nop())
	assert.Error(t, err)
}
