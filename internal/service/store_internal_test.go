package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestContainsPatternEscapesWildcards(t *testing.T) {
	assert.Equal(t, "%pasta%", containsPattern("pasta"))
	assert.Equal(t, `%50\%%`, containsPattern("50%"))
	assert.Equal(t, `%a\_b%`, containsPattern("a_b"))
	assert.Equal(t, `%c:\\d%`, containsPattern(`c:\d`))
}

func TestRecipeOrder(t *testing.T) {
	assert.Equal(t, "recipes.created_at DESC, recipes.id ASC", recipeOrder("", defaultRecipeOrder))
	assert.Equal(t, "recipes.rating DESC, recipes.name ASC, recipes.id ASC", recipeOrder("-rating,name", defaultRecipeOrder))
	assert.Equal(t, "recipes.created_at DESC, recipes.id ASC", recipeOrder("password,-email", defaultRecipeOrder))
	assert.Equal(t, "recipes.name ASC, recipes.rating DESC, recipes.id ASC", recipeOrder("name", "", "recipes.rating DESC"))
	assert.Equal(t, "recipes.rating DESC, recipes.id ASC", recipeOrder("", "", "recipes.rating DESC"))
}

func TestRetryStale(t *testing.T) {
	calls := 0
	err := retryStale(func() error {
		calls++
		if calls < 2 {
			return errStaleWrite
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, calls)

	calls = 0
	err = retryStale(func() error {
		calls++
		return errStaleWrite
	})
	assert.Equal(t, maxWriteAttempts, calls)
	assert.True(t, IsKind(err, KindConflict))
	assert.ErrorIs(t, err, errStaleWrite)
}

func TestStoreErrorMapping(t *testing.T) {
	assert.Nil(t, storeError(nil, "x"))
	assert.True(t, IsKind(storeError(gorm.ErrRecordNotFound, "Recipe not found"), KindNotFound))
	assert.True(t, IsKind(storeError(gorm.ErrDuplicatedKey, "x"), KindConflict))
	assert.True(t, IsKind(storeError(errors.New("disk full"), "x"), KindInternal))
	assert.Equal(t, "Recipe not found", MessageOf(storeError(gorm.ErrRecordNotFound, "Recipe not found")))
}

func TestParseIDTreatsMalformedAsNotFound(t *testing.T) {
	_, err := parseID("123", "Meal plan not found")
	assert.True(t, IsKind(err, KindNotFound))
	assert.Equal(t, "Meal plan not found", MessageOf(err))
}
