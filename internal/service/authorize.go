package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/recipebook/backend/internal/models"
)

// Gate decides whether an acting user may mutate a recipe or meal plan.
// Callers load the target first so a missing entity reports NotFound before
// any ownership check runs.
type Gate struct {
	db *gorm.DB
}

func NewGate(db *gorm.DB) *Gate {
	return &Gate{db: db}
}

// CanMutateRecipe allows the recipe owner and administrators
func (g *Gate) CanMutateRecipe(ctx context.Context, actorID uuid.UUID, recipe *models.Recipe, deniedMsg string) error {
	if recipe.UserID == actorID {
		return nil
	}
	var actor models.User
	if err := g.db.WithContext(ctx).Select("id", "role").First(&actor, "id = ?", actorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return forbidden(deniedMsg)
		}
		return internal("Server error", err)
	}
	if actor.IsAdmin() {
		return nil
	}
	return forbidden(deniedMsg)
}

// CanMutateMealPlan allows only the plan owner; administrators get no override
func (g *Gate) CanMutateMealPlan(actorID uuid.UUID, plan *models.MealPlan, deniedMsg string) error {
	if plan.UserID != actorID {
		return forbidden(deniedMsg)
	}
	return nil
}
