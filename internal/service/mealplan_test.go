package service_test

import (
	"context"
	"testing"
	"time"

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

type mealPlanFixture struct {
	db      *gorm.DB
	svc     *service.MealPlanService
	owner   *models.User
	pizza   *models.Recipe
	cookies *models.Recipe
}

func setupMealPlanTest(t *testing.T) *mealPlanFixture {
	db := testhelpers.SetupTestDatabase(t)
	owner := testhelpers.CreateUser(t, db, "planner", models.RoleUser)
	return &mealPlanFixture{
		db:      db,
		svc:     service.NewMealPlanService(db, service.NewGate(db), zerolog.Nop()),
		owner:   owner,
		pizza:   testhelpers.CreateRecipe(t, db, owner.ID, "Pizza"),
		cookies: testhelpers.CreateRecipe(t, db, owner.ID, "Cookies", func(r *models.Recipe) { r.CaloriesPerServing = ptr(150.0) }),
	}
}

func date(s string) *types.Date {
	d, err := types.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return &d
}

func (f *mealPlanFixture) create(t *testing.T, meals []types.MealDayInput) *service.MealPlanView {
	t.Helper()
	plan, err := f.svc.Create(context.Background(), f.owner.ID, &types.CreateMealPlanRequest{
		Name:      "Week one",
		StartDate: date("2025-03-10"),
		EndDate:   date("2025-03-16"),
		Meals:     meals,
	})
	require.NoError(t, err)
	return plan
}

func TestCreateMealPlan(t *testing.T) {
	f := setupMealPlanTest(t)
	plan := f.create(t, []types.MealDayInput{{
		Day:   *date("2025-03-10"),
		Items: []types.MealItemInput{{Recipe: types.RecipeRef(f.pizza.ID.String()), MealType: "Dinner"}},
	}})

	assert.Equal(t, f.owner.ID, plan.User)
	assert.True(t, plan.IsActive)
	require.Len(t, plan.Meals, 1)
	require.Len(t, plan.Meals[0].Items, 1)
	item := plan.Meals[0].Items[0]
	assert.Equal(t, 1, item.Servings)
	assert.NotEqual(t, uuid.Nil, item.ID)
	require.NotNil(t, item.Recipe)
	assert.Equal(t, "Pizza", item.Recipe.Name)
}

func TestCreateMealPlanValidation(t *testing.T) {
	f := setupMealPlanTest(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, f.owner.ID, &types.CreateMealPlanRequest{
		Name: "Backwards", StartDate: date("2025-03-16"), EndDate: date("2025-03-10"),
	})
	assert.True(t, service.IsKind(err, service.KindValidation))
	assert.Equal(t, "Start date must be before end date", service.MessageOf(err))

	missing := uuid.New()
	_, err = f.svc.Create(ctx, f.owner.ID, &types.CreateMealPlanRequest{
		Name: "Missing", StartDate: date("2025-03-10"), EndDate: date("2025-03-16"),
		Meals: []types.MealDayInput{{
			Day: *date("2025-03-10"),
			Items: []types.MealItemInput{
				{Recipe: types.RecipeRef(f.pizza.ID.String()), MealType: "Lunch"},
				{Recipe: types.RecipeRef(missing.String()), MealType: "Dinner"},
			},
		}},
	})
	assert.True(t, service.IsKind(err, service.KindNotFound))
	assert.Equal(t, "Recipe not found: "+missing.String(), service.MessageOf(err))

	var count int64
	require.NoError(t, f.db.Model(&models.MealPlan{}).Count(&count).Error)
	assert.Zero(t, count, "no partial plan is written")

	_, err = f.svc.Create(ctx, f.owner.ID, &types.CreateMealPlanRequest{
		Name: "Bad type", StartDate: date("2025-03-10"), EndDate: date("2025-03-16"),
		Meals: []types.MealDayInput{{
			Day:   *date("2025-03-10"),
			Items: []types.MealItemInput{{Recipe: types.RecipeRef(f.pizza.ID.String()), MealType: "Dessert"}},
		}},
	})
	assert.True(t, service.IsKind(err, service.KindValidation))
}

func TestAddRecipeMergesIntoDayBucket(t *testing.T) {
	f := setupMealPlanTest(t)
	plan := f.create(t, nil)
	ctx := context.Background()

	_, err := f.svc.AddRecipe(ctx, f.owner.ID, plan.ID.String(), &types.AddRecipeToPlanRequest{
		Day: date("2025-03-11T08:00:00Z"), RecipeID: types.RecipeRef(f.pizza.ID.String()), MealType: "Lunch",
	})
	require.NoError(t, err)
	updated, err := f.svc.AddRecipe(ctx, f.owner.ID, plan.ID.String(), &types.AddRecipeToPlanRequest{
		Day: date("2025-03-11T19:00:00Z"), RecipeID: types.RecipeRef(f.cookies.ID.String()), MealType: "Snack", Servings: ptr(3),
	})
	require.NoError(t, err)

	require.Len(t, updated.Meals, 1)
	require.Len(t, updated.Meals[0].Items, 2)
	assert.Equal(t, 1, updated.Meals[0].Items[0].Servings)
	assert.Equal(t, 3, updated.Meals[0].Items[1].Servings)
	require.NotNil(t, updated.Meals[0].Items[1].Recipe)
	assert.Equal(t, 150.0, *updated.Meals[0].Items[1].Recipe.CaloriesPerServing)

	updated, err = f.svc.AddRecipe(ctx, f.owner.ID, plan.ID.String(), &types.AddRecipeToPlanRequest{
		Day: date("2025-03-12"), RecipeID: types.RecipeRef(f.pizza.ID.String()), MealType: "Dinner",
	})
	require.NoError(t, err)
	assert.Len(t, updated.Meals, 2)

	_, err = f.svc.AddRecipe(ctx, f.owner.ID, plan.ID.String(), &types.AddRecipeToPlanRequest{
		Day: date("2025-03-12"), RecipeID: types.RecipeRef(uuid.NewString()), MealType: "Dinner",
	})
	assert.True(t, service.IsKind(err, service.KindNotFound))
}

func TestMealPlanOwnershipHasNoAdminOverride(t *testing.T) {
	f := setupMealPlanTest(t)
	admin := testhelpers.CreateUser(t, f.db, "admin", models.RoleAdmin)
	plan := f.create(t, nil)
	ctx := context.Background()

	_, err := f.svc.Get(ctx, admin.ID, plan.ID.String())
	assert.True(t, service.IsKind(err, service.KindForbidden))

	_, err = f.svc.Update(ctx, admin.ID, plan.ID.String(), &types.UpdateMealPlanRequest{Name: ptr("Mine")})
	assert.True(t, service.IsKind(err, service.KindForbidden))

	_, err = f.svc.AddRecipe(ctx, admin.ID, plan.ID.String(), &types.AddRecipeToPlanRequest{
		Day: date("2025-03-12"), RecipeID: types.RecipeRef(f.pizza.ID.String()), MealType: "Dinner",
	})
	assert.True(t, service.IsKind(err, service.KindForbidden))

	err = f.svc.Delete(ctx, admin.ID, plan.ID.String())
	assert.True(t, service.IsKind(err, service.KindForbidden))

	err = f.svc.Delete(ctx, admin.ID, uuid.NewString())
	assert.True(t, service.IsKind(err, service.KindNotFound))

	require.NoError(t, f.svc.Delete(ctx, f.owner.ID, plan.ID.String()))
	_, err = f.svc.Get(ctx, f.owner.ID, plan.ID.String())
	assert.True(t, service.IsKind(err, service.KindNotFound))
}

func TestUpdateReplacesMealsWholesale(t *testing.T) {
	f := setupMealPlanTest(t)
	plan := f.create(t, []types.MealDayInput{
		{Day: *date("2025-03-10"), Items: []types.MealItemInput{{Recipe: types.RecipeRef(f.pizza.ID.String()), MealType: "Dinner"}}},
		{Day: *date("2025-03-11"), Items: []types.MealItemInput{
			{Recipe: types.RecipeRef(f.pizza.ID.String()), MealType: "Lunch"},
			{Recipe: types.RecipeRef(f.cookies.ID.String()), MealType: "Snack"},
		}},
	})
	ctx := context.Background()

	// client-side removal of the lone item on day one, then a whole-array write
	target := plan.Meals[0].Items[0].ID
	var meals []types.MealDayInput
	for _, d := range plan.Meals {
		day := types.MealDayInput{ID: ptr(d.ID), Day: types.Date{Time: d.Day}}
		for _, it := range d.Items {
			if it.ID == target {
				continue
			}
			day.Items = append(day.Items, types.MealItemInput{
				ID: ptr(it.ID), Recipe: types.RecipeRef(it.RecipeID.String()), MealType: it.MealType, Servings: ptr(it.Servings),
			})
		}
		if len(day.Items) > 0 {
			meals = append(meals, day)
		}
	}

	updated, err := f.svc.Update(ctx, f.owner.ID, plan.ID.String(), &types.UpdateMealPlanRequest{
		Meals:    &meals,
		IsActive: ptr(false),
		Notes:    ptr("Lighter week"),
	})
	require.NoError(t, err)
	require.Len(t, updated.Meals, 1)
	assert.Equal(t, plan.Meals[1].ID, updated.Meals[0].ID)
	assert.Equal(t, plan.Meals[1].Items[0].ID, updated.Meals[0].Items[0].ID)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "Lighter week", updated.Notes)
	assert.Equal(t, "Week one", updated.Name)

	_, err = f.svc.Update(ctx, f.owner.ID, plan.ID.String(), &types.UpdateMealPlanRequest{Name: ptr("")})
	assert.True(t, service.IsKind(err, service.KindValidation))
}

func TestListMealPlans(t *testing.T) {
	f := setupMealPlanTest(t)
	other := testhelpers.CreateUser(t, f.db, "other", models.RoleUser)
	ctx := context.Background()

	for _, start := range []string{"2025-01-06", "2025-03-03", "2025-02-03"} {
		_, err := f.svc.Create(ctx, f.owner.ID, &types.CreateMealPlanRequest{
			Name: "Plan " + start, StartDate: date(start), EndDate: date(start),
			Meals: []types.MealDayInput{{Day: *date(start), Items: []types.MealItemInput{{Recipe: types.RecipeRef(f.pizza.ID.String()), MealType: "Dinner"}}}},
		})
		require.NoError(t, err)
	}
	_, err := f.svc.Create(ctx, other.ID, &types.CreateMealPlanRequest{Name: "Theirs", StartDate: date("2025-05-05"), EndDate: date("2025-05-06")})
	require.NoError(t, err)

	page, err := f.svc.List(ctx, f.owner.ID, types.NewPageRequest(1, 10), false)
	require.NoError(t, err)
	require.Len(t, page.Items, 3)
	assert.Equal(t, "Plan 2025-03-03", page.Items[0].Name)
	assert.Equal(t, "Plan 2025-01-06", page.Items[2].Name)
	require.NotNil(t, page.Items[0].Meals[0].Items[0].Recipe)
	assert.Equal(t, "Pizza", page.Items[0].Meals[0].Items[0].Recipe.Name)
	assert.Nil(t, page.Items[0].Meals[0].Items[0].Recipe.Ingredients, "list uses the light projection")

	_, err = f.svc.Update(ctx, f.owner.ID, page.Items[0].ID.String(), &types.UpdateMealPlanRequest{IsActive: ptr(false)})
	require.NoError(t, err)

	active, err := f.svc.List(ctx, f.owner.ID, types.NewPageRequest(1, 10), true)
	require.NoError(t, err)
	assert.Len(t, active.Items, 2)
	assert.Equal(t, int64(2), active.Pagination.Total)
}

func TestMealPlanToleratesDeletedRecipes(t *testing.T) {
	f := setupMealPlanTest(t)
	plan := f.create(t, []types.MealDayInput{{
		Day:   *date("2025-03-10"),
		Items: []types.MealItemInput{{Recipe: types.RecipeRef(f.cookies.ID.String()), MealType: "Snack"}},
	}})
	require.NoError(t, f.db.Delete(&models.Recipe{}, "id = ?", f.cookies.ID).Error)

	got, err := f.svc.Get(context.Background(), f.owner.ID, plan.ID.String())
	require.NoError(t, err)
	require.Len(t, got.Meals[0].Items, 1)
	assert.Nil(t, got.Meals[0].Items[0].Recipe)
	assert.Equal(t, f.cookies.ID, got.Meals[0].Items[0].RecipeID)
}

func TestMealPlanDatesCompareByCalendarDay(t *testing.T) {
	f := setupMealPlanTest(t)
	plan := f.create(t, nil)
	ctx := context.Background()

	for _, at := range []string{"2025-03-12T00:00:00Z", "2025-03-12T23:59:59Z", "2025-03-12"} {
		_, err := f.svc.AddRecipe(ctx, f.owner.ID, plan.ID.String(), &types.AddRecipeToPlanRequest{
			Day: date(at), RecipeID: types.RecipeRef(f.pizza.ID.String()), MealType: "Lunch",
		})
		require.NoError(t, err)
	}
	got, err := f.svc.Get(ctx, f.owner.ID, plan.ID.String())
	require.NoError(t, err)
	require.Len(t, got.Meals, 1)
	assert.Len(t, got.Meals[0].Items, 3)
	assert.True(t, models.SameCalendarDay(got.Meals[0].Day, time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)))
}
