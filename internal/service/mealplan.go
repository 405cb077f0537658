package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/pageza/recipebook/backend/internal/models"
	"github.com/pageza/recipebook/backend/internal/types"
)

const mealPlanNotFound = "Meal plan not found"

var (
	planSummaryColumns = []string{"id", "name", "image", "prep_time_minutes", "cook_time_minutes"}
	planDetailColumns  = []string{"id", "name", "image", "ingredients", "prep_time_minutes", "cook_time_minutes", "servings", "calories_per_serving"}
)

// MealItemView is a scheduled item with its recipe resolved. Recipe is nil
// when the referenced recipe has been deleted.
type MealItemView struct {
	ID       uuid.UUID          `json:"id"`
	RecipeID uuid.UUID          `json:"recipeId"`
	Recipe   *models.PlanRecipe `json:"recipe"`
	MealType string             `json:"mealType"`
	Servings int                `json:"servings"`
}

type MealDayView struct {
	ID    uuid.UUID      `json:"id"`
	Day   time.Time      `json:"day"`
	Items []MealItemView `json:"items"`
}

// MealPlanView is the client representation of a meal plan
type MealPlanView struct {
	ID        uuid.UUID     `json:"id"`
	User      uuid.UUID     `json:"user"`
	Name      string        `json:"name"`
	StartDate time.Time     `json:"startDate"`
	EndDate   time.Time     `json:"endDate"`
	Meals     []MealDayView `json:"meals"`
	Notes     string        `json:"notes"`
	IsActive  bool          `json:"isActive"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// MealPlanService manages meal plans and their day buckets
type MealPlanService struct {
	db   *gorm.DB
	gate *Gate
	log  zerolog.Logger
}

// NewMealPlanService creates a new MealPlanService instance
func NewMealPlanService(db *gorm.DB, gate *Gate, log zerolog.Logger) *MealPlanService {
	return &MealPlanService{db: db, gate: gate, log: log}
}

// Create stores a new plan. Every referenced recipe must exist; nothing is
// written if one is missing.
func (s *MealPlanService) Create(ctx context.Context, ownerID uuid.UUID, req *types.CreateMealPlanRequest) (*MealPlanView, error) {
	if req.StartDate == nil || req.EndDate == nil {
		return nil, validationError("Start date and end date are required")
	}
	if req.StartDate.After(req.EndDate.Time) {
		return nil, validationError("Start date must be before end date")
	}

	meals, err := mealsFromInput(req.Meals)
	if err != nil {
		return nil, err
	}
	if err := s.requireRecipes(ctx, meals.RecipeIDs()); err != nil {
		return nil, err
	}

	plan := models.MealPlan{
		UserID:    ownerID,
		Name:      req.Name,
		StartDate: req.StartDate.Time,
		EndDate:   req.EndDate.Time,
		Meals:     meals,
		Notes:     req.Notes,
		IsActive:  true,
	}
	if err := plan.Validate(); err != nil {
		return nil, modelError(err)
	}
	if err := s.db.WithContext(ctx).Create(&plan).Error; err != nil {
		return nil, internal("Server error", err)
	}
	return s.view(ctx, &plan, planSummaryColumns)
}

// List returns the owner's plans, newest start date first
func (s *MealPlanService) List(ctx context.Context, ownerID uuid.UUID, page types.PageRequest, activeOnly bool) (*types.Page[MealPlanView], error) {
	query := s.db.WithContext(ctx).Model(&models.MealPlan{}).Where("user_id = ?", ownerID)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, internal("Server error", err)
	}
	var plans []models.MealPlan
	if err := query.Order("start_date DESC").Order("id").Offset(page.Offset()).Limit(page.Limit).Find(&plans).Error; err != nil {
		return nil, internal("Server error", err)
	}

	views, err := s.views(ctx, plans, planSummaryColumns)
	if err != nil {
		return nil, err
	}
	return &types.Page[MealPlanView]{
		Items:      views,
		Pagination: types.NewPagination(total, page.Page, page.Limit),
	}, nil
}

// Get returns one plan with detailed recipe projections
func (s *MealPlanService) Get(ctx context.Context, actorID uuid.UUID, rawID string) (*MealPlanView, error) {
	plan, err := s.load(ctx, rawID)
	if err != nil {
		return nil, err
	}
	if err := s.gate.CanMutateMealPlan(actorID, plan, "Not authorized to access this meal plan"); err != nil {
		return nil, err
	}
	return s.view(ctx, plan, planDetailColumns)
}

// Update replaces the provided top-level fields. A provided meals array
// replaces the stored days entirely.
func (s *MealPlanService) Update(ctx context.Context, actorID uuid.UUID, rawID string, req *types.UpdateMealPlanRequest) (*MealPlanView, error) {
	var plan *models.MealPlan
	err := retryStale(func() error {
		var err error
		if plan, err = s.load(ctx, rawID); err != nil {
			return err
		}
		if err := s.gate.CanMutateMealPlan(actorID, plan, "Not authorized to update this meal plan"); err != nil {
			return err
		}

		if req.Name != nil {
			plan.Name = *req.Name
		}
		if req.StartDate != nil {
			plan.StartDate = req.StartDate.Time
		}
		if req.EndDate != nil {
			plan.EndDate = req.EndDate.Time
		}
		if req.Notes != nil {
			plan.Notes = *req.Notes
		}
		if req.IsActive != nil {
			plan.IsActive = *req.IsActive
		}
		if req.Meals != nil {
			meals, err := mealsFromInput(*req.Meals)
			if err != nil {
				return err
			}
			plan.Meals = meals
		}
		if err := plan.Validate(); err != nil {
			return modelError(err)
		}

		return updateVersioned(s.db.WithContext(ctx), &models.MealPlan{}, plan.ID, plan.Version, map[string]interface{}{
			"name":       plan.Name,
			"start_date": plan.StartDate,
			"end_date":   plan.EndDate,
			"notes":      plan.Notes,
			"is_active":  plan.IsActive,
			"meals":      plan.Meals,
		})
	})
	if err != nil {
		return nil, wrapInternal(err)
	}
	return s.Get(ctx, actorID, rawID)
}

// Delete removes a plan owned by actorID
func (s *MealPlanService) Delete(ctx context.Context, actorID uuid.UUID, rawID string) error {
	plan, err := s.load(ctx, rawID)
	if err != nil {
		return err
	}
	if err := s.gate.CanMutateMealPlan(actorID, plan, "Not authorized to delete this meal plan"); err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Delete(&models.MealPlan{}, "id = ?", plan.ID).Error; err != nil {
		return internal("Server error", err)
	}
	return nil
}

// AddRecipe schedules a recipe on a day, reusing the day bucket that falls
// on the same calendar date when one exists.
func (s *MealPlanService) AddRecipe(ctx context.Context, actorID uuid.UUID, rawID string, req *types.AddRecipeToPlanRequest) (*MealPlanView, error) {
	if req.Day == nil {
		return nil, validationError("Day is required")
	}
	servings := 1
	if req.Servings != nil {
		servings = *req.Servings
	}
	item := models.MealItem{MealType: req.MealType, Servings: servings}

	err := retryStale(func() error {
		plan, err := s.load(ctx, rawID)
		if err != nil {
			return err
		}
		if err := s.gate.CanMutateMealPlan(actorID, plan, "Not authorized to modify this meal plan"); err != nil {
			return err
		}
		recipeID, err := parseID(string(req.RecipeID), recipeNotFound)
		if err != nil {
			return err
		}
		if err := s.requireRecipes(ctx, []uuid.UUID{recipeID}); err != nil {
			if IsKind(err, KindNotFound) {
				return notFound(recipeNotFound)
			}
			return err
		}

		item.RecipeID = recipeID
		item.ID = uuid.Nil
		plan.Meals = plan.Meals.AddItem(req.Day.Time, item)
		if err := plan.Validate(); err != nil {
			return modelError(err)
		}
		return updateVersioned(s.db.WithContext(ctx), &models.MealPlan{}, plan.ID, plan.Version, map[string]interface{}{
			"meals": plan.Meals,
		})
	})
	if err != nil {
		return nil, wrapInternal(err)
	}
	return s.Get(ctx, actorID, rawID)
}

func (s *MealPlanService) load(ctx context.Context, rawID string) (*models.MealPlan, error) {
	id, err := parseID(rawID, mealPlanNotFound)
	if err != nil {
		return nil, err
	}
	var plan models.MealPlan
	if err := s.db.WithContext(ctx).First(&plan, "id = ?", id).Error; err != nil {
		return nil, storeError(err, mealPlanNotFound)
	}
	return &plan, nil
}

// requireRecipes fails with NotFound naming the first id that does not resolve
func (s *MealPlanService) requireRecipes(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	var found []uuid.UUID
	if err := s.db.WithContext(ctx).Model(&models.Recipe{}).Where("id IN ?", ids).Pluck("id", &found).Error; err != nil {
		return internal("Server error", err)
	}
	exists := make(map[uuid.UUID]bool, len(found))
	for _, id := range found {
		exists[id] = true
	}
	for _, id := range ids {
		if !exists[id] {
			return notFound(fmt.Sprintf("Recipe not found: %s", id))
		}
	}
	return nil
}

// mealsFromInput converts request days into stored days. Client supplied day
// and item ids are kept so a read-filter-write round trip preserves them.
func mealsFromInput(in []types.MealDayInput) (models.MealDays, error) {
	days := make(models.MealDays, 0, len(in))
	for _, d := range in {
		day := models.MealDay{Day: d.Day.Time, Items: make([]models.MealItem, 0, len(d.Items))}
		if d.ID != nil {
			day.ID = *d.ID
		}
		for _, it := range d.Items {
			ref := strings.TrimSpace(string(it.Recipe))
			recipeID, err := uuid.Parse(ref)
			if err != nil {
				return nil, notFound(fmt.Sprintf("Recipe not found: %s", ref))
			}
			item := models.MealItem{RecipeID: recipeID, MealType: it.MealType, Servings: 1}
			if it.ID != nil {
				item.ID = *it.ID
			}
			if it.Servings != nil {
				item.Servings = *it.Servings
			}
			day.Items = append(day.Items, item)
		}
		days = append(days, day)
	}
	days.AssignIDs()
	return days, nil
}

func (s *MealPlanService) view(ctx context.Context, plan *models.MealPlan, cols []string) (*MealPlanView, error) {
	views, err := s.views(ctx, []models.MealPlan{*plan}, cols)
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// views resolves the recipe projections of every item across plans with a
// single query.
func (s *MealPlanService) views(ctx context.Context, plans []models.MealPlan, cols []string) ([]MealPlanView, error) {
	seen := make(map[uuid.UUID]bool)
	var ids []uuid.UUID
	for _, p := range plans {
		for _, id := range p.Meals.RecipeIDs() {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}

	recipes := make(map[uuid.UUID]*models.PlanRecipe, len(ids))
	if len(ids) > 0 {
		var rows []models.PlanRecipe
		if err := s.db.WithContext(ctx).Model(&models.Recipe{}).Select(cols).Where("id IN ?", ids).Find(&rows).Error; err != nil {
			return nil, internal("Server error", err)
		}
		for i := range rows {
			recipes[rows[i].ID] = &rows[i]
		}
	}

	views := make([]MealPlanView, 0, len(plans))
	for _, p := range plans {
		v := MealPlanView{
			ID:        p.ID,
			User:      p.UserID,
			Name:      p.Name,
			StartDate: p.StartDate,
			EndDate:   p.EndDate,
			Notes:     p.Notes,
			IsActive:  p.IsActive,
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.UpdatedAt,
			Meals:     make([]MealDayView, 0, len(p.Meals)),
		}
		for _, d := range p.Meals {
			dv := MealDayView{ID: d.ID, Day: d.Day, Items: make([]MealItemView, 0, len(d.Items))}
			for _, it := range d.Items {
				dv.Items = append(dv.Items, MealItemView{
					ID:       it.ID,
					RecipeID: it.RecipeID,
					Recipe:   recipes[it.RecipeID],
					MealType: it.MealType,
					Servings: it.Servings,
				})
			}
			v.Meals = append(v.Meals, dv)
		}
		views = append(views, v)
	}
	return views, nil
}
