package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// PlanMealTypes lists the meal types a meal plan item can use
var PlanMealTypes = []string{"Breakfast", "Lunch", "Dinner", "Snack"}

// MealItem is one recipe scheduled inside a day
type MealItem struct {
	ID       uuid.UUID `json:"id"`
	RecipeID uuid.UUID `json:"recipeId"`
	MealType string    `json:"mealType"`
	Servings int       `json:"servings"`
}

// MealDay groups the items planned for one calendar day
type MealDay struct {
	ID    uuid.UUID  `json:"id"`
	Day   time.Time  `json:"day"`
	Items []MealItem `json:"items"`
}

// MealDays is the ordered day list of a plan, stored as one JSON document
type MealDays []MealDay

// Value implements the driver.Valuer interface
func (d MealDays) Value() (driver.Value, error) {
	if len(d) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(d)
	return string(b), err
}

// Scan implements the sql.Scanner interface
func (d *MealDays) Scan(value interface{}) error {
	*d = MealDays{}
	if value == nil {
		return nil
	}
	return scanJSON(value, d)
}

// GormDBDataType implements schema.GormDBDataTypeInterface
func (MealDays) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	return jsonColumnType(db)
}

// SameCalendarDay compares the UTC calendar dates of a and b
func SameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// AddItem appends item to the day bucket matching day, creating the bucket
// when no existing entry falls on the same calendar date.
func (d MealDays) AddItem(day time.Time, item MealItem) MealDays {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	if item.Servings == 0 {
		item.Servings = 1
	}
	for i := range d {
		if SameCalendarDay(d[i].Day, day) {
			d[i].Items = append(d[i].Items, item)
			return d
		}
	}
	return append(d, MealDay{ID: uuid.New(), Day: day, Items: []MealItem{item}})
}

// RemoveItem drops the item with the given id and any day left empty. The
// result is meant to be sent back as a whole-array update.
func (d MealDays) RemoveItem(itemID uuid.UUID) MealDays {
	out := make(MealDays, 0, len(d))
	for _, day := range d {
		items := make([]MealItem, 0, len(day.Items))
		for _, it := range day.Items {
			if it.ID != itemID {
				items = append(items, it)
			}
		}
		if len(items) == 0 {
			continue
		}
		day.Items = items
		out = append(out, day)
	}
	return out
}

// RecipeIDs returns every referenced recipe id in plan order, without duplicates
func (d MealDays) RecipeIDs() []uuid.UUID {
	seen := make(map[uuid.UUID]bool)
	var ids []uuid.UUID
	for _, day := range d {
		for _, it := range day.Items {
			if !seen[it.RecipeID] {
				seen[it.RecipeID] = true
				ids = append(ids, it.RecipeID)
			}
		}
	}
	return ids
}

type MealPlan struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	UserID    uuid.UUID `gorm:"type:varchar(36);not null;index" json:"user"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	StartDate time.Time `gorm:"not null;index" json:"startDate"`
	EndDate   time.Time `gorm:"not null" json:"endDate"`
	Meals     MealDays  `gorm:"not null" json:"meals"`
	Notes     string    `gorm:"size:500" json:"notes"`
	IsActive  bool      `gorm:"not null;default:true" json:"isActive"`
	Version   int       `gorm:"not null;default:1" json:"-"`
}

// BeforeCreate assigns ids to the plan and to any day or item missing one
func (p *MealPlan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Meals == nil {
		p.Meals = MealDays{}
	}
	p.Meals.AssignIDs()
	return nil
}

// AssignIDs gives a fresh id to every day and item that lacks one
func (d MealDays) AssignIDs() {
	for i := range d {
		if d[i].ID == uuid.Nil {
			d[i].ID = uuid.New()
		}
		for j := range d[i].Items {
			if d[i].Items[j].ID == uuid.Nil {
				d[i].Items[j].ID = uuid.New()
			}
		}
	}
}
