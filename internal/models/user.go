package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID              uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
	FirstName       string    `gorm:"size:50;not null" json:"firstName"`
	LastName        string    `gorm:"size:50;not null" json:"lastName"`
	Email           string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Username        string    `gorm:"size:50;uniqueIndex;not null" json:"username"`
	PasswordHash    string    `gorm:"not null" json:"-"`
	Bio             string    `gorm:"size:500" json:"bio"`
	Image           string    `gorm:"size:500" json:"image"`
	Role            string    `gorm:"size:10;not null;default:'user'" json:"role"`
	FavoriteRecipes UUIDList  `gorm:"not null" json:"favoriteRecipes"`
	CreatedRecipes  UUIDList  `gorm:"not null" json:"createdRecipes"`
	Version         int       `gorm:"not null;default:1" json:"-"`
}

// BeforeCreate assigns an id and the default role
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.Role == "" {
		u.Role = RoleUser
	}
	if u.FavoriteRecipes == nil {
		u.FavoriteRecipes = UUIDList{}
	}
	if u.CreatedRecipes == nil {
		u.CreatedRecipes = UUIDList{}
	}
	return nil
}

// IsAdmin reports whether the user carries the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserSummary is the owner projection embedded in recipe listings
type UserSummary struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Username  string    `json:"username"`
	Image     string    `json:"image,omitempty"`
}

func (UserSummary) TableName() string { return "users" }
