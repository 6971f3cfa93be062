package models

import (
	"gorm.io/gorm"
)

// Account roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is an account plus the body metrics its daily targets derive from.
// DailyCalories, DailyProtein and DailyWater are always recomputed from the
// metrics below, never written independently.
type User struct {
	gorm.Model
	Name     string
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"not null;default:user"`

	Age           int
	Gender        string // "male" | "female" | "other"
	HeightCm      float64
	WeightKg      float64
	ActivityLevel string // key into services.ActivityMultipliers
	Goal          string // one of the fitness goal constants

	DailyCalories int
	DailyProtein  int
	DailyWater    float64

	WeightHistory []WeightEntry
}
