package models

import (
	"strconv"

	"gorm.io/gorm"
)

// MealType names a slot in a daily plan.
type MealType string

const (
	Breakfast MealType = "Breakfast"
	Lunch     MealType = "Lunch"
	Dinner    MealType = "Dinner"
)

// ValidMealType reports whether t is one of the three plan slots.
func ValidMealType(t MealType) bool {
	return t == Breakfast || t == Lunch || t == Dinner
}

// MealSource says which catalog a meal id belongs to. The tag travels with
// the meal so nothing ever has to guess from the shape of the id string.
type MealSource string

const (
	SourceSeed    MealSource = "seed"
	SourceCatalog MealSource = "catalog"
)

// DefaultMealImage is used when an admin creates a meal without an image.
const DefaultMealImage = "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?w=500"

// Meal is the value form shared by the seed catalog, the persisted catalog
// and plan slots. A plan stores a copy of this struct at assignment time,
// so later catalog edits and deletions never rewrite past plans.
type Meal struct {
	ID       string     `json:"id"`
	Source   MealSource `json:"source"`
	Name     string     `json:"mealName"`
	Type     MealType   `json:"mealType"`
	Calories int        `json:"calories"`
	Protein  int        `json:"protein"`
	DietTag  string     `json:"dietTag"` // Vegetarian | Vegan | Non-Veg | High Protein
	ImageURL string     `json:"imageUrl"`
}

// CatalogMeal is an admin-managed meal persisted in the database.
type CatalogMeal struct {
	gorm.Model
	Name     string `gorm:"not null"`
	Type     string `gorm:"not null"`
	Calories int
	Protein  int
	DietTag  string
	ImageURL string
}

// AsMeal converts the row into the shared value form.
func (m *CatalogMeal) AsMeal() Meal {
	img := m.ImageURL
	if img == "" {
		img = DefaultMealImage
	}
	return Meal{
		ID:       strconv.FormatUint(uint64(m.ID), 10),
		Source:   SourceCatalog,
		Name:     m.Name,
		Type:     MealType(m.Type),
		Calories: m.Calories,
		Protein:  m.Protein,
		DietTag:  m.DietTag,
		ImageURL: img,
	}
}

// SeedMealStatus overlays deletion/conversion state on top of the immutable
// built-in seed catalog. A seed meal disappears from the merged catalog when
// Deleted is set or when it has been converted into a persisted meal.
// Rows are only ever inserted or updated, never removed.
type SeedMealStatus struct {
	gorm.Model
	SeedID          string `gorm:"uniqueIndex;not null" json:"mockId"`
	Deleted         bool   `json:"deleted"`
	ConvertedMealID *uint  `json:"convertedMealId"`
}
