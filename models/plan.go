package models

import "gorm.io/gorm"

// DailyPlan holds one user's meal-slot assignments and water intake for one
// calendar date. Exactly one row exists per (user, date). A nil slot means
// "not assigned yet", which is distinct from a zero-calorie meal.
type DailyPlan struct {
	gorm.Model
	UserID uint   `gorm:"index:idx_plan_user_date,unique;not null" json:"-"`
	Date   string `gorm:"index:idx_plan_user_date,unique;size:10;not null" json:"date"` // YYYY-MM-DD

	Breakfast *Meal `gorm:"serializer:json" json:"breakfast,omitempty"`
	Lunch     *Meal `gorm:"serializer:json" json:"lunch,omitempty"`
	Dinner    *Meal `gorm:"serializer:json" json:"dinner,omitempty"`

	WaterIntake float64 `json:"waterIntake"`
}

// Slot returns the plan field for the named slot, nil for unknown types.
func (p *DailyPlan) Slot(t MealType) **Meal {
	switch t {
	case Breakfast:
		return &p.Breakfast
	case Lunch:
		return &p.Lunch
	case Dinner:
		return &p.Dinner
	}
	return nil
}

// TotalCalories sums the calories of the slots that are assigned.
func (p *DailyPlan) TotalCalories() int {
	total := 0
	for _, m := range []*Meal{p.Breakfast, p.Lunch, p.Dinner} {
		if m != nil {
			total += m.Calories
		}
	}
	return total
}

// TotalProtein sums the protein grams of the slots that are assigned.
func (p *DailyPlan) TotalProtein() int {
	total := 0
	for _, m := range []*Meal{p.Breakfast, p.Lunch, p.Dinner} {
		if m != nil {
			total += m.Protein
		}
	}
	return total
}
