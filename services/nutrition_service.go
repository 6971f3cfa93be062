package services

import (
	"math"

	"github.com/Massiue/HealthyMealPlanner/models"
)

// ActivityMultipliers maps activity level strings to their TDEE multiplier.
// This is the single source of truth for valid activity levels; the profile
// controller validates input against it.
var ActivityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// Fitness goals a user can pick.
const (
	GoalWeightLoss = "Weight Loss"
	GoalMaintain   = "Maintain Weight"
	GoalWeightGain = "Weight Gain"
	GoalMuscleGain = "Muscle Gain"
)

// Targets are the derived daily intake goals stored on the user record.
type Targets struct {
	Calories     int     `json:"dailyCalories"`
	ProteinGrams int     `json:"dailyProtein"`
	WaterLiters  float64 `json:"dailyWater"`
}

// CalculateBMR computes Basal Metabolic Rate via Mifflin-St Jeor.
// The -78 offset for the "other" gender bucket is the midpoint of the male
// (+5) and female (-161) constants; a documented simplification, not a
// medical claim.
func CalculateBMR(age int, gender string, weightKg, heightCm float64) float64 {
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	switch gender {
	case "male":
		bmr += 5
	case "female":
		bmr -= 161
	default:
		bmr -= 78
	}
	return bmr
}

// CalculateDailyCalories computes the daily calorie target: BMR scaled by
// the activity multiplier, then adjusted for the goal (-500 for weight loss,
// +400 for weight or muscle gain). Rounded once, at the end.
//
// No floor is applied. Validation is a boundary concern and degenerate
// metrics produce degenerate targets rather than errors.
func CalculateDailyCalories(age int, gender string, weightKg, heightCm, activityMultiplier float64, goal string) int {
	tdee := CalculateBMR(age, gender, weightKg, heightCm) * activityMultiplier

	target := tdee
	switch goal {
	case GoalWeightLoss:
		target = tdee - 500
	case GoalWeightGain, GoalMuscleGain:
		target = tdee + 400
	}
	return int(math.Round(target))
}

// CalculateDailyProtein returns the protein target in grams: body weight
// times a goal-dependent multiplier (2.0 g/kg in a deficit, 1.8 when
// gaining, 1.2 otherwise).
func CalculateDailyProtein(weightKg float64, goal string) int {
	multiplier := 1.2
	switch goal {
	case GoalWeightLoss:
		multiplier = 2.0
	case GoalWeightGain, GoalMuscleGain:
		multiplier = 1.8
	}
	return int(math.Round(weightKg * multiplier))
}

// CalculateDailyWater returns the water target in liters: 35ml per kg of
// body weight, rounded to one decimal place.
func CalculateDailyWater(weightKg float64) float64 {
	return math.Round(weightKg*0.035*10) / 10
}

// ComputeTargets bundles the three derived targets for one set of metrics.
func ComputeTargets(age int, gender string, weightKg, heightCm, activityMultiplier float64, goal string) Targets {
	return Targets{
		Calories:     CalculateDailyCalories(age, gender, weightKg, heightCm, activityMultiplier, goal),
		ProteinGrams: CalculateDailyProtein(weightKg, goal),
		WaterLiters:  CalculateDailyWater(weightKg),
	}
}

// CalorieDistribution splits a calorie target 30/40/30 across the three
// slots. Each share rounds independently, so the parts may not sum exactly
// to the total. Used for recommendations, never enforced.
func CalorieDistribution(total int) (breakfast, lunch, dinner int) {
	breakfast = int(math.Round(float64(total) * 0.3))
	lunch = int(math.Round(float64(total) * 0.4))
	dinner = int(math.Round(float64(total) * 0.3))
	return breakfast, lunch, dinner
}

// RecomputeTargets refreshes the derived target fields on u from its current
// metrics. All three are always written together so a weight or goal change
// can never leave one of them stale. Unknown activity levels fall back to
// sedentary.
func RecomputeTargets(u *models.User) {
	mult, ok := ActivityMultipliers[u.ActivityLevel]
	if !ok {
		mult = ActivityMultipliers["sedentary"]
	}
	t := ComputeTargets(u.Age, u.Gender, u.WeightKg, u.HeightCm, mult, u.Goal)
	u.DailyCalories = t.Calories
	u.DailyProtein = t.ProteinGrams
	u.DailyWater = t.WaterLiters
}
