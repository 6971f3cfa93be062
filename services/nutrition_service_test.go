package services

import (
	"testing"

	"github.com/Massiue/HealthyMealPlanner/models"
)

// TestCalculateBMR_GenderOffsets verifies the Mifflin-St Jeor constants for
// each gender bucket. Base for age=30, weight=80kg, height=180cm is
// 10*80 + 6.25*180 - 5*30 = 1775.
func TestCalculateBMR_GenderOffsets(t *testing.T) {
	cases := []struct {
		gender string
		want   float64
	}{
		{"male", 1780},   // +5
		{"female", 1614}, // -161
		{"other", 1697},  // -78, midpoint of the male/female constants
	}

	for _, tc := range cases {
		t.Run(tc.gender, func(t *testing.T) {
			got := CalculateBMR(30, tc.gender, 80, 180)
			if got != tc.want {
				t.Errorf("CalculateBMR(30, %q, 80, 180) = %v, want %v", tc.gender, got, tc.want)
			}
		})
	}
}

// TestComputeTargets_GoalTable walks the goal adjustment table for the
// reference user: age=30, male, 80kg, 180cm, moderate activity (1.55).
// BMR = 1780, TDEE = 1780 * 1.55 = 2759.
func TestComputeTargets_GoalTable(t *testing.T) {
	cases := []struct {
		goal         string
		wantCalories int
		wantProtein  int
	}{
		{GoalMaintain, 2759, 96},    // protein 80 * 1.2
		{GoalWeightLoss, 2259, 160}, // -500, protein 80 * 2.0
		{GoalWeightGain, 3159, 144}, // +400, protein 80 * 1.8
		{GoalMuscleGain, 3159, 144}, // +400, protein 80 * 1.8
	}

	for _, tc := range cases {
		t.Run(tc.goal, func(t *testing.T) {
			got := ComputeTargets(30, "male", 80, 180, 1.55, tc.goal)
			if got.Calories != tc.wantCalories {
				t.Errorf("calories = %d, want %d", got.Calories, tc.wantCalories)
			}
			if got.ProteinGrams != tc.wantProtein {
				t.Errorf("protein = %d, want %d", got.ProteinGrams, tc.wantProtein)
			}
			if got.WaterLiters != 2.8 {
				t.Errorf("water = %v, want 2.8", got.WaterLiters)
			}
		})
	}
}

// TestComputeTargets_Deterministic verifies the same input always yields the
// same output.
func TestComputeTargets_Deterministic(t *testing.T) {
	a := ComputeTargets(42, "female", 63.5, 167.2, 1.375, GoalWeightLoss)
	b := ComputeTargets(42, "female", 63.5, 167.2, 1.375, GoalWeightLoss)
	if a != b {
		t.Errorf("same input produced different targets: %+v vs %+v", a, b)
	}
}

// TestCalculateDailyWater_OneDecimal verifies the 35ml/kg rule rounds to a
// single decimal place.
func TestCalculateDailyWater_OneDecimal(t *testing.T) {
	cases := []struct {
		weightKg float64
		want     float64
	}{
		{80, 2.8},
		{70, 2.5},   // 2.45 rounds up
		{72.5, 2.5}, // 2.5375 rounds down
		{100, 3.5},
		{0, 0},
	}

	for _, tc := range cases {
		if got := CalculateDailyWater(tc.weightKg); got != tc.want {
			t.Errorf("CalculateDailyWater(%v) = %v, want %v", tc.weightKg, got, tc.want)
		}
	}
}

// TestCalculateDailyCalories_NoClamp documents that degenerate input passes
// straight through: the calculator never rejects or floors, validation is
// the boundary layer's job.
func TestCalculateDailyCalories_NoClamp(t *testing.T) {
	got := CalculateDailyCalories(0, "female", 0, 0, 1.2, GoalWeightLoss)
	if got != -693 {
		// BMR = -161, TDEE = -193.2, loss adjustment -500 = -693.2
		t.Errorf("calories = %d, want -693 (no clamping)", got)
	}
}

// TestCalorieDistribution verifies the 30/40/30 split and that shares round
// independently, so their sum may drift from the total by a calorie or two.
func TestCalorieDistribution(t *testing.T) {
	b, l, d := CalorieDistribution(2000)
	if b != 600 || l != 800 || d != 600 {
		t.Errorf("CalorieDistribution(2000) = %d/%d/%d, want 600/800/600", b, l, d)
	}

	b, l, d = CalorieDistribution(2759)
	if b != 828 || l != 1104 || d != 828 {
		t.Errorf("CalorieDistribution(2759) = %d/%d/%d, want 828/1104/828", b, l, d)
	}
	if b+l+d == 2759 {
		t.Error("expected independent rounding to drift from the total for 2759")
	}
}

// TestRecomputeTargets_WritesAllThree verifies a recompute always refreshes
// calories, protein and water together.
func TestRecomputeTargets_WritesAllThree(t *testing.T) {
	u := models.User{
		Age: 30, Gender: "male", WeightKg: 80, HeightCm: 180,
		ActivityLevel: "moderate", Goal: GoalMaintain,
		DailyCalories: 1, DailyProtein: 1, DailyWater: 1,
	}
	RecomputeTargets(&u)

	if u.DailyCalories != 2759 {
		t.Errorf("DailyCalories = %d, want 2759", u.DailyCalories)
	}
	if u.DailyProtein != 96 {
		t.Errorf("DailyProtein = %d, want 96", u.DailyProtein)
	}
	if u.DailyWater != 2.8 {
		t.Errorf("DailyWater = %v, want 2.8", u.DailyWater)
	}
}

// TestRecomputeTargets_UnknownActivityLevel verifies the sedentary fallback.
func TestRecomputeTargets_UnknownActivityLevel(t *testing.T) {
	u := models.User{
		Age: 30, Gender: "male", WeightKg: 80, HeightCm: 180,
		ActivityLevel: "couch", Goal: GoalMaintain,
	}
	RecomputeTargets(&u)

	// BMR 1780 * 1.2 = 2136
	if u.DailyCalories != 2136 {
		t.Errorf("DailyCalories = %d, want 2136 (sedentary fallback)", u.DailyCalories)
	}
}
