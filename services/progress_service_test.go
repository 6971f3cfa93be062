package services

import (
	"testing"
	"time"

	"github.com/Massiue/HealthyMealPlanner/models"
)

// TestDayStatus covers the classification bands around the calorie target.
func TestDayStatus(t *testing.T) {
	cases := []struct {
		name     string
		calories int
		target   int
		want     string
	}{
		{"zero calories is no data", 0, 2000, StatusNoData},
		{"zero calories with zero target is still no data", 0, 0, StatusNoData},
		{"exactly on target", 2000, 2000, StatusPerfect},
		{"just under the band", 2099, 2000, StatusPerfect},
		{"just under the band below", 1901, 2000, StatusPerfect},
		{"over by exactly 100", 2100, 2000, "Over by 100"},
		{"under by exactly 100", 1900, 2000, "Under by 100"},
		{"big deficit", 1050, 2259, "Under by 1209"},
		{"big surplus", 3200, 2000, "Over by 1200"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DayStatus(tc.calories, tc.target); got != tc.want {
				t.Errorf("DayStatus(%d, %d) = %q, want %q", tc.calories, tc.target, got, tc.want)
			}
		})
	}
}

// TestWindow_SingleDateExample replays the reference scenario: a 450kcal/30g
// breakfast and 600kcal/40g lunch on one date, dinner empty, against a 2259
// calorie target.
func TestWindow_SingleDateExample(t *testing.T) {
	repo := newMemPlanRepository()
	svc := NewPlanService(repo)

	breakfast := testMeal(models.Breakfast)
	lunch := testMeal(models.Lunch)
	lunch.Calories = 600
	lunch.Protein = 40

	svc.AssignMeal(1, "2024-01-01", breakfast)
	svc.AssignMeal(1, "2024-01-01", lunch)
	svc.SetWater(1, "2024-01-01", 1.5)

	progress := NewProgressService(repo)
	days, err := progress.Window(1, []string{"2024-01-01"}, 2259)
	if err != nil {
		t.Fatalf("Window: %v", err)
	}
	if len(days) != 1 {
		t.Fatalf("got %d days, want 1", len(days))
	}

	day := days[0]
	if day.Calories != 1050 {
		t.Errorf("calories = %d, want 1050", day.Calories)
	}
	if day.Protein != 70 {
		t.Errorf("protein = %d, want 70", day.Protein)
	}
	if day.Status != "Under by 1209" {
		t.Errorf("status = %q, want \"Under by 1209\"", day.Status)
	}
}

// TestWindow_AbsentDatesCountAsZero verifies days without a stored plan show
// zero totals and "No Data".
func TestWindow_AbsentDatesCountAsZero(t *testing.T) {
	repo := newMemPlanRepository()
	svc := NewPlanService(repo)
	svc.AssignMeal(1, "2024-01-02", testMeal(models.Breakfast))

	progress := NewProgressService(repo)
	days, err := progress.Window(1, []string{"2024-01-01", "2024-01-02", "2024-01-03"}, 2000)
	if err != nil {
		t.Fatalf("Window: %v", err)
	}
	if len(days) != 3 {
		t.Fatalf("got %d days, want 3", len(days))
	}

	if days[0].Status != StatusNoData || days[0].Calories != 0 {
		t.Errorf("absent day = %+v, want zero totals and %q", days[0], StatusNoData)
	}
	if days[1].Calories != 450 {
		t.Errorf("logged day calories = %d, want 450", days[1].Calories)
	}
	if days[2].Status != StatusNoData {
		t.Errorf("absent day status = %q, want %q", days[2].Status, StatusNoData)
	}
}

// TestWindow_WaterOnlyDayIsNoData verifies a day with water logged but no
// meals still reads as "No Data": water does not count as intake.
func TestWindow_WaterOnlyDayIsNoData(t *testing.T) {
	repo := newMemPlanRepository()
	svc := NewPlanService(repo)
	svc.SetWater(1, "2024-01-01", 2.0)

	progress := NewProgressService(repo)
	days, _ := progress.Window(1, []string{"2024-01-01"}, 2000)
	if days[0].Status != StatusNoData {
		t.Errorf("status = %q, want %q", days[0].Status, StatusNoData)
	}
}

// TestAverageProtein_IncludesZeroDays verifies empty days drag the mean
// down rather than being skipped.
func TestAverageProtein_IncludesZeroDays(t *testing.T) {
	days := []DayProgress{
		{Protein: 70},
		{}, {}, {}, {}, {}, {},
	}
	if got := AverageProtein(days); got != 10 {
		t.Errorf("AverageProtein = %v, want 10", got)
	}

	if got := AverageProtein(nil); got != 0 {
		t.Errorf("AverageProtein(nil) = %v, want 0", got)
	}
}

// TestTrailingDates verifies the window is n consecutive dates ending at the
// given day, oldest first.
func TestTrailingDates(t *testing.T) {
	end := time.Date(2024, 1, 7, 15, 30, 0, 0, time.UTC)
	dates := TrailingDates(end, 7)

	if len(dates) != 7 {
		t.Fatalf("got %d dates, want 7", len(dates))
	}
	if dates[0] != "2024-01-01" {
		t.Errorf("first date = %q, want 2024-01-01", dates[0])
	}
	if dates[6] != "2024-01-07" {
		t.Errorf("last date = %q, want 2024-01-07", dates[6])
	}
	for i := 1; i < len(dates); i++ {
		prev, _ := time.Parse("2006-01-02", dates[i-1])
		cur, _ := time.Parse("2006-01-02", dates[i])
		if cur.Sub(prev) != 24*time.Hour {
			t.Errorf("dates %q and %q are not consecutive", dates[i-1], dates[i])
		}
	}
}

// TestTrailingDates_MonthBoundary verifies AddDate handles month rollovers.
func TestTrailingDates_MonthBoundary(t *testing.T) {
	end := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	dates := TrailingDates(end, 7)

	if dates[0] != "2024-02-25" {
		t.Errorf("first date = %q, want 2024-02-25 (leap year February)", dates[0])
	}
}
