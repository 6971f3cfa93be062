package services

import (
	"fmt"
	"time"

	"github.com/Massiue/HealthyMealPlanner/models"
)

// Day status labels. Over/under days carry the delta, e.g. "Under by 1209".
const (
	StatusNoData  = "No Data"
	StatusPerfect = "Perfect"
)

// onTargetBand is the tolerance around the calorie target within which a
// logged day still counts as on target.
const onTargetBand = 100

// DayProgress is one date's totals and its standing against the calorie target.
type DayProgress struct {
	Date     string `json:"date"`
	Calories int    `json:"calories"`
	Protein  int    `json:"protein"`
	Status   string `json:"status"`
}

// ProgressService is a read-only projection over the daily plans.
type ProgressService struct {
	plans PlanRepository
}

func NewProgressService(plans PlanRepository) *ProgressService {
	return &ProgressService{plans: plans}
}

// TrailingDates returns the n calendar dates ending at end inclusive,
// oldest first.
func TrailingDates(end time.Time, n int) []string {
	dates := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		dates = append(dates, end.AddDate(0, 0, -i).Format("2006-01-02"))
	}
	return dates
}

// Window computes per-date calorie and protein totals over the given dates
// and classifies each against the calorie target. Dates with no stored plan
// count as zero. A day with zero logged calories is "No Data", never
// "Perfect": nothing logged is not the same as a goal met.
func (s *ProgressService) Window(userID uint, dates []string, calorieTarget int) ([]DayProgress, error) {
	plans, err := s.plans.ListByDates(userID, dates)
	if err != nil {
		return nil, err
	}
	byDate := make(map[string]*models.DailyPlan, len(plans))
	for i := range plans {
		byDate[plans[i].Date] = &plans[i]
	}

	out := make([]DayProgress, 0, len(dates))
	for _, date := range dates {
		var cals, protein int
		if p := byDate[date]; p != nil {
			cals = p.TotalCalories()
			protein = p.TotalProtein()
		}
		out = append(out, DayProgress{
			Date:     date,
			Calories: cals,
			Protein:  protein,
			Status:   DayStatus(cals, calorieTarget),
		})
	}
	return out, nil
}

// DayStatus classifies a day's logged calories against the target.
func DayStatus(calories, target int) string {
	if calories == 0 {
		return StatusNoData
	}
	diff := calories - target
	switch {
	case diff >= onTargetBand:
		return fmt.Sprintf("Over by %d", diff)
	case -diff >= onTargetBand:
		return fmt.Sprintf("Under by %d", -diff)
	default:
		return StatusPerfect
	}
}

// AverageProtein is the arithmetic mean of daily protein across the window.
// Zero days are included; empty days pull the average down on purpose, since
// it is meant to reflect real adherence.
func AverageProtein(days []DayProgress) float64 {
	if len(days) == 0 {
		return 0
	}
	total := 0
	for _, d := range days {
		total += d.Protein
	}
	return float64(total) / float64(len(days))
}
