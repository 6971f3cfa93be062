package services

import (
	"errors"

	"github.com/Massiue/HealthyMealPlanner/models"

	"gorm.io/gorm"
)

// ErrUnknownSlot is returned when an operation names a slot outside
// breakfast/lunch/dinner.
var ErrUnknownSlot = errors.New("unknown meal slot")

// PlanRepository abstracts daily-plan storage so the aggregation logic does
// not care whether plans live in Postgres or in memory. Put is a single
// atomic upsert keyed (user, date); a plan is never half-written.
type PlanRepository interface {
	// Get returns the stored plan, or (nil, nil) when none exists for the date.
	Get(userID uint, date string) (*models.DailyPlan, error)
	Put(plan *models.DailyPlan) error
	ListByDates(userID uint, dates []string) ([]models.DailyPlan, error)
	DeleteByUser(userID uint) error
}

type gormPlanRepository struct {
	db *gorm.DB
}

// NewGormPlanRepository returns the Postgres-backed plan store.
func NewGormPlanRepository(db *gorm.DB) PlanRepository {
	return &gormPlanRepository{db: db}
}

func (r *gormPlanRepository) Get(userID uint, date string) (*models.DailyPlan, error) {
	var plan models.DailyPlan
	err := r.db.Where("user_id = ? AND date = ?", userID, date).First(&plan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *gormPlanRepository) Put(plan *models.DailyPlan) error {
	return r.db.Save(plan).Error
}

func (r *gormPlanRepository) ListByDates(userID uint, dates []string) ([]models.DailyPlan, error) {
	var plans []models.DailyPlan
	err := r.db.Where("user_id = ? AND date IN ?", userID, dates).Find(&plans).Error
	return plans, err
}

func (r *gormPlanRepository) DeleteByUser(userID uint) error {
	return r.db.Unscoped().Where("user_id = ?", userID).Delete(&models.DailyPlan{}).Error
}

// PlanService is the per-user, per-date daily plan aggregate. Plans are
// created lazily on first mutation and never explicitly deleted. Concurrent
// writers to the same (user, date) race last-write-wins; acceptable for one
// person editing their own day, and a known limitation.
type PlanService struct {
	repo PlanRepository
}

func NewPlanService(repo PlanRepository) *PlanService {
	return &PlanService{repo: repo}
}

// GetPlan never reports "missing": a date with no stored plan comes back as
// an empty plan for that date with zero water and no slots.
func (s *PlanService) GetPlan(userID uint, date string) (*models.DailyPlan, error) {
	plan, err := s.repo.Get(userID, date)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return &models.DailyPlan{UserID: userID, Date: date}, nil
	}
	return plan, nil
}

// AssignMeal writes a snapshot copy of meal into the slot named by its meal
// type, creating the day's plan if this is its first mutation. Assigning
// over a filled slot replaces it.
func (s *PlanService) AssignMeal(userID uint, date string, meal models.Meal) (*models.DailyPlan, error) {
	plan, err := s.GetPlan(userID, date)
	if err != nil {
		return nil, err
	}
	slot := plan.Slot(meal.Type)
	if slot == nil {
		return nil, ErrUnknownSlot
	}

	snapshot := meal
	*slot = &snapshot
	if err := s.repo.Put(plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// RemoveMeal clears the named slot, leaving the other slots and water
// untouched. Clearing an already-empty slot is a no-op, not an error.
func (s *PlanService) RemoveMeal(userID uint, date string, slotType models.MealType) (*models.DailyPlan, error) {
	plan, err := s.GetPlan(userID, date)
	if err != nil {
		return nil, err
	}
	slot := plan.Slot(slotType)
	if slot == nil {
		return nil, ErrUnknownSlot
	}
	if *slot == nil {
		return plan, nil
	}

	*slot = nil
	if err := s.repo.Put(plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// SetWater replaces the date's water intake with max(0, amount). Negative
// requests are clamped, never rejected.
func (s *PlanService) SetWater(userID uint, date string, amount float64) (*models.DailyPlan, error) {
	plan, err := s.GetPlan(userID, date)
	if err != nil {
		return nil, err
	}
	if amount < 0 {
		amount = 0
	}
	plan.WaterIntake = amount
	if err := s.repo.Put(plan); err != nil {
		return nil, err
	}
	return plan, nil
}
