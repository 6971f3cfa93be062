package services

import (
	"errors"
	"time"

	"github.com/Massiue/HealthyMealPlanner/config"
	"github.com/Massiue/HealthyMealPlanner/models"

	"gorm.io/gorm"
)

type WeightService struct {
	db *gorm.DB
}

func NewWeightService(db *gorm.DB) *WeightService {
	return &WeightService{db: db}
}

// LogWeight records weightKg against today's date (server-local calendar)
// and recomputes the user's derived targets in the same transaction, since
// weight feeds all three. Logging twice on the same day replaces that day's
// entry instead of appending a second one.
func LogWeight(userID uint, weightKg float64) ([]models.WeightEntry, Targets, error) {
	return NewWeightService(config.DB).Log(userID, weightKg)
}

func (s *WeightService) Log(userID uint, weightKg float64) ([]models.WeightEntry, Targets, error) {
	today := time.Now().Format("2006-01-02")

	var targets Targets
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		var entry models.WeightEntry
		err := tx.Where("user_id = ? AND date = ?", userID, today).First(&entry).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			entry = models.WeightEntry{UserID: userID, Date: today, WeightKg: weightKg}
			if err := tx.Create(&entry).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			entry.WeightKg = weightKg
			if err := tx.Save(&entry).Error; err != nil {
				return err
			}
		}

		user.WeightKg = weightKg
		RecomputeTargets(&user)
		targets = Targets{
			Calories:     user.DailyCalories,
			ProteinGrams: user.DailyProtein,
			WaterLiters:  user.DailyWater,
		}
		return tx.Save(&user).Error
	})
	if err != nil {
		return nil, Targets{}, err
	}

	history, err := s.History(userID)
	if err != nil {
		return nil, Targets{}, err
	}
	return history, targets, nil
}

// History returns the user's weight entries, newest first.
func (s *WeightService) History(userID uint) ([]models.WeightEntry, error) {
	var entries []models.WeightEntry
	err := s.db.Where("user_id = ?", userID).Order("date DESC").Find(&entries).Error
	return entries, err
}
