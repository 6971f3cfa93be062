package services

import (
	"errors"

	"github.com/Massiue/HealthyMealPlanner/config"
	"github.com/Massiue/HealthyMealPlanner/models"
	"github.com/Massiue/HealthyMealPlanner/utils"

	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

// ProfileInput carries the editable profile fields. Zero values mean
// "leave unchanged", matching how the clients send partial updates.
type ProfileInput struct {
	Name          string  `json:"name"`
	Age           int     `json:"age"`
	Gender        string  `json:"gender"`
	HeightCm      float64 `json:"height"`
	WeightKg      float64 `json:"weight"`
	ActivityLevel string  `json:"activityLevel"`
	Goal          string  `json:"goal"`
}

func GetUserProfile(userID uint) (map[string]interface{}, error) {
	var user models.User
	err := config.DB.
		Preload("WeightHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("date DESC")
		}).
		First(&user, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	breakfast, lunch, dinner := CalorieDistribution(user.DailyCalories)

	profile := map[string]interface{}{
		"id":            user.ID,
		"name":          user.Name,
		"email":         user.Email,
		"role":          user.Role,
		"age":           user.Age,
		"gender":        user.Gender,
		"height":        user.HeightCm,
		"weight":        user.WeightKg,
		"activityLevel": user.ActivityLevel,
		"goal":          user.Goal,
		"dailyCalories": user.DailyCalories,
		"dailyProtein":  user.DailyProtein,
		"dailyWater":    user.DailyWater,
		"calorieSplit": map[string]int{
			"breakfast": breakfast,
			"lunch":     lunch,
			"dinner":    dinner,
		},
		"weightHistory": user.WeightHistory,
	}

	if bmi, err := utils.CalculateBMI(user.HeightCm, user.WeightKg); err == nil {
		profile["bmi"] = bmi
		profile["bmiCategory"] = utils.BMICategory(bmi)
	}

	return profile, nil
}

// UpdateUserProfile applies the provided fields and recomputes all three
// derived targets together, so a metric change can never leave a stale
// calorie, protein or water target behind.
func UpdateUserProfile(userID uint, input ProfileInput) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Age > 0 {
		user.Age = input.Age
	}
	if input.Gender != "" {
		user.Gender = input.Gender
	}
	if input.HeightCm > 0 {
		user.HeightCm = input.HeightCm
	}
	if input.WeightKg > 0 {
		user.WeightKg = input.WeightKg
	}
	if _, ok := ActivityMultipliers[input.ActivityLevel]; ok {
		user.ActivityLevel = input.ActivityLevel
	}
	if input.Goal != "" {
		user.Goal = input.Goal
	}

	RecomputeTargets(&user)

	if err := config.DB.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUserAccount removes the user together with everything it owns:
// daily plans and weight history.
func DeleteUserAccount(userID uint) error {
	return config.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		if err := tx.Unscoped().Where("user_id = ?", userID).Delete(&models.DailyPlan{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("user_id = ?", userID).Delete(&models.WeightEntry{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&user).Error
	})
}
