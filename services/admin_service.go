package services

import (
	"errors"
	"log"
	"os"

	"github.com/Massiue/HealthyMealPlanner/config"
	"github.com/Massiue/HealthyMealPlanner/models"
	"github.com/Massiue/HealthyMealPlanner/utils"

	"gorm.io/gorm"
)

var (
	ErrCannotDeleteSelf = errors.New("cannot delete self")
	ErrInvalidRole      = errors.New("invalid role")
)

// EnsureAdminAccount force-syncs the bootstrap admin from ADMIN_EMAIL and
// ADMIN_PASS at startup: created if absent, password and role reset if
// present. Skipped when the env vars are not set.
func EnsureAdminAccount() {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASS")
	if email == "" || password == "" {
		return
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		log.Printf("admin bootstrap: hashing failed: %v", err)
		return
	}

	var admin models.User
	err = config.DB.Where("email = ?", email).First(&admin).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		admin = models.User{
			Name:          "System Admin",
			Email:         email,
			Password:      hashed,
			Role:          models.RoleAdmin,
			Age:           30,
			Gender:        "male",
			WeightKg:      80,
			HeightCm:      180,
			ActivityLevel: "moderate",
			Goal:          GoalMaintain,
		}
		RecomputeTargets(&admin)
		if err := config.DB.Create(&admin).Error; err != nil {
			log.Printf("admin bootstrap: insert failed: %v", err)
		}
	case err != nil:
		log.Printf("admin bootstrap: lookup failed: %v", err)
	default:
		admin.Password = hashed
		admin.Role = models.RoleAdmin
		if err := config.DB.Save(&admin).Error; err != nil {
			log.Printf("admin bootstrap: update failed: %v", err)
		}
	}
}

// AdminUserRow is the slim user view the admin dashboard lists.
type AdminUserRow struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Role          string `json:"role"`
	Goal          string `json:"goal"`
	DailyCalories int    `json:"dailyCalories"`
}

func ListUsers() ([]AdminUserRow, error) {
	var users []models.User
	if err := config.DB.Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	rows := make([]AdminUserRow, 0, len(users))
	for _, u := range users {
		rows = append(rows, AdminUserRow{
			ID:            u.ID,
			Name:          u.Name,
			Email:         u.Email,
			Role:          u.Role,
			Goal:          u.Goal,
			DailyCalories: u.DailyCalories,
		})
	}
	return rows, nil
}

func SetUserRole(userID uint, role string) error {
	if role != models.RoleUser && role != models.RoleAdmin {
		return ErrInvalidRole
	}
	res := config.DB.Model(&models.User{}).Where("id = ?", userID).Update("role", role)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// DeleteUserByAdmin removes another user's account, cascading to its plans
// and weight history. An admin can never delete their own account this way.
func DeleteUserByAdmin(adminID, userID uint) error {
	if adminID == userID {
		return ErrCannotDeleteSelf
	}
	return DeleteUserAccount(userID)
}

// AdminStats is the dashboard summary.
type AdminStats struct {
	TotalUsers int64   `json:"totalUsers"`
	TotalPlans int64   `json:"totalPlans"`
	AvgWater   float64 `json:"avgWater"`
}

func GetAdminStats() (AdminStats, error) {
	var stats AdminStats
	if err := config.DB.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return stats, err
	}
	if err := config.DB.Model(&models.DailyPlan{}).Count(&stats.TotalPlans).Error; err != nil {
		return stats, err
	}
	// Average is over existing plan rows; zero when there are none.
	if stats.TotalPlans > 0 {
		err := config.DB.Model(&models.DailyPlan{}).
			Select("COALESCE(AVG(water_intake), 0)").
			Scan(&stats.AvgWater).Error
		if err != nil {
			return stats, err
		}
	}
	return stats, nil
}
