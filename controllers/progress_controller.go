package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Massiue/HealthyMealPlanner/config"
	"github.com/Massiue/HealthyMealPlanner/models"
	"github.com/Massiue/HealthyMealPlanner/services"

	"github.com/gin-gonic/gin"
)

// GetWeeklyProgress reports the trailing 7 days (including today): per-date
// calorie/protein totals, standing against the user's calorie target, and
// the window's average protein.
func GetWeeklyProgress(c *gin.Context) {
	userID := c.GetUint("userID")

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	dates := services.TrailingDates(time.Now(), 7)
	progress := services.NewProgressService(services.NewGormPlanRepository(config.DB))

	days, err := progress.Window(userID, dates, user.DailyCalories)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"days":          days,
		"avgProtein":    services.AverageProtein(days),
		"calorieTarget": user.DailyCalories,
	})
}

// LogWeight stores today's body weight and returns the refreshed history and
// the recomputed daily targets.
func LogWeight(c *gin.Context) {
	userID := c.GetUint("userID")

	var body struct {
		Weight float64 `json:"weight" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "weight required"})
		return
	}

	history, targets, err := services.LogWeight(userID, body.Weight)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"weightHistory": history,
		"targets":       targets,
	})
}

// GetWeightHistory returns the user's weight entries, newest first.
func GetWeightHistory(c *gin.Context) {
	userID := c.GetUint("userID")

	history, err := services.NewWeightService(config.DB).History(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, history)
}
