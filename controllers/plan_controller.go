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

func planService() *services.PlanService {
	return services.NewPlanService(services.NewGormPlanRepository(config.DB))
}

// planDate validates the :date path param. Responds 400 and returns "" when
// it is not a YYYY-MM-DD calendar date.
func planDate(c *gin.Context) string {
	date := c.Param("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return ""
	}
	return date
}

func GetPlan(c *gin.Context) {
	userID := c.GetUint("userID")
	date := planDate(c)
	if date == "" {
		return
	}

	plan, err := planService().GetPlan(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, plan)
}

func AssignMeal(c *gin.Context) {
	userID := c.GetUint("userID")
	date := planDate(c)
	if date == "" {
		return
	}

	var meal models.Meal
	if err := c.ShouldBindJSON(&meal); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidMealType(meal.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mealType must be Breakfast, Lunch or Dinner"})
		return
	}

	plan, err := planService().AssignMeal(userID, date, meal)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, plan)
}

func RemoveMeal(c *gin.Context) {
	userID := c.GetUint("userID")
	date := planDate(c)
	if date == "" {
		return
	}

	slot := models.MealType(c.Param("slot"))
	if !models.ValidMealType(slot) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "slot must be Breakfast, Lunch or Dinner"})
		return
	}

	plan, err := planService().RemoveMeal(userID, date, slot)
	if err != nil {
		if errors.Is(err, services.ErrUnknownSlot) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, plan)
}

func SetWater(c *gin.Context) {
	userID := c.GetUint("userID")
	date := planDate(c)
	if date == "" {
		return
	}

	var body struct {
		Amount float64 `json:"amount"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := planService().SetWater(userID, date, body.Amount)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, plan)
}
