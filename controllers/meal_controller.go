package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/Massiue/HealthyMealPlanner/config"
	"github.com/Massiue/HealthyMealPlanner/services"
	"github.com/Massiue/HealthyMealPlanner/utils"

	"github.com/gin-gonic/gin"
)

func catalogService() *services.CatalogService {
	return services.NewCatalogService(config.DB)
}

// ListMeals returns the merged global meal list: persisted catalog first,
// then the surviving seed meals.
func ListMeals(c *gin.Context) {
	c.JSON(http.StatusOK, catalogService().ListEffective())
}

// ListSeedMealMeta exposes the seed overlay rows. The admin dashboard uses
// them to badge converted meals.
func ListSeedMealMeta(c *gin.Context) {
	rows, err := catalogService().SeedStatuses()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// resolveMealImage uploads a base64 data-URL image to S3 and swaps the
// payload for the stored URL. Plain URLs pass through untouched.
func resolveMealImage(in *services.MealInput) error {
	if !strings.HasPrefix(in.ImageURL, "data:") {
		return nil
	}
	url, err := utils.UploadBase64ImageToS3(in.ImageURL, "meals")
	if err != nil {
		return err
	}
	in.ImageURL = url
	return nil
}

func CreateMeal(c *gin.Context) {
	var input services.MealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := resolveMealImage(&input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	meal, err := catalogService().CreateMeal(input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "mealId": meal.ID, "meal": meal})
}

func mealID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return 0, false
	}
	return uint(id), true
}

func UpdateMeal(c *gin.Context) {
	id, ok := mealID(c)
	if !ok {
		return
	}

	var input services.MealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := resolveMealImage(&input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	meal, err := catalogService().UpdateMeal(id, input)
	if err != nil {
		if errors.Is(err, services.ErrMealNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "meal": meal})
}

func DeleteMeal(c *gin.Context) {
	id, ok := mealID(c)
	if !ok {
		return
	}

	if err := catalogService().DeleteMeal(id); err != nil {
		if errors.Is(err, services.ErrMealNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteSeedMeal flags a seed meal as deleted in the overlay; the merge step
// hides it from then on.
func DeleteSeedMeal(c *gin.Context) {
	var body struct {
		MockID string `json:"mockId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mockId required"})
		return
	}

	if err := catalogService().MarkSeedDeleted(body.MockID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ConvertSeedMeal records that a seed meal has been re-created as a
// persisted catalog meal, so the seed stand-in disappears from the merge.
func ConvertSeedMeal(c *gin.Context) {
	var body struct {
		MockID          string `json:"mockId" binding:"required"`
		ConvertedMealID uint   `json:"convertedMealId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mockId and convertedMealId required"})
		return
	}

	if err := catalogService().ConvertSeedMeal(body.MockID, body.ConvertedMealID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
