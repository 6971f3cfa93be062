package routes

import (
	"github.com/Massiue/HealthyMealPlanner/controllers"
	"github.com/Massiue/HealthyMealPlanner/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Meal catalog; browsing needs no auth, matching the original behavior
	r.GET("/api/meals", controllers.ListMeals)
	r.GET("/api/mock-meals/meta", controllers.ListSeedMealMeta)

	// Protected user routes
	user := r.Group("/api/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.DELETE("/profile", controllers.DeleteAccount)
	}

	plans := r.Group("/api/plans")
	plans.Use(middlewares.AuthMiddleware())
	{
		plans.GET("/:date", controllers.GetPlan)
		plans.PUT("/:date/meal", controllers.AssignMeal)
		plans.DELETE("/:date/meal/:slot", controllers.RemoveMeal)
		plans.PUT("/:date/water", controllers.SetWater)
	}

	progress := r.Group("/api/progress")
	progress.Use(middlewares.AuthMiddleware())
	{
		progress.GET("/weekly", controllers.GetWeeklyProgress)
		progress.GET("/weight", controllers.GetWeightHistory)
		progress.POST("/weight", controllers.LogWeight)
	}

	// Admin routes
	admin := r.Group("/api/admin")
	admin.Use(middlewares.AuthMiddleware(), middlewares.AdminOnly())
	{
		admin.GET("/users", controllers.ListUsers)
		admin.POST("/users/role", controllers.SetUserRole)
		admin.DELETE("/users/:id", controllers.DeleteUser)
		admin.GET("/stats", controllers.GetAdminStats)

		admin.POST("/meals", controllers.CreateMeal)
		admin.PUT("/meals/:id", controllers.UpdateMeal)
		admin.DELETE("/meals/:id", controllers.DeleteMeal)
		admin.POST("/mock-meals/delete", controllers.DeleteSeedMeal)
		admin.POST("/mock-meals/convert", controllers.ConvertSeedMeal)
	}

	return r
}
