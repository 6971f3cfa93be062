package main

import (
	"os"

	"github.com/Massiue/HealthyMealPlanner/config"
	"github.com/Massiue/HealthyMealPlanner/routes"
	"github.com/Massiue/HealthyMealPlanner/services"
	"github.com/Massiue/HealthyMealPlanner/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	services.EnsureAdminAccount()

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	r := routes.SetupRouter()
	r.Run(":" + port)
}
