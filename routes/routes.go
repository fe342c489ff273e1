package routes

import (
	"github.com/gregorycarnegie/body-fat-calculator/controllers"
	"github.com/gregorycarnegie/body-fat-calculator/middlewares"
	"github.com/gregorycarnegie/body-fat-calculator/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, hub *services.RealtimeHub) *gin.Engine {
	r := gin.Default()

	svc := services.NewBodyFatService(db, hub)
	mc := controllers.NewMeasurementController(svc)
	rc := controllers.NewRealtimeController(hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/verify-mfa", controllers.VerifyMFA)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Protected routes
	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/profile", controllers.GetProfile)
		api.PUT("/profile", controllers.UpdateProfile)

		api.GET("/measurements", mc.GetMeasurements)
		api.PUT("/measurements", mc.UpdateMeasurement)
		api.DELETE("/measurements", mc.ResetMeasurements)
		api.POST("/calculate", mc.Calculate)

		api.GET("/ws/results", rc.ResultsWS)
	}

	return r
}
