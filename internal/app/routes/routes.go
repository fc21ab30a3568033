package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/appdevg5/schedease/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	offeringController *controllers.OfferingController,
	scheduleController *controllers.ScheduleController,
	healthController *controllers.HealthController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Offering routes
	offerings := v1.Group("/offerings")
	{
		// The clear route must be registered before the parameterized
		// delete so gin does not treat "clear" as an offering ID.
		offerings.DELETE("/clear", offeringController.ClearUserOfferings)

		offerings.POST("", offeringController.CreateOffering)
		offerings.GET("", offeringController.GetAllOfferings)
		offerings.PUT("/:id", offeringController.UpdateOffering)
		offerings.DELETE("/:id", offeringController.DeleteOffering)
	}

	// Schedule routes
	schedules := v1.Group("/schedules")
	{
		schedules.POST("", scheduleController.CreateSchedule)
		schedules.GET("", scheduleController.GetAllSchedules)
		schedules.PUT("/:id", scheduleController.UpdateSchedule)
		schedules.DELETE("/:id", scheduleController.DeleteSchedule)
	}

	// Liveness probe
	router.GET("/health", healthController.Health)
}
