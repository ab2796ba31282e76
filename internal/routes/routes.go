package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"medico-backend/internal/handlers"
	"medico-backend/internal/middleware"
)

// SetupRoutes wires every endpoint. The store handle is built once at startup
// and injected here; handlers never reach for package state.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	userHandler := handlers.NewUserHandler(db)
	hospitalHandler := handlers.NewHospitalHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	rdvHandler := handlers.NewAppointmentHandler(db)

	// Liveness
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "medico api"})
	})

	// Public: registration/login and the catalogue
	r.GET("/user", userHandler.Login)
	r.POST("/user", userHandler.Register)
	r.GET("/hopital", hospitalHandler.List)
	r.POST("/hopital", hospitalHandler.Create)
	r.GET("/service", serviceHandler.List)
	r.POST("/service", serviceHandler.Create)

	// Protected: appointments are bound to a logged-in user
	protected := r.Group("/")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/rdv", rdvHandler.List)
		protected.POST("/rdv", rdvHandler.Create)
	}
}
