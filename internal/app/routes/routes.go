package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sis-eval/backend/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	professorController *controllers.ProfessorController,
	healthController *controllers.HealthController,
) {
	api := router.Group("/api")

	api.GET("/health", healthController.Health)

	// Professor routes. Static segments share the prefix with /:id.
	professors := api.Group("/prof")
	{
		professors.GET("", professorController.ListProfessors)
		professors.GET("/buscar", professorController.SearchProfessors)
		professors.POST("/nuevo", professorController.CreateProfessor)
		professors.POST("/evaluar", professorController.EvaluateProfessor)
		professors.POST("/actualizar", professorController.UpdateProfessorFromBody)
		professors.GET("/:id", professorController.GetProfessor)
		professors.PUT("/:id", professorController.UpdateProfessor)
		professors.DELETE("/:id", professorController.DeleteProfessor)
	}
}
