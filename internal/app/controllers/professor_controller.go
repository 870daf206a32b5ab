package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sis-eval/backend/internal/app/models/dto"
	"github.com/sis-eval/backend/internal/app/services"
	"github.com/sis-eval/backend/internal/middleware"
	"github.com/sis-eval/backend/internal/pkg/apperrors"
)

// ProfessorController handles professor and evaluation endpoints
type ProfessorController struct {
	professorService services.ProfessorService
}

// NewProfessorController creates a new ProfessorController
func NewProfessorController(professorService services.ProfessorService) *ProfessorController {
	return &ProfessorController{
		professorService: professorService,
	}
}

// ListProfessors returns every professor ordered by name
// @Summary List professors
// @Description Returns all professors without their evaluation history, ordered by name
// @Tags professors
// @Produce json
// @Success 200 {array} models.ProfessorSummary "Professors"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /prof [get]
func (c *ProfessorController) ListProfessors(ctx *gin.Context) {
	professors, err := c.professorService.ListProfessors(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, professors)
}

// SearchProfessors finds professors by name, subject or career
// @Summary Search professors
// @Description Case-insensitive substring search, best rated first
// @Tags professors
// @Produce json
// @Param tipoBusqueda query string true "Field to search" Enums(nombre, materia, carrera)
// @Param terminoBusqueda query string true "Search term"
// @Success 200 {array} models.ProfessorSummary "Matching professors"
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid search parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /prof/buscar [get]
func (c *ProfessorController) SearchProfessors(ctx *gin.Context) {
	var query dto.SearchProfessorsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		middleware.RespondBindingError(ctx, err)
		return
	}

	professors, err := c.professorService.SearchProfessors(ctx.Request.Context(), query.Kind, query.Term)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, professors)
}

// GetProfessor returns one professor with its evaluation history
// @Summary Get professor by ID
// @Tags professors
// @Produce json
// @Param id path string true "Professor ID" Format(uuid)
// @Success 200 {object} models.Professor "Professor"
// @Failure 404 {object} dto.ErrorResponse "Professor not found"
// @Failure 406 {object} dto.ErrorResponse "Malformed professor ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /prof/{id} [get]
func (c *ProfessorController) GetProfessor(ctx *gin.Context) {
	professor, err := c.professorService.GetProfessor(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, professor)
}

// CreateProfessor creates a professor with zeroed ratings
// @Summary Create professor
// @Tags professors
// @Accept json
// @Produce json
// @Param request body dto.CreateProfessorRequest true "Professor information"
// @Success 201 {object} models.Professor "Professor created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /prof/nuevo [post]
func (c *ProfessorController) CreateProfessor(ctx *gin.Context) {
	var req dto.CreateProfessorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondBindingError(ctx, err)
		return
	}

	professor, err := c.professorService.CreateProfessor(ctx.Request.Context(), services.CreateProfessorInput{
		Name:       req.Name,
		Image:      req.Image,
		Careers:    req.Careers,
		Modalities: req.Modalities,
		Subjects:   req.Subjects,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, professor)
}

// EvaluateProfessor records one evaluation
// @Summary Evaluate professor
// @Description Appends an evaluation and recomputes the rounded averages atomically
// @Tags professors
// @Accept json
// @Produce json
// @Param request body dto.EvaluateProfessorRequest true "Evaluation"
// @Success 201 {object} dto.EvaluationResponse "Evaluation recorded"
// @Failure 400 {object} dto.ErrorResponse "Missing fields"
// @Failure 404 {object} dto.ErrorResponse "Professor or evaluator not found"
// @Failure 406 {object} dto.ErrorResponse "Malformed ID or score out of range"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /prof/evaluar [post]
func (c *ProfessorController) EvaluateProfessor(ctx *gin.Context) {
	var req dto.EvaluateProfessorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondBindingError(ctx, err)
		return
	}

	professor, err := c.professorService.EvaluateProfessor(ctx.Request.Context(), services.EvaluationInput{
		ProfessorID:   req.ProfessorID,
		EvaluatorID:   req.EvaluatorID,
		Experience:    req.Experience,
		Design:        req.Design,
		Communication: req.Communication,
		Commitment:    req.Commitment,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.EvaluationResponse{
		Message:   "Evaluation recorded successfully",
		Professor: professor,
	})
}

// UpdateProfessorFromBody updates a professor whose id travels in the body
// @Summary Update professor (id in body)
// @Description Only nombre, materias, carreras and modalidad are applied; ratings are ignored
// @Tags professors
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfessorRequest true "Fields to update, with id"
// @Success 200 {object} models.Professor "Professor updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Professor not found"
// @Failure 406 {object} dto.ErrorResponse "Malformed professor ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /prof/actualizar [post]
func (c *ProfessorController) UpdateProfessorFromBody(ctx *gin.Context) {
	var req dto.UpdateProfessorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondBindingError(ctx, err)
		return
	}

	if req.ID == "" {
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrMissingFields, "missing required fields: id").WithField("id"))
		return
	}

	c.update(ctx, req.ID, req)
}

// UpdateProfessor updates the professor identified in the path
// @Summary Update professor
// @Description Only nombre, materias, carreras and modalidad are applied; ratings are ignored
// @Tags professors
// @Accept json
// @Produce json
// @Param id path string true "Professor ID" Format(uuid)
// @Param request body dto.UpdateProfessorRequest true "Fields to update"
// @Success 200 {object} models.Professor "Professor updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Professor not found"
// @Failure 406 {object} dto.ErrorResponse "Malformed professor ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /prof/{id} [put]
func (c *ProfessorController) UpdateProfessor(ctx *gin.Context) {
	var req dto.UpdateProfessorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondBindingError(ctx, err)
		return
	}

	c.update(ctx, ctx.Param("id"), req)
}

func (c *ProfessorController) update(ctx *gin.Context, id string, req dto.UpdateProfessorRequest) {
	professor, err := c.professorService.UpdateProfessor(ctx.Request.Context(), id, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, professor)
}

// DeleteProfessor removes a professor and its evaluation history
// @Summary Delete professor
// @Tags professors
// @Produce json
// @Param id path string true "Professor ID" Format(uuid)
// @Success 200 {object} dto.DeleteResponse "Professor deleted"
// @Failure 404 {object} dto.ErrorResponse "Professor not found"
// @Failure 406 {object} dto.ErrorResponse "Malformed professor ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /prof/{id} [delete]
func (c *ProfessorController) DeleteProfessor(ctx *gin.Context) {
	if err := c.professorService.DeleteProfessor(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteResponse{
		Success: true,
		Message: "Professor deleted successfully",
	})
}
