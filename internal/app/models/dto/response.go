package dto

import (
	"time"

	"github.com/sis-eval/backend/internal/app/models"
)

// SuccessResponse represents a standard success response for API endpoints
type SuccessResponse struct {
	Message string `json:"message"`
}

// EvaluationResponse is returned after an evaluation has been recorded
type EvaluationResponse struct {
	Message   string            `json:"message" example:"Evaluation recorded successfully"`
	Professor *models.Professor `json:"profesor"`
}

// DeleteResponse is returned after a professor has been removed
type DeleteResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Professor deleted successfully"`
}

// HealthResponse reports liveness and database reachability
type HealthResponse struct {
	Status    string    `json:"status" example:"ok"`
	Database  string    `json:"database" example:"up"`
	Timestamp time.Time `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}
