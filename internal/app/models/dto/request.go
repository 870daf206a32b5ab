package dto

import "github.com/sis-eval/backend/internal/app/models"

// CreateProfessorRequest represents the body of a professor creation
type CreateProfessorRequest struct {
	Name       string   `json:"nombre" binding:"required,max=200" example:"Ana Torres"`
	Image      *string  `json:"img" binding:"omitempty,max=2048" example:"https://cdn.example/a.png"`
	Subjects   []string `json:"materias" binding:"omitempty,dive,max=200" example:"Algebra"`
	Careers    []string `json:"carreras" binding:"omitempty,dive,max=200" example:"Ingenieria"`
	Modalities []string `json:"modalidad" binding:"omitempty,dive,max=50" example:"presencial"`
}

// UpdateProfessorRequest represents a partial update. Absent fields are left
// unchanged; rating fields are not part of the contract and are ignored.
type UpdateProfessorRequest struct {
	ID         string    `json:"id,omitempty" example:"5f1c7c1e-8d7a-4a43-9a4f-3c2b1f0e9d11"`
	Name       *string   `json:"nombre" binding:"omitempty,max=200" example:"Ana Torres"`
	Subjects   *[]string `json:"materias" binding:"omitempty,dive,max=200"`
	Careers    *[]string `json:"carreras" binding:"omitempty,dive,max=200"`
	Modalities *[]string `json:"modalidad" binding:"omitempty,dive,max=50"`
}

// ToModel converts the request into a model update
func (r UpdateProfessorRequest) ToModel() models.ProfessorUpdate {
	return models.ProfessorUpdate{
		Name:       r.Name,
		Subjects:   r.Subjects,
		Careers:    r.Careers,
		Modalities: r.Modalities,
	}
}

// EvaluateProfessorRequest represents a single evaluation submission. Scores
// are pointers so that an explicit 0 is distinguishable from a missing field.
type EvaluateProfessorRequest struct {
	ProfessorID   string   `json:"profId" example:"5f1c7c1e-8d7a-4a43-9a4f-3c2b1f0e9d11"`
	EvaluatorID   string   `json:"evaluadorId" example:"0b6f7f5e-7d0a-4c55-8a8e-0c7a0f5b2e01"`
	Experience    *float64 `json:"experiencia" example:"4"`
	Design        *float64 `json:"diseno" example:"3.5"`
	Communication *float64 `json:"comunicacion" example:"5"`
	Commitment    *float64 `json:"compromiso" example:"4"`
}

// SearchProfessorsQuery holds the search query string parameters
type SearchProfessorsQuery struct {
	Kind string `form:"tipoBusqueda" example:"materia"`
	Term string `form:"terminoBusqueda" example:"algebra"`
}
