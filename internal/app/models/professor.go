package models

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sis-eval/backend/internal/pkg/rating"
)

// ProfessorSummary is the projection returned by list and search: every
// professor field except the raw evaluation history.
type ProfessorSummary struct {
	ID                uuid.UUID     `json:"_id" db:"id" example:"5f1c7c1e-8d7a-4a43-9a4f-3c2b1f0e9d11"`  // Server-assigned professor id
	Name              string        `json:"nombre" db:"name" example:"Ana Torres"`                      // Display name
	Image             *string       `json:"img,omitempty" db:"image" example:"https://cdn.example/a.png"` // Optional picture URL
	Careers           []string      `json:"carreras" db:"careers"`                                      // Careers the professor teaches in
	Modalities        []string      `json:"modalidad" db:"modalities"`                                  // Teaching modalities (e.g. presencial, virtual)
	Subjects          []string      `json:"materias" db:"subjects"`                                     // Subjects taught
	CriterionAverages rating.Scores `json:"promedioCriterios"`                                          // Rounded running average per criterion
	OverallAverage    float64       `json:"promedioGral" db:"overall_average" example:"4.2"`            // Rounded mean of the criterion averages
	EvaluationCount   int           `json:"total_evaluaciones" db:"evaluation_count" example:"12"`      // Number of evaluations received
}

// Professor is the full aggregate: descriptive fields, derived ratings and the
// embedded, append-only evaluation history.
type Professor struct {
	ProfessorSummary
	Evaluations []Evaluation `json:"evaluaciones" db:"evaluations"`
}

// Evaluation is a single peer evaluation embedded in a professor.
type Evaluation struct {
	EvaluatorID uuid.UUID     `json:"evaluador" example:"0b6f7f5e-7d0a-4c55-8a8e-0c7a0f5b2e01"`
	Criteria    rating.Scores `json:"criterios"`
	CreatedAt   time.Time     `json:"createdAt" example:"2024-05-02T14:03:00Z"`
}

// NewProfessor builds a professor with zeroed ratings and no history.
func NewProfessor(name string, image *string, careers, modalities, subjects []string) *Professor {
	return &Professor{
		ProfessorSummary: ProfessorSummary{
			ID:         uuid.New(),
			Name:       strings.TrimSpace(name),
			Image:      image,
			Careers:    NormalizeList(careers),
			Modalities: NormalizeList(modalities),
			Subjects:   NormalizeList(subjects),
		},
		Evaluations: []Evaluation{},
	}
}

// Aggregate returns the professor's current rating state.
func (p *Professor) Aggregate() rating.Aggregate {
	return rating.Aggregate{
		Averages: p.CriterionAverages,
		Overall:  p.OverallAverage,
		Count:    p.EvaluationCount,
	}
}

// AddEvaluation folds e into the ratings and appends it to the history.
func (p *Professor) AddEvaluation(e Evaluation) {
	next := rating.Next(p.Aggregate(), e.Criteria)
	p.CriterionAverages = next.Averages
	p.OverallAverage = next.Overall
	p.EvaluationCount = next.Count
	p.Evaluations = append(p.Evaluations, e)
}

// ProfessorUpdate carries the descriptive fields an update may change. A nil
// field is left untouched. Ratings and history are deliberately absent.
type ProfessorUpdate struct {
	Name       *string
	Subjects   *[]string
	Careers    *[]string
	Modalities *[]string
}

// IsEmpty reports whether the update changes nothing.
func (u ProfessorUpdate) IsEmpty() bool {
	return u.Name == nil && u.Subjects == nil && u.Careers == nil && u.Modalities == nil
}

// Normalize trims the name and cleans the present lists.
func (u ProfessorUpdate) Normalize() ProfessorUpdate {
	if u.Name != nil {
		name := strings.TrimSpace(*u.Name)
		u.Name = &name
	}
	for _, list := range []**[]string{&u.Subjects, &u.Careers, &u.Modalities} {
		if *list != nil {
			cleaned := NormalizeList(**list)
			*list = &cleaned
		}
	}
	return u
}

// ApplyTo copies the present fields onto p.
func (u ProfessorUpdate) ApplyTo(p *Professor) {
	u = u.Normalize()
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Subjects != nil {
		p.Subjects = *u.Subjects
	}
	if u.Careers != nil {
		p.Careers = *u.Careers
	}
	if u.Modalities != nil {
		p.Modalities = *u.Modalities
	}
}

// NormalizeList trims entries, drops blanks and never returns nil, so lists
// serialize as [] rather than null.
func NormalizeList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
