package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sis-eval/backend/internal/app/models"
	"github.com/sis-eval/backend/internal/app/repositories"
	"github.com/sis-eval/backend/internal/pkg/apperrors"
	"github.com/sis-eval/backend/internal/pkg/rating"
)

// ProfessorStore is the persistence surface the professor service needs
type ProfessorStore interface {
	List(ctx context.Context) ([]models.ProfessorSummary, error)
	Search(ctx context.Context, kind models.SearchKind, term string) ([]models.ProfessorSummary, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Professor, error)
	Create(ctx context.Context, professor *models.Professor) error
	Update(ctx context.Context, id uuid.UUID, update models.ProfessorUpdate) (*models.Professor, error)
	Delete(ctx context.Context, id uuid.UUID) error
	RecordEvaluation(ctx context.Context, id uuid.UUID, fn repositories.EvaluationFn) (*models.Professor, error)
}

// UserStore resolves evaluator references
type UserStore interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// CreateProfessorInput carries the descriptive fields of a new professor
type CreateProfessorInput struct {
	Name       string
	Image      *string
	Careers    []string
	Modalities []string
	Subjects   []string
}

// EvaluationInput carries a raw evaluation submission. Ids are unparsed and
// scores are nil when absent, so every precondition is checked here in order.
type EvaluationInput struct {
	ProfessorID   string
	EvaluatorID   string
	Experience    *float64
	Design        *float64
	Communication *float64
	Commitment    *float64
}

// ProfessorService defines the interface for professor operations
type ProfessorService interface {
	ListProfessors(ctx context.Context) ([]models.ProfessorSummary, error)
	SearchProfessors(ctx context.Context, kind, term string) ([]models.ProfessorSummary, error)
	GetProfessor(ctx context.Context, id string) (*models.Professor, error)
	CreateProfessor(ctx context.Context, input CreateProfessorInput) (*models.Professor, error)
	UpdateProfessor(ctx context.Context, id string, update models.ProfessorUpdate) (*models.Professor, error)
	DeleteProfessor(ctx context.Context, id string) error
	EvaluateProfessor(ctx context.Context, input EvaluationInput) (*models.Professor, error)
}

// professorServiceImpl implements ProfessorService
type professorServiceImpl struct {
	professors ProfessorStore
	users      UserStore
	logger     zerolog.Logger
	now        func() time.Time
}

// NewProfessorService creates a new professor service
func NewProfessorService(professors ProfessorStore, users UserStore, lgr zerolog.Logger) ProfessorService {
	return &professorServiceImpl{
		professors: professors,
		users:      users,
		logger:     lgr,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// ListProfessors returns all professors ordered by name
func (s *professorServiceImpl) ListProfessors(ctx context.Context) ([]models.ProfessorSummary, error) {
	return s.professors.List(ctx)
}

// SearchProfessors validates the search parameters and runs the search
func (s *professorServiceImpl) SearchProfessors(ctx context.Context, kind, term string) ([]models.ProfessorSummary, error) {
	kind = strings.TrimSpace(kind)
	term = strings.TrimSpace(term)
	if kind == "" || term == "" {
		return nil, apperrors.ErrMissingSearchParams
	}

	searchKind, ok := models.ParseSearchKind(kind)
	if !ok {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidSearchType,
			fmt.Sprintf("invalid search type %q, expected one of: nombre, materia, carrera", kind)).WithField("tipoBusqueda")
	}

	return s.professors.Search(ctx, searchKind, term)
}

// GetProfessor returns a professor with its evaluation history
func (s *professorServiceImpl) GetProfessor(ctx context.Context, id string) (*models.Professor, error) {
	professorID, err := parseID(id, "professor")
	if err != nil {
		return nil, err
	}

	return s.professors.GetByID(ctx, professorID)
}

// CreateProfessor stores a new professor with zeroed ratings
func (s *professorServiceImpl) CreateProfessor(ctx context.Context, input CreateProfessorInput) (*models.Professor, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.NewValidationError("nombre", "professor name is required")
	}

	professor := models.NewProfessor(input.Name, input.Image, input.Careers, input.Modalities, input.Subjects)
	if err := s.professors.Create(ctx, professor); err != nil {
		return nil, err
	}

	s.logger.Info().Str("professorId", professor.ID.String()).Str("name", professor.Name).Msg("Professor created")
	return professor, nil
}

// UpdateProfessor applies the present descriptive fields
func (s *professorServiceImpl) UpdateProfessor(ctx context.Context, id string, update models.ProfessorUpdate) (*models.Professor, error) {
	professorID, err := parseID(id, "professor")
	if err != nil {
		return nil, err
	}

	update = update.Normalize()
	if update.Name != nil && *update.Name == "" {
		return nil, apperrors.NewValidationError("nombre", "professor name cannot be empty")
	}

	professor, err := s.professors.Update(ctx, professorID, update)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("professorId", professorID.String()).Msg("Professor updated")
	return professor, nil
}

// DeleteProfessor removes a professor and its evaluation history
func (s *professorServiceImpl) DeleteProfessor(ctx context.Context, id string) error {
	professorID, err := parseID(id, "professor")
	if err != nil {
		return err
	}

	if err := s.professors.Delete(ctx, professorID); err != nil {
		return err
	}

	s.logger.Info().Str("professorId", professorID.String()).Msg("Professor deleted")
	return nil
}

// EvaluateProfessor records one evaluation and returns the updated professor.
// Checks run in a fixed order and the first failure wins: missing fields,
// professor id, evaluator id, then score range. Nothing is written on failure.
func (s *professorServiceImpl) EvaluateProfessor(ctx context.Context, input EvaluationInput) (*models.Professor, error) {
	scores, err := input.scores()
	if err != nil {
		return nil, err
	}

	professorID, err := parseID(input.ProfessorID, "professor")
	if err != nil {
		return nil, err
	}

	professor, err := s.professors.RecordEvaluation(ctx, professorID, func(ctx context.Context, _ *models.Professor) (models.Evaluation, error) {
		evaluatorID, err := parseID(input.EvaluatorID, "evaluator")
		if err != nil {
			return models.Evaluation{}, err
		}

		// ctx carries the professor's transaction, so the lookup shares its connection.
		exists, err := s.users.Exists(ctx, evaluatorID)
		if err != nil {
			return models.Evaluation{}, err
		}
		if !exists {
			return models.Evaluation{}, apperrors.ErrEvaluatorNotFound
		}

		if err := scores.Validate(); err != nil {
			return models.Evaluation{}, apperrors.NewCustomError(apperrors.ErrScoreOutOfRange, err.Error())
		}

		return models.Evaluation{
			EvaluatorID: evaluatorID,
			Criteria:    scores,
			CreatedAt:   s.now(),
		}, nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("professorId", professorID.String()).
		Str("evaluatorId", input.EvaluatorID).
		Float64("overallAverage", professor.OverallAverage).
		Int("evaluationCount", professor.EvaluationCount).
		Msg("Evaluation recorded")

	return professor, nil
}

// scores reports ErrMissingFields unless both ids and all four scores are
// present. A score of 0 is present.
func (in EvaluationInput) scores() (rating.Scores, error) {
	var missing []string
	if strings.TrimSpace(in.ProfessorID) == "" {
		missing = append(missing, "profId")
	}
	if strings.TrimSpace(in.EvaluatorID) == "" {
		missing = append(missing, "evaluadorId")
	}
	for _, f := range []struct {
		name  string
		value *float64
	}{
		{"experiencia", in.Experience},
		{"diseno", in.Design},
		{"comunicacion", in.Communication},
		{"compromiso", in.Commitment},
	} {
		if f.value == nil {
			missing = append(missing, f.name)
		}
	}

	if len(missing) > 0 {
		return rating.Scores{}, apperrors.NewCustomError(apperrors.ErrMissingFields,
			"missing required fields: "+strings.Join(missing, ", "))
	}

	return rating.Scores{
		Experience:    *in.Experience,
		Design:        *in.Design,
		Communication: *in.Communication,
		Commitment:    *in.Commitment,
	}, nil
}

func parseID(raw, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, apperrors.NewInvalidIDError(field)
	}
	return id, nil
}
