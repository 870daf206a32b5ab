package seed

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	appModels "github.com/sis-eval/backend/internal/app/models"
	"github.com/sis-eval/backend/internal/config"
	"github.com/sis-eval/backend/internal/pkg/apperrors"
)

// UserStore is what the seeder needs to ensure the default evaluator
type UserStore interface {
	Create(ctx context.Context, user *appModels.User) error
	GetByUsername(ctx context.Context, username string) (*appModels.User, error)
}

// ProfessorStore is what the seeder needs to add sample professors
type ProfessorStore interface {
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, professor *appModels.Professor) error
}

// sampleProfessors are inserted into an empty table when enabled
var sampleProfessors = []struct {
	name       string
	careers    []string
	modalities []string
	subjects   []string
}{
	{"Laura Gomez", []string{"Ingenieria en Sistemas"}, []string{"presencial"}, []string{"Algoritmos", "Estructuras de Datos"}},
	{"Martin Diaz", []string{"Ingenieria en Sistemas", "Licenciatura en Informatica"}, []string{"virtual"}, []string{"Bases de Datos"}},
	{"Sofia Rojas", []string{"Diseno Grafico"}, []string{"presencial", "virtual"}, []string{"Tipografia", "Diseno Editorial"}},
}

// CreateDefaultData ensures the default evaluator exists and, when enabled,
// fills an empty professors table with sample records. Every step is
// idempotent; errors are collected and returned so the caller can log them
// without aborting startup.
func CreateDefaultData(ctx context.Context, cfg *config.Config, users UserStore, professors ProfessorStore, lgr zerolog.Logger) error {
	if !cfg.Seed.Enabled {
		lgr.Info().Msg("Seeding disabled, skipping default data")
		return nil
	}

	lgr.Info().Msg("Checking/Creating default data (evaluator/professors)...")
	var finalErr error

	evaluator := &appModels.User{
		ID:       uuid.New(),
		Username: cfg.Seed.EvaluatorName,
		Email:    cfg.Seed.EvaluatorEmail,
		IsActive: true,
	}
	err := users.Create(ctx, evaluator)
	switch {
	case err == nil:
		lgr.Info().Str("userId", evaluator.ID.String()).Str("username", evaluator.Username).Msg("Default evaluator created")
	case errors.Is(err, apperrors.ErrUserAlreadyExists):
		existing, errGet := users.GetByUsername(ctx, evaluator.Username)
		if errGet != nil {
			lgr.Error().Err(errGet).Msg("Error loading existing default evaluator")
			finalErr = errors.Join(finalErr, errGet)
		} else {
			lgr.Info().Str("userId", existing.ID.String()).Str("username", existing.Username).Msg("Default evaluator already exists")
		}
	default:
		lgr.Error().Err(err).Msg("Error creating default evaluator")
		finalErr = errors.Join(finalErr, err)
	}

	if !cfg.Seed.SampleProfessors {
		return finalErr
	}

	count, err := professors.Count(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error counting professors")
		return errors.Join(finalErr, err)
	}
	if count > 0 {
		lgr.Info().Int("professors", count).Msg("Professors already present, skipping samples")
		return finalErr
	}

	for _, sample := range sampleProfessors {
		professor := appModels.NewProfessor(sample.name, nil, sample.careers, sample.modalities, sample.subjects)
		if err := professors.Create(ctx, professor); err != nil {
			lgr.Error().Err(err).Str("name", sample.name).Msg("Error creating sample professor")
			finalErr = errors.Join(finalErr, err)
		}
	}

	lgr.Info().Int("professors", len(sampleProfessors)).Msg("Sample professors created")
	return finalErr
}
