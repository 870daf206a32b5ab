package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sis-eval/backend/internal/app/models"
	"github.com/sis-eval/backend/internal/db"
	"github.com/sis-eval/backend/internal/pkg/apperrors"
	"github.com/sis-eval/backend/internal/pkg/dberrors"
)

// EvaluationFn validates an evaluation against the locked professor and
// returns the entry to append. Returning an error aborts the transaction.
type EvaluationFn func(ctx context.Context, professor *models.Professor) (models.Evaluation, error)

// ProfessorRepository handles professor database operations
type ProfessorRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
	qb professorQueryBuilder
}

// NewProfessorRepository creates a new ProfessorRepository
func NewProfessorRepository(database *db.PostgresDB) *ProfessorRepository {
	return &ProfessorRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		qb: newProfessorQueryBuilder(),
	}
}

// List returns every professor ordered by name
func (r *ProfessorRepository) List(ctx context.Context) ([]models.ProfessorSummary, error) {
	query, args, err := r.qb.listAll().ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list professors query: %w", err)
	}

	return r.querySummaries(ctx, query, args...)
}

// Search returns professors whose field of the given kind contains term
func (r *ProfessorRepository) Search(ctx context.Context, kind models.SearchKind, term string) ([]models.ProfessorSummary, error) {
	builder, err := r.qb.search(kind, term)
	if err != nil {
		return nil, err
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build search professors query: %w", err)
	}

	return r.querySummaries(ctx, query, args...)
}

// Count returns the number of stored professors
func (r *ProfessorRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.Conn(ctx).QueryRow(ctx, "SELECT COUNT(*) FROM professors").Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting professors: %w", err)
	}
	return count, nil
}

// GetByID retrieves a professor, evaluation history included
func (r *ProfessorRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Professor, error) {
	query, args, err := r.qb.byID(id).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get professor query: %w", err)
	}

	professor, err := scanProfessor(r.db.Conn(ctx).QueryRow(ctx, query, args...))
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrProfessorNotFound
		}
		return nil, fmt.Errorf("error retrieving professor: %w", err)
	}

	return professor, nil
}

// Create inserts a new professor with zeroed ratings and an empty history
func (r *ProfessorRepository) Create(ctx context.Context, professor *models.Professor) error {
	query, args, err := r.sb.Insert(professorsTable).
		Columns("id", "name", "image", "careers", "modalities", "subjects").
		Values(professor.ID, professor.Name, professor.Image, professor.Careers, professor.Modalities, professor.Subjects).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create professor query: %w", err)
	}

	if _, err := r.db.Conn(ctx).Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("error creating professor: %w", err)
	}

	return nil
}

// Update applies the present descriptive fields and returns the stored result.
// Ratings and history are never written here.
func (r *ProfessorRepository) Update(ctx context.Context, id uuid.UUID, update models.ProfessorUpdate) (*models.Professor, error) {
	if update.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	set := map[string]interface{}{
		"updated_at": squirrel.Expr("now()"),
	}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Subjects != nil {
		set["subjects"] = *update.Subjects
	}
	if update.Careers != nil {
		set["careers"] = *update.Careers
	}
	if update.Modalities != nil {
		set["modalities"] = *update.Modalities
	}

	query, args, err := r.sb.Update(professorsTable).
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(professorColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update professor query: %w", err)
	}

	professor, err := scanProfessor(r.db.Conn(ctx).QueryRow(ctx, query, args...))
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrProfessorNotFound
		}
		return nil, fmt.Errorf("error updating professor: %w", err)
	}

	return professor, nil
}

// Delete removes a professor together with its evaluation history
func (r *ProfessorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := r.sb.Delete(professorsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete professor query: %w", err)
	}

	cmdTag, err := r.db.Conn(ctx).Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error deleting professor: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProfessorNotFound
	}

	return nil
}

// RecordEvaluation locks the professor row, lets fn validate and build the new
// evaluation, folds it into the ratings and persists ratings and history in a
// single statement. Concurrent evaluations of one professor serialize on the
// row lock.
func (r *ProfessorRepository) RecordEvaluation(ctx context.Context, id uuid.UUID, fn EvaluationFn) (*models.Professor, error) {
	var result *models.Professor

	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		query, args, err := r.qb.byID(id).Suffix("FOR UPDATE").ToSql()
		if err != nil {
			return fmt.Errorf("failed to build lock professor query: %w", err)
		}

		professor, err := scanProfessor(tx.QueryRow(ctx, query, args...))
		if err != nil {
			if dberrors.IsNoRows(err) {
				return apperrors.ErrProfessorNotFound
			}
			return fmt.Errorf("error locking professor: %w", err)
		}

		evaluation, err := fn(ctx, professor)
		if err != nil {
			return err
		}

		professor.AddEvaluation(evaluation)

		appended, err := json.Marshal([]models.Evaluation{evaluation})
		if err != nil {
			return fmt.Errorf("failed to encode evaluation: %w", err)
		}

		query, args, err = r.sb.Update(professorsTable).
			Set("avg_experience", professor.CriterionAverages.Experience).
			Set("avg_design", professor.CriterionAverages.Design).
			Set("avg_communication", professor.CriterionAverages.Communication).
			Set("avg_commitment", professor.CriterionAverages.Commitment).
			Set("overall_average", professor.OverallAverage).
			Set("evaluation_count", professor.EvaluationCount).
			Set("evaluations", squirrel.Expr("evaluations || ?::jsonb", string(appended))).
			Set("updated_at", squirrel.Expr("now()")).
			Where(squirrel.Eq{"id": id}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build record evaluation query: %w", err)
		}

		if _, err := tx.Exec(ctx, query, args...); err != nil {
			if dberrors.IsCheckViolation(err) {
				return fmt.Errorf("evaluation would break professor rating invariants: %w", err)
			}
			return fmt.Errorf("error recording evaluation: %w", err)
		}

		result = professor
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *ProfessorRepository) querySummaries(ctx context.Context, query string, args ...interface{}) ([]models.ProfessorSummary, error) {
	rows, err := r.db.Conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying professors: %w", err)
	}
	defer rows.Close()

	professors := make([]models.ProfessorSummary, 0)
	for rows.Next() {
		var p models.ProfessorSummary
		if err := rows.Scan(summaryTargets(&p)...); err != nil {
			return nil, fmt.Errorf("error scanning professor: %w", err)
		}
		normalizeSummary(&p)
		professors = append(professors, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating professors: %w", err)
	}

	return professors, nil
}

// summaryTargets returns scan destinations in summaryColumns order.
func summaryTargets(p *models.ProfessorSummary) []interface{} {
	return []interface{}{
		&p.ID,
		&p.Name,
		&p.Image,
		&p.Careers,
		&p.Modalities,
		&p.Subjects,
		&p.CriterionAverages.Experience,
		&p.CriterionAverages.Design,
		&p.CriterionAverages.Communication,
		&p.CriterionAverages.Commitment,
		&p.OverallAverage,
		&p.EvaluationCount,
	}
}

func scanProfessor(row pgx.Row) (*models.Professor, error) {
	var p models.Professor
	targets := append(summaryTargets(&p.ProfessorSummary), &p.Evaluations)
	if err := row.Scan(targets...); err != nil {
		return nil, err
	}

	normalizeSummary(&p.ProfessorSummary)
	if p.Evaluations == nil {
		p.Evaluations = []models.Evaluation{}
	}

	return &p, nil
}

// normalizeSummary keeps list fields non-nil so they encode as [].
func normalizeSummary(p *models.ProfessorSummary) {
	if p.Careers == nil {
		p.Careers = []string{}
	}
	if p.Modalities == nil {
		p.Modalities = []string{}
	}
	if p.Subjects == nil {
		p.Subjects = []string{}
	}
}
