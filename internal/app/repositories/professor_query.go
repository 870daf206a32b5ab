package repositories

import (
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/sis-eval/backend/internal/app/models"
)

const professorsTable = "professors"

// summaryColumns is the projection used by list and search. It leaves out the
// evaluation history, which can grow without bound.
var summaryColumns = []string{
	"id",
	"name",
	"image",
	"careers",
	"modalities",
	"subjects",
	"avg_experience",
	"avg_design",
	"avg_communication",
	"avg_commitment",
	"overall_average",
	"evaluation_count",
}

// professorColumns is the full projection, history included.
var professorColumns = append(append([]string{}, summaryColumns...), "evaluations")

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes term match literally inside a LIKE pattern.
func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}

// containsPattern builds a case-insensitive substring pattern for ILIKE.
func containsPattern(term string) string {
	return "%" + escapeLike(strings.TrimSpace(term)) + "%"
}

// professorQueryBuilder builds the read queries over the professors table.
type professorQueryBuilder struct {
	sb squirrel.StatementBuilderType
}

func newProfessorQueryBuilder() professorQueryBuilder {
	return professorQueryBuilder{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// listAll selects every professor ordered by name using byte-wise comparison,
// so "Zoe" sorts before "ana".
func (b professorQueryBuilder) listAll() squirrel.SelectBuilder {
	return b.sb.Select(summaryColumns...).
		From(professorsTable).
		OrderBy(`name COLLATE "C" ASC`)
}

// search selects professors whose field of the given kind contains term.
// Results are ranked best-rated first; equal ratings fall back to name.
func (b professorQueryBuilder) search(kind models.SearchKind, term string) (squirrel.SelectBuilder, error) {
	pattern := containsPattern(term)

	var filter squirrel.Sqlizer
	switch kind {
	case models.SearchByName:
		filter = squirrel.ILike{"name": pattern}
	case models.SearchBySubject:
		filter = arrayContains("subjects", pattern)
	case models.SearchByCareer:
		filter = arrayContains("careers", pattern)
	default:
		return squirrel.SelectBuilder{}, fmt.Errorf("unsupported search kind %q", kind)
	}

	return b.sb.Select(summaryColumns...).
		From(professorsTable).
		Where(filter).
		OrderBy("overall_average DESC", `name COLLATE "C" ASC`), nil
}

// byID selects the full professor row.
func (b professorQueryBuilder) byID(id interface{}) squirrel.SelectBuilder {
	return b.sb.Select(professorColumns...).
		From(professorsTable).
		Where(squirrel.Eq{"id": id})
}

// arrayContains matches rows where any element of a text[] column matches pattern.
func arrayContains(column, pattern string) squirrel.Sqlizer {
	return squirrel.Expr(fmt.Sprintf("EXISTS (SELECT 1 FROM unnest(%s) AS v WHERE v ILIKE ?)", column), pattern)
}
