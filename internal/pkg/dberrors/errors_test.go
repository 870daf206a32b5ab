package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsNoRows(t *testing.T) {
	assert.True(t, IsNoRows(pgx.ErrNoRows))
	assert.True(t, IsNoRows(fmt.Errorf("scan: %w", pgx.ErrNoRows)))
	assert.False(t, IsNoRows(errors.New("boom")))
}

func TestPgErrorClassification(t *testing.T) {
	check := fmt.Errorf("update: %w", &pgconn.PgError{Code: "23514", ConstraintName: "professors_evaluation_count_check"})
	badText := &pgconn.PgError{Code: "22P02"}
	duplicate := &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"}

	assert.True(t, IsCheckViolation(check))
	assert.False(t, IsCheckViolation(badText))

	assert.True(t, IsInvalidTextRepresentation(badText))
	assert.False(t, IsInvalidTextRepresentation(check))

	assert.True(t, IsDuplicateConstraintError(duplicate, "users_username_key"))
	assert.False(t, IsDuplicateConstraintError(duplicate, "users_email_key"))
	assert.False(t, IsDuplicateConstraintError(errors.New("plain"), "users_username_key"))
}
