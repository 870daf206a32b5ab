package db

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTx satisfies pgx.Tx; only its identity matters here.
type stubTx struct {
	pgx.Tx
}

func TestConnUsesPoolOutsideTransaction(t *testing.T) {
	database := &PostgresDB{}

	_, isPool := database.Conn(context.Background()).(*pgxpool.Pool)
	assert.True(t, isPool)
}

func TestConnUsesContextTransaction(t *testing.T) {
	database := &PostgresDB{}
	tx := &stubTx{}

	ctx := ContextWithTx(context.Background(), tx)

	got, ok := TxFromContext(ctx)
	require.True(t, ok)
	assert.Same(t, tx, got)
	assert.Same(t, tx, database.Conn(ctx))
}

func TestWithTransactionJoinsContextTransaction(t *testing.T) {
	// No pool: joining must not try to begin a new transaction.
	database := &PostgresDB{}
	tx := &stubTx{}

	var seen pgx.Tx
	err := database.WithTransaction(ContextWithTx(context.Background(), tx), func(ctx context.Context, inner pgx.Tx) error {
		seen = inner
		assert.Same(t, tx, database.Conn(ctx))
		return nil
	})

	require.NoError(t, err)
	assert.Same(t, tx, seen)
}
