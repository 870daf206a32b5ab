package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
)

//go:embed sql/*.sql
var embeddedMigrations embed.FS

// Migrator manages database migrations
type Migrator struct {
	db     *pgxpool.Pool
	fsys   fs.FS
	logger zerolog.Logger
}

// NewMigrator creates a new migrator over the SQL files bundled with the binary
func NewMigrator(db *pgxpool.Pool, lgr zerolog.Logger) (*Migrator, error) {
	fsys, err := fs.Sub(embeddedMigrations, "sql")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	return &Migrator{
		db:     db,
		fsys:   fsys,
		logger: lgr,
	}, nil
}

// Up applies every pending migration in version order
func (m *Migrator) Up(ctx context.Context) error {
	sqlDB := stdlib.OpenDBFromPool(m.db)
	defer sqlDB.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, sqlDB, m.fsys)
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	if len(results) == 0 {
		m.logger.Info().Msg("Database schema is up to date")
		return nil
	}

	for _, r := range results {
		m.logger.Info().
			Int64("version", r.Source.Version).
			Str("file", r.Source.Path).
			Dur("duration", r.Duration).
			Msg("Migration applied")
	}

	return nil
}
