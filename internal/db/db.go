package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var ErrInvalidArgument = errors.New("invalid argument")

type PostgresDB struct {
	db *gorm.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	return Open(postgres.Open(dsn))
}

// Open wraps an arbitrary gorm dialector. Every statement runs in its own
// implicit transaction; gorm's wrapping transaction is disabled.
func Open(dialector gorm.Dialector) (*PostgresDB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Warn),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresDB{
		db: db,
	}, nil
}

func (f *PostgresDB) MigrateTable(tbl ...any) error {
	err := f.db.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", describe(err))
	}

	return nil
}

// SaveIgnoringConflict inserts record and silently drops it when a row with
// the same conflictColumn value already exists.
func (f *PostgresDB) SaveIgnoringConflict(ctx context.Context, conflictColumn string, record any) error {
	if conflictColumn == "" {
		return fmt.Errorf("%w: conflict column cannot be empty", ErrInvalidArgument)
	}

	err := f.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: conflictColumn}},
			DoNothing: true,
		}).
		Create(record).Error
	if err != nil {
		return fmt.Errorf("insert to table: %w", describe(err))
	}

	return nil
}

// SumGroupedBy sums sumColumn per distinct groupColumn value and scans the
// largest limit totals into dest. dest rows expose the group value and a
// "total" column. Equal totals are ordered by the group value ascending.
func (f *PostgresDB) SumGroupedBy(ctx context.Context, model any, groupColumn, sumColumn string, limit int, dest any) error {
	if limit <= 0 {
		return fmt.Errorf("%w: limit must be positive, got %d", ErrInvalidArgument, limit)
	}

	err := f.db.WithContext(ctx).
		Model(model).
		Select(fmt.Sprintf("%s, SUM(%s) AS total", groupColumn, sumColumn)).
		Group(groupColumn).
		Order("total DESC").
		Order(groupColumn + " ASC").
		Limit(limit).
		Scan(dest).Error
	if err != nil {
		return fmt.Errorf("sum %q grouped by %q: %w", sumColumn, groupColumn, describe(err))
	}

	return nil
}

func (f *PostgresDB) Close() error {
	sqlDB, err := f.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}
	return sqlDB.Close()
}

// describe prefixes postgres server errors with their SQLSTATE so constraint
// and connectivity failures are distinguishable in logs.
func describe(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fmt.Errorf("sqlstate %s: %w", pgErr.Code, err)
	}
	return err
}
