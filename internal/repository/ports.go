package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(tbl ...any) error
	SaveIgnoringConflict(ctx context.Context, conflictColumn string, record any) error
	SumGroupedBy(ctx context.Context, model any, groupColumn, sumColumn string, limit int, dest any) error
}
