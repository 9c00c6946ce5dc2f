package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the subset of pgx operations repositories run. Both
// *pgxpool.Pool and pgx.Tx satisfy it, so every repository method that takes
// a tx parameter can run standalone or inside a caller-owned transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// psql builds squirrel statements with Postgres placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repositories bundles all repository instances for dependency wiring.
type Repositories struct {
	OfferingRepository *OfferingRepository
	MeetingRepository  *MeetingRepository
	LedgerRepository   *LedgerRepository
	StudentRepository  *StudentRepository
	CatalogRepository  *CatalogRepository
}

// NewRepositories creates all repositories sharing one connection pool.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		OfferingRepository: NewOfferingRepository(db),
		MeetingRepository:  NewMeetingRepository(db),
		LedgerRepository:   NewLedgerRepository(db),
		StudentRepository:  NewStudentRepository(db),
		CatalogRepository:  NewCatalogRepository(db),
	}
}
