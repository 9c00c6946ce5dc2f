package services

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/emreo/scholaris/internal/app/models"
	"github.com/emreo/scholaris/internal/app/models/dto"
)

// Store interfaces mirror the repository layer. Services depend on these
// rather than the concrete repositories so the transactional workflows can
// be exercised with in-memory fakes. Methods taking a pgx.Tx run on that
// transaction; a nil tx falls back to the pool.

// OfferingStore persists offerings and allocates code sequences.
type OfferingStore interface {
	NextCodeSequence(ctx context.Context, tx pgx.Tx, courseID int64, term models.Term) (int, error)
	Create(ctx context.Context, tx pgx.Tx, offering *models.Offering) error
	GetByID(ctx context.Context, id int64) (*models.Offering, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*models.Offering, error)
	ListByTerm(ctx context.Context, term *models.Term) ([]*models.Offering, error)
	Update(ctx context.Context, tx pgx.Tx, offering *models.Offering) error
	UpdateStatus(ctx context.Context, id int64, status models.OfferingStatus) error
	Delete(ctx context.Context, tx pgx.Tx, id int64) error
}

// MeetingStore persists meetings and feeds conflict scans.
type MeetingStore interface {
	GetByOffering(ctx context.Context, offeringID int64) ([]*models.Meeting, error)
	FindCandidateConflicts(ctx context.Context, tx pgx.Tx, teacherID int64, rooms []string, term models.Term, crossTerm bool, excludeOfferingID int64) ([]*models.ScheduledMeeting, error)
	ReplaceForOffering(ctx context.Context, tx pgx.Tx, offeringID int64, meetings []*models.Meeting) error
	DeleteForOffering(ctx context.Context, tx pgx.Tx, offeringID int64) error
}

// LedgerStore persists grade ledger rows.
type LedgerStore interface {
	CreateRows(ctx context.Context, tx pgx.Tx, offeringID int64, studentIDs []int64) (int, error)
	DeleteRows(ctx context.Context, tx pgx.Tx, offeringID int64, studentIDs []int64) (int, error)
	DeleteForOffering(ctx context.Context, tx pgx.Tx, offeringID int64) error
	GetByOffering(ctx context.Context, offeringID int64) ([]*models.LedgerRow, error)
	GetRowsForUpdate(ctx context.Context, tx pgx.Tx, offeringID int64, rowIDs []int64) (map[int64]*models.LedgerRow, error)
	GetByStudentNumbers(ctx context.Context, tx pgx.Tx, offeringID int64, studentNumbers []string) (map[string]*models.LedgerRow, error)
	UpdateScores(ctx context.Context, tx pgx.Tx, row *models.LedgerRow) error
	CountForOffering(ctx context.Context, offeringID int64) (int, error)
	HasGradedRows(ctx context.Context, tx pgx.Tx, offeringID int64) (bool, error)
}

// StudentStore resolves students for enrollment.
type StudentStore interface {
	FindAddable(ctx context.Context, offeringID int64, filter dto.AddableStudentsFilter) ([]*models.Student, int64, error)
	FilterExisting(ctx context.Context, studentIDs []int64) ([]int64, error)
}

// CatalogStore resolves course/teacher/program references.
type CatalogStore interface {
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	GetTeacherByID(ctx context.Context, id int64) (*models.Teacher, error)
	GetProgramByID(ctx context.Context, id int64) (*models.Program, error)
}
