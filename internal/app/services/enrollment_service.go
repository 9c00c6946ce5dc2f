package services

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/emreo/scholaris/internal/app/models"
	"github.com/emreo/scholaris/internal/app/models/dto"
	"github.com/emreo/scholaris/internal/db"
	"github.com/emreo/scholaris/internal/pkg/apperrors"
	"github.com/emreo/scholaris/internal/pkg/helpers"
)

type enrollmentService struct {
	tx        db.TxRunner
	offerings OfferingStore
	ledger    LedgerStore
	students  StudentStore
	logger    zerolog.Logger
}

// NewEnrollmentService creates the enrollment manager.
func NewEnrollmentService(tx db.TxRunner, offerings OfferingStore, ledger LedgerStore, students StudentStore, logger zerolog.Logger) EnrollmentService {
	return &enrollmentService{
		tx:        tx,
		offerings: offerings,
		ledger:    ledger,
		students:  students,
		logger:    logger,
	}
}

// Enroll creates a null-score ledger row for each student not already in the
// offering. Re-adding an enrolled student is a no-op, not an error.
func (s *enrollmentService) Enroll(ctx context.Context, offeringID int64, studentIDs []int64) (*dto.EnrollmentResult, error) {
	offering, err := s.offerings.GetByID(ctx, offeringID)
	if err != nil {
		return nil, err
	}
	if offering.Status != models.OfferingActive {
		return nil, apperrors.NewConflictError(fmt.Sprintf("offering %s is retired and cannot accept enrollments", offering.Code))
	}

	if err := s.requireKnownStudents(ctx, studentIDs); err != nil {
		return nil, err
	}

	result := &dto.EnrollmentResult{}
	err = s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		added, err := s.ledger.CreateRows(ctx, tx, offeringID, studentIDs)
		if err != nil {
			return apperrors.NewTransientError(err, "failed to enroll students")
		}
		result.Added = added
		result.Skipped = len(studentIDs) - added
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("offeringId", offeringID).
		Str("offeringCode", offering.Code).
		Int("added", result.Added).
		Int("skipped", result.Skipped).
		Msg("Students enrolled")
	return result, nil
}

// Unenroll deletes the students' ledger rows, irreversibly discarding their
// recorded scores. The caller layer is responsible for obtaining explicit
// confirmation before invoking this.
func (s *enrollmentService) Unenroll(ctx context.Context, offeringID int64, studentIDs []int64) (*dto.EnrollmentResult, error) {
	offering, err := s.offerings.GetByID(ctx, offeringID)
	if err != nil {
		return nil, err
	}

	result := &dto.EnrollmentResult{}
	err = s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		removed, err := s.ledger.DeleteRows(ctx, tx, offeringID, studentIDs)
		if err != nil {
			return apperrors.NewTransientError(err, "failed to unenroll students")
		}
		result.Removed = removed
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("offeringId", offeringID).
		Str("offeringCode", offering.Code).
		Int("removed", result.Removed).
		Msg("Students unenrolled, scores discarded")
	return result, nil
}

// FindAddable returns one page of students matching the filters who are not
// yet enrolled in the offering. Pagination is clamped to sane bounds.
func (s *enrollmentService) FindAddable(ctx context.Context, offeringID int64, filter dto.AddableStudentsFilter) (*dto.PaginatedResponse, error) {
	if _, err := s.offerings.GetByID(ctx, offeringID); err != nil {
		return nil, err
	}

	filter.Page, filter.PageSize = helpers.ClampPagination(filter.Page, filter.PageSize)

	students, total, err := s.students.FindAddable(ctx, offeringID, filter)
	if err != nil {
		return nil, apperrors.NewTransientError(err, "failed to query addable students")
	}

	items := make([]dto.StudentResponse, 0, len(students))
	for _, st := range students {
		items = append(items, dto.FromStudent(st))
	}

	return &dto.PaginatedResponse{
		Items:      items,
		Pagination: helpers.NewPaginationInfo(total, filter.Page, filter.PageSize),
	}, nil
}

// requireKnownStudents rejects the call when any id does not resolve to a
// student.
func (s *enrollmentService) requireKnownStudents(ctx context.Context, studentIDs []int64) error {
	if len(studentIDs) == 0 {
		return apperrors.NewValidationError("no student ids supplied")
	}

	existing, err := s.students.FilterExisting(ctx, studentIDs)
	if err != nil {
		return apperrors.NewTransientError(err, "failed to resolve students")
	}

	known := make(map[int64]bool, len(existing))
	for _, id := range existing {
		known[id] = true
	}

	var missing []int64
	for _, id := range studentIDs {
		if !known[id] {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("unknown student ids: %v", missing))
	}
	return nil
}
