package services

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/emreo/scholaris/internal/app/models/dto"
	"github.com/emreo/scholaris/internal/db"
	"github.com/emreo/scholaris/internal/pkg/apperrors"
	"github.com/emreo/scholaris/internal/pkg/gradepolicy"
)

type gradeService struct {
	tx        db.TxRunner
	offerings OfferingStore
	ledger    LedgerStore
	logger    zerolog.Logger
}

// NewGradeService creates the grade ledger service.
func NewGradeService(tx db.TxRunner, offerings OfferingStore, ledger LedgerStore, logger zerolog.Logger) GradeService {
	return &gradeService{
		tx:        tx,
		offerings: offerings,
		ledger:    ledger,
		logger:    logger,
	}
}

// GetLedger returns all graded records of an offering.
func (s *gradeService) GetLedger(ctx context.Context, offeringID int64) ([]dto.LedgerRowResponse, error) {
	if _, err := s.offerings.GetByID(ctx, offeringID); err != nil {
		return nil, err
	}

	rows, err := s.ledger.GetByOffering(ctx, offeringID)
	if err != nil {
		return nil, apperrors.NewTransientError(err, "failed to load grade ledger")
	}

	result := make([]dto.LedgerRowResponse, 0, len(rows))
	for _, row := range rows {
		result = append(result, dto.FromLedgerRow(row))
	}
	return result, nil
}

// UpdateScores applies a batch of direct score edits as a single atomic
// unit. Each score field is validated independently: an out-of-range value
// is dropped from its row and reported, the remaining fields still apply.
// The incoming row state is authoritative, so a nil field marks the score as
// not yet recorded. Remarks are recomputed for every touched row before
// commit.
func (s *gradeService) UpdateScores(ctx context.Context, offeringID int64, req dto.UpdateScoresRequest) (*dto.UpdateScoresResult, error) {
	if len(req.Rows) == 0 {
		return nil, apperrors.NewValidationError("no score rows supplied")
	}

	rowIDs := make([]int64, 0, len(req.Rows))
	for _, upd := range req.Rows {
		rowIDs = append(rowIDs, upd.LedgerRowID)
	}

	result := &dto.UpdateScoresResult{}

	err := s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		existing, err := s.ledger.GetRowsForUpdate(ctx, tx, offeringID, rowIDs)
		if err != nil {
			return apperrors.NewTransientError(err, "failed to lock ledger rows")
		}

		result.Rows = result.Rows[:0]
		result.Rejected = result.Rejected[:0]

		for _, upd := range req.Rows {
			row, ok := existing[upd.LedgerRowID]
			if !ok {
				return apperrors.NewNotFoundError(fmt.Sprintf("ledger row %d not found in offering %d", upd.LedgerRowID, offeringID))
			}
			if row.StudentID != upd.StudentID {
				return apperrors.NewValidationError(fmt.Sprintf("ledger row %d does not belong to student %d", upd.LedgerRowID, upd.StudentID))
			}

			row.Prelim = s.acceptScore(result, upd.LedgerRowID, "prelim", upd.Prelim, row.Prelim)
			row.Midterm = s.acceptScore(result, upd.LedgerRowID, "midterm", upd.Midterm, row.Midterm)
			row.Semifinal = s.acceptScore(result, upd.LedgerRowID, "semifinal", upd.Semifinal, row.Semifinal)
			row.Final = s.acceptScore(result, upd.LedgerRowID, "final", upd.Final, row.Final)

			row.Remark, _ = gradepolicy.Compute(row.Scores())

			if err := s.ledger.UpdateScores(ctx, tx, row); err != nil {
				return err
			}
			result.Rows = append(result.Rows, dto.FromLedgerRow(row))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("offeringId", offeringID).
		Int("rows", len(result.Rows)).
		Int("rejectedFields", len(result.Rejected)).
		Msg("Grade batch updated")
	return result, nil
}

// acceptScore validates one incoming score field. Valid values (including
// nil, which means "not recorded") replace the current one; out-of-range
// values keep the current score and are reported in the result.
func (s *gradeService) acceptScore(result *dto.UpdateScoresResult, rowID int64, field string, incoming, current *float64) *float64 {
	if incoming == nil {
		return nil
	}
	if !gradepolicy.InRange(*incoming) {
		result.Rejected = append(result.Rejected, dto.FieldRejection{
			LedgerRowID: rowID,
			Field:       field,
			Reason:      fmt.Sprintf("score %.2f out of range %.1f-%.1f", *incoming, gradepolicy.MinScore, gradepolicy.MaxScore),
		})
		return current
	}
	return incoming
}

// Preview derives the remark a score set would produce without persisting
// anything. This is the same computation the server runs on save; clients
// use it for live preview.
func (s *gradeService) Preview(req dto.RemarkPreviewRequest) dto.RemarkPreviewResponse {
	remark, avg := gradepolicy.Compute([4]*float64{req.Prelim, req.Midterm, req.Semifinal, req.Final})
	return dto.RemarkPreviewResponse{Remark: remark, Average: avg}
}
