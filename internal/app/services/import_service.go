package services

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/emreo/scholaris/internal/app/models"
	"github.com/emreo/scholaris/internal/app/models/dto"
	"github.com/emreo/scholaris/internal/db"
	"github.com/emreo/scholaris/internal/pkg/apperrors"
	"github.com/emreo/scholaris/internal/pkg/gradepolicy"
)

// scoreSheetRow is one line of the tabular score sheet. Score cells stay
// strings so blank and malformed cells can be told apart.
type scoreSheetRow struct {
	StudentNumber string `csv:"Student No"`
	LastName      string `csv:"Last Name"`
	FirstName     string `csv:"First Name"`
	Prelim        string `csv:"Prelim"`
	Midterm       string `csv:"Midterm"`
	Semifinal     string `csv:"Semifinal"`
	Final         string `csv:"Final"`
}

type importService struct {
	tx        db.TxRunner
	offerings OfferingStore
	ledger    LedgerStore
	maxRows   int
	logger    zerolog.Logger
}

// NewImportService creates the bulk grade importer.
func NewImportService(tx db.TxRunner, offerings OfferingStore, ledger LedgerStore, maxRows int, logger zerolog.Logger) ImportService {
	if maxRows <= 0 {
		maxRows = 1000
	}
	return &importService{
		tx:        tx,
		offerings: offerings,
		ledger:    ledger,
		maxRows:   maxRows,
		logger:    logger,
	}
}

// ImportScores parses a score sheet and applies all valid rows to the
// offering's ledger in one transaction. Row-level problems (unknown or
// unenrolled student number, malformed or out-of-range cells) are collected
// and those rows skipped; only structural failures abort the import. Student
// resolution happens inside the write transaction, so enrollment changes
// between upload and commit cannot produce orphan score writes.
func (s *importService) ImportScores(ctx context.Context, offeringID int64, sheet io.Reader) (*dto.ImportResult, error) {
	offering, err := s.offerings.GetByID(ctx, offeringID)
	if err != nil {
		return nil, err
	}

	var rows []*scoreSheetRow
	if err := gocsv.Unmarshal(sheet, &rows); err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unreadable score sheet: %v", err))
	}
	if len(rows) == 0 {
		return nil, apperrors.NewValidationError("score sheet contains no data rows")
	}
	if len(rows) > s.maxRows {
		return nil, apperrors.NewValidationError(fmt.Sprintf("score sheet has %d rows, limit is %d", len(rows), s.maxRows))
	}

	result := &dto.ImportResult{Errors: []dto.ImportRowError{}}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		result.ProcessedCount = 0
		result.FailedCount = 0
		result.Errors = result.Errors[:0]

		numbers := make([]string, 0, len(rows))
		for _, row := range rows {
			if n := strings.TrimSpace(row.StudentNumber); n != "" {
				numbers = append(numbers, n)
			}
		}

		enrolled, err := s.ledger.GetByStudentNumbers(ctx, tx, offeringID, numbers)
		if err != nil {
			return apperrors.NewTransientError(err, "failed to resolve enrolled students")
		}

		for i, row := range rows {
			rowNum := i + 1

			number := strings.TrimSpace(row.StudentNumber)
			if number == "" {
				s.rejectRow(result, rowNum, number, "missing student number")
				continue
			}

			ledgerRow, ok := enrolled[number]
			if !ok {
				s.rejectRow(result, rowNum, number, "student is not enrolled in this offering")
				continue
			}

			scores, reason := parseScoreCells(row)
			if reason != "" {
				s.rejectRow(result, rowNum, number, reason)
				continue
			}

			applyScores(ledgerRow, scores)
			ledgerRow.Remark, _ = gradepolicy.Compute(ledgerRow.Scores())

			if err := s.ledger.UpdateScores(ctx, tx, ledgerRow); err != nil {
				return err
			}
			result.ProcessedCount++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("offeringId", offeringID).
		Str("offeringCode", offering.Code).
		Int("processed", result.ProcessedCount).
		Int("failed", result.FailedCount).
		Msg("Score sheet imported")
	return result, nil
}

func (s *importService) rejectRow(result *dto.ImportResult, rowNum int, studentNumber, reason string) {
	result.FailedCount++
	result.Errors = append(result.Errors, dto.ImportRowError{
		Row:           rowNum,
		StudentNumber: studentNumber,
		Reason:        reason,
	})
}

// parseScoreCells validates the four score cells of one row. Any malformed
// or out-of-range cell invalidates the whole row so it is never partially
// applied. Blank cells yield nil, meaning "leave the recorded score as is".
func parseScoreCells(row *scoreSheetRow) ([4]*float64, string) {
	var scores [4]*float64
	cells := [4]struct {
		name  string
		value string
	}{
		{"prelim", row.Prelim},
		{"midterm", row.Midterm},
		{"semifinal", row.Semifinal},
		{"final", row.Final},
	}

	for i, cell := range cells {
		trimmed := strings.TrimSpace(cell.value)
		if trimmed == "" {
			continue
		}
		v, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return scores, fmt.Sprintf("%s score %q is not numeric", cell.name, trimmed)
		}
		if !gradepolicy.InRange(v) {
			return scores, fmt.Sprintf("%s score %.1f out of range %.1f-%.1f", cell.name, v, gradepolicy.MinScore, gradepolicy.MaxScore)
		}
		scores[i] = &v
	}
	return scores, ""
}

// applyScores overwrites recorded scores with the sheet's present cells.
// Blank cells keep whatever is already in the ledger, so a partially filled
// template never wipes earlier periods.
func applyScores(row *models.LedgerRow, scores [4]*float64) {
	if scores[0] != nil {
		row.Prelim = scores[0]
	}
	if scores[1] != nil {
		row.Midterm = scores[1]
	}
	if scores[2] != nil {
		row.Semifinal = scores[2]
	}
	if scores[3] != nil {
		row.Final = scores[3]
	}
}

// ExportTemplate writes the offering's score sheet: one row per enrolled
// student with recorded scores filled in and the rest blank. The emitted
// header matches what ImportScores expects.
func (s *importService) ExportTemplate(ctx context.Context, offeringID int64, w io.Writer) error {
	if _, err := s.offerings.GetByID(ctx, offeringID); err != nil {
		return err
	}

	ledgerRows, err := s.ledger.GetByOffering(ctx, offeringID)
	if err != nil {
		return apperrors.NewTransientError(err, "failed to load ledger for export")
	}

	sheet := make([]*scoreSheetRow, 0, len(ledgerRows))
	for _, row := range ledgerRows {
		out := &scoreSheetRow{
			Prelim:    formatScoreCell(row.Prelim),
			Midterm:   formatScoreCell(row.Midterm),
			Semifinal: formatScoreCell(row.Semifinal),
			Final:     formatScoreCell(row.Final),
		}
		if row.Student != nil {
			out.StudentNumber = row.Student.StudentNumber
			out.LastName = row.Student.LastName
			out.FirstName = row.Student.FirstName
		}
		sheet = append(sheet, out)
	}

	if err := gocsv.Marshal(&sheet, w); err != nil {
		return fmt.Errorf("failed to write score sheet: %w", err)
	}
	return nil
}

func formatScoreCell(score *float64) string {
	if score == nil {
		return ""
	}
	return strconv.FormatFloat(*score, 'f', 1, 64)
}
