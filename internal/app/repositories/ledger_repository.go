package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emreo/scholaris/internal/app/models"
	"github.com/emreo/scholaris/internal/pkg/apperrors"
	"github.com/emreo/scholaris/internal/pkg/helpers"
)

// LedgerRepository handles database operations for grade ledger rows.
type LedgerRepository struct {
	db *pgxpool.Pool
}

// NewLedgerRepository creates a new ledger repository.
func NewLedgerRepository(db *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{db: db}
}

func (r *LedgerRepository) querier(tx pgx.Tx) Querier {
	if tx != nil {
		return tx
	}
	return r.db
}

// CreateRows creates one null-score ledger row per student inside the
// caller's transaction. Rows that already exist are left untouched, which
// makes enrollment idempotent per student. Returns the number actually added.
func (r *LedgerRepository) CreateRows(ctx context.Context, tx pgx.Tx, offeringID int64, studentIDs []int64) (int, error) {
	q := r.querier(tx)
	added := 0
	for _, studentID := range studentIDs {
		cmdTag, err := q.Exec(ctx, `
			INSERT INTO ledger_rows (offering_id, student_id, remark)
			VALUES ($1, $2, $3)
			ON CONFLICT (student_id, offering_id) DO NOTHING`,
			offeringID, studentID, "INCOMPLETE",
		)
		if err != nil {
			return added, fmt.Errorf("error creating ledger row for student %d: %w", studentID, err)
		}
		added += int(cmdTag.RowsAffected())
	}
	return added, nil
}

// DeleteRows removes the ledger rows of the given students inside the
// caller's transaction, discarding any recorded scores. Returns the number
// removed.
func (r *LedgerRepository) DeleteRows(ctx context.Context, tx pgx.Tx, offeringID int64, studentIDs []int64) (int, error) {
	cmdTag, err := r.querier(tx).Exec(ctx,
		`DELETE FROM ledger_rows WHERE offering_id = $1 AND student_id = ANY($2)`,
		offeringID, studentIDs,
	)
	if err != nil {
		return 0, fmt.Errorf("error deleting ledger rows: %w", err)
	}
	return int(cmdTag.RowsAffected()), nil
}

// DeleteForOffering removes every ledger row of an offering inside the
// caller's transaction. Used only by the forced cascade delete.
func (r *LedgerRepository) DeleteForOffering(ctx context.Context, tx pgx.Tx, offeringID int64) error {
	if _, err := r.querier(tx).Exec(ctx, `DELETE FROM ledger_rows WHERE offering_id = $1`, offeringID); err != nil {
		return fmt.Errorf("error deleting ledger rows: %w", err)
	}
	return nil
}

// GetByOffering retrieves all ledger rows of an offering with student
// details, ordered by student last name.
func (r *LedgerRepository) GetByOffering(ctx context.Context, offeringID int64) ([]*models.LedgerRow, error) {
	query := `
		SELECT l.id, l.offering_id, l.student_id,
		       l.prelim, l.midterm, l.semifinal, l.final, l.remark, l.updated_at,
		       s.student_number, s.first_name, s.last_name, s.program_id,
		       s.year_level, s.section, s.status
		FROM ledger_rows l
		JOIN students s ON l.student_id = s.id
		WHERE l.offering_id = $1
		ORDER BY s.last_name, s.first_name
	`

	rows, err := r.db.Query(ctx, query, offeringID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving ledger rows: %w", err)
	}
	defer rows.Close()

	return scanLedgerRowsWithStudent(rows)
}

// GetRowsForUpdate locks and returns the rows with the given ids inside the
// caller's transaction, keyed by row id. Locking keeps concurrent batch
// edits of the same students serialized.
func (r *LedgerRepository) GetRowsForUpdate(ctx context.Context, tx pgx.Tx, offeringID int64, rowIDs []int64) (map[int64]*models.LedgerRow, error) {
	query := `
		SELECT id, offering_id, student_id, prelim, midterm, semifinal, final, remark, updated_at
		FROM ledger_rows
		WHERE offering_id = $1 AND id = ANY($2)
		FOR UPDATE
	`

	rows, err := r.querier(tx).Query(ctx, query, offeringID, rowIDs)
	if err != nil {
		return nil, fmt.Errorf("error locking ledger rows: %w", err)
	}
	defer rows.Close()

	result := make(map[int64]*models.LedgerRow, len(rowIDs))
	for rows.Next() {
		row, err := scanLedgerRow(rows)
		if err != nil {
			return nil, err
		}
		result[row.ID] = row
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByStudentNumbers resolves ledger rows of an offering by the students'
// registrar numbers, keyed by student number. Only enrolled students appear
// in the result; unmatched numbers are simply absent.
func (r *LedgerRepository) GetByStudentNumbers(ctx context.Context, tx pgx.Tx, offeringID int64, studentNumbers []string) (map[string]*models.LedgerRow, error) {
	query := `
		SELECT l.id, l.offering_id, l.student_id,
		       l.prelim, l.midterm, l.semifinal, l.final, l.remark, l.updated_at,
		       s.student_number, s.first_name, s.last_name, s.program_id,
		       s.year_level, s.section, s.status
		FROM ledger_rows l
		JOIN students s ON l.student_id = s.id
		WHERE l.offering_id = $1 AND s.student_number = ANY($2)
	`

	rows, err := r.querier(tx).Query(ctx, query, offeringID, studentNumbers)
	if err != nil {
		return nil, fmt.Errorf("error resolving ledger rows by student number: %w", err)
	}
	defer rows.Close()

	ledgerRows, err := scanLedgerRowsWithStudent(rows)
	if err != nil {
		return nil, err
	}

	result := make(map[string]*models.LedgerRow, len(ledgerRows))
	for _, row := range ledgerRows {
		result[row.Student.StudentNumber] = row
	}
	return result, nil
}

// UpdateScores persists the four period scores and the derived remark of one
// row inside the caller's transaction.
func (r *LedgerRepository) UpdateScores(ctx context.Context, tx pgx.Tx, row *models.LedgerRow) error {
	cmdTag, err := r.querier(tx).Exec(ctx, `
		UPDATE ledger_rows
		SET prelim = $1, midterm = $2, semifinal = $3, final = $4, remark = $5, updated_at = NOW()
		WHERE id = $6`,
		helpers.GetNullFloat64(row.Prelim),
		helpers.GetNullFloat64(row.Midterm),
		helpers.GetNullFloat64(row.Semifinal),
		helpers.GetNullFloat64(row.Final),
		row.Remark,
		row.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating ledger row %d: %w", row.ID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("ledger row %d not found", row.ID))
	}
	return nil
}

// CountForOffering counts enrolled students in an offering.
func (r *LedgerRepository) CountForOffering(ctx context.Context, offeringID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM ledger_rows WHERE offering_id = $1`, offeringID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting ledger rows: %w", err)
	}
	return count, nil
}

// HasGradedRows reports whether any ledger row of the offering carries at
// least one recorded score. Checked inside the delete transaction so the
// HasDependents decision and the cascade see the same snapshot.
func (r *LedgerRepository) HasGradedRows(ctx context.Context, tx pgx.Tx, offeringID int64) (bool, error) {
	var exists bool
	err := r.querier(tx).QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM ledger_rows
			WHERE offering_id = $1
			  AND (prelim IS NOT NULL OR midterm IS NOT NULL OR semifinal IS NOT NULL OR final IS NOT NULL)
		)`, offeringID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking graded rows: %w", err)
	}
	return exists, nil
}

func scanLedgerRow(rows pgx.Rows) (*models.LedgerRow, error) {
	var row models.LedgerRow
	if err := rows.Scan(
		&row.ID, &row.OfferingID, &row.StudentID,
		&row.Prelim, &row.Midterm, &row.Semifinal, &row.Final,
		&row.Remark, &row.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &row, nil
}

func scanLedgerRowsWithStudent(rows pgx.Rows) ([]*models.LedgerRow, error) {
	var result []*models.LedgerRow
	for rows.Next() {
		var row models.LedgerRow
		var student models.Student
		if err := rows.Scan(
			&row.ID, &row.OfferingID, &row.StudentID,
			&row.Prelim, &row.Midterm, &row.Semifinal, &row.Final,
			&row.Remark, &row.UpdatedAt,
			&student.StudentNumber, &student.FirstName, &student.LastName,
			&student.ProgramID, &student.YearLevel, &student.Section, &student.Status,
		); err != nil {
			return nil, err
		}
		student.ID = row.StudentID
		row.Student = &student
		result = append(result, &row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
