package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/emreo/scholaris/internal/app/models"
	"github.com/emreo/scholaris/internal/app/models/dto"
	"github.com/emreo/scholaris/internal/pkg/apperrors"
)

func newGradeFixture(t *testing.T) (GradeService, *fakeOfferingStore, *fakeLedgerStore) {
	t.Helper()
	offerings := newFakeOfferingStore()
	ledger := newFakeLedgerStore()
	svc := NewGradeService(&fakeTxRunner{}, offerings, ledger, zerolog.Nop())

	offerings.byID[1] = &models.Offering{
		ID:     1,
		Code:   "MATH101-1-2025-01",
		Status: models.OfferingActive,
		Term:   models.Term{Semester: models.SemesterFirst, SchoolYear: "2025-2026"},
	}
	offerings.nextID = 1
	offerings.codes["MATH101-1-2025-01"] = true
	return svc, offerings, ledger
}

func TestUpdateScoresRecomputesRemark(t *testing.T) {
	svc, _, ledger := newGradeFixture(t)
	row := ledger.addRow(&models.LedgerRow{OfferingID: 1, StudentID: 10, Remark: "INCOMPLETE"})

	result, err := svc.UpdateScores(context.Background(), 1, dto.UpdateScoresRequest{
		Rows: []dto.ScoreUpdate{{
			LedgerRowID: row.ID,
			StudentID:   10,
			Prelim:      floatPtr(2.0),
			Midterm:     floatPtr(2.5),
			Semifinal:   floatPtr(3.0),
			Final:       floatPtr(2.0),
		}},
	})
	if err != nil {
		t.Fatalf("UpdateScores() error = %v", err)
	}
	if len(result.Rows) != 1 {
		t.Fatalf("got %d result rows, want 1", len(result.Rows))
	}
	if result.Rows[0].Remark != "PASSED" {
		t.Errorf("remark = %q, want PASSED", result.Rows[0].Remark)
	}
	if len(result.Rejected) != 0 {
		t.Errorf("rejected = %v, want none", result.Rejected)
	}

	stored := ledger.rows[row.ID]
	if stored.Remark != "PASSED" || stored.Prelim == nil || *stored.Prelim != 2.0 {
		t.Errorf("stored row = %+v, scores not persisted", stored)
	}
}

func TestUpdateScoresRejectsOutOfRangeFieldKeepsRest(t *testing.T) {
	svc, _, ledger := newGradeFixture(t)
	row := ledger.addRow(&models.LedgerRow{
		OfferingID: 1,
		StudentID:  10,
		Final:      floatPtr(2.0),
		Remark:     "PASSED",
	})

	result, err := svc.UpdateScores(context.Background(), 1, dto.UpdateScoresRequest{
		Rows: []dto.ScoreUpdate{{
			LedgerRowID: row.ID,
			StudentID:   10,
			Prelim:      floatPtr(1.5),
			Final:       floatPtr(6.0), // out of range, must keep the recorded 2.0
		}},
	})
	if err != nil {
		t.Fatalf("UpdateScores() error = %v", err)
	}
	if len(result.Rejected) != 1 {
		t.Fatalf("rejected = %v, want exactly one field", result.Rejected)
	}
	if result.Rejected[0].Field != "final" {
		t.Errorf("rejected field = %q, want final", result.Rejected[0].Field)
	}

	stored := ledger.rows[row.ID]
	if stored.Prelim == nil || *stored.Prelim != 1.5 {
		t.Errorf("prelim = %v, want the valid field applied", stored.Prelim)
	}
	if stored.Final == nil || *stored.Final != 2.0 {
		t.Errorf("final = %v, want the recorded 2.0 kept", stored.Final)
	}
}

func TestUpdateScoresNilFieldMarksNotRecorded(t *testing.T) {
	svc, _, ledger := newGradeFixture(t)
	row := ledger.addRow(&models.LedgerRow{
		OfferingID: 1,
		StudentID:  10,
		Prelim:     floatPtr(2.0),
		Midterm:    floatPtr(2.0),
		Remark:     "PASSED",
	})

	// Incoming state is authoritative: only prelim present now.
	result, err := svc.UpdateScores(context.Background(), 1, dto.UpdateScoresRequest{
		Rows: []dto.ScoreUpdate{{LedgerRowID: row.ID, StudentID: 10, Prelim: floatPtr(2.0)}},
	})
	if err != nil {
		t.Fatalf("UpdateScores() error = %v", err)
	}
	stored := ledger.rows[row.ID]
	if stored.Midterm != nil {
		t.Errorf("midterm = %v, want cleared to not-recorded", stored.Midterm)
	}
	if result.Rows[0].Remark != "PASSED" {
		t.Errorf("remark = %q, want PASSED from the single present score", result.Rows[0].Remark)
	}
}

func TestUpdateScoresUnknownRowAbortsBatch(t *testing.T) {
	svc, _, ledger := newGradeFixture(t)
	row := ledger.addRow(&models.LedgerRow{OfferingID: 1, StudentID: 10, Remark: "INCOMPLETE"})

	_, err := svc.UpdateScores(context.Background(), 1, dto.UpdateScoresRequest{
		Rows: []dto.ScoreUpdate{
			{LedgerRowID: row.ID, StudentID: 10, Prelim: floatPtr(2.0)},
			{LedgerRowID: 999, StudentID: 11, Prelim: floatPtr(2.0)},
		},
	})
	if !apperrors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("UpdateScores() error = %v, want ErrNotFound", err)
	}
}

func TestUpdateScoresStudentMismatchAbortsBatch(t *testing.T) {
	svc, _, ledger := newGradeFixture(t)
	row := ledger.addRow(&models.LedgerRow{OfferingID: 1, StudentID: 10, Remark: "INCOMPLETE"})

	_, err := svc.UpdateScores(context.Background(), 1, dto.UpdateScoresRequest{
		Rows: []dto.ScoreUpdate{{LedgerRowID: row.ID, StudentID: 99, Prelim: floatPtr(2.0)}},
	})
	if !apperrors.Is(err, apperrors.ErrValidation) {
		t.Fatalf("UpdateScores() error = %v, want ErrValidation", err)
	}
}

func TestUpdateScoresEmptyBatch(t *testing.T) {
	svc, _, _ := newGradeFixture(t)

	_, err := svc.UpdateScores(context.Background(), 1, dto.UpdateScoresRequest{})
	if !apperrors.Is(err, apperrors.ErrValidation) {
		t.Fatalf("UpdateScores() error = %v, want ErrValidation", err)
	}
}

func TestGetLedgerUnknownOffering(t *testing.T) {
	svc, _, _ := newGradeFixture(t)

	_, err := svc.GetLedger(context.Background(), 999)
	if !apperrors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("GetLedger() error = %v, want ErrNotFound", err)
	}
}

func TestPreviewMatchesDerivation(t *testing.T) {
	svc, _, _ := newGradeFixture(t)

	tests := []struct {
		name       string
		req        dto.RemarkPreviewRequest
		wantRemark string
		wantAvg    *float64
	}{
		{
			name:       "all absent",
			req:        dto.RemarkPreviewRequest{},
			wantRemark: "INCOMPLETE",
		},
		{
			name:       "passing average",
			req:        dto.RemarkPreviewRequest{Prelim: floatPtr(2.0), Midterm: floatPtr(2.0), Semifinal: floatPtr(2.0), Final: floatPtr(2.0)},
			wantRemark: "PASSED",
			wantAvg:    floatPtr(2.0),
		},
		{
			name:       "failing single score",
			req:        dto.RemarkPreviewRequest{Final: floatPtr(4.5)},
			wantRemark: "FAILED",
			wantAvg:    floatPtr(4.5),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Preview(tt.req)
			if got.Remark != tt.wantRemark {
				t.Errorf("remark = %q, want %q", got.Remark, tt.wantRemark)
			}
			if (got.Average == nil) != (tt.wantAvg == nil) {
				t.Fatalf("average = %v, want %v", got.Average, tt.wantAvg)
			}
			if got.Average != nil && *got.Average != *tt.wantAvg {
				t.Errorf("average = %v, want %v", *got.Average, *tt.wantAvg)
			}
		})
	}
}
