package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/emreo/scholaris/internal/app/models"
	"github.com/emreo/scholaris/internal/pkg/apperrors"
)

const sheetHeader = "Student No,Last Name,First Name,Prelim,Midterm,Semifinal,Final\n"

func newImportFixture(t *testing.T, maxRows int) (ImportService, *fakeLedgerStore) {
	t.Helper()
	offerings := newFakeOfferingStore()
	ledger := newFakeLedgerStore()
	svc := NewImportService(&fakeTxRunner{}, offerings, ledger, maxRows, zerolog.Nop())

	offerings.byID[1] = &models.Offering{ID: 1, Code: "MATH101-1-2025-01", Status: models.OfferingActive}
	offerings.nextID = 1
	return svc, ledger
}

func enrollStudent(ledger *fakeLedgerStore, offeringID int64, id int64, number string) *models.LedgerRow {
	return ledger.addRow(&models.LedgerRow{
		OfferingID: offeringID,
		StudentID:  id,
		Remark:     "INCOMPLETE",
		Student:    &models.Student{ID: id, StudentNumber: number, LastName: "Reyes", FirstName: "Ana"},
	})
}

func TestImportScoresSkipsBadRowsAppliesRest(t *testing.T) {
	svc, ledger := newImportFixture(t, 1000)
	for i := 1; i <= 10; i++ {
		enrollStudent(ledger, 1, int64(i), fmt.Sprintf("2023-%05d", i))
	}

	var sheet strings.Builder
	sheet.WriteString(sheetHeader)
	for i := 1; i <= 10; i++ {
		score := "2.0"
		if i == 4 {
			score = "6.0" // out of range, the whole row must be skipped
		}
		fmt.Fprintf(&sheet, "2023-%05d,Reyes,Ana,%s,2.5,3.0,2.0\n", i, score)
	}

	result, err := svc.ImportScores(context.Background(), 1, strings.NewReader(sheet.String()))
	if err != nil {
		t.Fatalf("ImportScores() error = %v", err)
	}
	if result.ProcessedCount != 9 || result.FailedCount != 1 {
		t.Fatalf("result = %+v, want 9 processed, 1 failed", result)
	}
	if len(result.Errors) != 1 || result.Errors[0].Row != 4 {
		t.Fatalf("errors = %+v, want one error on row 4", result.Errors)
	}
	if !strings.Contains(result.Errors[0].Reason, "out of range") {
		t.Errorf("reason = %q, want out-of-range", result.Errors[0].Reason)
	}

	for _, row := range ledger.rows {
		if row.Student.StudentNumber == "2023-00004" {
			if row.HasAnyScore() {
				t.Errorf("skipped row got scores: %+v", row)
			}
			continue
		}
		if row.Prelim == nil || *row.Prelim != 2.0 || row.Remark != "PASSED" {
			t.Errorf("row %s = %+v, want scores applied and PASSED", row.Student.StudentNumber, row)
		}
	}
}

func TestImportScoresRowLevelFailures(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		wantReason string
	}{
		{
			name:       "unknown student number",
			line:       "2023-99999,Cruz,Ben,2.0,2.0,2.0,2.0",
			wantReason: "not enrolled",
		},
		{
			name:       "missing student number",
			line:       ",Cruz,Ben,2.0,2.0,2.0,2.0",
			wantReason: "missing student number",
		},
		{
			name:       "non numeric cell",
			line:       "2023-00001,Reyes,Ana,abc,2.0,2.0,2.0",
			wantReason: "not numeric",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, ledger := newImportFixture(t, 1000)
			enrollStudent(ledger, 1, 1, "2023-00001")

			result, err := svc.ImportScores(context.Background(), 1, strings.NewReader(sheetHeader+tt.line+"\n"))
			if err != nil {
				t.Fatalf("ImportScores() error = %v", err)
			}
			if result.ProcessedCount != 0 || result.FailedCount != 1 {
				t.Fatalf("result = %+v, want 0 processed, 1 failed", result)
			}
			if !strings.Contains(result.Errors[0].Reason, tt.wantReason) {
				t.Errorf("reason = %q, want it to contain %q", result.Errors[0].Reason, tt.wantReason)
			}
		})
	}
}

func TestImportScoresBlankCellKeepsRecordedScore(t *testing.T) {
	svc, ledger := newImportFixture(t, 1000)
	row := enrollStudent(ledger, 1, 1, "2023-00001")
	row.Prelim = floatPtr(1.5)

	result, err := svc.ImportScores(context.Background(), 1,
		strings.NewReader(sheetHeader+"2023-00001,Reyes,Ana,,2.0,,\n"))
	if err != nil {
		t.Fatalf("ImportScores() error = %v", err)
	}
	if result.ProcessedCount != 1 {
		t.Fatalf("result = %+v, want 1 processed", result)
	}

	stored := ledger.rows[row.ID]
	if stored.Prelim == nil || *stored.Prelim != 1.5 {
		t.Errorf("prelim = %v, want the recorded 1.5 kept", stored.Prelim)
	}
	if stored.Midterm == nil || *stored.Midterm != 2.0 {
		t.Errorf("midterm = %v, want 2.0 applied", stored.Midterm)
	}
	if stored.Remark != "PASSED" {
		t.Errorf("remark = %q, want PASSED over the present scores", stored.Remark)
	}
}

func TestImportScoresStructuralFailures(t *testing.T) {
	tests := []struct {
		name  string
		sheet string
		max   int
	}{
		{name: "empty sheet", sheet: sheetHeader, max: 1000},
		{name: "over the row limit", sheet: sheetHeader + "2023-00001,Reyes,Ana,2.0,2.0,2.0,2.0\n" + "2023-00002,Cruz,Ben,2.0,2.0,2.0,2.0\n", max: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, ledger := newImportFixture(t, tt.max)
			enrollStudent(ledger, 1, 1, "2023-00001")

			_, err := svc.ImportScores(context.Background(), 1, strings.NewReader(tt.sheet))
			if !apperrors.Is(err, apperrors.ErrValidation) {
				t.Fatalf("ImportScores() error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestImportScoresUnknownOffering(t *testing.T) {
	svc, _ := newImportFixture(t, 1000)

	_, err := svc.ImportScores(context.Background(), 999, strings.NewReader(sheetHeader))
	if !apperrors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("ImportScores() error = %v, want ErrNotFound", err)
	}
}

func TestExportTemplateRoundTripsWithImport(t *testing.T) {
	svc, ledger := newImportFixture(t, 1000)
	row := enrollStudent(ledger, 1, 1, "2023-00001")
	row.Prelim = floatPtr(2.5)
	enrollStudent(ledger, 1, 2, "2023-00002")

	var buf bytes.Buffer
	if err := svc.ExportTemplate(context.Background(), 1, &buf); err != nil {
		t.Fatalf("ExportTemplate() error = %v", err)
	}

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("template has %d lines, want header plus 2 rows:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "Student No,Last Name,First Name,Prelim") {
		t.Errorf("header = %q, want the importable column set", lines[0])
	}
	if !strings.Contains(lines[1], "2023-00001") || !strings.Contains(lines[1], "2.5") {
		t.Errorf("row 1 = %q, want student number and recorded score", lines[1])
	}

	// The emitted template must be accepted straight back by the importer.
	result, err := svc.ImportScores(context.Background(), 1, strings.NewReader(out))
	if err != nil {
		t.Fatalf("ImportScores(template) error = %v", err)
	}
	if result.FailedCount != 0 {
		t.Errorf("re-import failed rows = %+v, want none", result.Errors)
	}
}
