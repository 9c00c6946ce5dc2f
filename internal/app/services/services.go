package services

import (
	"context"
	"io"

	"github.com/emreo/scholaris/internal/app/models"
	"github.com/emreo/scholaris/internal/app/models/dto"
)

// OfferingService orchestrates the course assignment workflows: code
// allocation, schedule validation, persistence and enrollment reconciliation.
type OfferingService interface {
	Create(ctx context.Context, req dto.CreateOfferingRequest) (*dto.OfferingResponse, error)
	Update(ctx context.Context, id int64, req dto.UpdateOfferingRequest) (*dto.OfferingResponse, error)
	Delete(ctx context.Context, id int64, force bool) error
	Retire(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*dto.OfferingResponse, error)
	List(ctx context.Context, term *models.Term) ([]dto.OfferingResponse, error)
}

// EnrollmentService adds and removes students from an offering.
type EnrollmentService interface {
	Enroll(ctx context.Context, offeringID int64, studentIDs []int64) (*dto.EnrollmentResult, error)
	Unenroll(ctx context.Context, offeringID int64, studentIDs []int64) (*dto.EnrollmentResult, error)
	FindAddable(ctx context.Context, offeringID int64, filter dto.AddableStudentsFilter) (*dto.PaginatedResponse, error)
}

// GradeService maintains per-period scores and the derived remark.
type GradeService interface {
	GetLedger(ctx context.Context, offeringID int64) ([]dto.LedgerRowResponse, error)
	UpdateScores(ctx context.Context, offeringID int64, req dto.UpdateScoresRequest) (*dto.UpdateScoresResult, error)
	Preview(req dto.RemarkPreviewRequest) dto.RemarkPreviewResponse
}

// ImportService moves scores in and out of tabular score sheets.
type ImportService interface {
	ImportScores(ctx context.Context, offeringID int64, sheet io.Reader) (*dto.ImportResult, error)
	ExportTemplate(ctx context.Context, offeringID int64, w io.Writer) error
}
