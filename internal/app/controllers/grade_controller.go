package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/emreo/scholaris/internal/app/models/dto"
	"github.com/emreo/scholaris/internal/app/services"
	"github.com/emreo/scholaris/internal/middleware"
)

// maxSheetUploadBytes caps the accepted score sheet size.
const maxSheetUploadBytes = 4 << 20

// GradeController handles the grade ledger of an offering
type GradeController struct {
	gradeService  services.GradeService
	importService services.ImportService
}

// NewGradeController creates a new GradeController
func NewGradeController(gradeService services.GradeService, importService services.ImportService) *GradeController {
	return &GradeController{
		gradeService:  gradeService,
		importService: importService,
	}
}

// GetLedger retrieves the grade ledger
// @Summary Get the grade ledger
// @Description Retrieves all graded records of an offering, ordered by student name
// @Tags grades
// @Accept json
// @Produce json
// @Param id path int true "Offering ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.LedgerRowResponse} "Ledger retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid offering ID"
// @Failure 404 {object} dto.ErrorResponse "Offering not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /offerings/{id}/ledger [get]
func (c *GradeController) GetLedger(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	ledger, err := c.gradeService.GetLedger(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      ledger,
		Timestamp: time.Now(),
	})
}

// UpdateScores applies a batch of score edits
// @Summary Update scores
// @Description Applies a batch of direct score edits atomically. Out-of-range fields are dropped from their rows and reported; the rest of each row still applies.
// @Tags grades
// @Accept json
// @Produce json
// @Param id path int true "Offering ID"
// @Param request body dto.UpdateScoresRequest true "Score batch"
// @Success 200 {object} dto.APIResponse{data=dto.UpdateScoresResult} "Scores updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Offering or ledger row not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /offerings/{id}/scores [put]
func (c *GradeController) UpdateScores(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateScoresRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid score data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	result, err := c.gradeService.UpdateScores(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}

// ImportScores imports a score sheet
// @Summary Import a score sheet
// @Description Applies all valid rows of an uploaded score sheet to the ledger in one transaction. Bad rows are skipped and reported.
// @Tags grades
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Offering ID"
// @Param sheet formData file true "Score sheet (CSV)"
// @Success 200 {object} dto.APIResponse{data=dto.ImportResult} "Import applied"
// @Failure 400 {object} dto.ErrorResponse "Missing or unreadable sheet"
// @Failure 404 {object} dto.ErrorResponse "Offering not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /offerings/{id}/scores/import [post]
func (c *GradeController) ImportScores(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	fileHeader, err := ctx.FormFile("sheet")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Score sheet file is required")
		errorDetail = errorDetail.WithDetails("upload the sheet as multipart form field 'sheet'")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	if fileHeader.Size > maxSheetUploadBytes {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Score sheet too large")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Score sheet could not be read")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	defer file.Close()

	result, err := c.importService.ImportScores(ctx, id, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}

// DownloadTemplate downloads the score sheet template
// @Summary Download the score sheet template
// @Description Emits a CSV with one row per enrolled student, recorded scores filled in, ready to complete and re-import
// @Tags grades
// @Produce text/csv
// @Param id path int true "Offering ID"
// @Success 200 {string} string "CSV score sheet"
// @Failure 400 {object} dto.ErrorResponse "Invalid offering ID"
// @Failure 404 {object} dto.ErrorResponse "Offering not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /offerings/{id}/scores/template [get]
func (c *GradeController) DownloadTemplate(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := c.importService.ExportTemplate(ctx, id, &buf); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=scores-offering-%d.csv", id))
	ctx.Data(http.StatusOK, "text/csv", buf.Bytes())
}

// PreviewRemark derives the remark for a score set
// @Summary Preview a remark
// @Description Derives the remark and rounded average a score set would produce, without persisting anything
// @Tags grades
// @Accept json
// @Produce json
// @Param request body dto.RemarkPreviewRequest true "Period scores"
// @Success 200 {object} dto.APIResponse{data=dto.RemarkPreviewResponse} "Derived remark"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /grades/preview [post]
func (c *GradeController) PreviewRemark(ctx *gin.Context) {
	var req dto.RemarkPreviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid score data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.gradeService.Preview(req),
		Timestamp: time.Now(),
	})
}
