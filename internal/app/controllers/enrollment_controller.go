package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/emreo/scholaris/internal/app/models/dto"
	"github.com/emreo/scholaris/internal/app/services"
	"github.com/emreo/scholaris/internal/middleware"
	"github.com/emreo/scholaris/internal/pkg/helpers"
)

// EnrollmentController handles enrollment operations on an offering
type EnrollmentController struct {
	enrollmentService services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{
		enrollmentService: enrollmentService,
	}
}

// EnrollStudents enrolls students into an offering
// @Summary Enroll students
// @Description Adds students to the offering with null-score ledger rows. Already-enrolled ids are skipped.
// @Tags enrollment
// @Accept json
// @Produce json
// @Param id path int true "Offering ID"
// @Param request body dto.EnrollRequest true "Student ids to enroll"
// @Success 200 {object} dto.APIResponse{data=dto.EnrollmentResult} "Enrollment applied"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Offering or student not found"
// @Failure 409 {object} dto.ErrorResponse "Offering is retired"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /offerings/{id}/students [post]
func (c *EnrollmentController) EnrollStudents(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.EnrollRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid enrollment data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	result, err := c.enrollmentService.Enroll(ctx, id, req.StudentIDs)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}

// UnenrollStudents removes students from an offering
// @Summary Unenroll students
// @Description Removes students from the offering, discarding their recorded scores. Requires confirm=true.
// @Tags enrollment
// @Accept json
// @Produce json
// @Param id path int true "Offering ID"
// @Param request body dto.UnenrollRequest true "Student ids to remove, with confirmation"
// @Success 200 {object} dto.APIResponse{data=dto.EnrollmentResult} "Removal applied"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or missing confirmation"
// @Failure 404 {object} dto.ErrorResponse "Offering not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /offerings/{id}/students [delete]
func (c *EnrollmentController) UnenrollStudents(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UnenrollRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid unenrollment data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	if !req.Confirm {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Unenrollment discards recorded scores and must be confirmed")
		errorDetail = errorDetail.WithField("confirm")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	result, err := c.enrollmentService.Unenroll(ctx, id, req.StudentIDs)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}

// GetAddableStudents lists students who can still be enrolled
// @Summary List addable students
// @Description Retrieves one page of students matching the filters who are not yet enrolled in the offering
// @Tags enrollment
// @Accept json
// @Produce json
// @Param id path int true "Offering ID"
// @Param programId query int false "Filter by program"
// @Param yearLevel query int false "Filter by year level"
// @Param section query string false "Filter by section"
// @Param status query string false "Filter by student status"
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Addable students retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid offering ID"
// @Failure 404 {object} dto.ErrorResponse "Offering not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /offerings/{id}/addable-students [get]
func (c *EnrollmentController) GetAddableStudents(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	page, size := helpers.ParsePaginationParams(ctx)
	filter := dto.AddableStudentsFilter{
		Section:  ctx.Query("section"),
		Status:   ctx.Query("status"),
		Page:     page,
		PageSize: size,
	}
	if v := ctx.Query("programId"); v != "" {
		programID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid programId")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		filter.ProgramID = programID
	}
	if v := ctx.Query("yearLevel"); v != "" {
		yearLevel, err := strconv.Atoi(v)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid yearLevel")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		filter.YearLevel = yearLevel
	}

	result, err := c.enrollmentService.FindAddable(ctx, id, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}
