package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/emreo/scholaris/internal/app/models"
	"github.com/emreo/scholaris/internal/app/models/dto"
	"github.com/emreo/scholaris/internal/app/services"
	"github.com/emreo/scholaris/internal/middleware"
)

// OfferingController handles offering lifecycle operations
type OfferingController struct {
	offeringService services.OfferingService
}

// NewOfferingController creates a new OfferingController
func NewOfferingController(offeringService services.OfferingService) *OfferingController {
	return &OfferingController{
		offeringService: offeringService,
	}
}

// parseIDParam extracts a positive int64 path parameter or writes a 400.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name)
		errorDetail = errorDetail.WithDetails(name + " must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// CreateOffering handles offering creation
// @Summary Create a new offering
// @Description Creates a course offering with a generated code, validated schedule and optional initial enrollment
// @Tags offerings
// @Accept json
// @Produce json
// @Param request body dto.CreateOfferingRequest true "Offering information"
// @Success 201 {object} dto.APIResponse{data=dto.OfferingResponse} "Offering created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Course, teacher, program or student not found"
// @Failure 409 {object} dto.ErrorResponse "Schedule conflict or duplicate code"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /offerings [post]
func (c *OfferingController) CreateOffering(ctx *gin.Context) {
	var req dto.CreateOfferingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid offering data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	offering, err := c.offeringService.Create(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      offering,
		Timestamp: time.Now(),
	})
}

// GetOffering retrieves an offering by ID
// @Summary Get offering by ID
// @Description Retrieves an offering with its meetings and enrolled count
// @Tags offerings
// @Accept json
// @Produce json
// @Param id path int true "Offering ID"
// @Success 200 {object} dto.APIResponse{data=dto.OfferingResponse} "Offering retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid offering ID"
// @Failure 404 {object} dto.ErrorResponse "Offering not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /offerings/{id} [get]
func (c *OfferingController) GetOffering(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	offering, err := c.offeringService.Get(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      offering,
		Timestamp: time.Now(),
	})
}

// ListOfferings lists offerings
// @Summary List offerings
// @Description Lists offerings, optionally filtered to one term
// @Tags offerings
// @Accept json
// @Produce json
// @Param semester query string false "Semester (FIRST, SECOND, SUMMER)"
// @Param schoolYear query string false "School year, e.g. 2025-2026"
// @Success 200 {object} dto.APIResponse{data=[]dto.OfferingResponse} "Offerings retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid term filter"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /offerings [get]
func (c *OfferingController) ListOfferings(ctx *gin.Context) {
	var term *models.Term
	semester := ctx.Query("semester")
	schoolYear := ctx.Query("schoolYear")
	if semester != "" || schoolYear != "" {
		if semester == "" || schoolYear == "" {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Term filter needs both semester and schoolYear")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		term = &models.Term{Semester: models.Semester(semester), SchoolYear: schoolYear}
	}

	offerings, err := c.offeringService.List(ctx, term)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      offerings,
		Timestamp: time.Now(),
	})
}

// UpdateOffering updates an existing offering
// @Summary Update an offering
// @Description Re-assigns an offering, replaces its schedule and reconciles enrollment. The offering code never changes.
// @Tags offerings
// @Accept json
// @Produce json
// @Param id path int true "Offering ID"
// @Param request body dto.UpdateOfferingRequest true "Updated offering information"
// @Success 200 {object} dto.APIResponse{data=dto.OfferingResponse} "Offering updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.ErrorResponse "Offering, teacher, program or student not found"
// @Failure 409 {object} dto.ErrorResponse "Schedule conflict or retired offering"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /offerings/{id} [put]
func (c *OfferingController) UpdateOffering(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateOfferingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid offering data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	offering, err := c.offeringService.Update(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      offering,
		Timestamp: time.Now(),
	})
}

// RetireOffering retires an offering
// @Summary Retire an offering
// @Description Marks an offering retired: it stops accepting enrollment and drops out of conflict checks, but its ledger stays editable
// @Tags offerings
// @Accept json
// @Produce json
// @Param id path int true "Offering ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Offering retired"
// @Failure 400 {object} dto.ErrorResponse "Invalid offering ID"
// @Failure 404 {object} dto.ErrorResponse "Offering not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /offerings/{id}/retire [post]
func (c *OfferingController) RetireOffering(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.offeringService.Retire(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Offering retired"},
		Timestamp: time.Now(),
	})
}

// DeleteOffering deletes an offering
// @Summary Delete an offering
// @Description Deletes an offering with its meetings and ledger rows. Refused when grades exist unless force=true.
// @Tags offerings
// @Accept json
// @Produce json
// @Param id path int true "Offering ID"
// @Param force query bool false "Delete even when scores are recorded"
// @Success 204 "Offering deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid offering ID"
// @Failure 404 {object} dto.ErrorResponse "Offering not found"
// @Failure 409 {object} dto.ErrorResponse "Offering has recorded scores"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /offerings/{id} [delete]
func (c *OfferingController) DeleteOffering(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	force := ctx.Query("force") == "true"

	if err := c.offeringService.Delete(ctx, id, force); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
