package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/appdevg5/schedease/internal/app/models"
	"github.com/appdevg5/schedease/internal/app/models/dto"
	"github.com/appdevg5/schedease/internal/app/services"
	"github.com/appdevg5/schedease/internal/middleware"
)

// OfferingController handles offering-related operations
type OfferingController struct {
	offeringService services.OfferingService
}

// NewOfferingController creates a new OfferingController
func NewOfferingController(offeringService services.OfferingService) *OfferingController {
	return &OfferingController{
		offeringService: offeringService,
	}
}

// CreateOffering handles offering creation
// @Summary Create a new offering
// @Description Persists a candidate course offering for a user
// @Tags offerings
// @Accept json
// @Produce json
// @Param request body dto.CreateOfferingRequest true "Offering information"
// @Success 201 {object} dto.APIResponse{data=models.Offering} "Offering created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /offerings [post]
func (c *OfferingController) CreateOffering(ctx *gin.Context) {
	var req dto.CreateOfferingRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	offering := req.ToModel()
	if err := c.offeringService.CreateOffering(ctx, offering); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      offering,
		Timestamp: time.Now(),
	})
}

// GetAllOfferings retrieves offerings, optionally filtered by user
// @Summary List offerings
// @Description Retrieves all offerings, or only one user's when userId is given
// @Tags offerings
// @Accept json
// @Produce json
// @Param userId query int false "Filter by owning user ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Offering} "Offerings retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /offerings [get]
func (c *OfferingController) GetAllOfferings(ctx *gin.Context) {
	var (
		offerings []*models.Offering
		err       error
	)

	if userIDStr := ctx.Query("userId"); userIDStr != "" {
		userID, parseErr := strconv.ParseInt(userIDStr, 10, 64)
		if parseErr != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid user ID")
			errorDetail = errorDetail.WithDetails("User ID must be a valid number")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		offerings, err = c.offeringService.GetOfferingsByUserID(ctx, userID)
	} else {
		offerings, err = c.offeringService.GetAllOfferings(ctx)
	}

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
// @Description Partially updates an offering; absent fields keep their stored values
// @Tags offerings
// @Accept json
// @Produce json
// @Param id path int true "Offering ID"
// @Param request body dto.UpdateOfferingRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Offering} "Offering updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.ErrorResponse "Offering not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /offerings/{id} [put]
func (c *OfferingController) UpdateOffering(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid offering ID")
		errorDetail = errorDetail.WithDetails("Offering ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.UpdateOfferingRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	offering, err := c.offeringService.UpdateOffering(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      offering,
		Timestamp: time.Now(),
	})
}

// DeleteOffering deletes an offering
// @Summary Delete an offering
// @Description Deletes an offering by ID; deleting an already-gone offering reports not-found in the message rather than failing
// @Tags offerings
// @Accept json
// @Produce json
// @Param id path int true "Offering ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Delete result"
// @Failure 400 {object} dto.ErrorResponse "Invalid offering ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /offerings/{id} [delete]
func (c *OfferingController) DeleteOffering(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid offering ID")
		errorDetail = errorDetail.WithDetails("Offering ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	found, err := c.offeringService.DeleteOffering(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	message := fmt.Sprintf("Offering with ID %d does not exist!", id)
	if found {
		message = fmt.Sprintf("Offering with ID %d is successfully deleted!", id)
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: message},
		Timestamp: time.Now(),
	})
}

// ClearUserOfferings bulk-deletes a user's unprotected offerings
// @Summary Clear a user's offerings
// @Description Deletes all of a user's offerings except those referenced by one of the user's schedules
// @Tags offerings
// @Accept json
// @Produce json
// @Param userId query int true "Owning user ID"
// @Success 200 {object} dto.APIResponse{data=dto.ClearDataResponse} "Clear result with deleted and preserved counts"
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /offerings/clear [delete]
func (c *OfferingController) ClearUserOfferings(ctx *gin.Context) {
	userIDStr := ctx.Query("userId")
	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid user ID")
		errorDetail = errorDetail.WithDetails("User ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	report, err := c.offeringService.ClearUserOfferings(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.ClearDataResponse{
			Message:        clearMessage(report, userID),
			Outcome:        report.Outcome,
			DeletedCount:   report.DeletedCount,
			ProtectedCount: report.ProtectedCount,
		},
		Timestamp: time.Now(),
	})
}

// clearMessage renders the human-readable summary of a clear report.
func clearMessage(report *models.ClearReport, userID int64) string {
	switch report.Outcome {
	case models.ClearOutcomeNoData:
		return fmt.Sprintf("No data found for user ID %d", userID)
	case models.ClearOutcomeAllProtected:
		return "No subjects to delete (all subjects are in saved schedules)"
	default:
		if report.ProtectedCount > 0 {
			return fmt.Sprintf("Successfully deleted %d items. %d subjects preserved (in saved schedules)",
				report.DeletedCount, report.ProtectedCount)
		}
		return fmt.Sprintf("Successfully deleted %d items for user ID %d", report.DeletedCount, userID)
	}
}
