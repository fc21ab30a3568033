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

// ScheduleController handles schedule-related operations
type ScheduleController struct {
	scheduleService services.ScheduleService
}

// NewScheduleController creates a new ScheduleController
func NewScheduleController(scheduleService services.ScheduleService) *ScheduleController {
	return &ScheduleController{
		scheduleService: scheduleService,
	}
}

// CreateSchedule handles schedule creation
// @Summary Create a new schedule
// @Description Persists a weekly plan; when userId is omitted the schedule is owned by the fallback user
// @Tags schedules
// @Accept json
// @Produce json
// @Param request body dto.CreateScheduleRequest true "Schedule information"
// @Success 201 {object} dto.APIResponse{data=models.Schedule} "Schedule created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedules [post]
func (c *ScheduleController) CreateSchedule(ctx *gin.Context) {
	var req dto.CreateScheduleRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	schedule := req.ToModel()
	if err := c.scheduleService.CreateSchedule(ctx, schedule); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      schedule,
		Timestamp: time.Now(),
	})
}

// GetAllSchedules retrieves schedules, optionally filtered by user
// @Summary List schedules
// @Description Retrieves all schedules, or only one user's when userId is given
// @Tags schedules
// @Accept json
// @Produce json
// @Param userId query int false "Filter by owning user ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Schedule} "Schedules retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedules [get]
func (c *ScheduleController) GetAllSchedules(ctx *gin.Context) {
	var (
		schedules []*models.Schedule
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
		schedules, err = c.scheduleService.GetSchedulesByUserID(ctx, userID)
	} else {
		schedules, err = c.scheduleService.GetAllSchedules(ctx)
	}

	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      schedules,
		Timestamp: time.Now(),
	})
}

// UpdateSchedule updates an existing schedule
// @Summary Update a schedule
// @Description Replaces a schedule's name, saved flag, display metadata and subject list
// @Tags schedules
// @Accept json
// @Produce json
// @Param id path int true "Schedule ID"
// @Param request body dto.UpdateScheduleRequest true "Updated schedule information"
// @Success 200 {object} dto.APIResponse{data=models.Schedule} "Schedule updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.ErrorResponse "Schedule not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedules/{id} [put]
func (c *ScheduleController) UpdateSchedule(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid schedule ID")
		errorDetail = errorDetail.WithDetails("Schedule ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.UpdateScheduleRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	schedule, err := c.scheduleService.UpdateSchedule(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      schedule,
		Timestamp: time.Now(),
	})
}

// DeleteSchedule deletes a schedule
// @Summary Delete a schedule
// @Description Deletes a schedule by ID; deleting an already-gone schedule reports not-found in the message rather than failing
// @Tags schedules
// @Accept json
// @Produce json
// @Param id path int true "Schedule ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Delete result"
// @Failure 400 {object} dto.ErrorResponse "Invalid schedule ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedules/{id} [delete]
func (c *ScheduleController) DeleteSchedule(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid schedule ID")
		errorDetail = errorDetail.WithDetails("Schedule ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	found, err := c.scheduleService.DeleteSchedule(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	message := fmt.Sprintf("Schedule %d does not exist", id)
	if found {
		message = fmt.Sprintf("Schedule %d is successfully deleted", id)
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: message},
		Timestamp: time.Now(),
	})
}
