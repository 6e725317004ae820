package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sentimente/backend/internal/app/models/dto"
	"github.com/sentimente/backend/internal/app/services"
	"github.com/sentimente/backend/internal/middleware"
)

// DateController handles calendar marker operations
type DateController struct {
	dateService *services.DateService
}

// NewDateController creates a new DateController
func NewDateController(dateService *services.DateService) *DateController {
	return &DateController{dateService: dateService}
}

// ListDates returns the caller's markers for one class
// @Summary List date markers
// @Description Returns the authenticated teacher's markers for a class
// @Tags dates
// @Produce json
// @Security BearerAuth
// @Param classId query int true "Class ID"
// @Success 200 {object} dto.APIResponse{data=[]models.ClassDate} "Markers retrieved"
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid class ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /dates [get]
func (c *DateController) ListDates(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	classID, err := strconv.ParseInt(ctx.Query("classId"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid class ID")
		errorDetail = errorDetail.WithDetails("classId query parameter must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	dates, err := c.dateService.ListDates(ctx, userID, classID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dates,
		Timestamp: time.Now(),
	})
}

// AddDate creates a calendar marker
// @Summary Add a date marker
// @Description Creates a calendar marker for a class, owned by the caller
// @Tags dates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AddDateRequest true "Date and class"
// @Success 201 {object} dto.APIResponse{data=models.ClassDate} "Marker created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Class not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /dates [post]
func (c *DateController) AddDate(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.AddDateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	date, err := c.dateService.AddDate(ctx, userID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      date,
		Message:   "Date marker added",
		Timestamp: time.Now(),
	})
}

// DeleteDate removes one of the caller's markers
// @Summary Delete a date marker
// @Description Deletes a marker owned by the authenticated teacher
// @Tags dates
// @Produce json
// @Security BearerAuth
// @Param id path int true "Marker ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Marker deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid marker ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Marker not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /dates/{id} [delete]
func (c *DateController) DeleteDate(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid date ID")
		errorDetail = errorDetail.WithDetails("Date ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.dateService.DeleteDate(ctx, userID, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Date marker deleted"},
		Timestamp: time.Now(),
	})
}
