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

// EmotionController handles emotion check-ins, tallies and histories
type EmotionController struct {
	emotionService *services.EmotionService
}

// NewEmotionController creates a new EmotionController
func NewEmotionController(emotionService *services.EmotionService) *EmotionController {
	return &EmotionController{emotionService: emotionService}
}

// RecordEmotion handles an emotion check-in for one student
// @Summary Record an emotion
// @Description Stores one emotion check-in for a student in a class
// @Tags emotions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param classId path int true "Class ID"
// @Param studentId path int true "Student ID"
// @Param request body dto.RecordEmotionRequest true "Emotion and date"
// @Success 201 {object} dto.APIResponse{data=models.Emotion} "Emotion recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid emotion category or date"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Student not found in class"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /emotions/{classId}/student/{studentId} [post]
func (c *EmotionController) RecordEmotion(ctx *gin.Context) {
	classID, err := strconv.ParseInt(ctx.Param("classId"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid class ID")
		errorDetail = errorDetail.WithDetails("Class ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	studentID, err := strconv.ParseInt(ctx.Param("studentId"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student ID")
		errorDetail = errorDetail.WithDetails("Student ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.RecordEmotionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	emotion, err := c.emotionService.RecordEmotion(ctx, classID, studentID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      emotion,
		Message:   "Emotion recorded",
		Timestamp: time.Now(),
	})
}

// TallyVotes counts check-ins per emotion label for a class and date
// @Summary Tally votes
// @Description Counts emotion check-ins per label for one class on one date
// @Tags emotions
// @Produce json
// @Security BearerAuth
// @Param date query string true "Date in YYYY-MM-DD format"
// @Param classId query int true "Class ID"
// @Success 200 {object} dto.APIResponse{data=dto.VotesResponse} "Votes tallied"
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid parameters"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Class not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /emotions [get]
func (c *EmotionController) TallyVotes(ctx *gin.Context) {
	date := ctx.Query("date")
	if date == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "date is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	classID, err := strconv.ParseInt(ctx.Query("classId"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid class ID")
		errorDetail = errorDetail.WithDetails("classId query parameter must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	votes, err := c.emotionService.TallyVotes(ctx, classID, date)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      votes,
		Timestamp: time.Now(),
	})
}

// StudentHistory returns a student's check-ins within one class
// @Summary Get student history
// @Description Returns a student's emotion records in a class, oldest first
// @Tags emotions
// @Produce json
// @Security BearerAuth
// @Param studentId path int true "Student ID"
// @Param classId query int true "Class ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.HistoryEntry} "History retrieved"
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid parameters"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Student not found in class"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /emotions/student/{studentId} [get]
func (c *EmotionController) StudentHistory(ctx *gin.Context) {
	studentID, err := strconv.ParseInt(ctx.Param("studentId"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student ID")
		errorDetail = errorDetail.WithDetails("Student ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	classID, err := strconv.ParseInt(ctx.Query("classId"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid class ID")
		errorDetail = errorDetail.WithDetails("classId query parameter must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	history, err := c.emotionService.StudentHistory(ctx, classID, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      history,
		Timestamp: time.Now(),
	})
}
