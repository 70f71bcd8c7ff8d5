package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"feedbackapi/internal/models/request_models"
	"feedbackapi/internal/models/response_models"
	"feedbackapi/internal/services"
	"feedbackapi/pkg/utils"
)

type FeedbackController struct {
	feedbackService services.FeedbackServiceInterface
	logger          *zap.Logger
}

func NewFeedbackController(feedbackService services.FeedbackServiceInterface, logger *zap.Logger) *FeedbackController {
	return &FeedbackController{feedbackService: feedbackService, logger: logger}
}

// RegisterRoutes mounts the feedback endpoints on group (normally /api/feedback).
func (f *FeedbackController) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("/user", f.UpsertUser)
	group.GET("/:userId", f.ListFeedbackForUser)
	group.POST("", f.CreateFeedback)
	group.POST("/", f.CreateFeedback)
	group.DELETE("/:id", f.DeleteFeedback)
}

// UpsertUser godoc
// @Summary Create or update a user
// @Description Creates the user or updates name/description of the user with the same email
// @Tags Feedback
// @Accept json
// @Produce json
// @Param request body request_models.UpsertUserRequest true "User payload"
// @Success 200 {object} response_models.UpsertUserResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/feedback/user [post]
func (f *FeedbackController) UpsertUser(c *gin.Context) {
	var req request_models.UpsertUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, err := f.feedbackService.UpsertUser(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, f.logger, err, "Error creating or updating user")
		return
	}

	utils.RespondJSON(c, http.StatusOK, response_models.UpsertUserResponse{
		Message: "User created or updated successfully",
		User:    *user,
	})
}

// ListFeedbackForUser godoc
// @Summary List a user's feedback
// @Description Feedback for the user, newest first
// @Tags Feedback
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {array} db_models.Feedback
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/feedback/{userId} [get]
func (f *FeedbackController) ListFeedbackForUser(c *gin.Context) {
	feedbacks, err := f.feedbackService.ListFeedbackForUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		utils.HandleServiceError(c, f.logger, err, "Error fetching feedback")
		return
	}

	utils.RespondJSON(c, http.StatusOK, feedbacks)
}

// CreateFeedback godoc
// @Summary Add feedback
// @Description Add a rating (1-5) and a comment for a user
// @Tags Feedback
// @Accept json
// @Produce json
// @Param request body request_models.CreateFeedbackRequest true "Feedback payload"
// @Success 201 {object} db_models.Feedback
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/feedback/ [post]
func (f *FeedbackController) CreateFeedback(c *gin.Context) {
	var req request_models.CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	feedback, err := f.feedbackService.CreateFeedback(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, f.logger, err, "Error creating feedback")
		return
	}

	utils.RespondJSON(c, http.StatusCreated, feedback)
}

// DeleteFeedback godoc
// @Summary Delete feedback
// @Tags Feedback
// @Produce json
// @Param id path string true "Feedback ID"
// @Success 200 {object} utils.MessageResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/feedback/{id} [delete]
func (f *FeedbackController) DeleteFeedback(c *gin.Context) {
	if err := f.feedbackService.DeleteFeedback(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, f.logger, err, "Error deleting feedback")
		return
	}

	utils.RespondMessage(c, http.StatusOK, "Feedback deleted successfully")
}
