package services

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"feedbackapi/internal/models/db_models"
	"feedbackapi/internal/models/request_models"
	"feedbackapi/internal/repositories"
	"feedbackapi/pkg/utils"
)

const (
	MinRating = 1
	MaxRating = 5
)

var tracer = otel.Tracer("feedbackapi/internal/services")

type FeedbackServiceInterface interface {
	UpsertUser(ctx context.Context, req request_models.UpsertUserRequest) (*db_models.User, error)
	ListFeedbackForUser(ctx context.Context, userID string) ([]db_models.Feedback, error)
	CreateFeedback(ctx context.Context, req request_models.CreateFeedbackRequest) (*db_models.Feedback, error)
	DeleteFeedback(ctx context.Context, id string) error
}

type FeedbackService struct {
	userRepo     repositories.UserRepository
	feedbackRepo repositories.FeedbackRepositoryInterface
}

func NewFeedbackService(userRepo repositories.UserRepository, feedbackRepo repositories.FeedbackRepositoryInterface) FeedbackServiceInterface {
	return &FeedbackService{
		userRepo:     userRepo,
		feedbackRepo: feedbackRepo,
	}
}

func (s *FeedbackService) UpsertUser(ctx context.Context, req request_models.UpsertUserRequest) (*db_models.User, error) {
	ctx, span := tracer.Start(ctx, "FeedbackService.UpsertUser")
	defer span.End()

	email := strings.TrimSpace(req.Email)
	name := strings.TrimSpace(req.Name)
	if email == "" || name == "" {
		return nil, utils.ErrMissingUserFields
	}

	user := &db_models.User{
		Email:       email,
		Name:        name,
		Description: req.Description,
	}
	if err := s.userRepo.Upsert(ctx, user); err != nil {
		return nil, dbError(span, err)
	}

	span.SetAttributes(attribute.String("user.id", user.ID.String()))
	return user, nil
}

// ListFeedbackForUser returns the user's feedback newest first. An empty
// history is reported as ErrNoFeedbackForUser rather than an empty slice.
func (s *FeedbackService) ListFeedbackForUser(ctx context.Context, userID string) ([]db_models.Feedback, error) {
	ctx, span := tracer.Start(ctx, "FeedbackService.ListFeedbackForUser")
	defer span.End()

	// A malformed id cannot own any row.
	id, err := parseID(userID)
	if err != nil {
		return nil, utils.ErrNoFeedbackForUser
	}
	span.SetAttributes(attribute.String("user.id", id.String()))

	feedbacks, err := s.feedbackRepo.ListFeedbackByUser(ctx, id)
	if err != nil {
		return nil, dbError(span, err)
	}
	if len(feedbacks) == 0 {
		return nil, utils.ErrNoFeedbackForUser
	}

	return feedbacks, nil
}

func (s *FeedbackService) CreateFeedback(ctx context.Context, req request_models.CreateFeedbackRequest) (*db_models.Feedback, error) {
	ctx, span := tracer.Start(ctx, "FeedbackService.CreateFeedback")
	defer span.End()

	content := strings.TrimSpace(req.Content)
	givenBy := strings.TrimSpace(req.GivenBy)
	if strings.TrimSpace(req.UserID) == "" || content == "" || req.Rating == nil || givenBy == "" {
		return nil, utils.ErrMissingFeedbackFields
	}

	if *req.Rating < MinRating || *req.Rating > MaxRating {
		return nil, utils.ErrRatingOutOfRange
	}
	if *req.Rating != math.Trunc(*req.Rating) {
		return nil, utils.ErrRatingNotInteger
	}
	rating := int(*req.Rating)

	userID, err := parseID(req.UserID)
	if err != nil {
		return nil, err
	}

	exists, err := s.userRepo.ExistsByID(ctx, userID)
	if err != nil {
		return nil, dbError(span, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", utils.ErrUserNotFound, userID)
	}

	feedback := &db_models.Feedback{
		UserID:  userID,
		Content: content,
		Rating:  rating,
		GivenBy: givenBy,
	}
	if err := s.feedbackRepo.CreateFeedback(ctx, feedback); err != nil {
		if utils.Kind(err) == utils.KindInvalidInput {
			return nil, err
		}
		return nil, dbError(span, err)
	}

	span.SetAttributes(attribute.String("feedback.id", feedback.ID.String()))
	return feedback, nil
}

func (s *FeedbackService) DeleteFeedback(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "FeedbackService.DeleteFeedback")
	defer span.End()

	feedbackID, err := parseID(id)
	if err != nil {
		return utils.ErrFeedbackNotFound
	}
	span.SetAttributes(attribute.String("feedback.id", feedbackID.String()))

	deleted, err := s.feedbackRepo.DeleteFeedback(ctx, feedbackID)
	if err != nil {
		return dbError(span, err)
	}
	if deleted == 0 {
		return utils.ErrFeedbackNotFound
	}

	return nil
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", utils.ErrInvalidID, raw)
	}
	return id, nil
}

func dbError(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
}
