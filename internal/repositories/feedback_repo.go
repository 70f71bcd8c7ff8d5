package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"feedbackapi/internal/models/db_models"
	"feedbackapi/pkg/utils"
)

type FeedbackRepositoryInterface interface {
	CreateFeedback(ctx context.Context, feedback *db_models.Feedback) error
	ListFeedbackByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Feedback, error)
	FindFeedbackByID(ctx context.Context, id uuid.UUID) (*db_models.Feedback, error)
	DeleteFeedback(ctx context.Context, id uuid.UUID) (int64, error)
}

type FeedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

func (r *FeedbackRepository) CreateFeedback(ctx context.Context, feedback *db_models.Feedback) error {
	err := r.db.WithContext(ctx).Create(feedback).Error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return fmt.Errorf("%w: %s", utils.ErrUserNotFound, feedback.UserID)
	}
	return err
}

// ListFeedbackByUser returns the user's feedback, newest first.
func (r *FeedbackRepository) ListFeedbackByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Feedback, error) {
	var feedbacks []db_models.Feedback
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id").
		Find(&feedbacks).Error
	return feedbacks, err
}

func (r *FeedbackRepository) FindFeedbackByID(ctx context.Context, id uuid.UUID) (*db_models.Feedback, error) {
	var feedback db_models.Feedback
	err := r.db.WithContext(ctx).First(&feedback, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &feedback, nil
}

// DeleteFeedback removes the row in one statement and reports how many rows went away.
func (r *FeedbackRepository) DeleteFeedback(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&db_models.Feedback{})
	return res.RowsAffected, res.Error
}
