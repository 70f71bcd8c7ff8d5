package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"feedbackapi/internal/models/db_models"
	"feedbackapi/internal/testutil"
)

func seedUser(t *testing.T, db *gorm.DB, email string) *db_models.User {
	t.Helper()
	user := &db_models.User{Email: email, Name: "Seed"}
	require.NoError(t, NewUserRepository(db).Upsert(context.Background(), user))
	return user
}

func TestFeedbackRepositoryCreate(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewFeedbackRepository(db)
	user := seedUser(t, db, "a@x.com")

	before := time.Now().Add(-time.Second)
	feedback := &db_models.Feedback{UserID: user.ID, Content: "Great", Rating: 5, GivenBy: "Bob"}
	require.NoError(t, repo.CreateFeedback(context.Background(), feedback))

	assert.NotEqual(t, uuid.Nil, feedback.ID)
	assert.False(t, feedback.CreatedAt.Before(before))

	stored, err := repo.FindFeedbackByID(context.Background(), feedback.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, 5, stored.Rating)
	assert.Equal(t, "Bob", stored.GivenBy)
	assert.Equal(t, user.ID, stored.UserID)
}

func TestFeedbackRepositoryRejectsRatingOutsideCheck(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewFeedbackRepository(db)
	user := seedUser(t, db, "a@x.com")

	err := repo.CreateFeedback(context.Background(), &db_models.Feedback{UserID: user.ID, Content: "x", Rating: 6, GivenBy: "Bob"})
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&db_models.Feedback{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestFeedbackRepositoryRejectsUnknownOwner(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewFeedbackRepository(db)

	err := repo.CreateFeedback(context.Background(), &db_models.Feedback{UserID: uuid.New(), Content: "x", Rating: 3, GivenBy: "Bob"})
	require.Error(t, err)
}

func TestFeedbackRepositoryListNewestFirst(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewFeedbackRepository(db)
	ctx := context.Background()
	owner := seedUser(t, db, "a@x.com")
	other := seedUser(t, db, "b@x.com")

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for i, content := range []string{"oldest", "middle", "newest"} {
		require.NoError(t, repo.CreateFeedback(ctx, &db_models.Feedback{
			UserID:    owner.ID,
			Content:   content,
			Rating:    i + 1,
			GivenBy:   "Bob",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}
	require.NoError(t, repo.CreateFeedback(ctx, &db_models.Feedback{UserID: other.ID, Content: "elsewhere", Rating: 4, GivenBy: "Eve"}))

	list, err := repo.ListFeedbackByUser(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "newest", list[0].Content)
	assert.Equal(t, "middle", list[1].Content)
	assert.Equal(t, "oldest", list[2].Content)

	empty, err := repo.ListFeedbackByUser(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestFeedbackRepositoryDelete(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewFeedbackRepository(db)
	ctx := context.Background()
	user := seedUser(t, db, "a@x.com")

	keep := &db_models.Feedback{UserID: user.ID, Content: "keep", Rating: 4, GivenBy: "Bob"}
	drop := &db_models.Feedback{UserID: user.ID, Content: "drop", Rating: 2, GivenBy: "Bob"}
	require.NoError(t, repo.CreateFeedback(ctx, keep))
	require.NoError(t, repo.CreateFeedback(ctx, drop))

	deleted, err := repo.DeleteFeedback(ctx, drop.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	gone, err := repo.FindFeedbackByID(ctx, drop.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	still, err := repo.FindFeedbackByID(ctx, keep.ID)
	require.NoError(t, err)
	assert.NotNil(t, still)

	deleted, err = repo.DeleteFeedback(ctx, drop.ID)
	require.NoError(t, err)
	assert.Zero(t, deleted)
}
