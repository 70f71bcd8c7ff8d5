package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feedbackapi/internal/models/db_models"
	"feedbackapi/internal/testutil"
)

func strPtr(s string) *string { return &s }

func TestUserRepositoryUpsertCreates(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &db_models.User{Email: "a@x.com", Name: "Alice", Description: strPtr("first")}
	require.NoError(t, repo.Upsert(ctx, user))

	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, "Alice", user.Name)
	require.NotNil(t, user.Description)
	assert.Equal(t, "first", *user.Description)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestUserRepositoryUpsertUpdatesByEmail(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	first := &db_models.User{Email: "a@x.com", Name: "Alice", Description: strPtr("first")}
	require.NoError(t, repo.Upsert(ctx, first))

	second := &db_models.User{Email: "a@x.com", Name: "Alicia", Description: strPtr("second")}
	require.NoError(t, repo.Upsert(ctx, second))

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Alicia", second.Name)
	assert.Equal(t, "second", *second.Description)

	var count int64
	require.NoError(t, db.Model(&db_models.User{}).Where("email = ?", "a@x.com").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUserRepositoryUpsertKeepsDescriptionWhenOmitted(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &db_models.User{Email: "a@x.com", Name: "Alice", Description: strPtr("keep me")}))

	updated := &db_models.User{Email: "a@x.com", Name: "Alice B."}
	require.NoError(t, repo.Upsert(ctx, updated))

	assert.Equal(t, "Alice B.", updated.Name)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "keep me", *updated.Description)
}

func TestUserRepositoryExistsByID(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &db_models.User{Email: "a@x.com", Name: "Alice"}
	require.NoError(t, repo.Upsert(ctx, user))
	assert.Nil(t, user.Description)

	exists, err := repo.ExistsByID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByID(ctx, uuid.New())
	require.NoError(t, err)
	assert.False(t, exists)
}
