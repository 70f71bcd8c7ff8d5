package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"feedbackapi/internal/models/db_models"
)

type UserRepository interface {
	Upsert(ctx context.Context, user *db_models.User) error
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		db: db,
	}
}

// Upsert inserts user or, when the email is already taken, updates its name
// (and description, if one was given) in the same statement. On return user
// holds the stored row.
func (u *userRepository) Upsert(ctx context.Context, user *db_models.User) error {
	updates := []string{"name", "updated_at"}
	if user.Description != nil {
		updates = append(updates, "description")
	}

	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoUpdates: clause.AssignmentColumns(updates),
		}).Create(user).Error
		if err != nil {
			return err
		}

		var stored db_models.User
		if err := tx.Where("email = ?", user.Email).First(&stored).Error; err != nil {
			return err
		}
		*user = stored
		return nil
	})
}

func (u *userRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := u.db.WithContext(ctx).
		Model(&db_models.User{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}
