package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Feedback struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_feedbacks_user_created,priority:1" json:"userId"` // owner of the feedback
	Content   string    `gorm:"type:text;not null" json:"content"`
	Rating    int       `gorm:"type:int;not null;check:rating >= 1 AND rating <= 5" json:"rating"` // Rating between 1 and 5
	GivenBy   string    `gorm:"type:varchar(255);not null" json:"givenBy"`                           // who wrote it, may differ from the owner
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_feedbacks_user_created,priority:2,sort:desc" json:"createdAt"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (f *Feedback) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
