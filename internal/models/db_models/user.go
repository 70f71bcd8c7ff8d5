package db_models

type User struct {
	BaseModel
	Email       string  `gorm:"type:varchar(320);not null;uniqueIndex" json:"email"`
	Name        string  `gorm:"type:varchar(255);not null" json:"name"`
	Description *string `gorm:"type:text" json:"description"`
}
