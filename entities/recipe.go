package entities

import (
	"time"

	"github.com/google/uuid"
)

type Recipe struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID         uuid.UUID `gorm:"index" json:"user_id"`
	RecipeName     string    `json:"recipe_name"`
	Ingredients    string    `json:"ingredients" gorm:"type:text"` // JSON-encoded []string
	Steps          string    `json:"steps" gorm:"type:text"`       // JSON-encoded []domain.Step
	ImageURL       string    `json:"image_url"`
	CookingStyle   string    `json:"cooking_style,omitempty"`
	ServingSize    int       `json:"serving_size"`
	Language       string    `json:"language"`
	DifficultyMode bool      `json:"difficulty_mode"`
	Theme          string    `json:"theme,omitempty"`
	CreatedAt      time.Time `gorm:"type:timestamp" json:"created_at"`

	User *User `gorm:"foreignKey:UserID"`
}
