package content

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Animation is a persisted generation plus the scene objects the client arranged around it.
type Animation struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Prompt        string `gorm:"column:prompt;type:text;not null" json:"prompt"`
	Subject       string `gorm:"column:subject;not null;default:'default';index" json:"subject"`
	AnimationType string `gorm:"column:animation_type;not null" json:"animation_type"`
	PrimitiveType string `gorm:"column:primitive_type;not null" json:"primitive_type"`
	GeneratedText string `gorm:"column:generated_text;type:text;not null" json:"generated_text"`

	Parameters datatypes.JSON `gorm:"column:parameters" json:"parameters,omitempty"`
	Context    datatypes.JSON `gorm:"column:context" json:"context,omitempty"`
	Objects    datatypes.JSON `gorm:"column:objects" json:"objects,omitempty"`

	CreatedAt time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Animation) TableName() string { return "animation" }
