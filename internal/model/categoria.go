package model

import (
	"github.com/google/uuid"
)

// Categoria is a competition/skill classification an athlete belongs to.
type Categoria struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Nome string    `gorm:"size:50;uniqueIndex;not null"`
}

// TableName overrides GORM's default pluralization for Portuguese names.
func (Categoria) TableName() string { return "categorias" }
