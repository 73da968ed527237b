package model

import (
	"github.com/google/uuid"
)

// CentroTreinamento is a physical facility athletes are affiliated with.
type CentroTreinamento struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Nome         string    `gorm:"size:20;uniqueIndex;not null"`
	Endereco     string    `gorm:"size:60;not null"`
	Proprietario string    `gorm:"size:30;not null"`
}

func (CentroTreinamento) TableName() string { return "centros_treinamento" }
