package model

import (
	"time"

	"github.com/google/uuid"
)

// Atleta references exactly one Categoria and one CentroTreinamento.
// The references are resolved by name when the athlete is created and stored as FKs.
type Atleta struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Nome      string    `gorm:"size:100;index;not null"`
	CPF       string    `gorm:"column:cpf;size:11;uniqueIndex;not null"`
	Idade     int       `gorm:"not null"`
	Peso      float64   `gorm:"not null"`
	Altura    float64   `gorm:"not null"`
	Sexo      string    `gorm:"size:1;not null"`
	CreatedAt time.Time `gorm:"not null"`

	CategoriaID         uuid.UUID `gorm:"type:uuid;index;not null"`
	CentroTreinamentoID uuid.UUID `gorm:"type:uuid;index;not null"`

	Categoria         Categoria         `gorm:"foreignKey:CategoriaID"`
	CentroTreinamento CentroTreinamento `gorm:"foreignKey:CentroTreinamentoID"`
}

func (Atleta) TableName() string { return "atletas" }
