package dto

import (
	"time"

	"github.com/google/uuid"
)

// ─── Shared pieces ───────────────────────────────────────────────────────────

// CategoriaRef identifies a category by its unique name.
type CategoriaRef struct {
	Nome string `json:"nome" validate:"required,max=50" example:"Scale"`
}

// CentroTreinamentoRef identifies a training center by its unique name.
type CentroTreinamentoRef struct {
	Nome string `json:"nome" validate:"required,max=20" example:"CT King"`
}

// Identificacao holds the fields the system generates for every athlete.
type Identificacao struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

// Numeric fields are pointers so that a missing value is told apart from zero.
type CriarAtletaRequest struct {
	Nome              string               `json:"nome"               validate:"required,max=100" example:"João da Silva"`
	CPF               string               `json:"cpf"                validate:"required,max=11" example:"12345678900"`
	Idade             *int                 `json:"idade"              validate:"required,gte=0" example:"25"`
	Peso              *float64             `json:"peso"               validate:"required,gt=0" example:"75.5"`
	Altura            *float64             `json:"altura"             validate:"required,gt=0" example:"1.75"`
	Sexo              string               `json:"sexo"               validate:"required,max=1" example:"M"`
	Categoria         CategoriaRef         `json:"categoria"`
	CentroTreinamento CentroTreinamentoRef `json:"centro_treinamento"`
}

// AtualizarAtletaRequest is a partial update: nil fields are left untouched.
type AtualizarAtletaRequest struct {
	Nome   *string  `json:"nome"   validate:"omitnil,min=1,max=100"`
	Idade  *int     `json:"idade"  validate:"omitnil,gte=0"`
	Peso   *float64 `json:"peso"   validate:"omitnil,gt=0"`
	Altura *float64 `json:"altura" validate:"omitnil,gt=0"`
	Sexo   *string  `json:"sexo"   validate:"omitnil,len=1"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

// AtletaFilter selects athletes by at most one criterion.
// Precedence: ID, then CPF, then a case-insensitive substring of Nome.
type AtletaFilter struct {
	ID   string `form:"id"   validate:"omitempty,uuid"`
	CPF  string `form:"cpf"  validate:"omitempty,max=11"`
	Nome string `form:"nome" validate:"omitempty,max=100"`
}

// Vazio reports whether no criterion was supplied.
func (f AtletaFilter) Vazio() bool {
	return f.ID == "" && f.CPF == "" && f.Nome == ""
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type AtletaResponse struct {
	Identificacao
	Nome              string               `json:"nome"`
	CPF               string               `json:"cpf"`
	Idade             int                  `json:"idade"`
	Peso              float64              `json:"peso"`
	Altura            float64              `json:"altura"`
	Sexo              string               `json:"sexo"`
	Categoria         CategoriaRef         `json:"categoria"`
	CentroTreinamento CentroTreinamentoRef `json:"centro_treinamento"`
}
