package dto

import "github.com/google/uuid"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CriarCentroTreinamentoRequest struct {
	Nome         string `json:"nome"         validate:"required,max=20" example:"CT King"`
	Endereco     string `json:"endereco"     validate:"required,max=60" example:"Rua 1, 123"`
	Proprietario string `json:"proprietario" validate:"required,max=30" example:"João"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CentroTreinamentoResponse struct {
	ID           uuid.UUID `json:"id"`
	Nome         string    `json:"nome"`
	Endereco     string    `json:"endereco"`
	Proprietario string    `json:"proprietario"`
}
