package dto

import "github.com/google/uuid"

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CriarCategoriaRequest struct {
	Nome string `json:"nome" validate:"required,max=50" example:"Scale"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type CategoriaResponse struct {
	ID   uuid.UUID `json:"id"`
	Nome string    `json:"nome"`
}
