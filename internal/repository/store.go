package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store groups the repositories that share one database session.
// Services open a transaction with Transaction and use the Store passed to fn
// for every read and write of the request, so all of them commit or roll back together.
type Store interface {
	Categorias() CategoriaRepository
	CentrosTreinamento() CentroTreinamentoRepository
	Atletas() AtletaRepository

	// Transaction runs fn inside a database transaction. Any error returned by fn
	// (or a panic) rolls the transaction back.
	Transaction(ctx context.Context, fn func(tx Store) error) error
}

type gormStore struct{ db *gorm.DB }

func NewStore(db *gorm.DB) Store { return &gormStore{db: db} }

func (s *gormStore) Categorias() CategoriaRepository { return NewCategoriaRepository(s.db) }

func (s *gormStore) CentrosTreinamento() CentroTreinamentoRepository {
	return NewCentroTreinamentoRepository(s.db)
}

func (s *gormStore) Atletas() AtletaRepository { return NewAtletaRepository(s.db) }

func (s *gormStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}
