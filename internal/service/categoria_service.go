package service

import (
	"context"
	"errors"
	"fmt"

	"workoutapi/internal/dto"
	"workoutapi/internal/model"
	"workoutapi/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoriaService defines business operations for athlete categories.
type CategoriaService interface {
	Criar(ctx context.Context, req dto.CriarCategoriaRequest) (*dto.CategoriaResponse, error)
	Listar(ctx context.Context, page dto.PageParams) (*dto.Page[dto.CategoriaResponse], error)
	ObterPorID(ctx context.Context, id uuid.UUID) (*dto.CategoriaResponse, error)
}

type categoriaService struct {
	store repository.Store
}

func NewCategoriaService(store repository.Store) CategoriaService {
	return &categoriaService{store: store}
}

// mapCategoria converts a model to a DTO response.
func mapCategoria(c model.Categoria) dto.CategoriaResponse {
	return dto.CategoriaResponse{ID: c.ID, Nome: c.Nome}
}

func (s *categoriaService) Criar(ctx context.Context, req dto.CriarCategoriaRequest) (*dto.CategoriaResponse, error) {
	c := &model.Categoria{ID: uuid.New(), Nome: req.Nome}

	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		_, err := tx.Categorias().FindByNome(ctx, req.Nome)
		if err == nil {
			return conflictError("Já existe uma categoria com o nome %s", req.Nome)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("buscar categoria por nome: %w", err)
		}

		if err := tx.Categorias().Create(ctx, c); err != nil {
			if isDuplicateKey(err) {
				return conflictError("Já existe uma categoria com o nome %s", req.Nome)
			}
			return fmt.Errorf("inserir categoria: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := mapCategoria(*c)
	return &resp, nil
}

func (s *categoriaService) Listar(ctx context.Context, page dto.PageParams) (*dto.Page[dto.CategoriaResponse], error) {
	var list []model.Categoria
	var total int64
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		var err error
		list, total, err = tx.Categorias().List(ctx, page)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("listar categorias: %w", err)
	}

	items := make([]dto.CategoriaResponse, 0, len(list))
	for _, c := range list {
		items = append(items, mapCategoria(c))
	}
	result := dto.NewPage(items, total, page)
	return &result, nil
}

func (s *categoriaService) ObterPorID(ctx context.Context, id uuid.UUID) (*dto.CategoriaResponse, error) {
	var c *model.Categoria
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		var err error
		c, err = tx.Categorias().FindByID(ctx, id)
		return err
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundError("Categoria não encontrada no id: %s", id)
		}
		return nil, fmt.Errorf("buscar categoria: %w", err)
	}

	resp := mapCategoria(*c)
	return &resp, nil
}
