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

type CentroTreinamentoService interface {
	Criar(ctx context.Context, req dto.CriarCentroTreinamentoRequest) (*dto.CentroTreinamentoResponse, error)
	Listar(ctx context.Context, page dto.PageParams) (*dto.Page[dto.CentroTreinamentoResponse], error)
	ObterPorID(ctx context.Context, id uuid.UUID) (*dto.CentroTreinamentoResponse, error)
}

type centroTreinamentoService struct {
	store repository.Store
}

func NewCentroTreinamentoService(store repository.Store) CentroTreinamentoService {
	return &centroTreinamentoService{store: store}
}

func mapCentroTreinamento(c model.CentroTreinamento) dto.CentroTreinamentoResponse {
	return dto.CentroTreinamentoResponse{
		ID:           c.ID,
		Nome:         c.Nome,
		Endereco:     c.Endereco,
		Proprietario: c.Proprietario,
	}
}

func (s *centroTreinamentoService) Criar(ctx context.Context, req dto.CriarCentroTreinamentoRequest) (*dto.CentroTreinamentoResponse, error) {
	c := &model.CentroTreinamento{
		ID:           uuid.New(),
		Nome:         req.Nome,
		Endereco:     req.Endereco,
		Proprietario: req.Proprietario,
	}

	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		_, err := tx.CentrosTreinamento().FindByNome(ctx, req.Nome)
		if err == nil {
			return conflictError("Já existe um centro de treinamento com o nome %s", req.Nome)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("buscar centro de treinamento por nome: %w", err)
		}

		if err := tx.CentrosTreinamento().Create(ctx, c); err != nil {
			if isDuplicateKey(err) {
				return conflictError("Já existe um centro de treinamento com o nome %s", req.Nome)
			}
			return fmt.Errorf("inserir centro de treinamento: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := mapCentroTreinamento(*c)
	return &resp, nil
}

func (s *centroTreinamentoService) Listar(ctx context.Context, page dto.PageParams) (*dto.Page[dto.CentroTreinamentoResponse], error) {
	var list []model.CentroTreinamento
	var total int64
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		var err error
		list, total, err = tx.CentrosTreinamento().List(ctx, page)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("listar centros de treinamento: %w", err)
	}

	items := make([]dto.CentroTreinamentoResponse, 0, len(list))
	for _, c := range list {
		items = append(items, mapCentroTreinamento(c))
	}
	result := dto.NewPage(items, total, page)
	return &result, nil
}

func (s *centroTreinamentoService) ObterPorID(ctx context.Context, id uuid.UUID) (*dto.CentroTreinamentoResponse, error) {
	var c *model.CentroTreinamento
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		var err error
		c, err = tx.CentrosTreinamento().FindByID(ctx, id)
		return err
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundError("Centro de treinamento não encontrado no id: %s", id)
		}
		return nil, fmt.Errorf("buscar centro de treinamento: %w", err)
	}

	resp := mapCentroTreinamento(*c)
	return &resp, nil
}
