package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"workoutapi/internal/dto"
	"workoutapi/internal/model"
	"workoutapi/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AtletaService interface {
	Criar(ctx context.Context, req dto.CriarAtletaRequest) (*dto.AtletaResponse, error)
	Listar(ctx context.Context, filter dto.AtletaFilter, page dto.PageParams) (*dto.Page[dto.AtletaResponse], error)
	Buscar(ctx context.Context, filter dto.AtletaFilter) (*dto.AtletaResponse, error)
	ObterPorID(ctx context.Context, id uuid.UUID) (*dto.AtletaResponse, error)
	Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarAtletaRequest) (*dto.AtletaResponse, error)
	Remover(ctx context.Context, id uuid.UUID) error
}

type atletaService struct {
	store repository.Store
	now   func() time.Time
}

func NewAtletaService(store repository.Store) AtletaService {
	return &atletaService{store: store, now: time.Now}
}

func mapAtleta(a model.Atleta) dto.AtletaResponse {
	return dto.AtletaResponse{
		Identificacao:     dto.Identificacao{ID: a.ID, CreatedAt: a.CreatedAt},
		Nome:              a.Nome,
		CPF:               a.CPF,
		Idade:             a.Idade,
		Peso:              a.Peso,
		Altura:            a.Altura,
		Sexo:              a.Sexo,
		Categoria:         dto.CategoriaRef{Nome: a.Categoria.Nome},
		CentroTreinamento: dto.CentroTreinamentoRef{Nome: a.CentroTreinamento.Nome},
	}
}

// ── Criar ─────────────────────────────────────────────────────────────────────
// One transaction:
//   1. resolve categoria and centro de treinamento by name (400 when missing)
//   2. reject a CPF that is already registered (303)
//   3. insert the athlete with the resolved foreign keys
// The response is built only after the commit succeeds.

func (s *atletaService) Criar(ctx context.Context, req dto.CriarAtletaRequest) (*dto.AtletaResponse, error) {
	a := &model.Atleta{
		ID:        uuid.New(),
		Nome:      req.Nome,
		CPF:       req.CPF,
		Idade:     *req.Idade,
		Peso:      *req.Peso,
		Altura:    *req.Altura,
		Sexo:      req.Sexo,
		CreatedAt: s.now().UTC().Truncate(time.Microsecond),
	}

	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		categoria, err := tx.Categorias().FindByNome(ctx, req.Categoria.Nome)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return validationError("A categoria %s não foi encontrada.", req.Categoria.Nome)
			}
			return fmt.Errorf("buscar categoria: %w", err)
		}

		centro, err := tx.CentrosTreinamento().FindByNome(ctx, req.CentroTreinamento.Nome)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return validationError("O centro de treinamento %s não foi encontrado.", req.CentroTreinamento.Nome)
			}
			return fmt.Errorf("buscar centro de treinamento: %w", err)
		}

		if _, err := tx.Atletas().FindByCPF(ctx, req.CPF); err == nil {
			return conflictError("Já existe um atleta cadastrado com o cpf: %s", req.CPF)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("buscar atleta por cpf: %w", err)
		}

		a.CategoriaID = categoria.ID
		a.CentroTreinamentoID = centro.ID
		if err := tx.Atletas().Create(ctx, a); err != nil {
			if isDuplicateKey(err) {
				return conflictError("Já existe um atleta cadastrado com o cpf: %s", req.CPF)
			}
			return fmt.Errorf("inserir atleta: %w", err)
		}
		a.Categoria = *categoria
		a.CentroTreinamento = *centro
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := mapAtleta(*a)
	return &resp, nil
}

// Listar returns an empty page, not an error, when nothing matches.
func (s *atletaService) Listar(ctx context.Context, filter dto.AtletaFilter, page dto.PageParams) (*dto.Page[dto.AtletaResponse], error) {
	var list []model.Atleta
	var total int64
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		var err error
		list, total, err = tx.Atletas().List(ctx, filter, page)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("listar atletas: %w", err)
	}

	items := make([]dto.AtletaResponse, 0, len(list))
	for _, a := range list {
		items = append(items, mapAtleta(a))
	}
	result := dto.NewPage(items, total, page)
	return &result, nil
}

func (s *atletaService) Buscar(ctx context.Context, filter dto.AtletaFilter) (*dto.AtletaResponse, error) {
	if filter.Vazio() {
		return nil, validationError("Informe ao menos um filtro: id, cpf ou nome.")
	}

	var a *model.Atleta
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		var err error
		a, err = tx.Atletas().FindOne(ctx, filter)
		return err
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundError("Atleta não encontrado.")
		}
		return nil, fmt.Errorf("buscar atleta: %w", err)
	}

	resp := mapAtleta(*a)
	return &resp, nil
}

func (s *atletaService) ObterPorID(ctx context.Context, id uuid.UUID) (*dto.AtletaResponse, error) {
	var a *model.Atleta
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		var err error
		a, err = tx.Atletas().FindByID(ctx, id)
		return err
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundError("Atleta não encontrado no id: %s", id)
		}
		return nil, fmt.Errorf("buscar atleta: %w", err)
	}

	resp := mapAtleta(*a)
	return &resp, nil
}

// Atualizar applies a partial update: only the fields present in req are written.
func (s *atletaService) Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarAtletaRequest) (*dto.AtletaResponse, error) {
	campos := make(map[string]interface{})
	if req.Nome != nil {
		campos["nome"] = *req.Nome
	}
	if req.Idade != nil {
		campos["idade"] = *req.Idade
	}
	if req.Peso != nil {
		campos["peso"] = *req.Peso
	}
	if req.Altura != nil {
		campos["altura"] = *req.Altura
	}
	if req.Sexo != nil {
		campos["sexo"] = *req.Sexo
	}

	var a *model.Atleta
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		if _, err := tx.Atletas().FindByID(ctx, id); err != nil {
			return err
		}
		if len(campos) > 0 {
			if err := tx.Atletas().Update(ctx, id, campos); err != nil {
				return fmt.Errorf("atualizar atleta: %w", err)
			}
		}
		var err error
		a, err = tx.Atletas().FindByID(ctx, id)
		return err
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundError("Atleta não encontrado no id: %s", id)
		}
		return nil, err
	}

	resp := mapAtleta(*a)
	return &resp, nil
}

func (s *atletaService) Remover(ctx context.Context, id uuid.UUID) error {
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		if _, err := tx.Atletas().FindByID(ctx, id); err != nil {
			return err
		}
		return tx.Atletas().Delete(ctx, id)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundError("Atleta não encontrado no id: %s", id)
		}
		return fmt.Errorf("remover atleta: %w", err)
	}
	return nil
}
