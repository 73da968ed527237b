package repository

import (
	"context"
	"strings"

	"workoutapi/internal/dto"
	"workoutapi/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AtletaRepository defines the data access contract for athletes.
// Services depend on this interface, not on the concrete GORM implementation.
type AtletaRepository interface {
	Create(ctx context.Context, a *model.Atleta) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Atleta, error)
	FindByCPF(ctx context.Context, cpf string) (*model.Atleta, error)
	// FindOne returns the first athlete (by name) matching filter.
	FindOne(ctx context.Context, filter dto.AtletaFilter) (*model.Atleta, error)
	List(ctx context.Context, filter dto.AtletaFilter, page dto.PageParams) ([]model.Atleta, int64, error)
	// Update writes only the given columns.
	Update(ctx context.Context, id uuid.UUID, campos map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type atletaRepo struct{ db *gorm.DB }

func NewAtletaRepository(db *gorm.DB) AtletaRepository { return &atletaRepo{db: db} }

// Categoria and CentroTreinamento are resolved beforehand; never upsert them from here.
func (r *atletaRepo) Create(ctx context.Context, a *model.Atleta) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(a).Error
}

func (r *atletaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Atleta, error) {
	var a model.Atleta
	err := r.preloaded(ctx).First(&a, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *atletaRepo) FindByCPF(ctx context.Context, cpf string) (*model.Atleta, error) {
	var a model.Atleta
	err := r.db.WithContext(ctx).Where("cpf = ?", cpf).First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *atletaRepo) FindOne(ctx context.Context, filter dto.AtletaFilter) (*model.Atleta, error) {
	var a model.Atleta
	err := applyAtletaFilter(r.preloaded(ctx), filter).Order("nome ASC").First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *atletaRepo) List(ctx context.Context, filter dto.AtletaFilter, page dto.PageParams) ([]model.Atleta, int64, error) {
	var atletas []model.Atleta
	var total int64

	q := applyAtletaFilter(r.db.WithContext(ctx).Model(&model.Atleta{}), filter).Session(&gorm.Session{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Categoria").Preload("CentroTreinamento").
		Order("nome ASC").Limit(page.Size).Offset(page.Offset()).Find(&atletas).Error
	return atletas, total, err
}

func (r *atletaRepo) Update(ctx context.Context, id uuid.UUID, campos map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Atleta{}).Where("id = ?", id).Updates(campos).Error
}

func (r *atletaRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Atleta{}, "id = ?", id).Error
}

func (r *atletaRepo) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Categoria").Preload("CentroTreinamento")
}

// likeEscaper makes LIKE wildcards in user input match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// applyAtletaFilter applies exactly one criterion: id wins over cpf, cpf over nome.
func applyAtletaFilter(q *gorm.DB, f dto.AtletaFilter) *gorm.DB {
	switch {
	case f.ID != "":
		id, err := uuid.Parse(f.ID)
		if err != nil {
			return q.Where("1 = 0")
		}
		return q.Where("id = ?", id)
	case f.CPF != "":
		return q.Where("cpf = ?", f.CPF)
	case f.Nome != "":
		return q.Where(`lower(nome) LIKE ? ESCAPE '\'`, "%"+likeEscaper.Replace(strings.ToLower(f.Nome))+"%")
	default:
		return q
	}
}
