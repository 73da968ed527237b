package repository

import (
	"context"

	"workoutapi/internal/dto"
	"workoutapi/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoriaRepository defines the data access contract for Categoria.
type CategoriaRepository interface {
	Create(ctx context.Context, c *model.Categoria) error
	List(ctx context.Context, page dto.PageParams) ([]model.Categoria, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Categoria, error)
	FindByNome(ctx context.Context, nome string) (*model.Categoria, error)
}

type categoriaRepository struct{ db *gorm.DB }

func NewCategoriaRepository(db *gorm.DB) CategoriaRepository {
	return &categoriaRepository{db: db}
}

func (r *categoriaRepository) Create(ctx context.Context, c *model.Categoria) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *categoriaRepository) List(ctx context.Context, page dto.PageParams) ([]model.Categoria, int64, error) {
	var list []model.Categoria
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Categoria{}).Session(&gorm.Session{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("nome asc").Limit(page.Size).Offset(page.Offset()).Find(&list).Error
	return list, total, err
}

func (r *categoriaRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Categoria, error) {
	var c model.Categoria
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoriaRepository) FindByNome(ctx context.Context, nome string) (*model.Categoria, error) {
	var c model.Categoria
	err := r.db.WithContext(ctx).Where("nome = ?", nome).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}
