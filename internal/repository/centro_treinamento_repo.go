package repository

import (
	"context"

	"workoutapi/internal/dto"
	"workoutapi/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CentroTreinamentoRepository interface {
	Create(ctx context.Context, c *model.CentroTreinamento) error
	List(ctx context.Context, page dto.PageParams) ([]model.CentroTreinamento, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.CentroTreinamento, error)
	FindByNome(ctx context.Context, nome string) (*model.CentroTreinamento, error)
}

type centroTreinamentoRepo struct{ db *gorm.DB }

func NewCentroTreinamentoRepository(db *gorm.DB) CentroTreinamentoRepository {
	return &centroTreinamentoRepo{db: db}
}

func (r *centroTreinamentoRepo) Create(ctx context.Context, c *model.CentroTreinamento) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *centroTreinamentoRepo) List(ctx context.Context, page dto.PageParams) ([]model.CentroTreinamento, int64, error) {
	var list []model.CentroTreinamento
	var total int64

	q := r.db.WithContext(ctx).Model(&model.CentroTreinamento{}).Session(&gorm.Session{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("nome asc").Limit(page.Size).Offset(page.Offset()).Find(&list).Error
	return list, total, err
}

func (r *centroTreinamentoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.CentroTreinamento, error) {
	var c model.CentroTreinamento
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *centroTreinamentoRepo) FindByNome(ctx context.Context, nome string) (*model.CentroTreinamento, error) {
	var c model.CentroTreinamento
	err := r.db.WithContext(ctx).Where("nome = ?", nome).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}
