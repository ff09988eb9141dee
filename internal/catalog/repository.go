package catalog

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	ListServices(ctx context.Context) ([]Service, error)
	GetServicesByCodes(ctx context.Context, codes []string) ([]Service, error)
	CreateServices(ctx context.Context, services []Service) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListServices(ctx context.Context) ([]Service, error) {
	var list []Service
	err := r.db.WithContext(ctx).Order("service_code ASC").Find(&list).Error
	return list, err
}

func (r *repository) GetServicesByCodes(ctx context.Context, codes []string) ([]Service, error) {
	var list []Service
	if len(codes) == 0 {
		return list, nil
	}
	err := r.db.WithContext(ctx).Where("service_code IN ?", codes).Find(&list).Error
	return list, err
}

func (r *repository) CreateServices(ctx context.Context, services []Service) error {
	return r.db.WithContext(ctx).Create(&services).Error
}
