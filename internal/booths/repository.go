package booths

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrBoothNotFound = errors.New("booth not found")

type Repository interface {
	ListBooths(ctx context.Context) ([]Booth, error)
	GetBoothByID(ctx context.Context, id uint) (*Booth, error)
	GetBoothByNumber(ctx context.Context, number string) (*Booth, error)
	CreateBooths(ctx context.Context, booths []Booth) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListBooths(ctx context.Context) ([]Booth, error) {
	var list []Booth
	err := r.db.WithContext(ctx).Order("id ASC").Find(&list).Error
	return list, err
}

func (r *repository) GetBoothByID(ctx context.Context, id uint) (*Booth, error) {
	var booth Booth
	err := r.db.WithContext(ctx).First(&booth, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBoothNotFound
		}
		return nil, err
	}
	return &booth, nil
}

func (r *repository) GetBoothByNumber(ctx context.Context, number string) (*Booth, error) {
	var booth Booth
	err := r.db.WithContext(ctx).First(&booth, "booth_number = ?", number).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBoothNotFound
		}
		return nil, err
	}
	return &booth, nil
}

func (r *repository) CreateBooths(ctx context.Context, booths []Booth) error {
	return r.db.WithContext(ctx).Create(&booths).Error
}
