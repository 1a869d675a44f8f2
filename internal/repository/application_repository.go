package repository

import (
	"strings"

	"github.com/edulink/mentor-service/internal/model"
	"gorm.io/gorm"
)

type ApplicationRepository interface {
	Create(application *model.Application) error
	Update(application *model.Application) error
	Delete(application *model.Application) error
	FindByID(id uint) (*model.Application, error)
	FindByEmail(email string) (*model.Application, error)
	FindAllPaged(status string, page, pageSize int) ([]model.Application, int64, error)
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(application *model.Application) error {
	return r.db.Create(application).Error
}

func (r *applicationRepository) Update(application *model.Application) error {
	return r.db.Save(application).Error
}

// Delete removes the row permanently. The email carries a unique index, so a
// soft delete would keep blocking a fresh application for the same address.
func (r *applicationRepository) Delete(application *model.Application) error {
	return r.db.Unscoped().Delete(application).Error
}

func (r *applicationRepository) FindByID(id uint) (*model.Application, error) {
	var application model.Application
	if err := r.db.First(&application, id).Error; err != nil {
		return nil, err
	}
	return &application, nil
}

// FindByEmail matches case-insensitively; the email column is the natural key.
func (r *applicationRepository) FindByEmail(email string) (*model.Application, error) {
	var application model.Application
	err := r.db.Where("LOWER(email) = ?", strings.ToLower(email)).First(&application).Error
	if err != nil {
		return nil, err
	}
	return &application, nil
}

func (r *applicationRepository) FindAllPaged(status string, page, pageSize int) ([]model.Application, int64, error) {
	query := r.db.Model(&model.Application{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var applications []model.Application
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&applications).Error
	return applications, total, err
}
