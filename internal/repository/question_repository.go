package repository

import (
	"github.com/edulink/mentor-service/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	FindActiveByCategories(categories []string) ([]model.Question, error)
	FindActiveExcluding(excludedIDs []uint) ([]model.Question, error)
	FindByIDs(ids []uint) ([]model.Question, error)
	CountActive() (int64, error)
	Count() (int64, error)
	CreateInBatch(questions []model.Question) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) FindActiveByCategories(categories []string) ([]model.Question, error) {
	var questions []model.Question
	err := r.db.Where("is_active = ? AND category IN ?", true, categories).Find(&questions).Error
	return questions, err
}

func (r *questionRepository) FindActiveExcluding(excludedIDs []uint) ([]model.Question, error) {
	var questions []model.Question
	query := r.db.Where("is_active = ?", true)
	if len(excludedIDs) > 0 {
		query = query.Where("id NOT IN ?", excludedIDs)
	}
	err := query.Find(&questions).Error
	return questions, err
}

func (r *questionRepository) FindByIDs(ids []uint) ([]model.Question, error) {
	var questions []model.Question
	if len(ids) == 0 {
		return questions, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&questions).Error
	return questions, err
}

func (r *questionRepository) CountActive() (int64, error) {
	var count int64
	err := r.db.Model(&model.Question{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}

func (r *questionRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Question{}).Count(&count).Error
	return count, err
}

func (r *questionRepository) CreateInBatch(questions []model.Question) error {
	return r.db.CreateInBatches(questions, 50).Error
}
