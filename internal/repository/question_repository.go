package repository

import (
	"millionaire_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) Create(q *model.Question) error {
	return r.DB.Create(q).Error
}

func (r *QuestionRepository) FindByID(id uint) (*model.Question, error) {
	var q model.Question
	err := r.DB.First(&q, id).Error
	return &q, err
}

func (r *QuestionRepository) Update(q *model.Question) error {
	return r.DB.Save(q).Error
}

func (r *QuestionRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Question{}, id).Error
}

func (r *QuestionRepository) List(level int, page, limit int) ([]model.Question, int64, error) {
	var questions []model.Question
	var total int64

	query := r.DB.Model(&model.Question{})
	if level >= 0 {
		query = query.Where("level = ?", level)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Order("level ASC, id ASC").Offset(offset).Limit(limit).Find(&questions).Error
	return questions, total, err
}

func (r *QuestionRepository) CountByLevel(level int) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Question{}).Where("level = ?", level).Count(&count).Error
	return count, err
}

// RandomByLevel 在给定事务内随机抽取一道指定难度的题目
func (r *QuestionRepository) RandomByLevel(tx *gorm.DB, level int) (*model.Question, error) {
	var q model.Question
	err := tx.Where("level = ?", level).Order("RAND()").First(&q).Error
	return &q, err
}
