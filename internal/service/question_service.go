package service

import (
	"errors"
	"fmt"

	"millionaire_backend/internal/model"
	"millionaire_backend/internal/repository"
	"millionaire_backend/internal/util"

	"gorm.io/gorm"
)

// QuestionRequest 题目的创建/更新请求。Answer1 必须是正确答案。
// swagger:model QuestionRequest
type QuestionRequest struct {
	Level   int    `json:"level"`
	Text    string `json:"text" binding:"required"`
	Answer1 string `json:"answer1" binding:"required"`
	Answer2 string `json:"answer2" binding:"required"`
	Answer3 string `json:"answer3" binding:"required"`
	Answer4 string `json:"answer4" binding:"required"`
}

// QuestionService 管理题库（仅管理员可写）
type QuestionService struct {
	QuestionRepo *repository.QuestionRepository
}

func NewQuestionService(questionRepo *repository.QuestionRepository) *QuestionService {
	return &QuestionService{QuestionRepo: questionRepo}
}

func validateQuestion(req QuestionRequest) error {
	if req.Level < model.FirstLevel || req.Level > model.MaxLevel {
		return fmt.Errorf("level must be between %d and %d", model.FirstLevel, model.MaxLevel)
	}
	return nil
}

func (s *QuestionService) CreateQuestion(req QuestionRequest) (*model.Question, error) {
	if err := validateQuestion(req); err != nil {
		return nil, err
	}

	q := &model.Question{
		Level:   req.Level,
		Text:    req.Text,
		Answer1: req.Answer1,
		Answer2: req.Answer2,
		Answer3: req.Answer3,
		Answer4: req.Answer4,
	}
	if err := s.QuestionRepo.Create(q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *QuestionService) UpdateQuestion(id uint, req QuestionRequest) (*model.Question, error) {
	if err := validateQuestion(req); err != nil {
		return nil, err
	}

	q, err := s.QuestionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}

	q.Level = req.Level
	q.Text = req.Text
	q.Answer1 = req.Answer1
	q.Answer2 = req.Answer2
	q.Answer3 = req.Answer3
	q.Answer4 = req.Answer4

	if err := s.QuestionRepo.Update(q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *QuestionService) DeleteQuestion(id uint) error {
	return s.QuestionRepo.Delete(id)
}

func (s *QuestionService) ListQuestions(level, page, limit int) ([]model.Question, int64, error) {
	return s.QuestionRepo.List(level, page, limit)
}

// Coverage 返回每个难度等级的题目数量，用于提前发现建局会缺题的等级
func (s *QuestionService) Coverage() (map[int]int64, error) {
	coverage := make(map[int]int64, model.MaxLevel+1)
	for level := model.FirstLevel; level <= model.MaxLevel; level++ {
		count, err := s.QuestionRepo.CountByLevel(level)
		if err != nil {
			return nil, err
		}
		coverage[level] = count
	}
	return coverage, nil
}
