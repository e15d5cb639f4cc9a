package service

import (
	"career_guide_backend/internal/model"
	"career_guide_backend/internal/repository"
	"career_guide_backend/pkg/logger"
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const studentQuestionsCacheKey = "catalog:student_questions"

// CatalogService 管理题目/选项/维度目录。引擎只读目录，写入都走这里。
type CatalogService struct {
	QuestionRepo *repository.QuestionRepository
	AptitudeRepo *repository.AptitudeRepository
	Redis        *redis.Client
}

func NewCatalogService(questionRepo *repository.QuestionRepository, aptitudeRepo *repository.AptitudeRepository, rdb *redis.Client) *CatalogService {
	return &CatalogService{
		QuestionRepo: questionRepo,
		AptitudeRepo: aptitudeRepo,
		Redis:        rdb,
	}
}

type OptionRequest struct {
	Text       string  `json:"text" binding:"required"`
	AptitudeID uint    `json:"aptitudeId" binding:"required"`
	Weight     float64 `json:"weight" binding:"required,gt=0"`
}

type QuestionRequest struct {
	Text    string          `json:"text" binding:"required"`
	Order   int             `json:"order"`
	Active  *bool           `json:"active"`
	Options []OptionRequest `json:"options" binding:"required,min=1,dive"`
}

func (s *CatalogService) CreateQuestion(req QuestionRequest) (*model.Question, error) {
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	q := &model.Question{
		Text:   req.Text,
		Order:  req.Order,
		Active: active,
	}
	q.Options = make([]model.Option, len(req.Options))
	for i, o := range req.Options {
		q.Options[i] = model.Option{
			Text:       o.Text,
			AptitudeID: o.AptitudeID,
			Weight:     o.Weight,
		}
	}
	if err := s.QuestionRepo.Create(q); err != nil {
		return nil, err
	}
	s.invalidateCache()
	return q, nil
}

func (s *CatalogService) UpdateQuestion(id uint, req QuestionRequest) (*model.Question, error) {
	q, err := s.QuestionRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	q.Text = req.Text
	q.Order = req.Order
	if req.Active != nil {
		q.Active = *req.Active
	}
	if err := s.QuestionRepo.Update(q); err != nil {
		return nil, err
	}
	s.invalidateCache()
	return q, nil
}

func (s *CatalogService) DeleteQuestion(id uint) error {
	if err := s.QuestionRepo.Delete(id); err != nil {
		return err
	}
	s.invalidateCache()
	return nil
}

func (s *CatalogService) GetQuestion(id uint) (*model.Question, error) {
	return s.QuestionRepo.FindByID(id)
}

func (s *CatalogService) ListQuestions(page, limit int) ([]model.Question, int64, error) {
	return s.QuestionRepo.List(page, limit)
}

func (s *CatalogService) AddOption(questionID uint, req OptionRequest) (*model.Option, error) {
	if _, err := s.QuestionRepo.FindByID(questionID); err != nil {
		return nil, err
	}
	o := &model.Option{
		QuestionID: questionID,
		Text:       req.Text,
		AptitudeID: req.AptitudeID,
		Weight:     req.Weight,
	}
	if err := s.QuestionRepo.CreateOption(o); err != nil {
		return nil, err
	}
	s.invalidateCache()
	return o, nil
}

func (s *CatalogService) DeleteOption(id uint) error {
	if err := s.QuestionRepo.DeleteOption(id); err != nil {
		return err
	}
	s.invalidateCache()
	return nil
}

type AptitudeRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (s *CatalogService) CreateAptitude(req AptitudeRequest) (*model.Aptitude, error) {
	a := &model.Aptitude{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.AptitudeRepo.Create(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *CatalogService) UpdateAptitude(id uint, req AptitudeRequest) (*model.Aptitude, error) {
	a, err := s.AptitudeRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	a.Name = req.Name
	a.Description = req.Description
	if err := s.AptitudeRepo.Update(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *CatalogService) DeleteAptitude(id uint) error {
	return s.AptitudeRepo.Delete(id)
}

func (s *CatalogService) ListAptitudes() ([]model.Aptitude, error) {
	return s.AptitudeRepo.List()
}

// StudentQuestionView 学生答题视图，不暴露选项的维度与权重
type StudentQuestionView struct {
	ID      uint                `json:"id"`
	Text    string              `json:"text"`
	Order   int                 `json:"order"`
	Options []StudentOptionView `json:"options"`
}

type StudentOptionView struct {
	ID   uint   `json:"id"`
	Text string `json:"text"`
}

// ListStudentQuestions 学生端题目列表，redis 缓存减少热点读
func (s *CatalogService) ListStudentQuestions() ([]StudentQuestionView, error) {
	ctx := context.Background()

	if s.Redis != nil {
		if val, err := s.Redis.Get(ctx, studentQuestionsCacheKey).Result(); err == nil {
			var cached []StudentQuestionView
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return cached, nil
			}
		}
	}

	questions, err := s.QuestionRepo.ListActiveWithOptions()
	if err != nil {
		return nil, err
	}

	views := make([]StudentQuestionView, len(questions))
	for i, q := range questions {
		opts := make([]StudentOptionView, len(q.Options))
		for j, o := range q.Options {
			opts[j] = StudentOptionView{ID: o.ID, Text: o.Text}
		}
		views[i] = StudentQuestionView{
			ID:      q.ID,
			Text:    q.Text,
			Order:   q.Order,
			Options: opts,
		}
	}

	if s.Redis != nil {
		if data, err := json.Marshal(views); err == nil {
			if err := s.Redis.Set(ctx, studentQuestionsCacheKey, data, 10*time.Minute).Err(); err != nil {
				logger.Log.Warn("failed to cache student questions", zap.Error(err))
			}
		}
	}

	return views, nil
}

func (s *CatalogService) invalidateCache() {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(context.Background(), studentQuestionsCacheKey).Err(); err != nil {
		logger.Log.Warn("failed to invalidate question cache", zap.Error(err))
	}
}
