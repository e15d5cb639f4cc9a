package repository

import (
	"career_guide_backend/internal/model"

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
	err := r.DB.Preload("Options").First(&q, id).Error
	return &q, err
}

// ListActiveWithOptions 学生答题与计分使用的有效题目目录
func (r *QuestionRepository) ListActiveWithOptions() ([]model.Question, error) {
	var qs []model.Question
	err := r.DB.Preload("Options").
		Where("active = ?", true).
		Order("`order` asc, id asc").
		Find(&qs).Error
	return qs, err
}

func (r *QuestionRepository) List(page, limit int) ([]model.Question, int64, error) {
	var qs []model.Question
	var total int64
	query := r.DB.Model(&model.Question{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := r.DB.Preload("Options").
		Order("`order` asc, created_at desc").
		Offset(offset).Limit(limit).
		Find(&qs).Error
	return qs, total, err
}

func (r *QuestionRepository) Update(q *model.Question) error {
	return r.DB.Save(q).Error
}

func (r *QuestionRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", id).Delete(&model.Option{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Question{}, id).Error
	})
}

func (r *QuestionRepository) CreateOption(o *model.Option) error {
	return r.DB.Create(o).Error
}

func (r *QuestionRepository) FindOptionByID(id uint) (*model.Option, error) {
	var o model.Option
	err := r.DB.First(&o, id).Error
	return &o, err
}

func (r *QuestionRepository) UpdateOption(o *model.Option) error {
	return r.DB.Save(o).Error
}

func (r *QuestionRepository) DeleteOption(id uint) error {
	return r.DB.Delete(&model.Option{}, id).Error
}
