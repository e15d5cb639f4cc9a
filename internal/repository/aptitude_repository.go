package repository

import (
	"career_guide_backend/internal/model"

	"gorm.io/gorm"
)

type AptitudeRepository struct {
	DB *gorm.DB
}

func NewAptitudeRepository(db *gorm.DB) *AptitudeRepository {
	return &AptitudeRepository{DB: db}
}

func (r *AptitudeRepository) Create(a *model.Aptitude) error {
	return r.DB.Create(a).Error
}

func (r *AptitudeRepository) FindByID(id uint) (*model.Aptitude, error) {
	var a model.Aptitude
	err := r.DB.First(&a, id).Error
	return &a, err
}

// List 按 id 升序返回全部维度，计分与并列排序依赖该顺序
func (r *AptitudeRepository) List() ([]model.Aptitude, error) {
	var as []model.Aptitude
	err := r.DB.Order("id asc").Find(&as).Error
	return as, err
}

func (r *AptitudeRepository) ListByIDs(ids []uint) ([]model.Aptitude, error) {
	var as []model.Aptitude
	err := r.DB.Where("id IN ?", ids).Order("id asc").Find(&as).Error
	return as, err
}

func (r *AptitudeRepository) Update(a *model.Aptitude) error {
	return r.DB.Save(a).Error
}

func (r *AptitudeRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Aptitude{}, id).Error
}
