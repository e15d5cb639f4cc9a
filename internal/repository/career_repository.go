package repository

import (
	"career_guide_backend/internal/model"

	"gorm.io/gorm"
)

type CareerRepository struct {
	DB *gorm.DB
}

func NewCareerRepository(db *gorm.DB) *CareerRepository {
	return &CareerRepository{DB: db}
}

func (r *CareerRepository) Create(c *model.Career) error {
	return r.DB.Create(c).Error
}

func (r *CareerRepository) FindByID(id uint) (*model.Career, error) {
	var c model.Career
	err := r.DB.Preload("Aptitudes").First(&c, id).Error
	return &c, err
}

func (r *CareerRepository) List(page, limit int) ([]model.Career, int64, error) {
	var cs []model.Career
	var total int64
	if err := r.DB.Model(&model.Career{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := r.DB.Preload("Aptitudes").
		Order("created_at desc").
		Offset(offset).Limit(limit).
		Find(&cs).Error
	return cs, total, err
}

// FindByAptitudeIDs 返回与任一给定维度关联的职业，按 id 升序
func (r *CareerRepository) FindByAptitudeIDs(aptitudeIDs []uint) ([]model.Career, error) {
	var cs []model.Career
	err := r.DB.Preload("Aptitudes").
		Joins("JOIN career_aptitudes ca ON ca.career_id = careers.id").
		Where("ca.aptitude_id IN ?", aptitudeIDs).
		Group("careers.id").
		Order("careers.id asc").
		Find(&cs).Error
	return cs, err
}

func (r *CareerRepository) Update(c *model.Career) error {
	return r.DB.Save(c).Error
}

func (r *CareerRepository) ReplaceAptitudes(c *model.Career, aptitudes []model.Aptitude) error {
	return r.DB.Model(c).Association("Aptitudes").Replace(aptitudes)
}

func (r *CareerRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Career{}, id).Error
}
