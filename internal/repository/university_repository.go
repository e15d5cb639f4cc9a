package repository

import (
	"career_guide_backend/internal/model"

	"gorm.io/gorm"
)

type UniversityRepository struct {
	DB *gorm.DB
}

func NewUniversityRepository(db *gorm.DB) *UniversityRepository {
	return &UniversityRepository{DB: db}
}

func (r *UniversityRepository) Create(u *model.University) error {
	return r.DB.Create(u).Error
}

func (r *UniversityRepository) FindByID(id uint) (*model.University, error) {
	var u model.University
	err := r.DB.Preload("Aptitudes").First(&u, id).Error
	return &u, err
}

func (r *UniversityRepository) List(page, limit int) ([]model.University, int64, error) {
	var us []model.University
	var total int64
	if err := r.DB.Model(&model.University{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := r.DB.Preload("Aptitudes").
		Order("rating desc, created_at desc").
		Offset(offset).Limit(limit).
		Find(&us).Error
	return us, total, err
}

// FindByAptitudeIDs 返回与任一给定维度关联的大学，按 id 升序
func (r *UniversityRepository) FindByAptitudeIDs(aptitudeIDs []uint) ([]model.University, error) {
	var us []model.University
	err := r.DB.Preload("Aptitudes").
		Joins("JOIN university_aptitudes ua ON ua.university_id = universities.id").
		Where("ua.aptitude_id IN ?", aptitudeIDs).
		Group("universities.id").
		Order("universities.id asc").
		Find(&us).Error
	return us, err
}

func (r *UniversityRepository) Update(u *model.University) error {
	return r.DB.Save(u).Error
}

func (r *UniversityRepository) ReplaceAptitudes(u *model.University, aptitudes []model.Aptitude) error {
	return r.DB.Model(u).Association("Aptitudes").Replace(aptitudes)
}

func (r *UniversityRepository) Delete(id uint) error {
	return r.DB.Delete(&model.University{}, id).Error
}
