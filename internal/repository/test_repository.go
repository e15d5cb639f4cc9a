package repository

import (
	"career_guide_backend/internal/model"

	"gorm.io/gorm"
)

type TestRepository struct {
	DB *gorm.DB
}

func NewTestRepository(db *gorm.DB) *TestRepository {
	return &TestRepository{DB: db}
}

// 写方法都接收事务句柄：一次提交的测评记录、答案与得分必须同进同退

func (r *TestRepository) CreateTest(tx *gorm.DB, t *model.TestRecord) error {
	return tx.Create(t).Error
}

func (r *TestRepository) CreateAnswers(tx *gorm.DB, answers []model.TestAnswer) error {
	return tx.Create(&answers).Error
}

func (r *TestRepository) CreateScores(tx *gorm.DB, scores []model.AptitudeScore) error {
	if len(scores) == 0 {
		return nil
	}
	return tx.Create(&scores).Error
}

func (r *TestRepository) FindByIDWithAnswers(id uint) (*model.TestRecord, error) {
	var t model.TestRecord
	err := r.DB.Preload("Answers").First(&t, id).Error
	return &t, err
}

func (r *TestRepository) ListByUser(userID uint, page, limit int) ([]model.TestRecord, int64, error) {
	var ts []model.TestRecord
	var total int64
	query := r.DB.Model(&model.TestRecord{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&ts).Error
	return ts, total, err
}

func (r *TestRepository) ListScores(testID uint) ([]model.AptitudeScore, error) {
	var ss []model.AptitudeScore
	err := r.DB.Where("test_id = ?", testID).Order("score desc").Find(&ss).Error
	return ss, err
}
