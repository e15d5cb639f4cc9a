package model

import "time"

// TestRecord 一次测评提交，创建后不可变
// swagger:model TestRecord
type TestRecord struct {
	BaseModel
	UserID      uint         `gorm:"index;not null" json:"userId"`
	CompletedAt time.Time    `json:"completedAt"`
	Answers     []TestAnswer `gorm:"foreignKey:TestID" json:"answers,omitempty"`
}

func (TestRecord) TableName() string {
	return "test_records"
}

// swagger:model TestAnswer
type TestAnswer struct {
	BaseModel
	TestID     uint `gorm:"index;not null" json:"testId"`
	QuestionID uint `gorm:"index;not null" json:"questionId"`
	OptionID   uint `gorm:"not null" json:"optionId"`
}

func (TestAnswer) TableName() string {
	return "test_answers"
}

// AptitudeScore 派生的维度得分，仅持久化 score > 0 的维度
// swagger:model AptitudeScore
type AptitudeScore struct {
	BaseModel
	TestID     uint    `gorm:"index;not null" json:"testId"`
	AptitudeID uint    `gorm:"index;not null" json:"aptitudeId"`
	Score      float64 `gorm:"not null;default:0" json:"score"`
	Percentage int     `gorm:"not null;default:0" json:"percentage"`
}

func (AptitudeScore) TableName() string {
	return "aptitude_scores"
}
