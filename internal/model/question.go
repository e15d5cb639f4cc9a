package model

// swagger:model Question
type Question struct {
	BaseModel
	Text    string   `gorm:"type:text;not null" json:"text"`
	Order   int      `gorm:"default:0" json:"order"`
	Active  bool     `gorm:"default:true" json:"active"`
	Options []Option `gorm:"foreignKey:QuestionID" json:"options,omitempty"`
}

func (Question) TableName() string {
	return "questions"
}

// Option 问题选项，选中后按权重计入对应倾向维度
// swagger:model Option
type Option struct {
	BaseModel
	QuestionID uint    `gorm:"index;not null" json:"questionId"`
	Text       string  `gorm:"type:text;not null" json:"text"`
	AptitudeID uint    `gorm:"index;not null" json:"aptitudeId"`
	Weight     float64 `gorm:"not null;default:1" json:"weight"`
}

func (Option) TableName() string {
	return "options"
}
