package model

// Aptitude 职业倾向维度（如"数理逻辑"），只读参考数据
// swagger:model Aptitude
type Aptitude struct {
	BaseModel
	Name        string `gorm:"size:100;not null;unique" json:"name"`
	Description string `gorm:"type:text" json:"description"`
}

func (Aptitude) TableName() string {
	return "aptitudes"
}
