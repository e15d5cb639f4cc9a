package model

// swagger:model Career
type Career struct {
	BaseModel
	Name        string     `gorm:"size:255;not null" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	Aptitudes   []Aptitude `gorm:"many2many:career_aptitudes" json:"aptitudes,omitempty"`
}

func (Career) TableName() string {
	return "careers"
}
