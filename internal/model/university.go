package model

// swagger:model University
type University struct {
	BaseModel
	Name        string     `gorm:"size:255;not null" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	City        string     `gorm:"size:100" json:"city"`
	Website     string     `gorm:"size:255" json:"website"`
	LogoURL     string     `gorm:"size:255" json:"logoUrl"`
	Rating      float64    `gorm:"default:0" json:"rating"`
	Aptitudes   []Aptitude `gorm:"many2many:university_aptitudes" json:"aptitudes,omitempty"`
}

func (University) TableName() string {
	return "universities"
}
