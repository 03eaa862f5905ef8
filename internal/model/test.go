package model

// swagger:model Test
type Test struct {
	BaseModel
	Title       string `gorm:"size:255;not null;index" json:"Title"`
	Description string `gorm:"type:text" json:"Description"`
	Text        string `gorm:"type:text" json:"Text"`
	Notes       string `gorm:"type:text" json:"Notes"`
	Type        int    `gorm:"default:0" json:"Type"`
	Flags       int    `gorm:"default:0" json:"Flags"`
	ViewCount   int    `gorm:"default:0" json:"ViewCount"`
	UserID      uint   `gorm:"index" json:"UserId"`

	Questions []Question `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (Test) TableName() string {
	return "tests"
}
