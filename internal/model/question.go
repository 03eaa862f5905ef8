package model

// swagger:model Question
type Question struct {
	BaseModel
	TestID uint   `gorm:"index;not null" json:"TestId"`
	Text   string `gorm:"type:text;not null" json:"Text"`
	Notes  string `gorm:"type:text" json:"Notes"`
	Type   int    `gorm:"default:0" json:"Type"`
	Flags  int    `gorm:"default:0" json:"Flags"`

	Answers []Answer `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (Question) TableName() string {
	return "questions"
}
