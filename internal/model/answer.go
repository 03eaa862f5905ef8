package model

// Answer 的 Value 为有符号整数，负分答案是干扰项。
// swagger:model Answer
type Answer struct {
	BaseModel
	QuestionID uint   `gorm:"index;not null" json:"QuestionId"`
	Text       string `gorm:"type:text;not null" json:"Text"`
	Value      int    `gorm:"not null" json:"Value"`
	Type       int    `gorm:"default:0" json:"Type"`
	Flags      int    `gorm:"default:0" json:"Flags"`
	Notes      string `gorm:"type:text" json:"Notes"`
}

func (Answer) TableName() string {
	return "answers"
}
