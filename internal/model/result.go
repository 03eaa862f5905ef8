package model

// Result 按分数区间 [MinValue, MaxValue] 描述测评结论，边界可为空（开区间）。
// swagger:model Result
type Result struct {
	BaseModel
	TestID   uint   `gorm:"index;not null" json:"TestId"`
	Text     string `gorm:"type:text;not null" json:"Text"`
	Notes    string `gorm:"type:text" json:"Notes"`
	MinValue *int   `json:"MinValue"`
	MaxValue *int   `json:"MaxValue"`
	Type     int    `gorm:"default:0" json:"Type"`
	Flags    int    `gorm:"default:0" json:"Flags"`
}

func (Result) TableName() string {
	return "results"
}
