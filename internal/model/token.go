package model

// Token 刷新令牌，绑定 (ClientID, UserID)，一次性使用：换发时旧记录删除。
// Type 为令牌种类判别字段，当前恒为 0。
type Token struct {
	BaseModel
	ClientID string `gorm:"size:100;not null;index:idx_tokens_client_value" json:"ClientId"`
	UserID   uint   `gorm:"index;not null" json:"UserId"`
	Type     int    `gorm:"default:0" json:"Type"`
	Value    string `gorm:"size:64;not null;uniqueIndex;index:idx_tokens_client_value" json:"Value"`
}

func (Token) TableName() string {
	return "tokens"
}
