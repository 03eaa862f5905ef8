package model

import (
	"time"
)

// BaseModel 公共字段。JSON 字段名保持与旧客户端兼容（PascalCase）。
// swagger:model
type BaseModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"Id"`
	CreatedAt time.Time `json:"CreationDate"`
	UpdatedAt time.Time `json:"LastModificationDate"`
}
