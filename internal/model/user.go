package model

type UserRole string

const (
	RegisteredUser UserRole = "user"
	Admin          UserRole = "admin"
)

// swagger:model User
type User struct {
	BaseModel
	Name     string   `gorm:"size:100;uniqueIndex;not null" json:"UserName"`
	Email    string   `gorm:"size:100;uniqueIndex;not null" json:"Email"`
	Password string   `gorm:"size:100;not null" json:"-"`
	Role     UserRole `gorm:"type:enum('user','admin');default:'user'" json:"Role"`
}

func (User) TableName() string {
	return "users"
}
