package model

// RoleRecord 序列化后的角色对象，前端按 user.role.role_name 取值
type RoleRecord struct {
	RoleName string `json:"role_name"`
}

// swagger:model User
type User struct {
	ID        uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName string     `gorm:"size:100;not null" json:"first_name"`
	LastName  string     `gorm:"size:100;not null" json:"last_name"`
	Email     string     `gorm:"size:100;unique;not null" json:"email"`
	Password  string     `gorm:"size:100;not null" json:"-"`
	Role      RoleRecord `gorm:"embedded;embeddedPrefix:role_" json:"role"`
	Avatar    string     `gorm:"size:255" json:"avatar,omitempty"`
}

func (User) TableName() string {
	return "users"
}
