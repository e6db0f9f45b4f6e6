package model

// swagger:model Student
type Student struct {
	ID     string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name   string `gorm:"size:100;not null" json:"name"`
	Email  string `gorm:"size:100" json:"email"`
	Avatar string `gorm:"size:255" json:"avatar"`
}

func (Student) TableName() string {
	return "students"
}
