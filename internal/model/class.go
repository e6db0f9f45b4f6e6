package model

// swagger:model Class
type Class struct {
	ID       string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name     string `gorm:"size:100;not null" json:"name"`
	Section  string `gorm:"size:50" json:"section"`
	Subject  string `gorm:"size:100" json:"subject"`
	Room     string `gorm:"size:50" json:"room"`
	Teacher  string `gorm:"size:100" json:"teacher"`
	Color    string `gorm:"size:50" json:"color"`
	ImageURL string `gorm:"size:255" json:"imageUrl"`
}

func (Class) TableName() string {
	return "classes"
}
