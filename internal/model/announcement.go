package model

// swagger:model Announcement
type Announcement struct {
	ID           string   `gorm:"primaryKey;type:varchar(36)" json:"id"`
	ClassID      string   `gorm:"index;type:varchar(36)" json:"classId"`
	Author       string   `gorm:"size:100" json:"author"`
	AuthorAvatar string   `gorm:"size:255" json:"authorAvatar"`
	Content      string   `gorm:"type:text" json:"content"`
	Timestamp    string   `gorm:"size:32" json:"timestamp"`
	Attachments  []string `gorm:"serializer:json" json:"attachments,omitempty"`
}

func (Announcement) TableName() string {
	return "announcements"
}
