package model

// swagger:model Discussion
type Discussion struct {
	ID           string            `gorm:"primaryKey;type:varchar(36)" json:"id"`
	ClassID      string            `gorm:"index;type:varchar(36)" json:"classId"`
	Title        string            `gorm:"size:200;not null" json:"title"`
	Content      string            `gorm:"type:text" json:"content"`
	Author       string            `gorm:"size:100" json:"author"`
	AuthorAvatar string            `gorm:"size:255" json:"authorAvatar"`
	AuthorRole   string            `gorm:"size:20" json:"authorRole"`
	Timestamp    string            `gorm:"size:32" json:"timestamp"`
	Replies      []DiscussionReply `gorm:"foreignKey:DiscussionID" json:"replies"`
}

// DiscussionReply 回复 id 只在所属讨论内唯一
// swagger:model DiscussionReply
type DiscussionReply struct {
	DiscussionID string `gorm:"primaryKey;type:varchar(36)" json:"-"`
	ID           string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Author       string `gorm:"size:100" json:"author"`
	AuthorAvatar string `gorm:"size:255" json:"authorAvatar"`
	AuthorRole   string `gorm:"size:20" json:"authorRole"`
	Content      string `gorm:"type:text" json:"content"`
	Timestamp    string `gorm:"size:32" json:"timestamp"`
}

func (Discussion) TableName() string {
	return "discussions"
}

func (DiscussionReply) TableName() string {
	return "discussion_replies"
}
