package model

type ResourceType string

const (
	ResourcePDF      ResourceType = "pdf"
	ResourceVideo    ResourceType = "video"
	ResourceLink     ResourceType = "link"
	ResourceDocument ResourceType = "document"
)

// swagger:model Resource
type Resource struct {
	ID         string       `gorm:"primaryKey;type:varchar(36)" json:"id"`
	ClassID    string       `gorm:"index;type:varchar(36)" json:"classId"`
	Title      string       `gorm:"size:200;not null" json:"title"`
	Type       ResourceType `gorm:"size:20" json:"type"`
	URL        string       `gorm:"size:500" json:"url"`
	UploadedBy string       `gorm:"size:100" json:"uploadedBy"`
	UploadedAt string       `gorm:"size:32" json:"uploadedAt"`
	Category   string       `gorm:"size:100" json:"category"`
	// 视频资源上传时探测到的元数据
	Duration float64 `json:"duration,omitempty"`
	Size     int64   `json:"size,omitempty"`
}

func (Resource) TableName() string {
	return "resources"
}
