package util

const (
	DateFormat      = "2006-01-02"
	TimestampFormat = "2006-01-02T15:04:05"

	// 前端展示用的日期格式
	DateDisplayFormat = "1/2/2006"
	DueShortFormat    = "Jan 2"
	DueLongFormat     = "Jan 2, 3:04 PM"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

// 文件上传相关常量
const (
	MimeVideo       = "video/"
	MimePDF         = "application/pdf"
	MimeOctetStream = "application/octet-stream"
)

var (
	AllowedVideoExtensions = []string{".mp4", ".mov", ".avi", ".mkv", ".wmv", ".flv", ".webm"}
)
