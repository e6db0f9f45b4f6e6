package service

import (
	"context"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"classboard_backend/internal/model"
	"classboard_backend/internal/repository"
	"classboard_backend/internal/util"
	"classboard_backend/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ResourceService 教师向资料标签上传文件
type ResourceService struct {
	Repos   *repository.Repositories
	Storage *StorageService

	Now func() time.Time
}

func NewResourceService(repos *repository.Repositories, storage *StorageService) *ResourceService {
	return &ResourceService{
		Repos:   repos,
		Storage: storage,
		Now:     time.Now,
	}
}

// UploadInput 表单字段；Title 为空时用原始文件名
type UploadInput struct {
	ClassID  string
	Title    string
	Category string
	Uploader string
}

func classifyResource(ext string) model.ResourceType {
	if ext == ".pdf" {
		return model.ResourcePDF
	}
	for _, videoExt := range util.AllowedVideoExtensions {
		if ext == videoExt {
			return model.ResourceVideo
		}
	}
	return model.ResourceDocument
}

// Upload 先落到临时文件，视频顺带探测时长，再交给存储后端，
// 最后把记录追加进目录
func (s *ResourceService) Upload(ctx context.Context, input UploadInput, header *multipart.FileHeader) (*model.Resource, error) {
	if _, err := s.Repos.Classes.FindByID(input.ClassID); err != nil {
		if err == repository.ErrNotFound {
			return nil, util.ErrClassNotFound
		}
		return nil, err
	}

	src, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	resourceType := classifyResource(ext)

	tmp, err := os.CreateTemp("", "upload-*"+ext)
	if err != nil {
		return nil, err
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		return nil, err
	}
	if err := tmp.Close(); err != nil {
		return nil, err
	}

	resource := &model.Resource{
		ID:         uuid.New().String(),
		ClassID:    input.ClassID,
		Title:      input.Title,
		Type:       resourceType,
		UploadedBy: input.Uploader,
		UploadedAt: s.Now().Format(util.TimestampFormat),
		Category:   input.Category,
	}
	if resource.Title == "" {
		resource.Title = header.Filename
	}
	if resource.Category == "" {
		resource.Category = "Study Materials"
	}

	if resourceType == model.ResourceVideo {
		if info, err := util.ProbeVideo(tmpPath); err == nil {
			resource.Duration = info.Duration
			resource.Size = info.Size
		} else {
			// 探测失败不阻断上传
			logger.Log.Warn("video probe failed", zap.String("file", header.Filename), zap.Error(err))
		}
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = util.MimeOctetStream
	}

	objectName := resource.ID + ext
	url, err := s.Storage.UploadFile(ctx, objectName, tmpPath, contentType)
	if err != nil {
		return nil, err
	}
	resource.URL = url

	if err := s.Repos.Resources.Append(resource); err != nil {
		return nil, err
	}
	return resource, nil
}
