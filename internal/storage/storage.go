package storage

import (
	"fmt"
	"mime/multipart"

	"github.com/Rango-SAD/lost-and-found-project/config"
)

// Storage 是图片存储后端的统一接口，返回可公开访问的URL
type Storage interface {
	UploadFile(file *multipart.FileHeader, path string) (string, error)
}

// New 根据配置选择存储后端
func New() (Storage, error) {
	switch config.AppConfig.StorageDriver {
	case "local":
		return NewLocalStorage(config.AppConfig.LocalStoragePath)
	case "s3":
		return NewS3Storage(config.AppConfig.S3Region, config.AppConfig.S3Bucket)
	default:
		return nil, fmt.Errorf("未知的存储驱动: %s", config.AppConfig.StorageDriver)
	}
}
