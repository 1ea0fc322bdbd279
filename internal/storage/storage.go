package storage

import (
	"fmt"
	"mime/multipart"

	"github.com/milicamilutinovic/naprednebaze/config"
)

// Storage 抽象上传文件的存储后端
type Storage interface {
	UploadFile(file *multipart.FileHeader, path string) (string, error)
}

// New 根据配置选择存储后端，默认使用本地文件系统
func New() (Storage, error) {
	switch config.AppConfig.StorageBackend {
	case "s3":
		return NewS3Client(config.AppConfig.S3Region, config.AppConfig.S3Bucket)
	case "gcs":
		return NewGCSClient(config.AppConfig.GCSBucketName, config.AppConfig.GCSCredentials)
	default:
		return NewLocalStorage(config.AppConfig.LocalStoragePath)
	}
}

func validatePath(path string) error {
	if path == "" {
		return fmt.Errorf("存储路径不能为空")
	}
	return nil
}
