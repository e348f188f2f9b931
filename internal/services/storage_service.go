package services

import (
	"fmt"
	"mime/multipart"
	"path/filepath"

	"github.com/oshaberi-project/oshaberi_backend/internal/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/google/uuid"
)

// AIモデル画像の保存先フォルダ
const (
	OpenMouthImageFolder  = "aimodel/openmouthimage"
	CloseMouthImageFolder = "aimodel/closemouthimage"
)

// StorageService ファイルストレージに関するサービスインターフェース
type StorageService interface {
	Upload(file multipart.File, fileName, folder string) (string, error)
}

// storageService S3を使ったStorageServiceの実装
type storageService struct {
	uploader *s3manager.Uploader
	bucket   string
}

// NewStorageService StorageServiceを作成
func NewStorageService(cfg *config.Config) (StorageService, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(cfg.AWS.Region),
	})
	if err != nil {
		return nil, err
	}

	return &storageService{
		uploader: s3manager.NewUploader(sess),
		bucket:   cfg.AWS.Bucket,
	}, nil
}

// Upload ファイルを指定フォルダ配下にアップロードして保存先パスを返す
func (s *storageService) Upload(file multipart.File, fileName, folder string) (string, error) {
	// フォルダごとに一意なキーを生成
	ext := filepath.Ext(fileName)
	key := fmt.Sprintf("%s/%s%s", folder, uuid.New().String(), ext)

	result, err := s.uploader.Upload(&s3manager.UploadInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   file,
	})
	if err != nil {
		return "", err
	}

	return result.Location, nil
}
