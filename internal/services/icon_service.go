package services

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/oshaberi-project/oshaberi_backend/internal/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// IconService ユーザーアイコンのアップロードを管理するサービス
type IconService interface {
	UploadIcon(file multipart.File, fileName string) (string, error)
}

type iconService struct {
	cld *cloudinary.Cloudinary
	cfg *config.Config
}

// NewIconService IconServiceを作成
func NewIconService(cfg *config.Config) (IconService, error) {
	cld, err := cloudinary.NewFromParams(
		cfg.Cloudinary.CloudName,
		cfg.Cloudinary.APIKey,
		cfg.Cloudinary.APISecret,
	)
	if err != nil {
		return nil, err
	}

	return &iconService{
		cld: cld,
		cfg: cfg,
	}, nil
}

// UploadIcon アイコン画像をアップロードしてURLを返す
func (s *iconService) UploadIcon(file multipart.File, fileName string) (string, error) {
	// ファイルデータを読み込み
	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(file); err != nil {
		return "", fmt.Errorf("ファイルの読み込みに失敗しました: %v", err)
	}

	// 拡張子を除いた一意なpublic_idを生成
	publicID := uuid.New().String() + "_" + strings.TrimSuffix(fileName, filepath.Ext(fileName))

	resp, err := s.cld.Upload.Upload(context.Background(), buf, uploader.UploadParams{
		Folder:       s.cfg.Cloudinary.Folder,
		PublicID:     publicID,
		ResourceType: "image",
	})
	if err != nil {
		return "", fmt.Errorf("アップロードに失敗しました: %v", err)
	}

	return resp.SecureURL, nil
}
