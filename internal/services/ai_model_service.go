package services

import (
	"mime/multipart"

	"github.com/oshaberi-project/oshaberi_backend/internal/models"
	"github.com/oshaberi-project/oshaberi_backend/internal/repository"
	"github.com/oshaberi-project/oshaberi_backend/internal/validation"
)

// AiModelService AIモデルに関するサービスインターフェース
type AiModelService interface {
	List(page int, userID uint, search string) ([]models.AiModel, int64, int, error)
	GetByID(id uint) (*models.AiModel, error)
	Create(name, selfIntroduction string,
		openMouthImage, closeMouthImage multipart.File,
		openMouthHeader, closeMouthHeader *multipart.FileHeader,
		userID uint) error
	Update(id uint) error
	Delete(id, userID uint) error
}

// aiModelService AiModelServiceの実装
type aiModelService struct {
	aiModelRepo repository.AiModelRepository
	storage     StorageService
}

// NewAiModelService AiModelServiceを作成
func NewAiModelService(aiModelRepo repository.AiModelRepository, storage StorageService) AiModelService {
	return &aiModelService{
		aiModelRepo: aiModelRepo,
		storage:     storage,
	}
}

// List AIモデル一覧を取得。userIDが指定されていれば検索語より優先する
func (s *aiModelService) List(page int, userID uint, search string) ([]models.AiModel, int64, int, error) {
	aiModels, total, err := s.aiModelRepo.List(page, userID, search)
	if err != nil {
		return nil, 0, 0, err
	}

	// 総ページ数を計算
	pages := int(total) / repository.AiModelPerPage
	if int(total)%repository.AiModelPerPage > 0 {
		pages++
	}

	return aiModels, total, pages, nil
}

// GetByID IDでAIモデルを取得
func (s *aiModelService) GetByID(id uint) (*models.AiModel, error) {
	// idが0の場合は検索せずに存在しない扱いとする
	if id == 0 {
		return nil, &ResourceError{Message: "存在しないidです"}
	}

	aiModel, err := s.aiModelRepo.FindByID(id)
	if err != nil {
		return nil, &ResourceError{Message: "存在しないidです"}
	}
	return aiModel, nil
}

// Create 新しいAIモデルを作成
func (s *aiModelService) Create(name, selfIntroduction string,
	openMouthImage, closeMouthImage multipart.File,
	openMouthHeader, closeMouthHeader *multipart.FileHeader,
	userID uint) error {

	// バリデーションの検証。失敗した場合はアップロードを行わない
	result := validation.Validate(map[string]interface{}{
		"name":              name,
		"self_introduction": selfIntroduction,
		"open_mouth_image":  openMouthHeader,
		"close_mouth_image": closeMouthHeader,
	}, validation.AiModelCreateRules)
	if result.Fails() {
		return &ValidationError{Fields: result.Errors}
	}

	// 口を開けた画像の保存処理
	openMouthPath, err := s.storage.Upload(openMouthImage, openMouthHeader.Filename, OpenMouthImageFolder)
	if err != nil {
		return &StorageError{Err: err}
	}

	// 口を閉じた画像の保存処理
	closeMouthPath, err := s.storage.Upload(closeMouthImage, closeMouthHeader.Filename, CloseMouthImageFolder)
	if err != nil {
		// どちらかのアップロードに失敗した場合はレコードを作成しない
		return &StorageError{Err: err}
	}

	aiModel := &models.AiModel{
		UserID:           userID,
		Name:             name,
		SelfIntroduction: selfIntroduction,
		OpenMouthImage:   openMouthPath,
		CloseMouthImage:  closeMouthPath,
	}

	return s.aiModelRepo.Create(aiModel)
}

// Update AIモデルの更新。更新できる項目の仕様が未確定のため、
// 現状は入力を読まず何も変更せずに成功を返す
func (s *aiModelService) Update(id uint) error {
	return nil
}

// Delete AIモデルを削除。所有者以外は削除できない
func (s *aiModelService) Delete(id, userID uint) error {
	// 存在しない場合と権限がない場合は同じエラーを返す
	aiModel, err := s.aiModelRepo.FindByID(id)
	if err != nil || !models.IsOwner(aiModel, userID) {
		return &ResourceError{Message: "削除できないAIモデルです"}
	}

	return s.aiModelRepo.Delete(id)
}
