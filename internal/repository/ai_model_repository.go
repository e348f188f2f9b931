package repository

import (
	"errors"

	"github.com/oshaberi-project/oshaberi_backend/internal/models"

	"gorm.io/gorm"
)

// AiModelPerPage AIモデル一覧の1ページあたりの件数
const AiModelPerPage = 15

// AiModelRepository AIモデルに関するデータベース操作を行うインターフェース
type AiModelRepository interface {
	Create(aiModel *models.AiModel) error
	FindByID(id uint) (*models.AiModel, error)
	Delete(id uint) error
	List(page int, userID uint, search string) ([]models.AiModel, int64, error)
}

// aiModelRepository AiModelRepositoryの実装
type aiModelRepository struct {
	db *gorm.DB
}

// NewAiModelRepository AiModelRepositoryを作成
func NewAiModelRepository(db *gorm.DB) AiModelRepository {
	return &aiModelRepository{db: db}
}

// Create 新しいAIモデルを作成
func (r *aiModelRepository) Create(aiModel *models.AiModel) error {
	return r.db.Create(aiModel).Error
}

// FindByID IDでAIモデルを検索
func (r *aiModelRepository) FindByID(id uint) (*models.AiModel, error) {
	var aiModel models.AiModel
	if err := r.db.First(&aiModel, id).Error; err != nil {
		return nil, err
	}
	return &aiModel, nil
}

// Delete AIモデルを削除
func (r *aiModelRepository) Delete(id uint) error {
	return r.db.Delete(&models.AiModel{}, id).Error
}

// List AIモデル一覧を取得。userIDの指定が検索語より優先される
func (r *aiModelRepository) List(page int, userID uint, search string) ([]models.AiModel, int64, error) {
	var aiModels []models.AiModel
	var total int64

	if page < 1 {
		page = 1
	}
	offset := (page - 1) * AiModelPerPage

	query := r.db.Model(&models.AiModel{})

	// ユーザーでフィルタリング
	if userID > 0 {
		query = query.Where("user_id = ?", userID)
	} else if search != "" {
		// 検索条件を適用
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	// 合計数を取得
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// データを取得
	if err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(AiModelPerPage).
		Find(&aiModels).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, 0, err
	}

	return aiModels, total, nil
}
