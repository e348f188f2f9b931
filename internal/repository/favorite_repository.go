package repository

import (
	"errors"

	"github.com/oshaberi-project/oshaberi_backend/internal/models"

	"gorm.io/gorm"
)

// FavoriteRepository お気に入り登録に関するデータベース操作を行うインターフェース
type FavoriteRepository interface {
	Register(userID, aiModelID uint) error
	Unregister(userID, aiModelID uint) error
	HasRegistered(userID, aiModelID uint) (bool, error)
}

// favoriteRepository FavoriteRepositoryの実装
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository FavoriteRepositoryを作成
func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Register お気に入りを登録
func (r *favoriteRepository) Register(userID, aiModelID uint) error {
	// AIモデルの存在確認
	var aiModel models.AiModel
	if err := r.db.First(&aiModel, aiModelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("存在しないAiモデルです。")
		}
		return err
	}

	// すでに登録済みか確認
	registered, err := r.HasRegistered(userID, aiModelID)
	if err != nil {
		return err
	}
	if registered {
		return errors.New("既にお気に入り登録しています")
	}

	favorite := models.FavoriteAiModel{
		UserID:    userID,
		AiModelID: aiModelID,
	}
	return r.db.Create(&favorite).Error
}

// Unregister お気に入りを解除
func (r *favoriteRepository) Unregister(userID, aiModelID uint) error {
	result := r.db.Where("user_id = ? AND ai_model_id = ?", userID, aiModelID).
		Delete(&models.FavoriteAiModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("お気に入り登録が見つかりません")
	}
	return nil
}

// HasRegistered お気に入り登録済みか確認
func (r *favoriteRepository) HasRegistered(userID, aiModelID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.FavoriteAiModel{}).
		Where("user_id = ? AND ai_model_id = ?", userID, aiModelID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
