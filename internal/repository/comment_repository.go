package repository

import (
	"github.com/oshaberi-project/oshaberi_backend/internal/models"

	"gorm.io/gorm"
)

// CommentRepository コメントに関するデータベース操作を行うインターフェース
type CommentRepository interface {
	Create(comment *models.AiModelComment) error
	FindByID(id uint) (*models.AiModelComment, error)
	Update(comment *models.AiModelComment) error
	Delete(id uint) error
	ListByAiModel(aiModelID uint) ([]models.AiModelComment, error)
}

// commentRepository CommentRepositoryの実装
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository CommentRepositoryを作成
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create 新しいコメントを作成
func (r *commentRepository) Create(comment *models.AiModelComment) error {
	return r.db.Create(comment).Error
}

// FindByID IDでコメントを検索
func (r *commentRepository) FindByID(id uint) (*models.AiModelComment, error) {
	var comment models.AiModelComment
	if err := r.db.First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// Update コメントを更新
func (r *commentRepository) Update(comment *models.AiModelComment) error {
	return r.db.Save(comment).Error
}

// Delete コメントを削除
func (r *commentRepository) Delete(id uint) error {
	return r.db.Delete(&models.AiModelComment{}, id).Error
}

// ListByAiModel AIモデルのコメント一覧を投稿順に取得
func (r *commentRepository) ListByAiModel(aiModelID uint) ([]models.AiModelComment, error) {
	var comments []models.AiModelComment
	if err := r.db.
		Where("ai_model_id = ?", aiModelID).
		Order("id ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}
