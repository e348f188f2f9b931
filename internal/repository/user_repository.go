package repository

import (
	"errors"

	"github.com/oshaberi-project/oshaberi_backend/internal/models"

	"gorm.io/gorm"
)

// FavoritePerPage お気に入り一覧の1ページあたりの件数
const FavoritePerPage = 5

// UserRepository ユーザーに関するデータベース操作を行うインターフェース
type UserRepository interface {
	Create(user *models.User) error
	FindByID(id uint) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	EmailUsedByOther(email string, selfID uint) (bool, error)
	FindFavoriteAiModels(userID uint, page int) ([]models.FavoriteAiModelSummary, int64, error)
}

// userRepository UserRepositoryの実装
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository UserRepositoryを作成
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create 新しいユーザーを作成
func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByID IDでユーザーを検索
func (r *userRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail メールアドレスでユーザーを検索
func (r *userRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Update ユーザー情報を更新
func (r *userRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// EmailUsedByOther 指定のメールアドレスが自分以外のユーザーに使用されているか検証
func (r *userRepository) EmailUsedByOther(email string, selfID uint) (bool, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	// 使用済みでも自分自身のレコードであれば重複とみなさない
	return user.ID != selfID, nil
}

// FindFavoriteAiModels ユーザーがお気に入り登録したAIモデルの概要を新しい順に取得
func (r *userRepository) FindFavoriteAiModels(userID uint, page int) ([]models.FavoriteAiModelSummary, int64, error) {
	var summaries []models.FavoriteAiModelSummary
	var total int64

	if page < 1 {
		page = 1
	}
	offset := (page - 1) * FavoritePerPage

	query := r.db.Model(&models.AiModel{}).
		Joins("JOIN favorite_ai_models ON ai_models.id = favorite_ai_models.ai_model_id").
		Where("favorite_ai_models.user_id = ?", userID)

	// 合計数を取得
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// 新しくお気に入り登録した順番にソートして取得
	if err := query.
		Select("ai_models.id, ai_models.name, ai_models.close_mouth_image").
		Order("favorite_ai_models.created_at DESC").
		Offset(offset).
		Limit(FavoritePerPage).
		Scan(&summaries).Error; err != nil {
		return nil, 0, err
	}

	return summaries, total, nil
}
