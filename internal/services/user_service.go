package services

import (
	"mime/multipart"

	"github.com/oshaberi-project/oshaberi_backend/internal/models"
	"github.com/oshaberi-project/oshaberi_backend/internal/repository"
	"github.com/oshaberi-project/oshaberi_backend/internal/validation"
)

// UserService ユーザーに関するサービスインターフェース
type UserService interface {
	GetByID(id uint) (*models.User, error)
	UpdateProfile(userID uint, name, email string, icon multipart.File, iconHeader *multipart.FileHeader) (*models.User, error)
	Favorites(userID uint, page int) ([]models.FavoriteAiModelSummary, int64, int, error)
	RegisterFavorite(userID, aiModelID uint) error
	UnregisterFavorite(userID, aiModelID uint) error
}

// userService UserServiceの実装
type userService struct {
	userRepo     repository.UserRepository
	favoriteRepo repository.FavoriteRepository
	iconService  IconService
}

// NewUserService UserServiceを作成
func NewUserService(userRepo repository.UserRepository, favoriteRepo repository.FavoriteRepository, iconService IconService) UserService {
	return &userService{
		userRepo:     userRepo,
		favoriteRepo: favoriteRepo,
		iconService:  iconService,
	}
}

// GetByID IDでユーザーを取得
func (s *userService) GetByID(id uint) (*models.User, error) {
	return s.userRepo.FindByID(id)
}

// UpdateProfile ユーザー情報を更新
func (s *userService) UpdateProfile(userID uint, name, email string, icon multipart.File, iconHeader *multipart.FileHeader) (*models.User, error) {
	// バリデーションの検証
	result := validation.Validate(map[string]interface{}{
		"name":  name,
		"email": email,
	}, validation.UserUpdateRules)

	// 自分以外のユーザーが既に使用しているメールアドレスは拒否する
	if len(result.Errors["email"]) == 0 {
		used, err := s.userRepo.EmailUsedByOther(email, userID)
		if err != nil {
			return nil, err
		}
		if used {
			result.Errors["email"] = append(result.Errors["email"], validation.UniqueMessage(validation.UserUpdateRules))
		}
	}
	// アイコンは任意だが、指定する場合は画像のみ受け付ける
	if iconHeader != nil && !validation.IsImageFile(iconHeader) {
		result.Errors["icon"] = append(result.Errors["icon"], validation.ImageMessage(validation.UserUpdateRules))
	}
	if result.Fails() {
		return nil, &ValidationError{Fields: result.Errors}
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	user.Name = name
	user.Email = email

	// アイコンが指定されていればアップロードしてURLを差し替える
	if icon != nil && iconHeader != nil {
		iconURL, err := s.iconService.UploadIcon(icon, iconHeader.Filename)
		if err != nil {
			return nil, &StorageError{Err: err}
		}
		user.Icon = iconURL
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	return user, nil
}

// Favorites お気に入り登録したAIモデルの概要一覧を新しい順に取得
func (s *userService) Favorites(userID uint, page int) ([]models.FavoriteAiModelSummary, int64, int, error) {
	summaries, total, err := s.userRepo.FindFavoriteAiModels(userID, page)
	if err != nil {
		return nil, 0, 0, err
	}

	// 総ページ数を計算
	pages := int(total) / repository.FavoritePerPage
	if int(total)%repository.FavoritePerPage > 0 {
		pages++
	}

	return summaries, total, pages, nil
}

// RegisterFavorite AIモデルをお気に入り登録
func (s *userService) RegisterFavorite(userID, aiModelID uint) error {
	return s.favoriteRepo.Register(userID, aiModelID)
}

// UnregisterFavorite AIモデルのお気に入りを解除
func (s *userService) UnregisterFavorite(userID, aiModelID uint) error {
	return s.favoriteRepo.Unregister(userID, aiModelID)
}
