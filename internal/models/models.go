package models

import (
	"time"
)

// User ユーザーモデル
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"`
	Icon      string    `json:"icon"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// リレーション
	AiModels         []AiModel         `json:"-"`
	Comments         []AiModelComment  `json:"-"`
	FavoriteAiModels []FavoriteAiModel `json:"-"`
}

// AiModel AIモデルモデル
type AiModel struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	UserID           uint      `json:"user_id" gorm:"not null;index"`
	Name             string    `json:"name" gorm:"not null"`
	SelfIntroduction string    `json:"self_introduction"`
	OpenMouthImage   string    `json:"open_mouth_image"`
	CloseMouthImage  string    `json:"close_mouth_image"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	// リレーション
	User     *User            `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Comments []AiModelComment `json:"-"`
}

// AiModelComment AIモデルへのコメントモデル
type AiModelComment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	AiModelID uint      `json:"ai_model_id" gorm:"not null;index"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	Comment   string    `json:"comment" gorm:"size:255;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// リレーション
	User    *User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
	AiModel *AiModel `json:"-" gorm:"foreignKey:AiModelID"`
}

// FavoriteAiModel お気に入り登録モデル
type FavoriteAiModel struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	AiModelID uint      `json:"ai_model_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`

	// リレーション
	User    *User    `json:"-"`
	AiModel *AiModel `json:"-" gorm:"foreignKey:AiModelID"`
}

// FavoriteAiModelSummary お気に入り一覧で返すAIモデルの概要
type FavoriteAiModelSummary struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	CloseMouthImage string `json:"close_mouth_image"`
}
