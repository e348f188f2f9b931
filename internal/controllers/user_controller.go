package controllers

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/oshaberi-project/oshaberi_backend/internal/models"
	"github.com/oshaberi-project/oshaberi_backend/internal/repository"
	"github.com/oshaberi-project/oshaberi_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// UserController ユーザーに関するコントローラー
type UserController struct {
	userService services.UserService
}

// NewUserController UserControllerを作成
func NewUserController(userService services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// GetByID IDでユーザーを取得
func (c *UserController) GetByID(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "無効なIDです"})
		return
	}

	user, err := c.userService.GetByID(uint(id))
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "ユーザーが見つかりません"})
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// UpdateProfile 自分のユーザー情報を更新
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	// ユーザー情報を取得
	user, exists := ctx.Get("user")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "認証が必要です"})
		return
	}
	u := user.(*models.User)

	// フォームデータを取得
	name := ctx.PostForm("name")
	email := ctx.PostForm("email")

	// アイコンは任意
	var icon multipart.File
	var iconHeader *multipart.FileHeader
	if file, header, err := ctx.Request.FormFile("icon"); err == nil {
		icon = file
		iconHeader = header
		defer file.Close()
	}

	updated, err := c.userService.UpdateProfile(u.ID, name, email, icon, iconHeader)
	if err != nil {
		status, body := errorResponse("updateResult", err)
		ctx.JSON(status, body)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"updateResult": true,
		"user":         updated,
	})
}

// Favorites お気に入り登録したAIモデルの一覧を取得
func (c *UserController) Favorites(ctx *gin.Context) {
	// ユーザー情報を取得
	user, exists := ctx.Get("user")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "認証が必要です"})
		return
	}
	u := user.(*models.User)

	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	summaries, total, pages, err := c.userService.Favorites(u.ID, page)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "サーバーエラーが発生しました"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":    summaries,
		"page":     page,
		"per_page": repository.FavoritePerPage,
		"total":    total,
		"pages":    pages,
	})
}

// RegisterFavorite AIモデルをお気に入り登録
func (c *UserController) RegisterFavorite(ctx *gin.Context) {
	aiModelID, _ := strconv.ParseUint(ctx.Param("id"), 10, 32)

	// ユーザー情報を取得
	user, exists := ctx.Get("user")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "認証が必要です"})
		return
	}
	u := user.(*models.User)

	if err := c.userService.RegisterFavorite(u.ID, uint(aiModelID)); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{
			"registerResult": false,
			"error":          gin.H{"id": err.Error()},
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"registerResult": true})
}

// UnregisterFavorite AIモデルのお気に入りを解除
func (c *UserController) UnregisterFavorite(ctx *gin.Context) {
	aiModelID, _ := strconv.ParseUint(ctx.Param("id"), 10, 32)

	// ユーザー情報を取得
	user, exists := ctx.Get("user")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "認証が必要です"})
		return
	}
	u := user.(*models.User)

	if err := c.userService.UnregisterFavorite(u.ID, uint(aiModelID)); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{
			"deleteResult": false,
			"error":        gin.H{"id": err.Error()},
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"deleteResult": true})
}
