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

// AiModelController AIモデルに関するコントローラー
type AiModelController struct {
	aiModelService services.AiModelService
}

// NewAiModelController AiModelControllerを作成
func NewAiModelController(aiModelService services.AiModelService) *AiModelController {
	return &AiModelController{
		aiModelService: aiModelService,
	}
}

// List AIモデル一覧を取得
func (c *AiModelController) List(ctx *gin.Context) {
	// クエリパラメータを取得
	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	// user_idの指定が検索語より優先される。解析できない指定でも検索語は使わない
	userIDParam := ctx.Query("user_id")
	userID, _ := strconv.ParseUint(userIDParam, 10, 32)
	search := ctx.Query("search")
	if userIDParam != "" {
		search = ""
	}

	aiModels, total, pages, err := c.aiModelService.List(page, uint(userID), search)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "サーバーエラーが発生しました"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":    aiModels,
		"page":     page,
		"per_page": repository.AiModelPerPage,
		"total":    total,
		"pages":    pages,
	})
}

// GetByID IDでAIモデルを取得
func (c *AiModelController) GetByID(ctx *gin.Context) {
	// 解析できないidは0として扱い、存在しないid扱いにする
	id, _ := strconv.ParseUint(ctx.Param("id"), 10, 32)

	aiModel, err := c.aiModelService.GetByID(uint(id))
	if err != nil {
		status, body := errorResponse("createResult", err)
		ctx.JSON(status, body)
		return
	}

	ctx.JSON(http.StatusOK, aiModel)
}

// Create 新しいAIモデルを作成
func (c *AiModelController) Create(ctx *gin.Context) {
	// ユーザー情報を取得
	user, exists := ctx.Get("user")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "認証が必要です"})
		return
	}
	u := user.(*models.User)

	// フォームデータを取得
	name := ctx.PostForm("name")
	selfIntroduction := ctx.PostForm("self_introduction")

	// 画像ファイルを取得。存在しない場合はバリデーションで弾く
	var openMouthImage, closeMouthImage multipart.File
	var openMouthHeader, closeMouthHeader *multipart.FileHeader

	if file, header, err := ctx.Request.FormFile("open_mouth_image"); err == nil {
		openMouthImage = file
		openMouthHeader = header
		defer file.Close()
	}
	if file, header, err := ctx.Request.FormFile("close_mouth_image"); err == nil {
		closeMouthImage = file
		closeMouthHeader = header
		defer file.Close()
	}

	err := c.aiModelService.Create(
		name,
		selfIntroduction,
		openMouthImage,
		closeMouthImage,
		openMouthHeader,
		closeMouthHeader,
		u.ID,
	)
	if err != nil {
		status, body := errorResponse("createResult", err)
		ctx.JSON(status, body)
		return
	}

	// 作成したレコードはレスポンスに含めない
	ctx.JSON(http.StatusOK, gin.H{"createResult": true})
}

// Update AIモデルを更新。更新内容の仕様が未確定のため入力は読まない
func (c *AiModelController) Update(ctx *gin.Context) {
	id, _ := strconv.ParseUint(ctx.Param("id"), 10, 32)

	if err := c.aiModelService.Update(uint(id)); err != nil {
		status, body := errorResponse("updateResult", err)
		ctx.JSON(status, body)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"updateResult": true})
}

// Delete AIモデルを削除
func (c *AiModelController) Delete(ctx *gin.Context) {
	id, _ := strconv.ParseUint(ctx.Param("id"), 10, 32)

	// ユーザー情報を取得
	user, exists := ctx.Get("user")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "認証が必要です"})
		return
	}
	u := user.(*models.User)

	if err := c.aiModelService.Delete(uint(id), u.ID); err != nil {
		status, body := errorResponse("deleteResult", err)
		ctx.JSON(status, body)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"deleteResult": true})
}
