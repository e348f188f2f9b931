package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/oshaberi-project/oshaberi_backend/internal/models"
	"github.com/oshaberi-project/oshaberi_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// CommentController AIモデルへのコメントに関するコントローラー
type CommentController struct {
	commentService services.CommentService
}

// NewCommentController CommentControllerを作成
func NewCommentController(commentService services.CommentService) *CommentController {
	return &CommentController{
		commentService: commentService,
	}
}

// CommentRequest コメントリクエスト
type CommentRequest struct {
	Comment string `json:"comment"`
}

// CommentUpdateRequest コメント更新リクエスト。登録時と同じ項目を受け取る
type CommentUpdateRequest struct {
	AiModelID uint   `json:"ai_model_id"`
	Comment   string `json:"comment"`
}

// Create 新しいコメントを作成
func (c *CommentController) Create(ctx *gin.Context) {
	// 解析できないidは0として扱い、バリデーションで弾く
	aiModelID, _ := strconv.ParseUint(ctx.Param("id"), 10, 32)

	var req CommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// ユーザー情報を取得
	user, exists := ctx.Get("user")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "認証が必要です"})
		return
	}
	u := user.(*models.User)

	comment, err := c.commentService.Create(uint(aiModelID), req.Comment, u.ID)
	if err != nil {
		status, body := errorResponse("createResult", err)
		ctx.JSON(status, body)
		return
	}

	// 新しく作成したコメントのデータも返す
	ctx.JSON(http.StatusOK, gin.H{
		"createResult":   true,
		"createdComment": comment,
	})
}

// List AIモデルのコメント一覧を取得
func (c *CommentController) List(ctx *gin.Context) {
	aiModelID, _ := strconv.ParseUint(ctx.Param("id"), 10, 32)

	comments, err := c.commentService.ListByAiModel(uint(aiModelID))
	if err != nil {
		var resourceErr *services.ResourceError
		if errors.As(err, &resourceErr) {
			ctx.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": gin.H{"id": resourceErr.Message},
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "サーバーエラーが発生しました"})
		return
	}

	ctx.JSON(http.StatusOK, comments)
}

// Update コメントを更新
func (c *CommentController) Update(ctx *gin.Context) {
	id, _ := strconv.ParseUint(ctx.Param("id"), 10, 32)

	var req CommentUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// ユーザー情報を取得
	user, exists := ctx.Get("user")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "認証が必要です"})
		return
	}
	u := user.(*models.User)

	if err := c.commentService.Update(uint(id), req.AiModelID, req.Comment, u.ID); err != nil {
		status, body := errorResponse("updateResult", err)
		ctx.JSON(status, body)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"updateResult": true})
}

// Delete コメントを削除
func (c *CommentController) Delete(ctx *gin.Context) {
	id, _ := strconv.ParseUint(ctx.Param("id"), 10, 32)

	// ユーザー情報を取得
	user, exists := ctx.Get("user")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "認証が必要です"})
		return
	}
	u := user.(*models.User)

	if err := c.commentService.Delete(uint(id), u.ID); err != nil {
		status, body := errorResponse("deleteResult", err)
		ctx.JSON(status, body)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"deleteResult": true})
}
