package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthController ヘルスチェック用のコントローラー
type HealthController struct{}

// NewHealthController HealthControllerを作成
func NewHealthController() *HealthController {
	return &HealthController{}
}

// Check サーバーの稼働状態を返す
func (c *HealthController) Check(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
