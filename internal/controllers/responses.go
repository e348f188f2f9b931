package controllers

import (
	"errors"
	"net/http"

	"github.com/oshaberi-project/oshaberi_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// errorResponse サービス層のエラーを結果キー付きのレスポンスに変換する。
// 検証エラーと操作できないリソースはどちらも422として返す
func errorResponse(resultKey string, err error) (int, gin.H) {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusUnprocessableEntity, gin.H{
			resultKey: false,
			"error":   validationErr.Fields,
		}
	}

	var resourceErr *services.ResourceError
	if errors.As(err, &resourceErr) {
		return http.StatusUnprocessableEntity, gin.H{
			resultKey: false,
			"error":   gin.H{"id": resourceErr.Message},
		}
	}

	var storageErr *services.StorageError
	if errors.As(err, &storageErr) {
		return http.StatusInternalServerError, gin.H{
			resultKey: false,
			"error":   storageErr.Error(),
		}
	}

	return http.StatusInternalServerError, gin.H{
		resultKey: false,
		"error":   "サーバーエラーが発生しました",
	}
}
