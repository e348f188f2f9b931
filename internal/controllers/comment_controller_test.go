package controllers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/oshaberi-project/oshaberi_backend/internal/models"
	"github.com/oshaberi-project/oshaberi_backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeCommentRepo struct {
	comments map[uint]*models.AiModelComment
	nextID   uint
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: map[uint]*models.AiModelComment{}, nextID: 1}
}

func (f *fakeCommentRepo) Create(comment *models.AiModelComment) error {
	comment.ID = f.nextID
	f.nextID++
	f.comments[comment.ID] = comment
	return nil
}

func (f *fakeCommentRepo) FindByID(id uint) (*models.AiModelComment, error) {
	if comment, ok := f.comments[id]; ok {
		return comment, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCommentRepo) Update(comment *models.AiModelComment) error {
	f.comments[comment.ID] = comment
	return nil
}

func (f *fakeCommentRepo) Delete(id uint) error {
	delete(f.comments, id)
	return nil
}

func (f *fakeCommentRepo) ListByAiModel(aiModelID uint) ([]models.AiModelComment, error) {
	var result []models.AiModelComment
	for _, comment := range f.comments {
		if comment.AiModelID == aiModelID {
			result = append(result, *comment)
		}
	}
	return result, nil
}

func setupCommentRouter(commentRepo *fakeCommentRepo, aiModelRepo *fakeAiModelRepo, user *models.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewCommentController(services.NewCommentService(commentRepo, aiModelRepo))

	r := gin.New()
	r.GET("/aimodels/:id/comments", controller.List)
	r.POST("/aimodels/:id/comments", injectUser(user), controller.Create)
	r.PUT("/comments/:id", injectUser(user), controller.Update)
	r.DELETE("/comments/:id", injectUser(user), controller.Delete)
	return r
}

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestCommentController_Create(t *testing.T) {
	aiModelRepo := newFakeAiModelRepo()
	aiModelRepo.aiModels[1] = &models.AiModel{ID: 1, UserID: 1, Name: "Rei"}
	commentRepo := newFakeCommentRepo()
	user := &models.User{ID: 3}

	w := httptest.NewRecorder()
	setupCommentRouter(commentRepo, aiModelRepo, user).
		ServeHTTP(w, jsonRequest(http.MethodPost, "/aimodels/1/comments", `{"comment":"かわいい"}`))

	require.Equal(t, http.StatusOK, w.Code)
	result := decodeBody(t, w)
	assert.Equal(t, true, result["createResult"])

	// 作成したコメントのデータも返す
	created := result["createdComment"].(map[string]interface{})
	assert.Equal(t, "かわいい", created["comment"])
	assert.Equal(t, float64(1), created["ai_model_id"])
	assert.Equal(t, float64(3), created["user_id"])
}

func TestCommentController_Create_NonexistentAiModel(t *testing.T) {
	commentRepo := newFakeCommentRepo()
	user := &models.User{ID: 3}

	w := httptest.NewRecorder()
	setupCommentRouter(commentRepo, newFakeAiModelRepo(), user).
		ServeHTTP(w, jsonRequest(http.MethodPost, "/aimodels/99/comments", `{"comment":"かわいい"}`))

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	result := decodeBody(t, w)
	assert.Equal(t, false, result["createResult"])
	fields := result["error"].(map[string]interface{})
	assert.Equal(t, []interface{}{"存在しないAiモデルです。"}, fields["ai_model_id"])
	assert.Empty(t, commentRepo.comments)
}

func TestCommentController_List_ZeroID(t *testing.T) {
	w := httptest.NewRecorder()
	setupCommentRouter(newFakeCommentRepo(), newFakeAiModelRepo(), nil).
		ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/aimodels/0/comments", nil))

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	result := decodeBody(t, w)
	assert.Contains(t, result["error"].(map[string]interface{}), "id")
}

func TestCommentController_Update(t *testing.T) {
	aiModelRepo := newFakeAiModelRepo()
	aiModelRepo.aiModels[1] = &models.AiModel{ID: 1, UserID: 1}
	commentRepo := newFakeCommentRepo()
	commentRepo.comments[5] = &models.AiModelComment{ID: 5, AiModelID: 1, UserID: 3, Comment: "before"}

	// 投稿者以外は更新できない
	w := httptest.NewRecorder()
	setupCommentRouter(commentRepo, aiModelRepo, &models.User{ID: 9}).
		ServeHTTP(w, jsonRequest(http.MethodPut, "/comments/5", `{"ai_model_id":1,"comment":"after"}`))

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	denied := decodeBody(t, w)
	assert.Equal(t, false, denied["updateResult"])
	assert.Contains(t, denied["error"].(map[string]interface{}), "id")
	assert.Equal(t, "before", commentRepo.comments[5].Comment)

	// 投稿者は更新できる
	w = httptest.NewRecorder()
	setupCommentRouter(commentRepo, aiModelRepo, &models.User{ID: 3}).
		ServeHTTP(w, jsonRequest(http.MethodPut, "/comments/5", `{"ai_model_id":1,"comment":"after"}`))

	require.Equal(t, http.StatusOK, w.Code)
	updated := decodeBody(t, w)
	assert.Equal(t, true, updated["updateResult"])
	assert.Equal(t, "after", commentRepo.comments[5].Comment)
}

func TestCommentController_Delete(t *testing.T) {
	commentRepo := newFakeCommentRepo()
	commentRepo.comments[5] = &models.AiModelComment{ID: 5, AiModelID: 1, UserID: 3}

	// 投稿者以外は削除できない
	w := httptest.NewRecorder()
	setupCommentRouter(commentRepo, newFakeAiModelRepo(), &models.User{ID: 9}).
		ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/comments/5", nil))

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	denied := decodeBody(t, w)
	assert.Equal(t, false, denied["deleteResult"])
	require.Contains(t, commentRepo.comments, uint(5))

	// 投稿者は削除できる
	w = httptest.NewRecorder()
	setupCommentRouter(commentRepo, newFakeAiModelRepo(), &models.User{ID: 3}).
		ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/comments/5", nil))

	require.Equal(t, http.StatusOK, w.Code)
	deleted := decodeBody(t, w)
	assert.Equal(t, true, deleted["deleteResult"])
	assert.NotContains(t, commentRepo.comments, uint(5))
}
