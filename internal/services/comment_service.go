package services

import (
	"github.com/oshaberi-project/oshaberi_backend/internal/models"
	"github.com/oshaberi-project/oshaberi_backend/internal/repository"
	"github.com/oshaberi-project/oshaberi_backend/internal/validation"
)

// CommentService AIモデルへのコメントに関するサービスインターフェース
type CommentService interface {
	Create(aiModelID uint, comment string, userID uint) (*models.AiModelComment, error)
	ListByAiModel(aiModelID uint) ([]models.AiModelComment, error)
	Update(id, aiModelID uint, comment string, userID uint) error
	Delete(id, userID uint) error
}

// commentService CommentServiceの実装
type commentService struct {
	commentRepo repository.CommentRepository
	aiModelRepo repository.AiModelRepository
}

// NewCommentService CommentServiceを作成
func NewCommentService(commentRepo repository.CommentRepository, aiModelRepo repository.AiModelRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		aiModelRepo: aiModelRepo,
	}
}

// validateComment コメントの入力値をルール表と参照先の存在で検証
func (s *commentService) validateComment(aiModelID uint, comment string, set validation.RuleSet) *validation.Result {
	result := validation.Validate(map[string]interface{}{
		"ai_model_id": aiModelID,
		"comment":     comment,
	}, set)

	// 参照先のAIモデルの存在は登録のたびに確認する
	if len(result.Errors["ai_model_id"]) == 0 {
		if _, err := s.aiModelRepo.FindByID(aiModelID); err != nil {
			result.Errors["ai_model_id"] = append(result.Errors["ai_model_id"], validation.ExistsMessage(set))
		}
	}

	return result
}

// Create 新しいコメントを作成して作成したコメントを返す
func (s *commentService) Create(aiModelID uint, comment string, userID uint) (*models.AiModelComment, error) {
	// バリデーションの検証
	result := s.validateComment(aiModelID, comment, validation.AiModelCommentCreateRules)
	if result.Fails() {
		return nil, &ValidationError{Fields: result.Errors}
	}

	created := &models.AiModelComment{
		AiModelID: aiModelID,
		UserID:    userID,
		Comment:   comment,
	}
	if err := s.commentRepo.Create(created); err != nil {
		return nil, err
	}

	return created, nil
}

// ListByAiModel AIモデルのコメント一覧を取得
func (s *commentService) ListByAiModel(aiModelID uint) ([]models.AiModelComment, error) {
	// idが0の場合は検索せずに存在しない扱いとする
	if aiModelID == 0 {
		return nil, &ResourceError{Message: "存在しないAIモデルです"}
	}

	return s.commentRepo.ListByAiModel(aiModelID)
}

// Update コメントを更新。投稿者以外は更新できない
func (s *commentService) Update(id, aiModelID uint, comment string, userID uint) error {
	// 存在しない場合と権限がない場合は同じエラーを返す
	target, err := s.commentRepo.FindByID(id)
	if err != nil || !models.IsOwner(target, userID) {
		return &ResourceError{Message: "更新できないコメントです"}
	}

	// 登録時と同じルールで全項目を再検証する
	result := s.validateComment(aiModelID, comment, validation.AiModelCommentUpdateRules)
	if result.Fails() {
		return &ValidationError{Fields: result.Errors}
	}

	target.AiModelID = aiModelID
	target.Comment = comment

	return s.commentRepo.Update(target)
}

// Delete コメントを削除。投稿者以外は削除できない
func (s *commentService) Delete(id, userID uint) error {
	// 存在しない場合と権限がない場合は同じエラーを返す
	target, err := s.commentRepo.FindByID(id)
	if err != nil || !models.IsOwner(target, userID) {
		return &ResourceError{Message: "削除できないコメントです"}
	}

	return s.commentRepo.Delete(id)
}
