package validation

import (
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate_AiModelCreateRules(t *testing.T) {
	header := &multipart.FileHeader{Filename: "mouth.png"}

	t.Run("全項目が有効", func(t *testing.T) {
		result := Validate(map[string]interface{}{
			"name":              "Rei",
			"self_introduction": "hi",
			"open_mouth_image":  header,
			"close_mouth_image": header,
		}, AiModelCreateRules)

		assert.False(t, result.Fails())
	})

	t.Run("nameが未入力", func(t *testing.T) {
		result := Validate(map[string]interface{}{
			"name":              "",
			"open_mouth_image":  header,
			"close_mouth_image": header,
		}, AiModelCreateRules)

		assert.True(t, result.Fails())
		assert.Equal(t, []string{"必須項目です。"}, result.Errors["name"])
		assert.Empty(t, result.Errors["open_mouth_image"])
	})

	t.Run("nameが256文字", func(t *testing.T) {
		result := Validate(map[string]interface{}{
			"name":              strings.Repeat("あ", 256),
			"open_mouth_image":  header,
			"close_mouth_image": header,
		}, AiModelCreateRules)

		assert.True(t, result.Fails())
		assert.Equal(t, []string{"255文字以下で入力してください"}, result.Errors["name"])
	})

	t.Run("nameが255文字ちょうど", func(t *testing.T) {
		result := Validate(map[string]interface{}{
			"name":              strings.Repeat("あ", 255),
			"open_mouth_image":  header,
			"close_mouth_image": header,
		}, AiModelCreateRules)

		assert.False(t, result.Fails())
	})

	t.Run("画像が未指定", func(t *testing.T) {
		var missing *multipart.FileHeader
		result := Validate(map[string]interface{}{
			"name":              "Rei",
			"open_mouth_image":  missing,
			"close_mouth_image": header,
		}, AiModelCreateRules)

		assert.True(t, result.Fails())
		assert.Equal(t, []string{"必須項目です。"}, result.Errors["open_mouth_image"])
	})
}

func TestValidate_AiModelCommentCreateRules(t *testing.T) {
	t.Run("全項目が有効", func(t *testing.T) {
		result := Validate(map[string]interface{}{
			"ai_model_id": uint(1),
			"comment":     "いいですね",
		}, AiModelCommentCreateRules)

		assert.False(t, result.Fails())
	})

	t.Run("ai_model_idが0", func(t *testing.T) {
		result := Validate(map[string]interface{}{
			"ai_model_id": uint(0),
			"comment":     "いいですね",
		}, AiModelCommentCreateRules)

		assert.True(t, result.Fails())
		assert.Equal(t, []string{"必須項目です。"}, result.Errors["ai_model_id"])
	})

	t.Run("commentが256文字", func(t *testing.T) {
		result := Validate(map[string]interface{}{
			"ai_model_id": uint(1),
			"comment":     strings.Repeat("a", 256),
		}, AiModelCommentCreateRules)

		assert.True(t, result.Fails())
		assert.Equal(t, []string{"255文字以下で入力してください"}, result.Errors["comment"])
	})
}

func TestValidate_UserCreateRules(t *testing.T) {
	t.Run("全項目が有効", func(t *testing.T) {
		result := Validate(map[string]interface{}{
			"name":                  "test",
			"email":                 "a@x.com",
			"password":              "password123",
			"password_confirmation": "password123",
		}, UserCreateRules)

		assert.False(t, result.Fails())
	})

	t.Run("メールアドレスの形式が不正", func(t *testing.T) {
		result := Validate(map[string]interface{}{
			"name":                  "test",
			"email":                 "not-an-email",
			"password":              "password123",
			"password_confirmation": "password123",
		}, UserCreateRules)

		assert.True(t, result.Fails())
		assert.Equal(t, []string{"メールアドレスを入力してください"}, result.Errors["email"])
	})

	t.Run("パスワードが8文字未満", func(t *testing.T) {
		result := Validate(map[string]interface{}{
			"name":                  "test",
			"email":                 "a@x.com",
			"password":              "short",
			"password_confirmation": "short",
		}, UserCreateRules)

		assert.True(t, result.Fails())
		assert.Equal(t, []string{"8文字以上入力してください"}, result.Errors["password"])
	})

	t.Run("確認入力が不一致", func(t *testing.T) {
		result := Validate(map[string]interface{}{
			"name":                  "test",
			"email":                 "a@x.com",
			"password":              "password123",
			"password_confirmation": "password456",
		}, UserCreateRules)

		assert.True(t, result.Fails())
		assert.Contains(t, result.Errors["password"], "パスワードの確認入力が一致しません")
	})
}

func TestIsImageFile(t *testing.T) {
	image := &multipart.FileHeader{
		Filename: "icon.png",
		Header:   textproto.MIMEHeader{"Content-Type": []string{"image/png"}},
	}
	text := &multipart.FileHeader{
		Filename: "icon.txt",
		Header:   textproto.MIMEHeader{"Content-Type": []string{"text/plain"}},
	}

	assert.True(t, IsImageFile(image))
	assert.False(t, IsImageFile(text))
	// Content-Typeが無いヘッダーは画像とみなさない
	assert.False(t, IsImageFile(&multipart.FileHeader{Filename: "icon.png"}))
}
