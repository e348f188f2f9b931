package validation

// AIモデル登録のバリデーションルール
var AiModelCreateRules = RuleSet{
	Rules: map[string]string{
		"name":              "required,max=255",
		"open_mouth_image":  "required",
		"close_mouth_image": "required",
	},
	Messages: map[string]string{
		"required": "必須項目です。",
		"max":      "255文字以下で入力してください",
	},
}

// コメント登録のバリデーションルール
var AiModelCommentCreateRules = RuleSet{
	Rules: map[string]string{
		"ai_model_id": "required,numeric",
		"comment":     "required,max=255",
	},
	Messages: map[string]string{
		"required": "必須項目です。",
		"exists":   "存在しないAiモデルです。",
		"numeric":  "数値を入力してください",
		"max":      "255文字以下で入力してください",
	},
}

// コメント更新のバリデーションルール（登録時と同じ形で全項目を再検証する）
var AiModelCommentUpdateRules = RuleSet{
	Rules:    AiModelCommentCreateRules.Rules,
	Messages: AiModelCommentCreateRules.Messages,
}

// ユーザー登録のバリデーションルール
var UserCreateRules = RuleSet{
	Rules: map[string]string{
		"name":     "required,max=255",
		"email":    "required,email,max=255",
		"password": "required,min=8,confirmed",
	},
	Messages: map[string]string{
		"required":  "必須項目です。",
		"max":       "255文字以下入力してください",
		"min":       "8文字以上入力してください",
		"unique":    "既にほかのユーザーが利用しています",
		"email":     "メールアドレスを入力してください",
		"confirmed": "パスワードの確認入力が一致しません",
		"image":     "画像を指定してください",
	},
}

// ユーザー情報更新のバリデーションルール
var UserUpdateRules = RuleSet{
	Rules: map[string]string{
		"name":  "required,max=255",
		"email": "required,email,max=255",
	},
	Messages: UserCreateRules.Messages,
}

// ExistsMessage 外部キーの参照先が存在しない場合のメッセージ
func ExistsMessage(set RuleSet) string {
	return set.message("exists")
}

// UniqueMessage 一意制約に違反した場合のメッセージ
func UniqueMessage(set RuleSet) string {
	return set.message("unique")
}

// ImageMessage 画像以外のファイルが指定された場合のメッセージ
func ImageMessage(set RuleSet) string {
	return set.message("image")
}
