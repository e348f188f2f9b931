package validation

import (
	"mime/multipart"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RuleSet フィールドごとの検証ルールとルール名ごとのエラーメッセージの組
type RuleSet struct {
	// Rules フィールド名 -> ルール文字列（例: "required,max=255"）
	Rules map[string]string
	// Messages ルール名 -> エラーメッセージ
	Messages map[string]string
}

// Result 検証結果
type Result struct {
	// Errors フィールド名 -> エラーメッセージ一覧
	Errors map[string][]string
}

// Fails 検証が失敗したか
func (r *Result) Fails() bool {
	return len(r.Errors) > 0
}

var validate = validator.New()

// Validate 入力値をルール表に従って検証
func Validate(fields map[string]interface{}, set RuleSet) *Result {
	result := &Result{Errors: map[string][]string{}}

	for field, rules := range set.Rules {
		value := fields[field]

		// confirmed はフィールド同士の比較なのでエンジンに渡す前に処理する
		rules, confirmed := extractConfirmed(rules)
		if confirmed {
			confirmation := fields[field+"_confirmation"]
			if value != confirmation {
				result.Errors[field] = append(result.Errors[field], set.message("confirmed"))
			}
		}
		if rules == "" {
			continue
		}

		err := validate.Var(value, rules)
		if err == nil {
			continue
		}
		// ValidationErrors 以外はルール表の記述ミス
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			panic(err)
		}
		for _, verr := range verrs {
			result.Errors[field] = append(result.Errors[field], set.message(verr.Tag()))
		}
	}

	return result
}

// message ルール名に対応するメッセージを取得
func (s RuleSet) message(rule string) string {
	if msg, ok := s.Messages[rule]; ok {
		return msg
	}
	return "入力値が不正です"
}

// IsImageFile アップロードされたファイルが画像かどうかをContent-Typeで判定
func IsImageFile(header *multipart.FileHeader) bool {
	return strings.HasPrefix(header.Header.Get("Content-Type"), "image/")
}

// extractConfirmed ルール文字列から confirmed を取り除く
func extractConfirmed(rules string) (string, bool) {
	parts := strings.Split(rules, ",")
	rest := make([]string, 0, len(parts))
	confirmed := false
	for _, part := range parts {
		if part == "confirmed" {
			confirmed = true
			continue
		}
		rest = append(rest, part)
	}
	return strings.Join(rest, ","), confirmed
}
