package services

// ValidationError フィールドごとのエラーメッセージを持つ検証エラー
type ValidationError struct {
	// Fields フィールド名 -> エラーメッセージ一覧
	Fields map[string][]string
}

// Error errorインターフェースの実装
func (e *ValidationError) Error() string {
	return "入力値の検証に失敗しました"
}

// ResourceError 操作できないリソースを示すエラー。
// リソースが存在しない場合と操作権限がない場合を呼び出し側から区別させない
type ResourceError struct {
	Message string
}

// Error errorインターフェースの実装
func (e *ResourceError) Error() string {
	return e.Message
}

// StorageError 外部ストレージへの保存失敗を示すエラー
type StorageError struct {
	Err error
}

// Error errorインターフェースの実装
func (e *StorageError) Error() string {
	return "ファイルのアップロードに失敗しました: " + e.Err.Error()
}

// Unwrap 原因となったエラーを返す
func (e *StorageError) Unwrap() error {
	return e.Err
}
