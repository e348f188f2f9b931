package models

// Owned 所有者を持つリソースのインターフェース
type Owned interface {
	OwnerID() uint
}

// OwnerID AIモデルの所有者のユーザーID
func (m *AiModel) OwnerID() uint {
	return m.UserID
}

// OwnerID コメントの投稿者のユーザーID
func (c *AiModelComment) OwnerID() uint {
	return c.UserID
}

// IsOwner リソースの所有者と操作ユーザーのIDが一致するか判定
func IsOwner(resource Owned, userID uint) bool {
	return resource.OwnerID() == userID
}
