package constants

// ページングのデフォルト値
const (
	DefaultSkip  = 0
	DefaultLimit = 100
)

// 開発モードの固定ユーザー
const (
	DevIdentityEmail    = "admin@example.com"
	DevIdentityPassword = "password"
)

// エラーメッセージ
const (
	ErrUserNotFound    = "User not found"
	ErrItemNotFound    = "Item not found"
	ErrEmailRegistered = "Email already registered"
	ErrNotOwner        = "Not the owner of this item"
	ErrUnexpected      = "Unexpected error"
	ErrInvalidID       = "Invalid id"
	ErrInvalidInput    = "Invalid input"
)
