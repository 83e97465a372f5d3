package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/pixelhunt/design-backend/internal/domain/valueobject"
)

// User описывает пользователя маркетплейса.
type User struct {
	ID           uuid.UUID
	Email        string
	Username     string
	DisplayName  string
	PasswordHash string
	Role         valueobject.Role
	IsActive     bool
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CurrentUser — идентичность, с которой работают usecases. Роль определяется
// один раз на границе авторизации, дальше она не выводится заново.
type CurrentUser struct {
	ID          uuid.UUID
	DisplayName string
	Email       string
	Role        valueobject.Role
}

// Session представляет сохранённую сессию пользователя.
type Session struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	RefreshToken string
	UserAgent    *string
	IPAddress    *string
	ExpiresAt    time.Time
	CreatedAt    time.Time
}

// MediaFile — опорная запись о загруженном файле. Содержимое файла для
// бизнес-логики непрозрачно, хранится только ссылка и метаданные.
type MediaFile struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	FileName    string
	FilePath    string
	SizeBytes   int64
	ContentType string
	CreatedAt   time.Time
}
