// Package repositories defines repository interfaces for the notes service.
package repositories

import (
	"context"

	"mininotes/internal/notes/domain/entities"
)

// NoteRepository определяет интерфейс для работы с репозиторием заметок.
// Отсутствие строки не является ошибкой хранилища: FindByID и Update возвращают
// (nil, nil), Delete возвращает false.
type NoteRepository interface {
	Create(ctx context.Context, title, content string) (*entities.Note, error)
	FindByID(ctx context.Context, noteID int64) (*entities.Note, error)
	FindAll(ctx context.Context) ([]*entities.Note, error)
	Update(ctx context.Context, noteID int64, title, content *string) (*entities.Note, error)
	Delete(ctx context.Context, noteID int64) (bool, error)
}
