// Package api defines service interfaces consumed by transport adapters.
package api

import (
	"context"

	"mininotes/internal/notes/app/dto"
	"mininotes/internal/notes/domain/entities"
)

// NoteService определяет операции сервиса заметок, доступные HTTP-слою.
type NoteService interface {
	CreateNote(ctx context.Context, req *dto.CreateNoteRequest) (*entities.Note, error)
	FindNoteByID(ctx context.Context, noteID int64) (*entities.Note, error)
	FindAllNotes(ctx context.Context) ([]*entities.Note, error)
	UpdateNote(ctx context.Context, noteID int64, req *dto.UpdateNoteRequest) (*entities.Note, error)
	DeleteNote(ctx context.Context, noteID int64) error
}
