// Package app implements application business logic for the notes service.
package app

import (
	"context"
	"errors"
	"fmt"

	"mininotes/internal/notes/app/dto"
	"mininotes/internal/notes/domain/entities"
	"mininotes/internal/notes/ports/repositories"
)

// Сообщения для DatabaseError по операциям.
const (
	errMsgCreate  = "Failed to create note"
	errMsgFind    = "Failed to find note"
	errMsgFindAll = "Failed to fetch notes"
	errMsgUpdate  = "Failed to update note"
	errMsgDelete  = "Failed to delete note"
)

// NoteUseCase представляет собой бизнес-логику работы с заметками.
// Каждая операция возвращает либо результат, либо одну из доменных ошибок:
// ValidationError, NoteNotFoundError или DatabaseError.
type NoteUseCase struct {
	noteRepo repositories.NoteRepository
}

// NewNoteUseCase создает новый экземпляр NoteUseCase.
func NewNoteUseCase(noteRepo repositories.NoteRepository) *NoteUseCase {
	return &NoteUseCase{noteRepo: noteRepo}
}

// CreateNote создает новую заметку из провалидированного запроса.
func (uc *NoteUseCase) CreateNote(ctx context.Context, req *dto.CreateNoteRequest) (*entities.Note, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	note, err := uc.noteRepo.Create(ctx, req.Title, req.Content)
	if err != nil {
		return nil, wrapDatabaseError(errMsgCreate, err)
	}

	return note, nil
}

// FindNoteByID возвращает заметку по ID.
func (uc *NoteUseCase) FindNoteByID(ctx context.Context, noteID int64) (*entities.Note, error) {
	note, err := uc.noteRepo.FindByID(ctx, noteID)
	if err != nil {
		return nil, wrapDatabaseError(errMsgFind, err)
	}
	if note == nil {
		return nil, &entities.NoteNotFoundError{NoteID: noteID}
	}

	return note, nil
}

// FindAllNotes возвращает все заметки в порядке, определяемом хранилищем.
func (uc *NoteUseCase) FindAllNotes(ctx context.Context) ([]*entities.Note, error) {
	notes, err := uc.noteRepo.FindAll(ctx)
	if err != nil {
		return nil, wrapDatabaseError(errMsgFindAll, err)
	}

	return notes, nil
}

// UpdateNote обновляет существующую заметку. Запрос без полей только
// обновляет updatedAt.
func (uc *NoteUseCase) UpdateNote(ctx context.Context, noteID int64, req *dto.UpdateNoteRequest) (*entities.Note, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	note, err := uc.noteRepo.Update(ctx, noteID, req.Title, req.Content)
	if err != nil {
		return nil, wrapDatabaseError(errMsgUpdate, err)
	}
	if note == nil {
		return nil, &entities.NoteNotFoundError{NoteID: noteID}
	}

	return note, nil
}

// DeleteNote удаляет заметку.
func (uc *NoteUseCase) DeleteNote(ctx context.Context, noteID int64) error {
	deleted, err := uc.noteRepo.Delete(ctx, noteID)
	if err != nil {
		return wrapDatabaseError(errMsgDelete, err)
	}
	if !deleted {
		return &entities.NoteNotFoundError{NoteID: noteID}
	}

	return nil
}

// wrapDatabaseError оборачивает ошибку хранилища в DatabaseError.
// Уже типизированная NoteNotFoundError проходит без изменений.
func wrapDatabaseError(message string, err error) error {
	var notFound *entities.NoteNotFoundError
	if errors.As(err, &notFound) {
		return notFound
	}
	return &entities.DatabaseError{
		Message: message,
		Cause:   fmt.Errorf("%s: %w", message, err),
	}
}
