package noteusecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mininotes/internal/notes/app"
	"mininotes/internal/notes/domain/entities"
)

func TestNoteUseCase_DeleteNote(t *testing.T) {
	ctx := context.Background()

	t.Run("Успешное удаление заметки", func(t *testing.T) {
		repo := new(mockNoteRepository)
		repo.On("Delete", ctx, int64(1)).Return(true, nil)

		uc := app.NewNoteUseCase(repo)
		err := uc.DeleteNote(ctx, 1)

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Отсутствующая заметка дает NoteNotFoundError", func(t *testing.T) {
		repo := new(mockNoteRepository)
		repo.On("Delete", ctx, int64(99)).Return(false, nil)

		uc := app.NewNoteUseCase(repo)
		err := uc.DeleteNote(ctx, 99)

		require.Error(t, err)

		var notFoundErr *entities.NoteNotFoundError
		require.ErrorAs(t, err, &notFoundErr)
		assert.Equal(t, int64(99), notFoundErr.NoteID)
		repo.AssertExpectations(t)
	})

	t.Run("Ошибка хранилища оборачивается в DatabaseError", func(t *testing.T) {
		repo := new(mockNoteRepository)
		repo.On("Delete", ctx, int64(1)).Return(false, errors.New("connection closed"))

		uc := app.NewNoteUseCase(repo)
		err := uc.DeleteNote(ctx, 1)

		require.Error(t, err)

		var databaseErr *entities.DatabaseError
		require.ErrorAs(t, err, &databaseErr)
		assert.Equal(t, "Failed to delete note", databaseErr.Message)
		repo.AssertExpectations(t)
	})
}
