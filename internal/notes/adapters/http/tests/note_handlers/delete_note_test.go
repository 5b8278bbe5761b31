package notehandlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mininotes/internal/notes/domain/entities"
)

func TestHandler_DeleteNote(t *testing.T) {
	t.Run("Успешное удаление возвращает 204 с пустым телом", func(t *testing.T) {
		service := new(mockNoteService)
		service.On("DeleteNote", mock.Anything, int64(1)).Return(nil)

		app := newTestApp(service)
		resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/notes/1", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Empty(t, body)
		service.AssertExpectations(t)
	})

	t.Run("Отсутствующая заметка возвращает 404", func(t *testing.T) {
		service := new(mockNoteService)
		service.On("DeleteNote", mock.Anything, int64(99)).
			Return(&entities.NoteNotFoundError{NoteID: 99})

		app := newTestApp(service)
		resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/notes/99", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "Note not found", decodeMessage(t, resp).Message)
		service.AssertExpectations(t)
	})

	t.Run("Нечисловой идентификатор возвращает 400", func(t *testing.T) {
		service := new(mockNoteService)

		app := newTestApp(service)
		resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/notes/abc", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		service.AssertNotCalled(t, "DeleteNote")
	})

	t.Run("Ошибка БД возвращает 500", func(t *testing.T) {
		service := new(mockNoteService)
		service.On("DeleteNote", mock.Anything, int64(1)).
			Return(&entities.DatabaseError{Message: "Failed to delete note"})

		app := newTestApp(service)
		resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/notes/1", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "Failed to delete note", decodeMessage(t, resp).Message)
		service.AssertExpectations(t)
	})
}
