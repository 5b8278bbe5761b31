package notehandlers_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpadapter "mininotes/internal/notes/adapters/http"
	"mininotes/internal/notes/app/dto"
	"mininotes/internal/notes/domain/entities"
)

type mockNoteService struct {
	mock.Mock
}

func (m *mockNoteService) CreateNote(ctx context.Context, req *dto.CreateNoteRequest) (*entities.Note, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *mockNoteService) FindNoteByID(ctx context.Context, noteID int64) (*entities.Note, error) {
	args := m.Called(ctx, noteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *mockNoteService) FindAllNotes(ctx context.Context) ([]*entities.Note, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Note), args.Error(1)
}

func (m *mockNoteService) UpdateNote(ctx context.Context, noteID int64, req *dto.UpdateNoteRequest) (*entities.Note, error) {
	args := m.Called(ctx, noteID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *mockNoteService) DeleteNote(ctx context.Context, noteID int64) error {
	args := m.Called(ctx, noteID)
	return args.Error(0)
}

// newTestApp собирает fiber-приложение с маршрутизацией поверх mock-сервиса.
func newTestApp(service *mockNoteService) *fiber.App {
	app := fiber.New()
	httpadapter.SetupRouter(app, service, []string{"http://localhost:5173"})
	return app
}

// decodeMessage читает тело ответа как MessageResponse.
func decodeMessage(t *testing.T, resp *http.Response) dto.MessageResponse {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var message dto.MessageResponse
	require.NoError(t, json.Unmarshal(body, &message))
	return message
}

// decodeNote читает тело ответа как NoteResponse.
func decodeNote(t *testing.T, resp *http.Response) dto.NoteResponse {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var note dto.NoteResponse
	require.NoError(t, json.Unmarshal(body, &note))
	return note
}
