// Package http содержит HTTP-обработчики сервиса заметок.
package http

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"mininotes/internal/notes/adapters/http/middleware"
	"mininotes/internal/notes/app/dto"
	"mininotes/internal/notes/domain/entities"
	"mininotes/internal/notes/ports/api"
	"mininotes/pkg/logger"
)

// Константы сообщений для логирования.
const (
	LogHandlerCreateNote = "handling create note request"
	LogHandlerGetNote    = "handling get note request"
	LogHandlerListNotes  = "handling list notes request"
	LogHandlerUpdateNote = "handling update note request"
	LogHandlerDeleteNote = "handling delete note request"
)

// Сообщения, уходящие клиенту.
const (
	MsgHome         = "Welcome to Mini-Notes API. Use /notes"
	MsgNoteNotFound = "Note not found"

	ErrMsgInvalidNoteID      = "invalid note id"
	ErrMsgInvalidRequestBody = "invalid request body"

	ErrMsgFetchNotes = "Failed to fetch notes"
	ErrMsgFetchNote  = "Failed to find note"
	ErrMsgCreateNote = "Failed to create note"
	ErrMsgUpdateNote = "Failed to update note"
	ErrMsgDeleteNote = "Failed to delete note"
)

// Handler обработчик HTTP-запросов для работы с заметками.
type Handler struct {
	noteService api.NoteService
}

// NewHandler создает новый экземпляр обработчика заметок.
func NewHandler(noteService api.NoteService) *Handler {
	return &Handler{noteService: noteService}
}

// Home обрабатывает запрос корневого маршрута.
func (h *Handler) Home(ctx fiber.Ctx) error {
	if err := ctx.JSON(dto.MessageResponse{Message: MsgHome}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// CreateNote обрабатывает запрос на создание новой заметки.
func (h *Handler) CreateNote(ctx fiber.Ctx) error {
	requestCtx := requestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.CreateNote"))
	log.Debug(requestCtx, LogHandlerCreateNote)

	var req dto.CreateNoteRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Error(requestCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return sendMessage(ctx, fiber.StatusBadRequest, ErrMsgInvalidRequestBody)
	}

	note, err := h.noteService.CreateNote(requestCtx, &req)
	if err != nil {
		log.Error(requestCtx, "failed to create note", zap.Error(err))
		return handleError(ctx, err, ErrMsgCreateNote)
	}

	if err := ctx.Status(fiber.StatusCreated).JSON(dto.FromEntity(note)); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// GetNote обрабатывает запрос на получение заметки по ID.
func (h *Handler) GetNote(ctx fiber.Ctx) error {
	requestCtx := requestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.GetNote"))
	log.Debug(requestCtx, LogHandlerGetNote)

	noteID, err := parseNoteID(ctx)
	if err != nil {
		log.Error(requestCtx, ErrMsgInvalidNoteID, zap.Error(err))
		return sendMessage(ctx, fiber.StatusBadRequest, ErrMsgInvalidNoteID)
	}

	note, err := h.noteService.FindNoteByID(requestCtx, noteID)
	if err != nil {
		log.Error(requestCtx, "failed to get note", zap.Error(err))
		return handleError(ctx, err, ErrMsgFetchNote)
	}

	if err := ctx.JSON(dto.FromEntity(note)); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// ListNotes обрабатывает запрос на получение списка всех заметок.
func (h *Handler) ListNotes(ctx fiber.Ctx) error {
	requestCtx := requestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.ListNotes"))
	log.Debug(requestCtx, LogHandlerListNotes)

	notes, err := h.noteService.FindAllNotes(requestCtx)
	if err != nil {
		log.Error(requestCtx, "failed to list notes", zap.Error(err))
		return handleError(ctx, err, ErrMsgFetchNotes)
	}

	if err := ctx.JSON(dto.FromEntities(notes)); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// UpdateNote обрабатывает запрос на обновление заметки.
func (h *Handler) UpdateNote(ctx fiber.Ctx) error {
	requestCtx := requestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.UpdateNote"))
	log.Debug(requestCtx, LogHandlerUpdateNote)

	noteID, err := parseNoteID(ctx)
	if err != nil {
		log.Error(requestCtx, ErrMsgInvalidNoteID, zap.Error(err))
		return sendMessage(ctx, fiber.StatusBadRequest, ErrMsgInvalidNoteID)
	}

	var req dto.UpdateNoteRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Error(requestCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return sendMessage(ctx, fiber.StatusBadRequest, ErrMsgInvalidRequestBody)
	}

	note, err := h.noteService.UpdateNote(requestCtx, noteID, &req)
	if err != nil {
		log.Error(requestCtx, "failed to update note", zap.Error(err))
		return handleError(ctx, err, ErrMsgUpdateNote)
	}

	if err := ctx.JSON(dto.FromEntity(note)); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// DeleteNote обрабатывает запрос на удаление заметки.
func (h *Handler) DeleteNote(ctx fiber.Ctx) error {
	requestCtx := requestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.DeleteNote"))
	log.Debug(requestCtx, LogHandlerDeleteNote)

	noteID, err := parseNoteID(ctx)
	if err != nil {
		log.Error(requestCtx, ErrMsgInvalidNoteID, zap.Error(err))
		return sendMessage(ctx, fiber.StatusBadRequest, ErrMsgInvalidNoteID)
	}

	if err := h.noteService.DeleteNote(requestCtx, noteID); err != nil {
		log.Error(requestCtx, "failed to delete note", zap.Error(err))
		return handleError(ctx, err, ErrMsgDeleteNote)
	}

	if err := ctx.SendStatus(fiber.StatusNoContent); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// requestContext возвращает контекст запроса из Locals или контекст fiber.
func requestContext(ctx fiber.Ctx) context.Context {
	if requestCtx, ok := ctx.Locals(middleware.RequestContextKey).(context.Context); ok {
		return requestCtx
	}
	return ctx.Context()
}

// parseNoteID извлекает числовой идентификатор заметки из пути.
func parseNoteID(ctx fiber.Ctx) (int64, error) {
	noteID, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse note id: %w", err)
	}
	return noteID, nil
}

// handleError отображает доменную ошибку на HTTP-статус:
// ValidationError - 400, NoteNotFoundError - 404, остальное - 500
// с обобщенным сообщением операции.
func handleError(ctx fiber.Ctx, err error, fallback string) error {
	var validationErr *entities.ValidationError
	if errors.As(err, &validationErr) {
		return sendMessage(ctx, fiber.StatusBadRequest, validationErr.Error())
	}

	var notFoundErr *entities.NoteNotFoundError
	if errors.As(err, &notFoundErr) {
		return sendMessage(ctx, fiber.StatusNotFound, MsgNoteNotFound)
	}

	var dbErr *entities.DatabaseError
	if errors.As(err, &dbErr) {
		return sendMessage(ctx, fiber.StatusInternalServerError, dbErr.Message)
	}

	return sendMessage(ctx, fiber.StatusInternalServerError, fallback)
}

// sendMessage отправляет JSON-ответ с единственным полем message.
func sendMessage(ctx fiber.Ctx, status int, message string) error {
	if err := ctx.Status(status).JSON(dto.MessageResponse{Message: message}); err != nil {
		return fmt.Errorf("error sending %d response: %w", status, err)
	}
	return nil
}
