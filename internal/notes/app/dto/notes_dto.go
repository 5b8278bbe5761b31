// Package dto содержит структуры запросов и ответов HTTP API заметок.
package dto

import (
	"time"

	"mininotes/internal/notes/domain/entities"
)

// Границы длины полей в символах (Unicode code points).
const (
	TitleMaxLength   = 200
	ContentMaxLength = 5000
)

// CreateNoteRequest содержит данные для создания заметки.
type CreateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdateNoteRequest содержит данные для обновления заметки.
// Отсутствующее поле остается без изменений; запрос без полей допустим
// и лишь обновляет updatedAt.
type UpdateNoteRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// NoteResponse содержит информацию о заметке для ответа.
// Временные метки сериализуются строками в формате RFC3339.
type NoteResponse struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// MessageResponse содержит ответ с единственным текстовым сообщением.
type MessageResponse struct {
	Message string `json:"message"`
}

// FromEntity преобразует доменную заметку в NoteResponse.
func FromEntity(note *entities.Note) *NoteResponse {
	return &NoteResponse{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		CreatedAt: note.CreatedAt.Format(time.RFC3339),
		UpdatedAt: note.UpdatedAt.Format(time.RFC3339),
	}
}

// FromEntities преобразует список доменных заметок в список NoteResponse.
func FromEntities(notes []*entities.Note) []*NoteResponse {
	responses := make([]*NoteResponse, 0, len(notes))
	for _, note := range notes {
		responses = append(responses, FromEntity(note))
	}
	return responses
}
