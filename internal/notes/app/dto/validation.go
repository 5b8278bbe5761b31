package dto

import (
	"unicode/utf8"

	"mininotes/internal/notes/domain/entities"
)

// Сообщения ошибок валидации.
const (
	msgRequired = "is required"
	msgTooLong  = "is too long"
)

// Validate проверяет обязательность и границы длины полей.
// Значения не обрезаются: пробельные строки считаются непустыми.
func (r *CreateNoteRequest) Validate() error {
	if err := requireBounded("title", r.Title, TitleMaxLength); err != nil {
		return err
	}
	if err := requireBounded("content", r.Content, ContentMaxLength); err != nil {
		return err
	}
	return nil
}

// Validate проверяет границы длины присутствующих полей.
// Запрос без единого поля валиден.
func (r *UpdateNoteRequest) Validate() error {
	if r.Title != nil {
		if err := requireBounded("title", *r.Title, TitleMaxLength); err != nil {
			return err
		}
	}
	if r.Content != nil {
		if err := requireBounded("content", *r.Content, ContentMaxLength); err != nil {
			return err
		}
	}
	return nil
}

// requireBounded проверяет, что значение непустое и не длиннее max символов.
func requireBounded(field, value string, max int) error {
	if value == "" {
		return &entities.ValidationError{Message: msgRequired, Field: field}
	}
	if utf8.RuneCountInString(value) > max {
		return &entities.ValidationError{Message: msgTooLong, Field: field}
	}
	return nil
}
