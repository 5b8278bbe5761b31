package entities

import "fmt"

// NoteNotFoundError возвращается, когда запрошенная заметка не существует.
type NoteNotFoundError struct {
	NoteID int64
}

func (e *NoteNotFoundError) Error() string {
	return fmt.Sprintf("note %d not found", e.NoteID)
}

// ValidationError возвращается при некорректных входных данных.
// Field указывает поле с ошибкой, если оно известно.
type ValidationError struct {
	Message string
	Field   string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// DatabaseError оборачивает неожиданную ошибку хранилища. Наружу уходит только
// Message, исходная причина сохраняется в Cause для логирования.
type DatabaseError struct {
	Message string
	Cause   error
}

func (e *DatabaseError) Error() string {
	return e.Message
}

func (e *DatabaseError) Unwrap() error {
	return e.Cause
}
