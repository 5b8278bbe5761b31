package validation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mininotes/internal/notes/app/dto"
	"mininotes/internal/notes/domain/entities"
)

func strPtr(s string) *string {
	return &s
}

func TestUpdateNoteRequest_Validate(t *testing.T) {
	t.Run("Запрос без полей валиден", func(t *testing.T) {
		req := &dto.UpdateNoteRequest{}
		require.NoError(t, req.Validate())
	})

	t.Run("Только title валиден", func(t *testing.T) {
		req := &dto.UpdateNoteRequest{Title: strPtr("new title")}
		require.NoError(t, req.Validate())
	})

	t.Run("Только content валиден", func(t *testing.T) {
		req := &dto.UpdateNoteRequest{Content: strPtr("new content")}
		require.NoError(t, req.Validate())
	})

	t.Run("Оба поля на границах валидны", func(t *testing.T) {
		req := &dto.UpdateNoteRequest{
			Title:   strPtr(strings.Repeat("a", dto.TitleMaxLength)),
			Content: strPtr(strings.Repeat("b", dto.ContentMaxLength)),
		}
		require.NoError(t, req.Validate())
	})

	tests := []struct {
		name    string
		request *dto.UpdateNoteRequest
		field   string
	}{
		{
			name:    "Пустой title отклоняется",
			request: &dto.UpdateNoteRequest{Title: strPtr("")},
			field:   "title",
		},
		{
			name:    "Пустой content отклоняется",
			request: &dto.UpdateNoteRequest{Content: strPtr("")},
			field:   "content",
		},
		{
			name:    "Слишком длинный title отклоняется",
			request: &dto.UpdateNoteRequest{Title: strPtr(strings.Repeat("a", dto.TitleMaxLength+1))},
			field:   "title",
		},
		{
			name:    "Слишком длинный content отклоняется",
			request: &dto.UpdateNoteRequest{Content: strPtr(strings.Repeat("b", dto.ContentMaxLength+1))},
			field:   "content",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			require.Error(t, err)

			var validationErr *entities.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
}
