package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mininotes/internal/notes/config"
)

func TestCORSConfig_AllowedOrigins(t *testing.T) {
	t.Run("Пустая конфигурация дает только значения по умолчанию", func(t *testing.T) {
		cfg := config.CORSConfig{}

		assert.Equal(t, []string{
			"http://localhost:5173",
			"https://localhost:5173",
		}, cfg.AllowedOrigins())
	})

	t.Run("CORS_ORIGINS и WEB_ORIGIN объединяются со значениями по умолчанию", func(t *testing.T) {
		cfg := config.CORSConfig{
			Origins:   "https://notes.example.com, https://admin.example.com",
			WebOrigin: "https://web.example.com",
		}

		assert.Equal(t, []string{
			"https://notes.example.com",
			"https://admin.example.com",
			"https://web.example.com",
			"http://localhost:5173",
			"https://localhost:5173",
		}, cfg.AllowedOrigins())
	})

	t.Run("Дубликаты и пустые значения отбрасываются", func(t *testing.T) {
		cfg := config.CORSConfig{
			Origins:   "http://localhost:5173,, https://web.example.com",
			WebOrigin: "https://web.example.com",
		}

		assert.Equal(t, []string{
			"http://localhost:5173",
			"https://web.example.com",
			"https://localhost:5173",
		}, cfg.AllowedOrigins())
	})
}
