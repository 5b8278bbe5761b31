package logger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mininotes/pkg/logger"
)

func TestNewLogger(t *testing.T) {
	t.Run("Development окружение с уровнем debug", func(t *testing.T) {
		log, err := logger.NewLogger(logger.Development, "debug")
		require.NoError(t, err)
		require.NotNil(t, log)
	})

	t.Run("Production окружение с пустым уровнем", func(t *testing.T) {
		log, err := logger.NewLogger(logger.Production, "")
		require.NoError(t, err)
		require.NotNil(t, log)
	})

	t.Run("Некорректный уровень дает ошибку", func(t *testing.T) {
		log, err := logger.NewLogger(logger.Development, "verbose")
		require.Error(t, err)
		assert.Nil(t, log)
		assert.Contains(t, err.Error(), "failed to parse log level")
	})

	t.Run("With возвращает независимую копию", func(t *testing.T) {
		log, err := logger.NewLogger(logger.Development, "info")
		require.NoError(t, err)

		derived := log.With()
		assert.NotSame(t, log, derived)

		// Оба логгера остаются работоспособными.
		ctx := context.Background()
		log.Info(ctx, "parent logger")
		derived.Info(ctx, "derived logger")
	})
}
