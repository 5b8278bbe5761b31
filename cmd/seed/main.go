// Package main наполняет базу данных примерами заметок.
package main

import (
	"context"
	"os"
	"strings"

	"go.uber.org/zap"

	"mininotes/internal/notes/config"
	pgdb "mininotes/pkg/db/postgres"
	"mininotes/pkg/logger"
)

// Константы для переменных окружения.
const (
	EnvLoggerMode  = "NOTES_LOGGER_MODE"
	EnvLoggerLevel = "NOTES_LOGGER_LEVEL"
)

// Константы для сообщений.
const (
	ErrInitLogger  = "failed to initialize logger"
	ErrLoadConfig  = "failed to load configuration"
	ErrInitDB      = "failed to initialize database"
	ErrCountNotes  = "failed to count notes"
	ErrInsertNotes = "failed to insert sample notes"

	LogSeedSkipped   = "seed skipped: notes already present"
	LogSeedCompleted = "seed completed: inserted sample notes"
)

// Примеры заметок из комплекта поставки.
var sampleNotes = []struct {
	title   string
	content string
}{
	{
		title:   "Welcome to Mini-Notes",
		content: "This is a sample note. You can create, update, list and delete notes using the API.",
	},
	{
		title:   "Second note",
		content: "PUT /notes/:id to update this content, or DELETE it.",
	},
}

func main() {
	env := logger.Development
	if strings.ToLower(os.Getenv(EnvLoggerMode)) == "production" {
		env = logger.Production
	}

	log, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}

	logger.SetGlobalLogger(log)

	ctx := logger.NewRequestIDContext(context.Background(), "")

	var exitCode int

	func() {
		defer func() {
			_ = log.Sync()
		}()

		cfg, err := config.Load(ctx)
		if err != nil {
			log.Error(ctx, ErrLoadConfig, zap.Error(err))
			exitCode = 1
			return
		}

		database, err := pgdb.New(ctx, cfg.Postgres.GetDSN(), cfg.Postgres.MinConn, cfg.Postgres.MaxConn)
		if err != nil {
			log.Error(ctx, ErrInitDB, zap.Error(err))
			exitCode = 1
			return
		}
		defer database.Close(ctx)

		var count int
		err = database.Pool().QueryRow(ctx, `SELECT COUNT(*) FROM notes`).Scan(&count)
		if err != nil {
			log.Error(ctx, ErrCountNotes, zap.Error(err))
			exitCode = 1
			return
		}

		if count > 0 {
			log.Info(ctx, LogSeedSkipped, zap.Int("existing_notes", count))
			return
		}

		for _, sample := range sampleNotes {
			_, err := database.Pool().Exec(ctx,
				`INSERT INTO notes (title, content) VALUES ($1, $2)`,
				sample.title, sample.content,
			)
			if err != nil {
				log.Error(ctx, ErrInsertNotes, zap.Error(err))
				exitCode = 1
				return
			}
		}

		log.Info(ctx, LogSeedCompleted, zap.Int("inserted_notes", len(sampleNotes)))
	}()

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
