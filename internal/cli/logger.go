package cli

import (
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"

	"quizbank-service/internal/config"
)

func newLogger(out io.Writer, cfg config.Config) *slog.Logger {
	return slog.New(tint.NewHandler(out, &tint.Options{
		Level:      config.LogLevel(cfg.Log.Level),
		TimeFormat: time.TimeOnly,
	}))
}
