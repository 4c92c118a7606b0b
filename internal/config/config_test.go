package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
server:
  port: "9090"
log:
  level: debug
auth:
  bcrypt_cost: 4
session:
  ttl: 45m
quizzes:
  - question_text: Capital of France?
    options: [Paris, Lyon]
    correct_answer: Paris
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 4, cfg.Auth.BcryptCost)
	assert.Equal(t, slog.LevelDebug, LogLevel(cfg.Log.Level))
	assert.Equal(t, 45*time.Minute, TTLDuration(cfg.Session.TTL, time.Hour))
	assert.Equal(t, "quiz_session", cfg.CookieName())
	require.Len(t, cfg.Quizzes, 1)
	assert.Equal(t, []string{"Paris", "Lyon"}, cfg.Quizzes[0].Options)
	assert.Equal(t, "Paris", cfg.Quizzes[0].CorrectAnswer)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestTTLDurationFallback(t *testing.T) {
	assert.Equal(t, time.Minute, TTLDuration("", time.Minute))
	assert.Equal(t, time.Minute, TTLDuration("soon", time.Minute))
}
