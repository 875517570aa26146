package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/anzhiyu-c/anheyu-post/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadConfig(t *testing.T, content string) *config.Config {
	path := filepath.Join(t.TempDir(), "conf.ini")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	cfg, err := config.NewConfigFromFile(path)
	require.NoError(t, err)
	return cfg
}

func TestNewRedisClientWithoutAddr(t *testing.T) {
	cfg := loadConfig(t, "[Redis]\nAddr =\n")

	client, err := NewRedisClient(context.Background(), cfg)
	assert.NoError(t, err)
	assert.Nil(t, client)
}

func TestNewRedisClientInvalidDB(t *testing.T) {
	cfg := loadConfig(t, "[Redis]\nAddr = 127.0.0.1:1\nDB = abc\n")

	client, err := NewRedisClient(context.Background(), cfg)
	assert.NoError(t, err)
	assert.Nil(t, client)
}
