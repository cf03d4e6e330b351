package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "logging:\n  level: info\n"))
	require.NoError(t, err)

	assert.Equal(t, ":17901", cfg.Server.WebSocket.Address)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Empty(t, cfg.Database.URL)
	assert.Equal(t, "Forest", cfg.Game.BiomeName)
	assert.Equal(t, 4, cfg.Game.CNBase)
	assert.Equal(t, 0, cfg.Game.Lmax)
	assert.Equal(t, 8, cfg.Game.HandSize)
	assert.Equal(t, 3, cfg.Game.ActionsPerTurn)
	assert.Equal(t, "data/cards.csv", cfg.Game.CardsPath)
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
server:
  websocket:
    address: ":9000"
logging:
  level: debug
  format: json
game:
  biome_name: Savanna
  cn_base: 6
  lmax: 8
  seed: 1234
`))
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Server.WebSocket.Address)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "Savanna", cfg.Game.BiomeName)
	assert.Equal(t, 6, cfg.Game.CNBase)
	assert.Equal(t, 8, cfg.Game.Lmax)
	assert.Equal(t, int64(1234), cfg.Game.Seed)
}

func TestLoadValidation(t *testing.T) {
	_, err := Load(writeConfig(t, "game:\n  cn_base: -1\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "game:\n  hand_size: 0\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "game:\n  actions_per_turn: 0\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "game:\n  cards_path: \"\"\n"))
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
