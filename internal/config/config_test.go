package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dsakit/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "auto", cfg.BST.Kind)
	assert.Equal(t, "graph_edges.csv", cfg.Dijkstra.Graph)
	assert.False(t, cfg.Dijkstra.Trace)
	assert.Equal(t, []int{1, 5, 10, 20, 50, 100, 500, 1000, 2000, 5000, 10000}, cfg.Coins.Denominations)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dsakit.yaml")
	content := []byte(`
log:
  level: debug
bst:
  kind: string
dijkstra:
  graph: routes.csv
  trace: true
coins:
  denominations: [1, 2, 5]
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "string", cfg.BST.Kind)
	assert.Equal(t, "routes.csv", cfg.Dijkstra.Graph)
	assert.True(t, cfg.Dijkstra.Trace)
	assert.Equal(t, []int{1, 2, 5}, cfg.Coins.Denominations)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("DSAKIT_LOG_LEVEL", "warn")
	t.Setenv("DSAKIT_DIJKSTRA_GRAPH", "/tmp/edges.csv")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "/tmp/edges.csv", cfg.Dijkstra.Graph)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := config.Config{
		Log:   config.LogConfig{Level: "info"},
		BST:   config.BSTConfig{Kind: "auto"},
		Coins: config.CoinsConfig{Denominations: []int{1}},
	}
	require.NoError(t, valid.Validate())

	badLevel := valid
	badLevel.Log.Level = "loud"
	assert.Error(t, badLevel.Validate())

	badKind := valid
	badKind.BST.Kind = "complex"
	assert.Error(t, badKind.Validate())

	noCoins := valid
	noCoins.Coins.Denominations = nil
	assert.Error(t, noCoins.Validate())

	zeroCoin := valid
	zeroCoin.Coins.Denominations = []int{1, 0}
	assert.Error(t, zeroCoin.Validate())
}
