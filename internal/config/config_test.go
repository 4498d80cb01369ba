package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 32, c.Defaults.Chessboard.Field)
	assert.Equal(t, CacheNone, c.Cache.Backend)
}

func TestLoadMergesFileAndReferencesFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "refs.yaml", `
references:
  viral:
    - label: "ein Dorf"
      threshold: 500
    - label: "eine Großstadt"
      threshold: 1000000
`)
	path := writeFile(t, dir, "expgrowth.yaml", `
references_file: refs.yaml
server:
  port: "9090"
cache:
  backend: memory
  ttl: 15m
defaults:
  viral:
    factor: 2.5
`)

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", c.Server.Port)
	assert.Equal(t, CacheMemory, c.Cache.Backend)
	assert.Equal(t, 15*time.Minute, c.Cache.TTL)
	assert.Equal(t, 2.5, c.Defaults.Viral.Factor)
	assert.Equal(t, 20, c.Defaults.Viral.Rounds, "untouched defaults survive")
	require.Len(t, c.References.Viral, 2)
	assert.Equal(t, "ein Dorf", c.References.Viral[0].Label)
	assert.NotEmpty(t, c.References.Chessboard, "chessboard table falls back to defaults")

	refs, err := c.References.ToScenario()
	require.NoError(t, err)
	assert.Equal(t, "0.025", refs.GrainWeightGrams.String())
}

func TestLoadRejectsInvalidTables(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.yaml", `
references:
  chessboard:
    - label: "a"
      threshold: -1
`)
	_, err := Load(path)
	assert.ErrorContains(t, err, "references invalid")
}

func TestLoadRejectsOutOfRangeDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.yaml", `
defaults:
  chessboard:
    field: 65
`)
	_, err := Load(path)
	assert.ErrorContains(t, err, "defaults invalid")
}

func TestValidateCacheBackend(t *testing.T) {
	c := Default()
	c.Cache.Backend = "memcached"
	assert.Error(t, c.Validate())

	c = Default()
	c.Cache.Backend = CacheRedis
	c.Cache.RedisAddr = ""
	assert.Error(t, c.Validate())
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("API_PORT", "7000")
	t.Setenv("CACHE_BACKEND", "redis")
	t.Setenv("REDIS_ADDR", "cache:6379")
	t.Setenv("CACHE_TTL", "2m")

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "7000", c.Server.Port)
	assert.Equal(t, CacheRedis, c.Cache.Backend)
	assert.Equal(t, "cache:6379", c.Cache.RedisAddr)
	assert.Equal(t, 2*time.Minute, c.Cache.TTL)
}

func TestLoadUncheckedMissingFile(t *testing.T) {
	_, err := LoadUnchecked(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestExampleConfigLoads(t *testing.T) {
	c, err := Load(filepath.Join("..", "..", "examples", "expgrowth.yaml"))
	require.NoError(t, err)
	assert.Equal(t, CacheMemory, c.Cache.Backend)
	assert.Equal(t, time.Hour, c.Cache.TTL)
	assert.Equal(t, time.Minute, c.Server.RateLimit.Refill)
	assert.Len(t, c.References.Chessboard, 4)
	assert.Len(t, c.References.HeadlineViral, 2)
	assert.Equal(t, 0.025, c.References.GrainWeightGrams)
}
