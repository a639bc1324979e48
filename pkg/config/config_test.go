package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yaml")
	content := `
storage:
  type: local
`
	err := os.WriteFile(configFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := Load(configFile)
	require.NoError(t, err)
	assert.NotNil(t, cfg)

	assert.Equal(t, 86400.0, cfg.Network.Dt)
	assert.Equal(t, uint64(1), cfg.Network.Seed)
	assert.Equal(t, 0.05, cfg.Network.Significance)
	assert.Equal(t, uint(14), cfg.Network.Precision)
	assert.False(t, cfg.Archive.Enabled)
}

func TestLoad_CustomValues(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yaml")
	content := `
network:
  dt: 3600
  seed: 42
  significance: 0.01
  precision: 16
archive:
  enabled: true
  type: postgres
  host: db.example.com
  port: 5432
  database: temponet
  user: admin
  password: secret
storage:
  type: local
  local_path: /tmp/storage
`
	err := os.WriteFile(configFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := Load(configFile)
	require.NoError(t, err)

	assert.Equal(t, 3600.0, cfg.Network.Dt)
	assert.Equal(t, uint64(42), cfg.Network.Seed)
	assert.Equal(t, 0.01, cfg.Network.Significance)
	assert.True(t, cfg.Archive.Enabled)
	assert.Equal(t, "db.example.com", cfg.Archive.Host)
	assert.Equal(t, "temponet", cfg.Archive.Database)
}

func TestLoad_InvalidArchiveType(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yaml")
	content := `
archive:
  enabled: true
  type: oracle
storage:
  type: local
`
	err := os.WriteFile(configFile, []byte(content), 0644)
	require.NoError(t, err)

	_, err = Load(configFile)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported archive type")
}

func TestLoad_COSWithCredentials(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yaml")
	content := `
storage:
  type: cos
  bucket: test-bucket
  region: ap-guangzhou
  secret_id: test-id
  secret_key: test-key
`
	err := os.WriteFile(configFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := Load(configFile)
	require.NoError(t, err)
	assert.Equal(t, "cos", cfg.Storage.Type)
	assert.Equal(t, "test-bucket", cfg.Storage.Bucket)
}

func TestValidate_InvalidDt(t *testing.T) {
	cfg := &Config{
		Network: Network{Dt: 0, Significance: 0.05},
		Storage: StorageConfig{Type: "local"},
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "network.dt must be positive")
}

func TestValidate_InvalidSignificance(t *testing.T) {
	cfg := &Config{
		Network: Network{Dt: 10, Significance: 1.5},
		Storage: StorageConfig{Type: "local"},
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "network.significance must be in")
}

func TestRunDir(t *testing.T) {
	cfg := &Config{
		Network: Network{OutDir: "/tmp/out"},
	}

	assert.Equal(t, "/tmp/out/run-uuid-123", cfg.RunDir("run-uuid-123"))
}

func TestEnsureOutDir(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "network", "out")

	cfg := &Config{
		Network: Network{OutDir: outDir},
	}

	err := cfg.EnsureOutDir()
	require.NoError(t, err)

	_, err = os.Stat(outDir)
	assert.NoError(t, err)
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	require.NoError(t, err)
	assert.NotNil(t, cfg)
}

func TestLoadFromReader(t *testing.T) {
	content := []byte(`
network:
  dt: 7200
storage:
  type: local
`)
	cfg, err := LoadFromReader("yaml", content)
	require.NoError(t, err)
	assert.Equal(t, 7200.0, cfg.Network.Dt)
}
