package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "iso20022.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestDefaultIsUsable(t *testing.T) {
	assert.NoError(t, Default().Check())
}

func TestLoadOverridesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "jobs: 8\ncompliance: strict\nhash: sha3-256\n"))
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Jobs)
	assert.Equal(t, "strict", cfg.Compliance)
	assert.Equal(t, "sha3-256", cfg.Hash)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.False(t, cfg.FailFast)
}

func TestLoadEmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	_, err := Load(writeConfig(t, "jobz: 2\n"))
	assert.Error(t, err)
}

func TestLoadRejectsBadValues(t *testing.T) {
	for _, body := range []string{"jobs: 0\n", "compliance: lax\n", "hash: md5\n"} {
		_, err := Load(writeConfig(t, body))
		assert.Error(t, err, body)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
