package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	old := os.Args
	os.Args = append([]string{"qrkeeper"}, args...)
	t.Cleanup(func() { os.Args = old })
}

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, "qrkeeper.db", cfg.DatabaseDSN)
	assert.Empty(t, cfg.EntitlementSecret)
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	withArgs(t, "-d", "/tmp/alt.db", "-s", "sekret")

	cfg := LoadConfig()
	assert.Equal(t, "/tmp/alt.db", cfg.DatabaseDSN)
	assert.Equal(t, "sekret", cfg.EntitlementSecret)
}

func TestLoadConfig_JsonOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"database_dsn": "from-json.db"}`), 0o600))

	withArgs(t, "-c", path)

	cfg := LoadConfig()
	assert.Equal(t, "from-json.db", cfg.DatabaseDSN)
	assert.Empty(t, cfg.EntitlementSecret, "absent JSON fields keep defaults")
}

func TestLoadConfig_FlagsOverrideJson(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"database_dsn": "from-json.db"}`), 0o600))

	withArgs(t, "-c", path, "-d", "from-flag.db")

	cfg := LoadConfig()
	assert.Equal(t, "from-flag.db", cfg.DatabaseDSN)
}
