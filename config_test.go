package uniset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_WalksUp(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	configPath := filepath.Join(root, ".uniset.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("ignore_space: true\ncase_mode: insensitive\n"), 0o644))

	cfg, err := LoadConfig(sub)
	require.NoError(t, err)
	require.True(t, cfg.IgnoreSpace)
	require.Equal(t, CaseInsensitive, cfg.ResolveCaseMode())
}

func TestFindConfig_NotFound(t *testing.T) {
	root := t.TempDir()
	_, err := FindConfig(root)
	require.Error(t, err)
	require.True(t, os.IsNotExist(err))
}

func TestResolveCaseMode_Default(t *testing.T) {
	var cfg *Config
	require.Equal(t, CaseNone, cfg.ResolveCaseMode())

	cfg = &Config{CaseMode: "unknown"}
	require.Equal(t, CaseNone, cfg.ResolveCaseMode())

	cfg = &Config{CaseMode: "add-mappings"}
	require.Equal(t, CaseAddMappings, cfg.ResolveCaseMode())
}
