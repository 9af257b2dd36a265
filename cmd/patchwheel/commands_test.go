package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel/config"
	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel/constants"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{constants.EnvironmentEnvVar, constants.RootEnvVar, constants.LogLevelEnvVar, constants.LanguageEnvVar} {
		t.Setenv(k, "")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestLoadLayers(t *testing.T) {
	clearEnv(t)
	root := t.TempDir()
	writeFile(t, filepath.Join(root, configFileName), "[ui]\ntheme = \"classic\"\nlayout = \"compact\"\n")

	f := &flags{root: root, layout: config.LayoutFull, windowed: true}
	cfg, err := f.load()
	require.NoError(t, err)

	assert.Equal(t, config.ThemeClassic, cfg.UI.Theme, "from the file")
	assert.Equal(t, config.LayoutFull, cfg.UI.Layout, "flag wins over the file")
	assert.False(t, cfg.UI.Fullscreen)
	assert.Equal(t, filepath.Join(root, "Home"), cfg.Paths.Home)
	assert.Equal(t, filepath.Join(root, "Home", "Bookmarks"), cfg.Paths.Bookmarks)
}

func TestLoadRejectsBadFlag(t *testing.T) {
	clearEnv(t)
	f := &flags{root: t.TempDir(), theme: "neon"}

	_, err := f.load()
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestConfigCommand(t *testing.T) {
	clearEnv(t)
	root := t.TempDir()

	out, err := execute(t, "--root", root, "--theme", "classic", "config")
	require.NoError(t, err)

	var cfg config.Config
	_, err = toml.Decode(out, &cfg)
	require.NoError(t, err)
	assert.Equal(t, config.ThemeClassic, cfg.UI.Theme)
	assert.Equal(t, root, cfg.Paths.Root)
}

func TestSearchCommand(t *testing.T) {
	clearEnv(t)
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Pads", "Warm Pad.syx"), "")
	writeFile(t, filepath.Join(root, "Bass", "Acid.syx"), "")

	out, err := execute(t, "--root", root, "search", "warm")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "Pads", "Warm Pad.syx"), strings.TrimSpace(out))

	_, err = execute(t, "--root", root, "search")
	assert.Error(t, err, "query is required")
}

func TestDevicesCommand(t *testing.T) {
	clearEnv(t)
	root := t.TempDir()
	writeFile(t, filepath.Join(root, configFileName), `[midi]
list_command = ["printf", "Dir Device Name\nIO hw:1,0,0 Keystation\nIO hw:2,0,0 reface DX\n"]
`)

	out, err := execute(t, "--root", root, "devices")
	require.NoError(t, err)
	assert.Equal(t, "  hw:1,0,0\tKeystation\n* hw:2,0,0\treface DX\n", out)
}
