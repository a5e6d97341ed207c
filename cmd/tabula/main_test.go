package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootFlags(t *testing.T) {
	cmd := newRootCmd()

	for _, name := range []string{"config", "data", "export", "sample", "debug"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
	assert.Equal(t, "3", cmd.Flags().Lookup("sample").DefValue)
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[table]\nselection_mode = \"row\"\n"), 0644))

	var warn bytes.Buffer
	cfg, err := loadConfig(options{configPath: path, dataFile: "people.json", exportFile: "out.json"}, &warn)
	require.NoError(t, err)

	assert.Equal(t, "people.json", cfg.General.DataFile)
	assert.Equal(t, "out.json", cfg.General.ExportFile)
	assert.Contains(t, warn.String(), "Warning:")
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := loadConfig(options{configPath: filepath.Join(t.TempDir(), "nope.toml")}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "not found")
}

func TestInitConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"init-config"})
	require.NoError(t, cmd.Execute())
	assert.FileExists(t, filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "tabula", "config.toml"))

	cmd = newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"init-config"})
	assert.Error(t, cmd.Execute(), "existing file needs --force")

	cmd = newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"init-config", "--force"})
	assert.NoError(t, cmd.Execute())
}
