// pkg/config/config_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: t.TempDir config files, t.Setenv for env and XDG layers
// PURPOSE: Test layered configuration loading and validation

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/icontheme/pkg/config"
	"github.com/arthur-debert/icontheme/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points XDG at an empty config home so a real user config is never read
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_CONFIG_DIRS", filepath.Join(dir, "system"))
	xdg.Reload()
	return dir
}

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg, err := config.Default()
	require.NoError(t, err)

	assert.Equal(t, "svg", cfg.Scan.Extension)
	assert.Equal(t, 5, cfg.Scan.PreviewLimit)
	assert.Equal(t, "", cfg.Export.IconsDir)
	assert.Equal(t, "", cfg.Export.MappingsFile)
	assert.Equal(t, "auto", cfg.Output.Format)
	assert.False(t, cfg.Output.NoColor)
	assert.Contains(t, config.DefaultsContent(), "[scan]")
}

func TestLoad_DefaultsOnly(t *testing.T) {
	isolate(t)

	cfg, err := config.Load(config.LoadOptions{})
	require.NoError(t, err)

	def, err := config.Default()
	require.NoError(t, err)
	assert.Equal(t, def, cfg)
}

func TestLoad_ExplicitFile(t *testing.T) {
	dir := isolate(t)

	t.Run("toml", func(t *testing.T) {
		path := writeConfig(t, dir, "custom.toml", `
[scan]
extension = ".PNG"
preview_limit = 3

[output]
format = "JSON"
`)
		cfg, err := config.Load(config.LoadOptions{ConfigFile: path})
		require.NoError(t, err)

		assert.Equal(t, "PNG", cfg.Scan.Extension)
		assert.Equal(t, 3, cfg.Scan.PreviewLimit)
		assert.Equal(t, "json", cfg.Output.Format)
	})

	t.Run("yaml", func(t *testing.T) {
		path := writeConfig(t, dir, "custom.yaml", `
export:
  icons_dir: /opt/icons
output:
  no_color: true
`)
		cfg, err := config.Load(config.LoadOptions{ConfigFile: path})
		require.NoError(t, err)

		assert.Equal(t, "/opt/icons", cfg.Export.IconsDir)
		assert.True(t, cfg.Output.NoColor)
		assert.Equal(t, "svg", cfg.Scan.Extension)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := config.Load(config.LoadOptions{ConfigFile: filepath.Join(dir, "nope.toml")})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("malformed", func(t *testing.T) {
		path := writeConfig(t, dir, "broken.toml", "[scan\nextension = ")
		_, err := config.Load(config.LoadOptions{ConfigFile: path})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
		assert.Equal(t, path, errors.GetErrorDetails(err)[errors.DetailPath])
	})
}

func TestLoad_XDGConfigFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, filepath.Join("icontheme", "config.toml"), "[scan]\npreview_limit = 9\n")

	cfg, err := config.Load(config.LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Scan.PreviewLimit)
}

func TestLoad_EnvAndOverrides(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, "custom.toml", "[scan]\npreview_limit = 3\n")

	t.Setenv("ICONTHEME_SCAN__PREVIEW_LIMIT", "10")
	t.Setenv("ICONTHEME_OUTPUT__NO_COLOR", "true")
	t.Setenv("ICONTHEME_ICONS_DIR", "/ignored/by/config")

	cfg, err := config.Load(config.LoadOptions{ConfigFile: path})
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Scan.PreviewLimit)
	assert.True(t, cfg.Output.NoColor)
	assert.Equal(t, "", cfg.Export.IconsDir)

	cfg, err = config.Load(config.LoadOptions{
		ConfigFile: path,
		Overrides: map[string]interface{}{
			config.KeyScanPreviewLimit: 2,
			config.KeyOutputFormat:     "text",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Scan.PreviewLimit)
	assert.Equal(t, "text", cfg.Output.Format)
}

func TestLoad_ExpandsHome(t *testing.T) {
	isolate(t)
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := config.Load(config.LoadOptions{Overrides: map[string]interface{}{
		config.KeyIconsDir:     "~/themes",
		config.KeyMappingsFile: "~/palette.toml",
	}})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "themes"), cfg.Export.IconsDir)
	assert.Equal(t, filepath.Join(home, "palette.toml"), cfg.Export.MappingsFile)
}

func TestLoad_Validation(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		key  string
		val  interface{}
	}{
		{"empty extension", config.KeyScanExtension, " "},
		{"dotted extension", config.KeyScanExtension, "tar.gz"},
		{"zero preview limit", config.KeyScanPreviewLimit, 0},
		{"negative preview limit", config.KeyScanPreviewLimit, -1},
		{"unknown format", config.KeyOutputFormat, "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(config.LoadOptions{Overrides: map[string]interface{}{tt.key: tt.val}})
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
			assert.Equal(t, tt.key, errors.GetErrorDetails(err)["key"])
		})
	}
}
