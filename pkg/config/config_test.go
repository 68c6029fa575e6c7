package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-strut/strut/pkg/errors"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ParsesAllSections(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
scrollbar:
  size: 12
text:
  font_size: 14
table:
  row_height: 30
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 12.0, cfg.Scrollbar.Size)
	assert.Equal(t, 14.0, cfg.Text.FontSize)
	assert.Equal(t, 30.0, cfg.Table.RowHeight)

	opts := cfg.EngineOptions()
	assert.Equal(t, 12.0, opts.ScrollbarSize)
	assert.Equal(t, 14.0, opts.FontSize)
	assert.Equal(t, 30.0, opts.RowHeight)
}

func TestLoad_MissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), FileName))
	require.Error(t, err)

	var lerr *errors.LayoutError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, errors.KindConfig, lerr.Kind)
}

func TestLoad_MalformedYAMLFails(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "scrollbar: [")

	_, err := Load(path)
	var lerr *errors.LayoutError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, errors.KindConfig, lerr.Kind)
}

func TestLoadOptional_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := LoadOptional(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestLoadOptional_ReadsExistingFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "scrollbar:\n  size: 8\n")

	cfg, err := LoadOptional(dir)
	require.NoError(t, err)
	assert.Equal(t, 8.0, cfg.Scrollbar.Size)
}

func TestValidate_RejectsNegativeValues(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"scrollbar size", Config{Scrollbar: ScrollbarConfig{Size: -1}}},
		{"font size", Config{Text: TextConfig{FontSize: -2}}},
		{"row height", Config{Table: TableConfig{RowHeight: -3}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			var lerr *errors.LayoutError
			require.ErrorAs(t, err, &lerr)
			assert.Equal(t, errors.KindConfig, lerr.Kind)
		})
	}
}

func TestEngineOptions_ZeroValuesStayZero(t *testing.T) {
	opts := (&Config{}).EngineOptions()
	assert.Zero(t, opts.ScrollbarSize)
	assert.Zero(t, opts.FontSize)
	assert.Zero(t, opts.RowHeight)
	assert.Nil(t, opts.Measurer)
}
