package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v3"
)

func TestConfigKey(t *testing.T) {
	tests := map[string]string{
		"Output":                        "output",
		"TabWidth":                      "tab_width",
		"TemplatePropertyInterfaceName": "template_property_interface_name",
		"RawFile":                       "raw_file",
		"URLPrefix":                     "url_prefix",
	}
	for in, want := range tests {
		assert.Equal(t, want, configKey(in), in)
	}
}

func TestConfigInitGenerate(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "sub", "formgen.json")
	require.NoError(t, (&ConfigInit{Command: "generate", Format: "json", Output: dest}).Run())

	data, err := os.ReadFile(dest)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))

	assert.Equal(t, ".", got["output"])
	assert.Equal(t, "TemplateProperty", got["template_property_interface_name"])
	assert.Equal(t, "@angular/forms", got["form_library"])
	assert.NotContains(t, got, "input", "positional arguments are not config keys")

	style, ok := got["style"].(map[string]any)
	require.True(t, ok, "style options are nested")
	assert.Equal(t, "typescript", style["parser"])
	assert.Equal(t, float64(2), style["tab_width"])
	assert.Equal(t, true, style["single_quote"])
	assert.Equal(t, false, style["use_tabs"])
}

func TestConfigInitYAML(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "formgen.yaml")
	require.NoError(t, (&ConfigInit{Command: "check", Format: "yml", Output: dest}).Run())

	data, err := os.ReadFile(dest)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, "@angular/forms", got["form_library"])
}

func TestConfigInitErrors(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "formgen.toml")
	require.NoError(t, os.WriteFile(dest, []byte("keep"), 0o644))

	err := (&ConfigInit{Command: "generate", Format: "toml", Output: dest}).Run()
	assert.ErrorContains(t, err, "destination exists")
	data, _ := os.ReadFile(dest)
	assert.Equal(t, "keep", string(data))

	require.NoError(t, (&ConfigInit{Command: "generate", Format: "toml", Output: dest, Force: true}).Run())
	data, _ = os.ReadFile(dest)
	assert.Contains(t, string(data), "form_library")

	err = (&ConfigInit{Command: "generate", Format: "ini", Output: filepath.Join(dir, "x.ini")}).Run()
	assert.ErrorContains(t, err, "unsupported format")

	err = (&ConfigInit{Command: "serve", Format: "json", Output: filepath.Join(dir, "x.json")}).Run()
	assert.Error(t, err)
}
