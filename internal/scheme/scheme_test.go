package scheme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matt-wadsworth/fm-attribute-customizer/internal/colorhex"
)

func writeSchemeFile(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schemes.hcl")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeSchemeFile(t, `
scheme "heatmap" {
  colors = ["#D32F2FFF", "#F57C00FF", "#FBC02DFF"]
}

scheme "mono" {
  colors = ["#FFFFFF"]
}
`)
	file, err := Load(path)
	require.NoError(t, err)
	require.Len(t, file.Schemes, 2)

	heatmap, ok := file.Find("heatmap")
	require.True(t, ok)
	assert.Len(t, heatmap.Colors, 3)

	_, ok = file.Find("missing")
	assert.False(t, ok)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	assert.Error(t, err)

	empty := writeSchemeFile(t, `
scheme "empty" {
  colors = []
}
`)
	_, err = Load(empty)
	assert.Error(t, err)

	malformed := writeSchemeFile(t, `scheme "broken" {`)
	_, err = Load(malformed)
	assert.Error(t, err)
}

func TestScheme_RGBA(t *testing.T) {
	s := Scheme{Name: "test", Colors: []string{"#FF0000FF", "#00FF00"}}
	colors, err := s.RGBA()
	require.NoError(t, err)
	assert.Equal(t, []colorhex.RGBA{
		{R: 1, G: 0, B: 0, A: 1},
		{R: 0, G: 1, B: 0, A: 1},
	}, colors)

	bad := Scheme{Name: "bad", Colors: []string{"not-a-color"}}
	_, err = bad.RGBA()
	assert.Error(t, err)
}

func TestScheme_ApplyCycles(t *testing.T) {
	s := Scheme{Name: "duo", Colors: []string{"#FF0000FF", "#0000FFFF"}}

	colors, err := s.Apply(5)
	require.NoError(t, err)
	require.Len(t, colors, 5)
	assert.Equal(t, colors[0], colors[2])
	assert.Equal(t, colors[1], colors[3])
	assert.Equal(t, colors[0], colors[4])
	assert.NotEqual(t, colors[0], colors[1])
}
