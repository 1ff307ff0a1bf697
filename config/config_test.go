package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gbln-format/go-gbln/diag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresets(t *testing.T) {
	io := IO()
	assert.True(t, io.MiniMode())
	assert.True(t, io.Compress())
	assert.Equal(t, uint8(6), io.CompressionLevel())
	assert.Equal(t, 2, io.Indent())
	assert.True(t, io.StripComments())

	src := Source()
	assert.False(t, src.MiniMode())
	assert.False(t, src.Compress())
	assert.Equal(t, uint8(6), src.CompressionLevel())
	assert.Equal(t, 2, src.Indent())
	assert.False(t, src.StripComments())
}

func TestZero(t *testing.T) {
	var c Config
	assert.False(t, c.MiniMode())
	assert.False(t, c.Compress())
	assert.Equal(t, 0, c.Indent())
	assert.False(t, c.StripComments())
}

func TestNew(t *testing.T) {
	c, err := New(true, false, 9, 0, true)
	require.NoError(t, err)
	assert.Equal(t, uint8(9), c.CompressionLevel())
	assert.Equal(t, 0, c.Indent())

	_, err = New(true, true, 10, 2, true)
	assert.ErrorIs(t, err, diag.InvalidSyntax)
	_, err = New(true, true, 1, -1, true)
	assert.ErrorIs(t, err, diag.InvalidSyntax)
}

func TestWith(t *testing.T) {
	base := Source()
	c := base.WithIndent(-3).WithCompressionLevel(42).WithMiniMode(true)
	assert.Equal(t, 0, c.Indent())
	assert.Equal(t, uint8(9), c.CompressionLevel())
	assert.True(t, c.MiniMode())
	// base is a value and stays unchanged
	assert.Equal(t, 2, base.Indent())
	assert.False(t, base.MiniMode())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "gbln.toml")
	require.NoError(t, os.WriteFile(p, []byte("preset = \"source\"\nindent = 4\nstrip_comments = true\n"), 0o644))

	c, err := Load(p)
	require.NoError(t, err)
	assert.False(t, c.MiniMode())
	assert.Equal(t, 4, c.Indent())
	assert.True(t, c.StripComments())
	assert.Equal(t, uint8(6), c.CompressionLevel())

	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, diag.IoFailure)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{
		"colour = true\n",
		"preset = \"fast\"\n",
		"compression_level = 12\n",
		"indent = -1\n",
		"indent = \n",
	} {
		_, err := Parse([]byte(in))
		assert.ErrorIs(t, err, diag.InvalidSyntax, in)
	}
}

func TestMarshalTOML(t *testing.T) {
	c := Source().WithIndent(3)
	d, err := c.MarshalTOML()
	require.NoError(t, err)
	back, err := Parse(d)
	require.NoError(t, err)
	assert.Equal(t, c, back)
}
