package sink

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFile_Write(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.md")
	require.NoError(t, os.WriteFile(path, []byte("old content that is longer"), 0o644))

	require.NoError(t, File{Path: path}.Write("```a.go\nx\n```"))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "```a.go\nx\n```", string(got))
}

func TestFile_WriteIntoMissingDir(t *testing.T) {
	err := File{Path: filepath.Join(t.TempDir(), "missing", "out.md")}.Write("x")

	assert.Error(t, err)
}

func TestWriter_Write(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Writer{W: &buf}.Write("hello"))

	assert.Equal(t, "hello\n", buf.String())
}
