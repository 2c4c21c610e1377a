package pipeline

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/jadenpxrk/copycode/internal/config"
	"github.com/jadenpxrk/copycode/internal/formatter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingFS records every filesystem call made through it.
type countingFS struct {
	calls int
}

func (c *countingFS) Stat(path string) (fs.FileInfo, error) {
	c.calls++
	return os.Stat(path)
}

func (c *countingFS) ReadDir(path string) ([]fs.DirEntry, error) {
	c.calls++
	return os.ReadDir(path)
}

func (c *countingFS) ReadFile(path string) ([]byte, error) {
	c.calls++
	return os.ReadFile(path)
}

func writeFile(t *testing.T, path string, content []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, content, 0o644))
}

func newFixture(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a", "x.txt"), []byte("hello x\n"))
	writeFile(t, filepath.Join(root, "a", "y.txt"), []byte("hello y"))
	writeFile(t, filepath.Join(root, "a", "img.png"), make([]byte, 321))
	writeFile(t, filepath.Join(root, "a", "blob.raw"), []byte{0xff, 0x00, 0xfe})
	writeFile(t, filepath.Join(root, "b.txt"), []byte("B"))
	return root
}

// --- HAPPY PATH TESTS ---

func TestRun_EndToEnd(t *testing.T) {
	root := newFixture(t)
	p := New(config.Default(), nil)

	res, err := p.Run(Request{Selection: []string{filepath.Join(root, "a")}, Root: root})

	require.NoError(t, err)
	assert.Equal(t,
		"File not readable: a/blob.raw\n\n"+
			"Binary / Media File: a/img.png - 321 bytes\n\n"+
			"```a/x.txt\nhello x\n\n```\n\n"+
			"```a/y.txt\nhello y\n```",
		res.Output)
	assert.Equal(t, 2, res.Summary.TextFiles)
	assert.Equal(t, 1, res.Summary.BinaryFiles)
	assert.Equal(t, 1, res.Summary.UnreadableFiles)
	assert.Empty(t, res.Skipped)
}

func TestRun_SelectionOrderIsOutputOrder(t *testing.T) {
	root := newFixture(t)
	p := New(config.Default(), nil)

	res, err := p.Run(Request{
		Selection: []string{filepath.Join(root, "b.txt"), filepath.Join(root, "a", "y.txt")},
		Root:      root,
	})

	require.NoError(t, err)
	assert.Equal(t, "```b.txt\nB\n```\n\n```a/y.txt\nhello y\n```", res.Output)
}

func TestRun_FileAndParentDirSameAsDirOnly(t *testing.T) {
	root := newFixture(t)
	p := New(config.Default(), nil)
	dir := filepath.Join(root, "a")

	dirOnly, err := p.Run(Request{Selection: []string{dir}, Root: root})
	require.NoError(t, err)
	both, err := p.Run(Request{Selection: []string{filepath.Join(dir, "x.txt"), dir}, Root: root})
	require.NoError(t, err)

	assert.ElementsMatch(t, dirOnly.Records, both.Records)
	assert.Equal(t, "a/x.txt", both.Records[0].Path)
}

func TestRun_CustomBinaryExtensions(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "fake.png"), []byte("text in disguise"))
	cfg := config.Default()
	cfg.BinaryExtensions = []string{".foo"}

	res, err := New(cfg, nil).Run(Request{Selection: []string{root}, Root: root})

	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	assert.Equal(t, formatter.Text, res.Records[0].Kind)
	assert.Equal(t, "text in disguise", res.Records[0].Content)
}

func TestRun_ExcludesFollowConfigFlag(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "src", "main.go"), []byte("package main"))
	writeFile(t, filepath.Join(root, "node_modules", "dep", "index.js"), []byte("module.exports = {}"))

	on := config.Default()
	res, err := New(on, nil).Run(Request{Selection: []string{root}, Root: root})
	require.NoError(t, err)
	assert.Len(t, res.Records, 1)

	off := config.Default()
	off.ApplyExcludes = false
	res, err = New(off, nil).Run(Request{Selection: []string{root}, Root: root})
	require.NoError(t, err)
	assert.Len(t, res.Records, 2)
}

func TestRun_MissingEntryReportedNotFatal(t *testing.T) {
	root := newFixture(t)

	res, err := New(config.Default(), nil).Run(Request{
		Selection: []string{filepath.Join(root, "nope.txt"), filepath.Join(root, "b.txt")},
		Root:      root,
	})

	require.NoError(t, err)
	assert.Equal(t, "```b.txt\nB\n```", res.Output)
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, filepath.Join(root, "nope.txt"), res.Skipped[0].Path)
}

// --- ERROR TESTS ---

func TestRun_NoSelection(t *testing.T) {
	fsys := &countingFS{}
	p := NewWithFS(config.Default(), fsys, fsys, nil)

	_, err := p.Run(Request{Root: "/ws"})

	assert.ErrorIs(t, err, ErrNoSelection)
	assert.Zero(t, fsys.calls)
}

func TestRun_NoRootAbortsBeforeIO(t *testing.T) {
	fsys := &countingFS{}
	p := NewWithFS(config.Default(), fsys, fsys, nil)

	_, err := p.Run(Request{Selection: []string{"/ws/a.txt"}})

	assert.ErrorIs(t, err, ErrNoWorkspaceRoot)
	assert.Zero(t, fsys.calls)
}

func TestSelection(t *testing.T) {
	out, err := Selection("a\r\nb", "go")
	require.NoError(t, err)
	assert.Equal(t, "```go\na\nb\n```", out)

	_, err = Selection("", "go")
	assert.ErrorIs(t, err, ErrNoSelectedText)
}
