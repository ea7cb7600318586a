package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSourcesExpressions(t *testing.T) {
	srcs, err := readSources([]string{"(+ 1 2)", "(* 3 4)"}, true)
	require.NoError(t, err)
	require.Len(t, srcs, 2)
	assert.Equal(t, "argument", srcs[0].name)
	assert.Equal(t, "(+ 1 2)", srcs[0].text)
	assert.Equal(t, "(* 3 4)", srcs[1].text)
}

func TestReadSourcesFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.lx")
	require.NoError(t, os.WriteFile(path, []byte("(def x 1)\n"), 0600))

	srcs, err := readSources([]string{path}, false)
	require.NoError(t, err)
	require.Len(t, srcs, 1)
	assert.Equal(t, path, srcs[0].name)
	assert.Equal(t, "(def x 1)\n", srcs[0].text)

	_, err = readSources([]string{filepath.Join(t.TempDir(), "missing.lx")}, false)
	assert.Error(t, err)
}

func TestReadSourcesStdin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stdin")
	require.NoError(t, os.WriteFile(path, []byte("(+ 1 2)"), 0600))
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	orig := os.Stdin
	os.Stdin = f
	defer func() { os.Stdin = orig }()

	srcs, err := readSources(nil, false)
	require.NoError(t, err)
	require.Len(t, srcs, 1)
	assert.Equal(t, "stdin", srcs[0].name)
	assert.Equal(t, "(+ 1 2)", srcs[0].text)
}
