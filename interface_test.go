package vimv

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	touch(t, a, "a")
	out := filepath.Join(dir, "renamed", "a.txt")

	s, err := Apply([]string{" " + a + " "}, "\n"+out+"\n\n", false)
	require.NoError(t, err)
	assert.Equal(t, "a", readFile(t, out))
	assert.Equal(t, []string{a + " -> " + out}, s.Renamed)
}

func TestApply_MismatchLeavesFilesAlone(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	touch(t, a, "a")

	_, err := Apply([]string{a}, "b.txt\nc.txt", false)
	assert.True(t, IsKind(err, ErrCountMismatch))
	assert.Equal(t, "a", readFile(t, a))
}
