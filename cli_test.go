package vimv

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCmd_Version(t *testing.T) {
	for _, flag := range []string{"--version", "-v"} {
		t.Run(flag, func(t *testing.T) {
			out, err := executeRoot(t, flag)
			require.NoError(t, err)
			assert.Equal(t, "vimv version "+Version+"\n", out)
		})
	}
}

func TestRootCmd_Help(t *testing.T) {
	out, err := executeRoot(t, "-h")
	require.NoError(t, err)
	assert.Contains(t, out, "batch rename files using a text editor")
	assert.Contains(t, out, "--force")
}

func TestRootCmd_UnknownFlag(t *testing.T) {
	_, err := executeRoot(t, "--bogus")
	assert.Error(t, err)
}

func TestRootCmd_Completion(t *testing.T) {
	out, err := executeRoot(t, "--completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "vimv")

	_, err = executeRoot(t, "--completion", "tcsh")
	require.Error(t, err)
	assert.True(t, IsKind(err, ErrInvalidInput))
}

func TestRootCmd_RenamesWithSummary(t *testing.T) {
	clearConfigEnv(t)
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	touch(t, a, "a")
	touch(t, b, "b")
	x := filepath.Join(dir, "x.txt")
	y := filepath.Join(dir, "sub", "y.txt")
	editor := writeEditorScript(t, `printf '%s\n%s\n' "`+x+`" "`+y+`" > "$1"`)

	out, err := executeRoot(t, "--editor", editor, "--summary", a, b)
	require.NoError(t, err)

	assert.Equal(t, "a", readFile(t, x))
	assert.Equal(t, "b", readFile(t, y))
	assert.Contains(t, out, "Renamed:")
	assert.Contains(t, out, filepath.Join(dir, "sub"))
}

func TestRootCmd_ForceFromEnvAndFlag(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		args    []string
		wantErr bool
	}{
		{"no force", "", nil, true},
		{"env force", "true", nil, false},
		{"flag force", "", []string{"-f"}, false},
		{"flag overrides env", "true", []string{"--force=false"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			t.Setenv("VIMV_FORCE", tt.env)
			dir := t.TempDir()
			a := filepath.Join(dir, "a.txt")
			b := filepath.Join(dir, "b.txt")
			touch(t, a, "new")
			touch(t, b, "old")
			editor := writeEditorScript(t, `printf '%s\n' "`+b+`" > "$1"`)

			args := append([]string{"--editor", editor}, tt.args...)
			_, err := executeRoot(t, append(args, a)...)

			if tt.wantErr {
				assert.True(t, IsKind(err, ErrOutputExists))
				assert.Equal(t, "old", readFile(t, b))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "new", readFile(t, b))
		})
	}
}

func TestRootCmd_EditorFromEnv(t *testing.T) {
	clearConfigEnv(t)
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	touch(t, a, "a")
	x := filepath.Join(dir, "x.txt")
	t.Setenv("VIMV_EDITOR", writeEditorScript(t, `printf '%s\n' "`+x+`" > "$1"`))

	_, err := executeRoot(t, a)
	require.NoError(t, err)
	assert.Equal(t, "a", readFile(t, x))
}
