package vimv

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/mattn/go-isatty"
	"github.com/mattn/go-shellwords"
	"github.com/rs/zerolog/log"
)

// Editor hands text to the user and returns what they saved.
type Editor interface {
	Edit(ctx context.Context, text string) (string, error)
}

// EditorFunc adapts a function to Editor.
type EditorFunc func(ctx context.Context, text string) (string, error)

func (f EditorFunc) Edit(ctx context.Context, text string) (string, error) { return f(ctx, text) }

var fallbackEditors = []string{"nano", "pico", "vim", "nvim", "vi", "emacs"}

// ResolveEditorCommand returns the editor argv. override (--editor or
// VIMV_EDITOR) wins over VISUAL, then EDITOR, then the first fallback found
// on PATH.
func ResolveEditorCommand(override string) ([]string, error) {
	candidates := []string{override, os.Getenv("VISUAL"), os.Getenv("EDITOR")}
	for _, c := range candidates {
		if c == "" {
			continue
		}
		args, err := shellwords.Parse(c)
		if err != nil {
			return nil, fmt.Errorf("could not parse editor command %q: %w", c, err)
		}
		if len(args) > 0 {
			return args, nil
		}
	}

	if runtime.GOOS == "windows" {
		return []string{"notepad.exe"}, nil
	}
	for _, name := range fallbackEditors {
		if path, err := exec.LookPath(name); err == nil {
			return []string{path}, nil
		}
	}
	return nil, errors.New("no editor found: set $VISUAL or $EDITOR")
}

// ExternalEditor runs an editor process on a temp file and blocks until it
// exits.
type ExternalEditor struct {
	Command []string
}

func NewExternalEditor(override string) (*ExternalEditor, error) {
	cmd, err := ResolveEditorCommand(override)
	if err != nil {
		return nil, err
	}
	log.Debug().Strs("command", cmd).Msg("Editor resolved")
	return &ExternalEditor{Command: cmd}, nil
}

func (e *ExternalEditor) Edit(ctx context.Context, text string) (string, error) {
	path, cleanup, err := writeTempBuffer(text)
	if err != nil {
		return "", err
	}
	defer cleanup()

	args := append(append([]string{}, e.Command[1:]...), path)
	cmd := exec.CommandContext(ctx, e.Command[0], args...)

	stdin, closeStdin := terminalInput()
	defer closeStdin()
	cmd.Stdin = stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("editor '%s' failed: %w", e.Command[0], err)
	}

	return readTempBuffer(path)
}

func writeTempBuffer(text string) (string, func(), error) {
	f, err := os.CreateTemp("", "vimv-*.txt")
	if err != nil {
		return "", nil, fmt.Errorf("could not create temp file: %w", err)
	}
	cleanup := func() { os.Remove(f.Name()) }

	if _, err := f.WriteString(text + "\n"); err != nil {
		f.Close()
		cleanup()
		return "", nil, fmt.Errorf("could not write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, err
	}
	return f.Name(), cleanup, nil
}

func readTempBuffer(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("could not read edited file: %w", err)
	}
	return string(data), nil
}

// terminalInput gives the editor the controlling terminal when stdin was
// used for filenames.
func terminalInput() (*os.File, func()) {
	fd := os.Stdin.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) || runtime.GOOS == "windows" {
		return os.Stdin, func() {}
	}
	tty, err := os.Open("/dev/tty")
	if err != nil {
		return os.Stdin, func() {}
	}
	return tty, func() { tty.Close() }
}
