package vimv

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
)

// SourceProvider collects the filenames to rename.
type SourceProvider struct {
	in            io.Reader
	piped         bool
	useClipboard  bool
	readClipboard func() (string, error)
}

// NewSourceProvider reads from os.Stdin when it is a pipe and no filenames
// were given as arguments.
func NewSourceProvider(useClipboard bool) *SourceProvider {
	stat, _ := os.Stdin.Stat()
	piped := stat != nil && (stat.Mode()&os.ModeCharDevice) == 0
	return &SourceProvider{
		in:            os.Stdin,
		piped:         piped,
		useClipboard:  useClipboard,
		readClipboard: clipboard.ReadAll,
	}
}

// NewReaderSource treats r as piped input.
func NewReaderSource(r io.Reader) *SourceProvider {
	return &SourceProvider{in: r, piped: true}
}

// Filenames returns the raw, untrimmed names in order. Arguments take
// precedence over the clipboard, which takes precedence over stdin.
func (sp *SourceProvider) Filenames(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if sp.useClipboard {
		c, err := sp.readClipboard()
		if err != nil {
			return nil, err
		}
		return splitNames(strings.NewReader(c))
	}
	if sp.piped && sp.in != nil {
		return splitNames(sp.in)
	}
	return nil, nil
}

func splitNames(r io.Reader) ([]string, error) {
	var names []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		names = append(names, sc.Text())
	}
	return names, sc.Err()
}
