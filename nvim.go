package vimv

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/neovim/go-client/nvim"
	"github.com/rs/zerolog/log"
)

const doneMethod = "vimv_done"

// NvimAddress returns the RPC address of the Neovim instance the process
// runs inside, if any.
func NvimAddress() string {
	if addr := os.Getenv("NVIM"); addr != "" {
		return addr
	}
	return os.Getenv("NVIM_LISTEN_ADDRESS")
}

// NvimEditor opens the buffer in a running Neovim and waits for its window
// to close.
type NvimEditor struct {
	v    *nvim.Nvim
	done chan string
}

func NewNvimEditor(addr string) (*NvimEditor, error) {
	if addr == "" {
		return nil, errors.New("not running inside Neovim")
	}
	v, err := nvim.Dial(addr)
	if err != nil {
		return nil, fmt.Errorf("could not connect to Neovim at %s: %w", addr, err)
	}

	e := &NvimEditor{v: v, done: make(chan string, 1)}
	if err := v.RegisterHandler(doneMethod, func(path string) {
		select {
		case e.done <- path:
		default:
		}
	}); err != nil {
		v.Close()
		return nil, err
	}
	return e, nil
}

func (e *NvimEditor) Close() {
	if e.v != nil {
		e.v.Close()
	}
}

func (e *NvimEditor) Edit(ctx context.Context, text string) (string, error) {
	path, cleanup, err := writeTempBuffer(text)
	if err != nil {
		return "", err
	}
	defer cleanup()

	var escaped string
	if err := e.v.Call("fnameescape", &escaped, path); err != nil {
		return "", err
	}

	b := e.v.NewBatch()
	b.Command("tabedit " + escaped)
	b.Command("setlocal noswapfile bufhidden=wipe")
	b.Command(fmt.Sprintf("autocmd BufWinLeave <buffer> ++once call rpcnotify(%d, '%s', expand('<afile>:p'))", e.v.ChannelID(), doneMethod))
	if err := b.Execute(); err != nil {
		return "", fmt.Errorf("could not open buffer in Neovim: %w", err)
	}
	log.Debug().Str("path", path).Msg("Waiting for Neovim buffer to close")

	select {
	case <-e.done:
	case <-ctx.Done():
		return "", ctx.Err()
	}
	return readTempBuffer(path)
}
