package vimv

import (
	"context"
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

type App struct {
	cfg            *Config
	fs             afero.Fs
	editor         Editor
	sourceProvider *SourceProvider
	planner        *Planner
}

type Option func(*App)

func WithFs(fs afero.Fs) Option { return func(a *App) { a.fs = fs } }

func WithEditor(e Editor) Option { return func(a *App) { a.editor = e } }

func WithSource(sp *SourceProvider) Option { return func(a *App) { a.sourceProvider = sp } }

func NewApp(cfg *Config, opts ...Option) (*App, error) {
	a := &App{cfg: cfg}
	for _, o := range opts {
		o(a)
	}
	if a.fs == nil {
		a.fs = afero.NewOsFs()
	}
	if a.sourceProvider == nil {
		a.sourceProvider = NewSourceProvider(cfg.Clipboard)
	}
	a.planner = NewPlanner(a.fs)
	return a, nil
}

// Execute runs one collect, edit, plan, apply cycle.
func (a *App) Execute(ctx context.Context, args []string) (summary Summary, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &DetailedError{Err: fmt.Errorf("panic: %v", r), Stack: debug.Stack()}
		}
	}()

	raw, err := a.sourceProvider.Filenames(args)
	if err != nil {
		return Summary{}, wrapError(err, ErrInvalidInput, "")
	}
	if len(raw) == 0 {
		return Summary{}, newError(ErrMissingArgument, "")
	}

	editor, err := a.resolveEditor()
	if err != nil {
		return Summary{}, wrapError(err, ErrEditorFailure, "")
	}

	edited, err := editor.Edit(ctx, strings.Join(raw, "\n"))
	if err != nil {
		return Summary{}, wrapError(err, ErrEditorFailure, "")
	}

	plan, err := CreatePlan(a.fs, ParseInput(raw), edited, a.cfg.Force)
	if err != nil {
		return Summary{}, err
	}

	summary, err = a.planner.Apply(plan)
	if err != nil {
		return summary, err
	}
	if len(summary.Renamed) == 0 {
		summary.Message = "Nothing to do"
	}
	return summary, nil
}

func (a *App) resolveEditor() (Editor, error) {
	if a.editor != nil {
		return a.editor, nil
	}
	if a.cfg.Nvim {
		e, err := NewNvimEditor(NvimAddress())
		if err == nil {
			a.editor = e
			return e, nil
		}
		log.Debug().Err(err).Msg("Falling back to external editor")
	}
	e, err := NewExternalEditor(a.cfg.Editor)
	if err != nil {
		return nil, err
	}
	a.editor = e
	return e, nil
}

// Close releases editor connections.
func (a *App) Close() {
	if e, ok := a.editor.(*NvimEditor); ok {
		e.Close()
	}
}
