package vimv

import (
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// ParseInput trims every filename, keeping order.
func ParseInput(args []string) []string {
	names := make([]string, len(args))
	for i, a := range args {
		names[i] = strings.TrimSpace(a)
	}
	return names
}

// ParseOutput turns edited text into trimmed lines. Leading and trailing
// blank lines are dropped; blank lines in between are kept so positions
// still line up with the input.
func ParseOutput(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	return lines
}

// CreatePlan pairs inputs with edited lines by position and runs the
// pre-flight checks. It never mutates the filesystem.
func CreatePlan(fs afero.Fs, inputs []string, edited string, force bool) (*RenamePlan, error) {
	outputs := ParseOutput(edited)
	if len(outputs) != len(inputs) {
		log.Debug().Int("inputs", len(inputs)).Int("outputs", len(outputs)).Msg("Line count mismatch")
		return nil, newError(ErrCountMismatch, "")
	}

	for _, in := range inputs {
		if !pathExists(fs, in) {
			return nil, newError(ErrInputNotFound, in)
		}
	}

	renames := make([]FileRename, len(inputs))
	for i := range inputs {
		renames[i] = FileRename{OldPath: inputs[i], NewPath: outputs[i]}
	}
	log.Debug().Int("pairs", len(renames)).Bool("force", force).Msg("Plan created")
	return &RenamePlan{Renames: renames, Force: force}, nil
}

// Planner applies a RenamePlan one entry at a time. A failure stops the run
// and leaves earlier renames in place.
type Planner struct {
	fs afero.Fs
}

func NewPlanner(fs afero.Fs) *Planner {
	return &Planner{fs: fs}
}

func (p *Planner) Apply(plan *RenamePlan) (Summary, error) {
	var s Summary
	for _, r := range plan.Renames {
		if r.Unchanged() {
			log.Debug().Str("path", r.OldPath).Msg("Unchanged, skipping")
			s.Skipped = append(s.Skipped, r.OldPath)
			continue
		}

		if pathExists(p.fs, r.NewPath) && !plan.Force {
			return s, newError(ErrOutputExists, r.NewPath)
		}

		if dir := parentToCreate(p.fs, r.NewPath); dir != "" {
			if err := p.fs.MkdirAll(dir, 0755); err != nil {
				return s, wrapError(err, ErrDirCreate, dir)
			}
			log.Debug().Str("dir", dir).Msg("Created directory")
			s.CreatedDirs = append(s.CreatedDirs, dir)
		}

		if err := p.fs.Rename(r.OldPath, r.NewPath); err != nil {
			return s, wrapError(err, ErrRenameFailed, r.OldPath)
		}
		log.Debug().Str("from", r.OldPath).Str("to", r.NewPath).Msg("Renamed")
		s.Renamed = append(s.Renamed, r.String())
	}
	return s, nil
}
