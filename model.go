package vimv

// FileRename pairs an input filename with the edited line at the same position.
type FileRename struct {
	OldPath string
	NewPath string
}

// Unchanged reports whether the edited line equals the input name.
func (r FileRename) Unchanged() bool { return r.OldPath == r.NewPath }

func (r FileRename) String() string { return r.OldPath + " -> " + r.NewPath }

type RenamePlan struct {
	Renames []FileRename
	Force   bool
}

type Summary struct {
	Renamed     []string
	Skipped     []string
	CreatedDirs []string
	Message     string
}
