package vimv

import "github.com/spf13/afero"

// Apply renames inputs to the lines of edited without opening an editor.
func Apply(inputs []string, edited string, force bool) (Summary, error) {
	return ApplyFs(afero.NewOsFs(), inputs, edited, force)
}

func ApplyFs(fs afero.Fs, inputs []string, edited string, force bool) (Summary, error) {
	plan, err := CreatePlan(fs, ParseInput(inputs), edited, force)
	if err != nil {
		return Summary{}, err
	}
	return NewPlanner(fs).Apply(plan)
}
