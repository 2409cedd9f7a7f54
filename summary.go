package vimv

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	renamedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	createdStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("81"))
	skippedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func FormatSummary(s Summary) string {
	var b strings.Builder
	if s.Message != "" {
		b.WriteString(headerStyle.Render(s.Message) + "\n\n")
	}

	renderList := func(title string, style lipgloss.Style, list []string) {
		if len(list) == 0 {
			return
		}
		b.WriteString(style.Render(title) + "\n")
		for _, f := range list {
			b.WriteString(fmt.Sprintf("  %s\n", f))
		}
	}

	renderList("Renamed:", renamedStyle, s.Renamed)
	renderList("Created directories:", createdStyle, s.CreatedDirs)
	renderList("Unchanged:", skippedStyle, s.Skipped)

	return b.String()
}
