package main

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-isatty"
)

// renderTable formats headers and rows as a bordered table. Column widths
// are calculated from content by lipgloss/table.
func renderTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	var output strings.Builder

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	output.WriteString(t.String())
	output.WriteString("\n")

	return output.String()
}

var (
	styleOK   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	styleWarn = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	styleFail = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// colorize styles a status word when stdout is a terminal; piped output
// stays plain so it can be grepped.
func colorize(status string) string {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return status
	}
	switch status {
	case "succeeded", "enabled", "valid":
		return styleOK.Render(status)
	case "skipped-disabled", "disabled":
		return styleWarn.Render(status)
	case "failed", "skipped-invalid", "invalid":
		return styleFail.Render(status)
	}
	return status
}
