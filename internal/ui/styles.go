package ui

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	Base        lipgloss.Style
	Status      lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	Border      lipgloss.Style
	Title       lipgloss.Style
	Hint        lipgloss.Style
	Loading     lipgloss.Style
	ErrorText   lipgloss.Style
	Output      lipgloss.Style
}

func NewStyles(dark bool) Styles {
	s := Styles{}
	if dark {
		s.Base = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
		s.Status = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
		s.TabActive = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
		s.TabInactive = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
		s.Border = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("60"))
		s.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
		s.Hint = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
		s.Loading = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
		s.ErrorText = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
		s.Output = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	} else {
		s.Base = lipgloss.NewStyle()
		s.Status = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.TabActive = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("27"))
		s.TabInactive = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.Border = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("12"))
		s.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("27"))
		s.Hint = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.Loading = lipgloss.NewStyle().Foreground(lipgloss.Color("130"))
		s.ErrorText = lipgloss.NewStyle().Foreground(lipgloss.Color("160"))
		s.Output = lipgloss.NewStyle().Foreground(lipgloss.Color("28"))
	}
	return s
}
