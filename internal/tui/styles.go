package tui

import "github.com/charmbracelet/lipgloss"

var (
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	doneWordStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A"))
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#C89A3A")).
			Bold(true)
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0"))
	targetStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 2)
	toastGood     = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A")).Bold(true)
	toastBad      = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true)

	cardStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)

	itemStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	activeItemStyle = itemStyle.
			BorderForeground(lipgloss.Color("#C89A3A"))
	panelStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	focusedPanelStyle = panelStyle.
				BorderForeground(lipgloss.Color("#C89A3A"))
	hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAAD14"))
)

var levelColors = map[string]lipgloss.Color{
	"success": lipgloss.Color("#52C41A"),
	"accent":  lipgloss.Color("#C89A3A"),
	"warning": lipgloss.Color("#FAAD14"),
	"primary": lipgloss.Color("#4096FF"),
	"purple":  lipgloss.Color("#9254DE"),
	"cyan":    lipgloss.Color("#13C2C2"),
}

func levelStyle(color string) lipgloss.Style {
	c, ok := levelColors[color]
	if !ok {
		return subtitleStyle
	}
	return lipgloss.NewStyle().Foreground(c).Bold(true)
}
