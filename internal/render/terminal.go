package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/linkforce/internal/profile"
	"github.com/alexisbeaulieu97/linkforce/internal/style"
)

// Terminal widths of the phone and card mocks, borders included.
const (
	PhoneWidth    = 40
	TermCardWidth = 36
)

var (
	frameColor = lipgloss.Color("#334155")

	phoneFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(frameColor)

	cardFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#475569"))

	dashedBorder = lipgloss.Border{
		Top:         "╌",
		Bottom:      "╌",
		Left:        "╎",
		Right:       "╎",
		TopLeft:     "┌",
		TopRight:    "┐",
		BottomLeft:  "└",
		BottomRight: "┘",
	}
)

// TerminalPreview draws the phone preview of p with lipgloss. Gradients and
// images are approximated by a representative solid color.
func TerminalPreview(catalog style.Catalog, p profile.UserProfile) string {
	pres := catalog.Resolve(p)
	base := pres.Background.Base()
	inner := PhoneWidth - 2

	text := lipgloss.Color(pres.Text.Terminal(base))
	page := lipgloss.NewStyle().Background(lipgloss.Color(base))

	line := func(s lipgloss.Style, content string) string {
		return s.Inherit(page).Width(inner).Align(lipgloss.Center).Render(content)
	}

	rows := []string{
		line(lipgloss.NewStyle(), ""),
		line(lipgloss.NewStyle().Foreground(text), "( ◉ )"),
		line(lipgloss.NewStyle(), ""),
		line(lipgloss.NewStyle().Bold(true).Foreground(text), fallback(p.Name, NamePlaceholder)),
		line(lipgloss.NewStyle().Foreground(lipgloss.Color(pres.Description.Terminal(base))).Padding(0, 2),
			fallback(p.Bio, BioPlaceholder)),
		line(lipgloss.NewStyle(), ""),
	}

	links := p.ActiveLinks()
	for _, link := range links {
		rows = append(rows, page.Width(inner).Align(lipgloss.Center).Render(terminalButton(pres.Button, base, link.Title, inner-4)))
	}
	if len(links) == 0 {
		empty := lipgloss.NewStyle().
			Border(dashedBorder).
			BorderForeground(text).
			BorderBackground(lipgloss.Color(base)).
			Background(lipgloss.Color(base)).
			Foreground(text).
			Faint(true).
			Width(inner - 6).
			Align(lipgloss.Center).
			Render(EmptyLinksMessage)
		rows = append(rows, page.Width(inner).Align(lipgloss.Center).Render(empty))
	}

	rows = append(rows,
		line(lipgloss.NewStyle(), ""),
		line(lipgloss.NewStyle().Foreground(text).Faint(true), "⚡ "+Brand),
		line(lipgloss.NewStyle(), ""),
	)
	return phoneFrameStyle.Render(lipgloss.JoinVertical(lipgloss.Center, rows...))
}

func terminalButton(btn style.Button, base, title string, width int) string {
	border := lipgloss.RoundedBorder()
	if btn.Shape == profile.ShapeSharp {
		border = lipgloss.NormalBorder()
	}
	if btn.BorderWidth == "2px" {
		border = lipgloss.ThickBorder()
	}

	fill := btn.Background.Terminal(base)
	return lipgloss.NewStyle().
		Border(border).
		BorderForeground(lipgloss.Color(btn.Border.Terminal(fill))).
		BorderBackground(lipgloss.Color(base)).
		Background(lipgloss.Color(fill)).
		Foreground(lipgloss.Color(btn.Foreground.Terminal(fill))).
		Bold(true).
		Width(width).
		MaxHeight(3).
		Align(lipgloss.Center).
		Render(truncate(title, width-2))
}

// TerminalCard draws the share card of p with lipgloss.
func TerminalCard(catalog style.Catalog, p profile.UserProfile) string {
	card := catalog.ResolveCard(p)
	base := card.BaseOverlay.Terminal(card.Background.Base())
	glass := card.Glass.Background.Terminal(base)
	inner := TermCardWidth - 2

	text := lipgloss.Color(card.Text.Terminal(glass))
	panel := lipgloss.NewStyle().Background(lipgloss.Color(glass))
	line := func(s lipgloss.Style, content string) string {
		return s.Inherit(panel).Width(inner - 2).Align(lipgloss.Center).Render(content)
	}

	chip := lipgloss.NewStyle().
		Background(lipgloss.Color(card.Chip.Background.Terminal(glass))).
		Foreground(text).
		Bold(true).
		Padding(0, 1).
		Render("● " + Brand)
	handle := lipgloss.NewStyle().
		Background(lipgloss.Color(card.Handle.Background.Terminal(glass))).
		Foreground(lipgloss.Color(card.Handle.Foreground.Terminal(glass))).
		Padding(0, 1).
		Render("@" + profile.Handle(p.Name))
	url := lipgloss.NewStyle().
		Background(lipgloss.Color(card.URLBox.Background.Terminal(glass))).
		Foreground(lipgloss.Color(card.URLBox.Foreground.Terminal(glass))).
		Padding(0, 1).
		Render(truncate(profile.ShareURL(p.Name), inner-4))

	rows := []string{
		panel.Width(inner - 2).Render(chip + panel.Render(strings.Repeat(" ", max(0, inner-4-lipgloss.Width(chip)))) + panel.Foreground(text).Render("⚡")),
		line(lipgloss.NewStyle(), ""),
		line(lipgloss.NewStyle().Foreground(text), "( ◉ ) ✔"),
		line(lipgloss.NewStyle(), ""),
		line(lipgloss.NewStyle().Bold(true).Foreground(text), p.Name),
		line(lipgloss.NewStyle(), handle),
		line(lipgloss.NewStyle().Foreground(lipgloss.Color(card.SubText.Terminal(glass))).Bold(true), fallback(p.Bio, CardBioPlaceholder)),
		line(lipgloss.NewStyle(), ""),
		line(lipgloss.NewStyle(), url),
	}

	glassBox := lipgloss.NewStyle().
		Background(lipgloss.Color(glass)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(card.Glass.Border.Terminal(base))).
		BorderBackground(lipgloss.Color(base)).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))

	return cardFrameStyle.Render(
		lipgloss.NewStyle().Background(lipgloss.Color(base)).Width(inner).Align(lipgloss.Center).Render(glassBox),
	)
}

func truncate(s string, width int) string {
	if width <= 1 || lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes)) > width-1 {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
