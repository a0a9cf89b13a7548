package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/linkforce/internal/assist"
	"github.com/alexisbeaulieu97/linkforce/internal/render"
)

// View renders the current model state
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	var content strings.Builder

	content.WriteString(m.renderHeader())
	content.WriteString("\n")

	if m.showError {
		content.WriteString(errorBannerStyle.Width(max(20, m.width-4)).Render(m.errorMsg))
		content.WriteString("\n")
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		formStyle.Width(m.formWidth()).Render(m.renderForm()),
		m.renderPreview(),
	)
	content.WriteString(body)
	content.WriteString("\n")

	content.WriteString(m.renderFooter())
	return content.String()
}

// formWidth leaves room for the preview pane.
func (m Model) formWidth() int {
	return max(30, m.width-render.PhoneWidth-4)
}

// renderHeader renders the title and the tab bar
func (m Model) renderHeader() string {
	title := titleStyle.Render("⚡ " + render.Brand + " editor")

	var items []string
	for _, tab := range tabs {
		style := tabStyle
		if tab == m.tab {
			style = activeTabStyle
		}
		items = append(items, style.Render(tab.String()))
	}

	return headerStyle.Render(lipgloss.JoinHorizontal(lipgloss.Bottom, title, lipgloss.JoinHorizontal(lipgloss.Bottom, items...)))
}

// renderForm renders the rows of the active tab
func (m Model) renderForm() string {
	valueWidth := max(10, m.formWidth()-22)

	var rows []string
	for i, f := range m.fields() {
		selected := i == m.cursor

		marker := "  "
		label := labelStyle.Render(f.label)
		if selected {
			marker = cursorStyle.Render("› ")
			label = selectedLabelStyle.Render(f.label)
		}

		var value string
		switch {
		case m.editing && selected:
			value = m.input.View()
		case f.kind == kindAction:
			value = m.renderAction(f)
		case f.kind == kindChoice:
			value = valueStyle.Render("‹ " + m.value(f) + " ›")
		case f.kind == kindLink:
			value = m.renderLink(f, valueWidth)
		default:
			value = valueStyle.Render(truncate(m.value(f), valueWidth))
		}

		if f.id == fieldBio && !(m.editing && selected) {
			value += " " + m.renderBioCount()
		}

		rows = append(rows, marker+label+value)
	}

	if m.tab == TabContent && len(m.profile.Links) == 0 {
		rows = append(rows, "  "+countStyle.Render("No links yet. Press a to add one."))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderAction(f field) string {
	busy := (f.id == fieldGenerate && m.generating) || (f.id == fieldExport && m.exporting)
	if busy {
		return m.spinner.View() + " " + actionStyle.Render(m.value(f))
	}
	return actionStyle.Render(m.value(f))
}

func (m Model) renderLink(f field, width int) string {
	link, ok := m.profile.FindLink(f.linkID)
	if !ok {
		return ""
	}
	text := truncate(m.value(f), width)
	if !link.IsActive {
		return inactiveLinkStyle.Render(text)
	}
	return valueStyle.Render(text)
}

func (m Model) renderBioCount() string {
	count := bioCount(m.profile.Bio)
	if len([]rune(m.profile.Bio)) > assist.MaxBioLength {
		return overCountStyle.Render(count)
	}
	return countStyle.Render(count)
}

// renderPreview renders the phone or the card next to the form
func (m Model) renderPreview() string {
	if m.preview == PreviewCard || m.tab == TabCard {
		return render.TerminalCard(m.catalog, m.profile)
	}
	return render.TerminalPreview(m.catalog, m.profile)
}

// renderFooter renders the status line and key help
func (m Model) renderFooter() string {
	var help string
	switch {
	case m.editing:
		help = "enter: save • esc: cancel"
	case m.tab == TabContent:
		help = "tab: next tab • ↑/↓: move • enter: edit • a: add link • space: toggle • u: url • d: delete • g: magic write • p: preview • q: quit"
	default:
		help = "tab: next tab • ↑/↓: move • ←/→: change • enter: edit • e: export • p: preview • q: quit"
	}

	lines := []string{help}
	if m.statusMsg != "" {
		lines = append([]string{statusStyle.Render(m.statusMsg)}, lines...)
	}
	return footerStyle.Width(max(20, m.width-2)).Render(strings.Join(lines, "\n"))
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
