package editor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/linkforce/internal/assist"
	"github.com/alexisbeaulieu97/linkforce/internal/profile"
)

const (
	minWidth  = 80
	minHeight = 24
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// System messages
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(10, m.formWidth()-20)

		if m.width < minWidth || m.height < minHeight {
			m.setError(fmt.Sprintf("Terminal too small (%dx%d). Minimum size: %dx%d",
				m.width, m.height, minWidth, minHeight))
		} else if m.showError && strings.HasPrefix(m.errorMsg, "Terminal too small") {
			m.clearError()
		}
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.handleEditKeys(msg)
		}
		return m.handleKeyPress(msg)

	// Spinner only ticks while something is outstanding
	case spinner.TickMsg:
		if !m.IsBusy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	// Assist messages
	case BioGeneratedMsg:
		m.generating = false
		m.apply(profile.Bind(profile.SetBio, msg.Bio))
		m.clearError()
		m.statusMsg = "Bio rewritten"
		return m, nil

	case BioFailedMsg:
		m.generating = false
		if errors.Is(msg.Err, assist.ErrBusy) {
			m.statusMsg = "A bio rewrite is already running"
			return m, nil
		}
		m.setError(fmt.Sprintf("Bio generation failed: %s", msg.Err.Error()))
		return m, nil

	// Export messages
	case ExportCompleteMsg:
		m.exporting = false
		m.clearError()
		m.statusMsg = fmt.Sprintf("Card saved to %s", msg.Path)
		return m, nil

	case ExportFailedMsg:
		m.exporting = false
		m.setError(fmt.Sprintf("Export failed: %s", msg.Err.Error()))
		return m, nil

	// Error messages
	case ErrorMsg:
		m.setError(msg.Message)
		return m, nil

	case ClearErrorMsg:
		m.clearError()
		return m, nil
	}

	return m, nil
}

// handleKeyPress handles keys while navigating the form
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	// Quit
	case "q", "ctrl+c":
		return m, tea.Quit

	// Clear error banner
	case "x", "esc":
		if m.showError {
			m.clearError()
		}
		return m, nil

	// Tabs
	case "tab":
		m.SetTab(tabs[(int(m.tab)+1)%len(tabs)])
		return m, nil

	case "shift+tab":
		m.SetTab(tabs[(int(m.tab)+len(tabs)-1)%len(tabs)])
		return m, nil

	case "1", "2", "3":
		m.SetTab(tabs[int(msg.String()[0]-'1')])
		return m, nil

	// Navigation
	case "up", "k":
		m.MoveCursorUp()
		return m, nil

	case "down", "j":
		m.MoveCursorDown()
		return m, nil

	case "left", "h":
		return m.cycleSelected(-1)

	case "right", "l":
		return m.cycleSelected(1)

	// Preview pane
	case "p":
		if m.preview == PreviewPhone {
			m.preview = PreviewCard
		} else {
			m.preview = PreviewPhone
		}
		return m, nil

	// Shortcuts
	case "a":
		return m.addLink()

	case "g":
		return m.generateBio()

	case "e":
		return m.exportCard()

	case "enter":
		return m.activate()

	case " ":
		if f, ok := m.selected(); ok && f.kind == kindLink {
			m.apply(func(p profile.UserProfile) profile.UserProfile { return profile.ToggleLink(p, f.linkID) })
			return m, nil
		}
		return m.activate()

	case "u":
		if f, ok := m.selected(); ok && f.kind == kindLink {
			return m.beginEdit(f, true)
		}
		return m, nil

	case "d", "delete":
		if f, ok := m.selected(); ok && f.kind == kindLink {
			m.apply(func(p profile.UserProfile) profile.UserProfile { return profile.DeleteLink(p, f.linkID) })
			m.statusMsg = "Link removed"
		}
		return m, nil
	}

	return m, nil
}

// handleEditKeys handles keys while a text field is being edited
func (m Model) handleEditKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.endEdit()
		return m, nil

	case "enter":
		target, editURL, text := m.editTarget, m.editURL, m.input.Value()
		m.endEdit()

		if target.id == fieldKeywords {
			m.keywords = text
			return m, nil
		}

		edit, err := m.commit(target, editURL, text)
		if err != nil {
			m.setError(err.Error())
			return m, nil
		}
		m.apply(edit)
		m.clearError()

		// A fresh link goes straight from title to URL.
		if target.kind == kindLink && !editURL {
			if link, ok := m.profile.FindLink(target.linkID); ok && link.URL == "" {
				return m.beginEdit(target, true)
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// activate runs the primary action of the selected row
func (m Model) activate() (tea.Model, tea.Cmd) {
	f, ok := m.selected()
	if !ok {
		return m, nil
	}

	switch f.kind {
	case kindText, kindLink:
		return m.beginEdit(f, false)
	case kindChoice:
		return m.cycleSelected(1)
	case kindAction:
		switch f.id {
		case fieldGenerate:
			return m.generateBio()
		case fieldAddLink:
			return m.addLink()
		case fieldExport:
			return m.exportCard()
		}
	}
	return m, nil
}

func (m Model) cycleSelected(dir int) (tea.Model, tea.Cmd) {
	f, ok := m.selected()
	if !ok || f.kind != kindChoice {
		return m, nil
	}
	if f.id == fieldTone {
		m.tone = cycleTone(m.tone, dir)
		return m, nil
	}
	m.apply(m.cycle(f, dir))
	return m, nil
}

func (m Model) beginEdit(f field, editURL bool) (tea.Model, tea.Cmd) {
	m.editing = true
	m.editTarget = f
	m.editURL = editURL
	m.input.Placeholder = placeholderFor(f, editURL)
	m.input.SetValue(m.rawValue(f, editURL))
	m.input.CursorEnd()
	return m, m.input.Focus()
}

func (m *Model) endEdit() {
	m.editing = false
	m.editTarget = field{}
	m.editURL = false
	m.input.Blur()
	m.input.Reset()
}

// addLink prepends an empty link and starts editing its title
func (m Model) addLink() (tea.Model, tea.Cmd) {
	if m.tab != TabContent {
		m.SetTab(TabContent)
	}

	var id string
	m.apply(func(p profile.UserProfile) profile.UserProfile {
		next, newID := profile.AddLink(p)
		id = newID
		return next
	})
	if !m.focusLink(id) {
		return m, nil
	}
	f, _ := m.selected()
	return m.beginEdit(f, false)
}

func (m Model) generateBio() (tea.Model, tea.Cmd) {
	if m.generating {
		m.statusMsg = "A bio rewrite is already running"
		return m, nil
	}
	m.generating = true
	m.statusMsg = ""
	req := assist.Request{Bio: m.profile.Bio, Keywords: m.keywords, Tone: m.tone}
	return m, tea.Batch(m.spinner.Tick, generateBioCmd(m.ctx, m.assistant, req))
}

func (m Model) exportCard() (tea.Model, tea.Cmd) {
	if m.exporting {
		m.statusMsg = "An export is already running"
		return m, nil
	}
	m.exporting = true
	m.statusMsg = ""
	return m, tea.Batch(m.spinner.Tick, exportCmd(m.ctx, m.exporter, m.profile))
}

func placeholderFor(f field, editURL bool) string {
	switch f.id {
	case fieldAvatar, fieldBackgroundImage, fieldCardImage:
		return "path to an image or https:// URL"
	case fieldBackgroundColor, fieldCardColor:
		return "#0f172a"
	case fieldKeywords:
		return "e.g. photography, travel, coffee"
	case fieldLink:
		if editURL {
			return "https://..."
		}
		return "Title"
	}
	return ""
}
