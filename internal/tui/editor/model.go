// Package editor is the interactive terminal editor: a form on the left,
// a live preview of the page or card on the right.
package editor

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/linkforce/internal/assist"
	"github.com/alexisbeaulieu97/linkforce/internal/profile"
	"github.com/alexisbeaulieu97/linkforce/internal/style"
)

// Options wires the editor to its collaborators. Assistant and Exporter
// may be nil; the matching actions then report an error.
type Options struct {
	Context   context.Context
	Store     ProfileStore
	Assistant BioAssistant
	Exporter  CardExporter
	Catalog   style.Catalog
}

// Model is the editor model
type Model struct {
	// Collaborators
	ctx       context.Context
	store     ProfileStore
	assistant BioAssistant
	exporter  CardExporter
	catalog   style.Catalog

	// Snapshot of the store, refreshed after every edit
	profile profile.UserProfile

	// UI state
	tab     Tab
	cursor  int
	preview PreviewMode

	// Text editing state
	input      textinput.Model
	editing    bool
	editTarget field
	editURL    bool

	// Bio assist inputs
	keywords string
	tone     assist.Tone

	// Operation state
	spinner    spinner.Model
	generating bool
	exporting  bool

	// Banners
	showError bool
	errorMsg  string
	statusMsg string

	// Dimensions
	width  int
	height int
}

// NewModel creates a new editor model
func NewModel(opts Options) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	ti := textinput.New()
	ti.Prompt = "› "
	ti.PromptStyle = inputPromptStyle
	ti.CharLimit = 0

	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	catalog := opts.Catalog
	if len(catalog) == 0 {
		catalog = style.DefaultCatalog()
	}

	return Model{
		ctx:       ctx,
		store:     opts.Store,
		assistant: opts.Assistant,
		exporter:  opts.Exporter,
		catalog:   catalog,
		profile:   opts.Store.Current(),
		tab:       TabContent,
		preview:   PreviewPhone,
		input:     ti,
		tone:      assist.ToneProfessional,
		spinner:   s,
		width:     100,
		height:    32,
	}
}

// Init initializes the model and returns initial commands
func (m Model) Init() tea.Cmd {
	return nil
}

// Helper Methods

// apply runs edit through the store and refreshes the snapshot.
func (m *Model) apply(edit profile.Edit) {
	if edit == nil {
		return
	}
	m.profile = m.store.Apply(m.ctx, edit)
	m.clampCursor()
}

// Profile returns the snapshot the editor is showing.
func (m *Model) Profile() profile.UserProfile {
	return m.profile
}

// Tab returns the active tab.
func (m *Model) Tab() Tab {
	return m.tab
}

// IsEditing reports whether a text field is being edited.
func (m *Model) IsEditing() bool {
	return m.editing
}

// IsBusy reports whether a bio rewrite or export is outstanding.
func (m *Model) IsBusy() bool {
	return m.generating || m.exporting
}

// selected returns the field under the cursor.
func (m *Model) selected() (field, bool) {
	fields := m.fields()
	if m.cursor < 0 || m.cursor >= len(fields) {
		return field{}, false
	}
	return fields[m.cursor], true
}

// MoveCursorUp moves cursor up with wrapping
func (m *Model) MoveCursorUp() {
	n := len(m.fields())
	if n == 0 {
		return
	}
	m.cursor--
	if m.cursor < 0 {
		m.cursor = n - 1
	}
}

// MoveCursorDown moves cursor down with wrapping
func (m *Model) MoveCursorDown() {
	n := len(m.fields())
	if n == 0 {
		return
	}
	m.cursor++
	if m.cursor >= n {
		m.cursor = 0
	}
}

// SetTab switches tabs and resets the cursor.
func (m *Model) SetTab(tab Tab) {
	m.tab = tab
	m.cursor = 0
}

func (m *Model) clampCursor() {
	n := len(m.fields())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// focusLink moves the cursor onto the row of link id.
func (m *Model) focusLink(id string) bool {
	for i, f := range m.fields() {
		if f.kind == kindLink && f.linkID == id {
			m.cursor = i
			return true
		}
	}
	return false
}

func (m *Model) setError(msg string) {
	m.showError = true
	m.errorMsg = msg
	m.statusMsg = ""
}

func (m *Model) clearError() {
	m.showError = false
	m.errorMsg = ""
}
