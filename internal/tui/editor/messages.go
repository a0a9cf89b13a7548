package editor

// Tab selects the editor panel.
type Tab int

const (
	TabContent Tab = iota
	TabDesign
	TabCard
)

var tabs = []Tab{TabContent, TabDesign, TabCard}

func (t Tab) String() string {
	switch t {
	case TabDesign:
		return "Design"
	case TabCard:
		return "Card"
	default:
		return "Content"
	}
}

// PreviewMode selects what the preview pane shows.
type PreviewMode int

const (
	PreviewPhone PreviewMode = iota
	PreviewCard
)

// Assist messages

// BioGeneratedMsg carries a rewritten bio.
type BioGeneratedMsg struct {
	Bio string
}

// BioFailedMsg reports a failed rewrite; the bio is left as it was.
type BioFailedMsg struct {
	Err error
}

// Export messages

// ExportCompleteMsg reports where the card image was written.
type ExportCompleteMsg struct {
	Path string
}

// ExportFailedMsg reports a failed export.
type ExportFailedMsg struct {
	Err error
}

// ErrorMsg shows an error banner.
type ErrorMsg struct {
	Message string
}

// ClearErrorMsg hides the error banner.
type ClearErrorMsg struct{}
