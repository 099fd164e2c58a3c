package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"textcorpus/internal/domain"
)

// View selects which sequence of the current document is shown.
type View int

const (
	ViewSentences View = iota
	ViewParagraphs
)

func (v View) String() string {
	if v == ViewParagraphs {
		return "paragraphs"
	}
	return "sentences"
}

// Model is the Bubble Tea model for browsing a corpus.
type Model struct {
	docs     []*domain.Document
	input    textinput.Model
	viewport viewport.Model
	cursor   int
	view     View
	status   string
	ready    bool
}

// New creates a browser over the documents of c in listing order.
func New(c *domain.Corpus) Model {
	ti := textinput.New()
	ti.Prompt = "filter> "
	ti.Placeholder = "Type to filter entries"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	m := Model{docs: c.Documents(), input: ti, viewport: vp}
	m.status = m.defaultStatus()
	return m
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, rh := resultBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		reserved := 2 + 1 + qh + 1 // header + document line, status, spacer
		vh := msg.Height - reserved
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-rh)
		m.refresh()
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab:
			if m.view == ViewSentences {
				m.view = ViewParagraphs
			} else {
				m.view = ViewSentences
			}
			m.refresh()
			return m, nil
		case tea.KeyDown:
			if len(m.docs) > 0 {
				m.cursor = (m.cursor + 1) % len(m.docs)
				m.refresh()
			}
			return m, nil
		case tea.KeyUp:
			if len(m.docs) > 0 {
				m.cursor = (m.cursor - 1 + len(m.docs)) % len(m.docs)
				m.refresh()
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refresh()
	return m, cmd
}

// View renders the TUI layout and current document.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("textcorpus")
	docLine := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(m.documentLine())
	body := resultBoxStyle.Render(m.viewport.View())
	input := queryBoxStyle.Render(m.input.View())
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.status)
	return header + "\n" + docLine + "\n" + body + "\n" + input + "\n" + status
}

// Current returns the selected document, or nil for an empty corpus.
func (m Model) Current() *domain.Document {
	if len(m.docs) == 0 {
		return nil
	}
	return m.docs[m.cursor]
}

// Mode returns the sequence currently displayed.
func (m Model) Mode() View { return m.view }

func (m *Model) refresh() {
	m.viewport.SetContent(m.renderEntries())
	m.viewport.GotoTop()
	m.status = m.defaultStatus()
}

func (m Model) defaultStatus() string {
	return fmt.Sprintf("[%s] up/down: document  tab: paragraphs/sentences  esc: quit", m.view)
}

func (m Model) documentLine() string {
	doc := m.Current()
	if doc == nil {
		return "No documents in Corpus to display."
	}
	return fmt.Sprintf("Document %d/%d: %s  (%d paragraph(s), %d sentence(s))",
		m.cursor+1, len(m.docs), doc.Filename(), doc.NumParagraphs(), doc.NumSentences())
}

func (m Model) renderEntries() string {
	doc := m.Current()
	if doc == nil {
		return "Nothing to display."
	}
	entries := doc.Sentences()
	if m.view == ViewParagraphs {
		entries = doc.Paragraphs()
	}
	if len(entries) == 0 {
		return fmt.Sprintf("No %s in '%s' to display.", m.view, doc.Filename())
	}
	query := strings.TrimSpace(m.input.Value())
	var b strings.Builder
	shown := 0
	for i, e := range entries {
		if !containsFold(e, query) {
			continue
		}
		if shown > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "[%d] %s", i, highlight(e, query))
		shown++
	}
	if shown == 0 {
		return fmt.Sprintf("No %s match %q.", m.view, query)
	}
	return b.String()
}

var (
	resultBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
)

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// highlight marks every case-insensitive occurrence of query in text.
func highlight(text, query string) string {
	if query == "" {
		return text
	}
	lower := strings.ToLower(text)
	q := strings.ToLower(query)
	// Offsets in lower only map onto text when lowering kept the byte length.
	if len(lower) != len(text) {
		return text
	}
	var b strings.Builder
	for {
		i := strings.Index(lower, q)
		if i < 0 {
			b.WriteString(text)
			return b.String()
		}
		b.WriteString(text[:i])
		b.WriteString(highlightStyle.Render(text[i : i+len(q)]))
		text, lower = text[i+len(q):], lower[i+len(q):]
	}
}
