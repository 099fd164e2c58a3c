package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textcorpus/internal/domain"
)

func testCorpus(t *testing.T) *domain.Corpus {
	t.Helper()
	c := domain.NewCorpus()
	a := domain.NewDocument("a.txt")
	a.AppendParagraphs([]string{"Hello world. Bye!"})
	a.AppendSentences([]string{"Hello world", "Bye"})
	b := domain.NewDocument("b.txt")
	b.AppendParagraphs([]string{"Line one.", "Line two?"})
	b.AppendSentences([]string{"Line one", "Line two"})
	require.NoError(t, c.Add(a))
	require.NoError(t, c.Add(b))
	return c
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func sized(t *testing.T, m Model) Model {
	return send(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
}

func TestNew(t *testing.T) {
	m := New(testCorpus(t))
	assert.Equal(t, "a.txt", m.Current().Filename())
	assert.Equal(t, ViewSentences, m.Mode())
	assert.Equal(t, "Loading...", m.View())
}

func TestUpdate_WindowSize(t *testing.T) {
	m := sized(t, New(testCorpus(t)))
	view := m.View()
	assert.Contains(t, view, "textcorpus")
	assert.Contains(t, view, "Document 1/2: a.txt")
	assert.Contains(t, view, "Hello world")
}

func TestUpdate_NavigateDocuments(t *testing.T) {
	m := sized(t, New(testCorpus(t)))

	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "b.txt", m.Current().Filename())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "a.txt", m.Current().Filename())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "b.txt", m.Current().Filename())
}

func TestUpdate_ToggleView(t *testing.T) {
	m := sized(t, New(testCorpus(t)))

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, ViewParagraphs, m.Mode())
	assert.Contains(t, m.renderEntries(), "[0] Hello world. Bye!")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, ViewSentences, m.Mode())
	assert.Equal(t, "[0] Hello world\n[1] Bye", m.renderEntries())
}

func TestUpdate_Filter(t *testing.T) {
	m := sized(t, New(testCorpus(t)))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("TWO")})

	assert.Equal(t, "TWO", m.input.Value())
	out := m.renderEntries()
	assert.Contains(t, out, "[1] ")
	assert.NotContains(t, out, "[0] ")
}

func TestUpdate_FilterNoMatch(t *testing.T) {
	m := sized(t, New(testCorpus(t)))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("zebra")})
	assert.Equal(t, `No sentences match "zebra".`, m.renderEntries())
}

func TestUpdate_Quit(t *testing.T) {
	m := New(testCorpus(t))
	for _, k := range []tea.KeyType{tea.KeyCtrlC, tea.KeyEsc} {
		_, cmd := m.Update(tea.KeyMsg{Type: k})
		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
	}
}

func TestEmptyCorpus(t *testing.T) {
	m := sized(t, New(domain.NewCorpus()))
	assert.Nil(t, m.Current())
	assert.Contains(t, m.View(), "No documents in Corpus to display.")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Nil(t, m.Current())
}

func TestEmptyDocument(t *testing.T) {
	c := domain.NewCorpus()
	require.NoError(t, c.Add(domain.NewDocument("empty.txt")))

	m := sized(t, New(c))
	assert.Equal(t, "No sentences in 'empty.txt' to display.", m.renderEntries())
}

func TestHighlight_NoQuery(t *testing.T) {
	assert.Equal(t, "plain", highlight("plain", ""))
	assert.True(t, containsFold("Hello World", "wORLD"))
	assert.True(t, containsFold("anything", ""))
}
