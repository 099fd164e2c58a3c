package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorpus_AddAndGet(t *testing.T) {
	c := NewCorpus()
	doc := NewDocument("a.txt")

	require.NoError(t, c.AddDocument("a.txt", doc))

	got, err := c.GetDocument("a.txt")
	require.NoError(t, err)
	assert.Same(t, doc, got)
	assert.True(t, c.Has("a.txt"))
	assert.Equal(t, 1, c.Len())
}

func TestCorpus_GetMissing(t *testing.T) {
	c := NewCorpus()
	require.NoError(t, c.Add(NewDocument("a.txt")))

	got, err := c.GetDocument("missing.txt")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), `"missing.txt"`)
}

func TestCorpus_AddNilDocument(t *testing.T) {
	c := NewCorpus()
	require.NoError(t, c.Add(NewDocument("a.txt")))

	err := c.AddDocument("b.txt", nil)
	assert.ErrorIs(t, err, ErrInvalidDocument)
	assert.ErrorIs(t, c.Add(nil), ErrInvalidDocument)
	assert.Equal(t, 1, c.Len())
	assert.False(t, c.Has("b.txt"))
}

func TestCorpus_AddFilenameMismatch(t *testing.T) {
	c := NewCorpus()

	err := c.AddDocument("other.txt", NewDocument("a.txt"))
	assert.ErrorIs(t, err, ErrFilenameMismatch)
	assert.Zero(t, c.Len())
}

func TestCorpus_OverwriteKeepsPosition(t *testing.T) {
	c := NewCorpus()
	first := NewDocument("a.txt")
	second := NewDocument("a.txt")
	second.AppendSentences([]string{"replacement"})

	require.NoError(t, c.Add(first))
	require.NoError(t, c.Add(NewDocument("b.txt")))
	require.NoError(t, c.Add(second))

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []string{"a.txt", "b.txt"}, c.Filenames())

	got, err := c.GetDocument("a.txt")
	require.NoError(t, err)
	assert.Same(t, second, got)
}

func TestCorpus_ListingOrder(t *testing.T) {
	c := NewCorpus()
	for _, name := range []string{"c.txt", "a.txt", "b.txt"} {
		require.NoError(t, c.Add(NewDocument(name)))
	}

	assert.Equal(t, []string{"c.txt", "a.txt", "b.txt"}, c.Filenames())

	docs := c.Documents()
	require.Len(t, docs, 3)
	for i, doc := range docs {
		assert.Equal(t, c.Filenames()[i], doc.Filename())
	}
}

func TestCorpus_Empty(t *testing.T) {
	c := NewCorpus()
	assert.Zero(t, c.Len())
	assert.Empty(t, c.Filenames())
	assert.Empty(t, c.Documents())
}
