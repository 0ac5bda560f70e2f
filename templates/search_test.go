package templates

import (
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func newTestIndex(t *testing.T) *Index {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	index, err := NewIndex(log, NewLibrary(log))
	require.NoError(t, err)
	t.Cleanup(func() { _ = index.Close() })
	return index
}

func TestIndex_Search_By_Model(t *testing.T) {
	req := require.New(t)
	index := newTestIndex(t)

	// When searching a model name
	hits, err := index.Search("claude", 20)

	// Then one template per category comes back
	req.NoError(err)
	req.Len(hits, 4)
	for _, h := range hits {
		req.Equal("claude-3", h.Model)
		req.Positive(h.Score)
	}
}

func TestIndex_Search_By_Category(t *testing.T) {
	req := require.New(t)
	index := newTestIndex(t)

	hits, err := index.Search("summarization", 20)

	req.NoError(err)
	req.NotEmpty(hits)
	for _, h := range hits {
		req.Equal("summarization", h.Category)
	}
}

func TestIndex_Search_Limit_And_Empty_Query(t *testing.T) {
	req := require.New(t)
	index := newTestIndex(t)

	hits, err := index.Search("gpt", 2)
	req.NoError(err)
	req.Len(hits, 2)

	none, err := index.Search("   ", 5)
	req.NoError(err)
	req.Empty(none)

	unknown, err := index.Search("blockchain", 5)
	req.NoError(err)
	req.Empty(unknown)
}
