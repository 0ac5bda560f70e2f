package registry

import (
	"prompt-lab/adapter"
	"prompt-lab/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry_Default_Keys_Match_Declared_IDs(t *testing.T) {
	req := require.New(t)

	// Given the default registry
	r := NewDefaultRegistry()

	// Then every key is the model id the adapter declares
	req.Equal(len(Entries), r.Len())
	for _, id := range r.IDs() {
		a, err := r.Get(id)
		req.NoError(err)
		req.Equal(id, a.Info().ModelID)
	}
}

func TestRegistry_Unknown_Model(t *testing.T) {
	req := require.New(t)
	r := NewDefaultRegistry()

	a, err := r.Get("gpt-5")

	req.Nil(a)
	req.ErrorIs(err, errors.ErrUnknownModel)
	req.Contains(err.Error(), "gpt-5")
}

func TestRegistry_Lookup_Is_Exact(t *testing.T) {
	req := require.New(t)
	r := NewDefaultRegistry()

	_, err := r.Get("GPT-4o")
	req.ErrorIs(err, errors.ErrUnknownModel)
	_, err = r.Get(" gpt-4o")
	req.ErrorIs(err, errors.ErrUnknownModel)
}

func TestRegistry_Register_Keeps_Order_And_Replaces(t *testing.T) {
	req := require.New(t)
	r := NewRegistry()

	// When the same id is registered twice
	r.Register("b", adapter.NewSuno())
	r.Register("a", adapter.NewPika())
	r.Register("b", adapter.NewSora())

	// Then the first position is kept and the last adapter wins
	req.Equal([]string{"b", "a"}, r.IDs())
	req.Equal([]string{"a", "b"}, r.SortedIDs())
	got, err := r.Get("b")
	req.NoError(err)
	req.Equal("sora", got.Info().ModelID)
	req.Len(r.All(), 2)
}

func TestRegistry_IDs_Is_A_Copy(t *testing.T) {
	req := require.New(t)
	r := NewDefaultRegistry()

	ids := r.IDs()
	ids[0] = "mutated"

	req.NotEqual("mutated", r.IDs()[0])
}
