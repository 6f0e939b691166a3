package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	st := NewMemoryStore()

	_, err := st.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, st.Set("k", []byte("v1")))
	got, err := st.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), got)

	require.NoError(t, st.Set("k", []byte("v2")))
	got, err = st.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), got)

	require.NoError(t, st.Delete("k"))
	_, err = st.Get("k")
	assert.ErrorIs(t, err, ErrNotFound)

	// deleting an absent key is not an error
	assert.NoError(t, st.Delete("k"))
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	st := NewMemoryStore()

	in := []byte("original")
	require.NoError(t, st.Set("k", in))
	in[0] = 'X'

	got, err := st.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), got)

	got[0] = 'Y'
	again, err := st.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), again)
}
