package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	ID    string `json:"id"`
	Count int    `json:"count"`
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	return s
}

func TestSaveAndLoad(t *testing.T) {
	s := newTestStore(t)

	in := []sample{{ID: "a", Count: 1}, {ID: "b", Count: 2}}
	require.NoError(t, s.Save("samples", in))

	var out []sample
	require.NoError(t, s.Load("samples", &out))
	assert.Equal(t, in, out)
}

func TestLoadAbsentKeyLeavesZeroValue(t *testing.T) {
	s := newTestStore(t)

	var out []sample
	require.NoError(t, s.Load("missing", &out))
	assert.Nil(t, out)
}

func TestSaveOverwrites(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Save("samples", []sample{{ID: "a", Count: 1}}))
	require.NoError(t, s.Save("samples", []sample{{ID: "a", Count: 5}, {ID: "c", Count: 3}}))

	var out []sample
	require.NoError(t, s.Load("samples", &out))
	require.Len(t, out, 2)
	assert.Equal(t, 5, out[0].Count)
}

func TestRemove(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Save("samples", []sample{{ID: "a"}}))
	require.NoError(t, s.Remove("samples"))

	var out []sample
	require.NoError(t, s.Load("samples", &out))
	assert.Empty(t, out)
}
