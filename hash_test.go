package probemap

import (
	"hash/maphash"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"
)

func TestMakeDefaultHash(t *testing.T) {
	v := "foo"
	s := maphash.MakeSeed()

	h1 := MakeDefaultHashFunc[string](s)(v)
	h2 := maphash.Comparable(s, v)

	require.Equal(t, h2, h1)
}

func TestXXHashFunc(t *testing.T) {
	type word string

	f := XXHashFunc[word]()

	require.Equal(t, xxhash.Sum64String("foo"), f("foo"))
	require.Equal(t, f("bar"), f(word("bar")))
	require.NotEqual(t, f("foo"), f("bar"))
}

func TestXXHashFunc_Map(t *testing.T) {
	m := New(WithHashFunc[string, int](XXHashFunc[string]()))

	require.NoError(t, m.Insert("foo", 1))
	require.NoError(t, m.Insert("bar", 2))

	v, ok := m.Find("bar")
	require.True(t, ok)
	require.Equal(t, 2, v)
}
