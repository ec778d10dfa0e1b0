package critbit

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keys(tr *Set) (s []string) {
	tr.Iter("", func(key string) bool {
		s = append(s, key)
		return true
	})
	return
}

func TestEmptySet(t *testing.T) {
	t.Parallel()

	tr := NewSet()

	assert.Nil(t, keys(tr))
	assert.True(t, tr.Empty())
	assert.False(t, tr.Has("a"))
	assert.Empty(t, tr.Keys())
}

func TestAdd_EmptyKey(t *testing.T) {
	t.Parallel()

	tr := NewSet()

	assert.False(t, tr.Add(""))
	assert.ErrorIs(t, tr.Insert(""), ErrEmptyInput)
	assert.True(t, tr.Empty())
}

func TestKeyOrder(t *testing.T) {
	t.Parallel()

	for i, tcase := range []*struct {
		Ins []string
		Res []string
	}{
		{
			[]string{"x", "y", "z", "c", "c", "b", "b", "a", "a"},
			[]string{"a", "b", "c", "x", "y", "z"},
		},
		{
			[]string{"aaa", "aa", "a"},
			[]string{"a", "aa", "aaa"},
		},
		{
			[]string{"b", "a", "aa"},
			[]string{"a", "aa", "b"},
		},
		{
			[]string{"aa", "aaa", "aab", "ab", "ba", "bb", "bba", "bbb"},
			[]string{"aa", "aaa", "aab", "ab", "ba", "bb", "bba", "bbb"},
		},
	} {
		tcase := tcase

		t.Run(fmt.Sprint(i), func(t *testing.T) {
			tr := NewSet()
			for _, s := range tcase.Ins {
				tr.Add(s)
				require.True(t, tr.Has(s), s)
			}

			assert.Equal(t, tcase.Res, keys(tr))
			assert.Equal(t, tcase.Res, tr.Keys())
			assert.Equal(t, len(tcase.Res), tr.Len())
		})
	}
}

func TestIter(t *testing.T) {
	t.Parallel()

	tr := NewSet("aa", "aaa", "aab", "ab", "ba", "bb", "bba", "bbb")

	for _, tcase := range []*struct {
		Prefix string
		Keys   []string
	}{
		{"", tr.Keys()},
		{"a", []string{"aa", "aaa", "aab", "ab"}},
		{"aa", []string{"aa", "aaa", "aab"}},
		{"aaa", []string{"aaa"}},
		{"aaaa", nil},
		{"c", nil},
	} {
		var (
			tcase = tcase
			name  = fmt.Sprintf("%#v", tcase.Prefix)
		)

		t.Run(name, func(t *testing.T) {
			var got []string
			tr.Iter(tcase.Prefix, func(key string) bool {
				got = append(got, key)
				return true
			})
			assert.Equal(t, tcase.Keys, got)
		})
	}
}

func TestSearch(t *testing.T) {
	t.Parallel()

	tr := NewSet("cat", "car", "c", "dog", "dogma")

	for _, tcase := range []*struct {
		Pattern string
		Exp     []string
	}{
		{"ca*", []string{"car", "cat"}},
		{"c*t", []string{"c", "cat"}},
		{"do*", []string{"dog", "dogma"}},
		{"dogs", nil},
		{"dog", []string{"dog"}},
		{"*", []string{"c", "car", "cat", "dog", "dogma"}},
		{"*og", []string{"c", "dog"}},
		{"dog*a", []string{"dog", "dogma"}},
	} {
		var (
			tcase = tcase
			name  = fmt.Sprintf("%#v", tcase.Pattern)
		)

		t.Run(name, func(t *testing.T) {
			got, err := tr.Search(tcase.Pattern)

			require.NoError(t, err)
			assert.Equal(t, tcase.Exp, got)
		})
	}
}

func TestSearch_Errors(t *testing.T) {
	t.Parallel()

	tr := NewSet("abc")

	_, err := tr.Search("")
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = tr.Search("**")
	assert.ErrorIs(t, err, ErrTooManyWildcards)
}

func TestSetWildcard(t *testing.T) {
	t.Parallel()

	tr := NewSet("a*b", "axb")
	tr.SetWildcard('?')

	got, err := tr.Search("a?b")
	require.NoError(t, err)
	assert.Equal(t, []string{"a*b", "axb"}, got)
}
