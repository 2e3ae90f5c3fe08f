package nfa

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFA(t *testing.T) {
	t.Run("linear chain", func(t *testing.T) {
		a, err := ParseFA(strings.NewReader("0\n0 1 0x61\n1\n"))
		require.Nil(t, err)

		assert.Equal(t, 0, a.Initial())
		assert.Equal(t, 2, a.StateCount())
		assert.Equal(t, []int{1}, a.Finals())
		var got [][3]int
		a.Rules(func(p, q, symbol int) {
			got = append(got, [3]int{p, q, symbol})
		})
		assert.Equal(t, [][3]int{{0, 1, 0x61}}, got)
		assert.Equal(t, map[int]int{0: 0, 1: 1}, a.StateDepth())
	})

	t.Run("symbol base detection", func(t *testing.T) {
		a, err := ParseFA(strings.NewReader("0\n0 1 0x61\n0 2 97\n0 3 0141\n1\n2\n3\n"))
		require.Nil(t, err)
		symbols := NewStateSet()
		a.Rules(func(p, q, symbol int) {
			symbols.Add(symbol)
		})
		assert.Equal(t, []int{0x61}, symbols.Sorted())
	})

	t.Run("no trailing newline", func(t *testing.T) {
		a, err := ParseFA(strings.NewReader("0\n0 1 0x61\n1"))
		require.Nil(t, err)
		assert.Equal(t, []int{1}, a.Finals())
	})

	t.Run("multiple finals and rules", func(t *testing.T) {
		a, err := ParseFA(strings.NewReader("0\n0 1 0x61\n0 2 0x62\n1 2 0x63\n1\n2\n"))
		require.Nil(t, err)
		assert.Equal(t, 3, a.StateCount())
		assert.Equal(t, 3, a.RuleCount())
		assert.Equal(t, []int{1, 2}, a.Finals())
	})

	t.Run("malformed lines", func(t *testing.T) {
		cases := []struct {
			name  string
			input string
		}{
			{"bad initial line", "0 1\n"},
			{"bad rule line", "0\n0 1\n"},
			{"bad final line", "0\n0 1 0x61\n1\n2 3\n"},
			{"non-numeric initial", "abc\n0 1 0x61\n1\n"},
			{"non-numeric final", "0\n0 1 0x61\nfoo\n"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := ParseFA(strings.NewReader(tc.input))
				assert.ErrorIs(t, err, ErrInvalidLine)
			})
		}
	})

	t.Run("offending line is quoted", func(t *testing.T) {
		_, err := ParseFA(strings.NewReader("0\n0 ? 1\n"))
		require.NotNil(t, err)
		assert.Contains(t, err.Error(), `"0 ? 1"`)
	})

	t.Run("symbol out of range", func(t *testing.T) {
		_, err := ParseFA(strings.NewReader("0\n0 1 0x100\n1\n"))
		assert.ErrorIs(t, err, ErrInvalidSymbol)
	})
}

func TestWriteFA(t *testing.T) {
	a := New()
	a.SetInitial(0)
	require.Nil(t, a.AddRule(0, 1, 0x61))
	a.AddFinal(1)

	assert.Equal(t, "0\n0 1 0x61\n1\n", serialize(t, a))
}

func TestRoundTrip(t *testing.T) {
	input := "0\n0 1 0x61\n0 2 0x61\n1 1 0x0\n2 3 0x62\n1\n3\n"
	a, err := ParseFA(strings.NewReader(input))
	require.Nil(t, err)

	b, err := ParseFA(strings.NewReader(serialize(t, a)))
	require.Nil(t, err)

	// Structural equality: no renumbering happens during parse.
	assert.Equal(t, serialize(t, a), serialize(t, b))
	for _, word := range [][]byte{[]byte("a"), []byte("ab"), []byte("a\x00\x00"), []byte("b"), nil} {
		assert.Equal(t, a.Accepts(word), b.Accepts(word), "word %q", word)
	}
}

func TestReadWriteFile(t *testing.T) {
	a := New()
	a.SetInitial(0)
	require.Nil(t, a.AddRule(0, 1, 'a'))
	require.Nil(t, a.AddRule(1, 1, 'b'))
	a.AddFinal(1)

	path := filepath.Join(t.TempDir(), "chain.fa")
	require.Nil(t, a.SaveFA(path))

	b, err := ReadFA(path)
	require.Nil(t, err)
	assert.Equal(t, serialize(t, a), serialize(t, b))

	_, err = ReadFA(filepath.Join(t.TempDir(), "missing.fa"))
	assert.NotNil(t, err)
}
