package nfa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeEmpty(t *testing.T) {
	a := MakeEmpty()
	assert.False(t, a.Accepts(nil))
	assert.False(t, a.Accepts([]byte("a")))
}

func TestMakeEmptyString(t *testing.T) {
	a := MakeEmptyString()
	assert.True(t, a.Accepts(nil))
	assert.False(t, a.Accepts([]byte("a")))
}

func TestMakeAnyString(t *testing.T) {
	a := MakeAnyString()
	assert.True(t, a.Accepts(nil))
	assert.True(t, a.Accepts([]byte("anything at all \x00\xff")))
	assert.True(t, a.HasPathOverAlphabet(0, 0))
}

func TestMakeString(t *testing.T) {
	a := MakeString([]byte("ab"))
	assert.True(t, a.Accepts([]byte("ab")))
	assert.False(t, a.Accepts([]byte("a")))
	assert.False(t, a.Accepts([]byte("abc")))
	assert.False(t, a.Accepts(nil))
	assert.Equal(t, 3, a.StateCount())
}
