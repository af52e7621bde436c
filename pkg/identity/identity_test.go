package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Unique(t *testing.T) {
	seen := make(map[ID]bool)
	for i := 0; i < 100; i++ {
		id := New()
		assert.NotEmpty(t, id)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestNewSequence(t *testing.T) {
	next := NewSequence("item")
	assert.Equal(t, ID("item-1"), next())
	assert.Equal(t, ID("item-2"), next())
	assert.Equal(t, ID("item-3"), next())
}

func TestNewSequence_Independent(t *testing.T) {
	a := NewSequence("a")
	b := NewSequence("b")
	a()
	assert.Equal(t, ID("b-1"), b())
	assert.Equal(t, ID("a-2"), a())
}

func TestID_String(t *testing.T) {
	assert.Equal(t, "x", ID("x").String())
}
