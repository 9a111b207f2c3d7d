package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArenaInsertGet(t *testing.T) {
	a := Arena[string]{}
	k1 := a.Insert("a")
	k2 := a.Insert("b")
	assert.NotEqual(t, Key(0), k1)
	assert.Less(t, k1, k2)
	v, ok := a.Get(k2)
	assert.True(t, ok)
	assert.Equal(t, "b", *v)
	assert.Equal(t, 2, a.Len())
	assert.Equal(t, []Key{k1, k2}, a.Keys())
}

func TestArenaStaleKey(t *testing.T) {
	a := Arena[int]{}
	k1 := a.Insert(1)
	v, ok := a.Remove(k1)
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	k2 := a.Insert(2)
	assert.Equal(t, k1.index(), k2.index())
	assert.NotEqual(t, k1, k2)

	_, ok = a.Get(k1)
	assert.False(t, ok, "stale key must not resolve to the reused slot")
	_, ok = a.Remove(k1)
	assert.False(t, ok)
	assert.Equal(t, 1, a.Len())
}

func TestArenaForeignKey(t *testing.T) {
	a := Arena[int]{}
	_, ok := a.Get(makeKey(5, 1))
	assert.False(t, ok)
	_, ok = a.Get(0)
	assert.False(t, ok)
}
