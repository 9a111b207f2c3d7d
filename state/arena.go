package state

import "fmt"

// Key identifies a slot in an Arena. The slot index lives in the high 32 bits and the slot
// generation in the low 32 bits, so keys order by allocation position. The zero Key is never issued.
type Key uint64

func makeKey(idx, gen uint32) Key {
	return Key(uint64(idx)<<32 | uint64(gen))
}

func (k Key) index() uint32 {
	return uint32(k >> 32)
}

func (k Key) generation() uint32 {
	return uint32(k)
}

func (k Key) String() string {
	return fmt.Sprintf("%d.%d", k.index(), k.generation())
}

type slot[T any] struct {
	gen  uint32
	live bool
	val  T
}

// Arena is slot storage with generation-tagged keys. A key stays valid until its slot is removed;
// reusing the slot bumps the generation, so stale keys never alias a newer value.
// Arena access must be done only on a single Goroutine
type Arena[T any] struct {
	slots []slot[T]
	free  []uint32
	count int
}

func (a *Arena[T]) Insert(val T) Key {
	a.count++
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		s := &a.slots[idx]
		s.gen++
		s.live = true
		s.val = val
		return makeKey(idx, s.gen)
	}
	a.slots = append(a.slots, slot[T]{gen: 1, live: true, val: val})
	return makeKey(uint32(len(a.slots)-1), 1)
}

func (a *Arena[T]) Get(k Key) (*T, bool) {
	idx := k.index()
	if int(idx) >= len(a.slots) {
		return nil, false
	}
	s := &a.slots[idx]
	if !s.live || s.gen != k.generation() {
		return nil, false
	}
	return &s.val, true
}

func (a *Arena[T]) Remove(k Key) (T, bool) {
	var zero T
	if _, ok := a.Get(k); !ok {
		return zero, false
	}
	s := &a.slots[k.index()]
	val := s.val
	s.val = zero
	s.live = false
	a.free = append(a.free, k.index())
	a.count--
	return val, true
}

func (a *Arena[T]) Len() int {
	return a.count
}

// Keys returns the live keys in slot order
func (a *Arena[T]) Keys() []Key {
	keys := make([]Key, 0, a.count)
	for idx, s := range a.slots {
		if s.live {
			keys = append(keys, makeKey(uint32(idx), s.gen))
		}
	}
	return keys
}
