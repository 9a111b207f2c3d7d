package state

import (
	"reflect"
	"testing"
)

func TestSortPairsInt(t *testing.T) {
	pairs := []Pair[int, int]{
		{V1: 3, V2: 10},
		{V1: 1, V2: 20},
		{V1: 1, V2: 5},
		{V1: 2, V2: 15},
	}
	expected := []Pair[int, int]{
		{V1: 1, V2: 5},
		{V1: 1, V2: 20},
		{V1: 2, V2: 15},
		{V1: 3, V2: 10},
	}
	SortPairs(pairs)
	if !reflect.DeepEqual(pairs, expected) {
		t.Fatalf("expected %v, got %v", expected, pairs)
	}
}

func TestMakeSortedPair(t *testing.T) {
	a := MakeSortedPair(DeviceId(7), DeviceId(3))
	b := MakeSortedPair(DeviceId(3), DeviceId(7))
	if a != b {
		t.Fatalf("expected %v == %v", a, b)
	}
	if a.V1 != 3 || a.V2 != 7 {
		t.Fatalf("expected (3, 7), got %v", a)
	}
}
