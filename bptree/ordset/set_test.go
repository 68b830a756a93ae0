package ordset

import (
	"testing"

	"github.com/mjm918/bptree/bptree"
)

func intCmp(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func setOf(t *testing.T, ks ...int) *Set[int] {
	t.Helper()
	s, err := New[int](intCmp, bptree.Order(4))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, k := range ks {
		s.Add(k)
	}
	return s
}

func TestAddContainsRemove(t *testing.T) {
	s := setOf(t, 1, 2, 3)
	if s.Len() != 3 {
		t.Fatalf("expected len=3, got %d", s.Len())
	}
	if s.Add(2) {
		t.Error("expected re-adding 2 to report false")
	}
	if !s.Remove(2) {
		t.Error("expected Remove(2) to succeed")
	}
	if s.Contains(2) {
		t.Error("expected 2 to be gone")
	}
}

func TestUnionWith(t *testing.T) {
	a := setOf(t, 1, 2, 3)
	b := setOf(t, 3, 4, 5)
	a.UnionWith(b)
	want := []int{1, 2, 3, 4, 5}
	got := a.Elements()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i, k := range want {
		if got[i] != k {
			t.Errorf("element %d: got %d, want %d", i, got[i], k)
		}
	}
}

func TestIntersectWith(t *testing.T) {
	a := setOf(t, 1, 2, 3, 4)
	b := setOf(t, 2, 4, 6)
	a.IntersectWith(b)
	want := []int{2, 4}
	got := a.Elements()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i, k := range want {
		if got[i] != k {
			t.Errorf("element %d: got %d, want %d", i, got[i], k)
		}
	}
}

func TestExceptWith(t *testing.T) {
	a := setOf(t, 1, 2, 3, 4)
	b := setOf(t, 2, 4)
	a.ExceptWith(b)
	want := []int{1, 3}
	got := a.Elements()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i, k := range want {
		if got[i] != k {
			t.Errorf("element %d: got %d, want %d", i, got[i], k)
		}
	}
}

func TestSymmetricExceptWith(t *testing.T) {
	a := setOf(t, 1, 2, 3)
	b := setOf(t, 2, 3, 4)
	a.SymmetricExceptWith(b)
	want := []int{1, 4}
	got := a.Elements()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i, k := range want {
		if got[i] != k {
			t.Errorf("element %d: got %d, want %d", i, got[i], k)
		}
	}
}

func TestSubsetSupersetPredicates(t *testing.T) {
	small := setOf(t, 2, 3)
	big := setOf(t, 1, 2, 3, 4)

	if !small.IsSubsetOf(big) {
		t.Error("expected {2,3} to be a subset of {1,2,3,4}")
	}
	if !small.IsProperSubsetOf(big) {
		t.Error("expected {2,3} to be a proper subset of {1,2,3,4}")
	}
	if !big.IsSupersetOf(small) {
		t.Error("expected {1,2,3,4} to be a superset of {2,3}")
	}
	if !big.IsProperSupersetOf(small) {
		t.Error("expected {1,2,3,4} to be a proper superset of {2,3}")
	}
	if big.IsSubsetOf(small) {
		t.Error("did not expect {1,2,3,4} to be a subset of {2,3}")
	}
}

func TestOverlapsAndSetEquals(t *testing.T) {
	a := setOf(t, 1, 2, 3)
	b := setOf(t, 3, 4, 5)
	c := setOf(t, 7, 8)

	if !a.Overlaps(b) {
		t.Error("expected {1,2,3} and {3,4,5} to overlap")
	}
	if a.Overlaps(c) {
		t.Error("did not expect {1,2,3} and {7,8} to overlap")
	}

	same := setOf(t, 3, 2, 1)
	if !a.SetEquals(same) {
		t.Error("expected {1,2,3} to equal {3,2,1}")
	}
	if a.SetEquals(b) {
		t.Error("did not expect {1,2,3} to equal {3,4,5}")
	}
}

func TestSetEqualsDifferentSizes(t *testing.T) {
	a := setOf(t, 1, 2, 3)
	b := setOf(t, 1, 2)
	if a.SetEquals(b) {
		t.Error("sets of different sizes must not be equal")
	}
}
