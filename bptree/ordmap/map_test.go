package ordmap

import (
	"testing"

	"github.com/mjm918/bptree/bptree"
)

func strCmp(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func newTestMap(t *testing.T) *Map[string, int] {
	t.Helper()
	m, err := New[string, int](strCmp, bptree.Order(4))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

func TestInsertReplacesExisting(t *testing.T) {
	m := newTestMap(t)
	m.Insert("a", 1)
	m.Insert("a", 2)
	if m.Len() != 1 {
		t.Fatalf("expected len=1, got %d", m.Len())
	}
	v, ok := m.Get("a")
	if !ok || v != 2 {
		t.Fatalf("expected replaced value 2, got %d (ok=%v)", v, ok)
	}
}

func TestTryInsertRejectsDuplicates(t *testing.T) {
	m := newTestMap(t)
	if !m.TryInsert("a", 1) {
		t.Fatal("expected first TryInsert to succeed")
	}
	if m.TryInsert("a", 2) {
		t.Fatal("expected second TryInsert to fail")
	}
	v, _ := m.Get("a")
	if v != 1 {
		t.Fatalf("expected original value 1 to survive, got %d", v)
	}
}

func TestMustInsertWrapsErrDuplicateKey(t *testing.T) {
	m := newTestMap(t)
	if err := m.MustInsert("a", 1); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	err := m.MustInsert("a", 2)
	if err == nil {
		t.Fatal("expected error for duplicate key")
	}
}

func TestRemoveAndContains(t *testing.T) {
	m := newTestMap(t)
	m.Insert("a", 1)
	m.Insert("b", 2)
	if !m.Remove("a") {
		t.Fatal("expected Remove to succeed")
	}
	if m.Contains("a") {
		t.Error("expected key 'a' to be gone")
	}
	if !m.Contains("b") {
		t.Error("expected key 'b' to remain")
	}
}

func TestKeysAndValuesOrdered(t *testing.T) {
	m := newTestMap(t)
	for _, k := range []string{"delta", "alpha", "charlie", "bravo"} {
		m.Insert(k, len(k))
	}
	keys := m.Keys()
	want := []string{"alpha", "bravo", "charlie", "delta"}
	if len(keys) != len(want) {
		t.Fatalf("expected %d keys, got %d", len(want), len(keys))
	}
	for i, k := range want {
		if keys[i] != k {
			t.Errorf("keys[%d] = %q, want %q", i, keys[i], k)
		}
	}
	values := m.Values()
	if len(values) != len(want) {
		t.Fatalf("expected %d values, got %d", len(want), len(values))
	}
}

func TestCopyTo(t *testing.T) {
	src := newTestMap(t)
	src.Insert("a", 1)
	src.Insert("b", 2)

	dst := newTestMap(t)
	dst.Insert("b", -1)
	src.CopyTo(dst)

	if dst.Len() != 2 {
		t.Fatalf("expected len=2, got %d", dst.Len())
	}
	if v, _ := dst.Get("b"); v != 2 {
		t.Errorf("expected CopyTo to overwrite 'b', got %d", v)
	}
}

func TestClear(t *testing.T) {
	m := newTestMap(t)
	m.Insert("a", 1)
	m.Clear()
	if m.Len() != 0 {
		t.Fatalf("expected empty map after Clear, got len=%d", m.Len())
	}
}
