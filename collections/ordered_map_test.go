package collections_test

import (
	"testing"

	"github.com/hasbyte1/go-underbar/collections"
)

func TestOrderedMapInsertionOrder(t *testing.T) {
	m := collections.NewOrderedMap[string, int]()
	m.Set("zeta", 1)
	m.Set("alpha", 2)
	m.Set("mid", 3)

	assertSlice(t, m.Keys(), []string{"zeta", "alpha", "mid"})
	assertSlice(t, m.Values(), []int{1, 2, 3})
}

func TestOrderedMapResetKeepsPosition(t *testing.T) {
	m := collections.MapOf(collections.P("a", 1), collections.P("b", 2), collections.P("a", 3))

	if m.Count() != 2 {
		t.Fatalf("Count = %d; want 2", m.Count())
	}
	assertSlice(t, m.Keys(), []string{"a", "b"})
	if v, _ := m.Get("a"); v != 3 {
		t.Fatalf("Get(a) = %d; want 3", v)
	}
}

func TestOrderedMapGetHas(t *testing.T) {
	m := collections.MapOf(collections.P("zero", 0))

	v, ok := m.Get("zero")
	if !ok || v != 0 {
		t.Fatalf("Get(zero) = %v, %v; want 0, true", v, ok)
	}
	if !m.Has("zero") {
		t.Fatal("Has(zero) should be true for a zero value")
	}
	if _, ok := m.Get("missing"); ok || m.Has("missing") {
		t.Fatal("missing key reported present")
	}
}

func TestOrderedMapDelete(t *testing.T) {
	m := collections.MapOf(collections.P(1, "a"), collections.P(2, "b"), collections.P(3, "c"))

	if !m.Delete(2) {
		t.Fatal("Delete(2) should report true")
	}
	if m.Delete(2) {
		t.Fatal("second Delete(2) should report false")
	}
	assertSlice(t, m.Keys(), []int{1, 3})

	// Positions are re-indexed: updating a later key must hit the right slot.
	m.Set(3, "C")
	m.Set(4, "d")
	assertSlice(t, m.Values(), []string{"a", "C", "d"})
}

func TestOrderedMapZeroValue(t *testing.T) {
	var m collections.OrderedMap[string, int]
	m.Set("x", 1)
	if v, ok := m.Get("x"); !ok || v != 1 {
		t.Fatalf("zero-value map Get = %v, %v", v, ok)
	}
}

func TestFromMapSortsKeys(t *testing.T) {
	m := collections.FromMap(map[string]int{"c": 3, "a": 1, "b": 2})
	assertSlice(t, m.Keys(), []string{"a", "b", "c"})
}

func TestOrderedMapAll(t *testing.T) {
	m := collections.MapOf(collections.P("x", 10), collections.P("y", 20))
	var got []collections.Pair[string, int]
	for k, v := range m.All() {
		got = append(got, collections.P(k, v))
	}
	assertSlice(t, got, []collections.Pair[string, int]{{"x", 10}, {"y", 20}})
}

func TestPairString(t *testing.T) {
	if s := collections.P("a", 1).String(); s != "(a, 1)" {
		t.Fatalf("String = %q", s)
	}
}
