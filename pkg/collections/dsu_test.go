package collections

import "testing"

func TestDisjointSet_UnionAndFind(t *testing.T) {
	d := NewDisjointSet(10)

	if !d.Union(0, 1) {
		t.Error("expected first union of 0,1 to merge")
	}
	if d.Union(0, 1) {
		t.Error("expected second union of 0,1 to be a no-op")
	}
	if !d.Connected(0, 1) {
		t.Error("expected 0 and 1 to be connected")
	}
	if d.Connected(0, 2) {
		t.Error("expected 0 and 2 to be disjoint")
	}

	d.Union(2, 3)
	d.Union(1, 2)
	if !d.Connected(0, 3) {
		t.Error("expected transitive union to connect 0 and 3")
	}
}

func TestDisjointSet_CountTracksMerges(t *testing.T) {
	d := NewDisjointSet(5)
	if d.Count() != 5 {
		t.Errorf("expected 5 singleton sets, got %d", d.Count())
	}
	d.Union(0, 1)
	d.Union(2, 3)
	if d.Count() != 3 {
		t.Errorf("expected 3 sets after two merges, got %d", d.Count())
	}
	d.Union(0, 1) // no-op
	if d.Count() != 3 {
		t.Errorf("expected count unchanged after redundant union, got %d", d.Count())
	}
}

func TestDisjointSet_Groups(t *testing.T) {
	d := NewDisjointSet(6)
	d.Union(0, 1)
	d.Union(1, 2)
	d.Union(4, 5)

	groups := d.Groups()
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}

	sizes := make(map[int]int)
	for _, members := range groups {
		sizes[len(members)]++
	}
	if sizes[3] != 1 || sizes[2] != 1 || sizes[1] != 1 {
		t.Errorf("expected group sizes {3,2,1}, got %v", sizes)
	}
}
