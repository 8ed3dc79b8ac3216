package agglo

import (
	"math"
	"slices"
	"testing"
)

func TestNewCluster_CopiesEntities(t *testing.T) {
	e := Entity{Name: "a", Attrs: []float64{1, 2}}
	c := NewCluster(e)
	e.Attrs[0] = 99

	got := c.Entities()
	if got[0].Attrs[0] != 1 {
		t.Errorf("cluster shares attribute storage with caller: got %v", got[0].Attrs)
	}

	got[0].Attrs[1] = 42
	if c.Entities()[0].Attrs[1] != 2 {
		t.Error("Entities() returned a slice aliasing cluster storage")
	}
}

func TestNearestPoints_HandComputed(t *testing.T) {
	a := NewCluster(
		Entity{Name: "a1", Attrs: []float64{0, 0}},
		Entity{Name: "a2", Attrs: []float64{4, 0}},
	)
	b := NewCluster(
		Entity{Name: "b1", Attrs: []float64{10, 0}},
		Entity{Name: "b2", Attrs: []float64{5, 1}},
	)

	left, right, d := NearestPoints(a, b)
	// a2-b2: 1 + 1 = 2 is the smallest cross pair.
	if left.Name != "a2" || right.Name != "b2" {
		t.Errorf("expected nearest pair (a2, b2), got (%s, %s)", left.Name, right.Name)
	}
	if d != 2 {
		t.Errorf("expected distance 2, got %v", d)
	}
	if a.DistanceTo(b) != 2 || b.DistanceTo(a) != 2 {
		t.Errorf("DistanceTo not symmetric: %v vs %v", a.DistanceTo(b), b.DistanceTo(a))
	}
}

func TestNearestPoints_TieKeepsFirstPair(t *testing.T) {
	a := NewCluster(
		Entity{Name: "a1", Attrs: []float64{0}},
		Entity{Name: "a2", Attrs: []float64{2}},
	)
	b := NewCluster(Entity{Name: "b1", Attrs: []float64{1}})

	left, right, d := NearestPoints(a, b)
	if left.Name != "a1" || right.Name != "b1" {
		t.Errorf("expected first tied pair (a1, b1), got (%s, %s)", left.Name, right.Name)
	}
	if d != 1 {
		t.Errorf("expected distance 1, got %v", d)
	}
}

func TestNearestPoints_EmptyCluster(t *testing.T) {
	a := NewCluster(Entity{Name: "a", Attrs: []float64{0}})
	empty := NewCluster()

	if d := a.DistanceTo(empty); !math.IsInf(d, 1) {
		t.Errorf("expected +Inf distance to an empty cluster, got %v", d)
	}
}

func TestNearestPoints_SelfPanics(t *testing.T) {
	c := NewCluster(Entity{Name: "a", Attrs: []float64{0}})
	defer func() {
		if recover() == nil {
			t.Error("expected panic when comparing a cluster with itself")
		}
	}()
	c.DistanceTo(c)
}

func TestMerge_UnionAndConsume(t *testing.T) {
	a := NewCluster(
		Entity{Name: "x", Attrs: []float64{1}},
		Entity{Name: "y", Attrs: []float64{2}},
	)
	b := NewCluster(
		Entity{Name: "x", Attrs: []float64{1}}, // duplicate names are kept
		Entity{Name: "z", Attrs: []float64{3}},
	)

	m := Merge(a, b)
	if got := m.Names(); !slices.Equal(got, []string{"x", "y", "x", "z"}) {
		t.Errorf("merged names = %v, expected [x y x z]", got)
	}
	for i, e := range m.Entities() {
		if want := []float64{1, 2, 1, 3}[i]; e.Attrs[0] != want {
			t.Errorf("entity %d attrs changed: got %v, want %v", i, e.Attrs[0], want)
		}
	}
	if a.Len() != 0 || b.Len() != 0 {
		t.Errorf("inputs should be consumed, got sizes %d and %d", a.Len(), b.Len())
	}
}

func TestMerge_SelfPanics(t *testing.T) {
	c := NewCluster(Entity{Name: "a", Attrs: []float64{0}})
	defer func() {
		if recover() == nil {
			t.Error("expected panic when merging a cluster with itself")
		}
	}()
	Merge(c, c)
}
