package agglo

import "math"

// Entity is a named record with a numeric attribute vector. All entities in
// one clustering run must share the same attribute length.
type Entity struct {
	Name  string
	Attrs []float64
}

// Clone returns a deep copy of e.
func (e Entity) Clone() Entity {
	attrs := make([]float64, len(e.Attrs))
	copy(attrs, e.Attrs)
	return Entity{Name: e.Name, Attrs: attrs}
}

// Cluster is a multiset of entities treated as one unit for distance and
// merge purposes. Entities are never deduplicated.
type Cluster struct {
	entities []Entity
}

// NewCluster returns a cluster holding copies of the given entities.
func NewCluster(entities ...Entity) *Cluster {
	c := &Cluster{entities: make([]Entity, len(entities))}
	for i, e := range entities {
		c.entities[i] = e.Clone()
	}
	return c
}

// Len returns the number of entities in the cluster.
func (c *Cluster) Len() int { return len(c.entities) }

// Entities returns a deep copy of the cluster members in merge order.
func (c *Cluster) Entities() []Entity {
	out := make([]Entity, len(c.entities))
	for i, e := range c.entities {
		out[i] = e.Clone()
	}
	return out
}

// Names returns the member names in merge order.
func (c *Cluster) Names() []string {
	names := make([]string, len(c.entities))
	for i, e := range c.entities {
		names[i] = e.Name
	}
	return names
}

// NearestPoints returns copies of the pair of entities, one from a and one
// from b, with the smallest squared Euclidean distance, together with that
// distance. Ties keep the first pair in scan order (a's members outer, b's
// inner). If either cluster is empty the distance is +Inf and the entities
// are zero. Panics if a and b are the same cluster.
func NearestPoints(a, b *Cluster) (left, right Entity, dist float64) {
	li, ri, dist := nearest(a, b)
	if li < 0 {
		return Entity{}, Entity{}, dist
	}
	return a.entities[li].Clone(), b.entities[ri].Clone(), dist
}

// nearest returns the member indices of the closest cross-cluster pair, or
// -1 when either cluster is empty.
func nearest(a, b *Cluster) (li, ri int, dist float64) {
	if a == b {
		panic("agglo: cluster compared against itself")
	}
	li, ri, dist = -1, -1, math.Inf(1)
	for i, x := range a.entities {
		for j, y := range b.entities {
			d := SquaredEuclidean(x.Attrs, y.Attrs)
			if li < 0 || d < dist {
				li, ri, dist = i, j, d
			}
		}
	}
	return li, ri, dist
}

// DistanceTo returns the single-linkage distance between c and other: the
// minimum squared Euclidean distance over all cross-cluster entity pairs.
func (c *Cluster) DistanceTo(other *Cluster) float64 {
	_, _, d := nearest(c, other)
	return d
}

// Merge moves the entities of a and then b into a new cluster. Both inputs
// are left empty and should be discarded. Panics if a and b are the same
// cluster.
func Merge(a, b *Cluster) *Cluster {
	if a == b {
		panic("agglo: cluster merged with itself")
	}
	entities := make([]Entity, 0, len(a.entities)+len(b.entities))
	entities = append(entities, a.entities...)
	entities = append(entities, b.entities...)
	a.entities, b.entities = nil, nil
	return &Cluster{entities: entities}
}
