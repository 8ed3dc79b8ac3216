package agglo

import "gonum.org/v1/gonum/mat"

// pairSearcher finds the globally nearest pair of clusters in a partition and
// keeps any cached state consistent across merges.
type pairSearcher interface {
	// nearest returns the slot pair i < j with the smallest single-linkage
	// distance. The first minimal pair in ascending (i, j) order wins.
	nearest(clusters []*Cluster, reps []int) (i, j int, dist float64)

	// merged is called after slots i < j were chosen and before slot j is
	// removed from the partition. The merged cluster keeps reps[i].
	merged(reps []int, i, j int)
}

// scanPairs visits every slot pair i < j of an m-slot partition in ascending
// order and returns the first pair with the minimum distance. m must be >= 2.
func scanPairs(m int, dist func(i, j int) float64) (bi, bj int, best float64) {
	found := false
	for i := 0; i < m; i++ {
		for j := i + 1; j < m; j++ {
			d := dist(i, j)
			if !found || d < best {
				found = true
				bi, bj, best = i, j, d
			}
		}
	}
	return bi, bj, best
}

// bruteSearch recomputes every cluster-pair distance from the members on each
// step: O(M² · s² · D) per step for M clusters of average size s.
type bruteSearch struct{}

func (bruteSearch) nearest(clusters []*Cluster, _ []int) (int, int, float64) {
	return scanPairs(len(clusters), func(i, j int) float64 {
		return clusters[i].DistanceTo(clusters[j])
	})
}

func (bruteSearch) merged([]int, int, int) {}

// matrixSearch caches single-linkage distances between clusters, indexed by
// each cluster's representative entity. After a merge the representative row
// of the surviving slot holds min(d(i,k), d(j,k)) for every other cluster k,
// which is exactly the nearest-point distance of the union. A step costs
// O(M²) lookups instead of member rescans.
type matrixSearch struct {
	dist *mat.SymDense
}

func newMatrixSearch(entities []Entity, workers int) *matrixSearch {
	return &matrixSearch{dist: ComputePairwiseDistancesParallel(entities, workers)}
}

func (s *matrixSearch) nearest(_ []*Cluster, reps []int) (int, int, float64) {
	return scanPairs(len(reps), func(i, j int) float64 {
		return s.dist.At(reps[i], reps[j])
	})
}

func (s *matrixSearch) merged(reps []int, i, j int) {
	ri, rj := reps[i], reps[j]
	for k, rk := range reps {
		if k == i || k == j {
			continue
		}
		s.dist.SetSym(ri, rk, min(s.dist.At(ri, rk), s.dist.At(rj, rk)))
	}
}
