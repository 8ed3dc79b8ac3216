package agglo

import (
	"math"
	"slices"
)

// MergeDistances returns the merge distance of every step of a full run
// (len(entities)-1 values, ascending) without tracking the partition.
//
// Single-linkage merge distances are exactly the edge weights of a minimum
// spanning tree over the squared-distance graph, so this runs matrix-free
// Prim's algorithm in O(n²·D) time and O(n) memory. The k-th value equals the
// distance ClusterN(k+1) reports on a fresh engine.
func MergeDistances(entities []Entity, standardize bool) ([]float64, error) {
	owned, err := prepareEntities(entities, standardize)
	if err != nil {
		return nil, err
	}
	n := len(owned)
	if n == 1 {
		return []float64{}, nil
	}

	inTree := make([]bool, n)
	currentDistances := make([]float64, n)
	for i := range currentDistances {
		currentDistances[i] = math.Inf(1)
	}

	weights := make([]float64, 0, n-1)
	current := 0
	inTree[0] = true

	for i := 0; i < n-1; i++ {
		minDist := math.Inf(1)
		minNode := -1
		for k := 0; k < n; k++ {
			if inTree[k] {
				continue
			}
			d := SquaredEuclidean(owned[current].Attrs, owned[k].Attrs)
			if d < currentDistances[k] {
				currentDistances[k] = d
			}
			if minNode == -1 || currentDistances[k] < minDist {
				minDist = currentDistances[k]
				minNode = k
			}
		}

		weights = append(weights, minDist)
		inTree[minNode] = true
		current = minNode
	}

	slices.Sort(weights)
	return weights, nil
}
