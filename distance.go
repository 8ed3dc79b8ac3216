package agglo

import "gonum.org/v1/gonum/mat"

// SquaredEuclidean returns sum((a[k]-b[k])^2). It is the only metric the
// engine uses; a and b must have the same length.
func SquaredEuclidean(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// ComputePairwiseDistances computes squared Euclidean distances between all
// entities and returns them as an n×n symmetric matrix.
// Returns nil when entities is empty.
func ComputePairwiseDistances(entities []Entity) *mat.SymDense {
	n := len(entities)
	if n == 0 {
		return nil
	}
	data := make([]float64, n*n)

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := SquaredEuclidean(entities[i].Attrs, entities[j].Attrs)
			data[i*n+j] = d
			data[j*n+i] = d
		}
	}

	return mat.NewSymDense(n, data)
}
