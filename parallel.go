package agglo

import (
	"sync"

	"gonum.org/v1/gonum/mat"
)

// ComputePairwiseDistancesParallel computes the same matrix as
// ComputePairwiseDistances using multiple goroutines. numWorkers controls the
// degree of parallelism; if <= 1, it falls back to the sequential version.
//
// The result is bitwise identical to ComputePairwiseDistances.
func ComputePairwiseDistancesParallel(entities []Entity, numWorkers int) *mat.SymDense {
	n := len(entities)
	if numWorkers <= 1 || n <= 1 {
		return ComputePairwiseDistances(entities)
	}

	data := make([]float64, n*n)

	// Each worker owns a contiguous range of source rows and writes
	// dist(i,j) and dist(j,i) for j > i. Cells never overlap between
	// workers, so writes need no synchronization.
	var wg sync.WaitGroup
	rowsPerWorker := (n + numWorkers - 1) / numWorkers

	for w := 0; w < numWorkers; w++ {
		startRow := w * rowsPerWorker
		endRow := min(startRow+rowsPerWorker, n)
		if startRow >= n {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				for j := i + 1; j < n; j++ {
					d := SquaredEuclidean(entities[i].Attrs, entities[j].Attrs)
					data[i*n+j] = d
					data[j*n+i] = d
				}
			}
		}(startRow, endRow)
	}

	wg.Wait()
	return mat.NewSymDense(n, data)
}
