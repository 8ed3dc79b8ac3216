// Package agglo implements agglomerative (bottom-up) hierarchical clustering
// with single-linkage (nearest-point) distance over squared Euclidean space.
//
// Every entity starts in its own cluster. Each merge step finds the two
// clusters whose closest members are nearest to each other and combines them,
// so the partition shrinks by exactly one cluster per step. Attributes can be
// z-score standardized per column before clustering starts.
//
// Basic usage:
//
//	cfg := agglo.DefaultConfig()
//	cfg.Standardize = true
//	result, err := agglo.Run(entities, 5, cfg)
//	// result.Clusters is the final partition
//	// result.Distance is the squared distance of the last merge
//
// For step-by-step control:
//
//	e, err := agglo.New(entities, cfg)
//	d, err := e.ClusterN(3)
//	labels := e.Labels() // labels[i] is the cluster slot of entities[i]
//
// # Strategy selection
//
// By default (Strategy: "auto"), the engine precomputes all pairwise entity
// distances into a symmetric matrix and updates it on every merge, which
// turns each step into a single scan over the current cluster pairs. Above
// MaxMatrixEntities it falls back to rescanning cluster members every step.
// Both strategies produce identical partitions, distances and tie-breaks:
//
//	cfg.Strategy = agglo.StrategyBrute  // rescan members each step, O(n) memory
//	cfg.Strategy = agglo.StrategyMatrix // cached distance matrix, O(n²) memory
package agglo
