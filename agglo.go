package agglo

import (
	"fmt"
	"io"
	"math"
	"runtime"
	"slices"

	"github.com/sirupsen/logrus"
)

// Config controls clustering behavior.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// Standardize z-scores every attribute column across all entities before
	// clustering begins. The caller's entities are never modified.
	// Default: false.
	Standardize bool

	// Strategy selects how the nearest cluster pair is found.
	// "auto" picks "matrix" up to MaxMatrixEntities entities, else "brute".
	// Default: "auto".
	Strategy Strategy

	// MaxMatrixEntities is the largest entity count for which "auto" uses the
	// cached distance matrix. 0 means DefaultMaxMatrixEntities; set Strategy
	// to "brute" to never build the matrix. Must be >= 0.
	MaxMatrixEntities int

	// Workers controls the number of goroutines used to fill the distance
	// matrix. Only affects the "matrix" strategy. 0 means runtime.NumCPU().
	// Must be >= 0. Default: 0 (auto).
	Workers int

	// Logger receives debug-level construction and merge events.
	// Default: a logger that discards everything.
	Logger logrus.FieldLogger
}

// Result contains the output of a clustering run.
type Result struct {
	// Clusters is the final partition, in slot order.
	Clusters []*Cluster

	// Labels assigns each input entity (by input index) its slot in Clusters.
	Labels []int

	// Distance is the squared single-linkage distance of the final merge,
	// or NoDistance when no merge was requested.
	Distance float64

	// Distances holds the merge distance of every step, in order.
	Distances []float64
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Strategy:          StrategyAuto,
		MaxMatrixEntities: DefaultMaxMatrixEntities,
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive error if not.
func validateConfig(cfg *Config) error {
	if _, err := ParseStrategy(string(cfg.Strategy)); err != nil {
		return err
	}
	if cfg.MaxMatrixEntities < 0 {
		return fmt.Errorf("%w: MaxMatrixEntities must be >= 0, got %d", ErrInvalidConfig, cfg.MaxMatrixEntities)
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("%w: Workers must be >= 0, got %d", ErrInvalidConfig, cfg.Workers)
	}
	return nil
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Strategy == "" {
		cfg.Strategy = StrategyAuto
	}
	if cfg.MaxMatrixEntities == 0 {
		cfg.MaxMatrixEntities = DefaultMaxMatrixEntities
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		cfg.Logger = l
	}
}

// Engine owns one clustering run: the current partition and the state needed
// to find and merge the nearest pair of clusters. An Engine is not safe for
// concurrent use; independent runs need independent engines.
type Engine struct {
	log      logrus.FieldLogger
	strategy Strategy
	search   pairSearcher

	clusters []*Cluster
	// reps[s] is the input index of the entity that seeded clusters[s].
	reps      []int
	members   *UnionFind
	distances []float64
}

// New validates entities, copies them, optionally standardizes the copies and
// builds the initial partition of one singleton cluster per entity, in input
// order. The caller's slice is never modified.
func New(entities []Entity, cfg Config) (*Engine, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	owned, err := prepareEntities(entities, cfg.Standardize)
	if err != nil {
		return nil, err
	}

	n := len(owned)
	e := &Engine{
		log:       cfg.Logger,
		strategy:  selectStrategy(cfg, n),
		clusters:  make([]*Cluster, n),
		reps:      make([]int, n),
		members:   NewUnionFind(n),
		distances: make([]float64, 0, n-1),
	}
	for i := range owned {
		e.clusters[i] = &Cluster{entities: owned[i : i+1 : i+1]}
		e.reps[i] = i
	}

	switch e.strategy {
	case StrategyMatrix:
		e.search = newMatrixSearch(owned, cfg.Workers)
	default:
		e.search = bruteSearch{}
	}

	e.log.WithFields(logrus.Fields{
		"entities":    n,
		"attributes":  len(owned[0].Attrs),
		"standardize": cfg.Standardize,
		"strategy":    e.strategy,
	}).Debug("clustering engine initialized")

	return e, nil
}

// prepareEntities rejects empty, ragged or non-finite input and returns a deep
// copy, standardized when requested.
func prepareEntities(entities []Entity, standardize bool) ([]Entity, error) {
	if len(entities) == 0 {
		return nil, ErrEmptyInput
	}
	dims, err := attributeLength(entities)
	if err != nil {
		return nil, err
	}
	if dims == 0 {
		return nil, ErrNoAttributes
	}

	if err := checkFinite(entities); err != nil {
		return nil, err
	}
	owned := make([]Entity, len(entities))
	for i, e := range entities {
		owned[i] = e.Clone()
	}

	if standardize {
		if err := Standardize(owned); err != nil {
			return nil, err
		}
		if err := checkFinite(owned); err != nil {
			return nil, err
		}
	}
	return owned, nil
}

// checkFinite returns ErrNonFiniteAttribute for the first NaN or infinite
// attribute value.
func checkFinite(entities []Entity) error {
	for i, e := range entities {
		for k, v := range e.Attrs {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: entity %d (%q) attribute %d is %v",
					ErrNonFiniteAttribute, i, e.Name, k, v)
			}
		}
	}
	return nil
}

// Strategy reports the concrete nearest-pair strategy in use.
func (e *Engine) Strategy() Strategy { return e.strategy }

// Len returns the current number of clusters.
func (e *Engine) Len() int { return len(e.clusters) }

// ClusterN performs exactly n merge steps and returns the distance of the
// last one. n must satisfy 0 <= n < Len(); otherwise ErrInvalidIterationCount
// is returned and the partition is left untouched. ClusterN(0) returns
// NoDistance.
func (e *Engine) ClusterN(n int) (float64, error) {
	if n < 0 || n >= len(e.clusters) {
		return NoDistance, fmt.Errorf("%w: %d merges requested, must be in [0, %d]",
			ErrInvalidIterationCount, n, len(e.clusters)-1)
	}

	d := NoDistance
	for i := 0; i < n; i++ {
		d = e.step()
	}
	return d, nil
}

// Step performs a single merge and returns its distance. It fails with
// ErrInvalidIterationCount when only one cluster is left.
func (e *Engine) Step() (float64, error) {
	if len(e.clusters) < 2 {
		return NoDistance, fmt.Errorf("%w: partition has %d cluster(s), nothing to merge",
			ErrInvalidIterationCount, len(e.clusters))
	}
	return e.step(), nil
}

func (e *Engine) step() float64 {
	i, j, d := e.search.nearest(e.clusters, e.reps)
	left, right := e.clusters[i], e.clusters[j]

	e.log.WithFields(logrus.Fields{
		"step":       len(e.distances) + 1,
		"left":       i,
		"right":      j,
		"left_size":  left.Len(),
		"right_size": right.Len(),
		"distance":   d,
	}).Debug("merging nearest clusters")

	e.search.merged(e.reps, i, j)
	e.members.Union(e.reps[i], e.reps[j])

	// The merged cluster takes the lower slot and the higher slot is
	// removed, so later ties still resolve in ascending slot order.
	e.clusters[i] = Merge(left, right)
	e.clusters = slices.Delete(e.clusters, j, j+1)
	e.reps = slices.Delete(e.reps, j, j+1)
	e.distances = append(e.distances, d)
	return d
}

// Clusters returns a deep copy of the current partition in slot order.
func (e *Engine) Clusters() []*Cluster {
	out := make([]*Cluster, len(e.clusters))
	for i, c := range e.clusters {
		out[i] = NewCluster(c.entities...)
	}
	return out
}

// Labels returns, for each input entity, the slot of the cluster that
// currently contains it.
func (e *Engine) Labels() []int {
	slotOf := make(map[int]int, len(e.reps))
	for s, r := range e.reps {
		slotOf[e.members.Find(r)] = s
	}
	labels := make([]int, len(e.members.parent))
	for x := range labels {
		labels[x] = slotOf[e.members.Find(x)]
	}
	return labels
}

// Distances returns the merge distance of every step performed so far.
func (e *Engine) Distances() []float64 {
	return slices.Clone(e.distances)
}

// Run clusters entities with iterations merge steps and returns the final
// partition. iterations must satisfy 0 <= iterations < len(entities); it is
// checked before any work is done.
func Run(entities []Entity, iterations int, cfg Config) (*Result, error) {
	if len(entities) > 0 && (iterations < 0 || iterations >= len(entities)) {
		return nil, fmt.Errorf("%w: %d merges requested, must be in [0, %d]",
			ErrInvalidIterationCount, iterations, len(entities)-1)
	}

	e, err := New(entities, cfg)
	if err != nil {
		return nil, err
	}
	d, err := e.ClusterN(iterations)
	if err != nil {
		return nil, err
	}

	return &Result{
		Clusters:  e.Clusters(),
		Labels:    e.Labels(),
		Distance:  d,
		Distances: e.Distances(),
	}, nil
}
