package agglo

import (
	"errors"
	"math"
)

var (
	// ErrEmptyInput is returned when no entities are supplied.
	ErrEmptyInput = errors.New("agglo: no entities")

	// ErrNoAttributes is returned when entities carry zero attributes.
	ErrNoAttributes = errors.New("agglo: entities have no attributes")

	// ErrInconsistentAttributeLength is returned when entities in one run
	// have attribute vectors of different lengths.
	ErrInconsistentAttributeLength = errors.New("agglo: inconsistent attribute length")

	// ErrNonFiniteAttribute is returned for NaN or infinite attribute values.
	ErrNonFiniteAttribute = errors.New("agglo: non-finite attribute value")

	// ErrInvalidIterationCount is returned when the requested number of merges
	// is negative or would shrink the partition below one cluster.
	ErrInvalidIterationCount = errors.New("agglo: invalid iteration count")

	// ErrInvalidConfig is returned when a Config field is out of range.
	ErrInvalidConfig = errors.New("agglo: invalid config")
)

// NoDistance is returned by ClusterN(0): no merge happened, so there is no
// merge distance to report. Test for it with math.IsNaN.
var NoDistance = math.NaN()
