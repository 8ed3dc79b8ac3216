package agglo

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Standardize rescales every attribute column in place to zero mean and unit
// population standard deviation: v' = (v - mean) / stddev.
// A column whose values are all equal is set to 0 for every entity.
// It is a no-op when entities is empty or carries no attributes, and returns
// ErrInconsistentAttributeLength (without modifying anything) when attribute
// lengths differ.
func Standardize(entities []Entity) error {
	if len(entities) == 0 {
		return nil
	}
	dims, err := attributeLength(entities)
	if err != nil {
		return err
	}
	if dims == 0 {
		return nil
	}

	column := make([]float64, len(entities))
	for k := 0; k < dims; k++ {
		for i, e := range entities {
			column[i] = e.Attrs[k]
		}
		standardizeColumn(column)
		for i, e := range entities {
			e.Attrs[k] = column[i]
		}
	}
	return nil
}

// maxUnscaledMagnitude bounds the column values that are fed to the mean and
// variance sums directly. Larger columns are divided by their max-abs value
// first so the sums of values and squared deviations stay finite.
const maxUnscaledMagnitude = 1e100

// standardizeColumn z-scores x in place.
func standardizeColumn(x []float64) {
	lo, hi := floats.Min(x), floats.Max(x)
	// An exact check avoids rounding noise in the mean turning a constant
	// column into a tiny non-zero deviation.
	if lo == hi {
		for i := range x {
			x[i] = 0
		}
		return
	}
	// z-scores do not change when the column is scaled by a positive factor.
	if scale := max(math.Abs(lo), math.Abs(hi)); scale > maxUnscaledMagnitude {
		for i := range x {
			x[i] /= scale
		}
	}
	mean, std := stat.PopMeanStdDev(x, nil)
	if std == 0 {
		for i := range x {
			x[i] = 0
		}
		return
	}
	for i := range x {
		x[i] = (x[i] - mean) / std
	}
}

// attributeLength returns the shared attribute length of entities, or an
// error naming the first entity that disagrees with entities[0].
func attributeLength(entities []Entity) (int, error) {
	dims := len(entities[0].Attrs)
	for i, e := range entities {
		if len(e.Attrs) != dims {
			return 0, fmt.Errorf("%w: entity %d (%q) has %d attributes, want %d",
				ErrInconsistentAttributeLength, i, e.Name, len(e.Attrs), dims)
		}
	}
	return dims, nil
}
