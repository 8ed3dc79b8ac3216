// Package report renders a clustering result for people.
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/TrevorS/agglo"
)

// indent is a literal tab, escaped so tabwriter does not treat it as a cell
// boundary.
const indent = "\xff\t\xff"

// Options controls the rendering.
type Options struct {
	// ShowAttributes prints each entity's attribute values next to its name.
	ShowAttributes bool

	// Precision is the number of decimals for attribute values. Negative
	// means the shortest exact representation.
	Precision int
}

// WritePartition writes every cluster as a bracketed, tab-indented list of
// member names:
//
//	Cluster 1: [
//		Austria,
//	]
func WritePartition(w io.Writer, clusters []*agglo.Cluster, opts Options) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', tabwriter.StripEscape)
	for i, c := range clusters {
		fmt.Fprintf(tw, "Cluster %d: [\n", i+1)
		for _, e := range c.Entities() {
			if opts.ShowAttributes {
				fmt.Fprintf(tw, indent+"%s,\t%s\n", e.Name, formatAttrs(e.Attrs, opts.Precision))
				continue
			}
			fmt.Fprintf(tw, indent+"%s,\n", e.Name)
		}
		fmt.Fprintln(tw, "]")
	}
	return tw.Flush()
}

// FormatDistance renders a merge distance; NoDistance becomes "none".
func FormatDistance(d float64) string {
	if math.IsNaN(d) {
		return "none"
	}
	return strconv.FormatFloat(d, 'g', -1, 64)
}

func formatAttrs(attrs []float64, precision int) string {
	parts := make([]string, len(attrs))
	for i, v := range attrs {
		if precision < 0 {
			parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
		} else {
			parts[i] = strconv.FormatFloat(v, 'f', precision, 64)
		}
	}
	return "[" + strings.Join(parts, " ") + "]"
}
