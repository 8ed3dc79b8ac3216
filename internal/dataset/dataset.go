// Package dataset loads entities from tab-delimited text.
//
// Each non-blank line holds a name followed by its attribute values:
//
//	Austria	44.8	1.1	81.4
//
// Fields are trimmed of surrounding whitespace and trailing whitespace ends a
// line. Lines with no attributes are accepted here and rejected later by the
// clustering engine.
package dataset

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"

	"github.com/TrevorS/agglo"
)

// DefaultPath is the data file used when none is configured.
const DefaultPath = "data.txt"

// Options controls how records are turned into entities.
type Options struct {
	// KeepDuplicates keeps every record. When false, a repeated name replaces
	// the attributes of the earlier record while keeping its position.
	KeepDuplicates bool
}

// LoadFile opens path and parses it with Load.
func LoadFile(path string, opts Options) ([]agglo.Entity, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open dataset %q", path)
	}
	defer f.Close()

	entities, err := Load(f, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "load dataset %q", path)
	}
	return entities, nil
}

// maxLineBytes bounds a single record.
const maxLineBytes = 1 << 20

// Load parses tab-delimited records from r. Fields are split on literal tabs
// only; quotes carry no meaning. An empty field between values is an error,
// so a missing value never shifts later columns.
func Load(r io.Reader, opts Options) ([]agglo.Entity, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var entities []agglo.Entity
	index := make(map[string]int)

	for line := 1; sc.Scan(); line++ {
		text := strings.TrimRightFunc(sc.Text(), unicode.IsSpace)
		if strings.TrimSpace(text) == "" {
			continue
		}

		fields := strings.Split(text, "\t")
		name := strings.TrimSpace(fields[0])
		if name == "" {
			return nil, errors.Errorf("line %d: missing name", line)
		}

		attrs := make([]float64, 0, len(fields)-1)
		for col, field := range fields[1:] {
			field = strings.TrimSpace(field)
			if field == "" {
				return nil, errors.Errorf("line %d: attribute %d of %q is empty", line, col+1, name)
			}
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d: attribute %d of %q", line, col+1, name)
			}
			attrs = append(attrs, v)
		}

		e := agglo.Entity{Name: name, Attrs: attrs}
		if i, ok := index[name]; ok && !opts.KeepDuplicates {
			entities[i] = e
			continue
		}
		index[name] = len(entities)
		entities = append(entities, e)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read record")
	}

	return entities, nil
}
