// Package prompt asks the user for the number of merge steps to run.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrNoInput is returned when input ends before a valid count is read.
var ErrNoInput = errors.New("no iteration count entered")

// Iterations reads lines from in until one holds an integer in
// [0, entities-1], writing the prompt and any complaints to out.
func Iterations(in io.Reader, out io.Writer, entities int) (int, error) {
	if entities < 1 {
		return 0, errors.Errorf("cannot prompt for iterations over %d entities", entities)
	}
	limit := entities - 1

	sc := bufio.NewScanner(in)
	for {
		fmt.Fprintf(out, "Number of merges (0-%d): ", limit)
		if !sc.Scan() {
			fmt.Fprintln(out)
			if err := sc.Err(); err != nil {
				return 0, errors.Wrap(err, "read iteration count")
			}
			return 0, ErrNoInput
		}

		text := strings.TrimSpace(sc.Text())
		n, err := strconv.Atoi(text)
		switch {
		case err != nil:
			fmt.Fprintf(out, "%q is not a whole number\n", text)
		case n < 0 || n > limit:
			fmt.Fprintf(out, "%d is out of range: %d entities allow 0 to %d merges\n", n, entities, limit)
		default:
			return n, nil
		}
	}
}
