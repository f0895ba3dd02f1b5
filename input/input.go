package input

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	// MaxColumns is the most columns a line of input may hold
	MaxColumns = 3

	// DefaultLimit is the number of rows read before input is truncated
	DefaultLimit = 100
)

// Docs describes the input format
const Docs = `The standard input stream should contain 1-3 columns, separated by spaces.
Input is truncated after 100 lines.

Either:

1. Only data
integer

2. Labeled data
integer string

3. Unlabeled comparison data
integer integer

4. Labeled comparison data
integer integer string`

// ErrNoData is returned when the input holds no rows
var ErrNoData = errors.New("no data")

// LineError is a line that does not fit the column layout
type LineError struct {
	// Line is the 1-based line number
	Line int
	// Text is the line as read
	Text string
	// Want is the column count set by the first line
	Want int
	// Got is the column count of this line
	Got int
}

func (e *LineError) Error() string {
	if e.Got > MaxColumns {
		return fmt.Sprintf("invalid line %d %q: found %d items but expected no more than %d",
			e.Line, e.Text, e.Got, MaxColumns)
	}

	return fmt.Sprintf("invalid line %d %q: expected %d items, based on the first line of input",
		e.Line, e.Text, e.Want)
}

// Columns is input split into columns
type Columns struct {
	cols  [MaxColumns][]string
	count int

	// Truncated is set when rows past the limit were dropped
	Truncated bool
}

// Read splits lines from r into whitespace separated columns. The first line
// sets the column count. At most limit rows are kept.
// Blank lines are skipped.
func Read(r io.Reader, limit int) (*Columns, error) {
	var c = &Columns{}
	var rows int

	var scanner = bufio.NewScanner(r)

	for xLine := 1; scanner.Scan(); xLine++ {
		var line = scanner.Text()
		var row = strings.Fields(line)

		if len(row) == 0 {
			continue
		}

		if rows >= limit {
			c.Truncated = true
			break
		}

		if rows == 0 {
			c.count = len(row)
		}

		if len(row) != c.count || len(row) > MaxColumns {
			return nil, &LineError{Line: xLine, Text: line, Want: c.count, Got: len(row)}
		}

		for xCol, cell := range row {
			c.cols[xCol] = append(c.cols[xCol], cell)
		}

		rows++
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read input")
	}

	if rows == 0 {
		return nil, ErrNoData
	}

	return c, nil
}

// Count returns the number of columns
func (c *Columns) Count() int {
	return c.count
}

// Len returns the number of rows
func (c *Columns) Len() int {
	return len(c.cols[0])
}

// Strings returns column i. Missing columns are nil.
func (c *Columns) Strings(i int) []string {
	if i < 0 || i >= c.count {
		return nil
	}

	return c.cols[i]
}

// Integers parses column i as unsigned 32 bit integers.
// Missing columns are nil.
func (c *Columns) Integers(i int) ([]uint32, error) {
	var col = c.Strings(i)
	if col == nil {
		return nil, nil
	}

	var out = make([]uint32, len(col))

	for xRow, cell := range col {
		var v, err = strconv.ParseUint(cell, 10, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", xRow+1)
		}

		out[xRow] = uint32(v)
	}

	return out, nil
}
