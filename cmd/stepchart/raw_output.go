package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/noriah/stepchart/scale"
	"github.com/pkg/errors"
)

// writeRaw prints the scaled steps instead of a chart. Each line holds the
// measurement and its step, then the comparison measurement and its step
// when present. Steps use the signed encoding: 0 zero, -1 below, -2 excluded.
func writeRaw(w io.Writer, primary, compare []uint32, res scale.Result) error {
	var bw = bufio.NewWriter(w)

	for xBar, m := range primary {
		fmt.Fprintf(bw, "%d %d", m, res.Primary[xBar].Int())

		if res.Compare != nil {
			fmt.Fprintf(bw, " %d %d", compare[xBar], res.Compare[xBar].Int())
		}

		bw.WriteByte('\n')
	}

	return errors.Wrap(bw.Flush(), "failed to write steps")
}
