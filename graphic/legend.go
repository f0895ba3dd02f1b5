package graphic

import (
	"bufio"
	"fmt"

	"github.com/mattn/go-runewidth"
)

const (
	// LabelWidth is the number of columns a label may use before it is cut
	LabelWidth = 12

	// LegendCellWidth is the width of one legend entry: "nn: " + label + " "
	LegendCellWidth = LabelWidth + 5
)

// legendColumns splits labels into evenly sized columns, filled top to
// bottom, so as to use the horizontal space below a chart of chartWidth.
func legendColumns(count, chartWidth int) (cols, rows int) {
	cols = chartWidth / LegendCellWidth
	if cols < 1 {
		cols = 1
	}

	rows = (count + cols - 1) / cols

	return cols, rows
}

// drawLegend writes labels below the chart, one row per line.
func drawLegend(bw *bufio.Writer, labels []string, chartWidth int) {
	var _, rows = legendColumns(len(labels), chartWidth)

	for xRow := 0; xRow < rows; xRow++ {
		for xLabel := xRow; xLabel < len(labels); xLabel += rows {
			fmt.Fprintf(bw, "%2d: %s ", xLabel, fitLabel(labels[xLabel]))
		}

		bw.WriteByte('\n')
	}
}

// fitLabel cuts or pads label to exactly LabelWidth columns.
func fitLabel(label string) string {
	return runewidth.FillRight(runewidth.Truncate(label, LabelWidth, ""), LabelWidth)
}
