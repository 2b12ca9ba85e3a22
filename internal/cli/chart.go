package cli

import (
	"fmt"
	"io"
	"math"
	"strings"
)

const (
	chartWidth  = 60
	chartHeight = 10
)

// renderChart plots a single series as an ASCII line chart: samples are
// bucketed across chartWidth columns (averaging within a bucket) and scaled
// to chartHeight rows between min and max. Gaps (buckets without samples)
// stay blank. fixedMax > 0 pins the top of the scale, e.g. 100 for
// percentages.
func renderChart(w io.Writer, title string, values []float64, present []bool, fixedMax float64) {
	fmt.Fprintln(w, title)

	cols, colSet := bucket(values, present, chartWidth)
	if !anySet(colSet) {
		fmt.Fprintln(w, "  (no data)")
		return
	}

	lo, hi := rangeOf(cols, colSet)
	if fixedMax > 0 {
		lo, hi = 0, fixedMax
	}
	if hi == lo {
		hi = lo + 1
	}

	grid := make([][]byte, chartHeight)
	for i := range grid {
		grid[i] = []byte(strings.Repeat(" ", chartWidth))
	}
	for x := 0; x < chartWidth; x++ {
		if !colSet[x] {
			continue
		}
		y := int(math.Round((cols[x] - lo) / (hi - lo) * float64(chartHeight-1)))
		if y < 0 {
			y = 0
		}
		if y > chartHeight-1 {
			y = chartHeight - 1
		}
		grid[chartHeight-1-y][x] = '*'
	}

	for i, row := range grid {
		label := ""
		switch i {
		case 0:
			label = formatAxis(hi)
		case chartHeight - 1:
			label = formatAxis(lo)
		}
		fmt.Fprintf(w, "%8s |%s\n", label, string(row))
	}
	fmt.Fprintf(w, "%8s +%s\n", "", strings.Repeat("-", chartWidth))
	fmt.Fprintf(w, "%8s oldest%s newest\n", "", strings.Repeat(" ", chartWidth-12))
}

// bucket averages values into width columns, keeping track of which columns
// received at least one sample.
func bucket(values []float64, present []bool, width int) ([]float64, []bool) {
	cols := make([]float64, width)
	counts := make([]int, width)
	set := make([]bool, width)

	n := len(values)
	if n == 0 {
		return cols, set
	}
	for i := 0; i < n; i++ {
		if !present[i] {
			continue
		}
		x := i * width / n
		cols[x] += values[i]
		counts[x]++
	}
	for x := 0; x < width; x++ {
		if counts[x] > 0 {
			cols[x] /= float64(counts[x])
			set[x] = true
		}
	}
	return cols, set
}

func anySet(set []bool) bool {
	for _, s := range set {
		if s {
			return true
		}
	}
	return false
}

func rangeOf(cols []float64, set []bool) (lo, hi float64) {
	first := true
	for i, v := range cols {
		if !set[i] {
			continue
		}
		if first {
			lo, hi = v, v
			first = false
			continue
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

func formatAxis(v float64) string {
	if v >= 10000 {
		return fmt.Sprintf("%.0fk", v/1000)
	}
	return fmt.Sprintf("%.0f", v)
}
