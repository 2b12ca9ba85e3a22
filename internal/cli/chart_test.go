package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucket_AveragesAndTracksGaps(t *testing.T) {
	values := []float64{10, 20, 0, 40}
	present := []bool{true, true, false, true}

	cols, set := bucket(values, present, 2)
	require.Len(t, cols, 2)

	// First two samples land in column 0, last two in column 1.
	assert.True(t, set[0])
	assert.Equal(t, 15.0, cols[0])
	assert.True(t, set[1])
	assert.Equal(t, 40.0, cols[1])
}

func TestBucket_Empty(t *testing.T) {
	cols, set := bucket(nil, nil, 4)
	assert.Len(t, cols, 4)
	assert.False(t, anySet(set))
}

func TestRangeOf_SkipsUnsetColumns(t *testing.T) {
	cols := []float64{5, 999, 2}
	set := []bool{true, false, true}
	lo, hi := rangeOf(cols, set)
	assert.Equal(t, 2.0, lo)
	assert.Equal(t, 5.0, hi)
}

func TestRenderChart_NoData(t *testing.T) {
	var buf bytes.Buffer
	renderChart(&buf, "Toner level (%)", nil, nil, 100)
	assert.Contains(t, buf.String(), "(no data)")
}

func TestRenderChart_FixedMaxPinsAxis(t *testing.T) {
	values := make([]float64, chartWidth)
	present := make([]bool, chartWidth)
	for i := range values {
		values[i] = 50
		present[i] = true
	}

	var buf bytes.Buffer
	renderChart(&buf, "Toner level (%)", values, present, 100)

	lines := strings.Split(buf.String(), "\n")
	require.Greater(t, len(lines), chartHeight)
	assert.Contains(t, lines[1], "100")
	assert.Contains(t, lines[chartHeight], "0 |")
	assert.Contains(t, buf.String(), "oldest")
	assert.Contains(t, buf.String(), "newest")
}

func TestRenderChart_PlotsEveryColumn(t *testing.T) {
	values := make([]float64, chartWidth)
	present := make([]bool, chartWidth)
	for i := range values {
		values[i] = float64(i)
		present[i] = true
	}

	var buf bytes.Buffer
	renderChart(&buf, "Total pages", values, present, 0)
	assert.Equal(t, chartWidth, strings.Count(buf.String(), "*"))
}

func TestFormatAxis(t *testing.T) {
	assert.Equal(t, "100", formatAxis(100))
	assert.Equal(t, "9500", formatAxis(9500))
	assert.Equal(t, "12k", formatAxis(12345))
}
