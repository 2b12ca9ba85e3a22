package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
)

const timeFormat = "2006-01-02 15:04"

// table writes rows through a tabwriter so columns line up regardless of
// content width.
func table(w io.Writer, header []string, rows [][]string) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	tw.Flush()
}

func strOrNA(s *string) string {
	if s == nil || *s == "" {
		return "n/a"
	}
	return *s
}

func intOrNA(v *int) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%d", *v)
}

func pctOrNA(v *int) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%d%%", *v)
}

func timeOrNever(t *time.Time) string {
	if t == nil {
		return "never"
	}
	return t.Local().Format(timeFormat)
}

// tonerBar renders a ten-segment gauge, e.g. 63% -> "[######----] 63%".
func tonerBar(level *int) string {
	if level == nil {
		return "[??????????] n/a"
	}
	v := *level
	if v < 0 {
		v = 0
	}
	if v > 100 {
		v = 100
	}
	filled := v / 10
	return fmt.Sprintf("[%s%s] %d%%", strings.Repeat("#", filled), strings.Repeat("-", 10-filled), v)
}
