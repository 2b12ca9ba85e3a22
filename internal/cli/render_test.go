package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTonerBar(t *testing.T) {
	n := func(v int) *int { return &v }

	tests := []struct {
		name  string
		level *int
		want  string
	}{
		{"nil", nil, "[??????????] n/a"},
		{"zero", n(0), "[----------] 0%"},
		{"mid", n(63), "[######----] 63%"},
		{"full", n(100), "[##########] 100%"},
		{"clamped high", n(120), "[##########] 100%"},
		{"clamped low", n(-5), "[----------] 0%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tonerBar(tt.level))
		})
	}
}

func TestStrOrNA(t *testing.T) {
	s := "x"
	empty := ""
	assert.Equal(t, "x", strOrNA(&s))
	assert.Equal(t, "n/a", strOrNA(&empty))
	assert.Equal(t, "n/a", strOrNA(nil))
}

func TestTimeOrNever(t *testing.T) {
	assert.Equal(t, "never", timeOrNever(nil))
	ts := time.Date(2026, 8, 15, 9, 30, 0, 0, time.Local)
	assert.Equal(t, "2026-08-15 09:30", timeOrNever(&ts))
}

func TestTable_AlignsColumns(t *testing.T) {
	var buf bytes.Buffer
	table(&buf, []string{"ID", "NAME"}, [][]string{
		{"1", "short"},
		{"1000", "much longer value"},
	})
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	assert.Len(t, lines, 3)
	// Header and rows start their second column at the same offset.
	idx := bytes.Index(lines[1], []byte("short"))
	assert.Equal(t, idx, bytes.Index(lines[2], []byte("much")))
}
