package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHumanDate(t *testing.T) {
	assert.Equal(t, "Mar 15, 2026", HumanDate(time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Jan 2, 2020", HumanDate(time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)))
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		max   int
		want  string
	}{
		{"fits", "short", 10, "short"},
		{"exact", "short", 5, "short"},
		{"cut", "a longer string", 8, "a longe…"},
		{"multibyte", "ééééé", 3, "éé…"},
		{"max one", "abc", 1, "a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.input, tt.max))
		})
	}
}

func TestRenderBox(t *testing.T) {
	out := RenderBox("Todos", "content line")
	assert.Contains(t, out, "TODOS", "title renders uppercased")
	assert.Contains(t, out, "content line")
	assert.Contains(t, out, "╭", "rounded border")

	untitled := RenderBox("", "content line")
	assert.NotContains(t, untitled, "TODOS")
}

func TestRenderProgress(t *testing.T) {
	tests := []struct {
		name string
		pct  float64
		want string
	}{
		{"zero", 0, "  0%"},
		{"mid", 0.45, " 45%"},
		{"full", 1, "100%"},
		{"clamps high", 1.5, "100%"},
		{"clamps low", -0.2, "  0%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderProgress(tt.pct, 10)
			assert.Contains(t, got, tt.want)
			assert.True(t, strings.HasPrefix(got, "["))
		})
	}
}

func TestRenderProgressBlocks(t *testing.T) {
	empty := RenderProgress(0, 6)
	assert.Contains(t, empty, emptyBlock)
	assert.NotContains(t, empty, filledBlock)

	full := RenderProgress(1, 6)
	assert.Contains(t, full, filledBlock)
	assert.NotContains(t, full, emptyBlock)
}
