package outwriter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestTruncateTitle checks rune-safe truncation with an ellipsis.
func TestTruncateTitle(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		maxWidth int
		expected string
	}{
		{name: "fits exactly", title: "两数之和", maxWidth: 4, expected: "两数之和"},
		{name: "fits with room", title: "LRU缓存", maxWidth: 10, expected: "LRU缓存"},
		{name: "truncates ascii", title: "abcdefgh", maxWidth: 5, expected: "abcd…"},
		{name: "truncates chinese", title: "无重复字符的最长子串", maxWidth: 6, expected: "无重复字符…"},
		{name: "width one keeps one rune", title: "排序", maxWidth: 1, expected: "排"},
		{name: "empty title", title: "", maxWidth: 5, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TruncateTitle(tt.title, tt.maxWidth))
		})
	}
}

// TestGetMaxTableTitleWidth checks the clamped width range. Tests run without
// a terminal, so the 80-column fallback applies.
func TestGetMaxTableTitleWidth(t *testing.T) {
	width := GetMaxTableTitleWidth()
	assert.GreaterOrEqual(t, width, 15)
	assert.LessOrEqual(t, width, 60)
}
