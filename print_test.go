package ly

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrint(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		height   int
		expected string
	}{
		{
			name:     "fits",
			input:    "foo",
			width:    4,
			height:   1,
			expected: "foo ",
		},
		{
			name:     "wraps at width",
			input:    "foobar",
			width:    3,
			height:   2,
			expected: "foo\nbar",
		},
		{
			name:     "truncates at height",
			input:    "foobarbaz",
			width:    3,
			height:   2,
			expected: "foo\nbar",
		},
		{
			name:     "hard break",
			input:    "a\nbc",
			width:    3,
			height:   2,
			expected: "a  \nbc ",
		},
		{
			name:     "tab",
			input:    "\tx",
			width:    6,
			height:   1,
			expected: "    x ",
		},
		{
			name:     "combining mark stays in one cell",
			input:    "e\u0301x",
			width:    3,
			height:   1,
			expected: "e\u0301x ",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			buf := NewBuffer(test.width, test.height, White, Black)
			buf.Print(test.input)
			assert.Equal(t, test.expected, buf.String())
		})
	}
}

func TestPrintKeepsColors(t *testing.T) {
	buf := NewBuffer(3, 1, White, Black)
	buf.Get(0, 0).Foreground = Red
	buf.Print("ab")
	assert.Equal(t, Cell{"a", Red, Black}, *buf.Get(0, 0))
	assert.Equal(t, Cell{"b", White, Black}, *buf.Get(1, 0))
}

func TestPrintStyled(t *testing.T) {
	buf := NewBuffer(3, 1, White, Black)
	col, row := buf.PrintStyled("ab", Cyan, Blue)
	assert.Equal(t, 2, col)
	assert.Equal(t, 0, row)
	assert.Equal(t, Cell{"a", Cyan, Blue}, *buf.Get(0, 0))
	assert.Equal(t, Cell{" ", White, Black}, *buf.Get(2, 0))
}

func TestPrintWide(t *testing.T) {
	buf := NewBuffer(3, 2, White, Black)
	buf.Print("a世界")
	assert.Equal(t, "a", buf.Get(0, 0).Glyph)
	assert.Equal(t, "世", buf.Get(1, 0).Glyph)
	assert.Equal(t, "", buf.Get(2, 0).Glyph)
	// 界 does not fit in the remaining column and wraps
	assert.Equal(t, "界", buf.Get(0, 1).Glyph)
	assert.Equal(t, "", buf.Get(1, 1).Glyph)
}

func TestPrintInSubBuffer(t *testing.T) {
	buf := NewBuffer(5, 3, White, Black)
	buf.SubBuffer(1, 1, 2, 2).Print("abcdef")
	assert.Equal(t, "     \n ab  \n cd  ", buf.String())
}

func TestMeasure(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		cols  int
		rows  int
	}{
		{name: "empty", text: "", width: 10, cols: 0, rows: 0},
		{name: "single line", text: "hello", width: 10, cols: 5, rows: 1},
		{name: "wraps", text: "hello", width: 2, cols: 2, rows: 3},
		{name: "lines", text: "a\nabc\nab", width: 10, cols: 3, rows: 3},
		{name: "trailing newline", text: "ab\n", width: 10, cols: 2, rows: 2},
		{name: "wide", text: "世界", width: 3, cols: 2, rows: 2},
		{name: "zero width", text: "abc", width: 0, cols: 0, rows: 0},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cols, rows := Measure(test.text, test.width)
			assert.Equal(t, test.cols, cols)
			assert.Equal(t, test.rows, rows)
		})
	}
}

func TestPrintNegativeSize(t *testing.T) {
	buf := NewBuffer(3, 1, White, Black)
	col, row := buf.SubBuffer(0, 0, 2, -1).Print("abc")
	assert.Equal(t, 0, col)
	assert.Equal(t, 0, row)
	assert.Equal(t, "   ", buf.String())
}
