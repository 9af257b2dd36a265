package patchwheel

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestFooterWidths(t *testing.T) {
	measure := func(s string) int32 { return int32(utf8.RuneCountInString(s)) * 10 }

	widths, total := footerWidths([]FooterHelpItem{
		{ButtonName: "A", HelpText: "OK"},
		{ButtonName: "B", HelpText: "Cancel"},
	}, measure)

	assert.Equal(t, [][2]int32{{22, 20}, {22, 60}}, widths)
	assert.Equal(t, int32(22+6+20+16+22+6+60), total)

	widths, total = footerWidths(nil, measure)
	assert.Empty(t, widths)
	assert.Zero(t, total)
}
