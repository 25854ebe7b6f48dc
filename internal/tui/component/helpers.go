package component

import (
	"math"
	"sort"
	"unicode/utf8"

	"splitpane/internal/layout"
)

// truncate truncates a string to the given width, adding ellipsis if needed
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}

// CellSizes splits total cells between panes in proportion to l, using
// largest-remainder rounding so the result always adds up to total. Ties go
// to the earlier pane.
func CellSizes(l layout.Layout, total int) []int {
	cells := make([]int, len(l))
	sum := l.Sum()
	if total <= 0 || sum <= 0 {
		return cells
	}

	type remainder struct {
		index int
		frac  float64
	}
	rems := make([]remainder, len(l))
	used := 0
	for i, size := range l {
		exact := math.Max(size, 0) / sum * float64(total)
		cells[i] = int(math.Floor(exact))
		used += cells[i]
		rems[i] = remainder{index: i, frac: exact - float64(cells[i])}
	}

	sort.SliceStable(rems, func(a, b int) bool {
		return rems[a].frac > rems[b].frac
	})
	for i := 0; used < total && i < len(rems); i++ {
		cells[rems[i].index]++
		used++
	}
	return cells
}
