package render

// column is a horizontal slice of the screen.
type column struct {
	start int
	width int
}

type layoutMetrics struct {
	previous column
	current  column
	next     column
}

const (
	separatorWidth      = 1
	minPreviousWidth    = 8
	minThreeColumnWidth = 40
)

// computeLayout splits w into Previous, Current and Next columns in a
// 1:2:2 ratio. Narrow terminals drop the Previous column.
func computeLayout(w int) layoutMetrics {
	if w <= 0 {
		return layoutMetrics{}
	}

	var m layoutMetrics
	x := 0
	if w >= minThreeColumnWidth {
		prev := w / 5
		if prev < minPreviousWidth {
			prev = minPreviousWidth
		}
		m.previous = column{start: 0, width: prev}
		x = prev + separatorWidth
	}

	remaining := w - x
	if remaining <= separatorWidth {
		m.current = column{start: x, width: remaining}
		return m
	}
	cur := (remaining - separatorWidth) / 2
	m.current = column{start: x, width: cur}
	nextStart := x + cur + separatorWidth
	m.next = column{start: nextStart, width: w - nextStart}
	return m
}

// scrollWindow returns the first visible row so selected stays roughly
// centred in a list of total entries shown in rows lines.
func scrollWindow(selected, total, rows int) int {
	if rows <= 0 || total <= rows || selected < 0 {
		return 0
	}
	start := selected - rows/2
	if start < 0 {
		start = 0
	}
	if start > total-rows {
		start = total - rows
	}
	return start
}
