package logsy

// Column width policy for the table view. Border glyphs and cell padding
// consume a fixed number of terminal columns; the minimums keep every
// column readable; leftover space is handed out by weight, truncating each
// share toward zero independently. The per-field truncation can waste up to
// three columns, but downstream output checks pin these exact widths, so
// the rounding is kept as-is.
const (
	minTimeWidth     = 19
	minLevelWidth    = 8
	minFileLineWidth = 15
	minMessageWidth  = 20

	borderOverheadWithTime = 13
	borderOverhead         = 10

	extraTimeShare     = 0.10
	extraFileLineShare = 0.20
	extraMessageShare  = 0.70
)

// columnWidths holds the resolved width of every logical table column.
// Time is zero when timestamps are disabled.
type columnWidths struct {
	Time     int
	Level    int
	FileLine int
	Message  int
}

// computeWidths distributes the terminal width across the table columns.
// Terminals too narrow for the minimums get the minimums verbatim; the
// table may visually overflow but never errors.
func computeWidths(terminalColumns int, withTime bool) columnWidths {
	overhead := borderOverhead
	timeMin := 0

	if withTime {
		overhead = borderOverheadWithTime
		timeMin = minTimeWidth
	}

	widths := columnWidths{
		Time:     timeMin,
		Level:    minLevelWidth,
		FileLine: minFileLineWidth,
		Message:  minMessageWidth,
	}

	available := terminalColumns - overhead
	minimum := timeMin + minLevelWidth + minFileLineWidth + minMessageWidth

	if available < minimum {
		return widths
	}

	extra := available - minimum

	if withTime {
		widths.Time += int(float64(extra) * extraTimeShare)
	}

	widths.FileLine += int(float64(extra) * extraFileLineShare)
	widths.Message += int(float64(extra) * extraMessageShare)

	return widths
}

// columns returns the widths in display order, omitting Time when
// timestamps are disabled.
func (w columnWidths) columns(withTime bool) []int {
	if withTime {
		return []int{w.Time, w.Level, w.FileLine, w.Message}
	}

	return []int{w.Level, w.FileLine, w.Message}
}

// total returns the full visible width of the rendered table, borders and
// padding included.
func (w columnWidths) total(withTime bool) int {
	sum := w.Level + w.FileLine + w.Message
	overhead := borderOverhead

	if withTime {
		sum += w.Time
		overhead = borderOverheadWithTime
	}

	return sum + overhead
}
