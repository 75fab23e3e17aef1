package logsy

import (
	"fmt"
	"io"
	"strings"
)

// Box-drawing glyphs for the table frame: heavy strokes for the header
// block, light strokes for the body and footer.
const (
	glyphTopLeft  = "┏"
	glyphTopJoin  = "┳"
	glyphTopRight = "┓"
	glyphHeavyBar = "━"
	glyphHeadPipe = "┃"

	glyphSepLeft  = "┡"
	glyphSepJoin  = "╇"
	glyphSepRight = "┩"

	glyphBodyPipe = "│"
	glyphLightBar = "─"

	glyphBottomLeft  = "└"
	glyphBottomJoin  = "┴"
	glyphBottomRight = "┘"
)

// tableRenderer owns the header/row/footer lifecycle of one logical table
// session. The header is lazy: nothing is printed until the first row, and
// a session that never sees a row leaves no trace. Column widths are
// computed once per session from the terminal width and stay stable until
// the footer closes the session, so a resize mid-table is not reflected.
type tableRenderer struct {
	out         io.Writer
	title       string
	withTime    bool
	useColor    bool
	levelColors map[string]string

	widths        columnWidths
	widthsValid   bool
	headerPrinted bool
	rowCount      int
}

func (t *tableRenderer) layout() columnWidths {
	if !t.widthsValid {
		t.widths = computeWidths(terminalWidth(), t.withTime)
		t.widthsValid = true
	}

	return t.widths
}

// writeRow emits one logical row, wrapping every field to its column and
// padding all fields to the tallest one. The first physical line of the
// level cell is colorized; its padding is widened by the escape-byte
// overhead so visible alignment is preserved.
func (t *tableRenderer) writeRow(rec record) {
	t.rowCount++

	if !t.headerPrinted {
		t.writeHeader()
	}

	widths := t.layout()
	cols := widths.columns(t.withTime)

	cells := make([][]string, 0, len(cols))
	levelIndex := 0

	if t.withTime {
		cells = append(cells, wrapText(rec.timestamp, widths.Time))
		levelIndex = 1
	}

	cells = append(cells,
		wrapText(rec.level, widths.Level),
		wrapText(rec.site.String(), widths.FileLine),
		wrapText(rec.message, widths.Message),
	)

	height := 0
	for _, lines := range cells {
		if len(lines) > height {
			height = len(lines)
		}
	}

	for i := 0; i < height; i++ {
		fields := make([]string, len(cells))

		for c := range cells {
			content := ""
			if i < len(cells[c]) {
				content = cells[c][i]
			}

			width := cols[c]

			if c == levelIndex && i == 0 && t.useColor {
				colored := levelColor(t.levelColors, rec.level) + content + colorReset
				width += len(colored) - visibleWidth(colored)
				content = colored
			}

			fields[c] = fmt.Sprintf("%-*s", width, content)
		}

		fmt.Fprintln(t.out, glyphBodyPipe+" "+strings.Join(fields, " "+glyphBodyPipe+" ")+" "+glyphBodyPipe)
	}
}

// writeHeader emits the optional centered title, the heavy top border, the
// centered column labels and the heavy-to-light separator. Called at most
// once per session, on the first row.
func (t *tableRenderer) writeHeader() {
	widths := t.layout()
	cols := widths.columns(t.withTime)

	if t.title != "" {
		fmt.Fprintln(t.out, centerText(t.title, widths.total(t.withTime)))
	}

	t.writeBorder(cols, glyphTopLeft, glyphHeavyBar, glyphTopJoin, glyphTopRight)

	labels := []string{"Level", "File:Line", "Message"}
	if t.withTime {
		labels = append([]string{"Time"}, labels...)
	}

	fields := make([]string, len(labels))
	for i, label := range labels {
		fields[i] = centerText(label, cols[i])
	}

	fmt.Fprintln(t.out, glyphHeadPipe+" "+strings.Join(fields, " "+glyphHeadPipe+" ")+" "+glyphHeadPipe)

	t.writeBorder(cols, glyphSepLeft, glyphHeavyBar, glyphSepJoin, glyphSepRight)

	t.headerPrinted = true
}

// writeFooter closes the session with the light bottom border. It is a
// no-op before the header and idempotent afterwards; a later row starts a
// fresh session with freshly measured columns.
func (t *tableRenderer) writeFooter() {
	if !t.headerPrinted {
		return
	}

	t.writeBorder(t.layout().columns(t.withTime), glyphBottomLeft, glyphLightBar, glyphBottomJoin, glyphBottomRight)

	t.headerPrinted = false
	t.widthsValid = false
	t.rowCount = 0
}

func (t *tableRenderer) writeBorder(cols []int, left, bar, join, right string) {
	segments := make([]string, len(cols))
	for i, width := range cols {
		segments[i] = strings.Repeat(bar, width+2)
	}

	fmt.Fprintln(t.out, left+strings.Join(segments, join)+right)
}

// centerText pads s on both sides to the given visible width, leaving
// wider input untouched.
func centerText(s string, width int) string {
	gap := width - visibleWidth(s)
	if gap <= 0 {
		return s
	}

	left := gap / 2

	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}
