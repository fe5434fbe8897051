package hal

import (
	"image/color"
	"sync"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
	"tinygo.org/x/tinyfont/proggy"
)

// Panel geometry: a 16x4 character grid over a 128x64 pixel surface.
const (
	panelCols = 16
	panelRows = 4
	cellW     = 8
	cellH     = 16

	smallBaseline = 11
	largeBaseline = 13
)

var (
	panelInk  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	panelNone = color.RGBA{A: 255}
)

// GridPanel renders a character grid through any drivers.Displayer, so the
// ssd1306 on hardware, the simulator's pixel frame and test fakes all share
// the same layout code. Large-font glyphs occupy two grid columns.
type GridPanel struct {
	mu   sync.Mutex
	disp drivers.Displayer

	cells [panelRows][panelCols]rune
	col   int
	row   int
	font  FontID
}

// NewGridPanel wraps a pixel display in the 16x4 character grid. The
// display should be at least 128x64 pixels; glyphs outside its bounds are
// clipped by the displayer itself.
func NewGridPanel(d drivers.Displayer) *GridPanel {
	p := &GridPanel{disp: d}
	for r := range p.cells {
		for c := range p.cells[r] {
			p.cells[r][c] = ' '
		}
	}
	return p
}

func (p *GridPanel) Size() (cols, rows int) { return panelCols, panelRows }

func (p *GridPanel) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for r := 0; r < panelRows; r++ {
		for c := 0; c < panelCols; c++ {
			p.cells[r][c] = ' '
		}
	}
	p.col, p.row = 0, 0
	if cb, ok := p.disp.(interface{ ClearBuffer() }); ok {
		cb.ClearBuffer()
		return
	}
	w, h := p.disp.Size()
	for y := int16(0); y < h; y++ {
		for x := int16(0); x < w; x++ {
			p.disp.SetPixel(x, y, panelNone)
		}
	}
}

func (p *GridPanel) SetCursor(col, row int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.col = clampInt(col, 0, panelCols-1)
	p.row = clampInt(row, 0, panelRows-1)
}

func (p *GridPanel) SelectFont(id FontID) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.font = id
}

func (p *GridPanel) Print(s string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	step := glyphCols(p.font)
	for _, ch := range s {
		if p.col+step > panelCols {
			break
		}
		p.drawGlyph(p.col, p.row, ch, p.font)
		p.cells[p.row][p.col] = ch
		for i := 1; i < step; i++ {
			p.cells[p.row][p.col+i] = ' '
		}
		p.col += step
	}
}

func (p *GridPanel) ClearToEOL() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for c := p.col; c < panelCols; c++ {
		p.clearCell(c, p.row)
		p.cells[p.row][c] = ' '
	}
}

func (p *GridPanel) Flush() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.disp.Display()
}

// Line returns the text on one grid row with trailing blanks removed.
// The simulator's terminal view and the tests read the panel through it.
func (p *GridPanel) Line(row int) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if row < 0 || row >= panelRows {
		return ""
	}
	end := panelCols
	for end > 0 && p.cells[row][end-1] == ' ' {
		end--
	}
	return string(p.cells[row][:end])
}

func (p *GridPanel) drawGlyph(col, row int, ch rune, font FontID) {
	for i := 0; i < glyphCols(font); i++ {
		p.clearCell(col+i, row)
	}
	x := int16(col * cellW)
	y := int16(row*cellH + baseline(font))
	tinyfont.DrawChar(p.disp, fontFace(font), x, y, ch, panelInk)
}

func (p *GridPanel) clearCell(col, row int) {
	x0 := int16(col * cellW)
	y0 := int16(row * cellH)
	for y := y0; y < y0+cellH; y++ {
		for x := x0; x < x0+cellW; x++ {
			p.disp.SetPixel(x, y, panelNone)
		}
	}
}

func glyphCols(id FontID) int {
	if id == FontLarge {
		return 2
	}
	return 1
}

func baseline(id FontID) int {
	if id == FontLarge {
		return largeBaseline
	}
	return smallBaseline
}

func fontFace(id FontID) tinyfont.Fonter {
	if id == FontLarge {
		return &freemono.Bold9pt7b
	}
	return &proggy.TinySZ8pt7b
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
