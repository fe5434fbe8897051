//go:build !tinygo

package hal

import (
	"image/color"
	"sync"
)

// simFrame is the simulated OLED surface behind the text panel. It
// implements drivers.Displayer plus the ssd1306 driver's ClearBuffer fast
// path, so the GridPanel treats it exactly like the device display.
type simFrame struct {
	mu      sync.Mutex
	w, h    int16
	pix     []byte // RGBA, 4 bytes per pixel
	flushes *Stats
}

func newSimFrame(w, h int16) *simFrame {
	return &simFrame{w: w, h: h, pix: make([]byte, int(w)*int(h)*4)}
}

func (f *simFrame) Size() (int16, int16) { return f.w, f.h }

func (f *simFrame) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || x >= f.w || y < 0 || y >= f.h {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	i := (int(y)*int(f.w) + int(x)) * 4
	f.pix[i+0] = c.R
	f.pix[i+1] = c.G
	f.pix[i+2] = c.B
	f.pix[i+3] = 0xFF
}

func (f *simFrame) Display() error {
	if f.flushes != nil {
		f.flushes.PanelFlushes.Add(1)
	}
	return nil
}

func (f *simFrame) ClearBuffer() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.pix {
		f.pix[i] = 0
	}
}

// Snapshot copies the RGBA pixel bytes into dst, sized w*h*4.
func (f *simFrame) Snapshot(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.pix)
}
