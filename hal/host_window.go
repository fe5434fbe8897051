//go:build !tinygo

package hal

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"halo/internal/buildinfo"
)

// Window runner canvas, in logical pixels.
const (
	simW = 260
	simH = 345

	ringCX     = 130
	ringCY     = 130
	minutesRad = 110
	hoursRad   = 70
)

// RunWindow opens a desktop window that draws both rings as LED dots and
// the panel as a pixel surface. Key B is the primary (mode) button, key R
// the secondary (set) button; holding a key holds the button, so real
// press durations carry through. Blocks until the window closes.
func RunWindow(cfg SimConfig, start func(HAL)) error {
	h := newSim(cfg)
	scale := cfg.WindowScale
	if scale <= 0 {
		scale = 3
	}
	go start(h)

	g := &simGame{
		h:        h,
		panelImg: ebiten.NewImage(128, 64),
		panelBuf: make([]byte, 128*64*4),
		hoursPx:  make([]color.RGBA, HoursRingLen),
		minsPx:   make([]color.RGBA, MinutesRingLen),
	}
	ebiten.SetWindowTitle("halo (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(simW*scale, simH*scale)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type simGame struct {
	h        *simHAL
	panelImg *ebiten.Image
	panelBuf []byte
	hoursPx  []color.RGBA
	minsPx   []color.RGBA
}

func (g *simGame) Update() error {
	g.h.buttons.Set(ButtonMode, ebiten.IsKeyPressed(ebiten.KeyB))
	g.h.buttons.Set(ButtonSet, ebiten.IsKeyPressed(ebiten.KeyR))
	return nil
}

func (g *simGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 12, G: 12, B: 16, A: 255})

	g.h.minutes.Snapshot(g.minsPx)
	drawRing(screen, g.minsPx, minutesRad, 4)
	g.h.hours.Snapshot(g.hoursPx)
	drawRing(screen, g.hoursPx, hoursRad, 5)

	g.h.frame.Snapshot(g.panelBuf)
	g.panelImg.WritePixels(g.panelBuf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate((simW-128)/2, 272)
	screen.DrawImage(g.panelImg, op)

	led := color.RGBA{R: 40, G: 40, B: 40, A: 255}
	if g.h.led.On() {
		led = color.RGBA{R: 0, G: 220, B: 0, A: 255}
	}
	vector.DrawFilledCircle(screen, 12, 12, 5, led, true)
}

func (g *simGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return simW, simH
}

// drawRing paints one ring clockwise from twelve o'clock, one dot per
// pixel. LED channel values sit in the dim 0-30 range, so they are scaled
// up for the screen.
func drawRing(dst *ebiten.Image, px []color.RGBA, radius, dot float32) {
	n := len(px)
	for i, c := range px {
		a := 2 * math.Pi * float64(i) / float64(n)
		x := ringCX + radius*float32(math.Sin(a))
		y := ringCY - radius*float32(math.Cos(a))
		vector.DrawFilledCircle(dst, x, y, dot, brighten(c), true)
	}
}

func brighten(c color.RGBA) color.RGBA {
	return color.RGBA{R: boost(c.R), G: boost(c.G), B: boost(c.B), A: 255}
}

func boost(v uint8) uint8 {
	if v == 0 {
		return 24 // unlit LEDs still show as faint dots
	}
	s := int(v) * 8
	if s > 255 {
		s = 255
	}
	return uint8(s)
}
