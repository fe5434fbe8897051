//go:build tinygo

package hal

import (
	"fmt"
	"image/color"
	"machine"
	"runtime/interrupt"
	"time"

	"tinygo.org/x/drivers/ds3231"
	"tinygo.org/x/drivers/ws2812"

	"halo/clock"
)

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

type pinLED struct {
	pin machine.Pin
}

func (l *pinLED) High() { l.pin.High() }
func (l *pinLED) Low()  { l.pin.Low() }

// ledRing drives one WS2812 strip. SetPixel stages into the color buffer;
// Show shifts the whole buffer out with interrupts off, since the strip's
// timing cannot survive a preempted bit-bang.
type ledRing struct {
	dev ws2812.Device
	px  []color.RGBA
}

func newLEDRing(pin machine.Pin, n int) *ledRing {
	return &ledRing{dev: ws2812.New(pin), px: make([]color.RGBA, n)}
}

func (r *ledRing) Len() int { return len(r.px) }

func (r *ledRing) SetPixel(i int, c color.RGBA) {
	if i < 0 || i >= len(r.px) {
		return
	}
	r.px[i] = c
}

func (r *ledRing) Show() error {
	state := interrupt.Disable()
	err := r.dev.WriteColors(r.px)
	interrupt.Restore(state)
	if err != nil {
		return fmt.Errorf("ring: flush: %w", err)
	}
	return nil
}

// pinButtons reads the two pulled-up pins. Active low: a pressed button
// shorts its pin to ground.
type pinButtons struct {
	mode machine.Pin
	set  machine.Pin
}

func (b *pinButtons) Pressed(btn Button) bool {
	if btn == ButtonMode {
		return !b.mode.Get()
	}
	return !b.set.Get()
}

type dsRTC struct {
	dev ds3231.Device
}

func (r *dsRTC) Detect() error {
	if !r.dev.Configure() {
		return fmt.Errorf("rtc: ds3231 configure failed")
	}
	if _, err := r.dev.ReadTime(); err != nil {
		return fmt.Errorf("rtc: probe read: %w", err)
	}
	return nil
}

func (r *dsRTC) ReadTime() (clock.Moment, error) {
	t, err := r.dev.ReadTime()
	if err != nil {
		return clock.Moment{}, fmt.Errorf("rtc: read: %w", err)
	}
	return clock.FromTime(t), nil
}

func (r *dsRTC) SetTime(m clock.Moment) error {
	if err := r.dev.SetTime(m.Time()); err != nil {
		return fmt.Errorf("rtc: write: %w", err)
	}
	return nil
}

type hwClock struct{}

func (hwClock) Now() time.Time        { return time.Now() }
func (hwClock) Sleep(d time.Duration) { time.Sleep(d) }
