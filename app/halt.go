package app

import (
	"time"

	"halo/hal"
)

const haltBlink = 200 * time.Millisecond

// Halt is the terminal failure path: log the cause, then blink the status
// LED forever. Nothing recovers from it and no display activity follows.
func Halt(h hal.HAL, err error) {
	h.Logger().WriteLineString("halt: " + err.Error())
	led := h.LED()
	clk := h.Clock()
	for {
		led.High()
		clk.Sleep(haltBlink)
		led.Low()
		clk.Sleep(haltBlink)
	}
}
