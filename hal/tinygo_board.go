//go:build tinygo

package hal

import (
	"machine"

	"tinygo.org/x/drivers/ds3231"
	"tinygo.org/x/drivers/ssd1306"
)

// Board wiring (RP2040):
//
//	GP0/GP1  UART0 debug log, 115200 8N1
//	GP2      hours ring data (24 x WS2812)
//	GP3      minutes ring data (60 x WS2812)
//	GP4/GP5  I2C0: SSD1306 OLED (0x3C) + DS3231 RTC
//	GP14     mode button (blue), to ground
//	GP15     set button (red), to ground
const (
	pinHoursRing   = machine.GP2
	pinMinutesRing = machine.GP3
	pinButtonMode  = machine.GP14
	pinButtonSet   = machine.GP15
)

type boardHAL struct {
	logger  *uartLogger
	led     *pinLED
	hours   *ledRing
	minutes *ledRing
	panel   *GridPanel
	buttons *pinButtons
	rtc     *dsRTC
}

// New wires up the physical board.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})

	machine.LED.Configure(machine.PinConfig{Mode: machine.PinOutput})
	pinHoursRing.Configure(machine.PinConfig{Mode: machine.PinOutput})
	pinMinutesRing.Configure(machine.PinConfig{Mode: machine.PinOutput})
	pinButtonMode.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	pinButtonSet.Configure(machine.PinConfig{Mode: machine.PinInputPullup})

	machine.I2C0.Configure(machine.I2CConfig{
		SDA:       machine.GP4,
		SCL:       machine.GP5,
		Frequency: 400 * machine.KHz,
	})

	oled := ssd1306.NewI2C(machine.I2C0)
	oled.Configure(ssd1306.Config{Width: 128, Height: 64, Address: 0x3C, VccState: ssd1306.SWITCHCAPVCC})
	oled.ClearBuffer()
	oled.ClearDisplay()

	return &boardHAL{
		logger:  &uartLogger{uart: uart},
		led:     &pinLED{pin: machine.LED},
		hours:   newLEDRing(pinHoursRing, HoursRingLen),
		minutes: newLEDRing(pinMinutesRing, MinutesRingLen),
		panel:   NewGridPanel(&oled),
		buttons: &pinButtons{mode: pinButtonMode, set: pinButtonSet},
		rtc:     &dsRTC{dev: ds3231.New(machine.I2C0)},
	}
}

func (h *boardHAL) Logger() Logger               { return h.logger }
func (h *boardHAL) LED() LED                     { return h.led }
func (h *boardHAL) Rings() (hours, minutes Ring) { return h.hours, h.minutes }
func (h *boardHAL) Panel() TextPanel             { return h.panel }
func (h *boardHAL) Buttons() Buttons             { return h.buttons }
func (h *boardHAL) RTC() RTC                     { return h.rtc }
func (h *boardHAL) Clock() Clock                 { return hwClock{} }
