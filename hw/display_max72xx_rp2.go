//go:build rp2040 || rp2350

package hw

import (
	"machine"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/max72xx"

	"hygropanel-go/types"
)

// MAX7219 intensity register range.
const maxIntensity = 15

// MAX7219Display adapts the 8-digit MAX7219 driver to the controller's
// Display port. The chip runs in no-decode mode; the controller supplies raw
// segment bitmasks.
type MAX7219Display struct {
	dev *max72xx.Device
}

// NewMAX7219Display wires the display on an already-configured SPI bus.
func NewMAX7219Display(bus drivers.SPI, load machine.Pin) *MAX7219Display {
	dev := max72xx.NewDevice(bus, load)
	dev.Configure()
	dev.StopDisplayTest()
	dev.SetDecodeMode(0) // raw segments, no BCD decode
	dev.SetScanLimit(types.NumDigits)
	dev.StopShutdownMode()
	return &MAX7219Display{dev: dev}
}

// WriteDigit writes a segment bitmask at position 1..8. The MAX7219 digit
// registers share the same numbering (REG_DIGIT0 == 0x01).
func (d *MAX7219Display) WriteDigit(pos uint8, segments byte) {
	if pos < 1 || pos > types.NumDigits {
		return
	}
	d.dev.WriteByte(pos, segments)
}

func (d *MAX7219Display) SetBrightness(level uint8) {
	if level > maxIntensity {
		level = maxIntensity
	}
	d.dev.SetIntensity(level)
}

func (d *MAX7219Display) PowerOn()  { d.dev.StopShutdownMode() }
func (d *MAX7219Display) PowerOff() { d.dev.StartShutdownMode() }
