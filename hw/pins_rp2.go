//go:build rp2040 || rp2350

package hw

import "machine"

// BoardPins wires peripherals to pins for one board build.
type BoardPins struct {
	// DHT22 data line.
	DHT machine.Pin

	// MAX7219 display on SPI0.
	DisplaySCK  machine.Pin
	DisplaySDO  machine.Pin
	DisplayLoad machine.Pin

	// AT24Cxx settings EEPROM on I2C0.
	EEPROMSDA machine.Pin
	EEPROMSCL machine.Pin

	// Buttons, pressed == low (pull-up).
	ButtonMode machine.Pin
	ButtonSet  machine.Pin

	// Humidifier relay, active-low.
	Relay machine.Pin

	// Debug UART (uart1).
	DebugTX machine.Pin
	DebugRX machine.Pin
}

// DefaultPins is the wiring of the reference build (Raspberry Pi Pico).
func DefaultPins() BoardPins {
	return BoardPins{
		DHT: machine.GP15,

		DisplaySCK:  machine.GP18,
		DisplaySDO:  machine.GP19,
		DisplayLoad: machine.GP17,

		EEPROMSDA: machine.GP12,
		EEPROMSCL: machine.GP13,

		ButtonMode: machine.GP10,
		ButtonSet:  machine.GP11,

		Relay: machine.GP22,

		DebugTX: machine.GP4,
		DebugRX: machine.GP5,
	}
}
