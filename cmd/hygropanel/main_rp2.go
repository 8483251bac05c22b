//go:build rp2040 || rp2350

package main

import (
	"machine"
	"time"

	"hygropanel-go/diag"
	"hygropanel-go/hw"
	"hygropanel-go/panel"
	"hygropanel-go/types"
	"hygropanel-go/x/timex"
)

const loopTick = 5 * time.Millisecond

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("boot")

	pins := hw.DefaultPins()
	hw.EnableDebugUART(pins)

	// Display on SPI0.
	_ = machine.SPI0.Configure(machine.SPIConfig{
		Frequency: 8_000_000,
		SCK:       pins.DisplaySCK,
		SDO:       pins.DisplaySDO,
	})
	display := hw.NewMAX7219Display(machine.SPI0, pins.DisplayLoad)

	// Settings EEPROM on I2C0.
	_ = machine.I2C0.Configure(machine.I2CConfig{
		SDA: pins.EEPROMSDA,
		SCL: pins.EEPROMSCL,
	})
	store := hw.NewRecordStore(machine.I2C0)

	sensor := hw.NewDHT22Sensor(pins.DHT)

	pins.ButtonMode.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	pins.ButtonSet.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	btnMode := hw.NewDebouncer(types.ButtonMode, pins.ButtonMode, true, hw.DefaultDebounceMs)
	btnSet := hw.NewDebouncer(types.ButtonSet, pins.ButtonSet, true, hw.DefaultDebounceMs)

	pins.Relay.Configure(machine.PinConfig{Mode: machine.PinOutput})
	relay := hw.NewActiveLowPin(pins.Relay)
	relay.Set(false) // park de-energized before the controller takes over

	ctl, err := panel.New(panel.Config{
		Sensor:  sensor,
		Display: display,
		Store:   store,
		Relay:   relay,
	})
	if err != nil {
		diag.Error("[main] controller init failed:", err.Error())
		panel.Distress(display, panel.WallClock(), 0)
	}

	for {
		now := timex.NowMs()
		if ev, ok := btnMode.Poll(now); ok {
			ctl.OnPress(ev, now)
		}
		if ev, ok := btnSet.Poll(now); ok {
			ctl.OnPress(ev, now)
		}
		ctl.Tick(now)
		time.Sleep(loopTick)
	}
}
