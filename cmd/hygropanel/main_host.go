//go:build !rp2040 && !rp2350

package main

// Host simulator. Runs the controller against a scripted sensor, an
// in-memory store and an ASCII display so the full mode cycle can be
// exercised without hardware. The firmware entry lives in main_rp2.go.

import (
	"fmt"
	"time"

	"hygropanel-go/panel"
	"hygropanel-go/types"
	"hygropanel-go/x/timex"
)

func main() {
	display := &consoleDisplay{}
	ctl, err := panel.New(panel.Config{
		Sensor:  &simSensor{},
		Display: display,
		Store:   &memStore{}, // blank: exercises the first-run defaults path
		Relay:   &consoleRelay{},
	})
	if err != nil {
		fmt.Println("init failed:", err)
		return
	}

	// Walk every mode, pressing the set button twice in each.
	start := timex.NowMs()
	var lastMode, lastSet, lastPrint int64
	for timex.NowMs()-start < 30_000 {
		now := timex.NowMs()
		el := now - start
		if el-lastMode >= 4000 {
			ctl.OnPress(types.ButtonEvent{ID: types.ButtonMode, HeldMs: 40}, now)
			fmt.Println("-- mode:", ctl.Mode().String())
			lastMode = el
		}
		if el-lastSet >= 1700 {
			ctl.OnPress(types.ButtonEvent{ID: types.ButtonSet, HeldMs: 40}, now)
			lastSet = el
		}
		ctl.Tick(now)
		if el-lastPrint >= 500 {
			fmt.Printf("[%s]\n", display.frame)
			lastPrint = el
		}
		time.Sleep(20 * time.Millisecond)
	}
	fmt.Println("settings:", fmt.Sprintf("%+v", ctl.Settings()))
}

// simSensor drifts humidity across the default thresholds so the relay
// hysteresis is visible.
type simSensor struct{ n int }

func (s *simSensor) MinInterval() time.Duration { return 2 * time.Second }

func (s *simSensor) Read() (types.Reading, error) {
	s.n++
	return types.Reading{
		TempC:    21 + s.n%4,
		Humidity: 74 + (s.n*7)%26,
	}, nil
}

type consoleDisplay struct {
	frame panel.Frame
}

func (d *consoleDisplay) WriteDigit(pos uint8, segments byte) {
	d.frame[pos-1] = segments
}
func (d *consoleDisplay) SetBrightness(level uint8) {
	fmt.Println("-- brightness:", level)
}
func (d *consoleDisplay) PowerOn()  {}
func (d *consoleDisplay) PowerOff() {}

type memStore struct {
	rec [panel.RecordLen]byte
}

func (m *memStore) ReadRecord(buf []byte) error {
	copy(buf, m.rec[:])
	return nil
}
func (m *memStore) WriteRecord(buf []byte) error {
	copy(m.rec[:], buf)
	return nil
}

type consoleRelay struct{ on bool }

func (r *consoleRelay) Set(on bool) {
	if on != r.on {
		r.on = on
		fmt.Println("-- relay:", on)
	}
}
