package panel

import (
	"time"

	"hygropanel-go/types"
	"hygropanel-go/x/timex"
)

// Collaborator ports. The controller only ever talks to peripherals through
// these, so the whole core runs under `go test` with hand-rolled fakes.

// Sensor delivers rounded integer readings. Implementations must withhold the
// reading entirely (return an error) when the underlying read failed; the
// core has no invalid-reading sentinel.
type Sensor interface {
	Read() (types.Reading, error)
	// MinInterval is the hardware's minimum sampling period.
	MinInterval() time.Duration
}

// Display is an 8-digit seven-segment sink. Positions are 1 (rightmost) to 8.
type Display interface {
	WriteDigit(pos uint8, segments byte)
	SetBrightness(level uint8)
	PowerOn()
	PowerOff()
}

// Store is non-volatile storage for the fixed-size settings record.
type Store interface {
	ReadRecord(buf []byte) error
	WriteRecord(buf []byte) error
}

// OutputPin is a boolean sink in logical "energized" terms. Electrical
// polarity is the adaptor's problem, not the controller's.
type OutputPin interface {
	Set(on bool)
}

// Clock supplies loop time and the bounded waits used by the reset animation.
type Clock interface {
	NowMs() int64
	SleepMs(ms int)
}

type wallClock struct{}

func (wallClock) NowMs() int64 { return timex.NowMs() }
func (wallClock) SleepMs(ms int) {
	time.Sleep(time.Duration(ms) * time.Millisecond)
}

// WallClock returns the real-time Clock used on hardware.
func WallClock() Clock { return wallClock{} }
