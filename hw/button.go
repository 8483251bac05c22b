package hw

import "hygropanel-go/types"

// InputPin is the raw level source a Debouncer samples. machine.Pin
// satisfies it directly on MCU builds.
type InputPin interface {
	Get() bool
}

// DefaultDebounceMs is the polled debounce window.
const DefaultDebounceMs = 20

// Debouncer turns a raw polled input into jitter-filtered button events.
// Call Poll every loop iteration; an event is reported exactly once per
// press/release pair, on the debounced release edge, carrying the held
// duration.
type Debouncer struct {
	pin        InputPin
	id         types.ButtonID
	invert     bool // true if pressed reads low (pull-up wiring)
	debounceMs int64

	primed      bool
	raw         bool
	rawSinceMs  int64
	stable      bool
	pressedAtMs int64
}

func NewDebouncer(id types.ButtonID, pin InputPin, invert bool, debounceMs int64) *Debouncer {
	if debounceMs <= 0 {
		debounceMs = DefaultDebounceMs
	}
	return &Debouncer{pin: pin, id: id, invert: invert, debounceMs: debounceMs}
}

func (b *Debouncer) logicalPressed(level bool) bool {
	if b.invert {
		return !level
	}
	return level
}

// Poll samples the pin once.
func (b *Debouncer) Poll(nowMs int64) (types.ButtonEvent, bool) {
	lvl := b.logicalPressed(b.pin.Get())

	if !b.primed {
		// Adopt the boot-time level without emitting an event.
		b.raw, b.stable = lvl, lvl
		b.rawSinceMs = nowMs
		b.primed = true
		return types.ButtonEvent{}, false
	}

	if lvl != b.raw {
		b.raw = lvl
		b.rawSinceMs = nowMs
		return types.ButtonEvent{}, false
	}

	if b.raw == b.stable || nowMs-b.rawSinceMs < b.debounceMs {
		return types.ButtonEvent{}, false
	}

	b.stable = b.raw
	if b.stable {
		b.pressedAtMs = nowMs
		return types.ButtonEvent{}, false
	}
	return types.ButtonEvent{ID: b.id, HeldMs: nowMs - b.pressedAtMs}, true
}
