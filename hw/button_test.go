package hw

import (
	"testing"

	"hygropanel-go/types"
)

type fakePin struct{ level bool }

func (p *fakePin) Get() bool { return p.level }

func mustNone(t *testing.T, b *Debouncer, nowMs int64) {
	t.Helper()
	if _, ok := b.Poll(nowMs); ok {
		t.Fatalf("unexpected event at t=%d", nowMs)
	}
}

func TestDebouncerFiresOncePerPress(t *testing.T) {
	pin := &fakePin{}
	b := NewDebouncer(types.ButtonMode, pin, false, 20)

	mustNone(t, b, 0) // prime with the idle level

	pin.level = true
	mustNone(t, b, 10) // raw edge
	mustNone(t, b, 15) // inside the window
	mustNone(t, b, 30) // press becomes stable, no event yet

	pin.level = false
	mustNone(t, b, 100) // raw edge
	mustNone(t, b, 110) // inside the window

	ev, ok := b.Poll(120)
	if !ok {
		t.Fatal("no event on debounced release")
	}
	if ev.ID != types.ButtonMode {
		t.Fatalf("event id = %d, want mode button", ev.ID)
	}
	if ev.HeldMs != 90 {
		t.Fatalf("held = %dms, want 90", ev.HeldMs)
	}

	mustNone(t, b, 130) // no repeat while idle
}

func TestDebouncerFiltersBounce(t *testing.T) {
	pin := &fakePin{}
	b := NewDebouncer(types.ButtonSet, pin, false, 20)
	mustNone(t, b, 0)

	// Contact chatter on the press edge: the window restarts at each flip.
	pin.level = true
	mustNone(t, b, 10)
	pin.level = false
	mustNone(t, b, 14)
	pin.level = true
	mustNone(t, b, 18)
	mustNone(t, b, 30) // only 12ms since the last flip
	mustNone(t, b, 38) // stable press

	pin.level = false
	mustNone(t, b, 200)
	ev, ok := b.Poll(225)
	if !ok {
		t.Fatal("no event after bouncy press settled")
	}
	if ev.HeldMs != 225-38 {
		t.Fatalf("held = %dms, want %d", ev.HeldMs, 225-38)
	}
}

func TestDebouncerIgnoresSpikes(t *testing.T) {
	pin := &fakePin{}
	b := NewDebouncer(types.ButtonMode, pin, false, 20)
	mustNone(t, b, 0)

	// A spike shorter than the window never becomes a stable press.
	pin.level = true
	mustNone(t, b, 10)
	pin.level = false
	mustNone(t, b, 15)
	for t0 := int64(20); t0 <= 120; t0 += 5 {
		mustNone(t, b, t0)
	}
}

func TestDebouncerInvertedWiring(t *testing.T) {
	pin := &fakePin{level: true} // pull-up idle
	b := NewDebouncer(types.ButtonSet, pin, true, 20)
	mustNone(t, b, 0)

	pin.level = false // pressed pulls the line low
	mustNone(t, b, 10)
	mustNone(t, b, 30)

	pin.level = true
	mustNone(t, b, 80)
	ev, ok := b.Poll(100)
	if !ok {
		t.Fatal("no event for inverted wiring")
	}
	if ev.ID != types.ButtonSet || ev.HeldMs != 70 {
		t.Fatalf("event = %+v, want set button held 70ms", ev)
	}
}

func TestDebouncerAdoptsBootLevel(t *testing.T) {
	// A button held at power-on must not report a phantom press.
	pin := &fakePin{level: true}
	b := NewDebouncer(types.ButtonMode, pin, false, 20)
	mustNone(t, b, 0)
	mustNone(t, b, 50)
	mustNone(t, b, 100)
}
