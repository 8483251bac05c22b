package panel

import (
	"hygropanel-go/types"
	"hygropanel-go/x/mathx"
)

// Tracker holds the live reading plus component-wise extrema of every sample
// seen since boot (or since the user last reset them).
type Tracker struct {
	Live types.Reading
	Min  types.Reading
	Max  types.Reading

	seeded bool
}

// Observe records a new live sample. The very first sample seeds min and max;
// afterwards extrema only move outward. Re-observing an identical reading is
// a no-op for the extrema.
func (t *Tracker) Observe(r types.Reading) {
	t.Live = r
	if !t.seeded {
		t.Min, t.Max = r, r
		t.seeded = true
		return
	}
	t.Min.TempC = mathx.Min(t.Min.TempC, r.TempC)
	t.Min.Humidity = mathx.Min(t.Min.Humidity, r.Humidity)
	t.Max.TempC = mathx.Max(t.Max.TempC, r.TempC)
	t.Max.Humidity = mathx.Max(t.Max.Humidity, r.Humidity)
}

func (t *Tracker) Seeded() bool { return t.seeded }

// ResetMin overwrites the minimum with the current live reading.
func (t *Tracker) ResetMin() { t.Min = t.Live }

// ResetMax overwrites the maximum with the current live reading.
func (t *Tracker) ResetMax() { t.Max = t.Live }
