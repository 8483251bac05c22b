package panel

import (
	"hygropanel-go/types"
	"hygropanel-go/x/mathx"
)

// Frame is the complete display image: one segment bitmask per digit.
// Index 0 holds position 1 (rightmost), index 7 position 8 (leftmost).
type Frame [types.NumDigits]byte

func (f *Frame) set(pos uint8, mask byte) { f[pos-1] = mask }

// at returns the mask at a 1-based position. Test/debug helper.
func (f Frame) at(pos uint8) byte { return f[pos-1] }

// String renders the frame left to right as ASCII. Debug/simulator use only.
func (f Frame) String() string {
	var b [types.NumDigits]byte
	for i := 0; i < types.NumDigits; i++ {
		b[i] = glyphChar(f[types.NumDigits-1-i])
	}
	return string(b[:])
}

const blinkPeriodMs = 1000

// BlinkPhase reports whether nowMs falls in the second half of the 1 s blink
// cycle anchored at the last mode change. It must be recomputed per render.
func BlinkPhase(nowMs, anchorMs int64) bool {
	d := (nowMs - anchorMs) % blinkPeriodMs
	if d < 0 {
		d += blinkPeriodMs
	}
	return d >= blinkPeriodMs/2
}

// signStyle selects what the value positions show during the second half of
// the blink cycle.
type signStyle uint8

const (
	signUnits signStyle = iota // "°C" / "rH"
	signLow                    // minimum marker
	signHigh                   // maximum marker
)

// Render maps the full device state to a display frame. Pure: the same inputs
// always produce the same frame.
func Render(mode Mode, live, min, max types.Reading, s Settings, blink bool) Frame {
	var f Frame
	switch mode {
	case ModeLive:
		renderReading(&f, live, signUnits, blink)
	case ModeMin:
		renderReading(&f, min, signLow, blink)
	case ModeMax:
		renderReading(&f, max, signHigh, blink)
	case ModeHumidifier:
		renderEnabled(&f, s.Enabled)
	case ModeLowerOn:
		renderThreshold(&f, s.LowerOn, markerLow, blink)
	case ModeUpperOff:
		renderThreshold(&f, s.UpperOff, markerHigh, blink)
	}
	return f
}

// renderReading shows temperature at positions 6,5 and humidity at 2,1;
// positions 8,7,4,3 stay blank (the reset sweep reuses them). The second half
// of the blink cycle swaps the digits for their sign pair: "°C"/"rH" in live
// mode, the extremum marker in min/max.
func renderReading(f *Frame, r types.Reading, style signStyle, blink bool) {
	if !blink {
		writeValue(f, 5, r.TempC)
		writeValue(f, 1, r.Humidity)
		return
	}
	switch style {
	case signLow:
		f.set(6, markerLow)
		f.set(5, markerLow)
		f.set(2, markerLow)
		f.set(1, markerLow)
	case signHigh:
		f.set(6, markerHigh)
		f.set(5, markerHigh)
		f.set(2, markerHigh)
		f.set(1, markerHigh)
	default:
		f.set(6, glyphDegree)
		f.set(5, glyphC)
		f.set(2, glyphR)
		f.set(1, glyphH)
	}
}

// renderEnabled spells the prefix word on the left quad and the switch state
// right-aligned on the right quad.
func renderEnabled(f *Frame, on bool) {
	writePrefix(f)
	if on {
		f.set(2, glyphO)
		f.set(1, glyphN)
	} else {
		f.set(3, glyphO)
		f.set(2, glyphF)
		f.set(1, glyphF)
	}
}

// renderThreshold keeps the threshold value legible at the rightmost two
// digits while positions 4,3 alternate between the "rH" label and the
// mode marker.
func renderThreshold(f *Frame, v uint8, marker byte, blink bool) {
	writePrefix(f)
	if blink {
		f.set(4, marker)
		f.set(3, marker)
	} else {
		f.set(4, glyphR)
		f.set(3, glyphH)
	}
	writeValue(f, 1, int(v))
}

// writePrefix spells "HYdr" across the left quad (positions 8..5).
func writePrefix(f *Frame) {
	f.set(8, glyphH)
	f.set(7, glyphY)
	f.set(6, glyphD)
	f.set(5, glyphR)
}

// writeValue is the shared two-digit renderer: tens at right+1, units at
// right. Values are clamped to [0,99] for display; values below 10 keep the
// leading "0" glyph (no leading-zero suppression).
func writeValue(f *Frame, right uint8, v int) {
	v = mathx.Clamp(v, 0, 99)
	f.set(right+1, digitFont[v/10])
	f.set(right, digitFont[v%10])
}
