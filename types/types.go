package types

// ------------------------
// Sensor readings
// ------------------------

// Reading is one temperature/humidity sample, rounded to integer units
// (°C and %RH). The sensor adaptor owns the rounding; the core never sees
// fractional values.
type Reading struct {
	TempC    int
	Humidity int
}

// ------------------------
// Buttons
// ------------------------

type ButtonID uint8

const (
	// ButtonMode advances the display mode.
	ButtonMode ButtonID = iota
	// ButtonSet triggers the primary action of the current mode.
	ButtonSet
)

// ButtonEvent is an edge event delivered after hardware debounce.
// It fires on release; HeldMs is how long the button was held down.
type ButtonEvent struct {
	ID     ButtonID
	HeldMs int64
}

// ------------------------
// Display geometry
// ------------------------

// NumDigits is the fixed width of the seven-segment display.
// Digit positions are numbered 1 (rightmost) to 8 (leftmost).
const NumDigits = 8
