package hw

// OutPin is the raw output surface. machine.Pin satisfies it directly.
type OutPin interface {
	Set(level bool)
}

// The humidifier relay module is wired active-low: pulling the pin low
// energizes the coil. The inversion lives here and nowhere else; everything
// above this wrapper reasons in "energized" terms.
const relayActiveLow = true

// ActiveLowPin adapts a raw pin to the controller's logical OutputPin port.
type ActiveLowPin struct {
	pin OutPin
}

func NewActiveLowPin(p OutPin) *ActiveLowPin { return &ActiveLowPin{pin: p} }

func (a *ActiveLowPin) Set(on bool) {
	level := on
	if relayActiveLow {
		level = !level
	}
	a.pin.Set(level)
}
