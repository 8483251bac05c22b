package panel

// Mode is the currently selected display/edit screen. Exactly one mode is
// active at a time; the next-mode button advances cyclically.
type Mode uint8

const (
	ModeLive Mode = iota
	ModeMin
	ModeMax
	ModeHumidifier
	ModeLowerOn
	ModeUpperOff

	modeCount
)

func (m Mode) next() Mode { return (m + 1) % modeCount }

func (m Mode) String() string {
	switch m {
	case ModeLive:
		return "live"
	case ModeMin:
		return "min"
	case ModeMax:
		return "max"
	case ModeHumidifier:
		return "humidifier"
	case ModeLowerOn:
		return "lower_on"
	case ModeUpperOff:
		return "upper_off"
	default:
		return "invalid"
	}
}
