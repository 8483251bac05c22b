package panel

// Relay is the humidifier hysteresis state. Two thresholds prevent on/off
// chatter near a single setpoint: the relay latches on at low humidity and
// only releases once humidity has climbed to the upper threshold.
type Relay struct {
	on bool
}

// Update advances the hysteresis from a live humidity sample.
func (r *Relay) Update(humidity int, s Settings) {
	switch {
	case !r.on && humidity <= int(s.LowerOn):
		r.on = true
	case r.on && humidity >= int(s.UpperOff):
		r.on = false
	}
}

// On reports the raw hysteresis state, ignoring the enable switch.
func (r *Relay) On() bool { return r.on }

// Energized reports whether the physical output should be driven: hysteresis
// state gated by the user enable switch. Electrical polarity lives in the
// output adaptor.
func (r *Relay) Energized(s Settings) bool { return r.on && s.Enabled }
