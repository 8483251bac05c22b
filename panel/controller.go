// Package panel implements the mode/display state machine of the
// thermo-hygrometer: the mapping from mode, sensor data, persisted settings
// and elapsed time to display frames, and the button-driven transitions that
// edit settings and drive the humidifier relay.
package panel

import (
	"time"

	"hygropanel-go/diag"
	"hygropanel-go/errcode"
	"hygropanel-go/types"
)

// Display brightness levels toggled from live mode.
const (
	brightLevel uint8 = 8
	dimLevel    uint8 = 0
)

// fallbackSampleMs is used when a sensor reports no interval hint.
const fallbackSampleMs = 1000

// Config carries the collaborators into New. Clock may be nil (wall clock).
type Config struct {
	Sensor  Sensor
	Display Display
	Store   Store
	Relay   OutputPin
	Clock   Clock
}

// Controller owns every piece of mutable device state: current mode, sensor
// extrema, persisted settings, relay flag, blink anchor. All mutation happens
// from the poll loop goroutine, so there is no locking anywhere.
type Controller struct {
	sensor   Sensor
	display  Display
	store    Store
	relayOut OutputPin
	clock    Clock

	settings Settings
	track    Tracker
	relay    Relay

	mode           Mode
	modeSelectedMs int64

	bright        bool
	sampleEveryMs int64
	lastSampleMs  int64
	samplePrimed  bool

	frame     Frame
	haveFrame bool
}

// New loads settings (resetting the store to defaults on first run or
// corruption), powers the display and parks the relay off.
func New(cfg Config) (*Controller, error) {
	if cfg.Sensor == nil || cfg.Display == nil || cfg.Store == nil || cfg.Relay == nil {
		return nil, errcode.InvalidParams
	}
	if cfg.Clock == nil {
		cfg.Clock = WallClock()
	}

	c := &Controller{
		sensor:   cfg.Sensor,
		display:  cfg.Display,
		store:    cfg.Store,
		relayOut: cfg.Relay,
		clock:    cfg.Clock,
		bright:   true,
	}

	c.sampleEveryMs = int64(cfg.Sensor.MinInterval() / time.Millisecond)
	if c.sampleEveryMs <= 0 {
		c.sampleEveryMs = fallbackSampleMs
	}

	s, err := LoadSettings(cfg.Store)
	if err != nil {
		// Keep operating on defaults; the store may still accept writes later.
		diag.Error("[panel] settings load failed:", string(errcode.Of(err)))
	}
	c.settings = s

	c.display.PowerOn()
	c.display.SetBrightness(brightLevel)
	c.relayOut.Set(false)
	c.modeSelectedMs = c.clock.NowMs()
	return c, nil
}

func (c *Controller) Mode() Mode         { return c.mode }
func (c *Controller) Settings() Settings { return c.settings }
func (c *Controller) RelayOn() bool      { return c.relay.On() }

// Tick runs one poll-loop iteration: sample the sensor when its interval has
// elapsed, advance the relay, and re-render with a freshly computed blink
// phase.
func (c *Controller) Tick(nowMs int64) {
	if !c.samplePrimed || nowMs-c.lastSampleMs >= c.sampleEveryMs {
		if r, err := c.sensor.Read(); err == nil {
			c.track.Observe(r)
			c.relay.Update(r.Humidity, c.settings)
			c.applyRelay()
		} else {
			diag.Error("[panel] sensor read failed:", string(errcode.Of(err)))
		}
		// Advance even on failure so a broken sensor is retried at the
		// sampling rate, not every loop iteration.
		c.samplePrimed = true
		c.lastSampleMs = nowMs
	}
	c.render(nowMs)
}

// OnPress consumes one debounced button event.
func (c *Controller) OnPress(ev types.ButtonEvent, nowMs int64) {
	switch ev.ID {
	case types.ButtonMode:
		c.advance(nowMs)
	case types.ButtonSet:
		c.primaryAction(nowMs)
	}
}

func (c *Controller) advance(nowMs int64) {
	c.mode = c.mode.next()
	c.modeSelectedMs = nowMs // restart blinking in phase
	c.render(nowMs)
}

func (c *Controller) primaryAction(nowMs int64) {
	switch c.mode {
	case ModeLive:
		c.bright = !c.bright
		if c.bright {
			c.display.SetBrightness(brightLevel)
		} else {
			c.display.SetBrightness(dimLevel)
		}
	case ModeMin:
		c.track.ResetMin()
		c.playAnim(sweepMin, nowMs)
	case ModeMax:
		c.track.ResetMax()
		c.playAnim(sweepMax, nowMs)
	case ModeHumidifier:
		c.settings.Enabled = !c.settings.Enabled
		c.persist()
		c.applyRelay()
	case ModeLowerOn:
		c.settings.BumpLower()
		c.persist()
	case ModeUpperOff:
		c.settings.BumpUpper()
		c.persist()
	}
	// Every action ends with a frame reflecting the resulting state.
	c.render(nowMs)
}

func (c *Controller) playAnim(order [animFrames]byte, nowMs int64) {
	c.render(nowMs) // fresh snapshot underneath the sweep
	playResetAnim(c.display, c.clock, order)
	c.haveFrame = false // the sweep wrote raw digits; force a full rewrite
}

func (c *Controller) persist() {
	if err := SaveSettings(c.store, c.settings); err != nil {
		diag.Error("[panel] settings save failed:", string(errcode.Of(err)))
	}
}

func (c *Controller) applyRelay() {
	c.relayOut.Set(c.relay.Energized(c.settings))
}

func (c *Controller) render(nowMs int64) {
	blink := BlinkPhase(nowMs, c.modeSelectedMs)
	c.flush(Render(c.mode, c.track.Live, c.track.Min, c.track.Max, c.settings, blink))
}

// flush writes only the digits that changed since the last frame.
func (c *Controller) flush(f Frame) {
	for i := range f {
		if c.haveFrame && f[i] == c.frame[i] {
			continue
		}
		c.display.WriteDigit(uint8(i+1), f[i])
	}
	c.frame = f
	c.haveFrame = true
}
