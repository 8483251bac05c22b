package panel

import (
	"time"

	"hygropanel-go/errcode"
	"hygropanel-go/types"
)

// Hand-rolled fakes for the collaborator ports.

type fakeClock struct{ ms int64 }

func (c *fakeClock) NowMs() int64   { return c.ms }
func (c *fakeClock) SleepMs(ms int) { c.ms += int64(ms) }

type digitWrite struct {
	pos  uint8
	mask byte
}

type fakeDisplay struct {
	frame      Frame
	writes     []digitWrite
	brightness []uint8
	on         bool
}

func (d *fakeDisplay) WriteDigit(pos uint8, segments byte) {
	d.frame[pos-1] = segments
	d.writes = append(d.writes, digitWrite{pos: pos, mask: segments})
}
func (d *fakeDisplay) SetBrightness(level uint8) { d.brightness = append(d.brightness, level) }
func (d *fakeDisplay) PowerOn()                  { d.on = true }
func (d *fakeDisplay) PowerOff()                 { d.on = false }

type fakeStore struct {
	rec    [RecordLen]byte
	writes int
}

func (s *fakeStore) ReadRecord(buf []byte) error {
	copy(buf, s.rec[:])
	return nil
}
func (s *fakeStore) WriteRecord(buf []byte) error {
	copy(s.rec[:], buf)
	s.writes++
	return nil
}

func storeWith(s Settings) *fakeStore {
	st := &fakeStore{}
	s.encode(st.rec[:])
	return st
}

// scriptSensor replays a fixed list of readings, holding the last one.
type scriptSensor struct {
	readings []types.Reading
	interval time.Duration
	fail     bool

	i     int
	reads int
}

func (s *scriptSensor) MinInterval() time.Duration {
	if s.interval == 0 {
		return 2 * time.Second
	}
	return s.interval
}

func (s *scriptSensor) Read() (types.Reading, error) {
	s.reads++
	if s.fail || len(s.readings) == 0 {
		return types.Reading{}, errcode.SensorRead
	}
	r := s.readings[s.i]
	if s.i < len(s.readings)-1 {
		s.i++
	}
	return r, nil
}

type fakeRelayPin struct{ sets []bool }

func (p *fakeRelayPin) Set(on bool) { p.sets = append(p.sets, on) }
func (p *fakeRelayPin) last() bool {
	if len(p.sets) == 0 {
		return false
	}
	return p.sets[len(p.sets)-1]
}

type rig struct {
	ctl     *Controller
	clock   *fakeClock
	display *fakeDisplay
	store   *fakeStore
	sensor  *scriptSensor
	relay   *fakeRelayPin
}

func newRig(sensor *scriptSensor, store *fakeStore) *rig {
	r := &rig{
		clock:   &fakeClock{},
		display: &fakeDisplay{},
		store:   store,
		sensor:  sensor,
		relay:   &fakeRelayPin{},
	}
	ctl, err := New(Config{
		Sensor:  sensor,
		Display: r.display,
		Store:   store,
		Relay:   r.relay,
		Clock:   r.clock,
	})
	if err != nil {
		panic(err)
	}
	r.ctl = ctl
	return r
}

func (r *rig) pressMode(n int) {
	for i := 0; i < n; i++ {
		r.ctl.OnPress(types.ButtonEvent{ID: types.ButtonMode, HeldMs: 40}, r.clock.ms)
	}
}

func (r *rig) pressSet() {
	r.ctl.OnPress(types.ButtonEvent{ID: types.ButtonSet, HeldMs: 40}, r.clock.ms)
}
