package panel

import (
	"encoding/binary"

	"hygropanel-go/diag"
	"hygropanel-go/errcode"
)

// Persisted record layout (little-endian, RecordLen bytes):
//
//	uint32 magic | uint8 lowerOn | uint8 upperOff | uint8 enabled
//
// The layout must stay byte-stable across firmware versions; bump the magic
// when it changes.
const (
	settingsMagic uint32 = 0x48594731 // "HYG1"
	RecordLen            = 7
)

// Threshold mutation policy. Floor and ceiling are defined together so they
// cannot drift apart; the wrap arithmetic is what keeps lower < upper.
const (
	thresholdStep = 2
	lowerFloor    = 60
	upperCeil     = 100 - thresholdStep
)

// Settings is the user configuration mirrored from non-volatile storage.
type Settings struct {
	Enabled  bool  // humidifier control enabled
	LowerOn  uint8 // relay switches on at humidity <= LowerOn
	UpperOff uint8 // relay switches off at humidity >= UpperOff
}

func DefaultSettings() Settings {
	return Settings{Enabled: true, LowerOn: 80, UpperOff: 96}
}

func (s Settings) encode(buf []byte) {
	binary.LittleEndian.PutUint32(buf[0:4], settingsMagic)
	buf[4] = s.LowerOn
	buf[5] = s.UpperOff
	if s.Enabled {
		buf[6] = 1
	} else {
		buf[6] = 0
	}
}

func decodeRecord(buf []byte) (Settings, bool) {
	if binary.LittleEndian.Uint32(buf[0:4]) != settingsMagic {
		return Settings{}, false
	}
	return Settings{
		LowerOn:  buf[4],
		UpperOff: buf[5],
		Enabled:  buf[6] != 0,
	}, true
}

// LoadSettings reads the persisted record. A magic mismatch means first run
// or corruption: the store is overwritten with defaults and re-read. That is
// the only write LoadSettings ever performs.
func LoadSettings(st Store) (Settings, error) {
	var buf [RecordLen]byte
	if err := st.ReadRecord(buf[:]); err != nil {
		return DefaultSettings(), err
	}
	if s, ok := decodeRecord(buf[:]); ok {
		return s, nil
	}

	diag.Warn("[panel] settings magic mismatch, writing defaults")
	def := DefaultSettings()
	var out [RecordLen]byte
	def.encode(out[:])
	if err := st.WriteRecord(out[:]); err != nil {
		return def, err
	}
	if err := st.ReadRecord(buf[:]); err != nil {
		return def, err
	}
	s, ok := decodeRecord(buf[:])
	if !ok {
		return def, errcode.BadRecord
	}
	return s, nil
}

// SaveSettings writes the full record synchronously. Mutations are rare
// (button presses), so there is no batching.
func SaveSettings(st Store, s Settings) error {
	var buf [RecordLen]byte
	s.encode(buf[:])
	return st.WriteRecord(buf[:])
}

// BumpLower advances the switch-on threshold by one step. Reaching or passing
// the switch-off threshold wraps back to the floor.
func (s *Settings) BumpLower() {
	v := s.LowerOn + thresholdStep
	if v >= s.UpperOff {
		v = lowerFloor
	}
	s.LowerOn = v
}

// BumpUpper advances the switch-off threshold by one step. Passing the
// ceiling wraps to one step above the switch-on threshold.
func (s *Settings) BumpUpper() {
	v := s.UpperOff + thresholdStep
	if v > upperCeil {
		v = s.LowerOn + thresholdStep
	}
	s.UpperOff = v
}
