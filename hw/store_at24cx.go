// Package hw adapts the physical peripherals (sensor, display, EEPROM,
// buttons, relay) to the controller's ports. One adaptor per device; the
// adaptors are thin and the polarity/rounding decisions live here.
package hw

import (
	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/at24cx"

	"hygropanel-go/errcode"
)

// The settings record lives at a fixed EEPROM offset.
const recordOffset = 0

// RecordStore keeps the fixed-size settings record on an AT24Cxx EEPROM.
type RecordStore struct {
	dev at24cx.Device
}

// NewRecordStore wires the EEPROM on an already-configured I2C bus.
func NewRecordStore(bus drivers.I2C) *RecordStore {
	dev := at24cx.New(bus)
	dev.Configure(at24cx.Config{})
	return &RecordStore{dev: dev}
}

func (s *RecordStore) ReadRecord(buf []byte) error {
	if _, err := s.dev.ReadAt(buf, recordOffset); err != nil {
		return &errcode.E{C: errcode.StoreRead, Op: "eeprom.read", Err: err}
	}
	return nil
}

func (s *RecordStore) WriteRecord(buf []byte) error {
	if _, err := s.dev.WriteAt(buf, recordOffset); err != nil {
		return &errcode.E{C: errcode.StoreWrite, Op: "eeprom.write", Err: err}
	}
	return nil
}
