//go:build rp2040 || rp2350

package hw

import (
	"machine"
	"time"

	"tinygo.org/x/drivers/dht"

	"hygropanel-go/errcode"
	"hygropanel-go/types"
)

// DHT22 datasheet minimum sampling period.
const dhtMinInterval = 2 * time.Second

// DHT22Sensor adapts the single-wire DHT22 driver to the controller's
// Sensor port.
type DHT22Sensor struct {
	dev dht.DummyDevice
}

func NewDHT22Sensor(pin machine.Pin) *DHT22Sensor {
	return &DHT22Sensor{dev: dht.New(pin, dht.DHT22)}
}

func (s *DHT22Sensor) MinInterval() time.Duration { return dhtMinInterval }

// Read samples the sensor and rounds deci-units to whole °C / %RH. On any
// driver failure the reading is withheld entirely.
func (s *DHT22Sensor) Read() (types.Reading, error) {
	if err := s.dev.ReadMeasurements(); err != nil {
		return types.Reading{}, &errcode.E{C: errcode.SensorRead, Op: "dht.read", Err: err}
	}
	t, err := s.dev.Temperature()
	if err != nil {
		return types.Reading{}, &errcode.E{C: errcode.SensorRead, Op: "dht.temperature", Err: err}
	}
	h, err := s.dev.Humidity()
	if err != nil {
		return types.Reading{}, &errcode.E{C: errcode.SensorRead, Op: "dht.humidity", Err: err}
	}
	return types.Reading{
		TempC:    roundDeci(int(t)),
		Humidity: roundDeci(int(h)),
	}, nil
}
