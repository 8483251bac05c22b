package hw

// roundDeci rounds tenths-of-a-unit to the nearest whole unit, away from
// zero on ties. Sensor drivers report deci-°C / deci-%RH; the core only
// handles integers.
func roundDeci(v int) int {
	if v >= 0 {
		return (v + 5) / 10
	}
	return (v - 5) / 10
}
