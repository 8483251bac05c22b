package panel

// Segment bit layout follows the MAX7219 no-decode data format:
// D7=DP, D6=A, D5=B, D4=C, D3=D, D2=E, D1=F, D0=G.
const (
	segG byte = 1 << iota
	segF
	segE
	segD
	segC
	segB
	segA
	segDP
)

const glyphBlank byte = 0

// Numeric font. The blank pattern is NOT a valid digit here; two-digit values
// below 10 render a leading "0", never a leading blank.
var digitFont = [10]byte{
	segA | segB | segC | segD | segE | segF,        // 0
	segB | segC,                                    // 1
	segA | segB | segD | segE | segG,               // 2
	segA | segB | segC | segD | segG,               // 3
	segB | segC | segF | segG,                      // 4
	segA | segC | segD | segF | segG,               // 5
	segA | segC | segD | segE | segF | segG,        // 6
	segA | segB | segC,                             // 7
	segA | segB | segC | segD | segE | segF | segG, // 8
	segA | segB | segC | segD | segF | segG,        // 9
}

// Letter glyphs used by the fixed words and unit signs.
const (
	glyphDegree = segA | segB | segF | segG        // °
	glyphC      = segA | segD | segE | segF        // C
	glyphR      = segE | segG                      // r
	glyphH      = segB | segC | segE | segF | segG // H
	glyphY      = segB | segC | segD | segF | segG // Y
	glyphD      = segB | segC | segD | segE | segG // d
	glyphO      = segA | segB | segC | segD | segE | segF
	glyphN      = segC | segE | segG        // n
	glyphF      = segA | segE | segF | segG // F
	glyphE      = segA | segD | segE | segF | segG
)

// Extremum / threshold markers: top bar with the upper verticals points up,
// bottom bar with the lower verticals points down. Neither collides with the
// ° glyph (which carries segment G).
const (
	markerHigh = segA | segB | segF
	markerLow  = segC | segD | segE
)

// glyphChar is a best-effort reverse lookup for debug output and the host
// simulator. It is not part of the rendering contract.
func glyphChar(mask byte) byte {
	switch mask {
	case glyphBlank:
		return ' '
	case glyphDegree:
		return '*'
	case glyphC:
		return 'C'
	case glyphR:
		return 'r'
	case glyphH:
		return 'H'
	case glyphY:
		return 'Y'
	case glyphD:
		return 'd'
	case glyphN:
		return 'n'
	case glyphF:
		return 'F'
	case glyphE:
		return 'E'
	case markerHigh:
		return '^'
	case markerLow:
		return 'v'
	}
	for i, d := range digitFont {
		if mask == d {
			return byte('0' + i)
		}
	}
	return '?'
}
