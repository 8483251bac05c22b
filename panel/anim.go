package panel

// Reset-animation timing: six frames of 50 ms, ~300 ms total. The sweep is a
// deliberate bounded busy-wait; the poll loop stalls for its duration.
const (
	animFrames  = 6
	animFrameMs = 50
)

// The sweep runs over the positions the reading layout leaves blank.
var sweepPositions = [4]uint8{3, 4, 7, 8}

// Segment orders for the sweep, clockwise starting at different corners so
// the max sweep reads as rising and the min sweep as falling.
var (
	sweepMax = [animFrames]byte{segF, segA, segB, segC, segD, segE}
	sweepMin = [animFrames]byte{segC, segD, segE, segF, segA, segB}
)

// playResetAnim lights one segment per frame at all sweep positions, then
// clears them. Not cancellable.
func playResetAnim(d Display, c Clock, order [animFrames]byte) {
	for _, seg := range order {
		for _, pos := range sweepPositions {
			d.WriteDigit(pos, seg)
		}
		c.SleepMs(animFrameMs)
	}
	for _, pos := range sweepPositions {
		d.WriteDigit(pos, glyphBlank)
	}
}
