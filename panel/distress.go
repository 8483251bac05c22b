package panel

// Distress blinks "Err" on the display. General-purpose signal for
// collaborators that hit an unrecoverable hardware fault; nothing in the
// controller itself invokes it. cycles <= 0 blinks forever.
func Distress(d Display, c Clock, cycles int) {
	var on Frame
	on.set(4, glyphE)
	on.set(3, glyphR)
	on.set(2, glyphR)
	var off Frame

	for i := 0; cycles <= 0 || i < cycles; i++ {
		writeFrame(d, on)
		c.SleepMs(250)
		writeFrame(d, off)
		c.SleepMs(250)
	}
}

func writeFrame(d Display, f Frame) {
	for i := range f {
		d.WriteDigit(uint8(i+1), f[i])
	}
}
