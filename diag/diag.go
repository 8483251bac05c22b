// Package diag is println-based diagnostics that behave identically on MCU
// and host builds. A sink can be attached to mirror lines to a UART.
package diag

var sink func(string)

// SetSink attaches a mirror for every emitted line. Pass nil to detach.
func SetSink(fn func(string)) { sink = fn }

func Info(parts ...string)  { emit("I", parts) }
func Warn(parts ...string)  { emit("W", parts) }
func Error(parts ...string) { emit("E", parts) }

func emit(level string, parts []string) {
	line := level
	for _, p := range parts {
		line += " " + p
	}
	println(line)
	if sink != nil {
		sink(line)
	}
}
