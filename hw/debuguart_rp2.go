//go:build rp2040 || rp2350

package hw

import (
	uartx "github.com/jangala-dev/tinygo-uartx/uartx"

	"hygropanel-go/diag"
)

// EnableDebugUART routes diag output to uart1 so logs stay visible when no
// USB console is attached.
func EnableDebugUART(pins BoardPins) {
	u := uartx.UART1
	_ = u.Configure(uartx.UARTConfig{
		BaudRate: 115200,
		TX:       pins.DebugTX,
		RX:       pins.DebugRX,
	})
	diag.SetSink(func(line string) {
		_, _ = u.Write([]byte(line))
		_, _ = u.Write([]byte("\r\n"))
	})
}
