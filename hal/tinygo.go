//go:build tinygo

package hal

import (
	"machine"
	"time"
)

// BoardDevice is the on-hardware implementation. Display output is real;
// the query surfaces are stubs a firmware port replaces with its own
// battery/BLE/keymap bindings.
type BoardDevice struct {
	logger *uartLogger
	clock  *boardClock
	stub   *boardStub
	screen Screen
}

// New returns a board device implementation.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
func New() (*BoardDevice, error) {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})

	screen, err := initBoardScreen()
	if err != nil {
		return nil, err
	}

	return &BoardDevice{
		logger: &uartLogger{uart: uart},
		clock:  newBoardClock(),
		stub:   &boardStub{},
		screen: screen,
	}, nil
}

func (d *BoardDevice) Logger() Logger       { return d.logger }
func (d *BoardDevice) Clock() Clock         { return d.clock }
func (d *BoardDevice) Battery() Battery     { return d.stub }
func (d *BoardDevice) Power() Power         { return d.stub }
func (d *BoardDevice) BLE() BLE             { return d.stub }
func (d *BoardDevice) Endpoints() Endpoints { return d.stub }
func (d *BoardDevice) Keymap() Keymap       { return d.stub }
func (d *BoardDevice) Screen() Screen       { return d.screen }

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	l.uart.Write([]byte(s))
	l.uart.Write([]byte("\r\n"))
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	l.uart.Write(b)
	l.uart.Write([]byte("\r\n"))
}

type boardClock struct {
	start time.Time
}

func newBoardClock() *boardClock {
	return &boardClock{start: time.Now()}
}

func (c *boardClock) NowMS() uint32 {
	return uint32(time.Since(c.start) / time.Millisecond)
}

// boardStub answers device queries with fixed values until a firmware port
// wires in the real battery/BLE/keymap stack.
type boardStub struct{}

func (boardStub) StateOfCharge() uint8         { return 100 }
func (boardStub) Powered() bool                { return true }
func (boardStub) ActiveProfileIndex() int      { return 0 }
func (boardStub) ActiveProfileConnected() bool { return false }
func (boardStub) ActiveProfileOpen() bool      { return true }
func (boardStub) Selected() Endpoint           { return Endpoint{Transport: TransportUSB} }
func (boardStub) HighestActiveLayer() int      { return 0 }
func (boardStub) LayerLabel(int) string        { return "" }
