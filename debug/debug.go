// Package debug is a minimal firmware-side debug channel: a pluggable line
// writer and an event ring that is cheap enough to fill from interrupt
// handlers.
package debug

// Writer is a function type for writing debug messages
type Writer func(string)

// Event captures one event for post-mortem analysis
type Event struct {
	Kind uint8  // Event type code
	A    uint16 // Context-dependent value
	B    uint16 // Context-dependent value
}

// Event type codes
const (
	EvtPortVector  = 1 // port vector taken, A=port, B=pin+1
	EvtTimerVector = 2 // timer vector taken, A=instance, B=raw vector
	EvtDuty        = 3 // PWM duty changed, A=block, B=duty
	EvtCapture     = 4 // capture taken, A=block, B=value
)

const (
	RingSize = 32 // Keep last 32 events
)

var (
	// output is the global debug print function (set by board code)
	output Writer = func(string) {} // No-op by default

	// enabled controls whether Println output is active
	enabled bool

	// Event ring (single writer)
	ring     [RingSize]Event
	ringHead uint8
)

// SetWriter sets the board-specific output function, such as a UART
// writer.
func SetWriter(w Writer) {
	if w == nil {
		w = func(string) {}
	}
	output = w
}

// SetEnabled enables or disables Println output
func SetEnabled(on bool) {
	enabled = on
}

// Enabled returns whether Println output is enabled
func Enabled() bool {
	return enabled
}

// Println writes a message through the board writer when enabled
func Println(msg string) {
	if enabled {
		output(msg)
	}
}

// Record stores an event in the ring, overwriting the oldest
func Record(kind uint8, a, b uint16) {
	idx := ringHead
	ring[idx] = Event{Kind: kind, A: a, B: b}
	ringHead = (idx + 1) % RingSize
}

// Events returns the recorded events, oldest first
func Events() []Event {
	out := make([]Event, 0, RingSize)
	for i := uint8(0); i < RingSize; i++ {
		evt := ring[(ringHead+i)%RingSize]
		if evt.Kind == 0 {
			continue // Empty slot
		}
		out = append(out, evt)
	}
	return out
}

// Dump writes the event ring through the board writer, whether or not
// Println output is enabled
func Dump() {
	output("[EVT] === Event Ring Dump ===")
	for _, evt := range Events() {
		var name string
		switch evt.Kind {
		case EvtPortVector:
			name = "PORT_IV"
		case EvtTimerVector:
			name = "TIMER_IV"
		case EvtDuty:
			name = "DUTY"
		case EvtCapture:
			name = "CAPTURE"
		default:
			name = "UNKNOWN"
		}
		output("[EVT] " + name + " a=" + Itoa(int(evt.A)) + " b=" + Itoa(int(evt.B)))
	}
	output("[EVT] === End Dump ===")
}

// Clear empties the event ring
func Clear() {
	for i := range ring {
		ring[i] = Event{}
	}
	ringHead = 0
}

// Itoa formats n in decimal without pulling in strconv
func Itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
