// Package input translates terminal events into semantic game intents.
// The game core never sees tcell types; it receives normalized taps and
// control commands only.
package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit        // q, ESC, Ctrl+C
	IntentTap         // Mouse press, or Enter for a center tap
	IntentReset       // r
	IntentTogglePause // p, Space
	IntentToggleMute  // m
	IntentResize      // Terminal resize event
)

// Intent is one translated input event
type Intent struct {
	Type IntentType

	// Normalized screen coordinates for IntentTap, [-1,1] on each axis,
	// Y positive up, matching the hit resolver's convention
	NX, NY float64
}
