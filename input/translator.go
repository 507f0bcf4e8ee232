package input

import (
	"github.com/gdamore/tcell/v2"
)

// Translator maps tcell events to intents
//
// Mouse positions are converted to normalized coordinates against the
// game viewport, which the host updates whenever the layout changes
type Translator struct {
	viewX, viewY int
	viewW, viewH int

	lastButtons tcell.ButtonMask
}

// NewTranslator creates a translator with an empty viewport
func NewTranslator() *Translator {
	return &Translator{}
}

// SetViewport sets the terminal-cell rectangle taps are normalized against
func (t *Translator) SetViewport(x, y, w, h int) {
	t.viewX, t.viewY = x, y
	t.viewW, t.viewH = w, h
}

// Translate converts one tcell event into an intent
// Events with no game meaning translate to IntentNone
func (t *Translator) Translate(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return Intent{Type: IntentResize}

	case *tcell.EventKey:
		return t.translateKey(ev)

	case *tcell.EventMouse:
		return t.translateMouse(ev)
	}
	return Intent{}
}

func (t *Translator) translateKey(ev *tcell.EventKey) Intent {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Intent{Type: IntentQuit}
	case tcell.KeyEnter:
		// Keyboard tap at the screen center
		return Intent{Type: IntentTap}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return Intent{Type: IntentQuit}
		case 'r', 'R':
			return Intent{Type: IntentReset}
		case 'p', 'P', ' ':
			return Intent{Type: IntentTogglePause}
		case 'm', 'M':
			return Intent{Type: IntentToggleMute}
		}
	}
	return Intent{}
}

func (t *Translator) translateMouse(ev *tcell.EventMouse) Intent {
	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && t.lastButtons&tcell.Button1 == 0
	t.lastButtons = buttons

	if !pressed || t.viewW <= 0 || t.viewH <= 0 {
		return Intent{}
	}

	mx, my := ev.Position()
	nx, ny := t.Normalize(mx, my)
	return Intent{Type: IntentTap, NX: nx, NY: ny}
}

// Normalize maps a terminal cell to [-1,1] screen coordinates, sampling
// at the cell center. Y flips from row-down to screen-up
func (t *Translator) Normalize(mx, my int) (nx, ny float64) {
	nx = (float64(mx-t.viewX)+0.5)/float64(t.viewW)*2 - 1
	ny = -((float64(my-t.viewY)+0.5)/float64(t.viewH)*2 - 1)
	return nx, ny
}
