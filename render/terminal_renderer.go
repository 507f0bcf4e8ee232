package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/mole-rush/core"
	"github.com/lixenwraith/mole-rush/vmath"
)

const hudRows = 2 // Status line + help line above the play area

// TerminalRenderer draws a camera-projected view of the grid, reticle
// and target into a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen

	viewX, viewY int
	viewW, viewH int
}

// NewTerminalRenderer creates a renderer for an initialized screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	r := &TerminalRenderer{screen: screen}
	r.Layout()
	return r
}

// Layout recomputes the play-area viewport from the screen size
// Call after resize events
func (r *TerminalRenderer) Layout() {
	w, h := r.screen.Size()
	r.viewX, r.viewY = 0, hudRows
	r.viewW = w
	r.viewH = h - hudRows
	if r.viewH < 1 {
		r.viewH = 1
	}
}

// Viewport returns the play-area rectangle in terminal cells
func (r *TerminalRenderer) Viewport() (x, y, w, h int) {
	return r.viewX, r.viewY, r.viewW, r.viewH
}

// RenderFrame draws one frame
func (r *TerminalRenderer) RenderFrame(rs core.RenderState, cam core.CameraTransform) {
	r.screen.Clear()
	r.drawHUD(rs)

	if rs.Placed {
		r.drawGrid(rs, cam)
		r.drawTarget(rs, cam)
	} else if rs.ReticleVisible {
		r.drawReticle(rs, cam)
	}

	r.screen.Show()
}

func (r *TerminalRenderer) drawHUD(rs core.RenderState) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)

	line := fmt.Sprintf(" SCORE %-4d STREAK %-4d %s", rs.Score, rs.Streak, rs.Status)
	if rs.Paused {
		line += "  [PAUSED]"
	}
	r.drawText(0, 0, style, line)

	helpStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	r.drawText(0, 1, helpStyle, " click/enter: tap   p: pause   r: reset   m: mute   q: quit")
}

func (r *TerminalRenderer) drawReticle(rs core.RenderState, cam core.CameraTransform) {
	x, y, ok := r.worldToCell(cam, rs.ReticlePose.Position)
	if !ok {
		return
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	r.setCell(x, y, '┼', style)
	r.setCell(x-2, y, '[', style)
	r.setCell(x+2, y, ']', style)
}

func (r *TerminalRenderer) drawGrid(rs core.RenderState, cam core.CameraTransform) {
	style := tcell.StyleDefault.Foreground(tcell.ColorOlive)
	rim := vmath.QRotate(rs.Anchor.Orientation, vmath.Vec3F{X: rs.HoleRadius})
	for _, pos := range rs.Slots {
		x, y, ok := r.worldToCell(cam, pos)
		if !ok {
			continue
		}
		r.setCell(x, y, 'O', style)

		// Rim marks appear once the projected hole radius spans more
		// than the center cell
		ex, _, ok := r.worldToCell(cam, vmath.V3FAdd(pos, rim))
		if !ok {
			continue
		}
		if dx := abs(ex - x); dx > 1 {
			r.setCell(x-dx, y, '(', style)
			r.setCell(x+dx, y, ')', style)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func (r *TerminalRenderer) drawTarget(rs core.RenderState, cam core.CameraTransform) {
	if !rs.TargetVisible {
		return
	}

	var style tcell.Style
	var ch rune
	switch rs.TargetState {
	case core.TargetUp:
		style = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
		ch = '@'
	case core.TargetRising:
		style = tcell.StyleDefault.Foreground(tcell.ColorYellow)
		ch = 'o'
	case core.TargetRetreating:
		style = tcell.StyleDefault.Foreground(tcell.ColorRed)
		ch = 'o'
	default:
		return
	}

	if x, y, ok := r.worldToCell(cam, rs.TargetPos); ok {
		r.setCell(x, y, ch, style)
	}
}

// worldToCell projects a world point through the camera into the
// play-area viewport, matching the inverse mapping input uses for taps
func (r *TerminalRenderer) worldToCell(cam core.CameraTransform, p vmath.Vec3F) (int, int, bool) {
	nx, ny, ok := vmath.ProjectPoint(cam.Pose.Position, cam.Pose.Orientation, cam.FOVY, cam.Aspect, p)
	if !ok {
		return 0, 0, false
	}
	x := r.viewX + int((nx+1)/2*float64(r.viewW))
	y := r.viewY + int((1-ny)/2*float64(r.viewH))
	return x, y, true
}

func (r *TerminalRenderer) setCell(x, y int, ch rune, style tcell.Style) {
	if x < r.viewX || x >= r.viewX+r.viewW || y < r.viewY || y >= r.viewY+r.viewH {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

func (r *TerminalRenderer) drawText(x, y int, style tcell.Style, text string) {
	for i, ch := range text {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
