// Package render draws the game from RenderState snapshots.
// Renderers are strictly read-only consumers: state computation stays in
// engine, and nothing here ever calls back into it.
package render

import (
	"github.com/lixenwraith/mole-rush/core"
)

// Renderer consumes one RenderState per frame
type Renderer interface {
	// RenderFrame draws the frame as seen through the given camera
	RenderFrame(rs core.RenderState, cam core.CameraTransform)

	// Viewport returns the play-area rectangle in terminal cells,
	// used by input to normalize tap coordinates
	Viewport() (x, y, w, h int)
}
