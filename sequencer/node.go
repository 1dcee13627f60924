package sequencer

import "github.com/milk9111/steptoline/render"

// Node is one slot of the chain arena.
type Node struct {
	Index int
	State State
}

// Draw renders the node glyph for a chain of n nodes.
func (nd *Node) Draw(s render.Surface, style render.Style, n int) {
	render.DrawGlyph(s, style, n, nd.Index, nd.State.Scale)
}

// Step advances the node one increment, reporting its index when it settles.
func (nd *Node) Step(cb func(index int, settled float64)) {
	nd.State.Step(func(settled float64) {
		if cb != nil {
			cb(nd.Index, settled)
		}
	})
}

// Begin starts a half-cycle if the node is idle.
func (nd *Node) Begin(cb func()) {
	nd.State.Begin(cb)
}
