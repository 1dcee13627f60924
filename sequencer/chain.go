package sequencer

import (
	"github.com/milk9111/steptoline/common"
	"github.com/milk9111/steptoline/render"
)

// Chain is a fixed-length row of nodes of which exactly one, the cursor, is
// animated at a time. The cursor bounces between the two ends.
type Chain struct {
	nodes  []Node
	cursor int
	dir    int
}

// NewChain builds n nodes, head to tail. n below 1 uses common.NodeCount.
func NewChain(n int) *Chain {
	if n < 1 {
		n = common.NodeCount
	}
	c := &Chain{
		nodes: make([]Node, n),
		dir:   1,
	}
	for i := range c.nodes {
		c.nodes[i].Index = i
	}
	return c
}

func (c *Chain) configure(step float64, strict bool) {
	for i := range c.nodes {
		c.nodes[i].State.configure(step, strict)
	}
}

// Len returns the number of nodes.
func (c *Chain) Len() int { return len(c.nodes) }

// Cursor returns the index of the node the next tap animates.
func (c *Chain) Cursor() int { return c.cursor }

// Dir returns the traversal direction, +1 toward the tail or -1 toward the head.
func (c *Chain) Dir() int { return c.dir }

// Node returns the node at index i, or nil when i is out of range.
func (c *Chain) Node(i int) *Node {
	if i < 0 || i >= len(c.nodes) {
		return nil
	}
	return &c.nodes[i]
}

// Current returns the cursor node.
func (c *Chain) Current() *Node {
	return &c.nodes[c.cursor]
}

// Animating reports whether the cursor node is mid half-cycle.
func (c *Chain) Animating() bool {
	return !c.Current().State.Idle()
}

// Neighbor returns the index one step from i in direction dir. At either end
// of the chain it calls onChainEnd and returns i unchanged.
func (c *Chain) Neighbor(i, dir int, onChainEnd func()) int {
	next := i + 1
	if dir != 1 {
		next = i - 1
	}
	if next >= 0 && next < len(c.nodes) {
		return next
	}
	if onChainEnd != nil {
		onChainEnd()
	}
	return i
}

// Draw renders every node in index order.
func (c *Chain) Draw(s render.Surface, style render.Style) {
	for i := range c.nodes {
		c.nodes[i].Draw(s, style, len(c.nodes))
	}
}

// Step advances the cursor node. When it settles the cursor moves on,
// reversing direction at either end, and cb receives the settled node.
func (c *Chain) Step(cb func(index int, settled float64)) {
	c.Current().Step(func(index int, settled float64) {
		c.cursor = c.Neighbor(c.cursor, c.dir, func() {
			c.dir *= -1
		})
		if cb != nil {
			cb(index, settled)
		}
	})
}

// Begin starts the cursor node animating.
func (c *Chain) Begin(cb func()) {
	c.Current().Begin(cb)
}
