package sequencer

// NodeSnapshot is a read-only copy of one node.
type NodeSnapshot struct {
	Index     int     `yaml:"index"`
	Scale     float64 `yaml:"scale"`
	Dir       float64 `yaml:"dir"`
	Committed float64 `yaml:"committed"`
}

// Snapshot is a read-only copy of the chain, used by the HUD and debug
// tooling.
type Snapshot struct {
	Cursor    int            `yaml:"cursor"`
	Dir       int            `yaml:"dir"`
	Animating bool           `yaml:"animating"`
	Running   bool           `yaml:"running"`
	Nodes     []NodeSnapshot `yaml:"nodes"`
}

func (c *Chain) Snapshot() Snapshot {
	snap := Snapshot{
		Cursor:    c.cursor,
		Dir:       c.dir,
		Animating: c.Animating(),
		Nodes:     make([]NodeSnapshot, len(c.nodes)),
	}
	for i, nd := range c.nodes {
		snap.Nodes[i] = NodeSnapshot{
			Index:     nd.Index,
			Scale:     nd.State.Scale,
			Dir:       nd.State.Dir,
			Committed: nd.State.Committed,
		}
	}
	return snap
}

func (s *Sequencer) Snapshot() Snapshot {
	snap := s.chain.Snapshot()
	snap.Running = s.ticker.Running()
	return snap
}
