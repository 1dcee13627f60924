package system

import (
	"fmt"
	"log"

	"gopkg.in/yaml.v3"
)

// ClipboardWriter stores text on the system clipboard.
type ClipboardWriter func(text []byte)

// ClipboardSystem copies a YAML snapshot of the chain when Copy is pressed.
type ClipboardSystem struct {
	write ClipboardWriter
}

func NewClipboardSystem(write ClipboardWriter) *ClipboardSystem {
	return &ClipboardSystem{write: write}
}

func (c *ClipboardSystem) Update(w *World) {
	if !w.Input.Copy || c.write == nil || w.Seq == nil {
		return
	}
	data, err := SnapshotYAML(w)
	if err != nil {
		log.Printf("clipboard: %v", err)
		return
	}
	c.write(data)
}

// SnapshotYAML renders the current chain state as YAML.
func SnapshotYAML(w *World) ([]byte, error) {
	data, err := yaml.Marshal(w.Seq.Snapshot())
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return data, nil
}
