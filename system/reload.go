package system

import (
	"log"
	"path/filepath"
	"time"

	"github.com/milk9111/steptoline/prefabs"
)

// StyleLoader loads a style prefab by name.
type StyleLoader func(name string) (*prefabs.StyleSpec, error)

// ReloadSystem re-applies the active style when its file or any script
// changes on disk. Style events that leave the file's modification time
// unchanged, such as chmod, are ignored.
type ReloadSystem struct {
	changes <-chan prefabs.Change
	name    string
	load    StyleLoader
	modTime time.Time
}

func NewReloadSystem(changes <-chan prefabs.Change, name string, load StyleLoader) *ReloadSystem {
	if load == nil {
		load = prefabs.LoadStyleSpec
	}
	r := &ReloadSystem{changes: changes, name: name, load: load}
	r.modTime, _ = prefabs.ModTime(r.styleFile())
	return r
}

func (r *ReloadSystem) Update(w *World) {
	if r.changes == nil {
		return
	}
	reload := false
drain:
	for {
		select {
		case ch, ok := <-r.changes:
			if !ok {
				r.changes = nil
				break drain
			}
			if r.affects(ch) {
				reload = true
			}
		default:
			break drain
		}
	}
	if !reload {
		return
	}

	spec, err := r.load(r.name)
	if err != nil {
		log.Printf("reload: %v", err)
		return
	}
	if err := w.ApplyStyle(spec); err != nil {
		log.Printf("reload: apply %s: %v", r.name, err)
		return
	}
	log.Printf("reload: applied style %q", spec.Name)
}

func (r *ReloadSystem) affects(ch prefabs.Change) bool {
	switch ch.Kind {
	case prefabs.ChangeScript:
		return true
	case prefabs.ChangeStyle:
		if filepath.Base(ch.Path) != filepath.Base(r.styleFile()) {
			return false
		}
		return r.modified()
	default:
		return false
	}
}

// modified reports whether the style file changed since the last reload.
// A missing disk copy counts as modified so the embedded style is restored.
func (r *ReloadSystem) modified() bool {
	mod, ok := prefabs.ModTime(r.styleFile())
	if !ok {
		r.modTime = time.Time{}
		return true
	}
	if mod.Equal(r.modTime) {
		return false
	}
	r.modTime = mod
	return true
}

func (r *ReloadSystem) styleFile() string {
	if r.name == "" {
		return prefabs.DefaultStyle
	}
	return r.name
}
