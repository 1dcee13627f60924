package prefabs

import (
	"errors"
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/steptoline/common"
)

var ErrEasingNoOutput = errors.New("prefabs: easing script does not define out")

// Easing is a compiled script mapping a node scale to a drawn scale. The
// script reads the global `scale` and writes `out`.
type Easing struct {
	name     string
	compiled *tengo.Compiled
	failed   bool
}

func LoadEasing(name string) (*Easing, error) {
	src, err := LoadScript(name)
	if err != nil {
		return nil, err
	}
	ease, err := NewEasing(name, src)
	if err != nil {
		return nil, fmt.Errorf("prefabs: easing %s: %w", name, err)
	}
	return ease, nil
}

func NewEasing(name string, src []byte) (*Easing, error) {
	script := tengo.NewScript(src)
	_ = script.Add("scale", 0.0)
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, err
	}
	if err := compiled.Run(); err != nil {
		return nil, err
	}
	if !compiled.IsDefined("out") {
		return nil, ErrEasingNoOutput
	}
	return &Easing{name: name, compiled: compiled}, nil
}

// Apply runs the script for scale. On a runtime error it logs once and
// returns scale unchanged from then on.
func (e *Easing) Apply(scale float64) float64 {
	if e == nil || e.compiled == nil || e.failed {
		return scale
	}
	if err := e.compiled.Set("scale", scale); err != nil {
		e.fail(err)
		return scale
	}
	if err := e.compiled.Run(); err != nil {
		e.fail(err)
		return scale
	}
	return common.Clamp(e.compiled.Get("out").Float(), 0, 1)
}

func (e *Easing) fail(err error) {
	e.failed = true
	log.Printf("easing %s: %v; falling back to linear", e.name, err)
}
