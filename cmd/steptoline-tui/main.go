package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/steptoline/audio"
	"github.com/milk9111/steptoline/prefabs"
	"github.com/milk9111/steptoline/render"
	"github.com/milk9111/steptoline/sequencer"
)

type app struct {
	screen  tcell.Screen
	seq     *sequencer.Sequencer
	surface *render.CellSurface
	click   *audio.Click
	dirty   bool
	// buttons is the mouse button mask from the previous mouse event.
	buttons tcell.ButtonMask
}

func newApp(screen tcell.Screen, spec *prefabs.StyleSpec, sound bool) *app {
	a := &app{screen: screen, dirty: true}

	cfg, err := spec.Config()
	if err != nil {
		log.Printf("style: %v", err)
	}
	a.seq = sequencer.New(sequencer.InvalidatorFunc(func() { a.dirty = true }), cfg)
	a.surface = render.NewCellSurface(screen)

	if sound || spec.Sound.Enabled {
		click := audio.NewClick(spec.Sound.Frequency, time.Duration(spec.Sound.DurationMS)*time.Millisecond)
		if err := click.Init(); err != nil {
			log.Printf("audio initialization failed: %v", err)
		} else {
			a.click = click
			a.seq.OnSettle(func(_ int, settled float64) { click.Play(settled) })
		}
	}
	return a
}

// handleEvent reports false when the app should quit.
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyEnter:
			a.seq.HandleTap()
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				a.seq.HandleTap()
			}
		}
	case *tcell.EventMouse:
		// Drags and motion reports repeat the held mask, so only a fresh
		// press counts as a tap.
		held := ev.Buttons()
		if held&tcell.Button1 != 0 && a.buttons&tcell.Button1 == 0 {
			a.seq.HandleTap()
		}
		a.buttons = held
	case *tcell.EventResize:
		a.screen.Sync()
		a.dirty = true
	}
	return true
}

func (a *app) draw() {
	if !a.dirty {
		return
	}
	a.seq.Render(a.surface)
	a.screen.Show()
	a.dirty = false
}

func (a *app) run() {
	ticker := time.NewTicker(a.seq.Ticker().Interval())
	defer ticker.Stop()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go a.screen.ChannelEvents(events, quit)
	defer close(quit)

	a.draw()
	for {
		select {
		case ev, ok := <-events:
			if !ok || !a.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			a.seq.Tick()
		}
		a.draw()
	}
}

func (a *app) cleanup() {
	if a.click != nil {
		a.click.Close()
	}
	a.screen.Fini()
}

func main() {
	style := flag.String("style", "", "style prefab in prefabs/ (basename, e.g. smooth.yaml)")
	sound := flag.Bool("sound", false, "play a click when a node settles")
	strict := flag.Bool("strict", false, "settle one step past the boundary")
	flag.Parse()

	spec, err := prefabs.LoadStyleSpec(*style)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load style: %v\n", err)
		os.Exit(1)
	}
	if *strict {
		spec.Animation.StrictThreshold = true
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()

	a := newApp(screen, spec, *sound)
	defer a.cleanup()

	a.run()
}
