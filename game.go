package main

import (
	"log"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/steptoline/audio"
	"github.com/milk9111/steptoline/common"
	"github.com/milk9111/steptoline/prefabs"
	"github.com/milk9111/steptoline/render"
	"github.com/milk9111/steptoline/sequencer"
	"github.com/milk9111/steptoline/system"
	"golang.design/x/clipboard"
)

// Options configures a Game.
type Options struct {
	Debug bool
	// Style is the prefab name of the style to load.
	Style string
	Sound bool
	// Strict keeps the one-step overshoot before a node settles.
	Strict bool
	// Watch hot-reloads the style from the prefabs directory.
	Watch bool
}

// styleLoader loads style prefabs with the command-line overrides applied.
func (o Options) styleLoader() system.StyleLoader {
	return func(name string) (*prefabs.StyleSpec, error) {
		spec, err := prefabs.LoadStyleSpec(name)
		if err != nil {
			return nil, err
		}
		if o.Strict {
			spec.Animation.StrictThreshold = true
		}
		if o.Sound {
			spec.Sound.Enabled = true
		}
		return spec, nil
	}
}

type Game struct {
	world     *system.World
	scheduler *system.Scheduler
	hud       *HUD
	click     *audio.Click
	watcher   *prefabs.Watcher

	canvas  *ebiten.Image
	surface *render.EbitenSurface
	dirty   bool
	debug   bool
}

func NewGame(opts Options) *Game {
	g := &Game{debug: opts.Debug, dirty: true}
	loadStyle := opts.styleLoader()

	spec, err := loadStyle(opts.Style)
	if err != nil {
		log.Printf("failed to load style %s: %v", opts.Style, err)
		spec = &prefabs.StyleSpec{}
	}

	cfg, err := spec.Config()
	if err != nil {
		log.Printf("style %s: %v", opts.Style, err)
	}
	seq := sequencer.New(g, cfg)
	g.world = system.NewWorld(seq, spec)
	g.world.ShowHUD = opts.Debug

	g.initAudio(spec)
	seq.OnSettle(func(index int, settled float64) {
		g.debugf("node %d settled at %.0f, cursor now %d", index, settled, seq.Chain().Cursor())
		if g.click != nil && g.world.Style.Sound.Enabled {
			g.click.Play(settled)
		}
	})
	g.world.OnStyle = append(g.world.OnStyle, func(s *prefabs.StyleSpec) {
		if g.click != nil {
			g.click.Configure(s.Sound.Frequency, time.Duration(s.Sound.DurationMS)*time.Millisecond)
		}
		g.surface = nil
		g.Invalidate()
	})

	systems := []system.System{
		system.NewInputSystem(&system.EbitenInput{Overlay: g.overHUD}),
		system.NewSequencerSystem(),
	}
	if opts.Watch {
		if w, err := prefabs.NewWatcher(prefabs.Dir, filepath.Join(prefabs.Dir, "scripts")); err != nil {
			log.Printf("style hot reload disabled: %v", err)
		} else {
			g.watcher = w
			go logWatchErrors(w)
			systems = append(systems, system.NewReloadSystem(w.Changes, opts.Style, loadStyle))
		}
	}
	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
	} else {
		systems = append(systems, system.NewClipboardSystem(func(text []byte) {
			clipboard.Write(clipboard.FmtText, text)
			g.debugf("copied snapshot to clipboard")
		}))
	}
	g.scheduler = system.NewScheduler(systems...)
	g.hud = NewHUD(seq.HandleTap)

	return g
}

func (g *Game) initAudio(spec *prefabs.StyleSpec) {
	click := audio.NewClick(spec.Sound.Frequency, time.Duration(spec.Sound.DurationMS)*time.Millisecond)
	if err := click.Init(); err != nil {
		// Non-fatal, the widget works without sound
		log.Printf("audio initialization failed: %v", err)
		return
	}
	g.click = click
}

func logWatchErrors(w *prefabs.Watcher) {
	for err := range w.Errors {
		log.Printf("prefab watcher: %v", err)
	}
}

// overHUD keeps presses on the visible HUD from also tapping the chain; the
// HUD's own Tap button handles them.
func (g *Game) overHUD(x, y int) bool {
	return g.world.ShowHUD && g.hud != nil && g.hud.Contains(x, y)
}

// Invalidate marks the chain for redraw on the next frame.
func (g *Game) Invalidate() {
	g.dirty = true
}

func (g *Game) Update() error {
	g.world.Dt = time.Second / time.Duration(ebiten.TPS())
	g.scheduler.Update(g.world)
	if g.world.ShowHUD {
		g.hud.Update(g.world.Seq.Snapshot())
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	if g.canvas == nil || g.canvas.Bounds() != b {
		g.canvas = ebiten.NewImage(b.Dx(), b.Dy())
		g.surface = nil
		g.dirty = true
	}
	if g.surface == nil {
		g.surface = render.NewEbitenSurface(g.canvas)
		g.surface.AntiAlias = g.world.Style.AntiAlias()
	}
	if g.dirty {
		g.world.Seq.Render(g.surface)
		g.dirty = false
	}
	screen.DrawImage(g.canvas, nil)

	if g.world.ShowHUD {
		g.hud.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	if g.click != nil {
		g.click.Close()
	}
}

func (g *Game) debugf(format string, args ...any) {
	if g.debug {
		log.Printf(format, args...)
	}
}
