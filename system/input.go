package system

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSource samples raw input for a frame.
type InputSource interface {
	Poll() Input
}

// Overlay reports whether a screen point belongs to a widget drawn over the
// chain. Presses there are left to the widget.
type Overlay func(x, y int) bool

// taps reports whether any press lands outside the overlay.
func (o Overlay) taps(presses []image.Point) bool {
	for _, p := range presses {
		if o == nil || !o(p.X, p.Y) {
			return true
		}
	}
	return false
}

// EbitenInput reads taps from the mouse, touch screen, and keyboard.
type EbitenInput struct {
	touches []ebiten.TouchID
	presses []image.Point
	Overlay Overlay
}

func (e *EbitenInput) Poll() Input {
	e.presses = e.presses[:0]
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		e.presses = append(e.presses, image.Pt(ebiten.CursorPosition()))
	}
	e.touches = inpututil.AppendJustPressedTouchIDs(e.touches[:0])
	for _, id := range e.touches {
		e.presses = append(e.presses, image.Pt(ebiten.TouchPosition(id)))
	}

	tap := inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		e.Overlay.taps(e.presses)

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		tap = tap || inpututil.IsStandardGamepadButtonJustPressed(gamepads[0], ebiten.StandardGamepadButtonRightBottom)
	}

	return Input{
		Tap:       tap,
		Copy:      inpututil.IsKeyJustPressed(ebiten.KeyC),
		ToggleHUD: inpututil.IsKeyJustPressed(ebiten.KeyH),
	}
}

// InputSystem copies the polled input into the world.
type InputSystem struct {
	source InputSource
}

func NewInputSystem(source InputSource) *InputSystem {
	if source == nil {
		source = &EbitenInput{}
	}
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *World) {
	w.Input = i.source.Poll()
	if w.Input.ToggleHUD {
		w.ShowHUD = !w.ShowHUD
	}
}
