package main

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/steptoline/sequencer"
	"golang.org/x/image/font/basicfont"
)

// HUD is the debug overlay showing the chain cursor and node scales.
type HUD struct {
	ui     *ebitenui.UI
	panel  *widget.Container
	status *widget.Text
}

// NewHUD builds a panel anchored to the top-left corner with a status label
// and a button that taps the chain.
func NewHUD(onTap func()) *HUD {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 160})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnPressedImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255})

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	status := widget.NewText(
		widget.TextOpts.Text("", &face, white),
	)

	tapBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnPressedImg}),
		widget.ButtonOpts.Text("Tap", &face, &widget.ButtonTextColor{Idle: white}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onTap != nil {
				onTap()
			}
		}),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 10, Bottom: 10, Left: 12, Right: 12}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)
	panel.AddChild(status)
	panel.AddChild(tapBtn)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(&widget.Insets{Top: 8, Bottom: 8, Left: 8, Right: 8}),
		)),
	)
	root.AddChild(panel)

	return &HUD{ui: &ebitenui.UI{Container: root}, panel: panel, status: status}
}

func (h *HUD) Update(snap sequencer.Snapshot) {
	h.status.Label = statusText(snap)
	h.ui.Update()
}

func (h *HUD) Draw(screen *ebiten.Image) {
	h.ui.Draw(screen)
}

// Contains reports whether (x, y) falls inside the panel as last laid out.
func (h *HUD) Contains(x, y int) bool {
	return image.Pt(x, y).In(h.panel.GetWidget().Rect)
}

// statusText formats a snapshot for the overlay.
func statusText(snap sequencer.Snapshot) string {
	var b strings.Builder
	state := "idle"
	if snap.Animating {
		state = "animating"
	}
	fmt.Fprintf(&b, "cursor %d  dir %+d  %s\n", snap.Cursor, snap.Dir, state)
	for _, n := range snap.Nodes {
		marker := " "
		if n.Index == snap.Cursor {
			marker = ">"
		}
		fmt.Fprintf(&b, "%s %d  scale %.2f  committed %.0f\n", marker, n.Index, n.Scale, n.Committed)
	}
	return strings.TrimRight(b.String(), "\n")
}
