package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/steptoline/common"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode (HUD and settle logging)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	style := flag.String("style", "", "style prefab in prefabs/ (basename, e.g. smooth.yaml)")
	sound := flag.Bool("sound", false, "play a click when a node settles")
	strict := flag.Bool("strict", false, "settle one step past the boundary")
	watch := flag.Bool("watch", false, "hot-reload the style from prefabs/")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth/2, common.BaseHeight/2)
	ebiten.SetWindowTitle("steptoline")

	game := NewGame(Options{
		Debug:  *debug,
		Style:  *style,
		Sound:  *sound,
		Strict: *strict,
		Watch:  *watch,
	})
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
