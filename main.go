package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.design/x/clipboard"
)

// clipboardReady gates the copy-tuning button; clipboard init fails on
// headless setups and that's fine.
var clipboardReady bool

func main() {
	autopilot := flag.Bool("autopilot", false, "drive input from the demo script instead of the keyboard")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
	} else {
		clipboardReady = true
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("topdown")

	game, err := NewGame(*autopilot)
	if err != nil {
		log.Fatal(err)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
