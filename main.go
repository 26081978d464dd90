package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/gravitylegacy/common"
	"github.com/milk9111/gravitylegacy/logger"
)

func main() {
	debug := flag.Bool("debug", false, "draw physics shapes and player state")
	watch := flag.Bool("watch", false, "reload prefabs/ and levels/ from disk when they change")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", "", "level name in levels/ (basename, .json optional)")
	logLevel := flag.String("log-level", "", "log level (debug, info, warn, error)")
	logFormat := flag.String("log-format", "", "log format (text, json)")
	flag.Parse()

	logger.Init(*logLevel, *logFormat)

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	game := NewGame(*levelName, *debug, *watch)
	defer game.Close()

	spec := game.session.Spec()
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(spec.ScreenWidth*2, spec.ScreenHeight*2)
	ebiten.SetWindowTitle("Gravity Legacy")
	ebiten.SetTPS(common.TPS)

	if err := ebiten.RunGame(game); err != nil {
		logger.Log.WithError(err).Fatal("game exited with error")
	}
}
