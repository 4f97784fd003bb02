package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"lanesurvivor/audio"
	"lanesurvivor/config"
	"lanesurvivor/game"
)

func main() {
	settings, err := config.Load(".env")
	if err != nil {
		log.Fatal(err)
	}

	logFile, err := config.SetupLogging(settings.Debug, settings.LogDir)
	if err != nil {
		log.Fatal(err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	var sink game.EventSink
	if settings.Audio {
		cues := audio.NewCues()
		if err := cues.Initialize(); err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			defer cues.Cleanup()
			sink = cues
		}
	}

	app, err := game.NewApp(settings.SimConfig(), game.Options{
		ScreenWidth:  settings.ScreenWidth,
		ScreenHeight: settings.ScreenHeight,
		Profile:      settings.Profile,
		Debug:        settings.Debug,
	}, sink)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(settings.ScreenWidth, settings.ScreenHeight)
	ebiten.SetWindowTitle("Lane Survivor")
	ebiten.SetWindowResizable(true)

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
