package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/morphfield/pkg/app"
)

var (
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging (default off)")
	configFlag  = flag.String("config", "assets/config/field.yaml", "Path to the field tuning file")
)

func main() {
	flag.Parse()

	a, err := app.New(app.Config{
		Verbose:    *verboseFlag,
		ConfigPath: *configFlag,
	})
	if err != nil {
		// app.New may have silenced the default logger; report startup
		// failures to stderr regardless.
		log.SetOutput(os.Stderr)
		log.Fatalf("startup failed: %v", err)
	}

	settings := a.Settings().GetSettings()
	ebiten.SetWindowSize(settings.WindowWidth, settings.WindowHeight)
	ebiten.SetWindowTitle("Morphfield")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if settings.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
