package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/solarsystem-gui/internal/config"
	"github.com/ytget/solarsystem-gui/internal/controller"
	"github.com/ytget/solarsystem-gui/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.solarsystem-gui"
	AppName = "Solar System GUI"
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	env, err := config.LoadEnv()
	if err != nil {
		log.Fatalf("invalid environment: %v", err)
	}

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewSolarTheme())

	settings := config.NewSettings(myApp)
	settings.ApplyEnv(env)

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))
	myWindow.SetFixedSize(!settings.GetResizable())

	// Create and setup UI
	root := ui.NewRootUI(myWindow, myApp, settings)

	// The simulation is supplied by whoever embeds the form; echo mode logs
	// requests instead so the window can be tried on its own.
	if env.Echo {
		root.RegisterController(controller.NewRecorder(true))
	}

	// Show and run
	myWindow.ShowAndRun()
}
