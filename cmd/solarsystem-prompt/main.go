package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/ytget/solarsystem-gui/internal/config"
	"github.com/ytget/solarsystem-gui/internal/controller"
	"github.com/ytget/solarsystem-gui/internal/prompt"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	fmt.Printf("Solar System prompt v%s\n", version)

	env, err := config.LoadEnv()
	if err != nil {
		log.Fatalf("invalid environment: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	session := prompt.NewSession(prompt.NewSurveyDriver())
	if env.Echo {
		session.RegisterController(controller.NewRecorder(true))
	}

	if err := session.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatalf("prompt session failed: %v", err)
	}
}
