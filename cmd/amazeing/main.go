package main

import (
	"fmt"
	"os"

	"github.com/beka-birhanu/amazeing/app"
	"github.com/beka-birhanu/amazeing/config"
	"github.com/beka-birhanu/amazeing/logger"
	"github.com/beka-birhanu/amazeing/maze"
	"github.com/beka-birhanu/amazeing/renderer"
	ebitenrender "github.com/beka-birhanu/amazeing/renderer/ebiten"
)

func newWindow(regenerate func() (*maze.Maze, error), onError func(error)) renderer.Renderer {
	return &ebitenrender.Renderer{
		Regenerate: regenerate,
		OnError:    onError,
	}
}

func main() {
	appLogger, err := logger.New("AMAZEING", config.ColorGreen, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	a, err := app.New(app.Config{
		Logger: appLogger,
		Stdout: os.Stdout,
		Window: newWindow,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating application: %v", err))
		os.Exit(1)
	}

	os.Exit(a.Run(os.Args[1:]))
}
