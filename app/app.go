// Package app runs the amazeing command: it loads a configuration file,
// builds and solves the maze, writes it out and displays it.
package app

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/beka-birhanu/amazeing/maze"
	"github.com/beka-birhanu/amazeing/renderer"
	"github.com/beka-birhanu/amazeing/renderer/terminal"
	"github.com/beka-birhanu/amazeing/service/i"
	"github.com/beka-birhanu/amazeing/settings"
	"github.com/mattn/go-isatty"
)

// Display modes accepted by -display.
const (
	DisplayAuto     = "auto"
	DisplayWindow   = "window"
	DisplayTerminal = "terminal"
)

// ErrUsage reports bad command line arguments.
var ErrUsage = errors.New("usage: amazeing [-display auto|window|terminal] [-hide-solution] <config_file>")

// Options are the parsed command line arguments.
type Options struct {
	Display      string
	HideSolution bool
	ConfigPath   string
}

// ParseArgs parses the command line, without the program name.
func ParseArgs(args []string, stderr io.Writer) (Options, error) {
	var opts Options

	fs := flag.NewFlagSet("amazeing", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.Display, "display", DisplayAuto, "where to show the maze: auto, window or terminal")
	fs.BoolVar(&opts.HideSolution, "hide-solution", false, "start with the solution hidden")

	if err := fs.Parse(args); err != nil {
		return opts, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() != 1 {
		return opts, ErrUsage
	}
	switch opts.Display {
	case DisplayAuto, DisplayWindow, DisplayTerminal:
	default:
		return opts, fmt.Errorf("%w: unknown display %q", ErrUsage, opts.Display)
	}

	opts.ConfigPath = fs.Arg(0)
	return opts, nil
}

// WindowFactory builds the graphical renderer. regenerate produces a fresh
// maze and onError receives its failures.
type WindowFactory func(regenerate func() (*maze.Maze, error), onError func(error)) renderer.Renderer

// Config holds the dependencies of an App.
type Config struct {
	Logger     i.Logger
	Stdout     io.Writer     // Terminal drawing target, defaults to os.Stdout
	Stderr     io.Writer     // Flag usage and parse errors, defaults to os.Stderr
	Window     WindowFactory // nil means no graphical display is available
	HasDisplay func() bool   // Decides -display auto, defaults to checking DISPLAY/WAYLAND_DISPLAY
	NewSeed    func() int64  // Seed when SEED is absent, defaults to the clock
}

// App is one invocation of the command.
type App struct {
	logger     i.Logger
	stdout     io.Writer
	stderr     io.Writer
	window     WindowFactory
	hasDisplay func() bool
	newSeed    func() int64
}

// New creates an App from c.
func New(c Config) (*App, error) {
	if c.Logger == nil {
		return nil, errors.New("app needs a logger")
	}
	a := &App{
		logger:     c.Logger,
		stdout:     c.Stdout,
		stderr:     c.Stderr,
		window:     c.Window,
		hasDisplay: c.HasDisplay,
		newSeed:    c.NewSeed,
	}
	if a.stdout == nil {
		a.stdout = os.Stdout
	}
	if a.stderr == nil {
		a.stderr = os.Stderr
	}
	if a.hasDisplay == nil {
		a.hasDisplay = graphicalSession
	}
	if a.newSeed == nil {
		a.newSeed = func() int64 { return time.Now().UnixNano() }
	}
	return a, nil
}

// Run executes the command and returns the process exit code.
func (a *App) Run(args []string) int {
	opts, err := ParseArgs(args, a.stderr)
	if err != nil {
		a.logger.Error(err.Error())
		return 1
	}

	s, err := settings.Load(opts.ConfigPath)
	if err != nil {
		a.logger.Error(fmt.Sprintf("Loading configuration: %v", err))
		return 1
	}

	seed := a.newSeed()
	if s.HasSeed {
		seed = s.Seed
	}

	m, err := a.build(s, seed)
	if err != nil {
		a.logger.Error(err.Error())
		return 1
	}

	regenerate := func() (*maze.Maze, error) {
		seed++
		return a.build(s, seed)
	}

	if err := a.display(m, opts, regenerate); err != nil {
		a.logger.Error(fmt.Sprintf("Displaying maze: %v", err))
		return 1
	}
	return 0
}

// build generates and solves a maze with the given seed and writes it to the output file.
func (a *App) build(s *settings.Settings, seed int64) (*maze.Maze, error) {
	g, err := maze.Generate(s.GenerateConfig(), maze.NewRandPicker(seed))
	if err != nil {
		return nil, fmt.Errorf("generating maze: %w", err)
	}

	m, err := maze.New(g, s.Entry, s.Exit)
	if err != nil {
		return nil, fmt.Errorf("generating maze: %w", err)
	}
	if _, err := m.Solve(); err != nil {
		return nil, fmt.Errorf("solving maze: %w", err)
	}

	data, err := maze.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encoding maze: %w", err)
	}
	if err := os.WriteFile(s.OutputFile, data, 0o644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", s.OutputFile, err)
	}

	a.logger.Info(fmt.Sprintf("Maze %dx%d written to %s: Seed=%d Perfect=%v PathLength=%d",
		s.Width, s.Height, s.OutputFile, seed, s.Perfect, len(m.Solution)))
	return m, nil
}

// display picks the renderer. A failing window falls back to the terminal.
func (a *App) display(m *maze.Maze, opts Options, regenerate func() (*maze.Maze, error)) error {
	ropts := renderer.Options{ShowSolution: !opts.HideSolution}

	useWindow := opts.Display == DisplayWindow || (opts.Display == DisplayAuto && a.hasDisplay())
	if useWindow && a.window == nil {
		a.logger.Warning("Graphical display not available, drawing in the terminal")
		useWindow = false
	}

	if useWindow {
		onError := func(err error) {
			a.logger.Error(fmt.Sprintf("Regenerating maze: %v", err))
		}
		err := a.window(regenerate, onError).Render(m, ropts)
		if err == nil {
			return nil
		}
		a.logger.Warning(fmt.Sprintf("Window failed (%v), drawing in the terminal", err))
	}

	return terminal.New(a.stdout, a.colorTerminal()).Render(m, ropts)
}

func (a *App) colorTerminal() bool {
	f, ok := a.stdout.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

func graphicalSession() bool {
	switch runtime.GOOS {
	case "windows", "darwin":
		return true
	}
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}
