package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"golang.org/x/term"

	"github.com/lixenwraith/scrollframe/audio"
	"github.com/lixenwraith/scrollframe/config"
	"github.com/lixenwraith/scrollframe/core"
	"github.com/lixenwraith/scrollframe/render"
)

const frameInterval = 33 * time.Millisecond

var (
	debugFlag   = flag.Bool("debug", false, "Write logs to logs/scrollframe.log")
	configFlag  = flag.String("config", "", "Path to a TOML configuration file")
	verboseFlag = flag.Int("v", 0, "Log verbosity, effective with -debug")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "scrollframe-demo must run in a terminal")
		os.Exit(1)
	}

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}
	stdr.SetVerbosity(*verboseFlag)
	logger := stdr.New(log.Default()).WithName("scrollframe")

	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	if err := run(cfg, logger); err != nil {
		fmt.Fprintf(os.Stderr, "scrollframe-demo: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger logr.Logger) error {
	sounds := audio.NewSoundManager(cfg.AudioConfig().ApplyEnv())
	if err := sounds.Initialize(); err != nil && !errors.Is(err, audio.ErrAudioDisabled) {
		logger.Error(err, "audio unavailable, continuing silent")
	}
	defer sounds.Cleanup()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashReset(screen.Fini)
	defer func() {
		core.SetCrashReset(nil)
		screen.Fini()
	}()
	screen.EnableMouse()
	screen.HideCursor()

	d := newDemo(cfg, sounds, logger)
	defer d.close()
	canvas := render.NewCanvas(screen, d.theme)

	// Dedicated input goroutine, the loop below owns the tree
	eventCh := make(chan tcell.Event, 16)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventCh <- ev
		}
	})

	d.start(canvas.Size())
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	last := time.Now()

	for {
		// Handle all pending events before the tick
	eventLoop:
		for {
			select {
			case ev := <-eventCh:
				if d.handle(ev) {
					return nil
				}
			default:
				break eventLoop
			}
		}

		// Wait for next frame
		select {
		case <-ticker.C:
		case ev := <-eventCh:
			if d.handle(ev) {
				return nil
			}
		}

		now := time.Now()
		d.step(canvas, now.Sub(last))
		last = now
	}
}
