package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sky-pilot/app"
	"github.com/lixenwraith/sky-pilot/audio"
	"github.com/lixenwraith/sky-pilot/config"
	"github.com/lixenwraith/sky-pilot/profile"
	"github.com/lixenwraith/sky-pilot/replay"
)

var replayFlag = flag.String("replay", "", "Play back a recorded run instead of flying live")

func main() {
	flag.Parse()
	os.Exit(run())
}

// run owns every deferred cleanup and returns the exit code, so os.Exit never skips them
func run() (code int) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		return 1
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	keys, err := cfg.KeyTable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		return 1
	}

	var recording *replay.Recording
	if *replayFlag != "" {
		if recording, err = replay.Load(*replayFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load replay: %v\n", err)
			return 1
		}
	}

	screen, err := tcell.NewScreen()
	if err == nil {
		err = screen.Init()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}

	// Terminal is restored on every exit path; a panic trace printed before Fini is lost in raw mode
	// Runs after the audio cleanup and before the log file closes
	defer func() {
		if c := restoreTerminal(screen, recover(), os.Stderr); c != 0 {
			code = c
		}
	}()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	// Audio failure leaves the manager silent
	sounds := audio.NewSoundManager(audio.LoadAudioConfig())
	if err := sounds.Initialize(); err != nil {
		log.Printf("audio: init failed, continuing without sound: %v", err)
	}
	defer sounds.Cleanup()

	store := profile.NewFileStore(cfg.ProfilePath)
	game := app.New(app.Options{
		Screen:  screen,
		Profile: profile.NewManager(store),
		Sounds:  sounds,
		Keys:    keys,
		FPS:     cfg.FPS,
		Seed:    cfg.Seed,
		Record:  cfg.ReplayPath,
		Replay:  recording,
		Callbacks: app.Callbacks{
			OnGameOver: func(score, coins int) {
				log.Printf("game over: score %d, coins %d, profile %s", score, coins, store.Path())
			},
		},
	})

	if err := game.Run(); err != nil {
		log.Printf("run: %v", err)
		return 1
	}
	return 0
}

// restoreTerminal finalizes the screen and reports a recovered panic to w
// Returns the exit code for the panic, 0 when r is nil
func restoreTerminal(screen tcell.Screen, r any, w io.Writer) int {
	screen.Fini()
	if r == nil {
		return 0
	}
	stack := debug.Stack()
	log.Printf("panic: %v\n%s", r, stack)
	fmt.Fprintf(w, "\n\x1b[31mSKY-PILOT CRASHED: %v\x1b[0m\n", r)
	fmt.Fprintf(w, "Stack Trace:\n%s\n", stack)
	return 1
}
