// Package app drives the simulation and renderer from terminal events and a frame ticker
package app

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sky-pilot/audio"
	"github.com/lixenwraith/sky-pilot/catalog"
	"github.com/lixenwraith/sky-pilot/constants"
	"github.com/lixenwraith/sky-pilot/engine"
	"github.com/lixenwraith/sky-pilot/input"
	"github.com/lixenwraith/sky-pilot/profile"
	"github.com/lixenwraith/sky-pilot/render"
	"github.com/lixenwraith/sky-pilot/render/renderers"
	"github.com/lixenwraith/sky-pilot/replay"
	"github.com/lixenwraith/sky-pilot/systems"
)

// Sounds plays effects for simulation events
type Sounds interface {
	Play(audio.SoundType)
}

// Callbacks are invoked on the loop goroutine
type Callbacks struct {
	// OnGameOver fires exactly once per crashed run with the frozen result
	OnGameOver func(score, coins int)
	// OnCoinCollected fires once per collected coin
	OnCoinCollected func()
}

// Options wires the collaborators of a Game
type Options struct {
	Screen  tcell.Screen
	Clock   engine.Clock      // Defaults to the wall clock
	Profile *profile.Manager  // Defaults to an in-memory profile
	Sounds  Sounds            // Nil plays nothing
	Keys    *input.KeyTable   // Nil uses the default bindings
	FPS     int               // Defaults to one frame per constants.FrameUpdateInterval
	Seed    int64             // Fixed seed for every run; 0 seeds from the clock
	Record  string            // Path receiving the recording of each finished run
	Replay  *replay.Recording // Runs replay this recording instead of live input
	Callbacks
}

// Game owns every piece of run state; all methods run on the loop goroutine
type Game struct {
	screen  tcell.Screen
	clock   engine.Clock
	profile *profile.Manager
	sounds  Sounds
	cb      Callbacks

	screens   *engine.ScreenState
	state     *engine.State
	sim       *engine.Simulation
	scheduler *engine.Scheduler

	machine    *input.Machine
	controller *input.Controller

	orchestrator *render.RenderOrchestrator

	interval   time.Duration
	seed       int64
	recorder   *replay.Recorder
	recordPath string
	playback   *replay.Player

	shopCursor int
	message    string
}

// New creates a game on the menu screen
func New(opts Options) *Game {
	if opts.Clock == nil {
		opts.Clock = engine.NewTimeProvider()
	}
	if opts.Profile == nil {
		opts.Profile = profile.NewManager(&profile.MemoryStore{})
	}
	interval := constants.FrameUpdateInterval
	if opts.FPS > 0 {
		interval = time.Second / time.Duration(opts.FPS)
	}

	g := &Game{
		screen:       opts.Screen,
		clock:        opts.Clock,
		profile:      opts.Profile,
		sounds:       opts.Sounds,
		cb:           opts.Callbacks,
		screens:      engine.NewScreenState(opts.Clock.Now()),
		sim:          systems.NewSimulation(),
		scheduler:    engine.NewScheduler(opts.Clock),
		machine:      input.NewMachine(opts.Keys),
		controller:   input.NewController(),
		orchestrator: render.NewRenderOrchestrator(opts.Screen),
		interval:     interval,
		seed:         opts.Seed,
		recordPath:   opts.Record,
	}
	if opts.Replay != nil {
		g.playback = replay.NewPlayer(opts.Replay)
	} else if opts.Record != "" {
		g.recorder = replay.NewRecorder()
	}

	renderers.RegisterAll(g.orchestrator)
	g.state = engine.NewState(g.nextSeed())
	g.machine.SetMode(input.ModeMenu)
	return g
}

// Screen returns the active screen
func (g *Game) Screen() engine.Screen {
	return g.screens.Current()
}

// State returns the simulation state of the current run
func (g *Game) State() *engine.State {
	return g.state
}

// Run processes terminal events and frame ticks until the player quits or the screen closes
func (g *Game) Run() error {
	events := make(chan tcell.Event, 256)
	done := make(chan struct{})
	defer close(done)

	go func() {
		defer close(events)
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !g.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			g.Tick()
		}
	}
}

// HandleEvent applies one terminal event; returns false when the game should exit
func (g *Game) HandleEvent(ev tcell.Event) bool {
	in := g.machine.Process(ev)
	if in == nil {
		return true
	}

	switch in.Type {
	case input.IntentQuit:
		return false
	case input.IntentResize:
		w, h := g.screen.Size()
		g.orchestrator.Resize(w, h)
		return true
	}

	switch g.screens.Current() {
	case engine.ScreenMenu:
		return g.handleMenu(in)
	case engine.ScreenShop:
		g.handleShop(in)
	case engine.ScreenPlaying:
		g.handleFlight(in)
	case engine.ScreenGameOver:
		return g.handleGameOver(in)
	}
	return true
}

func (g *Game) handleMenu(in *input.Intent) bool {
	switch in.Type {
	case input.IntentConfirm:
		g.StartRun()
	case input.IntentShop:
		g.openShop()
	case input.IntentBack:
		return false
	}
	return true
}

func (g *Game) handleGameOver(in *input.Intent) bool {
	switch in.Type {
	case input.IntentConfirm:
		g.StartRun()
	case input.IntentMenu, input.IntentBack:
		g.transition(engine.ScreenMenu)
	}
	return true
}

func (g *Game) handleFlight(in *input.Intent) {
	switch in.Type {
	case input.IntentBack:
		// Abandoning a run forfeits it; a pending game over is ignored off the playing screen
		g.transition(engine.ScreenMenu)
	case input.IntentSteer, input.IntentFire, input.IntentPointer:
		c := g.orchestrator.Canvas()
		g.controller.Apply(in, c.Cols(), c.Rows(), c.Width(), c.Height())
	}
}

func (g *Game) openShop() {
	if !g.transition(engine.ScreenShop) {
		return
	}
	g.message = ""
	g.shopCursor = 0
	skins := catalog.Skins()
	equipped := g.profile.Current().SelectedSkin
	for i, s := range skins {
		if s.ID == equipped {
			g.shopCursor = i
			break
		}
	}
}

func (g *Game) handleShop(in *input.Intent) {
	skins := catalog.Skins()
	switch in.Type {
	case input.IntentSelect:
		g.shopCursor = (g.shopCursor + in.DY + len(skins)) % len(skins)
		g.message = ""
	case input.IntentConfirm:
		g.message = g.buyOrEquip(skins[g.shopCursor])
	case input.IntentBack, input.IntentMenu:
		g.transition(engine.ScreenMenu)
	}
}

// buyOrEquip equips an owned skin or buys an unowned one and returns the hangar message
func (g *Game) buyOrEquip(skin catalog.PlaneSkin) string {
	if g.profile.Current().Owns(skin.ID) {
		if err := g.profile.Equip(skin.ID); err != nil {
			return err.Error()
		}
		return fmt.Sprintf("%s EQUIPPED", skin.Name)
	}

	err := g.profile.Buy(skin)
	switch {
	case err == nil:
		return fmt.Sprintf("BOUGHT %s", skin.Name)
	case errors.Is(err, profile.ErrInsufficientCoins):
		return fmt.Sprintf("NEED %d MORE COINS", skin.Price-g.profile.Current().Coins)
	default:
		return err.Error()
	}
}

func (g *Game) transition(to engine.Screen) bool {
	from := g.screens.Current()
	if !g.screens.Transition(to, g.clock.Now()) {
		return false
	}
	if to == engine.ScreenPlaying {
		g.machine.SetMode(input.ModeFlight)
	} else {
		g.machine.SetMode(input.ModeMenu)
	}
	log.Printf("app: screen %s -> %s", from, to)
	return true
}

func (g *Game) nextSeed() int64 {
	if g.playback != nil {
		return g.playback.Seed()
	}
	if g.seed != 0 {
		return g.seed
	}
	return g.clock.Now().UnixNano()
}

// StartRun resets all simulation state and enters the playing screen
func (g *Game) StartRun() {
	if !g.transition(engine.ScreenPlaying) {
		return
	}

	g.state.Reset(g.nextSeed())
	g.state.CraftColor = g.skin().Color
	if n := g.scheduler.CancelStale(g.state.RunID); n > 0 {
		log.Printf("app: dropped %d stale task(s)", n)
	}
	g.controller.Reset()

	if g.playback != nil {
		g.playback.Rewind()
	}
	if g.recorder != nil {
		g.recorder.Start(g.state.Seed, g.skin().ID)
	}
	log.Printf("app: run %d started, seed %d", g.state.RunID, g.state.Seed)
}

func (g *Game) skin() catalog.PlaneSkin {
	if g.playback != nil {
		return catalog.SkinByID(g.playback.Skin())
	}
	return g.profile.Skin()
}

// Tick advances one frame: step the run, fire due tasks, render
// Only the playing screen steps the simulation; the others redraw a frozen world
func (g *Game) Tick() {
	if g.screens.Current() == engine.ScreenPlaying {
		g.step()
	}
	g.runDueTasks()
	g.render()
}

func (g *Game) step() {
	var in engine.Input
	if g.playback != nil {
		in, _ = g.playback.Next()
	} else {
		in = g.controller.Input()
	}
	if g.recorder != nil && !g.state.Crashing() {
		g.recorder.Record(in)
	}

	g.sim.Step(g.state, in)
	g.dispatch(g.state.Events.Drain())
}

// dispatch maps this frame's simulation events to sounds and external callbacks
func (g *Game) dispatch(events []engine.Event) {
	for _, ev := range events {
		if st, ok := soundFor(ev.Type); ok && g.sounds != nil {
			g.sounds.Play(st)
		}

		switch ev.Type {
		case engine.EventCoinCollected:
			if g.cb.OnCoinCollected != nil {
				g.cb.OnCoinCollected()
			}
		case engine.EventCrash:
			g.scheduler.After(engine.TaskGameOver, g.state.RunID, constants.CrashGameOverDelay)
		}
	}
}

func soundFor(t engine.EventType) (audio.SoundType, bool) {
	switch t {
	case engine.EventShot:
		return audio.SoundShot, true
	case engine.EventCoinCollected:
		return audio.SoundCoin, true
	case engine.EventPowerup:
		return audio.SoundPowerup, true
	case engine.EventAsteroidHit:
		return audio.SoundHit, true
	case engine.EventAsteroidDestroyed, engine.EventShieldBlocked:
		return audio.SoundExplosion, true
	case engine.EventCrash:
		return audio.SoundCrash, true
	}
	return 0, false
}

func (g *Game) runDueTasks() {
	for _, task := range g.scheduler.Poll() {
		if task.Kind != engine.TaskGameOver {
			continue
		}
		if g.screens.Current() != engine.ScreenPlaying || !g.state.ClaimGameOver(task.RunID) {
			log.Printf("app: ignored stale game over for run %d", task.RunID)
			continue
		}
		g.gameOver()
	}
}

func (g *Game) gameOver() {
	score, coins := g.state.Result()
	if g.playback == nil {
		g.profile.RecordRun(score, coins)
	}
	if g.recorder != nil {
		if err := g.recorder.Save(g.recordPath); err != nil {
			log.Printf("app: replay save failed: %v", err)
		}
	}
	if g.cb.OnGameOver != nil {
		g.cb.OnGameOver(score, coins)
	}
	g.transition(engine.ScreenGameOver)
	log.Printf("app: run %d over, score %d, coins %d", g.state.RunID, score, coins)
}

func (g *Game) render() {
	ctx := render.RenderContext{
		State:      g.state,
		Screen:     g.screens.Current(),
		Skin:       g.skin(),
		Profile:    g.profile.Current(),
		ShopCursor: g.shopCursor,
		Message:    g.message,
	}
	if ctx.InWorld() {
		ctx.ShakeX, ctx.ShakeY = g.orchestrator.Shake(g.state.Shake)
	}
	g.orchestrator.RenderFrame(ctx)
}
