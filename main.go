package main

import (
	"flag"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/golang/glog"
	"golang.org/x/exp/rand"

	"gridsnake/game"
	"gridsnake/game/manager"
	"gridsnake/game/types"
	"gridsnake/ui"
	"gridsnake/ui/terminal"
)

// frameInterval paces the terminal loop; raylib paces itself with SetTargetFPS.
const frameInterval = 16 * time.Millisecond

func main() {
	speed := flag.Int("speed", int(types.BaseTickInterval/time.Millisecond), "Base tick interval in milliseconds (lower = faster)")
	extent := flag.Int("grid", types.GridExtent, "Cells per side of the grid")
	cellSize := flag.Int("cell", types.CellPixels, "Cell size in pixels (raylib frontend)")
	seed := flag.Uint64("seed", 0, "Random seed, 0 picks one from the clock")
	frontend := flag.String("frontend", "raylib", "Frontend to play in: raylib or terminal")
	flag.Parse()
	defer glog.Flush()

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(*seed))

	cfg := game.DefaultConfig()
	cfg.GridExtent = *extent
	cfg.BaseTickInterval = time.Duration(*speed) * time.Millisecond

	g, err := game.NewGame(cfg, rng)
	if err != nil {
		glog.Exitf("creating game: %v", err)
	}
	glog.Infof("seed %d, frontend %s", *seed, *frontend)

	switch *frontend {
	case "raylib":
		runRaylib(g, *cellSize)
	case "terminal":
		if err := runTerminal(g); err != nil {
			glog.Exitf("terminal frontend: %v", err)
		}
	default:
		glog.Exitf("unknown frontend %q", *frontend)
	}
}

func runRaylib(g *game.Game, cellSize int) {
	rl.SetTraceLogLevel(rl.LogWarning)
	width, height := ui.WindowSize(g.Grid, cellSize)
	rl.InitWindow(width, height, "gridsnake")
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)

	renderer := ui.NewRenderer(cellSize)
	ticks := manager.NewTickManager(time.Now())

	for !ui.QuitRequested() {
		for _, ev := range ui.PollKeys() {
			g.HandleInput(ev.Key, ev.Pressed)
		}

		// Update game state once the (possibly accelerated) interval has passed
		if ticks.Due(time.Now(), g.TickInterval()) {
			g.Update()
		}

		renderer.Draw(g.Snapshot())
	}
}

func runTerminal(g *game.Game) error {
	fe, err := terminal.Open()
	if err != nil {
		return err
	}
	defer fe.Close()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	ticks := manager.NewTickManager(time.Now())
	boost := terminal.NewAccelerator(terminal.ReleaseTimeout)

	if err := terminal.Render(g.Snapshot()); err != nil {
		return err
	}

	for {
		select {
		case ev := <-fe.Events():
			key, quit := terminal.TranslateEvent(ev)
			if quit {
				return nil
			}
			if key == types.KeyAccelerate {
				boost.Press(time.Now())
			}
			if key != types.KeyNone {
				g.HandleInput(key, true)
			}

		case now := <-ticker.C:
			if boost.Released(now) {
				g.HandleInput(types.KeyAccelerate, false)
			}
			if ticks.Due(now, g.TickInterval()) {
				g.Update()
			}
			if err := terminal.Render(g.Snapshot()); err != nil {
				return err
			}
		}
	}
}
