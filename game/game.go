package game

import (
	"time"

	"github.com/golang/glog"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"gridsnake/game/entity"
	"gridsnake/game/manager"
	"gridsnake/game/types"
)

// minGridExtent keeps the initial body, which spans x 3..5 on row 5, inside the interior.
const minGridExtent = 8

var ErrInvalidConfig = errors.New("invalid game config")

// Config holds the tunables a game is built from.
type Config struct {
	GridExtent         int
	BaseTickInterval   time.Duration
	SpecialGrowthExtra int
}

// DefaultConfig returns the standard 30x30 board at 150ms per tick.
func DefaultConfig() Config {
	return Config{
		GridExtent:         types.GridExtent,
		BaseTickInterval:   types.BaseTickInterval,
		SpecialGrowthExtra: types.SpecialGrowthExtra,
	}
}

func (c Config) Validate() error {
	if c.GridExtent < minGridExtent {
		return errors.Wrapf(ErrInvalidConfig, "grid extent %d is below %d", c.GridExtent, minGridExtent)
	}
	if c.BaseTickInterval <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "tick interval %v must be positive", c.BaseTickInterval)
	}
	if c.SpecialGrowthExtra < 0 {
		return errors.Wrapf(ErrInvalidConfig, "special growth %d must not be negative", c.SpecialGrowthExtra)
	}
	return nil
}

// Game is the whole simulation state. It is owned by a single driver loop and
// is not safe for concurrent use.
type Game struct {
	ID               string
	Grid             types.Grid
	Snake            *entity.Snake
	Food             types.Point
	FoodType         types.FoodType
	GameOver         bool
	BaseTickInterval time.Duration
	IsAccelerating   bool

	config       Config
	rng          manager.RandSource
	foodMgr      *manager.FoodManager
	collisionMgr *manager.CollisionManager
}

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	Grid         types.Grid
	Body         []types.Point
	Food         types.Point
	FoodType     types.FoodType
	GameOver     bool
	Accelerating bool
}

func NewGame(cfg Config, rng manager.RandSource) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, errors.Wrap(ErrInvalidConfig, "nil random source")
	}

	grid := types.NewSquareGrid(cfg.GridExtent)
	snake := entity.NewSnake(types.InitialHead, types.InitialLength)
	foodMgr := manager.NewFoodManager(grid, rng)

	food, foodType, err := foodMgr.GenerateFood(snake.Body)
	if err != nil {
		return nil, errors.Wrap(err, "placing initial food")
	}

	g := &Game{
		ID:               uuid.New().String(),
		Grid:             grid,
		Snake:            snake,
		Food:             food,
		FoodType:         foodType,
		GameOver:         false,
		BaseTickInterval: cfg.BaseTickInterval,
		IsAccelerating:   false,
		config:           cfg,
		rng:              rng,
		foodMgr:          foodMgr,
		collisionMgr:     manager.NewCollisionManager(grid),
	}
	glog.Infof("game %s started on %dx%d grid", g.ID, grid.Width, grid.Height)
	return g, nil
}

// Update advances the simulation by one tick.
func (g *Game) Update() {
	if g.GameOver {
		return
	}

	dir := g.Snake.CommitDirection()
	newHead := g.collisionMgr.NextHead(g.Snake, dir)

	if g.collisionMgr.CheckCollision(newHead, g.Snake) != manager.NoCollision {
		g.GameOver = true
		glog.Infof("game %s over at %v, length %d", g.ID, newHead, g.Snake.Len())
		return
	}

	g.Snake.Move(newHead)

	if !g.collisionMgr.IsFoodCollision(newHead, g.Food) {
		g.Snake.RemoveTail()
		glog.V(2).Infof("game %s head %v heading %s", g.ID, newHead, dir)
		return
	}

	// Replacement food is placed against the body before extra growth; the
	// duplicated tail cells are already part of it.
	eaten := g.FoodType
	food, foodType, err := g.foodMgr.GenerateFood(g.Snake.Body)
	switch eaten {
	case types.FoodNormal:
	case types.FoodSpecial:
		g.Snake.Grow(g.config.SpecialGrowthExtra)
	}
	if err != nil {
		g.GameOver = true
		g.Food = types.NoFood
		glog.Errorf("game %s ended with length %d: %v", g.ID, g.Snake.Len(), err)
		return
	}
	g.Food = food
	g.FoodType = foodType
	glog.V(1).Infof("game %s ate %s food, length %d", g.ID, eaten, g.Snake.Len())
}

// HandleInput applies one key press or release. Once the game is over only
// a restart press is accepted.
func (g *Game) HandleInput(key types.Key, pressed bool) {
	glog.V(2).Infof("game %s input %s pressed=%t", g.ID, key, pressed)

	if g.GameOver {
		if key == types.KeyRestart && pressed {
			g.restart()
		}
		return
	}

	if key == types.KeyAccelerate {
		g.IsAccelerating = pressed
		return
	}

	if dir, ok := key.Direction(); ok && pressed {
		g.Snake.SetDirection(dir)
	}
}

// restart replaces the state wholesale with a fresh game built from the same
// config and random source.
func (g *Game) restart() {
	fresh, err := NewGame(g.config, g.rng)
	if err != nil {
		glog.Errorf("game %s restart failed: %v", g.ID, err)
		return
	}
	*g = *fresh
}

// TickInterval is the time between ticks; acceleration halves it.
func (g *Game) TickInterval() time.Duration {
	if g.IsAccelerating {
		return g.BaseTickInterval / 2
	}
	return g.BaseTickInterval
}

func (g *Game) Snapshot() Snapshot {
	body := make([]types.Point, len(g.Snake.Body))
	copy(body, g.Snake.Body)
	return Snapshot{
		Grid:         g.Grid,
		Body:         body,
		Food:         g.Food,
		FoodType:     g.FoodType,
		GameOver:     g.GameOver,
		Accelerating: g.IsAccelerating,
	}
}
