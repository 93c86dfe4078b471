package manager

import (
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"gridsnake/game/types"
)

const (
	// MaxSpawnAttempts bounds rejection sampling before falling back to a full
	// scan of the interior.
	MaxSpawnAttempts = 1000

	foodTypeRange     = 10
	normalFoodPercent = 8 // out of foodTypeRange
)

// ErrBoardFull is returned when every interior cell is occupied.
var ErrBoardFull = errors.New("no free interior cell for food")

// RandSource is the randomness the food manager draws from. *rand.Rand from
// golang.org/x/exp/rand satisfies it.
type RandSource interface {
	Intn(n int) int
}

type FoodManager struct {
	grid types.Grid
	rng  RandSource
}

func NewFoodManager(grid types.Grid, rng RandSource) *FoodManager {
	return &FoodManager{
		grid: grid,
		rng:  rng,
	}
}

// GenerateFood picks a free interior cell and a food type. Cells on the
// outermost ring are never chosen.
func (fm *FoodManager) GenerateFood(occupied []types.Point) (types.Point, types.FoodType, error) {
	taken := make(map[types.Point]struct{}, len(occupied))
	for _, p := range occupied {
		taken[p] = struct{}{}
	}

	food, err := fm.pickCell(taken)
	if err != nil {
		return types.Point{}, types.FoodNormal, err
	}

	foodType := types.FoodNormal
	if fm.rng.Intn(foodTypeRange) >= normalFoodPercent {
		foodType = types.FoodSpecial
	}

	glog.V(1).Infof("food spawned at %v (%s)", food, foodType)
	return food, foodType, nil
}

func (fm *FoodManager) pickCell(taken map[types.Point]struct{}) (types.Point, error) {
	if fm.grid.InteriorCells() == 0 {
		return types.Point{}, errors.Wrapf(ErrBoardFull, "grid %dx%d has no interior", fm.grid.Width, fm.grid.Height)
	}

	for attempts := 0; attempts < MaxSpawnAttempts; attempts++ {
		food := types.Point{
			X: fm.rng.Intn(fm.grid.Width-2) + 1,
			Y: fm.rng.Intn(fm.grid.Height-2) + 1,
		}
		if _, ok := taken[food]; !ok {
			return food, nil
		}
	}

	// Nearly full board: sampling keeps missing, so choose among what is left.
	free := make([]types.Point, 0, fm.grid.InteriorCells())
	for y := 1; y <= fm.grid.Height-2; y++ {
		for x := 1; x <= fm.grid.Width-2; x++ {
			p := types.Point{X: x, Y: y}
			if _, ok := taken[p]; !ok {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return types.Point{}, errors.Wrapf(ErrBoardFull, "%d interior cells occupied", fm.grid.InteriorCells())
	}
	glog.V(1).Infof("food placement fell back to scan, %d free cells", len(free))
	return free[fm.rng.Intn(len(free))], nil
}
