package types

// Direction represents a cardinal direction
type Direction int

const (
	None  Direction = iota // 0
	Up                     // 1
	Right                  // 2
	Down                   // 3
	Left                   // 4
)

// ToPoint converts a Direction into a one-cell displacement
func (d Direction) ToPoint() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Right:
		return Point{X: 1, Y: 0}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 0, Y: 0}
	}
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	default:
		return d
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "none"
	}
}

// FoodType selects how much a snake grows when it eats.
type FoodType int

const (
	FoodNormal  FoodType = iota // Grows by the single retained tail cell
	FoodSpecial                 // Grows by SpecialGrowthExtra more
)

func (f FoodType) String() string {
	switch f {
	case FoodNormal:
		return "normal"
	case FoodSpecial:
		return "special"
	default:
		return "unknown"
	}
}

// Key identifies an input the game reacts to. Frontends translate their raw
// key codes into these.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyAccelerate
	KeyRestart
)

// Direction returns the direction a key requests, or false for non-directional keys.
func (k Key) Direction() (Direction, bool) {
	switch k {
	case KeyUp:
		return Up, true
	case KeyDown:
		return Down, true
	case KeyLeft:
		return Left, true
	case KeyRight:
		return Right, true
	default:
		return None, false
	}
}

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyAccelerate:
		return "accelerate"
	case KeyRestart:
		return "restart"
	default:
		return "none"
	}
}
