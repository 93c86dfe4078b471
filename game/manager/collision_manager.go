package manager

import (
	"gridsnake/game/entity"
	"gridsnake/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	SelfCollision
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// NextHead returns the cell the snake's head enters when moving in dir.
// Edges wrap around, so there are no walls to hit.
func (cm *CollisionManager) NextHead(snake *entity.Snake, dir types.Direction) types.Point {
	return cm.grid.Wrap(snake.GetHead().Add(dir.ToPoint()))
}

// CheckCollision tests pos against the body as it is before the move. The
// tail cell counts too: it has not been vacated yet.
func (cm *CollisionManager) CheckCollision(pos types.Point, snake *entity.Snake) CollisionType {
	if snake.Occupies(pos) {
		return SelfCollision
	}
	return NoCollision
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}
