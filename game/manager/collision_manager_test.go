package manager

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gridsnake/game/entity"
	"gridsnake/game/types"
)

func TestNextHeadWraps(t *testing.T) {
	cm := NewCollisionManager(types.NewSquareGrid(types.GridExtent))
	last := types.GridExtent - 1

	tests := []struct {
		name string
		head types.Point
		dir  types.Direction
		want types.Point
	}{
		{"right edge", types.Point{X: last, Y: 5}, types.Right, types.Point{X: 0, Y: 5}},
		{"left edge", types.Point{X: 0, Y: 5}, types.Left, types.Point{X: last, Y: 5}},
		{"top edge", types.Point{X: 5, Y: 0}, types.Up, types.Point{X: 5, Y: last}},
		{"bottom edge", types.Point{X: 5, Y: last}, types.Down, types.Point{X: 5, Y: 0}},
		{"plain step", types.Point{X: 5, Y: 5}, types.Right, types.Point{X: 6, Y: 5}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			snake := &entity.Snake{Body: []types.Point{tc.head}}
			assert.Equal(t, tc.want, cm.NextHead(snake, tc.dir))
		})
	}
}

func TestCheckCollision(t *testing.T) {
	cm := NewCollisionManager(types.NewSquareGrid(types.GridExtent))
	snake := entity.NewSnake(types.Point{X: 5, Y: 5}, 3)

	assert.Equal(t, NoCollision, cm.CheckCollision(types.Point{X: 6, Y: 5}, snake))
	assert.Equal(t, SelfCollision, cm.CheckCollision(types.Point{X: 4, Y: 5}, snake))
	// The tail has not moved yet when the check runs.
	assert.Equal(t, SelfCollision, cm.CheckCollision(types.Point{X: 3, Y: 5}, snake))
}

func TestIsFoodCollision(t *testing.T) {
	cm := NewCollisionManager(types.NewSquareGrid(types.GridExtent))

	assert.True(t, cm.IsFoodCollision(types.Point{X: 2, Y: 3}, types.Point{X: 2, Y: 3}))
	assert.False(t, cm.IsFoodCollision(types.Point{X: 2, Y: 3}, types.Point{X: 3, Y: 2}))
}
