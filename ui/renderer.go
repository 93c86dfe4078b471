package ui

import (
	"gridsnake/game"
	"gridsnake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const gameOverText = "Game Over! Press R to restart"

var (
	runningColor     = rl.Green
	gameOverColor    = rl.Red
	normalFoodColor  = rl.Red
	specialFoodColor = rl.Blue
)

// Renderer draws a game snapshot into the raylib window, one square per cell.
type Renderer struct {
	cellSize     int32
	screenWidth  int32
	screenHeight int32
	fontSize     int32
}

func NewRenderer(cellSize int) *Renderer {
	r := &Renderer{cellSize: int32(cellSize)}
	r.UpdateDimensions()
	return r
}

// WindowSize returns the pixel size of a window that fits the whole grid.
func WindowSize(grid types.Grid, cellSize int) (int32, int32) {
	return int32(grid.Width * cellSize), int32(grid.Height * cellSize)
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
	r.fontSize = r.screenHeight / 20
}

func (r *Renderer) Draw(snap game.Snapshot) {
	rl.BeginDrawing()
	defer rl.EndDrawing()

	rl.ClearBackground(rl.Black)

	bodyColor := BodyColor(snap.GameOver)
	for _, p := range snap.Body {
		r.drawCell(p, bodyColor)
	}
	if snap.Grid.Contains(snap.Food) {
		r.drawCell(snap.Food, FoodColor(snap.FoodType))
	}

	if snap.GameOver {
		textWidth := rl.MeasureText(gameOverText, r.fontSize)
		rl.DrawText(gameOverText,
			(r.screenWidth-textWidth)/2,
			(r.screenHeight-r.fontSize)/2,
			r.fontSize, rl.White)
	}
}

// drawCell fills the cell at p, leaving a 1px gap to its neighbours.
func (r *Renderer) drawCell(p types.Point, color rl.Color) {
	rl.DrawRectangle(
		int32(p.X)*r.cellSize,
		int32(p.Y)*r.cellSize,
		r.cellSize-1, r.cellSize-1, color)
}

func BodyColor(gameOver bool) rl.Color {
	if gameOver {
		return gameOverColor
	}
	return runningColor
}

func FoodColor(foodType types.FoodType) rl.Color {
	switch foodType {
	case types.FoodSpecial:
		return specialFoodColor
	case types.FoodNormal:
		return normalFoodColor
	default:
		return normalFoodColor
	}
}
