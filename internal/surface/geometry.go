package surface

import (
	"math"

	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

// SquareSide returns the side of the largest square that fits the area.
func SquareSide(width, height float64) float64 {
	side := math.Min(width, height)
	if side < 0 || math.IsNaN(side) {
		return 0
	}

	return side
}

func CellSize(side float64) float64 {
	return side / entity.BoardSize
}

// CellIndex maps a pointer coordinate to a row or column index using floor, so a
// pointer exactly on a grid line selects the cell that starts there. The result is
// not clamped: coordinates outside the board give indices outside 0..2.
func CellIndex(side, coord float64) (int, bool) {
	cellSize := CellSize(side)
	if cellSize <= 0 || math.IsNaN(coord) || math.IsInf(coord, 0) {
		return 0, false
	}

	index := math.Floor(coord / cellSize)
	// keep far-away pointers representable; anything past the board is out of bounds anyway
	index = math.Max(-1, math.Min(index, entity.BoardSize))

	return int(index), true
}

// CellAt maps a pointer position to a board cell. inside is false when the
// pointer is not over the board.
func CellAt(side, x, y float64) (row, col int, inside bool) {
	row, okRow := CellIndex(side, y)
	col, okCol := CellIndex(side, x)
	if !okRow || !okCol {
		return row, col, false
	}

	inside = row >= 0 && row < entity.BoardSize && col >= 0 && col < entity.BoardSize

	return row, col, inside
}
