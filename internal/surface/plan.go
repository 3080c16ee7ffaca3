package surface

import (
	"fmt"
	"image/color"

	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

type Line struct {
	X1, Y1, X2, Y2 float64
	Color          color.Color
	Width          float64
}

// Ellipse is given by its centre and radii.
type Ellipse struct {
	CX, CY, RX, RY float64
	Color          color.Color
	Width          float64
}

// Affordances tells the host which end-of-game actions to show.
type Affordances struct {
	PlayAgain bool
	Home      bool
}

// RenderPlan is everything the host needs to draw one frame of the board.
// Coordinates are relative to the board's top-left corner.
type RenderPlan struct {
	Side     float64
	CellSize float64

	Grid    []Line
	Crosses []Line
	Circles []Ellipse
	// WinLine is nil unless the game was won.
	WinLine *Line

	Status      string
	Terminal    bool
	Affordances Affordances
}

// StatusText derives the turn or result banner from the state.
func StatusText(state entity.GameState, players entity.Players) string {
	switch state.Result.Kind {
	case entity.StatusWin:
		return fmt.Sprintf("%s Won!", players.Name(state.Result.Winner))
	case entity.StatusDraw:
		return "Tie Game!"
	default:
		return fmt.Sprintf("%s's Turn", players.Name(state.CurrentPlayer))
	}
}

func BuildPlan(state entity.GameState, side float64, players entity.Players, theme Theme) RenderPlan {
	cellSize := CellSize(side)
	terminal := state.IsTerminal()

	plan := RenderPlan{
		Side:     side,
		CellSize: cellSize,
		Status:   StatusText(state, players),
		Terminal: terminal,
		Affordances: Affordances{
			PlayAgain: terminal,
			Home:      terminal,
		},
	}

	if side <= 0 {
		return plan
	}

	plan.Grid = gridLines(side, cellSize, theme)

	for row := range entity.BoardSize {
		for col := range entity.BoardSize {
			switch state.Board[row][col] {
			case entity.PlayerOneMark:
				plan.Crosses = append(plan.Crosses, crossLines(row, col, cellSize, theme)...)
			case entity.PlayerTwoMark:
				plan.Circles = append(plan.Circles, circle(row, col, cellSize, theme))
			}
		}
	}

	if state.Result.IsWin() {
		line := winningLine(state.Result.Line, side, cellSize, theme)
		plan.WinLine = &line
	}

	return plan
}

func gridLines(side, cellSize float64, theme Theme) []Line {
	lines := make([]Line, 0, 2*(entity.BoardSize-1))

	for c := 1; c < entity.BoardSize; c++ {
		x := cellSize * float64(c)
		lines = append(lines, Line{X1: x, Y1: 0, X2: x, Y2: side, Color: theme.BoardColor, Width: theme.GridWidth})
	}

	for r := 1; r < entity.BoardSize; r++ {
		y := cellSize * float64(r)
		lines = append(lines, Line{X1: 0, Y1: y, X2: side, Y2: y, Color: theme.BoardColor, Width: theme.GridWidth})
	}

	return lines
}

func crossLines(row, col int, cellSize float64, theme Theme) []Line {
	inset := cellSize * theme.MarkInset
	left := float64(col)*cellSize + inset
	right := float64(col+1)*cellSize - inset
	top := float64(row)*cellSize + inset
	bottom := float64(row+1)*cellSize - inset

	return []Line{
		{X1: right, Y1: top, X2: left, Y2: bottom, Color: theme.XColor, Width: theme.MarkWidth},
		{X1: left, Y1: top, X2: right, Y2: bottom, Color: theme.XColor, Width: theme.MarkWidth},
	}
}

func circle(row, col int, cellSize float64, theme Theme) Ellipse {
	radius := cellSize/2 - cellSize*theme.MarkInset

	return Ellipse{
		CX:    float64(col)*cellSize + cellSize/2,
		CY:    float64(row)*cellSize + cellSize/2,
		RX:    radius,
		RY:    radius,
		Color: theme.OColor,
		Width: theme.MarkWidth,
	}
}

func winningLine(line entity.WinLine, side, cellSize float64, theme Theme) Line {
	result := Line{Color: theme.WinningLineColor, Width: theme.MarkWidth}

	switch line.Kind {
	case entity.LineRow:
		y := float64(line.Index)*cellSize + cellSize/2
		result.X1, result.Y1, result.X2, result.Y2 = 0, y, side, y
	case entity.LineColumn:
		x := float64(line.Index)*cellSize + cellSize/2
		result.X1, result.Y1, result.X2, result.Y2 = x, 0, x, side
	case entity.LineDiagonalMain:
		result.X1, result.Y1, result.X2, result.Y2 = 0, 0, side, side
	case entity.LineDiagonalAnti:
		result.X1, result.Y1, result.X2, result.Y2 = 0, side, side, 0
	}

	return result
}
