package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-board/internal/apperror"
)

const (
	BoardSize = 3
	MaxMoves  = BoardSize * BoardSize
)

type Cell int

const (
	EmptyCell Cell = iota
	PlayerOneMark
	PlayerTwoMark
)

type PlayerID int

const (
	PlayerOne PlayerID = 1
	PlayerTwo PlayerID = 2
)

type ResultKind string

const (
	StatusInProgress ResultKind = "in_progress"
	StatusWin        ResultKind = "win"
	StatusDraw       ResultKind = "draw"
)

type LineKind string

const (
	LineRow          LineKind = "row"
	LineColumn       LineKind = "column"
	LineDiagonalMain LineKind = "diagonal_main"
	LineDiagonalAnti LineKind = "diagonal_anti"
)

// Board is a 3x3 grid indexed as Board[row][col].
type Board [BoardSize][BoardSize]Cell

// WinLine describes the geometry of three aligned matching marks.
// Index is only meaningful for rows and columns.
type WinLine struct {
	Kind  LineKind `json:"kind"`
	Index int      `json:"index"`
}

// GameResult is InProgress, Win(Winner, Line) or Draw. Winner and Line are
// zero unless Kind is StatusWin.
type GameResult struct {
	Kind   ResultKind `json:"kind"`
	Winner PlayerID   `json:"winner,omitempty"`
	Line   WinLine    `json:"line"`
}

type GameState struct {
	Board         Board      `json:"board"`
	CurrentPlayer PlayerID   `json:"current_player"`
	MoveCount     int        `json:"move_count"`
	Result        GameResult `json:"result"`
}

func NewGameState() GameState {
	return GameState{
		Board:         Board{},
		CurrentPlayer: PlayerOne,
		MoveCount:     0,
		Result:        InProgressResult(),
	}
}

func RowLine(index int) WinLine {
	return WinLine{Kind: LineRow, Index: index}
}

func ColumnLine(index int) WinLine {
	return WinLine{Kind: LineColumn, Index: index}
}

func DiagonalMain() WinLine {
	return WinLine{Kind: LineDiagonalMain}
}

func DiagonalAnti() WinLine {
	return WinLine{Kind: LineDiagonalAnti}
}

// Cells returns the (row, col) pairs covered by the line.
func (that WinLine) Cells() [BoardSize][2]int {
	var cells [BoardSize][2]int

	for i := range BoardSize {
		switch that.Kind {
		case LineRow:
			cells[i] = [2]int{that.Index, i}
		case LineColumn:
			cells[i] = [2]int{i, that.Index}
		case LineDiagonalMain:
			cells[i] = [2]int{i, i}
		case LineDiagonalAnti:
			cells[i] = [2]int{i, BoardSize - 1 - i}
		}
	}

	return cells
}

func (that WinLine) String() string {
	switch that.Kind {
	case LineRow, LineColumn:
		return fmt.Sprintf("%s(%d)", that.Kind, that.Index)
	default:
		return string(that.Kind)
	}
}

func InProgressResult() GameResult {
	return GameResult{Kind: StatusInProgress}
}

func WinResult(player PlayerID, line WinLine) GameResult {
	return GameResult{Kind: StatusWin, Winner: player, Line: line}
}

func DrawResult() GameResult {
	return GameResult{Kind: StatusDraw}
}

func (that GameResult) IsTerminal() bool {
	return that.Kind == StatusWin || that.Kind == StatusDraw
}

func (that GameResult) IsWin() bool {
	return that.Kind == StatusWin
}

func (that GameResult) IsDraw() bool {
	return that.Kind == StatusDraw
}

// Mark returns the cell value placed by the player.
func (that PlayerID) Mark() Cell {
	if that == PlayerTwo {
		return PlayerTwoMark
	}
	return PlayerOneMark
}

func (that PlayerID) Other() PlayerID {
	if that == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}

func (that PlayerID) Valid() bool {
	return that == PlayerOne || that == PlayerTwo
}

// Player returns the owner of the mark; ok is false for an empty cell.
func (that Cell) Player() (PlayerID, bool) {
	switch that {
	case PlayerOneMark:
		return PlayerOne, true
	case PlayerTwoMark:
		return PlayerTwo, true
	default:
		return 0, false
	}
}

func (that Cell) String() string {
	switch that {
	case PlayerOneMark:
		return "X"
	case PlayerTwoMark:
		return "O"
	default:
		return "."
	}
}

func (that Board) Count(cell Cell) int {
	count := 0
	for _, row := range that {
		for _, c := range row {
			if c == cell {
				count++
			}
		}
	}

	return count
}

func (that GameState) IsTerminal() bool {
	return that.Result.IsTerminal()
}

// Validate checks the mark-count invariants that legal alternating play keeps.
func (that GameState) Validate() error {
	for _, row := range that.Board {
		for _, c := range row {
			if c != EmptyCell && c != PlayerOneMark && c != PlayerTwoMark {
				return fmt.Errorf("%w: unknown cell value %d", apperror.ErrInvalidState, c)
			}
		}
	}

	ones := that.Board.Count(PlayerOneMark)
	twos := that.Board.Count(PlayerTwoMark)

	switch {
	case !that.CurrentPlayer.Valid():
		return fmt.Errorf("%w: unknown player %d", apperror.ErrInvalidState, that.CurrentPlayer)
	case ones+twos != that.MoveCount:
		return fmt.Errorf("%w: move count %d does not match %d marks", apperror.ErrInvalidState, that.MoveCount, ones+twos)
	case ones-twos != 0 && ones-twos != 1:
		return fmt.Errorf("%w: mark counts %d and %d", apperror.ErrInvalidState, ones, twos)
	}

	return nil
}

// String renders the board as a text grid followed by the result.
func (that GameState) String() string {
	var sb strings.Builder

	for _, row := range that.Board {
		for col, c := range row {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(c.String())
		}
		sb.WriteByte('\n')
	}

	switch that.Result.Kind {
	case StatusWin:
		fmt.Fprintf(&sb, "player %d wins on %s\n", that.Result.Winner, that.Result.Line)
	case StatusDraw:
		sb.WriteString("draw\n")
	default:
		fmt.Fprintf(&sb, "player %d to move\n", that.CurrentPlayer)
	}

	return sb.String()
}
