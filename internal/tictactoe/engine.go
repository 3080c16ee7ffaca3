package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-board/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

// WinLines lists every line in evaluation order: rows, columns, main diagonal, anti-diagonal.
var WinLines = []entity.WinLine{
	entity.RowLine(0),
	entity.RowLine(1),
	entity.RowLine(2),
	entity.ColumnLine(0),
	entity.ColumnLine(1),
	entity.ColumnLine(2),
	entity.DiagonalMain(),
	entity.DiagonalAnti(),
}

// Engine owns a single game and is its only mutator.
type Engine struct {
	state entity.GameState
}

func NewEngine() *Engine {
	return &Engine{
		state: entity.NewGameState(),
	}
}

// ApplyMove places the current player's mark at (row, col). A nil error means the
// move was accepted; otherwise the error is apperror.ErrGameOver, ErrOutOfBounds
// or ErrCellOccupied and the state is unchanged.
func (that *Engine) ApplyMove(row, col int) (entity.GameState, error) {
	if err := validateMove(that.state, row, col); err != nil {
		return that.state, err
	}

	player := that.state.CurrentPlayer

	that.state.Board[row][col] = player.Mark()
	that.state.MoveCount++
	that.state.Result = Evaluate(that.state.Board, that.state.MoveCount)

	// the winner keeps the turn once the game is decided
	if !that.state.Result.IsTerminal() {
		that.state.CurrentPlayer = player.Other()
	}

	return that.state, nil
}

// Reset - returns the game to its initial state.
func (that *Engine) Reset() entity.GameState {
	that.state = entity.NewGameState()

	return that.state
}

func (that *Engine) CurrentState() entity.GameState {
	return that.state
}

// Load replaces the game with a previously saved state after checking it.
func (that *Engine) Load(state entity.GameState) error {
	if err := state.Validate(); err != nil {
		return err
	}

	if result := Evaluate(state.Board, state.MoveCount); result != state.Result {
		return fmt.Errorf("%w: stored result %s does not match board", apperror.ErrInvalidState, state.Result.Kind)
	}

	switch {
	case !state.IsTerminal() && state.CurrentPlayer != expectedPlayer(state.MoveCount):
		return fmt.Errorf("%w: player %d cannot move after %d moves", apperror.ErrInvalidState, state.CurrentPlayer, state.MoveCount)
	case state.IsTerminal() && state.CurrentPlayer != expectedPlayer(state.MoveCount-1):
		return fmt.Errorf("%w: player %d did not make the last move", apperror.ErrInvalidState, state.CurrentPlayer)
	case state.Result.IsWin() && state.Result.Winner != state.CurrentPlayer:
		return fmt.Errorf("%w: moves were made after player %d won", apperror.ErrInvalidState, state.Result.Winner)
	}

	that.state = state

	return nil
}

// validateMove - checks if the move is valid.
func validateMove(state entity.GameState, row, col int) error {
	if state.IsTerminal() {
		return apperror.ErrGameOver
	}

	if row < 0 || row >= entity.BoardSize || col < 0 || col >= entity.BoardSize {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrOutOfBounds, row, col)
	}

	if state.Board[row][col] != entity.EmptyCell {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrCellOccupied, row, col)
	}

	return nil
}

// Evaluate checks the whole board; the first complete line in WinLines wins.
func Evaluate(board entity.Board, moveCount int) entity.GameResult {
	for _, line := range WinLines {
		cells := line.Cells()

		a := board[cells[0][0]][cells[0][1]]
		b := board[cells[1][0]][cells[1][1]]
		c := board[cells[2][0]][cells[2][1]]

		if a != entity.EmptyCell && a == b && b == c {
			player, _ := a.Player()
			return entity.WinResult(player, line)
		}
	}

	if moveCount >= entity.MaxMoves {
		return entity.DrawResult()
	}

	return entity.InProgressResult()
}

func expectedPlayer(moveCount int) entity.PlayerID {
	if moveCount%2 == 0 {
		return entity.PlayerOne
	}
	return entity.PlayerTwo
}
