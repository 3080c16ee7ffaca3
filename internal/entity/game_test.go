package entity

import (
	"encoding/json"
	"testing"

	"github.com/rocketscienceinc/tictactoe-board/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameResultMethods(t *testing.T) {
	t.Run("InProgress is not terminal", func(t *testing.T) {
		// Given: an in-progress result
		result := InProgressResult()

		// Then: it is neither a win, a draw nor terminal
		assert.False(t, result.IsTerminal())
		assert.False(t, result.IsWin())
		assert.False(t, result.IsDraw())
	})

	t.Run("Win is terminal", func(t *testing.T) {
		// Given: a win on row 1
		result := WinResult(PlayerTwo, RowLine(1))

		// Then: it is a terminal win carrying the line
		assert.True(t, result.IsTerminal())
		assert.True(t, result.IsWin())
		assert.Equal(t, PlayerTwo, result.Winner)
		assert.Equal(t, RowLine(1), result.Line)
	})

	t.Run("Draw is terminal", func(t *testing.T) {
		// Given: a draw
		result := DrawResult()

		// Then: it is terminal without a winner
		assert.True(t, result.IsTerminal())
		assert.True(t, result.IsDraw())
		assert.Zero(t, result.Winner)
	})
}

func TestPlayerID(t *testing.T) {
	assert.Equal(t, PlayerOneMark, PlayerOne.Mark())
	assert.Equal(t, PlayerTwoMark, PlayerTwo.Mark())
	assert.Equal(t, PlayerTwo, PlayerOne.Other())
	assert.Equal(t, PlayerOne, PlayerTwo.Other())

	player, ok := PlayerTwoMark.Player()
	assert.True(t, ok)
	assert.Equal(t, PlayerTwo, player)

	_, ok = EmptyCell.Player()
	assert.False(t, ok)
}

func TestWinLine_Cells(t *testing.T) {
	cases := map[string]struct {
		line     WinLine
		expected [BoardSize][2]int
	}{
		"row":           {line: RowLine(2), expected: [BoardSize][2]int{{2, 0}, {2, 1}, {2, 2}}},
		"column":        {line: ColumnLine(0), expected: [BoardSize][2]int{{0, 0}, {1, 0}, {2, 0}}},
		"main diagonal": {line: DiagonalMain(), expected: [BoardSize][2]int{{0, 0}, {1, 1}, {2, 2}}},
		"anti diagonal": {line: DiagonalAnti(), expected: [BoardSize][2]int{{0, 2}, {1, 1}, {2, 0}}},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.line.Cells())
		})
	}
}

func TestGameState_Validate(t *testing.T) {
	t.Run("Returns nil for a new game", func(t *testing.T) {
		// Given: a new game state
		state := NewGameState()

		// When: validating it
		err := state.Validate()

		// Then: no error is returned
		assert.NoError(t, err)
	})

	t.Run("Returns ErrInvalidState when player two has more marks", func(t *testing.T) {
		// Given: a board where player two moved first
		state := GameState{
			Board:         Board{{PlayerTwoMark, EmptyCell, EmptyCell}},
			CurrentPlayer: PlayerOne,
			MoveCount:     1,
		}

		// When: validating it
		err := state.Validate()

		// Then: ErrInvalidState is returned
		require.ErrorIs(t, err, apperror.ErrInvalidState)
		assert.Contains(t, err.Error(), "mark counts")
	})

	t.Run("Returns ErrInvalidState for an unknown cell value", func(t *testing.T) {
		// Given: a board holding a value outside the cell set
		state := GameState{
			Board:         Board{{Cell(7), EmptyCell, EmptyCell}},
			CurrentPlayer: PlayerOne,
			MoveCount:     1,
		}

		// When: validating it
		err := state.Validate()

		// Then: ErrInvalidState is returned
		assert.ErrorIs(t, err, apperror.ErrInvalidState)
	})
}

func TestGameState_String(t *testing.T) {
	// Given: a game won by player one on the main diagonal
	state := GameState{
		Board: Board{
			{PlayerOneMark, PlayerTwoMark, EmptyCell},
			{PlayerTwoMark, PlayerOneMark, EmptyCell},
			{EmptyCell, EmptyCell, PlayerOneMark},
		},
		CurrentPlayer: PlayerOne,
		MoveCount:     5,
		Result:        WinResult(PlayerOne, DiagonalMain()),
	}

	// When: rendering it as text
	text := state.String()

	// Then: the grid and result are listed
	assert.Equal(t, "X O .\nO X .\n. . X\nplayer 1 wins on diagonal_main\n", text)
}

func TestGameState_JSON(t *testing.T) {
	// Given: a won game
	state := GameState{
		Board:         Board{{PlayerOneMark, PlayerOneMark, PlayerOneMark}, {PlayerTwoMark, PlayerTwoMark, EmptyCell}},
		CurrentPlayer: PlayerOne,
		MoveCount:     5,
		Result:        WinResult(PlayerOne, RowLine(0)),
	}

	// When: it is encoded and decoded
	data, err := json.Marshal(state)
	require.NoError(t, err)

	var decoded GameState
	require.NoError(t, json.Unmarshal(data, &decoded))

	// Then: the state survives unchanged
	require.Equal(t, state, decoded)
}

func TestNewPlayers(t *testing.T) {
	t.Run("Keeps both names", func(t *testing.T) {
		players := NewPlayers("Alice", " Bob ")

		assert.Equal(t, "Alice", players.Name(PlayerOne))
		assert.Equal(t, "Bob", players.Name(PlayerTwo))
	})

	t.Run("Uses defaults when one name is empty", func(t *testing.T) {
		players := NewPlayers("Alice", "")

		assert.Equal(t, DefaultPlayerOneName, players.Name(PlayerOne))
		assert.Equal(t, DefaultPlayerTwoName, players.Name(PlayerTwo))
	})

	t.Run("Uses defaults when both names are blank", func(t *testing.T) {
		players := NewPlayers("  ", "")

		assert.Equal(t, Players{One: DefaultPlayerOneName, Two: DefaultPlayerTwoName}, players)
	})
}
