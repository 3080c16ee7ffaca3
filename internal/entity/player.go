package entity

import (
	"fmt"
	"strings"
)

const (
	DefaultPlayerOneName = "Player 1"
	DefaultPlayerTwoName = "Player 2"
)

// Players holds the display names shown for each player.
type Players struct {
	One string `json:"one"`
	Two string `json:"two"`
}

// NewPlayers keeps the given names only when both are set; otherwise both defaults are used.
func NewPlayers(one, two string) Players {
	one, two = strings.TrimSpace(one), strings.TrimSpace(two)
	if one == "" || two == "" {
		return Players{One: DefaultPlayerOneName, Two: DefaultPlayerTwoName}
	}

	return Players{One: one, Two: two}
}

func (that Players) Name(id PlayerID) string {
	switch id {
	case PlayerOne:
		return that.One
	case PlayerTwo:
		return that.Two
	default:
		return fmt.Sprintf("Player %d", id)
	}
}
