package surface

import (
	"context"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

type gameEngine interface {
	ApplyMove(ctx context.Context, row, col int) (entity.GameState, error)
	Reset(ctx context.Context) entity.GameState
	CurrentState() entity.GameState
}

type PhaseKind string

const (
	PhaseAwaitingMove PhaseKind = "awaiting_move"
	PhaseDecided      PhaseKind = "decided"
)

// Phase is the combined surface and engine state: AwaitingMove(Player) or Decided(Result).
type Phase struct {
	Kind   PhaseKind
	Player entity.PlayerID
	Result entity.GameResult
}

// Surface turns pointer events into moves and game state into a RenderPlan.
// It never changes the board itself.
type Surface struct {
	logger *slog.Logger
	engine gameEngine

	players entity.Players
	theme   Theme

	side      float64
	plan      RenderPlan
	renders   int
	listeners []func(RenderPlan)
}

func New(logger *slog.Logger, engine gameEngine, players entity.Players, theme Theme) *Surface {
	surface := &Surface{
		logger:  logger.With("component", "surface"),
		engine:  engine,
		players: players,
		theme:   theme,
	}

	surface.plan = BuildPlan(engine.CurrentState(), 0, players, theme)

	return surface
}

// OnRender registers fn to be called with every new plan.
func (that *Surface) OnRender(fn func(RenderPlan)) {
	that.listeners = append(that.listeners, fn)
}

// Resize sets the drawing area; the board uses the largest square that fits.
func (that *Surface) Resize(width, height float64) {
	side := SquareSide(width, height)
	if side == that.side {
		return
	}

	that.side = side
	that.render()
}

func (that *Surface) Side() float64 {
	return that.side
}

func (that *Surface) CellSize() float64 {
	return CellSize(that.side)
}

func (that *Surface) CellAt(x, y float64) (row, col int, inside bool) {
	return CellAt(that.side, x, y)
}

// PointerDown handles a press at (x, y) relative to the board. It reports whether
// the move was accepted. Presses are dropped without reaching the engine once the
// game is decided.
func (that *Surface) PointerDown(ctx context.Context, x, y float64) bool {
	log := that.logger.With("method", "PointerDown")

	if that.IsTerminal() {
		log.Debug("game is decided, pointer ignored")
		return false
	}

	// out-of-board indices still go to the engine, which rejects them as out of bounds
	row, okRow := CellIndex(that.side, y)
	col, okCol := CellIndex(that.side, x)
	if !okRow || !okCol {
		log.Debug("pointer cannot be mapped to the board", "x", x, "y", y, "side", that.side)
		return false
	}

	state, err := that.engine.ApplyMove(ctx, row, col)
	if err != nil {
		log.Debug("move rejected", "row", row, "col", col, "error", err)
		return false
	}

	log.Debug("move accepted", "row", row, "col", col, "moves", state.MoveCount)
	that.render()

	return true
}

// Reset starts a new game and redraws.
func (that *Surface) Reset(ctx context.Context) {
	that.engine.Reset(ctx)
	that.render()
}

func (that *Surface) Plan() RenderPlan {
	return that.plan
}

// Renders returns how many plans have been produced since construction.
func (that *Surface) Renders() int {
	return that.renders
}

func (that *Surface) State() entity.GameState {
	return that.engine.CurrentState()
}

func (that *Surface) IsTerminal() bool {
	return that.engine.CurrentState().IsTerminal()
}

func (that *Surface) Status() string {
	return StatusText(that.engine.CurrentState(), that.players)
}

func (that *Surface) Affordances() Affordances {
	return that.plan.Affordances
}

func (that *Surface) Phase() Phase {
	state := that.engine.CurrentState()
	if state.IsTerminal() {
		return Phase{Kind: PhaseDecided, Result: state.Result}
	}

	return Phase{Kind: PhaseAwaitingMove, Player: state.CurrentPlayer, Result: state.Result}
}

func (that *Surface) render() {
	that.plan = BuildPlan(that.engine.CurrentState(), that.side, that.players, that.theme)
	that.renders++

	for _, fn := range that.listeners {
		fn(that.plan)
	}
}
