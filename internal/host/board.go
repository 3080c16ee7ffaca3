// Package host runs the board surface in a desktop window.
package host

import (
	"context"
	"image"
	"image/color"
	"log/slog"
	"math"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
	"github.com/rocketscienceinc/tictactoe-board/internal/surface"
)

const (
	headerHeight  = 56
	footerHeight  = 72
	buttonWidth   = 160
	buttonHeight  = 44
	buttonSpacing = 24
	textScale     = 2
	ellipseSteps  = 64
)

var (
	backgroundColor   = colornames.White
	textColor         = colornames.Black
	buttonColor       = colornames.Lightgray
	buttonBorderColor = colornames.Dimgray
)

type boardSurface interface {
	Resize(width, height float64)
	PointerDown(ctx context.Context, x, y float64) bool
	Reset(ctx context.Context)
	Plan() surface.RenderPlan
	State() entity.GameState
	IsTerminal() bool
}

// Board is the ebiten.Game that owns the window: a status line on top, the
// square board in the middle and the end-of-game buttons below it.
type Board struct {
	ctx    context.Context
	logger *slog.Logger
	board  boardSurface

	face *text.GoXFace

	width, height int
	origin        image.Point
	playAgain     image.Rectangle
	home          image.Rectangle

	touchIDs []ebiten.TouchID
	quit     bool
}

// New - ctx ends the run when it is cancelled.
func New(ctx context.Context, logger *slog.Logger, board boardSurface) *Board {
	return &Board{
		ctx:    ctx,
		logger: logger.With("component", "host"),
		board:  board,
		face:   text.NewGoXFace(basicfont.Face7x13),
	}
}

// Run opens the window and blocks until it is closed.
func (that *Board) Run(title string, width, height int) error {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return ebiten.RunGame(that)
}

func (that *Board) Update() error {
	if that.quit || that.ctx.Err() != nil {
		return ebiten.Termination
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		that.press(ebiten.CursorPosition())
	}

	that.touchIDs = inpututil.AppendJustPressedTouchIDs(that.touchIDs[:0])
	for _, id := range that.touchIDs {
		that.press(ebiten.TouchPosition(id))
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR) && that.board.IsTerminal():
		that.board.Reset(that.ctx)
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		that.copyBoard()
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		that.quit = true
	}

	return nil
}

func (that *Board) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	plan := that.board.Plan()

	that.drawText(screen, plan.Status, float64(that.width)/2, headerHeight/2)

	ox, oy := float32(that.origin.X), float32(that.origin.Y)
	for _, line := range plan.Grid {
		strokeLine(screen, ox, oy, line)
	}
	for _, line := range plan.Crosses {
		strokeLine(screen, ox, oy, line)
	}
	for _, ellipse := range plan.Circles {
		strokeEllipse(screen, ox, oy, ellipse)
	}
	if plan.WinLine != nil {
		strokeLine(screen, ox, oy, *plan.WinLine)
	}

	if plan.Affordances.PlayAgain {
		that.drawButton(screen, that.playAgain, "Play Again")
	}
	if plan.Affordances.Home {
		that.drawButton(screen, that.home, "Home")
	}
}

// Layout places the board in whatever space the window gives it.
func (that *Board) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth == that.width && outsideHeight == that.height {
		return outsideWidth, outsideHeight
	}

	that.width, that.height = outsideWidth, outsideHeight

	side := surface.SquareSide(float64(outsideWidth), float64(outsideHeight-headerHeight-footerHeight))
	that.origin = image.Pt((outsideWidth-int(side))/2, headerHeight)
	that.board.Resize(side, side)

	footerTop := headerHeight + int(side) + (footerHeight-buttonHeight)/2
	left := (outsideWidth - 2*buttonWidth - buttonSpacing) / 2
	that.playAgain = image.Rect(left, footerTop, left+buttonWidth, footerTop+buttonHeight)
	that.home = that.playAgain.Add(image.Pt(buttonWidth+buttonSpacing, 0))

	return outsideWidth, outsideHeight
}

func (that *Board) press(x, y int) {
	log := that.logger.With("method", "press")

	pt := image.Pt(x, y)

	if that.board.IsTerminal() {
		switch {
		case pt.In(that.playAgain):
			log.Info("play again")
			that.board.Reset(that.ctx)
		case pt.In(that.home):
			log.Info("home")
			that.quit = true
		}

		return
	}

	that.board.PointerDown(that.ctx, float64(x-that.origin.X), float64(y-that.origin.Y))
}

func (that *Board) copyBoard() {
	if err := clipboard.WriteAll(that.board.State().String()); err != nil {
		that.logger.Error("failed to copy board to clipboard", "error", err)
		return
	}

	that.logger.Info("board copied to clipboard")
}

func (that *Board) drawButton(screen *ebiten.Image, rect image.Rectangle, label string) {
	x, y := float32(rect.Min.X), float32(rect.Min.Y)
	w, h := float32(rect.Dx()), float32(rect.Dy())

	vector.FillRect(screen, x, y, w, h, buttonColor, false)
	vector.StrokeRect(screen, x, y, w, h, 2, buttonBorderColor, false)

	center := rect.Min.Add(rect.Max).Div(2)
	that.drawText(screen, label, float64(center.X), float64(center.Y))
}

// drawText writes s centred on (x, y).
func (that *Board) drawText(screen *ebiten.Image, s string, x, y float64) {
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Scale(textScale, textScale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(textColor)

	text.Draw(screen, s, that.face, op)
}

func strokeLine(screen *ebiten.Image, ox, oy float32, line surface.Line) {
	vector.StrokeLine(screen,
		ox+float32(line.X1), oy+float32(line.Y1),
		ox+float32(line.X2), oy+float32(line.Y2),
		float32(line.Width), colorOrDefault(line.Color), true)
}

func strokeEllipse(screen *ebiten.Image, ox, oy float32, ellipse surface.Ellipse) {
	clr := colorOrDefault(ellipse.Color)
	cx, cy := ox+float32(ellipse.CX), oy+float32(ellipse.CY)

	if ellipse.RX == ellipse.RY {
		vector.StrokeCircle(screen, cx, cy, float32(ellipse.RX), float32(ellipse.Width), clr, true)
		return
	}

	prevX, prevY := cx+float32(ellipse.RX), cy
	for i := 1; i <= ellipseSteps; i++ {
		angle := 2 * math.Pi * float64(i) / ellipseSteps
		x := cx + float32(ellipse.RX*math.Cos(angle))
		y := cy + float32(ellipse.RY*math.Sin(angle))
		vector.StrokeLine(screen, prevX, prevY, x, y, float32(ellipse.Width), clr, true)
		prevX, prevY = x, y
	}
}

func colorOrDefault(c color.Color) color.Color {
	if c == nil {
		return textColor
	}
	return c
}
