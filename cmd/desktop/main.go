package main

import (
	"image/color"
	"log"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"goscheme/pkg/grid"
	"goscheme/pkg/repl"
	"goscheme/pkg/utils"
)

const (
	screenWidth  = 640
	screenHeight = 480

	charWidth  = 7
	charHeight = 13

	cols = screenWidth / charWidth
	// the bottom row is the status line
	rows = screenHeight/charHeight - 1
)

var (
	valueColor = color.RGBA{0x80, 0xff, 0x80, 0xff}
	errorColor = color.RGBA{0xff, 0x60, 0x60, 0xff}
	inputColor = color.White
)

type line struct {
	text string
	clr  color.Color
}

type Game struct {
	session    *repl.Session
	transcript []line
	input      []rune
	face       *text.GoXFace
	quit       bool
}

func newGame() *Game {
	return &Game{
		session: repl.NewSession(),
		face:    text.NewGoXFace(basicfont.Face7x13),
	}
}

func (g *Game) appendLine(s string, clr color.Color) {
	for _, l := range strings.Split(s, "\n") {
		g.transcript = append(g.transcript, line{text: l, clr: clr})
	}
}

// submit feeds the current input line to the session and records the echo
// and any results in the transcript.
func (g *Game) submit() {
	src := string(g.input)
	g.input = g.input[:0]
	g.appendLine(g.session.Prompt()+src, inputColor)

	res, ok := g.session.Feed(src)
	if !ok {
		return
	}
	if res.Quit {
		g.quit = true
		return
	}
	g.showResult(res)
}

func (g *Game) showResult(res repl.Result) {
	for _, v := range res.Values {
		g.appendLine(v.String(), valueColor)
	}
	if res.Err != nil {
		g.appendLine(res.Err.Error(), errorColor)
	}
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	g.input = append(g.input, ebiten.AppendInputChars(nil)...)
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.submit()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(g.input) > 0 {
		g.input = g.input[:len(g.input)-1]
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.session.Reset()
		g.input = g.input[:0]
	}
	return nil
}

// visibleRows wraps the transcript and the live input line to the grid and
// keeps the rows that fit on screen.
func (g *Game) visibleRows() []line {
	all := append(append([]line(nil), g.transcript...), line{text: g.session.Prompt() + string(g.input) + "_", clr: inputColor})

	var wrapped []line
	for _, l := range all {
		for _, r := range grid.Wrap([]string{l.text}, cols) {
			wrapped = append(wrapped, line{text: r, clr: l.clr})
		}
	}
	if len(wrapped) > rows {
		wrapped = wrapped[len(wrapped)-rows:]
	}
	return wrapped
}

func (g *Game) Draw(screen *ebiten.Image) {
	for i, l := range g.visibleRows() {
		op := &text.DrawOptions{}
		op.GeoM.Translate(0, float64(i*charHeight))
		op.ColorScale.ScaleWithColor(l.clr)
		text.Draw(screen, l.text, g.face, op)
	}

	status := "Enter: eval  Esc: clear  " + repl.QuitCommand + ": exit"
	if g.session.Pending() {
		status = "(continuing expression)  " + status
	}
	ebitenutil.DebugPrintAt(screen, status, 0, rows*charHeight)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	game := newGame()

	if len(os.Args) > 1 {
		fullPath, _, err := utils.GetPathInfo(os.Args[1])
		if err != nil {
			log.Fatalf("Failed to resolve source file: %v", err)
		}
		sourceBytes, err := os.ReadFile(fullPath)
		if err != nil {
			log.Fatalf("Failed to read source file: %v", err)
		}
		res, ok := game.session.Feed(string(sourceBytes))
		if !ok {
			log.Fatalf("Source file %s ends inside an expression", fullPath)
		}
		game.showResult(res)
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("goscheme")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
