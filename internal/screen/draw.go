package screen

import (
	"image"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/samber/lo"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/ripple-rush/internal/config"
	"github.com/iburimskiy/ripple-rush/internal/game"
)

var face = text.NewGoXFace(basicfont.Face7x13)

const (
	glyphWidth  = 7
	glyphHeight = 13
)

func (a *App) Draw(screen *ebiten.Image) {
	// not mounted yet; skip this frame and keep ticking
	if screen == nil || a.scale == 0 {
		return
	}

	a.drawBackground(screen)
	a.drawCanvas(screen)

	switch a.frame.State {
	case game.Running:
		a.drawRunning(screen)
	case game.Finished:
		a.drawFinished(screen)
		a.drawButton(screen, "Try Again")
	default:
		a.drawIdle(screen)
		a.drawButton(screen, "Start Game")
	}

	a.drawText(screen, lo.Ternary(a.theme.Name == Dark.Name, "[T] light", "[T] dark"),
		config.ToggleX-40, config.ToggleY, 1, a.theme.Text)
}

func (a *App) drawBackground(screen *ebiten.Image) {
	t := a.theme
	h := float64(config.WindowHeight)
	for y := 0; y < config.WindowHeight; y += 4 {
		ratio := float64(y) / h
		r, g, b := hsvToRgb(t.BackgroundHue+ratio*20, t.BackgroundSat, clamp01(t.BackgroundVal+0.06*ratio))
		a.fillRect(screen, 0, float64(y), config.WindowWidth, 4, color.RGBA{R: r, G: g, B: b, A: 255})
	}
}

func (a *App) drawCanvas(screen *ebiten.Image) {
	s := float32(a.scale)
	x, y := float32(config.CanvasX)*s, float32(config.CanvasY)*s
	w, h := float32(config.CanvasWidth)*s, float32(config.CanvasHeight)*s

	vector.DrawFilledRect(screen, x, y, w, h, a.theme.Canvas, false)

	// ripples are clipped to the canvas box
	bounds := image.Rect(int(x), int(y), int(x+w), int(y+h))
	canvas, ok := screen.SubImage(bounds).(*ebiten.Image)
	if !ok {
		return
	}
	for _, r := range a.frame.Ripples {
		cx := float32(config.CanvasX+r.X) * s
		cy := float32(config.CanvasY+r.Y) * s
		vector.StrokeCircle(canvas, cx, cy, float32(r.Radius)*s, config.RippleStrokeWidth*s, rippleColor(r.Opacity), true)
	}

	vector.StrokeRect(screen, x, y, w, h, 2*s, a.theme.Border, false)
}

func (a *App) drawIdle(screen *ebiten.Image) {
	a.drawCentered(screen, config.Title, 40, 4, a.theme.Text)
	a.drawCentered(screen, "Click as fast as you can in 10 seconds.", 100, 1, a.theme.Text)
	a.drawCentered(screen, "Each click creates a ripple in the water.", 116, 1, a.theme.Text)
}

func (a *App) drawRunning(screen *ebiten.Image) {
	f := a.frame
	left := float64(config.CanvasX + 24)
	a.drawText(screen, "Time Left", left, 60, 2, a.theme.Text)
	a.drawText(screen, formatSeconds(f.TimeLeft), left, 100, 4, a.theme.Text)

	clicks := strconv.Itoa(f.Clicks)
	right := float64(config.CanvasX + config.CanvasWidth - 24)
	a.drawText(screen, "Clicks", right-float64(len("Clicks")*glyphWidth*2), 60, 2, a.theme.Text)
	a.drawText(screen, clicks, right-float64(len(clicks)*glyphWidth*4), 100, 4, a.theme.Text)
}

func (a *App) drawFinished(screen *ebiten.Image) {
	a.drawCentered(screen, "Time's Up!", 16, 3, a.theme.Text)
	a.drawCentered(screen, a.frame.ScoreText(), 60, 5, rippleColor(1))
	a.drawCentered(screen, "Clicks Per Second", 130, 1, a.theme.Text)
}

func (a *App) drawButton(screen *ebiten.Image, label string) {
	var bg color.Color
	switch {
	case a.buttonPressed:
		bg = a.theme.ButtonPressed
	case a.buttonHovered:
		bg = a.theme.ButtonHover
	default:
		bg = a.theme.Button
	}
	a.fillRect(screen, config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight, bg)

	s := float32(a.scale)
	vector.StrokeRect(screen, config.ButtonX*s, config.ButtonY*s, config.ButtonWidth*s, config.ButtonHeight*s, 2*s, a.theme.ButtonBorder, false)

	textWidth := len(label) * glyphWidth
	textX := config.ButtonX + (config.ButtonWidth-textWidth)/2
	textY := config.ButtonY + (config.ButtonHeight-glyphHeight)/2
	a.drawText(screen, label, float64(textX), float64(textY), 1, a.theme.ButtonText)
}

// drawCentered draws str horizontally centered at logical row y, magnified by size.
func (a *App) drawCentered(screen *ebiten.Image, str string, y, size float64, clr color.Color) {
	w := float64(len(str)*glyphWidth) * size
	a.drawText(screen, str, (config.WindowWidth-w)/2, y, size, clr)
}

// drawText draws str with its top left corner at logical (x, y).
func (a *App) drawText(screen *ebiten.Image, str string, x, y, size float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(size*a.scale, size*a.scale)
	op.GeoM.Translate(x*a.scale, y*a.scale)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

func (a *App) fillRect(screen *ebiten.Image, x, y, w, h float64, clr color.Color) {
	s := a.scale
	vector.DrawFilledRect(screen, float32(x*s), float32(y*s), float32(w*s), float32(h*s), clr, false)
}
