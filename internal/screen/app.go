// Package screen hosts the game in an ebiten window: it maps pointer and key
// input onto the frame driver and draws the frames it produces.
package screen

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/ripple-rush/internal/config"
	"github.com/iburimskiy/ripple-rush/internal/game"
)

// App implements ebiten.Game on top of a game.Driver. ebiten calls Update
// once per tick; App only forwards the tick while the driver has work.
type App struct {
	driver *game.Driver
	theme  Theme
	log    *log.Logger

	frame game.Frame

	// device scale factor, fixed when the window is first laid out
	scale float64

	// button state
	buttonHovered bool
	buttonPressed bool
}

func NewApp(d *game.Driver, theme Theme, logger *log.Logger) *App {
	if logger == nil {
		logger = log.Default()
	}
	return &App{
		driver: d,
		theme:  theme,
		log:    logger,
		frame:  d.Frame(),
	}
}

func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		a.driver.Cancel()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		a.theme = a.theme.toggled()
		a.log.Debug("theme changed", "theme", a.theme.Name)
	}

	x, y := a.cursor()
	buttonVisible := a.frame.State != game.Running

	a.buttonHovered = buttonVisible && inside(x, y, config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight)
	if a.buttonHovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		a.buttonPressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if a.buttonPressed && a.buttonHovered {
			a.driver.Start()
		}
		a.buttonPressed = false
	}
	if buttonVisible && (inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)) {
		a.driver.Start()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) &&
		inside(x, y, config.CanvasX, config.CanvasY, config.CanvasWidth, config.CanvasHeight) {
		a.driver.Click(x-config.CanvasX, y-config.CanvasY)
	}

	if a.driver.Active() {
		a.frame = a.driver.Tick()
	} else {
		a.frame = a.driver.Frame()
	}
	return nil
}

// Layout sizes the screen in device pixels so that shapes stay crisp on
// high density displays. The scale factor is read once, on the first call.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if a.scale == 0 {
		a.mount()
	}
	return int(config.WindowWidth * a.scale), int(config.WindowHeight * a.scale)
}

func (a *App) mount() {
	a.scale = 1
	if m := ebiten.Monitor(); m != nil {
		if s := m.DeviceScaleFactor(); s > 0 {
			a.scale = s
		}
	}
	a.log.Debug("canvas mounted", "scale", a.scale, "width", config.CanvasWidth, "height", config.CanvasHeight)
}

// cursor returns the pointer position in logical pixels.
func (a *App) cursor() (float64, float64) {
	mx, my := ebiten.CursorPosition()
	s := a.scale
	if s == 0 {
		s = 1
	}
	return float64(mx) / s, float64(my) / s
}
