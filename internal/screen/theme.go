package screen

import "image/color"

// Theme is a color palette for everything around the canvas.
type Theme struct {
	Name string

	// Background gradient, in HSV
	BackgroundHue float64
	BackgroundSat float64
	BackgroundVal float64

	Canvas        color.RGBA
	Border        color.RGBA
	Text          color.RGBA
	Button        color.RGBA
	ButtonHover   color.RGBA
	ButtonPressed color.RGBA
	ButtonBorder  color.RGBA
	ButtonText    color.RGBA
}

// Ripple stroke color; only the alpha changes per frame.
var rippleAccent = color.NRGBA{R: 250, G: 204, B: 21}

var (
	Dark = Theme{
		Name:          "dark",
		BackgroundHue: 225,
		BackgroundSat: 0.55,
		BackgroundVal: 0.12,
		Canvas:        color.RGBA{R: 23, G: 37, B: 84, A: 255},
		Border:        color.RGBA{R: 60, G: 70, B: 90, A: 255},
		Text:          color.RGBA{R: 240, G: 240, B: 245, A: 255},
		Button:        color.RGBA{R: 250, G: 204, B: 21, A: 255},
		ButtonHover:   color.RGBA{R: 230, G: 186, B: 16, A: 255},
		ButtonPressed: color.RGBA{R: 200, G: 160, B: 12, A: 255},
		ButtonBorder:  color.RGBA{R: 150, G: 170, B: 200, A: 255},
		ButtonText:    color.RGBA{R: 23, G: 37, B: 84, A: 255},
	}
	Light = Theme{
		Name:          "light",
		BackgroundHue: 220,
		BackgroundSat: 0.08,
		BackgroundVal: 0.96,
		Canvas:        color.RGBA{R: 23, G: 37, B: 84, A: 255},
		Border:        color.RGBA{R: 200, G: 205, B: 215, A: 255},
		Text:          color.RGBA{R: 20, G: 24, B: 36, A: 255},
		Button:        color.RGBA{R: 23, G: 37, B: 84, A: 255},
		ButtonHover:   color.RGBA{R: 40, G: 58, B: 120, A: 255},
		ButtonPressed: color.RGBA{R: 15, G: 25, B: 60, A: 255},
		ButtonBorder:  color.RGBA{R: 60, G: 70, B: 90, A: 255},
		ButtonText:    color.RGBA{R: 250, G: 250, B: 250, A: 255},
	}
)

// ThemeByName returns the named palette, falling back to Dark.
func ThemeByName(name string) Theme {
	if name == Light.Name {
		return Light
	}
	return Dark
}

func (t Theme) toggled() Theme {
	if t.Name == Light.Name {
		return Dark
	}
	return Light
}

func rippleColor(opacity float64) color.NRGBA {
	c := rippleAccent
	c.A = uint8(clamp01(opacity) * 255)
	return c
}
