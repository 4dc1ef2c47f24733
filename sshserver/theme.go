package sshserver

import (
	"strconv"

	"pkt.systems/termfolio/schema"
)

type rgb struct {
	r int
	g int
	b int
}

type tuiTheme struct {
	Name     schema.ThemeName
	BG       rgb
	FG       rgb
	ChromeBG rgb
	ChromeFG rgb
	DimFG    rgb
	PromptFG rgb
	ErrorFG  rgb
	TrackFG  rgb
}

const (
	ansiReset  = "\x1b[0m"
	ansiBold   = "\x1b[1m"
	ansiDim    = "\x1b[2m"
	ansiItalic = "\x1b[3m"
)

var (
	gray800 = rgb{r: 31, g: 41, b: 55}
	gray300 = rgb{r: 209, g: 213, b: 219}
	gray700 = rgb{r: 55, g: 65, b: 81}
	gray900 = rgb{r: 17, g: 24, b: 39}
	red400  = rgb{r: 248, g: 113, b: 113}
)

var tuiThemes = map[schema.ThemeName]tuiTheme{
	schema.ThemeNeonGreen: {
		Name:     schema.ThemeNeonGreen,
		BG:       rgb{r: 0, g: 0, b: 0},
		FG:       rgb{r: 74, g: 222, b: 128},
		ChromeBG: gray800,
		ChromeFG: gray300,
		DimFG:    rgb{r: 34, g: 142, b: 74},
		PromptFG: rgb{r: 134, g: 239, b: 172},
		ErrorFG:  red400,
		TrackFG:  gray700,
	},
	schema.ThemeMatrixBlue: {
		Name:     schema.ThemeMatrixBlue,
		BG:       gray900,
		FG:       rgb{r: 96, g: 165, b: 250},
		ChromeBG: gray800,
		ChromeFG: gray300,
		DimFG:    rgb{r: 59, g: 110, b: 176},
		PromptFG: rgb{r: 147, g: 197, b: 253},
		ErrorFG:  red400,
		TrackFG:  gray700,
	},
	schema.ThemeAmberCRT: {
		Name:     schema.ThemeAmberCRT,
		BG:       gray900,
		FG:       rgb{r: 251, g: 191, b: 36},
		ChromeBG: gray800,
		ChromeFG: gray300,
		DimFG:    rgb{r: 180, g: 132, b: 20},
		PromptFG: rgb{r: 252, g: 211, b: 77},
		ErrorFG:  red400,
		TrackFG:  gray700,
	},
}

func themeForName(name schema.ThemeName) tuiTheme {
	if name == "" {
		name = schema.DefaultTheme
	}
	if theme, ok := tuiThemes[name]; ok {
		return theme
	}
	return tuiThemes[schema.DefaultTheme]
}

// base restores the theme colours after a styled span.
func (t tuiTheme) base() string {
	return ansiReset + ansiBgRGB(t.BG) + ansiFgRGB(t.FG)
}

// chrome is the style of the title and status bars.
func (t tuiTheme) chrome() string {
	return ansiReset + ansiBgRGB(t.ChromeBG) + ansiFgRGB(t.ChromeFG)
}

func ansiFgRGB(c rgb) string {
	return "\x1b[38;2;" + strconv.Itoa(c.r) + ";" + strconv.Itoa(c.g) + ";" + strconv.Itoa(c.b) + "m"
}

func ansiBgRGB(c rgb) string {
	return "\x1b[48;2;" + strconv.Itoa(c.r) + ";" + strconv.Itoa(c.g) + ";" + strconv.Itoa(c.b) + "m"
}
