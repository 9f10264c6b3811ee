package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/ft-shmup/components"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette hex definitions
const (
	hexBackground   = "#1a1b26" // Tokyo Night background
	hexDot          = "#565f89" // Muted slate before blending
	hexPlayer       = "#7dcfff" // Cyan
	hexPlayerBullet = "#e0af68" // Amber
	hexEnemyBullet  = "#f7768e" // Soft red
	hexEnemy        = "#9ece6a" // Green
	hexScripted     = "#bb9af7" // Purple
	hexBoss         = "#ff5555" // Bright red
	hexStatus       = "#ffffff" // White
	hexDebug        = "#b4b4b4" // Gray
	hexGameOver     = "#ffa500" // Orange
)

// dotBlend pulls the background dot toward the backdrop so entities stand out
const dotBlend = 0.45

// RGB colors resolved from the palette
var (
	RgbBackground   = hexColor(hexBackground)
	RgbDot          = blendColor(hexDot, hexBackground, dotBlend)
	RgbPlayer       = hexColor(hexPlayer)
	RgbPlayerBullet = hexColor(hexPlayerBullet)
	RgbEnemyBullet  = hexColor(hexEnemyBullet)
	RgbEnemy        = hexColor(hexEnemy)
	RgbScripted     = hexColor(hexScripted)
	RgbBoss         = hexColor(hexBoss)
	RgbStatus       = hexColor(hexStatus)
	RgbDebug        = hexColor(hexDebug)
	RgbGameOver     = hexColor(hexGameOver)
)

// classStyles maps semantic color classes to terminal styles
var classStyles = map[components.ColorClass]tcell.Style{
	components.ColorBackground:    baseStyle().Foreground(RgbDot),
	components.ColorPlayer:        baseStyle().Foreground(RgbPlayer).Bold(true),
	components.ColorPlayerBullet:  baseStyle().Foreground(RgbPlayerBullet),
	components.ColorEnemyBullet:   baseStyle().Foreground(RgbEnemyBullet),
	components.ColorEnemy:         baseStyle().Foreground(RgbEnemy),
	components.ColorScriptedEnemy: baseStyle().Foreground(RgbScripted),
	components.ColorBoss:          baseStyle().Foreground(RgbBoss).Bold(true),
	components.ColorStatus:        baseStyle().Foreground(RgbStatus),
	components.ColorDebug:         baseStyle().Foreground(RgbDebug),
	components.ColorGameOver:      baseStyle().Foreground(RgbGameOver).Bold(true),
}

// StyleFor resolves a color class, unknown classes fall back to the base style
func StyleFor(class components.ColorClass) tcell.Style {
	if style, ok := classStyles[class]; ok {
		return style
	}
	return baseStyle()
}

func baseStyle() tcell.Style {
	return tcell.StyleDefault.Background(RgbBackground)
}

// hexColor parses a hex string, malformed input yields the terminal default
func hexColor(hex string) tcell.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return tcell.ColorDefault
	}
	return toTcell(c)
}

// blendColor mixes from toward to by t in Lab space
func blendColor(from, to string, t float64) tcell.Color {
	a, err := colorful.Hex(from)
	if err != nil {
		return tcell.ColorDefault
	}
	b, err := colorful.Hex(to)
	if err != nil {
		return toTcell(a)
	}
	return toTcell(a.BlendLab(b, t).Clamped())
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
