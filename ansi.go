package loggy

import "strings"

// ANSI escape sequences used by the builtin presets. These are plain
// strings so a Style can carry any escape sequence a terminal accepts,
// not just the ones listed here.
const (
	ColorReset  = "\033[0m"
	ColorBold   = "\033[1m"
	ColorDim    = "\033[2m"
	ColorGray   = "\033[90m"
	ColorRed    = "\033[91m"
	ColorGreen  = "\033[92m"
	ColorBlue   = "\033[94m"
	ColorCyan   = "\033[96m"
	ColorOrange = "\033[38;5;208m" // 256-color, no 16-color equivalent
)

// palette maps the color names accepted in style sheets to their
// escape sequences.
var palette = map[string]string{
	"reset":  ColorReset,
	"bold":   ColorBold,
	"dim":    ColorDim,
	"gray":   ColorGray,
	"red":    ColorRed,
	"green":  ColorGreen,
	"blue":   ColorBlue,
	"cyan":   ColorCyan,
	"orange": ColorOrange,
}

// PaletteColor returns the escape sequence for a named palette color.
// Names are matched case-insensitively.
func PaletteColor(name string) (string, bool) {
	code, ok := palette[strings.ToLower(name)]
	return code, ok
}
