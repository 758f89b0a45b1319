package loggy

import (
	"slices"
)

// Builtin preset names.
const (
	StyleDefault = "default"
	StyleClassic = "classic"
	StyleMinimal = "minimal"
	StyleCLI     = "cli"
	StyleEmoji   = "emoji"
	StylePlain   = "plain"
)

// presets is the fixed preset table. It is built once at process start
// and only ever read afterwards; GetStyle hands out copies.
var presets = map[string]Style{
	StyleDefault: {
		LogLabel: "[Log]", OkLabel: "[OK]", InfoLabel: "[Info]", WarnLabel: "[Warn]", ErrLabel: "[Error]",
		LogIcon: "•", OkIcon: "✅", InfoIcon: "ℹ️", WarnIcon: "⚠️", ErrIcon: "❌",
		LogColor: ColorDim, OkColor: ColorGreen, InfoColor: ColorBlue, WarnColor: ColorOrange, ErrColor: ColorRed,
	},
	StyleClassic: {
		LogLabel: "[LOG]", OkLabel: "[OK]", InfoLabel: "[INFO]", WarnLabel: "[WARN]", ErrLabel: "[ERR]",
		LogColor: ColorDim, OkColor: ColorGreen, InfoColor: ColorBlue, WarnColor: ColorOrange, ErrColor: ColorRed,
	},
	StyleMinimal: {
		LogIcon: "•", OkIcon: "✓", InfoIcon: "i", WarnIcon: "!", ErrIcon: "x",
		LogColor: ColorGray, OkColor: ColorGreen, InfoColor: ColorGray, WarnColor: ColorOrange, ErrColor: ColorRed,
	},
	StyleCLI: {
		LogLabel: "[step]", OkLabel: "[ok]", InfoLabel: "[info]", WarnLabel: "[warn]", ErrLabel: "[error]",
		LogIcon: "›", OkIcon: "✔", InfoIcon: "ℹ", WarnIcon: "▲", ErrIcon: "✖",
		LogColor: ColorDim, OkColor: ColorGreen, InfoColor: ColorCyan, WarnColor: ColorOrange, ErrColor: ColorRed,
	},
	StyleEmoji: {
		LogLabel: "[Log]", OkLabel: "[OK]", InfoLabel: "[Info]", WarnLabel: "[Warn]", ErrLabel: "[Error]",
		LogIcon: "📝", OkIcon: "✅", InfoIcon: "🧠", WarnIcon: "⚠️", ErrIcon: "💥",
		LogColor: ColorDim, OkColor: ColorGreen, InfoColor: ColorBlue, WarnColor: ColorOrange, ErrColor: ColorRed,
	},
	StylePlain: {
		LogLabel: "[Log]", OkLabel: "[OK]", InfoLabel: "[Info]", WarnLabel: "[Warn]", ErrLabel: "[Error]",
	},
}

// GetStyle resolves a preset by name and applies any overrides on top.
// Unknown names fall back to the default preset, so resolution never
// fails. The returned Style is a copy; the preset table itself is
// never modified.
func GetStyle(name string, overrides ...Overrides) Style {
	style, ok := presets[name]
	if !ok {
		style = presets[StyleDefault]
	}
	for _, o := range overrides {
		style = style.Merge(o)
	}
	return style
}

// StyleNames returns the builtin preset names in sorted order.
func StyleNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
