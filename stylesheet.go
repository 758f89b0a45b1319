package loggy

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// StyleSheet holds user-defined named styles layered over the builtin
// presets. The builtin preset table is never touched: custom styles
// exist only inside the sheet that defined them, and lookups fall back
// to GetStyle for anything the sheet does not name.
type StyleSheet struct {
	styles map[string]Style
}

// styleEntry is one named style in a sheet file: an optional builtin
// base preset plus field overrides. Color values may be palette names
// or raw escape sequences.
type styleEntry struct {
	Base      string `yaml:"base"`
	Overrides `yaml:",inline"`
}

type sheetFile struct {
	Styles map[string]styleEntry `yaml:"styles"`
}

// ParseStyleSheet builds a StyleSheet from YAML of the form:
//
//	styles:
//	  deploy:
//	    base: cli
//	    warn_label: "[hold]"
//	    warn_color: orange
func ParseStyleSheet(data []byte) (*StyleSheet, error) {
	var file sheetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse style sheet: %w", err)
	}
	sheet := &StyleSheet{styles: make(map[string]Style, len(file.Styles))}
	for name, entry := range file.Styles {
		entry.LogColor = normalizeColor(entry.LogColor)
		entry.OkColor = normalizeColor(entry.OkColor)
		entry.InfoColor = normalizeColor(entry.InfoColor)
		entry.WarnColor = normalizeColor(entry.WarnColor)
		entry.ErrColor = normalizeColor(entry.ErrColor)
		sheet.styles[name] = GetStyle(entry.Base, entry.Overrides)
	}
	return sheet, nil
}

// LoadStyleSheet reads and parses a style sheet file.
func LoadStyleSheet(path string) (*StyleSheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read style sheet: %w", err)
	}
	return ParseStyleSheet(data)
}

// Get resolves name against the sheet's custom styles first and the
// builtin presets second. Like GetStyle it never fails; unknown names
// end up on the default preset. Get on a nil sheet is allowed and
// resolves builtins only.
func (s *StyleSheet) Get(name string) Style {
	if s != nil {
		if style, ok := s.styles[name]; ok {
			return style
		}
	}
	return GetStyle(name)
}

// Has reports whether the sheet defines name itself.
func (s *StyleSheet) Has(name string) bool {
	if s == nil {
		return false
	}
	_, ok := s.styles[name]
	return ok
}

// Names returns the sheet's custom style names in sorted order,
// without the builtin presets.
func (s *StyleSheet) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.styles))
	for name := range s.styles {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// normalizeColor maps palette names (dim, orange, ...) to their escape
// sequences and passes everything else through untouched.
func normalizeColor(value *string) *string {
	if value == nil {
		return nil
	}
	if code, ok := PaletteColor(*value); ok {
		return &code
	}
	return value
}
