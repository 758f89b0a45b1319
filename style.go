package loggy

import "fmt"

// Kind identifies one of the five message categories a Logger can emit.
type Kind int

const (
	KindLog Kind = iota
	KindOK
	KindInfo
	KindWarn
	KindErr
)

// Kinds lists all message kinds in emission-table order.
var Kinds = []Kind{KindLog, KindOK, KindInfo, KindWarn, KindErr}

func (k Kind) String() string {
	switch k {
	case KindLog:
		return "log"
	case KindOK:
		return "ok"
	case KindInfo:
		return "info"
	case KindWarn:
		return "warn"
	case KindErr:
		return "err"
	default:
		return "unknown"
	}
}

// ParseKind converts a kind name back into a Kind.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "log":
		return KindLog, nil
	case "ok":
		return KindOK, nil
	case "info":
		return KindInfo, nil
	case "warn", "warning":
		return KindWarn, nil
	case "err", "error":
		return KindErr, nil
	default:
		return KindLog, fmt.Errorf("unknown message kind: %q", name)
	}
}

// Style holds the label, icon and color used for each message kind.
// A Style is a plain value: methods that change it return a modified
// copy and leave the receiver untouched, so styles can be shared
// freely between loggers.
type Style struct {
	LogLabel  string
	OkLabel   string
	InfoLabel string
	WarnLabel string
	ErrLabel  string

	LogIcon  string
	OkIcon   string
	InfoIcon string
	WarnIcon string
	ErrIcon  string

	LogColor  string
	OkColor   string
	InfoColor string
	WarnColor string
	ErrColor  string
}

// Label returns the label for the given kind.
func (s Style) Label(k Kind) string {
	switch k {
	case KindLog:
		return s.LogLabel
	case KindOK:
		return s.OkLabel
	case KindInfo:
		return s.InfoLabel
	case KindWarn:
		return s.WarnLabel
	case KindErr:
		return s.ErrLabel
	default:
		return ""
	}
}

// Icon returns the icon for the given kind.
func (s Style) Icon(k Kind) string {
	switch k {
	case KindLog:
		return s.LogIcon
	case KindOK:
		return s.OkIcon
	case KindInfo:
		return s.InfoIcon
	case KindWarn:
		return s.WarnIcon
	case KindErr:
		return s.ErrIcon
	default:
		return ""
	}
}

// Color returns the color escape sequence for the given kind.
func (s Style) Color(k Kind) string {
	switch k {
	case KindLog:
		return s.LogColor
	case KindOK:
		return s.OkColor
	case KindInfo:
		return s.InfoColor
	case KindWarn:
		return s.WarnColor
	case KindErr:
		return s.ErrColor
	default:
		return ""
	}
}

// WithLogLabel returns a copy of the style with the log label replaced.
func (s Style) WithLogLabel(label string) Style { s.LogLabel = label; return s }

// WithOkLabel returns a copy of the style with the ok label replaced.
func (s Style) WithOkLabel(label string) Style { s.OkLabel = label; return s }

// WithInfoLabel returns a copy of the style with the info label replaced.
func (s Style) WithInfoLabel(label string) Style { s.InfoLabel = label; return s }

// WithWarnLabel returns a copy of the style with the warn label replaced.
func (s Style) WithWarnLabel(label string) Style { s.WarnLabel = label; return s }

// WithErrLabel returns a copy of the style with the err label replaced.
func (s Style) WithErrLabel(label string) Style { s.ErrLabel = label; return s }

// WithLogIcon returns a copy of the style with the log icon replaced.
func (s Style) WithLogIcon(icon string) Style { s.LogIcon = icon; return s }

// WithOkIcon returns a copy of the style with the ok icon replaced.
func (s Style) WithOkIcon(icon string) Style { s.OkIcon = icon; return s }

// WithInfoIcon returns a copy of the style with the info icon replaced.
func (s Style) WithInfoIcon(icon string) Style { s.InfoIcon = icon; return s }

// WithWarnIcon returns a copy of the style with the warn icon replaced.
func (s Style) WithWarnIcon(icon string) Style { s.WarnIcon = icon; return s }

// WithErrIcon returns a copy of the style with the err icon replaced.
func (s Style) WithErrIcon(icon string) Style { s.ErrIcon = icon; return s }

// WithLogColor returns a copy of the style with the log color replaced.
func (s Style) WithLogColor(color string) Style { s.LogColor = color; return s }

// WithOkColor returns a copy of the style with the ok color replaced.
func (s Style) WithOkColor(color string) Style { s.OkColor = color; return s }

// WithInfoColor returns a copy of the style with the info color replaced.
func (s Style) WithInfoColor(color string) Style { s.InfoColor = color; return s }

// WithWarnColor returns a copy of the style with the warn color replaced.
func (s Style) WithWarnColor(color string) Style { s.WarnColor = color; return s }

// WithErrColor returns a copy of the style with the err color replaced.
func (s Style) WithErrColor(color string) Style { s.ErrColor = color; return s }

// Overrides is a partial Style: nil fields leave the base value in
// place, set fields replace it (including replacement with an empty
// string). The yaml tags match the keys accepted in style sheets.
type Overrides struct {
	LogLabel  *string `yaml:"log_label"`
	OkLabel   *string `yaml:"ok_label"`
	InfoLabel *string `yaml:"info_label"`
	WarnLabel *string `yaml:"warn_label"`
	ErrLabel  *string `yaml:"err_label"`

	LogIcon  *string `yaml:"log_icon"`
	OkIcon   *string `yaml:"ok_icon"`
	InfoIcon *string `yaml:"info_icon"`
	WarnIcon *string `yaml:"warn_icon"`
	ErrIcon  *string `yaml:"err_icon"`

	LogColor  *string `yaml:"log_color"`
	OkColor   *string `yaml:"ok_color"`
	InfoColor *string `yaml:"info_color"`
	WarnColor *string `yaml:"warn_color"`
	ErrColor  *string `yaml:"err_color"`
}

// Merge returns a copy of the style with every non-nil override
// applied. The receiver is never modified.
func (s Style) Merge(o Overrides) Style {
	if o.LogLabel != nil {
		s.LogLabel = *o.LogLabel
	}
	if o.OkLabel != nil {
		s.OkLabel = *o.OkLabel
	}
	if o.InfoLabel != nil {
		s.InfoLabel = *o.InfoLabel
	}
	if o.WarnLabel != nil {
		s.WarnLabel = *o.WarnLabel
	}
	if o.ErrLabel != nil {
		s.ErrLabel = *o.ErrLabel
	}
	if o.LogIcon != nil {
		s.LogIcon = *o.LogIcon
	}
	if o.OkIcon != nil {
		s.OkIcon = *o.OkIcon
	}
	if o.InfoIcon != nil {
		s.InfoIcon = *o.InfoIcon
	}
	if o.WarnIcon != nil {
		s.WarnIcon = *o.WarnIcon
	}
	if o.ErrIcon != nil {
		s.ErrIcon = *o.ErrIcon
	}
	if o.LogColor != nil {
		s.LogColor = *o.LogColor
	}
	if o.OkColor != nil {
		s.OkColor = *o.OkColor
	}
	if o.InfoColor != nil {
		s.InfoColor = *o.InfoColor
	}
	if o.WarnColor != nil {
		s.WarnColor = *o.WarnColor
	}
	if o.ErrColor != nil {
		s.ErrColor = *o.ErrColor
	}
	return s
}
