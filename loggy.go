// Package loggy prints leveled, styled status lines to console streams.
//
// A Logger owns a resolved Style (labels, icons and colors for the five
// message kinds log, ok, info, warn and err), writes one line per call
// and flushes immediately. Color and icons are requested at
// construction but only take effect when the output stream is an
// interactive terminal, so redirecting a program into a file or pipe
// yields clean text with no escape sequences.
//
//	log := loggy.New(loggy.Options{StyleName: loggy.StyleCLI})
//	log.Ok("bundle uploaded", bundle.Name)
//	log.Warn("retrying in", delay)
//	log.Err("upload failed:", err)
//
// The log and info kinds are emitted only in debug mode, enabled either
// by Options.Debug or by setting DEBUG_LOGS=1 in the environment.
package loggy

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// DebugEnv is the environment variable that forces debug mode on. The
// values 1, true and yes are recognized, case-insensitively.
const DebugEnv = "DEBUG_LOGS"

// Options configures a Logger. The zero value gives a non-debug logger
// with the default style, color and icons enabled on terminals, and
// os.Stdout/os.Stderr as destinations.
type Options struct {
	// Debug enables the log and info kinds. DEBUG_LOGS in the
	// environment turns debug on regardless of this field.
	Debug bool

	// Verbose is accepted for compatibility and has no effect.
	Verbose bool

	// DisableColor suppresses color even on interactive terminals.
	DisableColor bool

	// DisableIcons suppresses icons even on interactive terminals.
	DisableIcons bool

	// StyleName selects a builtin preset. Empty and unknown names
	// resolve to the default preset.
	StyleName string

	// Style is an explicit style record. When set it is used as-is
	// and StyleName is ignored.
	Style *Style

	// Out receives log, ok, info and warn lines. Defaults to os.Stdout.
	Out io.Writer

	// Err receives err lines. Defaults to os.Stderr.
	Err io.Writer
}

// Logger emits formatted single-line messages. All configuration is
// fixed at construction; a Logger carries no other state, so one
// instance can be shared.
type Logger struct {
	style    Style
	useColor bool
	useIcons bool
	debug    bool
	out      io.Writer
	err      io.Writer
}

// New builds a Logger from opts. Construction never fails: unknown
// style names fall back to the default preset and non-interactive
// output streams simply disable color and icons.
func New(opts Options) *Logger {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := opts.Err
	if errOut == nil {
		errOut = os.Stderr
	}

	var style Style
	if opts.Style != nil {
		style = *opts.Style
	} else {
		style = GetStyle(opts.StyleName)
	}

	interactive := isTerminal(out)
	return &Logger{
		style:    style,
		useColor: !opts.DisableColor && interactive,
		useIcons: !opts.DisableIcons && interactive,
		debug:    opts.Debug || debugFromEnv(),
		out:      out,
		err:      errOut,
	}
}

// Log emits a line in the log kind. Suppressed unless debug mode is on.
func (l *Logger) Log(parts ...any) { l.emit(KindLog, parts) }

// Ok emits a line in the ok kind.
func (l *Logger) Ok(parts ...any) { l.emit(KindOK, parts) }

// Info emits a line in the info kind. Suppressed unless debug mode is on.
func (l *Logger) Info(parts ...any) { l.emit(KindInfo, parts) }

// Warn emits a line in the warn kind.
func (l *Logger) Warn(parts ...any) { l.emit(KindWarn, parts) }

// Err emits a line in the err kind on the error stream.
func (l *Logger) Err(parts ...any) { l.emit(KindErr, parts) }

// Emit writes one line of the given kind and reports the underlying
// write or flush error, unchanged. The named methods above discard the
// error in the usual logging manner; Emit is for callers that need it.
func (l *Logger) Emit(kind Kind, parts ...any) error {
	return l.emit(kind, parts)
}

// DebugEnabled reports whether the log and info kinds are emitted.
func (l *Logger) DebugEnabled() bool { return l.debug }

// ColorEnabled reports whether lines are wrapped in color escapes.
func (l *Logger) ColorEnabled() bool { return l.useColor }

// IconsEnabled reports whether icons are included in prefixes.
func (l *Logger) IconsEnabled() bool { return l.useIcons }

// Style returns the resolved style the Logger was constructed with.
func (l *Logger) Style() Style { return l.style }

func (l *Logger) emit(kind Kind, parts []any) error {
	if (kind == KindLog || kind == KindInfo) && !l.debug {
		return nil
	}
	dst := l.out
	if kind == KindErr {
		dst = l.err
	}
	if _, err := io.WriteString(dst, l.line(kind, parts)); err != nil {
		return err
	}
	return flush(dst)
}

// line renders one newline-terminated output line for kind.
func (l *Logger) line(kind Kind, parts []any) string {
	line := joinParts(parts)
	if prefix := l.prefix(kind); prefix != "" {
		line = prefix + " " + line
	}
	if l.useColor {
		if color := l.style.Color(kind); color != "" {
			line = color + line + ColorReset
		}
	}
	return line + "\n"
}

// prefix composes the "icon label" prefix for kind. The label is
// trimmed; with icons disabled or empty it stands alone, and the
// result may be empty.
func (l *Logger) prefix(kind Kind) string {
	label := strings.TrimSpace(l.style.Label(kind))
	if l.useIcons {
		if icon := l.style.Icon(kind); icon != "" {
			return strings.TrimSpace(icon + " " + label)
		}
	}
	return label
}

// joinParts renders each part with fmt.Sprint and joins them with
// single spaces, mirroring how print-style APIs treat mixed arguments.
func joinParts(parts []any) string {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return fmt.Sprint(parts[0])
	}
	rendered := make([]string, len(parts))
	for i, part := range parts {
		rendered[i] = fmt.Sprint(part)
	}
	return strings.Join(rendered, " ")
}

func debugFromEnv() bool {
	switch strings.ToLower(os.Getenv(DebugEnv)) {
	case "1", "true", "yes":
		return true
	}
	return false
}
