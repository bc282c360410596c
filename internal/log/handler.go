package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// HomeHandler wraps an slog.Handler and replaces the home directory prefix
// of string attribute values with "~".
type HomeHandler struct {
	// handler is the underlying slog handler that receives rewritten records.
	handler slog.Handler

	// home is the cleaned home directory. Empty disables rewriting.
	home string
}

// NewHomeHandler creates a new HomeHandler wrapping the given handler.
// If handler is nil, slog.Default().Handler() is used.
// A home of "" or "/" disables rewriting.
func NewHomeHandler(handler slog.Handler, home string) *HomeHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	if home != "" {
		home = filepath.Clean(home)
	}
	if home == string(filepath.Separator) {
		home = ""
	}
	return &HomeHandler{handler: handler, home: home}
}

// Enabled reports whether the handler handles records at the given level.
func (h *HomeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle rewrites the record's attributes and passes it to the underlying handler.
func (h *HomeHandler) Handle(ctx context.Context, r slog.Record) error {
	rewritten := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		rewritten.AddAttrs(h.rewriteAttr(a))
		return true
	})
	return h.handler.Handle(ctx, rewritten)
}

// WithAttrs returns a new handler with the given attributes added.
func (h *HomeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	rewritten := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		rewritten[i] = h.rewriteAttr(a)
	}
	return &HomeHandler{handler: h.handler.WithAttrs(rewritten), home: h.home}
}

// WithGroup returns a new handler with the given group name.
func (h *HomeHandler) WithGroup(name string) slog.Handler {
	return &HomeHandler{handler: h.handler.WithGroup(name), home: h.home}
}

// rewriteAttr rewrites a single attribute, recursively handling groups.
func (h *HomeHandler) rewriteAttr(a slog.Attr) slog.Attr {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		rewritten := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			rewritten[i] = h.rewriteAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(rewritten...)}
	}

	if a.Value.Kind() == slog.KindString {
		return slog.String(a.Key, h.shorten(a.Value.String()))
	}
	return a
}

// shorten replaces a leading home directory in s with "~".
// Only whole path components match, so /home/al does not shorten /home/alice.
func (h *HomeHandler) shorten(s string) string {
	if h.home == "" || !strings.HasPrefix(s, h.home) {
		return s
	}
	rest := s[len(h.home):]
	if rest == "" {
		return "~"
	}
	if rest[0] != filepath.Separator {
		return s
	}
	return "~" + rest
}

// level maps the verbose flag to a minimum log level.
func level(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

// userHome returns the home directory, or "" when it cannot be determined.
func userHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home
}

// NewLogger creates a text logger writing to w.
//
// Parameters:
//   - w: The io.Writer to write log output to (typically os.Stderr)
//   - verbose: If true, sets log level to Debug; otherwise Warn
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	textHandler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level(verbose)})
	return slog.New(NewHomeHandler(textHandler, userHome()))
}

// NewJSONLogger creates a logger that outputs JSON, for log aggregation.
func NewJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	jsonHandler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level(verbose)})
	return slog.New(NewHomeHandler(jsonHandler, userHome()))
}
