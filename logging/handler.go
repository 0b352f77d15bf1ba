// Package logging provides the slog handler shared by the agent
// binaries: one compact JSON object per line, plus a helper for
// logging boards in a readable form.
package logging

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Simba256/2048/game"
)

// Handler writes one JSON object per record. It favours simplicity
// over throughput; a decision cycle is far slower than a log write.
type Handler struct {
	w     io.Writer
	mu    *sync.Mutex
	level slog.Leveler

	attrs  []slog.Attr
	groups []string
}

// NewHandler returns a Handler writing to w at the given level.
// A nil level means Info.
func NewHandler(w io.Writer, level slog.Leveler) *Handler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &Handler{w: w, mu: &sync.Mutex{}, level: level}
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	payload := make(map[string]any, 4+r.NumAttrs())

	when := r.Time
	if when.IsZero() {
		when = time.Now()
	}
	payload["time"] = when.Format(time.RFC3339)
	payload["level"] = r.Level.String()
	payload["msg"] = r.Message

	attrs := make([]slog.Attr, 0, len(h.attrs)+r.NumAttrs())
	attrs = append(attrs, h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, a)
		return true
	})
	for _, a := range attrs {
		addAttr(payload, h.groups, a)
	}

	b, err := json.Marshal(payload)
	if err != nil {
		// Never drop a record over an unmarshalable attr.
		b = []byte(`{"level":"ERROR","msg":` + strconv.Quote("log marshal: "+err.Error()) + `}`)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err = h.w.Write(append(b, '\n'))
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr(nil), h.attrs...), attrs...)
	return &clone
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.groups = append(append([]string(nil), h.groups...), name)
	return &clone
}

func addAttr(dst map[string]any, groups []string, a slog.Attr) {
	for _, g := range groups {
		m, ok := dst[g].(map[string]any)
		if !ok {
			m = map[string]any{}
			dst[g] = m
		}
		dst = m
	}
	put(dst, a)
}

func put(dst map[string]any, a slog.Attr) {
	if a.Key == "" {
		return
	}
	v := a.Value.Resolve()
	if v.Kind() == slog.KindGroup {
		child := map[string]any{}
		for _, ga := range v.Group() {
			put(child, ga)
		}
		dst[a.Key] = child
		return
	}
	dst[a.Key] = toAny(v)
}

func toAny(v slog.Value) any {
	switch v.Kind() {
	case slog.KindString:
		return v.String()
	case slog.KindInt64:
		return v.Int64()
	case slog.KindUint64:
		return v.Uint64()
	case slog.KindFloat64:
		return v.Float64()
	case slog.KindBool:
		return v.Bool()
	case slog.KindDuration:
		return v.Duration().String()
	case slog.KindTime:
		return v.Time().Format(time.RFC3339)
	default:
		return v.Any()
	}
}

// Board renders a board as one string per row so a log line stays
// greppable. Empty cells show as dots.
func Board(key string, b game.Board) slog.Attr {
	rows := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	return slog.Any(key, rows)
}
