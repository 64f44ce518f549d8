package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/bubble"
	"github.com/gogpu/bubble/styleconfig"
)

// host owns the drawable area and style of one bubble and writes it to a
// file whenever the style is invalidated.
type host struct {
	width, height int
	backend       string
	output        string

	style *bubble.Style
	dirty bool
	last  *bubble.Outline
}

func newHost(width, height int, backend, output string) *host {
	h := &host{
		width:   width,
		height:  height,
		backend: backend,
		output:  output,
		dirty:   true,
	}
	h.style = bubble.NewStyle(bubble.WithInvalidator(func() { h.dirty = true }))
	return h
}

func (h *host) rect() bubble.Rect {
	return bubble.NewRect(0, 0, float64(h.width), float64(h.height))
}

// loadStyle applies the style file on top of the defaults, so fields
// removed from the file between reloads fall back to their default.
// Values are copied into h.style through its setters to invalidate it.
func (h *host) loadStyle(path string) error {
	f, err := styleconfig.Load(path)
	if err != nil {
		return err
	}
	fresh := bubble.NewStyle()
	if err := f.Apply(fresh); err != nil {
		return err
	}
	assignStyle(h.style, fresh)
	return nil
}

// assignStyle copies every field of src into dst. The size is written
// before the position so the position clamps against the new height.
func assignStyle(dst, src *bubble.Style) {
	dst.SetStrokeWidth(src.StrokeWidth())
	dst.SetCornerRadius(src.CornerRadius())
	dst.SetBorderColor(src.BorderColor())
	dst.SetFillColor(src.FillColor())
	dst.SetTriangleSize(src.TriangleSize())
	dst.SetTriangleYPosition(src.TriangleYPosition())
}

// render writes the bubble if the style changed since the last write.
// Writes that leave the outline identical are skipped. The host stays
// dirty when rendering fails, so the next call retries.
func (h *host) render() error {
	if !h.dirty {
		return nil
	}

	outline := bubble.Build(h.rect(), h.style)
	if h.last != nil && h.last.EqualWithin(outline, 1e-9) {
		bubble.Logger().Debug("bubble: outline unchanged, skipping write")
		h.dirty = false
		return nil
	}

	b, err := bubble.NewBackend(h.backend)
	if err != nil {
		return err
	}
	if err := b.Begin(h.width, h.height); err != nil {
		return err
	}
	if err := outline.Playback(b); err != nil {
		return err
	}
	if err := b.End(); err != nil {
		return err
	}

	f, err := os.Create(h.output)
	if err != nil {
		return fmt.Errorf("create %s: %w", h.output, err)
	}
	if _, err := b.WriteTo(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", h.output, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	h.last = outline
	h.dirty = false
	bubble.Logger().Info("bubble: rendered", "output", h.output,
		"backend", h.backend, "width", h.width, "height", h.height)
	return nil
}

// watch re-applies the style file on every change and re-renders until
// ctx is done. The parent directory is watched because editors often
// replace files instead of writing them in place.
func (h *host) watch(ctx context.Context, path string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	target := filepath.Clean(path)
	if err := w.Add(filepath.Dir(target)); err != nil {
		return err
	}
	bubble.Logger().Info("bubble: watching style", "path", target)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if err := h.loadStyle(target); err != nil {
				bubble.Logger().Warn("bubble: style reload failed", "err", err)
				continue
			}
			if err := h.render(); err != nil {
				return err
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			bubble.Logger().Warn("bubble: watcher error", "err", err)
		}
	}
}
