package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gogpu/bubble"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path, want string
	}{
		{"out.png", "png"},
		{"out.SVG", "svg"},
		{"dir/out", "png"},
	}
	for _, tt := range tests {
		if got := formatFromPath(tt.path); got != tt.want {
			t.Errorf("formatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestHostRender(t *testing.T) {
	out := filepath.Join(t.TempDir(), "bubble.svg")
	h := newHost(200, 100, "svg", out)

	if err := h.render(); err != nil {
		t.Fatalf("render() error = %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	if !strings.Contains(string(data), "<path") {
		t.Errorf("output has no path:\n%s", data)
	}
}

func TestHostSkipsUnchangedOutline(t *testing.T) {
	out := filepath.Join(t.TempDir(), "bubble.svg")
	h := newHost(200, 100, "svg", out)
	if err := h.render(); err != nil {
		t.Fatal(err)
	}
	if err := os.Remove(out); err != nil {
		t.Fatal(err)
	}

	// Not invalidated: nothing to do.
	if err := h.render(); err != nil {
		t.Fatal(err)
	}
	// Invalidated, but the outline is identical.
	h.style.SetStrokeWidth(h.style.StrokeWidth())
	if !h.dirty {
		t.Fatal("setter did not invalidate the host")
	}
	if err := h.render(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("unchanged outline was rewritten (stat err = %v)", err)
	}

	h.style.SetCornerRadius(20)
	if err := h.render(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("changed outline not written: %v", err)
	}
}

func TestHostLoadStyle(t *testing.T) {
	dir := t.TempDir()
	style := filepath.Join(dir, "bubble.yaml")
	if err := os.WriteFile(style, []byte("corner_radius: 4\nfill_color: white\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	h := newHost(100, 100, "png", filepath.Join(dir, "bubble.png"))
	h.dirty = false
	if err := h.loadStyle(style); err != nil {
		t.Fatalf("loadStyle() error = %v", err)
	}
	if h.style.CornerRadius() != 4 || !h.dirty {
		t.Errorf("style not applied: radius %v dirty %v", h.style.CornerRadius(), h.dirty)
	}
}

func TestHostUnknownBackend(t *testing.T) {
	h := newHost(10, 10, "bmp", filepath.Join(t.TempDir(), "x.bmp"))
	if err := h.render(); err == nil {
		t.Error("render() with unknown backend succeeded")
	}
	if !h.dirty {
		t.Error("failed render cleared the dirty flag")
	}
}

func TestHostWatchStopsOnCancel(t *testing.T) {
	dir := t.TempDir()
	style := filepath.Join(dir, "bubble.yaml")
	if err := os.WriteFile(style, []byte("corner_radius: 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	h := newHost(100, 50, "svg", filepath.Join(dir, "bubble.svg"))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := h.watch(ctx, style); err != nil {
		t.Errorf("watch() error = %v", err)
	}
}

func TestHostReloadRestoresRemovedFields(t *testing.T) {
	dir := t.TempDir()
	style := filepath.Join(dir, "bubble.yaml")
	h := newHost(100, 100, "svg", filepath.Join(dir, "bubble.svg"))

	if err := os.WriteFile(style, []byte("corner_radius: 4\ntriangle:\n  y: 0.3\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := h.loadStyle(style); err != nil {
		t.Fatal(err)
	}
	if h.style.CornerRadius() != 4 {
		t.Fatalf("CornerRadius() = %v, want 4", h.style.CornerRadius())
	}

	if err := os.WriteFile(style, []byte("stroke_width: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := h.loadStyle(style); err != nil {
		t.Fatal(err)
	}
	if got := h.style.CornerRadius(); got != bubble.DefaultCornerRadius {
		t.Errorf("CornerRadius() = %v, want default %v", got, bubble.DefaultCornerRadius)
	}
	if got := h.style.TriangleYPosition(); got != bubble.DefaultTriangleYPosition {
		t.Errorf("TriangleYPosition() = %v, want default %v", got, bubble.DefaultTriangleYPosition)
	}
	if got := h.style.StrokeWidth(); got != 3 {
		t.Errorf("StrokeWidth() = %v, want 3", got)
	}
}

func TestHostStaysDirtyOnFailedRender(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "missing", "bubble.svg")
	h := newHost(100, 50, "svg", out)

	if err := h.render(); err == nil {
		t.Fatal("render() into a missing directory succeeded")
	}
	if !h.dirty {
		t.Fatal("failed render cleared the dirty flag")
	}

	if err := os.Mkdir(filepath.Join(dir, "missing"), 0o700); err != nil {
		t.Fatal(err)
	}
	if err := h.render(); err != nil {
		t.Fatalf("retry render() error = %v", err)
	}
	if h.dirty {
		t.Error("successful render left the host dirty")
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("retry did not write output: %v", err)
	}
}
