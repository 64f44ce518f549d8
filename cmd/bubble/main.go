// Command bubble renders a speech bubble to PNG or SVG.
//
// Usage:
//
//	bubble -width 320 -height 160 -style bubble.yaml -output bubble.svg
//	bubble -style bubble.yaml -output bubble.png -watch
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/gogpu/bubble"
	_ "github.com/gogpu/bubble/backend/raster"
	_ "github.com/gogpu/bubble/backend/svg"
)

func main() {
	var (
		width   = flag.Int("width", 320, "image width")
		height  = flag.Int("height", 160, "image height")
		style   = flag.String("style", "", "YAML style file")
		output  = flag.String("output", "bubble.png", "output file")
		format  = flag.String("format", "", "output backend (default: from output extension)")
		watch   = flag.Bool("watch", false, "re-render when the style file changes")
		list    = flag.Bool("list", false, "list available backends and exit")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		bubble.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if *list {
		for _, name := range bubble.Backends() {
			fmt.Println(name)
		}
		return
	}

	name := *format
	if name == "" {
		name = formatFromPath(*output)
	}

	h := newHost(*width, *height, name, *output)
	if *style != "" {
		if err := h.loadStyle(*style); err != nil {
			log.Fatalf("Failed to load style: %v", err)
		}
	}
	if err := h.render(); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	log.Printf("Bubble saved to %s (%dx%d)\n", *output, *width, *height)

	if !*watch {
		return
	}
	if *style == "" {
		log.Fatal("-watch needs -style")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := h.watch(ctx, *style); err != nil {
		log.Fatalf("Watch failed: %v", err)
	}
}

// formatFromPath maps an output file extension to a backend name.
func formatFromPath(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return "png"
	}
	return ext
}
