package main

import (
	"fmt"
	"image/color"
	"log/slog"
	"os"

	"MotionBoard/internal/config"
	"MotionBoard/internal/editor"
	"MotionBoard/internal/export"
	"MotionBoard/internal/logging"
	"MotionBoard/internal/render"
	"MotionBoard/internal/state"
	"MotionBoard/internal/ui"

	"github.com/tdewolff/argp"
)

type MotionBoard struct {
	Config string  `short:"c" default:"" desc:"TOML configuration file"`
	Export string  `short:"o" default:"" desc:"Write the frame at -t to this PDF file and exit"`
	At     float64 `short:"t" default:"-1" desc:"Timeline position of the exported frame (default: configured position)"`
	Guides bool    `desc:"Include curve guides and control markers in the export"`
}

func main() {
	root := argp.NewCmd(&MotionBoard{}, "Animated Bezier stroke editor")
	root.Parse()
}

func (cmd *MotionBoard) Run() error {
	cfg := config.Default()
	if cmd.Config != "" {
		var err error
		if cfg, err = config.Load(cmd.Config); err != nil {
			return err
		}
	}

	logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logging.ParseLevel(cfg.LogLevel),
	})))

	store := state.NewStore(cfg.StoreLimits())
	timeline := state.NewTimeline(cfg.Timeline.Duration, cfg.Timeline.Position)
	session := editor.NewSession(store, timeline, editor.Options{
		SelectTolerance: cfg.Edit.SelectTolerance,
		HandleOffset:    cfg.Edit.HandleOffset,
		StrokeDuration:  cfg.Edit.StrokeDuration,
	})
	if cfg.Seed {
		if err := session.Seed(); err != nil {
			return fmt.Errorf("seed board: %w", err)
		}
	}

	renderer := render.NewRenderer(render.NewBrushTexture(cfg.Brush.TextureSize, color.Black), cfg.Brush.Scale)
	renderer.Spacing = cfg.Brush.Spacing

	if cmd.Export != "" {
		position := timeline.Position()
		if cmd.At >= 0 {
			position = timeline.SetPosition(float32(cmd.At))
		}
		return export.WriteFrameFile(cmd.Export, store, renderer, position, export.Options{
			Guides: cmd.Guides,
			Margin: 10,
		})
	}

	ui.RunApp(cfg, session, renderer)
	return nil
}
