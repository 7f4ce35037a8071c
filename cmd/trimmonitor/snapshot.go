package main

import (
	"context"
	"fmt"
	"image"
	"path/filepath"
	"strings"
	"time"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/trimmonitor/pkg/adapters/offscreen"
	"github.com/user/trimmonitor/pkg/adapters/uiqueue"
	"github.com/user/trimmonitor/pkg/matchframe"
	"github.com/user/trimmonitor/pkg/monitor"
	"github.com/user/trimmonitor/pkg/ports"
	"github.com/user/trimmonitor/pkg/summarizer"
)

func snapshotCommand() *cli.Command {
	return &cli.Command{
		Name:      "snapshot",
		Usage:     l10n.T("Render the trim monitor for a clip edge as PNG"),
		ArgsUsage: "SOURCE",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "mode",
				Aliases:  []string{"m"},
				Value:    "start",
				Usage:    l10n.T("Trim side (start, end)"),
				Category: l10n.T("Trim"),
			},
			&cli.IntFlag{
				Name:     "in",
				Usage:    l10n.T("Match clip in point (source frame)"),
				Category: l10n.T("Trim"),
			},
			&cli.IntFlag{
				Name:     "out",
				Usage:    l10n.T("Match clip out point (source frame)"),
				Category: l10n.T("Trim"),
			},
			&cli.IntFlag{
				Name:     "edit-start",
				Usage:    l10n.T("Timeline frame where the edited clip starts"),
				Category: l10n.T("Trim"),
			},
			&cli.IntFlag{
				Name:     "edit-frame",
				Value:    monitor.Unset,
				Usage:    l10n.T("Current edit position on the timeline"),
				Category: l10n.T("Trim"),
			},
			&cli.StringFlag{
				Name:     "preview",
				Usage:    l10n.T("Image shown in the live preview area"),
				Category: l10n.T("Output"),
			},
			&cli.StringFlag{
				Name:     "output",
				Aliases:  []string{"o"},
				Usage:    l10n.T("Output PNG file path (required)"),
				Required: true,
				Category: l10n.T("Output"),
			},
			&cli.StringFlag{
				Name:     "summary",
				Usage:    l10n.T("Output execution summary to file (Markdown format)"),
				Category: l10n.T("Output"),
			},
		},
		Action: runSnapshot,
	}
}

// staticProject is a project whose profile comes from probing the source.
type staticProject struct {
	profile ports.Profile
}

func (p staticProject) Profile() ports.Profile {
	return p.profile
}

func runSnapshot(c *cli.Context) error {
	source, err := sourceArg(c)
	if err != nil {
		return err
	}
	mode, ok := monitor.ParseViewMode(c.String("mode"))
	if !ok || mode == monitor.ViewDefault {
		return cli.Exit(l10n.F("Unknown trim mode %q", c.String("mode")), 2)
	}
	e, err := setup(c)
	if err != nil {
		return err
	}

	probed, err := probeSource(c, e, source)
	if err != nil {
		e.log.Error("Failed to probe source: %s", err.Error())
		return err
	}

	var preview image.Image
	if path := c.String("preview"); path != "" {
		if preview, err = loadImage(e, path); err != nil {
			return fmt.Errorf("load preview: %w", err)
		}
	}

	toolkit := offscreen.New(e.cfg.MonitorWidth, e.cfg.MonitorHeight, e.renderer)
	queue := uiqueue.New()
	writer := matchframe.NewWriter(e.cfg.ToWriterOptions(), e.fs, e.log)

	ctrl := monitor.New(e.cfg.ToMonitorOptions(), monitor.Deps{
		Toolkit:    toolkit,
		Dispatcher: queue,
		Player:     offscreen.NewPlayer(toolkit, preview),
		Project:    staticProject{profile: probed.profile},
		Extractor:  writer,
		FileSystem: e.fs,
		Renderer:   e.renderer,
		Sink:       e.sink,
		Logger:     e.log,
	})
	defer ctrl.Close()

	clip := &monitor.Clip{Path: source, ClipIn: c.Int("in"), ClipOut: c.Int("out")}
	started := time.Now()
	if mode == monitor.ViewStartTrim {
		ctrl.EnterStartTrimView(clip, c.Int("edit-start"))
	} else {
		ctrl.EnterEndTrimView(clip, c.Int("edit-start"))
	}
	ctrl.SetEditTimelineFrame(c.Int("edit-frame"))

	// Act as the UI thread until the match frame lands.
	waitCtx, cancel := context.WithTimeout(c.Context, e.cfg.ToWriterOptions().Timeout+30*time.Second)
	defer cancel()
	for ctrl.Pending() {
		if err := queue.RunNext(waitCtx); err != nil {
			return fmt.Errorf("wait for match frame: %w", err)
		}
	}
	elapsed := time.Since(started)
	extractErr := ctrl.LastError()
	if extractErr != nil {
		e.log.Warn("Match frame extraction failed: %s", extractErr.Error())
	}

	state := ctrl.State()
	img := toolkit.Compose()
	if e.sink.Enabled() {
		for _, name := range []string{monitor.PanelTop, monitor.PanelLeft, offscreen.MonitorName, monitor.PanelRight, monitor.PanelBottom} {
			if err := e.sink.SavePanel(name, toolkit.Render(name)); err != nil {
				e.log.Warn("Could not save debug output: %s", err.Error())
			}
		}
	}

	output := c.String("output")
	data, err := e.renderer.EncodeImage(img, ports.FormatPNG, 0)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if dir := filepath.Dir(output); dir != "." {
		if err := e.fs.MkdirAll(dir); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := e.fs.WriteFile(output, data); err != nil {
		e.log.Error("Failed to write output: %s", err.Error())
		return err
	}
	e.log.Info("Monitor snapshot saved to %s", output)

	// Leaving the trim view removes the scratch frame.
	ctrl.EnterDefaultView()

	summaryPath := c.String("summary")
	if summaryPath == "" {
		summaryPath = strings.TrimSuffix(output, filepath.Ext(output)) + ".md"
	}
	summary := summarizer.NewBuilder().
		WithSource(summarizer.SourceInfo{
			Path:    source,
			Width:   probed.profile.Width,
			Height:  probed.profile.Height,
			FPS:     probed.profile.FPS(),
			Codec:   probed.codec,
			Backend: string(probed.backend),
		}).
		WithView(state.Mode.String(), state.MatchFrame, state.EditTimelineFrame, state.EditClipStart).
		WithExtraction(state.MatchFrame, elapsed, extractErr).
		WithSettings(summarizer.Settings{
			ScratchDir:     e.cfg.ScratchDir,
			TrimView:       e.cfg.TrimView,
			PollIntervalMs: e.cfg.PollIntervalMs,
			TimeoutMs:      e.cfg.TimeoutMs,
		}).
		WithOutput(summarizer.OutputInfo{
			Path:     output,
			Width:    img.Bounds().Dx(),
			Height:   img.Bounds().Dy(),
			FileSize: int64(len(data)),
		}).
		Build()

	sw := summarizer.NewWriter(summarizer.NewMarkdownFormatter(
		summarizer.WithTranslator(l10n.T),
		summarizer.WithVersion(version),
	), e.fs)
	if err := sw.Write(summaryPath, summary); err != nil {
		e.log.Warn("Failed to write summary: %s", err.Error())
	} else {
		e.log.Info("Summary saved to %s", summaryPath)
	}

	return extractErr
}

func loadImage(e *env, path string) (image.Image, error) {
	data, err := e.fs.ReadFile(path)
	if err != nil {
		return nil, err
	}
	format := ports.FormatPNG
	if ext := strings.ToLower(filepath.Ext(path)); ext == ".jpg" || ext == ".jpeg" {
		format = ports.FormatJPEG
	}
	return e.renderer.DecodeImage(data, format)
}
