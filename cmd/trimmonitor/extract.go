package main

import (
	"fmt"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/trimmonitor/pkg/matchframe"
	"github.com/user/trimmonitor/pkg/ports"
)

func extractCommand() *cli.Command {
	return &cli.Command{
		Name:      "extract",
		Usage:     l10n.T("Extract one frame of a clip as PNG"),
		ArgsUsage: "SOURCE",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "frame",
				Aliases:  []string{"f"},
				Usage:    l10n.T("Zero-based source frame index"),
				Required: true,
			},
			&cli.StringFlag{
				Name:     "output",
				Aliases:  []string{"o"},
				Usage:    l10n.T("Output PNG file path (required)"),
				Required: true,
			},
		},
		Action: runExtract,
	}
}

func runExtract(c *cli.Context) error {
	source, err := sourceArg(c)
	if err != nil {
		return err
	}
	e, err := setup(c)
	if err != nil {
		return err
	}

	writer := matchframe.NewWriter(e.cfg.ToWriterOptions(), e.fs, e.log)
	res, err := writer.Extract(c.Context, ports.FrameRequest{
		SourcePath: source,
		FrameIndex: c.Int("frame"),
		OutputName: e.cfg.MatchFrameName,
	})
	if err != nil {
		e.log.Error("Failed to extract frame: %s", err.Error())
		return err
	}

	data, err := e.fs.ReadFile(res.Path)
	if err != nil {
		return fmt.Errorf("read extracted frame: %w", err)
	}
	output := c.String("output")
	if err := e.fs.WriteFile(output, data); err != nil {
		e.log.Error("Failed to write output: %s", err.Error())
		return err
	}
	if _, err := matchframe.RemoveStale(e.fs, res.Path); err != nil {
		e.log.Warn("Could not remove match frame: %s", err.Error())
	}

	e.log.Info("Match frame saved to %s", output)
	return nil
}
