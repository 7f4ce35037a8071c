package main

import (
	"fmt"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/trimmonitor/pkg/adapters/ffprobe"
	"github.com/user/trimmonitor/pkg/adapters/mp4profile"
	"github.com/user/trimmonitor/pkg/adapters/smartprober"
	"github.com/user/trimmonitor/pkg/ports"
)

func probeCommand() *cli.Command {
	return &cli.Command{
		Name:      "probe",
		Usage:     l10n.T("Show the video profile of a clip"),
		ArgsUsage: "SOURCE",
		Action:    runProbe,
	}
}

// probeResult is what a probe learned about a source.
type probeResult struct {
	profile ports.Profile
	codec   string
	backend smartprober.Backend
}

func probeSource(c *cli.Context, e *env, source string) (probeResult, error) {
	prober := smartprober.New(smartprober.Options{
		FFprobe: ffprobe.New(ffprobe.Options{Timeout: e.cfg.ToWriterOptions().Timeout}),
	}, e.log)

	profile, err := prober.Probe(c.Context, source)
	if err != nil {
		return probeResult{}, err
	}

	res := probeResult{profile: profile, backend: prober.LastBackend()}
	if res.backend == smartprober.BackendMP4 {
		if info, err := mp4profile.DetectFromFile(source); err == nil {
			res.codec = string(info.Codec)
		}
	}
	return res, nil
}

func runProbe(c *cli.Context) error {
	source, err := sourceArg(c)
	if err != nil {
		return err
	}
	e, err := setup(c)
	if err != nil {
		return err
	}

	res, err := probeSource(c, e, source)
	if err != nil {
		e.log.Error("Failed to probe source: %s", err.Error())
		return err
	}

	p := res.profile
	e.log.Info("Profile: %dx%d @ %.3f fps", p.Width, p.Height, p.FPS())

	w := c.App.Writer
	fmt.Fprintf(w, "%s: %dx%d\n", l10n.T("Resolution"), p.Width, p.Height)
	fmt.Fprintf(w, "%s: %d/%d (%.3f fps)\n", l10n.T("Frame Rate"), p.FrameRateNum, p.FrameRateDen, p.FPS())
	if res.codec != "" {
		fmt.Fprintf(w, "%s: %s\n", l10n.T("Codec"), res.codec)
	}
	fmt.Fprintf(w, "%s: %s\n", l10n.T("Probed With"), res.backend)
	return nil
}
