package monitor

import (
	"context"
	"errors"
	"image"
	"path/filepath"
	"sync"

	"github.com/user/trimmonitor/pkg/matchframe"
	"github.com/user/trimmonitor/pkg/ports"
)

// Panel names passed to Toolkit.NewDrawingArea.
const (
	PanelTop    = "top"
	PanelLeft   = "left"
	PanelRight  = "right"
	PanelBottom = "bottom"
)

// Options configures a Controller.
type Options struct {
	// TrimViewEnabled turns the split trim view on. When false the monitor
	// always stays in the default view.
	TrimViewEnabled bool

	// ScratchDir is the directory the extractor writes match frames into.
	ScratchDir string

	// MatchFrameName is the scratch file name for the match frame.
	MatchFrameName string

	Theme Theme
}

// DefaultOptions returns options with the trim view enabled.
func DefaultOptions() Options {
	return Options{
		TrimViewEnabled: true,
		MatchFrameName:  DefaultMatchFrameName,
		Theme:           DefaultTheme(),
	}
}

// Deps holds the collaborators of a Controller.
type Deps struct {
	Toolkit    ports.Toolkit
	Dispatcher ports.Dispatcher
	Player     ports.Player
	Project    ports.Project
	Extractor  ports.FrameExtractor
	FileSystem ports.FileSystem
	Renderer   ports.Renderer
	Sink       ports.DebugSink // optional
	Logger     ports.Logger
}

// State is a snapshot of the controller's view state.
type State struct {
	Mode              ViewMode
	MatchFrame        int
	EditTimelineFrame int
	EditClipStart     int
	Generation        uint64
	Pending           bool
	HasImage          bool
	Err               error
}

// Controller owns the monitor's view state. All exported methods except
// OnExtractionComplete must be called on the UI thread. Extraction results are
// handed back to the UI thread through the Dispatcher.
type Controller struct {
	opts Options
	deps Deps
	log  ports.Logger

	top     ports.Surface
	left    ports.Surface
	monitor ports.Surface
	right   ports.Surface
	bottom  ports.Surface

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	// UI-thread state.
	mode              ViewMode
	matchFrame        int
	editTimelineFrame int
	editClipStart     int
	image             image.Image
	generation        uint64
	job               *matchframe.Job
	pending           bool
	lastErr           error
}

// New creates the monitor panels through the toolkit and returns a controller
// in the default view.
func New(opts Options, deps Deps) *Controller {
	if opts.MatchFrameName == "" {
		opts.MatchFrameName = DefaultMatchFrameName
	}
	if opts.Theme.FontSize <= 0 {
		opts.Theme = DefaultTheme()
	}

	ctx, cancel := context.WithCancel(context.Background())
	c := &Controller{
		opts:              opts,
		deps:              deps,
		log:               deps.Logger.WithComponent("monitor"),
		ctx:               ctx,
		cancel:            cancel,
		mode:              ViewDefault,
		matchFrame:        Unset,
		editTimelineFrame: Unset,
		editClipStart:     Unset,
	}

	c.top = deps.Toolkit.NewDrawingArea(PanelTop, c.paintTop)
	c.left = deps.Toolkit.NewDrawingArea(PanelLeft, c.paintMatchFrame)
	c.monitor = deps.Toolkit.NewMonitorArea()
	c.right = deps.Toolkit.NewDrawingArea(PanelRight, c.paintMatchFrame)
	c.bottom = deps.Toolkit.NewDrawingArea(PanelBottom, c.paintBottom)

	c.minimizePanels()
	return c
}

// MonitorSurface returns the live-preview surface the player renders into.
func (c *Controller) MonitorSurface() ports.Surface {
	return c.monitor
}

// Mode returns the current view mode.
func (c *Controller) Mode() ViewMode {
	return c.mode
}

// MatchFrame returns the match frame index, or Unset.
func (c *Controller) MatchFrame() int {
	return c.matchFrame
}

// MatchFrameImage returns the decoded match frame, or nil while none is ready.
func (c *Controller) MatchFrameImage() image.Image {
	return c.image
}

// Pending reports whether an extraction for the current view is in flight.
func (c *Controller) Pending() bool {
	return c.pending
}

// LastError returns the error of the last extraction for the current view.
func (c *Controller) LastError() error {
	return c.lastErr
}

// State returns a snapshot of the view state.
func (c *Controller) State() State {
	return State{
		Mode:              c.mode,
		MatchFrame:        c.matchFrame,
		EditTimelineFrame: c.editTimelineFrame,
		EditClipStart:     c.editClipStart,
		Generation:        c.generation,
		Pending:           c.pending,
		HasImage:          c.image != nil,
		Err:               c.lastErr,
	}
}

// EnterDefaultView hides the side panels and shows only the live preview.
func (c *Controller) EnterDefaultView() {
	if c.mode == ViewDefault {
		return
	}
	if c.deps.Player.IsRendering() {
		c.log.Debug("Skipping view change while player is rendering")
		return
	}

	c.log.Debug("Entering default view")
	c.supersede()
	c.removeMatchFrameFile()

	c.mode = ViewDefault
	c.matchFrame = Unset
	c.editClipStart = Unset
	c.minimizePanels()

	c.deps.Toolkit.QueueDraw()
	c.deps.Player.Refresh()
}

// EnterStartTrimView shows the match frame on the left, taken from the last
// frame of match, with the live preview on the right.
func (c *Controller) EnterStartTrimView(match *Clip, editClipStart int) {
	c.enterTrimView(ViewStartTrim, match, editClipStart)
}

// EnterEndTrimView shows the live preview on the left and the match frame on
// the right, taken from the first frame of match.
func (c *Controller) EnterEndTrimView(match *Clip, editClipStart int) {
	c.enterTrimView(ViewEndTrim, match, editClipStart)
}

func (c *Controller) enterTrimView(mode ViewMode, match *Clip, editClipStart int) {
	if !c.opts.TrimViewEnabled {
		return
	}
	if c.mode == mode {
		return
	}
	if c.deps.Player.IsRendering() {
		c.log.Debug("Skipping view change while player is rendering")
		return
	}

	c.supersede()
	c.mode = mode
	c.editClipStart = editClipStart

	layout := ComputeLayout(c.deps.Toolkit.Allocation(), c.deps.Project.Profile())
	matchPanel, hidden := c.left, c.right
	if mode == ViewEndTrim {
		matchPanel, hidden = c.right, c.left
	}
	matchPanel.SetPrefSize(layout.MatchFrame.Width, layout.MatchFrame.Height)
	hidden.SetPrefSize(MinimizedSize.Width, MinimizedSize.Height)
	c.top.SetPrefSize(layout.EdgeRow.Width, layout.EdgeRow.Height)
	c.bottom.SetPrefSize(layout.EdgeRow.Width, layout.EdgeRow.Height)

	c.deps.Toolkit.QueueDraw()
	c.deps.Player.Refresh()

	if match == nil {
		c.log.Debug("Entering trim view without match clip")
		c.matchFrame = Unset
		return
	}

	frame := match.ClipOut
	if mode == ViewEndTrim {
		frame = match.ClipIn
	}
	c.matchFrame = frame
	if mode == ViewStartTrim {
		c.log.Debug("Entering start trim view, match frame %d", frame)
	} else {
		c.log.Debug("Entering end trim view, match frame %d", frame)
	}

	req := ports.FrameRequest{
		SourcePath: match.Path,
		FrameIndex: frame,
		OutputName: c.opts.MatchFrameName,
	}
	c.job = matchframe.Submit(c.ctx, c.deps.Extractor, req, c.generation)
	c.pending = true

	job, size := c.job, layout.MatchFrame
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.OnExtractionComplete(job, size)
	}()
}

// SetEditTimelineFrame records the edit position on the timeline and repaints
// the bottom panel.
func (c *Controller) SetEditTimelineFrame(frame int) {
	c.editTimelineFrame = frame
	c.bottom.QueueDraw()
}

// OnExtractionComplete waits for job, decodes the written frame and stretches
// it to size, then hands the result to the UI thread. It may be called from any
// goroutine. Results of superseded jobs are discarded on the UI thread.
func (c *Controller) OnExtractionComplete(job *matchframe.Job, size ports.Size) {
	res, err := job.Wait()

	var img image.Image
	if err == nil {
		img, err = c.loadMatchFrame(res.Path, size)
	}

	c.deps.Dispatcher.Do(func() {
		c.applyExtraction(job, img, err)
	})
}

func (c *Controller) loadMatchFrame(path string, size ports.Size) (image.Image, error) {
	data, err := c.deps.FileSystem.ReadFile(path)
	if err != nil {
		return nil, err
	}

	img, err := c.deps.Renderer.DecodeImage(data, ports.FormatPNG)
	if err != nil {
		return nil, err
	}

	return c.deps.Renderer.ResizeImage(img, size.Width, size.Height), nil
}

func (c *Controller) applyExtraction(job *matchframe.Job, img image.Image, err error) {
	if job.Generation != c.generation {
		c.log.Debug("Discarding stale match frame (generation %d, current %d)", job.Generation, c.generation)
		return
	}

	c.job = nil
	c.pending = false

	if err != nil {
		c.lastErr = err
		if !errors.Is(err, context.Canceled) {
			c.log.Warn("Match frame extraction failed: %s", err.Error())
		}
		return
	}

	c.image = img
	b := img.Bounds()
	c.log.Debug("Match frame ready: %dx%d (generation %d)", b.Dx(), b.Dy(), job.Generation)

	if c.deps.Sink != nil && c.deps.Sink.Enabled() {
		if err := c.deps.Sink.SaveMatchFrame(job.Generation, img); err != nil {
			c.log.Warn("Could not save debug output: %s", err.Error())
		}
	}

	c.left.QueueDraw()
	c.right.QueueDraw()
}

// Close cancels any in-flight extraction and waits for its worker to finish.
// Completions already dispatched are discarded when they run.
func (c *Controller) Close() {
	c.generation++
	c.cancel()
	c.wg.Wait()
}

// supersede invalidates the current extraction and clears the view state it
// produced.
func (c *Controller) supersede() {
	c.generation++
	if c.job != nil {
		c.job.Cancel()
		c.job = nil
	}
	c.image = nil
	c.pending = false
	c.lastErr = nil
}

func (c *Controller) removeMatchFrameFile() {
	path := filepath.Join(c.opts.ScratchDir, c.opts.MatchFrameName)
	if _, err := matchframe.RemoveStale(c.deps.FileSystem, path); err != nil {
		c.log.Warn("Could not remove match frame: %s", err.Error())
	}
}

func (c *Controller) minimizePanels() {
	for _, s := range []ports.Surface{c.top, c.left, c.right, c.bottom} {
		s.SetPrefSize(MinimizedSize.Width, MinimizedSize.Height)
	}
}

func (c *Controller) paintTop(canvas ports.Canvas, width, height int) {
	PaintTopPanel(canvas, width, height, c.mode, c.opts.Theme)
}

func (c *Controller) paintMatchFrame(canvas ports.Canvas, width, height int) {
	PaintMatchFrame(canvas, width, height, c.image, c.opts.Theme)
}

func (c *Controller) paintBottom(canvas ports.Canvas, width, height int) {
	PaintBottomPanel(canvas, width, height, BottomPanel{
		Mode:              c.mode,
		MatchFrame:        c.matchFrame,
		EditTimelineFrame: c.editTimelineFrame,
		EditClipStart:     c.editClipStart,
		FPS:               c.deps.Project.Profile().FPS(),
	}, c.opts.Theme)
}
