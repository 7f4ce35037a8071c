package summarizer

import (
	"fmt"
	"strings"

	"github.com/user/trimmonitor/pkg/timecode"
)

// MarkdownFormatter renders a Summary as a Markdown document.
type MarkdownFormatter struct {
	translate func(string) string
	version   string
}

// MarkdownOption configures a MarkdownFormatter.
type MarkdownOption func(*MarkdownFormatter)

// WithTranslator sets the function used to translate labels.
func WithTranslator(fn func(string) string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.translate = fn
	}
}

// WithVersion adds the tool version to the footer.
func WithVersion(version string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.version = version
	}
}

// NewMarkdownFormatter creates a MarkdownFormatter.
func NewMarkdownFormatter(opts ...MarkdownOption) *MarkdownFormatter {
	f := &MarkdownFormatter{
		translate: func(s string) string { return s },
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format implements Formatter.
func (f *MarkdownFormatter) Format(s *Summary) string {
	t := f.translate
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", t("Snapshot Summary"))

	fmt.Fprintf(&b, "## %s\n\n", t("Source"))
	fmt.Fprintf(&b, "| %s | %s |\n|---|---|\n", t("Item"), t("Value"))
	row(&b, t("Path"), s.Source.Path)
	row(&b, t("Resolution"), fmt.Sprintf("%dx%d", s.Source.Width, s.Source.Height))
	row(&b, t("Frame Rate"), fmt.Sprintf("%.3f fps", s.Source.FPS))
	if s.Source.Codec != "" {
		row(&b, t("Codec"), s.Source.Codec)
	}
	if s.Source.Backend != "" {
		row(&b, t("Probed With"), s.Source.Backend)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## %s\n\n", t("View"))
	fmt.Fprintf(&b, "| %s | %s |\n|---|---|\n", t("Item"), t("Value"))
	row(&b, t("Mode"), s.View.Mode)
	row(&b, t("Match Frame"), f.frame(s.View.MatchFrame, s.Source.FPS))
	edit := t("N/A")
	if s.View.EditTimelineFrame >= 0 && s.View.EditClipStart >= 0 {
		edit = timecode.FromFrame(s.View.EditTimelineFrame-s.View.EditClipStart, s.Source.FPS)
	}
	row(&b, t("Edit Position"), edit)
	b.WriteString("\n")

	fmt.Fprintf(&b, "## %s\n\n", t("Extraction"))
	fmt.Fprintf(&b, "| %s | %s |\n|---|---|\n", t("Item"), t("Value"))
	row(&b, t("Frame"), fmt.Sprintf("%d", s.Extraction.FrameIndex))
	row(&b, t("Duration"), fmt.Sprintf("%d ms", s.Extraction.DurationMs))
	if s.Extraction.Error != "" {
		row(&b, t("Status"), t("Failed")+": "+s.Extraction.Error)
	} else {
		row(&b, t("Status"), t("OK"))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## %s\n\n", t("Settings"))
	fmt.Fprintf(&b, "| %s | %s |\n|---|---|\n", t("Item"), t("Value"))
	row(&b, t("Scratch Directory"), s.Settings.ScratchDir)
	row(&b, t("Trim View"), f.onOff(s.Settings.TrimView))
	row(&b, t("Poll Interval"), fmt.Sprintf("%d ms", s.Settings.PollIntervalMs))
	row(&b, t("Timeout"), fmt.Sprintf("%d ms", s.Settings.TimeoutMs))
	b.WriteString("\n")

	if s.Output.Path != "" {
		fmt.Fprintf(&b, "## %s\n\n", t("Output"))
		fmt.Fprintf(&b, "| %s | %s |\n|---|---|\n", t("Item"), t("Value"))
		row(&b, t("File"), s.Output.Path)
		row(&b, t("Size"), fmt.Sprintf("%dx%d", s.Output.Width, s.Output.Height))
		row(&b, t("File Size"), formatBytes(s.Output.FileSize))
		b.WriteString("\n")
	}

	b.WriteString("---\n\n")
	footer := fmt.Sprintf("%s %s", t("Generated at"), s.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	if f.version != "" {
		footer += fmt.Sprintf(" (trimmonitor %s)", f.version)
	}
	b.WriteString(footer + "\n")

	return b.String()
}

func (f *MarkdownFormatter) frame(frame int, fps float64) string {
	if frame < 0 {
		return f.translate("N/A")
	}
	return fmt.Sprintf("%d (%s)", frame, timecode.FromFrame(frame, fps))
}

func (f *MarkdownFormatter) onOff(v bool) string {
	if v {
		return f.translate("Enabled")
	}
	return f.translate("Disabled")
}

func row(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "| %s | %s |\n", label, value)
}

func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < 2; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(bytes)/float64(div), "KMG"[exp])
}
