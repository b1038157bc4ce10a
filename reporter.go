package vitecn

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// ReportConfig controls the text report.
type ReportConfig struct {
	// UseColors forces colored output; otherwise colors follow the terminal.
	UseColors bool
	// ShowDiffs prints the diff of every written file.
	ShowDiffs bool
}

// Reporter renders a Result as human-readable text.
type Reporter struct {
	w         io.Writer
	useColors bool
	showDiffs bool
}

// NewReporter creates a reporter writing to w.
func NewReporter(w io.Writer, config ReportConfig) *Reporter {
	return &Reporter{
		w:         w,
		useColors: shouldUseColors(config),
		showDiffs: config.ShowDiffs,
	}
}

// shouldUseColors determines if colors should be enabled
func shouldUseColors(config ReportConfig) bool {
	if config.UseColors {
		return true
	}

	// NO_COLOR wins over auto-detection
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

var stepMarks = map[StepStatus]string{
	StatusOK:      "✓",
	StatusSkipped: "-",
	StatusFailed:  "✗",
}

// PrintSteps lists every executed step with its outcome.
func (r *Reporter) PrintSteps(steps []StepResult) {
	for _, step := range steps {
		mark := stepMarks[step.Status]
		switch step.Status {
		case StatusOK:
			mark = RenderStyle(StyleGreen, mark, r.useColors)
		case StatusFailed:
			mark = RenderStyle(StyleRed, mark, r.useColors)
		default:
			mark = RenderStyle(StyleGray, mark, r.useColors)
		}

		detail := ""
		if step.Detail != "" {
			detail = " " + RenderStyle(StyleGray, step.Detail, r.useColors)
		}
		fmt.Fprintf(r.w, "%s %s%s\n", mark, RenderStyle(StyleCyan, step.Step.String(), r.useColors), detail)
	}
}

// PrintFiles lists the file outcomes, with diffs when enabled.
func (r *Reporter) PrintFiles(files []FileChange) {
	if len(files) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Files:", r.useColors))

	width := 0
	for _, f := range files {
		width = max(width, len(f.Action))
	}

	for _, f := range files {
		action := fmt.Sprintf("%-*s", width, f.Action)
		switch f.Action {
		case ActionCreated, ActionPatched:
			action = RenderStyle(StyleGreen, action, r.useColors)
		case ActionReplaced:
			action = RenderStyle(StyleYellow, action, r.useColors)
		default:
			action = RenderStyle(StyleGray, action, r.useColors)
		}

		stats := ""
		if f.Additions > 0 || f.Deletions > 0 {
			stats = fmt.Sprintf(" +%d -%d", f.Additions, f.Deletions)
		}
		fmt.Fprintf(r.w, "  %s %s%s %s\n", action, f.Path, stats,
			RenderStyle(StyleGray, "("+f.Reason+")", r.useColors))

		if r.showDiffs && f.Diff != "" {
			for _, line := range strings.Split(strings.TrimRight(f.Diff, "\n"), "\n") {
				fmt.Fprintf(r.w, "    %s\n", r.diffLine(line))
			}
		}
	}
}

func (r *Reporter) diffLine(line string) string {
	switch {
	case strings.HasPrefix(line, "---"), strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "@@"):
		return RenderStyle(StyleCyan, line, r.useColors)
	case strings.HasPrefix(line, "+"):
		return RenderStyle(StyleGreen, line, r.useColors)
	case strings.HasPrefix(line, "-"):
		return RenderStyle(StyleRed, line, r.useColors)
	}
	return line
}

// PrintWarnings lists the warnings collected during the run.
func (r *Reporter) PrintWarnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, fmt.Sprintf("%s:", pluralizeCount(len(warnings), "warning", "warnings")), r.useColors))
	for _, w := range warnings {
		fmt.Fprintf(r.w, "  ! %s\n", w)
	}
}

// PrintSummary prints the closing line and, on success, the next steps.
func (r *Reporter) PrintSummary(result Result) {
	fmt.Fprintln(r.w, "")

	if result.State == StateFailed {
		fmt.Fprintln(r.w, RenderStyle(StyleRed, "Setup failed: "+result.Error, r.useColors))
		return
	}

	changed := len(result.Changed())
	if result.DryRun {
		fmt.Fprintf(r.w, "%s %s would change; %s not run.\n",
			RenderStyle(StyleYellow, "Dry run:", r.useColors),
			pluralizeCount(changed, "file", "files"),
			pluralizeCount(len(result.Commands), "command", "commands"))
		if !r.showDiffs && changed > 0 {
			fmt.Fprintln(r.w, RenderStyle(StyleGray, "Hint: Run with --verbose to see the diffs", r.useColors))
		}
		return
	}

	fmt.Fprintf(r.w, "%s %s, %s changed.\n",
		RenderStyle(StyleGreen, "Tailwind CSS and shadcn/ui are configured:", r.useColors),
		result.Language, pluralizeCount(changed, "file", "files"))

	if len(result.NextSteps) > 0 {
		fmt.Fprintln(r.w, "")
		fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Next steps:", r.useColors))
		for _, step := range result.NextSteps {
			fmt.Fprintf(r.w, "  %s\n", RenderStyle(StyleGreen, step, r.useColors))
		}
	}
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
