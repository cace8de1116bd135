package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
)

func WriteTable(r *Report, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	title := r.Meta.Suite
	if r.Meta.Version != "" {
		title += " v" + r.Meta.Version
	}
	fmt.Fprintf(tw, "\n=== Expression Suite: %s ===\n", title)
	fmt.Fprintf(tw, "executor=%s runs=%d warmup=%d\n\n", r.Config.Executor, r.Config.Runs, r.Config.WarmupRuns)

	writeSummaryTable(tw, &r.Summary)
	writeCaseTable(tw, r.Cases)

	return tw.Flush()
}

func writeSummaryTable(tw *tabwriter.Writer, s *Summary) {
	fmt.Fprintf(tw, "Summary (%d/%d passed, %.2f%%)\n\n", s.Passed, s.Total, s.PassRate)

	writeRow(tw, "Notation", "Cases", "Passed", "Min", "p50", "p90", "p99", "Max", "Mean", "Stddev", "Samples")
	writeSeparator(tw, 11)

	for _, g := range s.ByGroup {
		writeRow(tw, append([]string{g.Notation, fmt.Sprint(g.Total), fmt.Sprint(g.Passed)}, latencyCells(g.Latency)...)...)
	}
	writeRow(tw, append([]string{"all", fmt.Sprint(s.Total), fmt.Sprint(s.Passed)}, latencyCells(s.Latency)...)...)

	fmt.Fprintln(tw)
}

func writeCaseTable(tw *tabwriter.Writer, entries []Entry) {
	fmt.Fprintf(tw, "Per-Case Results\n\n")

	writeRow(tw, "Case", "Notation", "Expression", "Expected", "Got", "p50", "p99", "Status")
	writeSeparator(tw, 8)

	for _, e := range entries {
		status := "PASS"
		if !e.Passed {
			status = "FAIL"
		}
		writeRow(tw,
			e.CaseID,
			e.Notation,
			truncate(e.Expression, 40),
			e.Expected,
			e.Got,
			fmtDuration(e.Latency.P50()),
			fmtDuration(e.Latency.P99()),
			status,
		)
	}

	fmt.Fprintln(tw)
}

func latencyCells(s LatencyStats) []string {
	return []string{
		fmtDuration(s.Min),
		fmtDuration(s.P50()),
		fmtDuration(s.P90()),
		fmtDuration(s.P99()),
		fmtDuration(s.Max),
		fmtDuration(s.Mean),
		fmtDuration(s.Stddev),
		fmt.Sprint(s.SampleCount),
	}
}

func writeRow(tw *tabwriter.Writer, cells ...string) {
	fmt.Fprintln(tw, strings.Join(cells, "\t"))
}

func writeSeparator(tw *tabwriter.Writer, n int) {
	sep := make([]string, n)
	for i := range sep {
		sep[i] = "---"
	}
	writeRow(tw, sep...)
}

func truncate(s string, n int) string {
	if s == "" {
		return `""`
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func fmtDuration(d time.Duration) string {
	switch {
	case d == 0:
		return "-"
	case d < time.Microsecond:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	case d < time.Millisecond:
		return fmt.Sprintf("%.1fµs", float64(d.Nanoseconds())/1000)
	case d < time.Second:
		return fmt.Sprintf("%.2fms", float64(d.Microseconds())/1000)
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}
