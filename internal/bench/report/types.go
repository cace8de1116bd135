package report

import (
	"runtime"
	"time"

	"github.com/DjordjeVuckovic/calc-hunter/internal/bench/runner"
)

type Report struct {
	Meta    BenchMeta    `json:"meta"`
	Summary Summary      `json:"summary"`
	Cases   []Entry      `json:"cases"`
	Config  ReportConfig `json:"config"`
}

type BenchMeta struct {
	Suite       string          `json:"suite"`
	Version     string          `json:"version,omitempty"`
	Timestamp   time.Time       `json:"timestamp"`
	Environment EnvironmentInfo `json:"environment"`
}

type EnvironmentInfo struct {
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	NumCPU    int    `json:"num_cpu"`
}

func NewEnvironmentInfo() EnvironmentInfo {
	return EnvironmentInfo{
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
	}
}

type ReportConfig struct {
	Executor   string `json:"executor"`
	WarmupRuns int    `json:"warmup_runs"`
	Runs       int    `json:"runs"`
}

type Entry struct {
	CaseID     string       `json:"id"`
	Notation   string       `json:"notation"`
	Expression string       `json:"expression"`
	Expected   string       `json:"expected"`
	Got        string       `json:"got"`
	Passed     bool         `json:"passed"`
	Error      string       `json:"error,omitempty"`
	Latency    LatencyStats `json:"latency"`
}

// Summary aggregates per notation plus an "all" row.
type Summary struct {
	Total    int            `json:"total"`
	Passed   int            `json:"passed"`
	Failed   int            `json:"failed"`
	PassRate float64        `json:"pass_rate"`
	Latency  LatencyStats   `json:"latency"`
	ByGroup  []GroupSummary `json:"by_notation"`
}

type GroupSummary struct {
	Notation string       `json:"notation"`
	Total    int          `json:"total"`
	Passed   int          `json:"passed"`
	Latency  LatencyStats `json:"latency"`
}

type LatencyStats struct {
	Min         time.Duration         `json:"min_ns"`
	Max         time.Duration         `json:"max_ns"`
	Mean        time.Duration         `json:"mean_ns"`
	Median      time.Duration         `json:"median_ns"`
	Stddev      time.Duration         `json:"stddev_ns"`
	Percentiles map[int]time.Duration `json:"percentiles_ns"`
	SampleCount int                   `json:"sample_count"`
}

func fromRunnerLatencyStats(s runner.LatencyStats) LatencyStats {
	return LatencyStats{
		Min:         s.Min,
		Max:         s.Max,
		Mean:        s.Mean,
		Median:      s.Median,
		Stddev:      s.Stddev,
		Percentiles: s.Percentiles,
		SampleCount: s.SampleCount,
	}
}

func (s LatencyStats) P50() time.Duration { return s.Percentiles[50] }
func (s LatencyStats) P90() time.Duration { return s.Percentiles[90] }
func (s LatencyStats) P99() time.Duration { return s.Percentiles[99] }
