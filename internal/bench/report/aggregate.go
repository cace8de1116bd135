package report

import (
	"strconv"
	"time"

	"github.com/DjordjeVuckovic/calc-hunter/internal/bench/runner"
	"github.com/DjordjeVuckovic/calc-hunter/internal/calc"
	"github.com/DjordjeVuckovic/calc-hunter/pkg/utils"
)

func Generate(sr *runner.SuiteResult) *Report {
	r := &Report{
		Meta: BenchMeta{
			Suite:       sr.SuiteName,
			Version:     sr.SuiteVersion,
			Timestamp:   time.Now().UTC(),
			Environment: NewEnvironmentInfo(),
		},
		Config: ReportConfig{
			Executor:   sr.Executor,
			WarmupRuns: sr.Config.WarmupRuns,
			Runs:       sr.Config.Runs,
		},
		Cases: make([]Entry, 0, len(sr.Results)),
	}

	for _, res := range sr.Results {
		r.Cases = append(r.Cases, toEntry(res))
	}
	r.Summary = summarize(sr.Results)

	return r
}

func toEntry(res runner.CaseResult) Entry {
	e := Entry{
		CaseID:     res.CaseID,
		Notation:   res.Notation.String(),
		Expression: res.Expression,
		Passed:     res.Passed,
		Error:      res.Error,
		Latency:    fromRunnerLatencyStats(res.Latency),
	}

	if res.Expect != nil {
		e.Expected = strconv.FormatInt(*res.Expect, 10)
	} else {
		e.Expected = string(res.ExpectError)
	}
	if res.Error != "" {
		e.Got = string(res.ErrorKind)
	} else {
		e.Got = strconv.FormatInt(res.Value, 10)
	}
	return e
}

func summarize(results []runner.CaseResult) Summary {
	s := Summary{Total: len(results)}

	all := make([]runner.LatencyStats, 0, len(results))
	for _, res := range results {
		if res.Passed {
			s.Passed++
		}
		all = append(all, res.Latency)
	}
	s.Failed = s.Total - s.Passed
	if s.Total > 0 {
		s.PassRate = utils.RoundDecimal(float64(s.Passed)/float64(s.Total)*100, 2)
	}
	s.Latency = fromRunnerLatencyStats(runner.MergeLatencyStats(all...))

	for _, n := range calc.Notations {
		g := GroupSummary{Notation: n.String()}
		var lat []runner.LatencyStats
		for _, res := range results {
			if res.Notation != n {
				continue
			}
			g.Total++
			if res.Passed {
				g.Passed++
			}
			lat = append(lat, res.Latency)
		}
		if g.Total == 0 {
			continue
		}
		g.Latency = fromRunnerLatencyStats(runner.MergeLatencyStats(lat...))
		s.ByGroup = append(s.ByGroup, g)
	}

	return s
}
