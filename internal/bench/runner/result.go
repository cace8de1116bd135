package runner

import (
	"github.com/DjordjeVuckovic/calc-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/calc-hunter/internal/calc"
)

type CaseResult struct {
	CaseID      string
	Notation    calc.Notation
	Expression  string
	Expect      *int64
	ExpectError apperr.Kind
	Value       int64
	ErrorKind   apperr.Kind
	Error       string
	Passed      bool
	Latency     LatencyStats
}

// Mismatch describes why a case failed, or is empty when it passed.
func (r CaseResult) Mismatch() string {
	if r.Passed {
		return ""
	}
	switch {
	case r.Expect != nil && r.ErrorKind != apperr.KindNone:
		return "want " + formatInt(*r.Expect) + ", got " + string(r.ErrorKind) + ": " + r.Error
	case r.Expect != nil:
		return "want " + formatInt(*r.Expect) + ", got " + formatInt(r.Value)
	case r.ErrorKind == apperr.KindNone:
		return "want " + string(r.ExpectError) + ", got " + formatInt(r.Value)
	default:
		return "want " + string(r.ExpectError) + ", got " + string(r.ErrorKind) + ": " + r.Error
	}
}

type SuiteResult struct {
	SuiteName    string
	SuiteVersion string
	Executor     string
	Results      []CaseResult
	Config       Config
}

func (sr *SuiteResult) PassedCount() int {
	n := 0
	for _, r := range sr.Results {
		if r.Passed {
			n++
		}
	}
	return n
}

func (sr *SuiteResult) Failed() []CaseResult {
	var failed []CaseResult
	for _, r := range sr.Results {
		if !r.Passed {
			failed = append(failed, r)
		}
	}
	return failed
}

func (sr *SuiteResult) AllPassed() bool {
	return sr.PassedCount() == len(sr.Results)
}
