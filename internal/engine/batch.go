package engine

import (
	"fmt"

	"hanzi-namer/internal/profile"
)

// BatchReport summarises a run of RunBatch.
type BatchReport struct {
	Target   int
	Actual   int
	Results  []*Result
	BySource map[Source]int
	Distinct int
	ErrorMsg string
}

// RunBatch generates count names for the same request, calling onProgress
// after each one. The first failure stops the run; what was generated so far
// is still reported.
func RunBatch(g *Generator, req profile.Request, count int, onProgress func()) (BatchReport, error) {
	report := BatchReport{
		Target:   count,
		BySource: make(map[Source]int),
	}
	if count <= 0 {
		return report, fmt.Errorf("count must be positive, got %d", count)
	}

	seen := make(map[string]bool)
	for i := 0; i < count; i++ {
		res, err := g.Generate(req)
		if err != nil {
			report.ErrorMsg = err.Error()
			return report, fmt.Errorf("batch stopped after %d/%d names: %w", report.Actual, count, err)
		}

		report.Results = append(report.Results, res)
		report.BySource[res.Source]++
		report.Actual++
		if !seen[res.Name] {
			seen[res.Name] = true
			report.Distinct++
		}
		if onProgress != nil {
			onProgress()
		}
	}
	return report, nil
}
