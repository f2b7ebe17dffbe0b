// Package stats summarises the outcome of read filtering.
package stats

import (
	"fmt"

	desc "github.com/montanaflynn/stats"

	"github.com/aria-lang/seqmaster-go/internal/quality"
)

// FilterReport aggregates filter verdicts.
//
// Length and GC figures describe the reads that passed; they are zero when
// nothing passed.
type FilterReport struct {
	Total        int
	Passed       int
	Failed       int
	MeanLength   float64
	MedianLength float64
	MeanGC       float64
	MeanQuality  float64
	FailReasons  map[string]int
}

// FromVerdicts builds a report from per-read verdicts.
func FromVerdicts(verdicts []quality.Verdict) *FilterReport {
	r := &FilterReport{
		Total:       len(verdicts),
		FailReasons: make(map[string]int),
	}

	var lengths, gcs, quals desc.Float64Data
	for _, v := range verdicts {
		if !v.Passed {
			r.Failed++
			r.FailReasons[v.Criterion]++
			continue
		}
		r.Passed++
		lengths = append(lengths, float64(v.Length))
		gcs = append(gcs, v.GCContent)
		quals = append(quals, v.MeanQuality)
	}

	if r.Passed > 0 {
		r.MeanLength, _ = desc.Mean(lengths)
		r.MedianLength, _ = desc.Median(lengths)
		r.MeanGC, _ = desc.Mean(gcs)
		r.MeanQuality, _ = desc.Mean(quals)
	}

	return r
}

// PassRate returns the proportion of reads that passed.
func (r *FilterReport) PassRate() float64 {
	if r.Total == 0 {
		return 0.0
	}
	return float64(r.Passed) / float64(r.Total)
}

func (r *FilterReport) String() string {
	return fmt.Sprintf("FilterReport { processed: %d, passed: %d (%.1f%%), failed: %d }",
		r.Total, r.Passed, r.PassRate()*100, r.Failed)
}
