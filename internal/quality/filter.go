package quality

import (
	"fmt"
	"math"
)

// Bounds is an open interval: a value passes when Min < v < Max.
type Bounds struct {
	Min float64
	Max float64
}

// UpperBound returns the interval (0, max).
func UpperBound(max float64) Bounds {
	return Bounds{Min: 0, Max: max}
}

// Contains reports whether Min < v < Max.
func (b Bounds) Contains(v float64) bool {
	return b.Min < v && v < b.Max
}

// Validate rejects inverted intervals.
func (b Bounds) Validate() error {
	if b.Min > b.Max {
		return fmt.Errorf("invalid bounds: min %g is greater than max %g", b.Min, b.Max)
	}
	return nil
}

// ParseBounds builds bounds from one or two values. A single value is an
// upper bound.
func ParseBounds(values []float64) (Bounds, error) {
	switch len(values) {
	case 1:
		return UpperBound(values[0]), nil
	case 2:
		b := Bounds{Min: values[0], Max: values[1]}
		return b, b.Validate()
	default:
		return Bounds{}, fmt.Errorf("bounds take one or two values, got %d", len(values))
	}
}

// DefaultMaxLength is the default exclusive upper length bound (2^32).
const DefaultMaxLength = 1 << 32

// FastqFilter selects reads by GC content, length and mean quality.
type FastqFilter struct {
	GC        Bounds  // percent, exclusive
	Length    Bounds  // bases, exclusive
	Threshold float64 // minimum mean Phred score, inclusive
}

// DefaultFastqFilter accepts GC in (0, 100), length in (0, 2^32) and any
// mean quality.
func DefaultFastqFilter() *FastqFilter {
	return &FastqFilter{
		GC:        Bounds{Min: 0, Max: 100},
		Length:    Bounds{Min: 0, Max: DefaultMaxLength},
		Threshold: 0,
	}
}

// Validate checks the filter configuration.
func (f *FastqFilter) Validate() error {
	if err := f.GC.Validate(); err != nil {
		return fmt.Errorf("gc bounds: %w", err)
	}
	if err := f.Length.Validate(); err != nil {
		return fmt.Errorf("length bounds: %w", err)
	}
	if f.Threshold < 0 || math.IsNaN(f.Threshold) {
		return fmt.Errorf("quality threshold must be non-negative, got %g", f.Threshold)
	}
	return nil
}

// Criteria a read can fail.
const (
	CriterionGC      = "gc"
	CriterionLength  = "length"
	CriterionQuality = "quality"
)

// Verdict explains why a read was accepted or rejected.
type Verdict struct {
	Passed      bool
	Criterion   string // set when the read failed
	Reason      string
	GCContent   float64
	Length      int
	MeanQuality float64
}

// Check applies the filter to a read given its GC percentage and scores.
func (f *FastqFilter) Check(gc float64, scores *Scores) Verdict {
	v := Verdict{GCContent: gc, Length: scores.Len()}

	if !f.GC.Contains(gc) {
		v.Criterion = CriterionGC
		v.Reason = fmt.Sprintf("GC content %.2f%% outside (%g, %g)", gc, f.GC.Min, f.GC.Max)
		return v
	}
	if !f.Length.Contains(float64(v.Length)) {
		v.Criterion = CriterionLength
		v.Reason = fmt.Sprintf("length %d outside (%g, %g)", v.Length, f.Length.Min, f.Length.Max)
		return v
	}

	mean, err := scores.Mean()
	if err != nil {
		v.Criterion = CriterionQuality
		v.Reason = err.Error()
		return v
	}
	v.MeanQuality = mean
	if mean < f.Threshold {
		v.Criterion = CriterionQuality
		v.Reason = fmt.Sprintf("mean quality %.2f below %g", mean, f.Threshold)
		return v
	}

	v.Passed = true
	return v
}
