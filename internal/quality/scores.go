// Package quality provides Phred quality scores and read filtering criteria.
//
// Phred quality scores are logarithmically related to base-calling error
// probabilities:
//
//	Q = -10 * log10(P_error)
//
// Scores are stored as plain integers; Phred+33 (Sanger / Illumina 1.8+) is
// the text encoding used throughout.
package quality

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

// Phred+33 encodes scores 0..93 as '!'..'~'.
const (
	PhredMin    = 0
	PhredMax    = 93
	phredOffset = 33
)

// QualityError is the base error type for quality operations.
type QualityError interface {
	error
	IsQualityError()
}

// EmptyScoresError is returned when quality scores are empty.
type EmptyScoresError struct{}

func (e *EmptyScoresError) Error() string {
	return "quality scores cannot be empty"
}
func (e *EmptyScoresError) IsQualityError() {}

// ScoreOutOfRangeError is returned when a score is out of valid range.
type ScoreOutOfRangeError struct {
	Position int
	Score    int
}

func (e *ScoreOutOfRangeError) Error() string {
	return fmt.Sprintf("score %d at position %d is out of range [%d, %d]", e.Score, e.Position, PhredMin, PhredMax)
}
func (e *ScoreOutOfRangeError) IsQualityError() {}

// InvalidEncodingError is returned when a quality encoding character is invalid.
type InvalidEncodingError struct {
	Position int
	Char     rune
}

func (e *InvalidEncodingError) Error() string {
	return fmt.Sprintf("invalid encoding character '%c' at position %d", e.Char, e.Position)
}
func (e *InvalidEncodingError) IsQualityError() {}

// Scores represents quality scores for a sequencing read, one per base.
type Scores struct {
	Values []int
}

// New creates quality scores from integers, copying the input.
func New(scores []int) (*Scores, error) {
	if len(scores) == 0 {
		return nil, &EmptyScoresError{}
	}

	for i, score := range scores {
		if score < PhredMin || score > PhredMax {
			return nil, &ScoreOutOfRangeError{Position: i, Score: score}
		}
	}

	values := make([]int, len(scores))
	copy(values, scores)

	return &Scores{Values: values}, nil
}

// FromPhred33 decodes a Phred+33 quality string.
func FromPhred33(encoded string) (*Scores, error) {
	if len(encoded) == 0 {
		return nil, &EmptyScoresError{}
	}

	values := make([]int, 0, len(encoded))
	for i, c := range encoded {
		score := int(c) - phredOffset
		if score < PhredMin || score > PhredMax {
			return nil, &InvalidEncodingError{Position: i, Char: c}
		}
		values = append(values, score)
	}

	return &Scores{Values: values}, nil
}

// Len returns the number of scores.
func (s *Scores) Len() int {
	return len(s.Values)
}

// Mean returns the arithmetic mean of the scores.
func (s *Scores) Mean() (float64, error) {
	if len(s.Values) == 0 {
		return 0, &EmptyScoresError{}
	}

	data := make(stats.Float64Data, len(s.Values))
	for i, v := range s.Values {
		data[i] = float64(v)
	}
	return stats.Mean(data)
}

// ToPhred33 encodes the scores as a Phred+33 string.
func (s *Scores) ToPhred33() string {
	b := make([]byte, len(s.Values))
	for i, v := range s.Values {
		b[i] = byte(v + phredOffset)
	}
	return string(b)
}

// ErrorProbability converts a Phred score to a base-call error probability.
func ErrorProbability(score int) float64 {
	return math.Pow(10, -float64(score)/10)
}
