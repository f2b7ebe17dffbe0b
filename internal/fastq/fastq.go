// Package fastq reads, filters and writes FASTQ reads.
//
// Parsing and formatting are done by biogo; reads keep their biogo
// representation so that passing records are written back unchanged.
package fastq

import (
	"context"
	"fmt"
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	bfastq "github.com/biogo/biogo/io/seqio/fastq"
	"github.com/biogo/biogo/seq/linear"

	"github.com/aria-lang/seqmaster-go/internal/quality"
	"github.com/aria-lang/seqmaster-go/internal/sequence"
	"github.com/aria-lang/seqmaster-go/internal/stats"
)

// Read is a single FASTQ record.
type Read struct {
	seq *linear.QSeq
}

// NewRead builds a read from its text fields. qual must be Phred+33 and
// as long as bases.
func NewRead(id, description, bases, qual string) (*Read, error) {
	if len(bases) != len(qual) {
		return nil, fmt.Errorf("read %s: sequence length %d does not match quality length %d", id, len(bases), len(qual))
	}

	ql := make([]alphabet.QLetter, len(bases))
	if len(qual) > 0 {
		scores, err := quality.FromPhred33(qual)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", id, err)
		}
		for i := range ql {
			ql[i] = alphabet.QLetter{L: alphabet.Letter(bases[i]), Q: alphabet.Qphred(scores.Values[i])}
		}
	}
	s := linear.NewQSeq(id, ql, alphabet.DNA, alphabet.Sanger)
	s.Desc = description

	return &Read{seq: s}, nil
}

// ID returns the read identifier.
func (r *Read) ID() string {
	return r.seq.ID
}

// Len returns the number of bases.
func (r *Read) Len() int {
	return r.seq.Len()
}

// Bases returns the sequence letters.
func (r *Read) Bases() string {
	b := make([]byte, len(r.seq.Seq))
	for i, ql := range r.seq.Seq {
		b[i] = byte(ql.L)
	}
	return string(b)
}

// Scores returns the Phred scores of the read.
func (r *Read) Scores() *quality.Scores {
	values := make([]int, len(r.seq.Seq))
	for i, ql := range r.seq.Seq {
		values[i] = int(ql.Q)
	}
	return &quality.Scores{Values: values}
}

// ReadAll parses every record from r.
func ReadAll(r io.Reader) ([]*Read, error) {
	reads := make([]*Read, 0)

	sc := seqio.NewScanner(bfastq.NewReader(r, linear.NewQSeq("", nil, alphabet.DNA, alphabet.Sanger)))
	for sc.Next() {
		reads = append(reads, &Read{seq: sc.Seq().(*linear.QSeq)})
	}
	if err := sc.Error(); err != nil {
		return nil, fmt.Errorf("reading FASTQ: %w", err)
	}

	return reads, nil
}

// WriteAll writes reads to w in FASTQ format.
func WriteAll(ctx context.Context, w io.Writer, reads []*Read) error {
	fw := bfastq.NewWriter(w)
	for _, r := range reads {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := fw.Write(r.seq); err != nil {
			return fmt.Errorf("writing read %s: %w", r.ID(), err)
		}
	}
	return nil
}

// Result is the outcome of filtering a set of reads.
type Result struct {
	Passed []*Read
	Report *stats.FilterReport
}

// Filter checks every read against f and returns the passing reads in
// input order.
func Filter(reads []*Read, f *quality.FastqFilter) (*Result, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	res := &Result{Passed: make([]*Read, 0)}
	verdicts := make([]quality.Verdict, 0, len(reads))
	for _, r := range reads {
		v := f.Check(sequence.GCContent(r.Bases()), r.Scores())
		verdicts = append(verdicts, v)
		if v.Passed {
			res.Passed = append(res.Passed, r)
		}
	}
	res.Report = stats.FromVerdicts(verdicts)

	return res, nil
}
