// Package fasta writes and rewrites FASTA text.
//
// Reading is delegated to biogo's FASTA reader; the writers here produce
// unwrapped, single-line sequence bodies.
package fasta

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"github.com/aria-lang/seqmaster-go/internal/genbank"
)

// Error is implemented by every error caused by the FASTA input or the
// records passed in, as opposed to I/O failures on the output.
type Error interface {
	error
	IsFASTAError()
}

// FormatError reports FASTA text the reader could not parse.
type FormatError struct {
	Err error
}

func (e *FormatError) Error() string {
	return "reading FASTA: " + e.Err.Error()
}

func (e *FormatError) Unwrap() error { return e.Err }

func (e *FormatError) IsFASTAError() {}

// MissingRecordError is returned when a CDS to be written has no table entry.
type MissingRecordError struct {
	ID genbank.CDSID
}

func (e *MissingRecordError) Error() string {
	return fmt.Sprintf("no record for CDS %q", e.ID)
}

func (e *MissingRecordError) IsFASTAError() {}

// EmptySequenceError is returned when an operation needs at least one base.
type EmptySequenceError struct{}

func (e *EmptySequenceError) Error() string {
	return "FASTA input has no sequence"
}

func (e *EmptySequenceError) IsFASTAError() {}

// Record is a parsed FASTA entry.
type Record struct {
	ID          string
	Description string
	Sequence    string
}

// Header returns the header line without the leading '>'.
func (r Record) Header() string {
	if r.Description == "" {
		return r.ID
	}
	return r.ID + " " + r.Description
}

// WriteCDS writes one FASTA record per id, in order:
//
//	>CDS1..300 gene: thrL
//	MKRISTTITTTITITTGNGAG
//
// Sequences are not wrapped. Every id is checked against records before the
// first byte is written, so a missing record leaves w untouched.
func WriteCDS(w io.Writer, ids []genbank.CDSID, records map[genbank.CDSID]genbank.Record) error {
	for _, id := range ids {
		if _, ok := records[id]; !ok {
			return &MissingRecordError{ID: id}
		}
	}

	bw := bufio.NewWriter(w)
	for _, id := range ids {
		rec := records[id]
		fmt.Fprintf(bw, ">%s gene: %s\n", id, rec.Gene)
		bw.WriteString(strings.ReplaceAll(rec.Translation, `"`, ""))
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing FASTA: %w", err)
	}
	return nil
}

// Read parses every record in r. Sequence lines of a record are joined.
func Read(r io.Reader) ([]Record, error) {
	records := make([]Record, 0)

	sc := seqio.NewScanner(fasta.NewReader(r, linear.NewSeq("", nil, alphabet.DNA)))
	for sc.Next() {
		s := sc.Seq().(*linear.Seq)
		records = append(records, Record{
			ID:          s.ID,
			Description: s.Desc,
			Sequence:    string(alphabet.LettersToBytes(s.Seq)),
		})
	}
	if err := sc.Error(); err != nil {
		return nil, &FormatError{Err: err}
	}

	return records, nil
}

// Write writes records with unwrapped sequences. A record with an empty
// sequence is written as a header line only.
func Write(w io.Writer, records []Record) error {
	bw := bufio.NewWriter(w)
	for _, rec := range records {
		bw.WriteString(">" + rec.Header() + "\n")
		if rec.Sequence != "" {
			bw.WriteString(rec.Sequence + "\n")
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing FASTA: %w", err)
	}
	return nil
}

// ToOneLine rewrites multi-line FASTA from r as one-line FASTA on w and
// returns the number of records written.
func ToOneLine(r io.Reader, w io.Writer) (int, error) {
	records, err := Read(r)
	if err != nil {
		return 0, err
	}
	if err := Write(w, records); err != nil {
		return 0, err
	}
	return len(records), nil
}

// Rotate moves the start of seq to position shift. Negative shifts count
// from the end; shifts beyond the length wrap around.
func Rotate(seq string, shift int) (string, error) {
	n := len(seq)
	if n == 0 {
		return "", &EmptySequenceError{}
	}
	shift %= n
	if shift < 0 {
		shift += n
	}
	return seq[shift:] + seq[:shift], nil
}

// ShiftStart rotates the first record of r by shift positions and writes
// it to w. Any later records are ignored.
func ShiftStart(r io.Reader, w io.Writer, shift int) error {
	records, err := Read(r)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return &EmptySequenceError{}
	}

	first := records[0]
	rotated, err := Rotate(first.Sequence, shift)
	if err != nil {
		return err
	}
	first.Sequence = rotated

	return Write(w, []Record{first})
}
