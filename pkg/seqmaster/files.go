package seqmaster

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aria-lang/seqmaster-go/internal/config"
	"github.com/aria-lang/seqmaster-go/internal/fasta"
	"github.com/aria-lang/seqmaster-go/internal/fastq"
	"github.com/aria-lang/seqmaster-go/internal/genbank"
	"github.com/aria-lang/seqmaster-go/internal/output"
)

// SelectOptions configures SelectGenesFromGBKToFASTA.
type SelectOptions struct {
	Input     string   // GenBank file
	Genes     []string // genes of interest, in output order
	NBefore   int
	NAfter    int
	Output    string // file name; default CDS_selected_from_<input>.fasta
	OutputDir string // directory next to Input; default fasta_selected_from_gbk
}

// SelectGenesFASTA renders the FASTA of the CDS neighbours of genes found
// in the GenBank record read from r.
func SelectGenesFASTA(r io.Reader, genes []string, nBefore, nAfter int) ([]byte, int, error) {
	table, err := genbank.Parse(r)
	if err != nil {
		return nil, 0, err
	}
	return renderSelection(table, genes, nBefore, nAfter)
}

func renderSelection(table *genbank.Table, genes []string, nBefore, nAfter int) ([]byte, int, error) {
	ids, err := table.SelectNeighbors(genes, nBefore, nAfter)
	if err != nil {
		return nil, 0, err
	}

	var buf bytes.Buffer
	if err := fasta.WriteCDS(&buf, ids, table.Records); err != nil {
		return nil, 0, err
	}
	return buf.Bytes(), len(ids), nil
}

// SelectGenesFromGBKToFASTA writes the CDS neighbours of the requested genes
// to a FASTA file next to the input and returns its path and record count.
// The selection is rendered completely before the output directory is
// touched, so an unknown gene leaves no file behind.
func SelectGenesFromGBKToFASTA(ctx context.Context, opts SelectOptions) (string, int, error) {
	dir := orDefault(opts.OutputDir, config.Default().Output.GBKDir)
	dest, err := output.Location(opts.Input, opts.Output, dir, "CDS_selected_from_", ".fasta")
	if err != nil {
		return "", 0, err
	}

	table, err := genbank.ReadFile(opts.Input)
	if err != nil {
		return "", 0, err
	}

	data, n, err := renderSelection(table, opts.Genes, opts.NBefore, opts.NAfter)
	if err != nil {
		return "", 0, err
	}

	if err := writeBytes(ctx, dest, data); err != nil {
		return "", 0, err
	}
	return dest, n, nil
}

// FilterOptions configures FilterFASTQ.
type FilterOptions struct {
	Input     string
	Output    string // file name; default filtered_<input base name>
	OutputDir string // default fastq_filtrator_results
	Filter    *FastqFilter
}

// FilterFASTQ writes the reads of Input that pass Filter to a FASTQ file
// next to the input.
func FilterFASTQ(ctx context.Context, opts FilterOptions) (string, *FilterReport, error) {
	dir := orDefault(opts.OutputDir, config.Default().Output.FASTQDir)
	dest, err := output.Location(opts.Input, opts.Output, dir, "filtered_", filepath.Ext(opts.Input))
	if err != nil {
		return "", nil, err
	}

	filter := opts.Filter
	if filter == nil {
		filter = DefaultFastqFilter()
	}

	f, err := os.Open(opts.Input)
	if err != nil {
		return "", nil, fmt.Errorf("opening FASTQ file: %w", err)
	}
	defer f.Close()

	reads, err := fastq.ReadAll(f)
	if err != nil {
		return "", nil, err
	}

	res, err := fastq.Filter(reads, filter)
	if err != nil {
		return "", nil, err
	}

	err = output.WriteFile(ctx, dest, func(w io.Writer) error {
		return fastq.WriteAll(ctx, w, res.Passed)
	})
	if err != nil {
		return "", nil, err
	}
	return dest, res.Report, nil
}

// ConvertMultilineFASTAToOneline rewrites input with one sequence line per
// record and returns the output path and record count.
func ConvertMultilineFASTAToOneline(ctx context.Context, input, name, outputDir string) (string, int, error) {
	dir := orDefault(outputDir, config.Default().Output.OneLineDir)
	dest, err := output.Location(input, name, dir, "oneline_", ".fasta")
	if err != nil {
		return "", 0, err
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return "", 0, fmt.Errorf("reading FASTA file: %w", err)
	}

	var buf bytes.Buffer
	n, err := fasta.ToOneLine(bytes.NewReader(data), &buf)
	if err != nil {
		return "", 0, err
	}

	if err := writeBytes(ctx, dest, buf.Bytes()); err != nil {
		return "", 0, err
	}
	return dest, n, nil
}

// ChangeFASTAStartPos rotates the first sequence of input so that it starts
// at shift and returns the output path.
func ChangeFASTAStartPos(ctx context.Context, input string, shift int, name, outputDir string) (string, error) {
	dir := orDefault(outputDir, config.Default().Output.ShiftedDir)
	dest, err := output.Location(input, name, dir, "shifted_", ".fasta")
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return "", fmt.Errorf("reading FASTA file: %w", err)
	}

	var buf bytes.Buffer
	if err := fasta.ShiftStart(bytes.NewReader(data), &buf, shift); err != nil {
		return "", err
	}

	if err := writeBytes(ctx, dest, buf.Bytes()); err != nil {
		return "", err
	}
	return dest, nil
}

func writeBytes(ctx context.Context, dest string, data []byte) error {
	return output.WriteFile(ctx, dest, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
