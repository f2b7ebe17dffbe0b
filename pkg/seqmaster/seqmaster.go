// Package seqmaster provides a high-level API for sequence analysis and
// FASTA, FASTQ and GenBank file manipulation.
//
// Example usage:
//
//	res, err := seqmaster.RunDNARNATools(seqmaster.ToolReverseComplement, seqmaster.DNA, "ATGC")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Strings[0])
//
//	path, n, err := seqmaster.SelectGenesFromGBKToFASTA(ctx, seqmaster.SelectOptions{
//	    Input:   "example.gbk",
//	    Genes:   []string{"thrA"},
//	    NBefore: 1,
//	    NAfter:  1,
//	})
package seqmaster

import (
	"fmt"

	"github.com/aria-lang/seqmaster-go/internal/genbank"
	"github.com/aria-lang/seqmaster-go/internal/protein"
	"github.com/aria-lang/seqmaster-go/internal/quality"
	"github.com/aria-lang/seqmaster-go/internal/sequence"
	"github.com/aria-lang/seqmaster-go/internal/stats"
)

// Re-export types for convenience
type (
	Kind              = sequence.Kind
	NucleicResult     = sequence.Result
	ProteinResult     = protein.Result
	Table             = genbank.Table
	CDSID             = genbank.CDSID
	Record            = genbank.Record
	GeneNotFoundError = genbank.GeneNotFoundError
	FastqFilter       = quality.FastqFilter
	Bounds            = quality.Bounds
	FilterReport      = stats.FilterReport
)

// Constants
const (
	DNA = sequence.DNA
	RNA = sequence.RNA

	OneLetter   = protein.OneLetter
	ThreeLetter = protein.ThreeLetter

	ToolIdentity          = sequence.ToolIdentity
	ToolComplement        = sequence.ToolComplement
	ToolReverseComplement = sequence.ToolReverseComplement
	ToolTranscribe        = sequence.ToolTranscribe
	ToolReverse           = sequence.ToolReverse
	ToolGCContent         = sequence.ToolGCContent

	ToolCharacteristic   = protein.ToolCharacteristic
	ToolFindSite         = protein.ToolFindSite
	ToolMass             = protein.ToolMass
	ToolHydrophobicity   = protein.ToolHydrophobicity
	ToolIsoelectricPoint = protein.ToolIsoelectricPoint
	ToolMRNA             = protein.ToolMRNA
)

// ErrGeneNotFound matches lookup failures from SelectGenesFromGBKToFASTA.
var ErrGeneNotFound = genbank.ErrGeneNotFound

// ParseKind parses "DNA" or "RNA".
func ParseKind(s string) (Kind, error) {
	return sequence.ParseKind(s)
}

// RunDNARNATools applies a nucleic-acid tool to every sequence. kind selects
// the complement alphabet.
func RunDNARNATools(tool string, kind Kind, seqs ...string) (NucleicResult, error) {
	return sequence.RunTool(tool, kind, seqs...)
}

// RunProteinAnalysis applies a protein tool to every sequence given in
// encoding (1 or 3). site is only used by find_site.
func RunProteinAnalysis(tool string, encoding int, site string, seqs ...string) (ProteinResult, error) {
	return protein.RunTool(tool, encoding, site, seqs...)
}

// DefaultFastqFilter returns the permissive default FASTQ filter.
func DefaultFastqFilter() *FastqFilter {
	return quality.DefaultFastqFilter()
}

// NucleicTools lists the tool names accepted by RunDNARNATools.
func NucleicTools() []string {
	return append([]string(nil), sequence.Tools...)
}

// ProteinTools lists the tool names accepted by RunProteinAnalysis.
func ProteinTools() []string {
	return append([]string(nil), protein.Tools...)
}

// Version returns the SeqMaster version.
func Version() string {
	return "1.0.0"
}

// Info returns information about SeqMaster.
func Info() string {
	return fmt.Sprintf(`SeqMaster v%s - Sequence Analysis Toolkit

Features:
  - DNA/RNA identity, complement, reverse complement, transcription, GC content
  - Protein mass, hydrophobicity, isoelectric point, composition, site search
  - FASTQ filtering by GC content, length and mean quality
  - Multi-line to one-line FASTA conversion
  - FASTA start position shifting
  - GenBank CDS neighbour extraction to FASTA
`, Version())
}
