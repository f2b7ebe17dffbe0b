// Command seqmaster provides a CLI for sequence analysis and FASTA, FASTQ
// and GenBank file manipulation.
//
// Usage:
//
//	seqmaster [command] [options]
//
// Commands:
//
//	dna           Run a DNA/RNA tool on sequences
//	protein       Run a protein tool on sequences
//	filter-fastq  Filter FASTQ reads by GC content, length and quality
//	oneline       Convert multi-line FASTA to one-line FASTA
//	shift         Change the start position of a FASTA sequence
//	gbk-select    Write the CDS neighbours of genes in a GenBank file as FASTA
//	version       Show version information
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
