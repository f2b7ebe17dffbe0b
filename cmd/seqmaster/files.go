package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aria-lang/seqmaster-go/internal/quality"
	"github.com/aria-lang/seqmaster-go/pkg/seqmaster"
)

func newFilterFastqCmd(a *app) *cobra.Command {
	var (
		gc        []float64
		length    []float64
		threshold float64
		out       string
	)

	cmd := &cobra.Command{
		Use:   "filter-fastq <input.fastq>",
		Short: "Filter FASTQ reads by GC content, length and quality",
		Long: `Keeps reads whose GC percent and length fall strictly inside the given bounds
and whose mean Phred+33 quality is at least the threshold. A single bound value
is an upper limit with a lower limit of zero.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := seqmaster.DefaultFastqFilter()
			filter.Threshold = threshold
			if len(gc) > 0 {
				b, err := quality.ParseBounds(gc)
				if err != nil {
					return fmt.Errorf("--gc: %w", err)
				}
				filter.GC = b
			}
			if len(length) > 0 {
				b, err := quality.ParseBounds(length)
				if err != nil {
					return fmt.Errorf("--length: %w", err)
				}
				filter.Length = b
			}

			dest, report, err := seqmaster.FilterFASTQ(cmd.Context(), seqmaster.FilterOptions{
				Input:     args[0],
				Output:    out,
				OutputDir: a.cfg.Output.FASTQDir,
				Filter:    filter,
			})
			if err != nil {
				return err
			}

			a.logger.Info("filtered reads", "output", dest, "passed", report.Passed, "failed", report.Failed)
			for reason, n := range report.FailReasons {
				a.logger.Debug("rejected", "criterion", reason, "reads", n)
			}
			fmt.Fprintln(cmd.OutOrStdout(), report)
			return nil
		},
	}

	cmd.Flags().Float64SliceVar(&gc, "gc", nil, "GC percent bounds: max or min,max")
	cmd.Flags().Float64SliceVar(&length, "length", nil, "length bounds: max or min,max")
	cmd.Flags().Float64Var(&threshold, "threshold", 0, "minimum mean quality")
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file name")
	return cmd
}

func newOneLineCmd(a *app) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "oneline <input.fasta>",
		Short: "Convert multi-line FASTA to one-line FASTA",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dest, n, err := seqmaster.ConvertMultilineFASTAToOneline(cmd.Context(), args[0], out, a.cfg.Output.OneLineDir)
			if err != nil {
				return err
			}
			a.logger.Info("wrote one-line FASTA", "output", dest, "records", n)
			fmt.Fprintln(cmd.OutOrStdout(), dest)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "output file name")
	return cmd
}

func newShiftCmd(a *app) *cobra.Command {
	var (
		shift int
		out   string
	)

	cmd := &cobra.Command{
		Use:   "shift <input.fasta>",
		Short: "Change the start position of a FASTA sequence",
		Long: `Rotates the first sequence of the file so it starts at --shift. Negative
values count from the end.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dest, err := seqmaster.ChangeFASTAStartPos(cmd.Context(), args[0], shift, out, a.cfg.Output.ShiftedDir)
			if err != nil {
				return err
			}
			a.logger.Info("wrote shifted FASTA", "output", dest, "shift", shift)
			fmt.Fprintln(cmd.OutOrStdout(), dest)
			return nil
		},
	}

	cmd.Flags().IntVar(&shift, "shift", 0, "new start position")
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file name")
	cmd.MarkFlagRequired("shift")
	return cmd
}

func newGBKSelectCmd(a *app) *cobra.Command {
	var (
		genes   []string
		nBefore int
		nAfter  int
		out     string
	)

	cmd := &cobra.Command{
		Use:   "gbk-select <input.gbk>",
		Short: "Write the CDS neighbours of genes in a GenBank file as FASTA",
		Long: `For each gene, selects up to --before CDS preceding and --after CDS following
the gene's CDS and writes their translations as FASTA. The gene's own CDS is
not written. Overlapping windows are not merged.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dest, n, err := seqmaster.SelectGenesFromGBKToFASTA(cmd.Context(), seqmaster.SelectOptions{
				Input:     args[0],
				Genes:     genes,
				NBefore:   nBefore,
				NAfter:    nAfter,
				Output:    out,
				OutputDir: a.cfg.Output.GBKDir,
			})
			if err != nil {
				return err
			}
			a.logger.Info("wrote selected CDS", "output", dest, "records", n)
			fmt.Fprintln(cmd.OutOrStdout(), dest)
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&genes, "genes", "g", nil, "genes of interest")
	cmd.Flags().IntVar(&nBefore, "before", 1, "CDS to take before each gene")
	cmd.Flags().IntVar(&nAfter, "after", 1, "CDS to take after each gene")
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file name")
	cmd.MarkFlagRequired("genes")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), seqmaster.Info())
		},
	}
}
