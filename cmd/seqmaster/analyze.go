package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aria-lang/seqmaster-go/internal/protein"
	"github.com/aria-lang/seqmaster-go/pkg/seqmaster"
)

func newDNACmd(a *app) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "dna <tool> <sequence>...",
		Short: "Run a DNA/RNA tool on sequences",
		Long: "Runs one of " + strings.Join(seqmaster.NucleicTools(), ", ") + ` on every sequence.
All sequences are checked before the tool runs; one result is printed per line.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := seqmaster.ParseKind(kind)
			if err != nil {
				return err
			}

			res, err := seqmaster.RunDNARNATools(args[0], k, args[1:]...)
			if err != nil {
				return err
			}
			a.logger.Debug("tool finished", "tool", args[0], "sequences", len(args)-1)

			out := cmd.OutOrStdout()
			for i := 0; i < res.Len(); i++ {
				if res.Floats != nil {
					fmt.Fprintf(out, "%.2f\n", res.Floats[i])
					continue
				}
				fmt.Fprintln(out, res.Strings[i])
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "DNA", "complement alphabet (DNA or RNA)")
	return cmd
}

func newProteinCmd(a *app) *cobra.Command {
	var (
		encoding int
		site     string
	)

	cmd := &cobra.Command{
		Use:   "protein <tool> <sequence>...",
		Short: "Run a protein tool on sequences",
		Long:  "Runs one of " + strings.Join(seqmaster.ProteinTools(), ", ") + " on every sequence.",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := seqmaster.RunProteinAnalysis(args[0], encoding, site, args[1:]...)
			if err != nil {
				return err
			}
			a.logger.Debug("tool finished", "tool", args[0], "sequences", len(args)-1)

			printProteinResult(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().IntVar(&encoding, "encoding", seqmaster.OneLetter, "residue encoding (1 or 3)")
	cmd.Flags().StringVar(&site, "site", "", "one-letter motif for find_site")
	return cmd
}

func printProteinResult(w io.Writer, res seqmaster.ProteinResult) {
	for _, s := range res.Strings {
		fmt.Fprintln(w, s)
	}
	for _, f := range res.Floats {
		fmt.Fprintf(w, "%.2f\n", f)
	}
	for _, sites := range res.Sites {
		parts := make([]string, len(sites))
		for i, p := range sites {
			parts[i] = fmt.Sprint(p)
		}
		fmt.Fprintln(w, strings.Join(parts, " "))
	}
	for _, comp := range res.Compositions {
		parts := make([]string, 0, len(comp))
		for _, r := range protein.Residues(comp) {
			parts = append(parts, fmt.Sprintf("%s:%.2f", r, comp[r]))
		}
		fmt.Fprintln(w, strings.Join(parts, " "))
	}
}
