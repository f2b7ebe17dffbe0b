package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/aria-lang/seqmaster-go/internal/config"
	"github.com/aria-lang/seqmaster-go/internal/logging"
)

// app carries state shared by every subcommand once flags are parsed.
type app struct {
	configPath string
	logLevel   string

	cfg    *config.Config
	logger *log.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "seqmaster",
		Short:         "Sequence analysis and FASTA, FASTQ and GenBank utilities",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML configuration file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(
		newDNACmd(a),
		newProteinCmd(a),
		newFilterFastqCmd(a),
		newOneLineCmd(a),
		newShiftCmd(a),
		newGBKSelectCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	a.cfg = cfg
	a.logger = logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
	return nil
}
