package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/OguzhanE/saltybox/pkg/logger"
)

func newRootCmd() *cobra.Command {
	cfg := &config{}

	root := &cobra.Command{
		Use:   "saltybox",
		Short: "saltybox - authenticated public-key encryption for files",
		Long: `saltybox encrypts, signs and authenticates files with NaCl primitives.

Usage:
  saltybox <command> [flags]

Run 'saltybox help <command>' for more details on a specific command.
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := logger.InitLogger(cfg.verbosity); err != nil {
				return err
			}
			cfg.resolveEnv()
			logger.Sugar.Debug("Running command: ", cmd.Name())
			return nil
		},
	}
	root.PersistentFlags().IntVarP(&cfg.verbosity, "verbosity", "v", logger.InfoLevel, "logging verbosity")

	root.AddCommand(newKeygenCmd())
	root.AddCommand(newBoxCmd(cfg))
	root.AddCommand(newUnboxCmd(cfg))
	root.AddCommand(newSealCmd(cfg))
	root.AddCommand(newOpenCmd(cfg))
	root.AddCommand(newHashCmd(cfg))
	root.AddCommand(newSignCmd(cfg))
	root.AddCommand(newVerifyCmd(cfg))
	root.AddCommand(newAuthCmd(cfg))
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("✗")+" "+err.Error())
		os.Exit(1)
	}
}
