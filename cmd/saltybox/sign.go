package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OguzhanE/saltybox/pkg/batch"
	"github.com/OguzhanE/saltybox/pkg/logger"
)

const sigSuffix = ".sig"

func newSignCmd(cfg *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign [files...]",
		Short: "Writes a detached ed25519 signature of each file to <file>.sig",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sk, err := cfg.signingKey()
			if err != nil {
				return err
			}
			defer sk.Zero()

			messages, err := readFiles(args)
			if err != nil {
				return err
			}
			signer := batch.SealerFunc(func(message []byte) ([]byte, error) {
				return sk.Sign(message), nil
			})
			sigs, err := batch.SealAll(signer, messages, cfg.workers)
			if err != nil {
				return namedItemError(args, err)
			}

			out := withSuffix(args, sigSuffix)
			if err := writeFiles(out, sigs); err != nil {
				return err
			}
			logger.Sugar.Info("Signed ", len(out), " files")
			printWritten(cmd, out)
			return nil
		},
	}
	cmd.Flags().StringVar(&cfg.secretKey, "sk", "", "signing key seed in hex format")
	cmd.Flags().IntVar(&cfg.workers, "workers", 0, "maximum number of workers, 0 means one per CPU")
	return cmd
}

func newVerifyCmd(cfg *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify [files...]",
		Short: "Checks each file against its detached <file>.sig signature",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vk, err := cfg.verifyKeyFromFlag()
			if err != nil {
				return err
			}
			messages, err := readFiles(args)
			if err != nil {
				return err
			}
			sigs, err := readFiles(withSuffix(args, sigSuffix))
			if err != nil {
				return err
			}
			for i, name := range args {
				if err := vk.Verify(sigs[i], messages[i]); err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: OK\n", name)
			}
			logger.Sugar.Info("Verified ", len(args), " files")
			return nil
		},
	}
	cmd.Flags().StringVar(&cfg.verifyKey, "vk", "", "verify key of the signer in hex format")
	return cmd
}
