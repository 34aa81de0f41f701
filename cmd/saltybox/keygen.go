package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OguzhanE/saltybox/pkg/crypto/nacl"
	"github.com/OguzhanE/saltybox/pkg/encoding/hexutil"
	"github.com/OguzhanE/saltybox/pkg/logger"
)

func newKeygenCmd() *cobra.Command {
	var signing bool
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generates a new key pair and prints it in hex",
		Long: `Generates a new key pair and prints it in hex.

With --sign an ed25519 signing key is generated instead; its secret is the
32 byte seed that sign takes through --sk.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if signing {
				return printSigningKey(cmd)
			}
			kp, err := nacl.GenerateBoxKeyPair()
			if err != nil {
				return err
			}
			defer kp.Zero()

			pk := hexutil.BytesToHexString(kp.Pk[:])
			logger.Sugar.Info("Generated key pair with public key: ", pk)
			fmt.Fprintln(cmd.OutOrStdout(), "public: "+pk)
			fmt.Fprintln(cmd.OutOrStdout(), "secret: "+hexutil.BytesToHexString(kp.Sk[:]))
			return nil
		},
	}
	cmd.Flags().BoolVar(&signing, "sign", false, "generate an ed25519 signing key")
	return cmd
}

func printSigningKey(cmd *cobra.Command) error {
	sk, err := nacl.GenerateSigningKey()
	if err != nil {
		return err
	}
	defer sk.Zero()

	vk := hexutil.BytesToHexString(sk.VerifyKey().Bytes())
	logger.Sugar.Info("Generated signing key with verify key: ", vk)
	fmt.Fprintln(cmd.OutOrStdout(), "public: "+vk)
	fmt.Fprintln(cmd.OutOrStdout(), "secret: "+hexutil.BytesToHexString(sk.Seed()))
	return nil
}
