package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/OguzhanE/saltybox/pkg/crypto/nacl"
	"github.com/OguzhanE/saltybox/pkg/encoding/hexutil"
)

// Hash algorithms
const (
	AlgoSha256  = "sha256"
	AlgoSha512  = "sha512"
	AlgoBlake2b = "blake2b"
)

func digest(algo string, data []byte) ([]byte, error) {
	switch algo {
	case AlgoSha256:
		d := nacl.Sha256(data)
		return d[:], nil
	case AlgoSha512:
		d := nacl.Sha512(data)
		return d[:], nil
	case AlgoBlake2b:
		return nacl.Blake2b(data, nacl.Blake2bBytes, nil)
	}
	return nil, fmt.Errorf("unknown hash algorithm %q", algo)
}

func newHashCmd(cfg *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash [files...]",
		Short: "Prints hex digests of files, or of stdin when no file is given",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				return printDigest(cmd, cfg.algo, data, "-")
			}
			contents, err := readFiles(args)
			if err != nil {
				return err
			}
			for i, name := range args {
				if err := printDigest(cmd, cfg.algo, contents[i], name); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&cfg.algo, "algo", AlgoSha256, "hash algorithm: sha256, sha512 or blake2b")
	return cmd
}

func printDigest(cmd *cobra.Command, algo string, data []byte, name string) error {
	d, err := digest(algo, data)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", hexutil.BytesToHexString(d), name)
	return nil
}
