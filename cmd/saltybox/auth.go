package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/OguzhanE/saltybox/pkg/crypto/nacl"
	"github.com/OguzhanE/saltybox/pkg/encoding/hexutil"
)

// Authenticator algorithms
const (
	AuthHmacSha512256 = "hmacsha512256"
	AuthHmacSha256    = "hmacsha256"
	AuthHmacSha512    = "hmacsha512"
	AuthPoly1305      = "poly1305"
)

func (c *config) authenticator() (*nacl.Authenticator, error) {
	if c.authKey == "" {
		return nil, errNoAuthKey
	}
	key, err := hexutil.HexStringToBytes(c.authKey)
	if err != nil {
		return nil, fmt.Errorf("invalid --key: %w", err)
	}
	switch c.authAlgo {
	case AuthHmacSha512256:
		return nacl.NewHmacSha512256(key)
	case AuthHmacSha256:
		return nacl.NewHmacSha256(key)
	case AuthHmacSha512:
		return nacl.NewHmacSha512(key)
	case AuthPoly1305:
		return nacl.NewOneTimeAuth(key)
	}
	return nil, fmt.Errorf("unknown authenticator %q", c.authAlgo)
}

func newAuthCmd(cfg *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth [files...]",
		Short: "Prints keyed hex tags of files, or of stdin when no file is given",
		Long: `Prints keyed hex tags of files, or of stdin when no file is given.

With --tag the single input is checked against the given tag instead.
A poly1305 key must only ever authenticate one message.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := cfg.authenticator()
			if err != nil {
				return err
			}
			defer a.Zero()

			names := args
			var contents [][]byte
			if len(args) == 0 {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				names, contents = []string{"-"}, [][]byte{data}
			} else if contents, err = readFiles(args); err != nil {
				return err
			}

			if cfg.authTag != "" {
				if len(names) != 1 {
					return fmt.Errorf("--tag checks exactly one input, got %d", len(names))
				}
				tag, err := hexutil.HexStringToBytes(cfg.authTag)
				if err != nil {
					return fmt.Errorf("invalid --tag: %w", err)
				}
				if err := a.Verify(tag, contents[0]); err != nil {
					return fmt.Errorf("%s: %w", names[0], err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: OK\n", names[0])
				return nil
			}
			for i, name := range names {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", hexutil.BytesToHexString(a.Auth(contents[i])), name)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&cfg.authKey, "key", "", "32 byte authentication key in hex format")
	cmd.Flags().StringVar(&cfg.authAlgo, "algo", AuthHmacSha512256, "authenticator: hmacsha512256, hmacsha256, hmacsha512 or poly1305")
	cmd.Flags().StringVar(&cfg.authTag, "tag", "", "expected hex tag; verify instead of printing")
	return cmd
}
