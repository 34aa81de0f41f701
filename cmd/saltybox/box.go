package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OguzhanE/saltybox/pkg/batch"
	"github.com/OguzhanE/saltybox/pkg/crypto/nacl"
	"github.com/OguzhanE/saltybox/pkg/encoding/hexutil"
	"github.com/OguzhanE/saltybox/pkg/envelope"
	"github.com/OguzhanE/saltybox/pkg/keyring"
	"github.com/OguzhanE/saltybox/pkg/logger"
)

const (
	boxSuffix    = ".box"
	sealedSuffix = ".sealed"
)

var errSenderMismatch = errors.New("envelope sender does not match --peer")

func newBoxCmd(cfg *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "box [files...]",
		Short: "Encrypts files for a peer into <file>.box envelopes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			peer, err := cfg.peerKey()
			if err != nil {
				return err
			}
			kp, err := cfg.keyPair()
			if err != nil {
				return err
			}
			defer kp.Zero()

			ring := keyring.New(kp)
			defer ring.Zero()
			boxer, err := ring.Boxer(peer)
			if err != nil {
				return err
			}
			senderPk := ring.PublicKey()

			messages, err := readFiles(args)
			if err != nil {
				return err
			}
			sealer := batch.SealerFunc(func(message []byte) ([]byte, error) {
				e, err := envelope.SealRandom(boxer, message, &senderPk)
				if err != nil {
					return nil, err
				}
				return envelope.Encode(e)
			})
			encoded, err := batch.SealAll(sealer, messages, cfg.workers)
			if err != nil {
				return namedItemError(args, err)
			}

			out := withSuffix(args, boxSuffix)
			if err := writeFiles(out, encoded); err != nil {
				return err
			}
			logger.Sugar.Info("Boxed ", len(out), " files for peer: ", cfg.peer)
			printWritten(cmd, out)
			return nil
		},
	}
	cmd.Flags().StringVar(&cfg.peer, "peer", "", "public key of the recipient in hex format")
	cmd.Flags().StringVar(&cfg.secretKey, "sk", "", "own secret key in hex format")
	cmd.Flags().IntVar(&cfg.workers, "workers", 0, "maximum number of workers, 0 means one per CPU")
	return cmd
}

func newUnboxCmd(cfg *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unbox [files...]",
		Short: "Decrypts .box envelopes back into their original files",
		Long: `Decrypts .box envelopes back into their original files.

Without --peer the sender key stored in each envelope is used.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var peer [nacl.PublicKeyBytes]byte
			if cfg.hasPeer() {
				pk, err := cfg.peerKey()
				if err != nil {
					return err
				}
				peer = pk
			}
			kp, err := cfg.keyPair()
			if err != nil {
				return err
			}
			defer kp.Zero()

			out, err := trimSuffix(args, boxSuffix)
			if err != nil {
				return err
			}
			encoded, err := readFiles(args)
			if err != nil {
				return err
			}

			ring := keyring.New(kp)
			defer ring.Zero()
			opener := batch.OpenerFunc(func(b []byte) ([]byte, error) {
				e, err := envelope.Decode(b)
				if err != nil {
					return nil, err
				}
				sender, ok := e.SenderKey()
				switch {
				case cfg.hasPeer() && ok && !nacl.Verify32(sender[:], peer[:]):
					return nil, errSenderMismatch
				case cfg.hasPeer():
					sender = peer
				case !ok:
					return nil, errNoPeer
				}
				boxer, err := ring.Boxer(sender)
				if err != nil {
					return nil, err
				}
				return envelope.Open(boxer, e)
			})
			plaintexts, err := batch.OpenAll(opener, encoded, cfg.workers)
			if err != nil {
				return namedItemError(args, err)
			}

			if err := writeFiles(out, plaintexts); err != nil {
				return err
			}
			logger.Sugar.Info("Unboxed ", len(out), " files from ", ring.Len(), " peers")
			printWritten(cmd, out)
			return nil
		},
	}
	cmd.Flags().StringVar(&cfg.peer, "peer", "", "public key of the sender in hex format")
	cmd.Flags().StringVar(&cfg.secretKey, "sk", "", "own secret key in hex format")
	cmd.Flags().IntVar(&cfg.workers, "workers", 0, "maximum number of workers, 0 means one per CPU")
	return cmd
}

func newSealCmd(cfg *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seal [files...]",
		Short: "Encrypts files anonymously for a peer into <file>.sealed",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			peer, err := cfg.peerKey()
			if err != nil {
				return err
			}
			messages, err := readFiles(args)
			if err != nil {
				return err
			}
			sealed, err := batch.SealAll(batch.SealerFunc(nacl.NewSealedBox(peer).Seal), messages, cfg.workers)
			if err != nil {
				return namedItemError(args, err)
			}

			out := withSuffix(args, sealedSuffix)
			if err := writeFiles(out, sealed); err != nil {
				return err
			}
			logger.Sugar.Info("Sealed ", len(out), " files for peer: ", cfg.peer)
			printWritten(cmd, out)
			return nil
		},
	}
	cmd.Flags().StringVar(&cfg.peer, "peer", "", "public key of the recipient in hex format")
	cmd.Flags().IntVar(&cfg.workers, "workers", 0, "maximum number of workers, 0 means one per CPU")
	return cmd
}

func newOpenCmd(cfg *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "open [files...]",
		Short: "Decrypts .sealed files with the own secret key",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kp, err := cfg.keyPair()
			if err != nil {
				return err
			}
			defer kp.Zero()

			out, err := trimSuffix(args, sealedSuffix)
			if err != nil {
				return err
			}
			sealed, err := readFiles(args)
			if err != nil {
				return err
			}
			plaintexts, err := batch.OpenAll(nacl.NewSealedBoxFromKeyPair(kp), sealed, cfg.workers)
			if err != nil {
				return namedItemError(args, err)
			}

			if err := writeFiles(out, plaintexts); err != nil {
				return err
			}
			logger.Sugar.Info("Opened ", len(out), " files with public key: ", hexutil.BytesToHexString(kp.Pk[:]))
			printWritten(cmd, out)
			return nil
		},
	}
	cmd.Flags().StringVar(&cfg.secretKey, "sk", "", "own secret key in hex format")
	cmd.Flags().IntVar(&cfg.workers, "workers", 0, "maximum number of workers, 0 means one per CPU")
	return cmd
}

// namedItemError replaces the batch index with the file name
func namedItemError(names []string, err error) error {
	var itemErr *batch.ItemError
	if errors.As(err, &itemErr) && itemErr.Index < len(names) {
		return fmt.Errorf("%s: %w", names[itemErr.Index], itemErr.Err)
	}
	return err
}
