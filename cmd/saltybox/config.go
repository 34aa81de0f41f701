package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/OguzhanE/saltybox/pkg/crypto/nacl"
	"github.com/OguzhanE/saltybox/pkg/encoding/hexutil"
)

// SecretKeyEnv holds the hex secret key when --sk is not given
const SecretKeyEnv = "SALTYBOX_SECRET_KEY"

var (
	errNoPeer      = errors.New("missing peer public key: use --peer")
	errNoSecretKey = errors.New("missing secret key: use --sk or " + SecretKeyEnv)
	errNoVerifyKey = errors.New("missing verify key: use --vk")
	errNoAuthKey   = errors.New("missing authentication key: use --key")
)

type config struct {
	verbosity int
	peer      string
	secretKey string
	workers   int
	algo      string
	verifyKey string
	authKey   string
	authAlgo  string
	authTag   string
}

func (c *config) resolveEnv() {
	if c.secretKey == "" {
		c.secretKey = os.Getenv(SecretKeyEnv)
	}
}

func (c *config) hasPeer() bool {
	return c.peer != ""
}

func (c *config) peerKey() ([nacl.PublicKeyBytes]byte, error) {
	if c.peer == "" {
		return [nacl.PublicKeyBytes]byte{}, errNoPeer
	}
	pk, err := hexutil.HexStringToBytes32(c.peer)
	if err != nil {
		return [nacl.PublicKeyBytes]byte{}, fmt.Errorf("invalid --peer: %w", err)
	}
	return *pk, nil
}

func (c *config) keyPair() (*nacl.BoxKeyPair, error) {
	if c.secretKey == "" {
		return nil, errNoSecretKey
	}
	sk, err := hexutil.HexStringToBytes32(c.secretKey)
	if err != nil {
		return nil, fmt.Errorf("invalid secret key: %w", err)
	}
	return nacl.BoxKeyPairFromSecretKey(*sk), nil
}

func (c *config) signingKey() (*nacl.SigningKey, error) {
	if c.secretKey == "" {
		return nil, errNoSecretKey
	}
	seed, err := hexutil.HexStringToBytes(c.secretKey)
	if err != nil {
		return nil, fmt.Errorf("invalid signing key: %w", err)
	}
	return nacl.NewSigningKey(seed)
}

func (c *config) verifyKeyFromFlag() (*nacl.VerifyKey, error) {
	if c.verifyKey == "" {
		return nil, errNoVerifyKey
	}
	pk, err := hexutil.HexStringToBytes(c.verifyKey)
	if err != nil {
		return nil, fmt.Errorf("invalid --vk: %w", err)
	}
	return nacl.NewVerifyKey(pk)
}
