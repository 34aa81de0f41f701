package keyring

import (
	"errors"
	"fmt"
	"sync"

	hm "github.com/cornelk/hashmap"

	"github.com/OguzhanE/saltybox/pkg/crypto/nacl"
	"github.com/OguzhanE/saltybox/pkg/encoding/hexutil"
	"github.com/OguzhanE/saltybox/pkg/logger"
)

var (
	// ErrUnknownPeer occurs when forgetting a peer that has no boxer
	ErrUnknownPeer = errors.New("unknown peer")
)

// newBoxer is swapped in tests to count derivations.
var newBoxer = nacl.NewBoxer

// Keyring keeps one Boxer per peer public key for a local key pair, so the
// shared key for a peer is derived once no matter how many messages follow.
// It is safe for concurrent use.
type Keyring struct {
	local *nacl.BoxKeyPair
	hmap  *hm.HashMap
}

// entry is inserted before its shared key exists; callers racing on the
// same peer wait on once instead of deriving again.
type entry struct {
	once  sync.Once
	boxer *nacl.Boxer
	err   error
}

// New creates Keyring instance. The key pair is copied.
func New(local *nacl.BoxKeyPair) *Keyring {
	return &Keyring{
		local: local.Clone(),
		hmap:  &hm.HashMap{},
	}
}

// PublicKey returns the local public key
func (k *Keyring) PublicKey() [nacl.PublicKeyBytes]byte {
	return k.local.Pk
}

// Boxer returns the Boxer for peerPk, creating it on first use. Concurrent
// first calls for the same peer share one derivation.
func (k *Keyring) Boxer(peerPk [nacl.PublicKeyBytes]byte) (*nacl.Boxer, error) {
	key := hexutil.BytesToHexString(peerPk[:])
	v, ok := k.hmap.Get(key)
	if !ok {
		v, _ = k.hmap.GetOrInsert(key, &entry{})
	}
	e := v.(*entry)
	e.once.Do(func() {
		e.boxer, e.err = newBoxer(peerPk, k.local.Sk)
		if e.err != nil {
			logger.Sugar.Warn("Could not derive shared key for peer: ", key)
			k.hmap.Del(key)
			return
		}
		logger.Sugar.Debug("Derived shared key for peer: ", key)
	})
	if e.err != nil {
		return nil, fmt.Errorf("keyring: peer %s: %w", key, e.err)
	}
	return e.boxer, nil
}

// Box encrypts plaintext for peerPk
func (k *Keyring) Box(peerPk [nacl.PublicKeyBytes]byte, nonce []byte, plaintext []byte) ([]byte, error) {
	b, err := k.Boxer(peerPk)
	if err != nil {
		return nil, err
	}
	return b.Box(nonce, plaintext)
}

// Unbox decrypts ciphertext from peerPk
func (k *Keyring) Unbox(peerPk [nacl.PublicKeyBytes]byte, nonce []byte, ciphertext []byte) ([]byte, error) {
	b, err := k.Boxer(peerPk)
	if err != nil {
		return nil, err
	}
	return b.Unbox(nonce, ciphertext)
}

// Forget drops the cached Boxer for peerPk
func (k *Keyring) Forget(peerPk [nacl.PublicKeyBytes]byte) error {
	key := hexutil.BytesToHexString(peerPk[:])
	if _, ok := k.hmap.Get(key); !ok {
		return ErrUnknownPeer
	}
	k.hmap.Del(key)
	logger.Sugar.Debug("Forgot peer: ", key)
	return nil
}

// Zero wipes the local secret key and every cached shared key, then empties
// the ring. k must not be used afterwards.
func (k *Keyring) Zero() {
	k.local.Zero()
	var keys []interface{}
	for kv := range k.hmap.Iter() {
		e := kv.Value.(*entry)
		// waits for a derivation still in flight
		e.once.Do(func() {})
		if e.boxer != nil {
			e.boxer.Zero()
		}
		keys = append(keys, kv.Key)
	}
	for _, key := range keys {
		k.hmap.Del(key)
	}
}

// Len returns the number of cached peers
func (k *Keyring) Len() int {
	return k.hmap.Len()
}
