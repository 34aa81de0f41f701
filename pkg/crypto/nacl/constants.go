package nacl

import "golang.org/x/crypto/nacl/box"

const (
	// PublicKeyBytes is the size of a curve25519 public key
	PublicKeyBytes = 32
	// SecretKeyBytes is the size of a curve25519 secret key
	SecretKeyBytes = 32
	// SharedKeyBytes is the size of the precomputed (beforenm) key
	SharedKeyBytes = 32
	// NonceBytes is the size of a xsalsa20 nonce
	NonceBytes = 24
)

const (
	// ZeroPadBytes is the zero prefix crypto_box expects on plaintext
	ZeroPadBytes = 32
	// BoxZeroPadBytes is the zero prefix crypto_box leaves on ciphertext
	BoxZeroPadBytes = 16
	// Overhead is the number of bytes a box adds to its plaintext
	Overhead = ZeroPadBytes - BoxZeroPadBytes
	// SealBytes is the overhead of an anonymous sealed box (ephemeral pk + tag)
	SealBytes = box.AnonymousOverhead
)

const (
	// Sha256Bytes is the size of a SHA-256 digest
	Sha256Bytes = 32
	// Sha512Bytes is the size of a SHA-512 digest
	Sha512Bytes = 64
	// Blake2bBytes is the default and maximum BLAKE2b digest size
	Blake2bBytes = 64
	// Blake2bKeyBytesMax is the largest key BLAKE2b accepts in keyed mode
	Blake2bKeyBytesMax = 64
)

const (
	// AuthKeyBytes is the key size of every authenticator
	AuthKeyBytes = 32
	// HmacSha256Bytes is the HMAC-SHA-256 tag size
	HmacSha256Bytes = 32
	// HmacSha512Bytes is the HMAC-SHA-512 tag size
	HmacSha512Bytes = 64
	// HmacSha512256Bytes is the truncated HMAC-SHA-512 tag size
	HmacSha512256Bytes = 32
	// OneTimeAuthBytes is the poly1305 tag size
	OneTimeAuthBytes = 16
)

const (
	// SigningKeyBytes is the size of an ed25519 seed
	SigningKeyBytes = 32
	// VerifyKeyBytes is the size of an ed25519 public key
	VerifyKeyBytes = 32
	// SignatureBytes is the size of an ed25519 signature
	SignatureBytes = 64
)

const (
	// AEADKeyBytes is the key size of both chacha20poly1305 constructions
	AEADKeyBytes = 32
	// AEADOverhead is the tag appended by both constructions
	AEADOverhead = 16
	// ChaCha20Poly1305NonceBytes is the IETF (RFC 7539) nonce size
	ChaCha20Poly1305NonceBytes = 12
	// XChaCha20Poly1305NonceBytes is the extended nonce size
	XChaCha20Poly1305NonceBytes = 24
)

const (
	// ScryptSaltBytes is the salt size for scrypt
	ScryptSaltBytes = 32
	// ScryptOpsLimitInteractive is a work factor suited to interactive logins
	ScryptOpsLimitInteractive = 524288
	// ScryptMemLimitInteractive is the matching memory limit (16 MiB)
	ScryptMemLimitInteractive = 16777216

	// Argon2SaltBytes is the salt size for argon2
	Argon2SaltBytes = 16
	// Argon2OpsLimitInteractive is the argon2id pass count for interactive logins
	Argon2OpsLimitInteractive = 2
	// Argon2MemLimitInteractive is the matching memory limit (64 MiB)
	Argon2MemLimitInteractive = 67108864
	// Argon2MemLimitMin is the smallest accepted memory limit
	Argon2MemLimitMin = 8192

	// PasswordHashBytesMin is the shortest digest a password hash produces
	PasswordHashBytesMin = 16
)
