package nacl

import (
	"math"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/scrypt"
)

// Scrypt derives size bytes from password with scrypt. opsLimit and memLimit
// follow crypto_pwhash_scryptsalsa208sha256: they are turned into N, r and p
// the way libsodium does, so digests match it.
func Scrypt(password []byte, salt []byte, opsLimit uint64, memLimit uint64, size int) ([]byte, error) {
	if len(salt) != ScryptSaltBytes {
		return nil, newLengthError("salt", ScryptSaltBytes)
	}
	if size < PasswordHashBytesMin {
		return nil, NewArgumentError("digest size must be at least 16 bytes")
	}
	logN, r, p := scryptParams(opsLimit, memLimit)
	digest, err := scrypt.Key(password, salt, 1<<logN, r, p, size)
	if err != nil {
		return nil, ErrPasswordHash.wrap(err)
	}
	return digest, nil
}

func scryptParams(opsLimit uint64, memLimit uint64) (logN uint, r int, p int) {
	if opsLimit < 32768 {
		opsLimit = 32768
	}
	r = 8
	if opsLimit < memLimit/32 {
		return scryptLogN(opsLimit / (uint64(r) * 4)), r, 1
	}
	logN = scryptLogN(memLimit / (uint64(r) * 128))
	maxrp := (opsLimit / 4) / (uint64(1) << logN)
	if maxrp > 0x3fffffff {
		maxrp = 0x3fffffff
	}
	return logN, r, int(maxrp) / r
}

func scryptLogN(maxN uint64) uint {
	logN := uint(1)
	for ; logN < 63; logN++ {
		if uint64(1)<<logN > maxN/2 {
			break
		}
	}
	return logN
}

// Argon2id derives size bytes from password with argon2id v1.3 on a single
// lane. opsLimit is the number of passes and memLimit is in bytes, as in
// crypto_pwhash.
func Argon2id(password []byte, salt []byte, opsLimit uint64, memLimit uint64, size int) ([]byte, error) {
	t, m, err := argon2Params(salt, opsLimit, 1, memLimit, size)
	if err != nil {
		return nil, err
	}
	return argon2.IDKey(password, salt, t, m, 1, uint32(size)), nil
}

// Argon2i is Argon2id with data-independent addressing. It needs at least
// three passes.
func Argon2i(password []byte, salt []byte, opsLimit uint64, memLimit uint64, size int) ([]byte, error) {
	t, m, err := argon2Params(salt, opsLimit, 3, memLimit, size)
	if err != nil {
		return nil, err
	}
	return argon2.Key(password, salt, t, m, 1, uint32(size)), nil
}

func argon2Params(salt []byte, opsLimit uint64, minOps uint64, memLimit uint64, size int) (uint32, uint32, error) {
	if len(salt) != Argon2SaltBytes {
		return 0, 0, newLengthError("salt", Argon2SaltBytes)
	}
	if size < PasswordHashBytesMin || uint64(size) > math.MaxUint32 {
		return 0, 0, NewArgumentError("digest size must be at least 16 bytes")
	}
	if opsLimit < minOps || opsLimit > math.MaxUint32 {
		return 0, 0, ErrPasswordHash.wrap(NewArgumentError("opslimit out of range"))
	}
	if memLimit < Argon2MemLimitMin || memLimit/1024 > math.MaxUint32 {
		return 0, 0, ErrPasswordHash.wrap(NewArgumentError("memlimit out of range"))
	}
	return uint32(opsLimit), uint32(memLimit / 1024), nil
}
