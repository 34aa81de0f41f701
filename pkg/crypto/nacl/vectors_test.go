package nacl

import (
	"encoding/hex"
	"errors"
	"io"
)

// Curve25519 and box vectors from the NaCl distribution.
const (
	alicePrivateHex = "77076d0a7318a57d3c16c17251b26645df4c2f87ebc0992ab177fba51db92c2a"
	alicePublicHex  = "8520f0098930a754748b7ddcb43ef75a0dbf3a0d26381af4eba4a98eaa9b4e6a"
	bobPrivateHex   = "5dab087e624a8a4b79e17f8b83800ee66f3bb1292618b6fd1c2f8b27ff88e0eb"
	bobPublicHex    = "de9edb7d7b7dc1b4d35b61c2ece435373f8343c85b78674dadfc7e146f882b4f"
	aliceMultBobHex = "4a5d9d5ba4ce2de1728e3bf480350f25e07e21c947d19e3376f09b3c1e161742"

	sharedKeyHex  = "1b27556473e985d462cd51197a9a46c76009549eac6474f206c4ee0844f68389"
	boxNonceHex   = "69696ee955b62b73cd62bda875fc73d68219e0036b7a0b37"
	boxMessageHex = "be075fc53c81f2d5cf141316ebeb0c7b5228c52a4c62cbd44b66849b64244ffc" +
		"e5ecbaaf33bd751a1ac728d45e6c61296cdc3c01233561f41db66cce314adb31" +
		"0e3be8250c46f06dceea3a7fa1348057e2f6556ad6b1318a024a838f21af1fde" +
		"048977eb48f59ffd4924ca1c60902e52f0a089bc76897040e082f93776384864" +
		"5e0705"
	boxCiphertextHex = "f3ffc7703f9400e52a7dfb4b3d3305d98e993b9f48681273c29650ba32fc76ce" +
		"48332ea7164d96a4476fb8c531a1186ac0dfc17c98dce87b4da7f011ec48c972" +
		"71d2c20f9b928fe2270d6fb863d51738b48eeee314a7cc8ab932164548e526ae" +
		"90224368517acfeabd6bb3732bc0e9da99832b61ca01b6de56244a9e88d5f9b3" +
		"7973f622a43d14a6599b1f654cb45a74e355a5"
)

// Hash vectors.
const (
	sha256MessageHex = "6162636462636465636465666465666765666768666768696768696a68696a6b" +
		"696a6b6c6a6b6c6d6b6c6d6e6c6d6e6f6d6e6f706e6f7071"
	sha256DigestHex = "248d6a61d20638b8e5c026930c3e6039a33ce45964ff2167f6ecedd419db06c1"
	sha256EmptyHex  = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"

	sha512Message   = "The quick brown fox jumps over the lazy dog."
	sha512DigestHex = "91ea1245f20d46ae9a037a989f54f1f790f0a47607eeb8a14d12890cea77a1bb" +
		"c6c7ed9cf205e67b7f2b8fd4c7dfd3a7a8617e45f3c463d481c7e586c39ac1ed"
	sha512EmptyHex = "cf83e1357eefb8bdf1542850d66d8007d620e4050b5715dc83f4a921d36ce9ce" +
		"47d0d13c5d85f2b0ff8318d2877eec2f63b931bd47417a81a538327af927da3e"

	blake2bMessage   = "The quick brown fox jumps over the lazy dog"
	blake2bDigestHex = "a8add4bdddfd93e4877d2746e62817b116364a1fa7bc148d95090bc7333b3673" +
		"f82401cf7aa2e4cb1ecd90296e3f14cb5413f8ed77be73045b13914cdcd6a918"
	blake2bEmptyHex = "786a02f742015903c6c6fd852552d272912f4740e15847618a86e217f71f5419" +
		"d25e1031afee585313896444934eb04b903a685b1448b755d56f701afe9be2ce"
	blake2bKeyedDigestHex = "142709d62e28fcccd0af97fad0f8465b971e82201dc51070faa0372aa43e9248" +
		"4be1c1e73ba10906d5d1853db6a4106e0a7bf9800d373d6dee2d46d62ef2a461"
)

// Authenticator vectors: NaCl onetimeauth, HMAC tags under the same key.
const (
	authKeyHex     = "eea6a7251c1e72916d11c2cb214d3c252539121d8e234e652d651fa4c8cff880"
	authMessageHex = "8e993b9f48681273c29650ba32fc76ce48332ea7164d96a4476fb8c531a1186a" +
		"c0dfc17c98dce87b4da7f011ec48c97271d2c20f9b928fe2270d6fb863d51738" +
		"b48eeee314a7cc8ab932164548e526ae90224368517acfeabd6bb3732bc0e9da" +
		"99832b61ca01b6de56244a9e88d5f9b37973f622a43d14a6599b1f654cb45a74" +
		"e355a5"
	authOneTimeHex    = "f3ffc7703f9400e52a7dfb4b3d3305d9"
	authHmacSha256Hex = "7f7b9b707e8790ca8620ff94df5e6533ddc8e994060ce310c9d7de04d44aabc3"
	authHmacSha512Hex = "b2a31b8d4e01afcab2ee545b5caf4e3d212a99d7b3a116a97cec8e83c32e107d" +
		"270e3921f69016c267a63ab4b226449a0dee0dc7dcb897a9bce9d27d788f8e8d"
	authHmacSha512256Hex = "b2a31b8d4e01afcab2ee545b5caf4e3d212a99d7b3a116a97cec8e83c32e107d"
)

// Ed25519 vector from ed25519.cr.yp.to/python/sign.input.
const (
	signPrivateHex = "b18e1d0045995ec3d010c387ccfeb984d783af8fbb0f40fa7db126d889f6dadd"
	signPublicHex  = "77f48b59caeda77751ed138b0ec667ff50f8768c25d48309a8f386a2bad187fb"
	signMessageHex = "916c7d1d268fc0e77c1bef238432573c39be577bbea0998936add2b50a653171" +
		"ce18a542b0b7f96c1691a3be6031522894a8634183eda38798a0c5d5d79fbd01" +
		"dd04a8646d71873b77b221998a81922d8105f892316369d5224c9983372d2313" +
		"c6b1f4556ea26ba49d46e8b561e0fc76633ac9766e68e21fba7edca93c4c7460" +
		"376d7f3ac22ff372c18f613f2ae2e856af40"
	signSignatureHex = "6bd710a368c1249923fc7a1610747403040f0cc30815a00f9ff548a896bbda0b" +
		"4eb2ca19ebcf917f0f34200a9edbad3901b64ab09cc5ef7b9bcc3c40c0ff7509"
)

// AEAD vectors: RFC 7539 section 2.8.2 and draft-irtf-cfrg-xchacha A.3.1.
const (
	aeadKeyHex     = "808182838485868788898a8b8c8d8e8f909192939495969798999a9b9c9d9e9f"
	aeadMessageHex = "4c616469657320616e642047656e746c656d656e206f662074686520636c6173" +
		"73206f66202739393a204966204920636f756c64206f6666657220796f75206f" +
		"6e6c79206f6e652074697020666f7220746865206675747572652c2073756e73" +
		"637265656e20776f756c642062652069742e"
	aeadAdHex = "50515253c0c1c2c3c4c5c6c7"

	aeadIETFNonceHex      = "070000004041424344454647"
	aeadIETFCiphertextHex = "d31a8d34648e60db7b86afbc53ef7ec2a4aded51296e08fea9e2b5a736ee62d6" +
		"3dbea45e8ca9671282fafb69da92728b1a71de0a9e060b2905d6a5b67ecd3b36" +
		"92ddbd7f2d778b8c9803aee328091b58fab324e4fad675945585808b4831d7bc" +
		"3ff4def08e4b7a9de576d26586cec64b61161ae10b594f09e26a7e902ecbd060" +
		"0691"

	aeadXNonceHex      = "404142434445464748494a4b4c4d4e4f5051525354555657"
	aeadXCiphertextHex = "bd6d179d3e83d43b9576579493c0e939572a1700252bfaccbed2902c21396cbb" +
		"731c7f1b0b4aa6440bf3a82f4eda7e39ae64c6708c54c216cb96b72e1213b452" +
		"2f8c9ba40db5d945b11b69b982c1bb9e3f3fac2bc369488f76b2383565d3fff9" +
		"21f9664c97637da9768812f615c68b13b52ec0875924c1c7987947deafd8780a" +
		"cf49"

	// crypto_secretbox_xchacha20poly1305 of the AEAD message under the
	// xchacha key and nonce above
	xchachaBoxCiphertextHex = "691b93bf04df91909bc26a260017dcdaedaa43513e7312fe13b832373cb8fc49" +
		"34cc4589437c34c9c45070528a3c7429822c1c927bd7cd63c1323eb5d6e7bd36" +
		"5d321e0a252bfa8aafc8d5752d202da76e50695d4403fa5d45ba916908fc2c7a" +
		"b579cf34ca4ed005dc81bb770e13fa4e229287e10cfbcb0ab01e7db986cbe9d7" +
		"3f79"
)

// Password hash vectors. scrypt is the draft-josefsson-scrypt-kdf-01 case
// used by libsodium; argon2 digests use one lane, memlimit 1 MiB.
const (
	scryptPasswordHex = "4a857e2ee8aa9b6056f2424e84d24a72473378906ee04a46cb05311502d5250b" +
		"82ad86b83c8f20a23dbb74f6da60b0b6ecffd67134d45946ac8ebfb3064294bc" +
		"097d43ced68642bfb8bbbdd0f50b30118f5e"
	scryptSaltHex   = "39d82eef32010b8b79cc5ba88ed539fbaba741100f2edbeca7cc171ffeabf258"
	scryptOpsLimit  = 758010
	scryptMemLimit  = 5432947
	scryptDigestHex = "bcc5c2fd785e4781d1201ed43d84925537e2a540d3de55f5812f29e9dd0a4a00" +
		"451a5c8ddbb4862c03d45c75bf91b7fb49265feb667ad5c899fdbf2ca19eac67"

	argon2Password    = "correct horse battery staple"
	argon2MemLimit    = 1 << 20
	argon2idDigestHex = "58782fc96f06a6d7fcec4728099f6a788ee98a04f4cd8fa0a27af6db8b7a46b8"
	argon2iDigestHex  = "8abf84d8d57b58c7d49ace91138c6dc64ad6b64f0d0d226faee41a63fc20216e"
)

func vector(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

func vector32(s string) [32]byte {
	var arr [32]byte
	copy(arr[:], vector(s))
	return arr
}

// sequence returns the bytes 0, 1, ..., n-1.
func sequence(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

type failingReader struct{}

var errNoEntropy = errors.New("entropy source unavailable")

func (failingReader) Read(p []byte) (int, error) {
	return 0, errNoEntropy
}

// withRandReader swaps the entropy source until the returned func runs.
func withRandReader(r io.Reader) func() {
	prev := randReader
	randReader = r
	return func() { randReader = prev }
}
