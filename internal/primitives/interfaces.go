package primitives

import "io"

//go:generate mockgen -source=interfaces.go -destination=../mock/primitives_mock.go -package=mock

// BlockCipher is a length-preserving stream-like symmetric cipher
// (a block cipher in counter mode). Encrypting and decrypting are the same
// keystream operation, there is no padding and no authentication tag.
type BlockCipher interface {
	// KeySize is the key length in bytes.
	KeySize() int
	// NonceSize is the nonce (IV) length in bytes.
	NonceSize() int
	// Encrypt returns data XORed with the keystream for key and nonce.
	// Fails with ErrPrimitive when key or nonce have the wrong length.
	Encrypt(key, nonce, data []byte) ([]byte, error)
	// Decrypt is the inverse of Encrypt.
	Decrypt(key, nonce, ciphertext []byte) ([]byte, error)
	// Params returns the configuration this cipher was built from.
	Params() Params
}

// KeyStretcher turns a low-entropy password into key bytes. It is
// deterministic and deliberately expensive; cost tunes the work factor.
type KeyStretcher interface {
	Stretch(password, salt []byte, cost int) ([]byte, error)
	Params() Params
}

// KeyDeriver is a keyed hash over an ordered list of byte strings.
//
// Derive always returns exactly outLen bytes. Distinct part lists give
// unrelated outputs: parts are length-prefixed before hashing so
// ["ab","c"] and ["a","bc"] never collide.
type KeyDeriver interface {
	Derive(parts [][]byte, salt []byte, outLen int) ([]byte, error)
	Params() Params
}

// Envelope is a public-key sealing scheme. Unseal fails with
// ErrAuthenticationFailed when sealed was not produced for the key pair of
// private, or has been corrupted.
type Envelope interface {
	KeyGen(rand io.Reader) (public, private []byte, err error)
	Seal(rand io.Reader, public, message []byte) ([]byte, error)
	Unseal(private, sealed []byte) ([]byte, error)
	Params() Params
}
