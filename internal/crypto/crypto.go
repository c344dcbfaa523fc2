package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/scrypt"
)

// digestLen is the derived key length of the one-way digest.
const digestLen = 64

// OneWay derives irreversible password digests with scrypt. Equal inputs
// always produce equal digests; the plaintext is not recoverable from them.
type OneWay struct {
	salt []byte
	n    int // CPU/memory cost, must be a power of two greater than one
	r    int // block size
	p    int // parallelism
}

func NewOneWay(salt string, n, r, p int) *OneWay {
	return &OneWay{salt: []byte(salt), n: n, r: r, p: p}
}

// Digest returns the hexadecimal scrypt digest of plaintext.
func (o *OneWay) Digest(plaintext string) (string, error) {
	key, err := scrypt.Key([]byte(plaintext), o.salt, o.n, o.r, o.p, digestLen)
	if err != nil {
		return "", fmt.Errorf("failed to derive digest: %w", err)
	}
	return hex.EncodeToString(key), nil
}

// Codec turns identity strings into opaque authenticated tokens with
// AES-256-GCM. Encryption is randomized, so the same plaintext yields a
// different token on every call; decryption fails on any tampering or on a
// foreign key.
type Codec struct {
	key []byte
}

// NewCodec derives the 256-bit AES key from the configured secret.
func NewCodec(secret string) *Codec {
	key := sha256.Sum256([]byte(secret))
	return &Codec{key: key[:]}
}

// Encrypt seals plaintext under a fresh random nonce and returns the
// base64url token carrying nonce and ciphertext.
func (c *Codec) Encrypt(plaintext string) (string, error) {
	aesgcm, err := c.cipher()
	if err != nil {
		return "", err
	}

	nonce := make([]byte, aesgcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed := aesgcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.URLEncoding.EncodeToString(sealed), nil
}

// Decrypt recovers the identity string from a token produced by Encrypt.
func (c *Codec) Decrypt(token string) (string, error) {
	raw, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return "", fmt.Errorf("malformed token: %w", err)
	}

	aesgcm, err := c.cipher()
	if err != nil {
		return "", err
	}
	if len(raw) < aesgcm.NonceSize() {
		return "", fmt.Errorf("malformed token: too short")
	}

	nonce, ciphertext := raw[:aesgcm.NonceSize()], raw[aesgcm.NonceSize():]
	plaintext, err := aesgcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("token failed integrity check: %w", err)
	}
	return string(plaintext), nil
}

func (c *Codec) cipher() (cipher.AEAD, error) {
	block, err := aes.NewCipher(c.key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return aesgcm, nil
}
