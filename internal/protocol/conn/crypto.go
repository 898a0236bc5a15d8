package conn

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha1"
	"crypto/x509"
	"fmt"
	"math/big"
)

// GenerateKeyPair creates the server's RSA key pair once at boot. It is
// shared read-only across every connection goroutine via a plain pointer —
// it is never reassigned after main constructs it.
func GenerateKeyPair(bits int) (*rsa.PrivateKey, error) {
	key, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return nil, fmt.Errorf("generate rsa key pair: %w", err)
	}
	return key, nil
}

// PublicKeyDER returns the DER encoding of key's public half, the form sent
// in EncryptionRequest.
func PublicKeyDER(key *rsa.PrivateKey) ([]byte, error) {
	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("marshal public key: %w", err)
	}
	return der, nil
}

// decryptPKCS1v15 decrypts data with key using PKCS#1 v1.5 padding, the
// scheme the client's EncryptionResponse uses for both the shared secret
// and the verify token.
func decryptPKCS1v15(key *rsa.PrivateKey, data []byte) ([]byte, error) {
	plain, err := rsa.DecryptPKCS1v15(rand.Reader, key, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCrypto, err)
	}
	return plain, nil
}

// sessionHash computes the session hash used by the Mojang session service:
// the hex string of the signed big-endian interpretation of
// SHA1(serverID || sharedSecret || publicKeyDER). Unlike a normal hex digest
// this can carry a leading "-" when the top bit of the hash is set.
func sessionHash(serverID string, sharedSecret, publicKeyDER []byte) string {
	h := sha1.New()
	h.Write([]byte(serverID))
	h.Write(sharedSecret)
	h.Write(publicKeyDER)
	sum := h.Sum(nil)

	n := new(big.Int).SetBytes(sum)
	// Interpret the 20-byte digest as signed two's complement: if the high
	// bit is set, the value is negative.
	if sum[0]&0x80 != 0 {
		n.Sub(n, new(big.Int).Lsh(big.NewInt(1), 160))
	}
	if n.Sign() < 0 {
		return "-" + new(big.Int).Neg(n).Text(16)
	}
	return n.Text(16)
}

// cfb8Stream is a Minecraft-specific 8-bit-segment CFB cipher. Go's stdlib
// cipher.NewCFBEncrypter/NewCFBDecrypter implement full-block-width CFB, not
// the 8-bit feedback register the protocol requires, so the feedback shift
// register is implemented directly over the AES block primitive.
type cfb8Stream struct {
	block     cipher.Block
	feedback  []byte
	encrypt   bool
}

func newCFB8(block cipher.Block, iv []byte, encrypt bool) *cfb8Stream {
	fb := make([]byte, len(iv))
	copy(fb, iv)
	return &cfb8Stream{block: block, feedback: fb, encrypt: encrypt}
}

// XORKeyStream encrypts or decrypts src into dst one byte at a time, per the
// CFB-8 feedback scheme: encrypt the feedback register, XOR its first byte
// with the plaintext/ciphertext byte, then shift that byte into the
// register for the next step.
func (s *cfb8Stream) XORKeyStream(dst, src []byte) {
	blockSize := s.block.BlockSize()
	out := make([]byte, blockSize)
	for i := range src {
		s.block.Encrypt(out, s.feedback)
		var result byte
		if s.encrypt {
			result = src[i] ^ out[0]
			s.shift(result)
		} else {
			result = src[i] ^ out[0]
			s.shift(src[i])
		}
		dst[i] = result
	}
}

func (s *cfb8Stream) shift(in byte) {
	copy(s.feedback, s.feedback[1:])
	s.feedback[len(s.feedback)-1] = in
}

// newAESCFB8Pair builds the encrypt/decrypt stream pair used on both
// directions of an online-mode connection once LoginSuccess has been sent,
// keyed by the decrypted 16-byte shared secret (also used as the IV, per
// the protocol's convention of secret==iv).
func newAESCFB8Pair(sharedSecret []byte) (encrypt, decrypt cipher.Stream, err error) {
	block, err := aes.NewCipher(sharedSecret)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrCrypto, err)
	}
	return newCFB8(block, sharedSecret, true), newCFB8(block, sharedSecret, false), nil
}
