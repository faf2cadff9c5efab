package service

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

type PasswordHasherInterface interface {
	Hash(password string) (string, error)
	Verify(password, digest string) (bool, error)
}

var _ PasswordHasherInterface = (*Argon2Hasher)(nil)

var ErrInvalidDigest = errors.New("invalid password digest")

// maxArgon2Memory bounds the memory a stored digest may ask Verify for.
const maxArgon2Memory = 1024 * 1024 // KiB

// Argon2Hasher produces argon2id digests in the PHC string format, each with
// its own random salt.
type Argon2Hasher struct {
	Memory      uint32 // KiB
	Iterations  uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// NewArgon2Hasher uses the OWASP baseline parameters for argon2id.
func NewArgon2Hasher() *Argon2Hasher {
	return &Argon2Hasher{
		Memory:      64 * 1024,
		Iterations:  3,
		Parallelism: 2,
		SaltLength:  16,
		KeyLength:   32,
	}
}

func (a *Argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, a.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	return a.HashWithSalt(password, salt), nil
}

// HashWithSalt is deterministic for a given password and salt.
func (a *Argon2Hasher) HashWithSalt(password string, salt []byte) string {
	key := argon2.IDKey([]byte(password), salt, a.Iterations, a.Memory, a.Parallelism, a.KeyLength)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		a.Memory,
		a.Iterations,
		a.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key))
}

// Verify recomputes the digest with the parameters and salt encoded in it.
func (a *Argon2Hasher) Verify(password, digest string) (bool, error) {
	params, salt, key, err := decodeArgon2Digest(digest)
	if err != nil {
		return false, err
	}

	computed := argon2.IDKey([]byte(password), salt, params.Iterations, params.Memory, params.Parallelism, params.KeyLength)
	return subtle.ConstantTimeCompare(key, computed) == 1, nil
}

func decodeArgon2Digest(digest string) (*Argon2Hasher, []byte, []byte, error) {
	parts := strings.Split(digest, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return nil, nil, nil, ErrInvalidDigest
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: version: %v", ErrInvalidDigest, err)
	}
	if version != argon2.Version {
		return nil, nil, nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidDigest, version)
	}

	params := &Argon2Hasher{}
	var p uint32
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.Memory, &params.Iterations, &p); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: parameters: %v", ErrInvalidDigest, err)
	}
	switch {
	case params.Memory == 0 || params.Memory > maxArgon2Memory:
		return nil, nil, nil, fmt.Errorf("%w: memory %d KiB out of range", ErrInvalidDigest, params.Memory)
	case params.Iterations == 0:
		return nil, nil, nil, fmt.Errorf("%w: iterations must be positive", ErrInvalidDigest)
	case p == 0 || p > 255:
		return nil, nil, nil, fmt.Errorf("%w: parallelism %d out of range", ErrInvalidDigest, p)
	}
	params.Parallelism = uint8(p)

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: salt: %v", ErrInvalidDigest, err)
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: key: %v", ErrInvalidDigest, err)
	}
	if len(salt) == 0 || len(key) == 0 {
		return nil, nil, nil, fmt.Errorf("%w: empty salt or key", ErrInvalidDigest)
	}
	params.SaltLength = uint32(len(salt))
	params.KeyLength = uint32(len(key))

	return params, salt, key, nil
}
