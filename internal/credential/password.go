package credential

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

const (
	argonMemory  uint32 = 64 * 1024 // KiB
	argonTime    uint32 = 3
	argonThreads uint8  = 1
	argonSaltLen        = 16
	argonKeyLen  uint32 = 32

	argonPrefix = "$argon2"
)

var bcryptPrefixes = []string{"$2a$", "$2b$", "$2y$"}

var (
	ErrEmptyPassword   = errors.New("credential: empty password")
	ErrMalformedDigest = errors.New("credential: malformed digest")
)

// PasswordCodec hashes with argon2id and still verifies bcrypt digests from older data.
type PasswordCodec struct{}

func NewPasswordCodec() *PasswordCodec {
	return &PasswordCodec{}
}

// Hash returns a PHC-formatted argon2id digest.
func (PasswordCodec) Hash(plain string) (string, error) {
	if plain == "" {
		return "", ErrEmptyPassword
	}

	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("credential: read salt: %w", err)
	}

	key := argon2.IDKey([]byte(plain), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argonMemory, argonTime, argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify never fails loudly: empty input or an unreadable digest is simply false.
func (PasswordCodec) Verify(plain, digest string) bool {
	if plain == "" || digest == "" {
		return false
	}

	if isBcrypt(digest) {
		return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
	}

	p, salt, key, err := decodeArgon2id(digest)
	if err != nil {
		return false
	}

	other := argon2.IDKey([]byte(plain), salt, p.time, p.memory, p.threads, uint32(len(key)))
	return subtle.ConstantTimeCompare(key, other) == 1
}

// IsHashed recognises values that are already digests.
func (PasswordCodec) IsHashed(value string) bool {
	return strings.HasPrefix(value, argonPrefix) || isBcrypt(value)
}

// EnsureHashed hashes value unless it already is a digest. Saving the same
// record twice must never hash a digest again.
func (c PasswordCodec) EnsureHashed(value string) (string, error) {
	if c.IsHashed(value) {
		return value, nil
	}
	return c.Hash(value)
}

// NeedsRehash is true for bcrypt digests and argon2 digests made with other parameters.
func (PasswordCodec) NeedsRehash(digest string) bool {
	if isBcrypt(digest) {
		return true
	}
	p, _, _, err := decodeArgon2id(digest)
	if err != nil {
		return false
	}
	return p.memory != argonMemory || p.time != argonTime || p.threads != argonThreads
}

type argonParams struct {
	memory  uint32
	time    uint32
	threads uint8
}

func decodeArgon2id(digest string) (argonParams, []byte, []byte, error) {
	// "", "argon2id", "v=19", "m=65536,t=3,p=1", salt, key
	parts := strings.Split(digest, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return argonParams{}, nil, nil, ErrMalformedDigest
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return argonParams{}, nil, nil, ErrMalformedDigest
	}

	var p argonParams
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.memory, &p.time, &p.threads); err != nil {
		return argonParams{}, nil, nil, ErrMalformedDigest
	}
	// never spend more than Hash itself would
	if p.memory == 0 || p.time == 0 || p.threads == 0 ||
		p.memory > argonMemory || p.time > argonTime || p.threads > argonThreads {
		return argonParams{}, nil, nil, ErrMalformedDigest
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(salt) == 0 {
		return argonParams{}, nil, nil, ErrMalformedDigest
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || uint32(len(key)) != argonKeyLen {
		return argonParams{}, nil, nil, ErrMalformedDigest
	}

	return p, salt, key, nil
}

func isBcrypt(s string) bool {
	for _, prefix := range bcryptPrefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}
