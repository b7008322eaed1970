package security

import (
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// ArgonHasher реализует service.Hasher с использованием Argon2.
// Хэш сохраняется в стандартном формате $argon2id$, поэтому параметры
// хэширования можно менять без перевыпуска сохраненных хэшей.
type ArgonHasher struct {
	cfg *HashConfig
}

type HashConfig struct {
	Time    uint32
	Memory  uint32
	Threads uint8
	KeyLen  uint32
}

func NewArgonHasher(cfg *HashConfig) *ArgonHasher {
	return &ArgonHasher{cfg: cfg}
}

func DefaultHashConfig() *HashConfig {
	return &HashConfig{
		Time:    1,
		Memory:  64 * 1024,
		Threads: 4,
		KeyLen:  32,
	}
}

func (h *ArgonHasher) Hash(str string) (string, error) {
	salt, err := RandomBytes(16)
	if err != nil {
		return "", err
	}

	hash := argon2.IDKey([]byte(str), salt, h.cfg.Time, h.cfg.Memory, h.cfg.Threads, h.cfg.KeyLen)

	return fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.cfg.Memory,
		h.cfg.Time,
		h.cfg.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

// Params возвращает параметры, с которыми был вычислен переданный хэш.
func Params(hash string) (*HashConfig, error) {
	parts := strings.Split(hash, "$")
	if len(parts) < 5 {
		return nil, fmt.Errorf("malformed hash %q", hash)
	}

	c := &HashConfig{}
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &c.Memory, &c.Time, &c.Threads); err != nil {
		return nil, err
	}

	return c, nil
}
