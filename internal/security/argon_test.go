package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgonHasher(t *testing.T) {
	var (
		password = "password"
		hasher   = NewArgonHasher(DefaultHashConfig())
	)

	hash, err := hasher.Hash(password)
	require.NoError(t, err, "создание хэша")
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"), "хэш в стандартном формате")

	otherHash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEqual(t, hash, otherHash, "случайная соль для каждого хэша")

	cfg, err := Params(hash)
	require.NoError(t, err, "параметры хэширования сохранены в хэше")
	assert.Equal(t, DefaultHashConfig().Memory, cfg.Memory)
	assert.Equal(t, DefaultHashConfig().Time, cfg.Time)
	assert.Equal(t, DefaultHashConfig().Threads, cfg.Threads)
}

func TestParamsMalformedHash(t *testing.T) {
	_, err := Params("not-a-hash")
	assert.Error(t, err, "некорректный формат хэша")
}
