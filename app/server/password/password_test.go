package password

import (
	"testing"

	"github.com/alexedwards/argon2id"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cheap() *Hasher {
	return New(&argon2id.Params{
		Memory:      1024,
		Iterations:  1,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   32,
	})
}

func TestHashAndVerify(t *testing.T) {
	h := cheap()

	hashed, err := h.Hash("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hashed)
	assert.Contains(t, hashed, "$argon2id$")

	assert.True(t, h.Verify("correct horse", hashed))
	assert.False(t, h.Verify("battery staple", hashed))
}

func TestHash_IsSalted(t *testing.T) {
	h := cheap()

	a, err := h.Hash("same")
	require.NoError(t, err)
	b, err := h.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.True(t, h.Verify("same", a))
	assert.True(t, h.Verify("same", b))
}

func TestVerify_MalformedHash(t *testing.T) {
	h := cheap()

	for _, hashed := range []string{
		"",
		"plain-text",
		"$argon2id$v=19$garbage",
		"$argon2id$v=19$m=1024,t=1,p=1$!!!$!!!",
	} {
		t.Run(hashed, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.False(t, h.Verify("secret", hashed))
			})
		})
	}
}

func TestNew_NilParamsFallsBackToDefault(t *testing.T) {
	h := New(nil)
	assert.Equal(t, argon2id.DefaultParams, h.params)
}
