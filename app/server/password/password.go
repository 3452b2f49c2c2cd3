// Package password wraps argon2id for one-way credential hashing.
package password

import (
	"fmt"

	"github.com/alexedwards/argon2id"
)

type Hasher struct {
	params *argon2id.Params
}

func New(params *argon2id.Params) *Hasher {
	if params == nil {
		params = argon2id.DefaultParams
	}

	return &Hasher{params: params}
}

func Default() *Hasher {
	return New(argon2id.DefaultParams)
}

// Hash 每次调用都会生成新的随机盐
func (h *Hasher) Hash(secret string) (string, error) {
	hashed, err := argon2id.CreateHash(secret, h.params)
	if err != nil {
		return "", fmt.Errorf("create hash: %w", err)
	}

	return hashed, nil
}

// Verify 格式错误的 hash 一律视为不匹配
func (h *Hasher) Verify(secret, hashed string) bool {
	match, _, err := argon2id.CheckHash(secret, hashed)
	if err != nil {
		return false
	}

	return match
}
