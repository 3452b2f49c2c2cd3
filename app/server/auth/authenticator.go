// Package auth verifies credentials, issues tokens at login and resolves the
// identity behind a bearer token on every request.
package auth

import (
	"context"
	"errors"
	"fmt"
	"habit-tracker/app/server/jwt"
	"habit-tracker/app/server/models"
	"habit-tracker/app/server/password"
	"habit-tracker/app/server/repository"
	"time"
)

type CredentialStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *models.User) error
}

type Authenticator struct {
	store  CredentialStore
	hasher *password.Hasher
	codec  *jwt.Codec
	now    func() time.Time
}

func NewAuthenticator(store CredentialStore, hasher *password.Hasher, codec *jwt.Codec) *Authenticator {
	return &Authenticator{
		store:  store,
		hasher: hasher,
		codec:  codec,
		now:    time.Now,
	}
}

// Login 成功时返回签发的令牌，失败时返回 ErrInvalidCredentials / ErrDisabled / ErrLocked 或存储错误
func (a *Authenticator) Login(ctx context.Context, principal string, secret string) (string, error) {
	user, err := a.store.FindByEmail(ctx, principal)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to find identity: %w", err)
	}

	// 账户状态先于密码检查
	if !user.Enabled {
		return "", ErrDisabled
	}
	if user.AccountLocked {
		return "", ErrLocked
	}

	if !a.hasher.Verify(secret, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	token, err := a.codec.Issue(principal, a.now())
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	return token, nil
}

// Register 写入前对密码做 hash ，原始密码不会到达存储层
func (a *Authenticator) Register(ctx context.Context, user *models.User, secret string) error {
	if exists, err := a.store.ExistsByEmail(ctx, user.Email); err != nil {
		return fmt.Errorf("failed to check identity: %w", err)
	} else if exists {
		return newAlreadyExists(user.Email)
	}

	hashed, err := a.hasher.Hash(secret)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = hashed

	if err = a.store.Create(ctx, user); err != nil {
		// 并发注册时预检查可能都通过，由唯一约束兜底
		if errors.Is(err, repository.ErrAlreadyExists) {
			return newAlreadyExists(user.Email)
		}
		return fmt.Errorf("failed to save identity: %w", err)
	}

	return nil
}
