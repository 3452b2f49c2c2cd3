package auth

import (
	"context"
	"errors"
	"habit-tracker/app/server/constants"
	"habit-tracker/app/server/jwt"
	"habit-tracker/app/server/models"
	"habit-tracker/app/server/repository"
	"strings"

	"go.uber.org/zap"
)

type IdentityLookup interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// Resolver 从 Authorization 头解析请求身份，任何失败都降级为匿名
type Resolver struct {
	lookup IdentityLookup
	codec  *jwt.Codec
	l      *zap.Logger
}

func NewResolver(lookup IdentityLookup, codec *jwt.Codec, l *zap.Logger) *Resolver {
	return &Resolver{
		lookup: lookup,
		codec:  codec,
		l:      l,
	}
}

// BearerToken 提取 "Bearer <token>" 中的令牌
func BearerToken(authHeader string) (string, bool) {
	if authHeader == "" {
		return "", false
	}

	splits := strings.Split(authHeader, " ")
	if len(splits) != 2 {
		return "", false
	}

	if strings.ToLower(splits[0]) != constants.AuthBearerPrefix || splits[1] == "" {
		return "", false
	}

	return splits[1], true
}

func (r *Resolver) Resolve(ctx context.Context, authHeader string) (*models.User, bool) {
	if authHeader == "" {
		// 匿名请求
		return nil, false
	}

	token, ok := BearerToken(authHeader)
	if !ok {
		r.l.Debug("unsupported authorization header")
		return nil, false
	}

	subject, err := r.codec.DecodeSubject(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) || errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			r.l.Warn("rejected token", zap.Error(err))
		} else {
			r.l.Debug("failed to decode token", zap.Error(err))
		}
		return nil, false
	}

	user, err := r.lookup.FindByEmail(ctx, subject)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			r.l.Debug("token subject has no identity", zap.String("subject", subject))
		} else {
			r.l.Warn("failed to look up token subject", zap.String("subject", subject), zap.Error(err))
		}
		return nil, false
	}

	if !r.codec.Validate(token, user.Email) {
		r.l.Warn("token does not match identity", zap.String("subject", subject))
		return nil, false
	}

	if !user.CanAuthenticate() {
		r.l.Debug("identity is disabled or locked", zap.Uint("id", user.ID))
		return nil, false
	}

	return user, true
}

// Attach 解析成功时返回带身份的 context ，否则原样返回
func (r *Resolver) Attach(ctx context.Context, authHeader string) context.Context {
	if user, ok := r.Resolve(ctx, authHeader); ok {
		return WithIdentity(ctx, user)
	}

	return ctx
}
