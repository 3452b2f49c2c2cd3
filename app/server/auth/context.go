package auth

import (
	"context"
	"habit-tracker/app/server/models"
)

type identityKey struct{}

// WithIdentity 把解析出的身份挂到单个请求的 context 上
func WithIdentity(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, identityKey{}, user)
}

// FromContext 未认证的请求返回 false
func FromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(identityKey{}).(*models.User)
	if !ok || user == nil {
		return nil, false
	}

	return user, true
}
