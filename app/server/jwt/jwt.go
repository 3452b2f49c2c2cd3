// Package jwt issues and validates the signed, expiring identity tokens handed
// out at login. Tokens are HS512 JWTs whose subject is the login email.
package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenMalformed        = errors.New("token malformed")
	ErrTokenExpired          = errors.New("token expired")
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
)

func init() {
	// 有效期按毫秒配置，时间戳也保留到毫秒
	jwt.TimePrecision = time.Millisecond
}

type Codec struct {
	key      []byte
	lifetime time.Duration
	now      func() time.Time
}

type Option func(*Codec)

// WithClock 替换校验过期时使用的时钟
func WithClock(now func() time.Time) Option {
	return func(c *Codec) {
		c.now = now
	}
}

func New(key string, lifetime time.Duration, opts ...Option) (*Codec, error) {
	if len(key) == 0 {
		return nil, errors.New("key is empty")
	}
	if lifetime <= 0 {
		return nil, fmt.Errorf("invalid token lifetime: %s", lifetime)
	}

	c := &Codec{
		key:      []byte(key),
		lifetime: lifetime,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func (c *Codec) Lifetime() time.Duration {
	return c.lifetime
}

// Issue 签发令牌，过期时间为 now + lifetime
func (c *Codec) Issue(subject string, now time.Time) (string, error) {
	if subject == "" {
		return "", errors.New("subject is empty")
	}

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.lifetime)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(c.key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// Parse 校验签名与过期时间，失败时返回的错误可以用 errors.Is 区分三类
func (c *Codec) Parse(tokenString string) (*jwt.RegisteredClaims, error) {
	if len(tokenString) == 0 {
		return nil, fmt.Errorf("%w: token string is empty", ErrTokenMalformed)
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return c.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
		// 拒绝末位填充位非零的 base64url
		jwt.WithStrictDecoding(),
	)
	if err != nil {
		return nil, classify(err)
	}

	return claims, nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %v", ErrTokenExpired, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return fmt.Errorf("%w: %v", ErrTokenSignatureInvalid, err)
	default:
		return fmt.Errorf("%w: %v", ErrTokenMalformed, err)
	}
}

// DecodeSubject 取出令牌主体，不关心期望的身份是谁
func (c *Codec) DecodeSubject(tokenString string) (string, error) {
	claims, err := c.Parse(tokenString)
	if err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: missing subject", ErrTokenMalformed)
	}

	return claims.Subject, nil
}

// Validate 签名有效、未过期且主体与 expectedSubject 一致
func (c *Codec) Validate(tokenString string, expectedSubject string) bool {
	claims, err := c.Parse(tokenString)
	if err != nil {
		return false
	}

	return claims.Subject == expectedSubject
}
