package constants

import "time"

const (
	DefaultListen        = ":8080"
	DefaultTokenLifetime = 36000000 * time.Millisecond // 10 小时

	AuthHeader       = "Authorization"
	AuthBearerPrefix = "bearer"
)
