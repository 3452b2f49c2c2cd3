package inits

import (
	"fmt"
	"habit-tracker/app/server/config"
	"habit-tracker/app/server/constants"
	"os"
	"strconv"
	"strings"
	"time"
)

// LookupFunc 与 os.LookupEnv 同签名，测试时可以替换
type LookupFunc func(key string) (string, bool)

func Config() (*config.Config, error) {
	return ConfigFrom(os.LookupEnv)
}

func ConfigFrom(lookup LookupFunc) (*config.Config, error) {
	var cfg config.Config

	{
		mode, exist := lookup("MODE")
		cfg.System.IsProd = exist && strings.HasPrefix(strings.ToLower(mode), "p")
	}

	if listen, exist := lookup("LISTEN"); !exist {
		cfg.System.Listen = constants.DefaultListen // 默认监听地址
	} else {
		cfg.System.Listen = listen
	}

	if dbconn, exist := lookup("DB_CONN"); !exist {
		return nil, fmt.Errorf("DB_CONN environment variable not set")
	} else {
		cfg.System.DBConnectionString = dbconn
	}

	// redis 可选，没有的话直接查数据库
	if redisconn, exist := lookup("REDIS_CONN"); exist {
		cfg.System.RedisConnectionString = redisconn
	}

	if sigsk, exist := lookup("SIGNATURE_SECRET_KEY"); !exist || sigsk == "" {
		return nil, fmt.Errorf("SIGNATURE_SECRET_KEY environment variable not set")
	} else {
		cfg.Security.SignatureSecretKey = sigsk
	}

	if lifetimeStr, exist := lookup("TOKEN_LIFETIME_MS"); !exist {
		cfg.Security.TokenLifetime = constants.DefaultTokenLifetime
	} else if lifetimeMs, err := strconv.ParseInt(lifetimeStr, 10, 64); err != nil || lifetimeMs <= 0 {
		return nil, fmt.Errorf("TOKEN_LIFETIME_MS should be a positive integer")
	} else {
		cfg.Security.TokenLifetime = time.Duration(lifetimeMs) * time.Millisecond
	}

	adminEmail, hasEmail := lookup("ADMIN_EMAIL")
	adminPassword, hasPassword := lookup("ADMIN_PASSWORD")
	if hasEmail != hasPassword {
		return nil, fmt.Errorf("ADMIN_EMAIL and ADMIN_PASSWORD must be set together")
	}
	cfg.Security.AdminEmail = adminEmail
	cfg.Security.AdminPassword = adminPassword

	return &cfg, nil
}
