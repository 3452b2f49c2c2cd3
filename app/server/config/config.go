package config

import "time"

type Config struct {
	System struct {
		IsProd                bool   // 是否为生产环境
		Listen                string // 监听地址
		DBConnectionString    string // Postgres 数据库的连接字符串
		RedisConnectionString string // Redis 连接字符串，为空时不启用身份缓存
	}
	Security struct {
		SignatureSecretKey string        // 签名密钥，用于签发 JWT ，更新会导致旧有会话失效
		TokenLifetime      time.Duration // 令牌有效期（配置单位为毫秒）
		AdminEmail         string        // 初始管理员邮箱，用户表为空时写入
		AdminPassword      string        // 初始管理员密码
	}
}
