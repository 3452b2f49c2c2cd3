package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"habit-tracker/app/server/constants"
	"habit-tracker/app/server/models"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// IdentityStore 是缓存背后的数据源
type IdentityStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// 仅当世代号未变化时写入，避免回填覆盖已失效的记录
var setIfGeneration = redis.NewScript(`
if (redis.call('GET', KEYS[2]) or '') == ARGV[2] then
	return redis.call('SET', KEYS[1], ARGV[1], 'PX', ARGV[3])
end
return 0
`)

// IdentityCache 按邮箱缓存身份记录，缓存中不含密码 hash ，只用于令牌解析
type IdentityCache struct {
	store IdentityStore
	rdb   *redis.Client // 为 nil 时直接查询 store
	l     *zap.Logger
}

func NewIdentityCache(store IdentityStore, rdb *redis.Client, l *zap.Logger) *IdentityCache {
	return &IdentityCache{
		store: store,
		rdb:   rdb,
		l:     l,
	}
}

func (c *IdentityCache) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if c.rdb == nil {
		return c.store.FindByEmail(ctx, email)
	}

	var user models.User

	// 查询缓存
	cacheKey := fmt.Sprintf(constants.CacheKeyUserByEmail, email)
	if cacheBytes, err := c.rdb.Get(ctx, cacheKey).Bytes(); err != nil {
		if !errors.Is(err, redis.Nil) {
			c.l.Error("failed to query cache for identity", zap.String("email", email), zap.Error(err))
		}
	} else if err = json.Unmarshal(cacheBytes, &user); err != nil {
		c.l.Error("failed to unmarshal identity", zap.String("email", email), zap.ByteString("cacheBytes", cacheBytes), zap.Error(err))
		// 可能是无效的缓存，清理掉
		c.rdb.Del(ctx, cacheKey)
	} else {
		// 成功拉取到并格式化
		return &user, nil
	}

	// 先记下世代号，再查询数据库
	genKey := fmt.Sprintf(constants.CacheKeyUserGeneration, email)
	gen, err := c.rdb.Get(ctx, genKey).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		c.l.Error("failed to query identity generation", zap.String("email", email), zap.Error(err))
		return c.store.FindByEmail(ctx, email)
	}

	found, err := c.store.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	// 格式化并加入缓存，方便下一次查询
	if cacheBytes, err := json.Marshal(found); err != nil {
		c.l.Error("failed to marshal identity", zap.String("email", email), zap.Error(err))
	} else if err = setIfGeneration.Run(ctx, c.rdb,
		[]string{cacheKey, genKey},
		string(cacheBytes), gen, constants.CacheExpireUserByEmail.Milliseconds(),
	).Err(); err != nil {
		c.l.Error("failed to cache identity", zap.String("email", email), zap.Error(err))
	}

	return found, nil
}

// Invalidate 身份发生变化后调用
func (c *IdentityCache) Invalidate(ctx context.Context, email string) {
	if c.rdb == nil {
		return
	}

	// 世代号递增后，进行中的回填不会再写入
	genKey := fmt.Sprintf(constants.CacheKeyUserGeneration, email)
	pipe := c.rdb.TxPipeline()
	pipe.Incr(ctx, genKey)
	pipe.Expire(ctx, genKey, constants.CacheExpireUserByEmail)
	pipe.Del(ctx, fmt.Sprintf(constants.CacheKeyUserByEmail, email))
	if _, err := pipe.Exec(ctx); err != nil {
		c.l.Error("failed to invalidate identity cache", zap.String("email", email), zap.Error(err))
	}
}
