/*
 * @Description: Redis 缓存服务
 * @Author: 安知鱼
 * @Date: 2025-06-20 15:17:47
 * @LastEditTime: 2026-10-13 11:20:36
 * @LastEditors: 安知鱼
 */
package utility

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// CacheService 定义了一次性数据的缓存接口：带过期时间写入，读取即删除
type CacheService interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	// GetAndDelete 原子地读取并删除一个键，key 不存在或已过期时返回空字符串和 nil 错误
	GetAndDelete(ctx context.Context, key string) (string, error)
}

// redisCacheService 是 CacheService 的 Redis 实现
type redisCacheService struct {
	client *redis.Client
}

// NewCacheService 是 redisCacheService 的构造函数，通过依赖注入接收 Redis 客户端
func NewCacheService(client *redis.Client) CacheService {
	return &redisCacheService{
		client: client,
	}
}

// Set 实现了设置缓存的方法
func (s *redisCacheService) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return s.client.Set(ctx, key, value, expiration).Err()
}

// GetAndDelete 使用 GETDEL 保证一次性读取
func (s *redisCacheService) GetAndDelete(ctx context.Context, key string) (string, error) {
	val, err := s.client.GetDel(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}
