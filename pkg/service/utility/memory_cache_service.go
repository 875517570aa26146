/*
 * @Description: 内存缓存服务实现（用于 Redis 不可用时的降级方案）
 * @Author: 安知鱼
 * @Date: 2025-10-05 00:00:00
 * @LastEditTime: 2026-10-13 11:24:09
 * @LastEditors: 安知鱼
 */
package utility

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// cacheItem 缓存项结构
type cacheItem struct {
	value      string
	expiration time.Time
	hasExpiry  bool
}

// isExpired 检查是否过期
func (item *cacheItem) isExpired() bool {
	if !item.hasExpiry {
		return false
	}
	return time.Now().After(item.expiration)
}

// memoryCacheService 是基于内存的缓存服务实现
type memoryCacheService struct {
	data     sync.Map
	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
}

// NewMemoryCacheService 创建内存缓存服务实例
func NewMemoryCacheService() CacheService {
	return newMemoryCacheService(time.Minute)
}

func newMemoryCacheService(cleanupInterval time.Duration) *memoryCacheService {
	svc := &memoryCacheService{
		ticker: time.NewTicker(cleanupInterval),
		done:   make(chan struct{}),
	}

	// 启动后台清理任务
	go svc.cleanupExpired()

	return svc
}

// cleanupExpired 定期清理过期的缓存项
func (s *memoryCacheService) cleanupExpired() {
	for {
		select {
		case <-s.ticker.C:
			s.data.Range(func(key, value interface{}) bool {
				if item, ok := value.(*cacheItem); ok && item.isExpired() {
					s.data.Delete(key)
				}
				return true
			})
		case <-s.done:
			return
		}
	}
}

// Stop 停止清理任务
func (s *memoryCacheService) Stop() {
	s.stopOnce.Do(func() {
		s.ticker.Stop()
		close(s.done)
	})
}

// Set 设置缓存
func (s *memoryCacheService) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	item := &cacheItem{
		value:     fmt.Sprintf("%v", value),
		hasExpiry: expiration > 0,
	}

	if expiration > 0 {
		item.expiration = time.Now().Add(expiration)
	}

	s.data.Store(key, item)
	return nil
}

// GetAndDelete 读取并删除，LoadAndDelete 保证同一个键只会被读到一次
func (s *memoryCacheService) GetAndDelete(ctx context.Context, key string) (string, error) {
	value, ok := s.data.LoadAndDelete(key)
	if !ok {
		return "", nil
	}

	item, ok := value.(*cacheItem)
	if !ok || item.isExpired() {
		return "", nil
	}
	return item.value, nil
}
