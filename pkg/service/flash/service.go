/*
 * @Description: 一次性错误提示服务，替代进程级共享的错误槽
 * @Author: 安知鱼
 * @Date: 2026-10-13 11:40:12
 * @LastEditTime: 2026-10-14 10:03:37
 * @LastEditors: 安知鱼
 */
package flash

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/anzhiyu-c/anheyu-post/pkg/domain/model"
	"github.com/anzhiyu-c/anheyu-post/pkg/service/utility"
	"github.com/google/uuid"
)

const keyPrefix = "blog:flash:"

// DefaultTTL 是未被读取的错误提示的保留时间
const DefaultTTL = 5 * time.Minute

// Service 保存某一次失败提交的错误，供重定向后的页面读取一次
type Service interface {
	// Put 保存错误并返回一次性令牌
	Put(ctx context.Context, blogErr *model.BlogError) (string, error)
	// Take 读取并删除令牌对应的错误；令牌未知或已过期时返回 nil, nil
	Take(ctx context.Context, token string) (*model.BlogError, error)
}

type flashService struct {
	cache utility.CacheService
	ttl   time.Duration
}

// NewService 创建基于 CacheService 的错误提示服务，ttl <= 0 时使用 DefaultTTL
func NewService(cache utility.CacheService, ttl time.Duration) Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &flashService{cache: cache, ttl: ttl}
}

func (s *flashService) Put(ctx context.Context, blogErr *model.BlogError) (string, error) {
	payload, err := json.Marshal(blogErr)
	if err != nil {
		return "", fmt.Errorf("序列化错误提示失败: %w", err)
	}

	token := uuid.NewString()
	if err := s.cache.Set(ctx, keyPrefix+token, string(payload), s.ttl); err != nil {
		return "", fmt.Errorf("保存错误提示失败: %w", err)
	}
	return token, nil
}

func (s *flashService) Take(ctx context.Context, token string) (*model.BlogError, error) {
	// 只接受本服务签发的令牌格式，避免任意字符串拼进缓存键
	if _, err := uuid.Parse(token); err != nil {
		return nil, nil
	}

	raw, err := s.cache.GetAndDelete(ctx, keyPrefix+token)
	if err != nil {
		return nil, fmt.Errorf("读取错误提示失败: %w", err)
	}
	if raw == "" {
		return nil, nil
	}

	var blogErr model.BlogError
	if err := json.Unmarshal([]byte(raw), &blogErr); err != nil {
		return nil, fmt.Errorf("解析错误提示失败: %w", err)
	}
	return &blogErr, nil
}
