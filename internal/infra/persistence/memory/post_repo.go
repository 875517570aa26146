/*
 * @Description: 基于内存切片的文章仓储实现，进程重启后数据丢失
 * @Author: 安知鱼
 * @Date: 2026-10-12 11:31:48
 * @LastEditTime: 2026-10-13 16:02:11
 * @LastEditors: 安知鱼
 */
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/anzhiyu-c/anheyu-post/pkg/constant"
	"github.com/anzhiyu-c/anheyu-post/pkg/domain/model"
	"github.com/anzhiyu-c/anheyu-post/pkg/domain/repository"
)

type postRepo struct {
	mu    sync.RWMutex
	posts []model.Post
}

// NewPostRepo 创建一个空的内存文章仓储
func NewPostRepo() repository.PostRepository {
	return &postRepo{}
}

func (r *postRepo) Append(ctx context.Context, post model.Post) error {
	r.mu.Lock()
	r.posts = append(r.posts, post)
	r.mu.Unlock()
	return nil
}

// Remove 构造一个排除匹配项的新切片，只有确实删除了文章才替换原集合
func (r *postRepo) Remove(ctx context.Context, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := make([]model.Post, 0, len(r.posts))
	for _, p := range r.posts {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(r.posts) {
		return fmt.Errorf("文章 %d: %w", id, constant.ErrNotFound)
	}
	r.posts = kept
	return nil
}

func (r *postRepo) FindAll(ctx context.Context) ([]model.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Post, len(r.posts))
	copy(out, r.posts)
	return out, nil
}

func (r *postRepo) FindByID(ctx context.Context, id uint64) (model.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Post{}, fmt.Errorf("文章 %d: %w", id, constant.ErrNotFound)
}

func (r *postRepo) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.posts), nil
}
