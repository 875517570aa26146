/*
 * @Description: 文章仓储接口
 * @Author: 安知鱼
 * @Date: 2026-10-12 11:20:05
 * @LastEditTime: 2026-10-12 11:20:05
 * @LastEditors: 安知鱼
 */
package repository

import (
	"context"

	"github.com/anzhiyu-c/anheyu-post/pkg/domain/model"
)

// PostRepository 定义了文章集合的数据操作契约。
// 集合保持插入顺序，实现必须可被并发调用。
type PostRepository interface {
	// Append 将文章追加到集合末尾
	Append(ctx context.Context, post model.Post) error

	// Remove 移除所有 ID 匹配的文章。
	// 没有任何文章匹配时集合保持不变，返回包装了 constant.ErrNotFound 的错误。
	Remove(ctx context.Context, id uint64) error

	// FindAll 按插入顺序返回集合的副本
	FindAll(ctx context.Context) ([]model.Post, error)

	// FindByID 返回指定 ID 的文章，不存在时返回包装了 constant.ErrNotFound 的错误
	FindByID(ctx context.Context, id uint64) (model.Post, error)

	// Count 返回集合大小
	Count(ctx context.Context) (int, error)
}
