/*
 * @Description: 文章提交与删除服务
 * @Author: 安知鱼
 * @Date: 2026-10-12 14:20:33
 * @LastEditTime: 2026-10-14 09:47:02
 * @LastEditors: 安知鱼
 */
package post

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/anzhiyu-c/anheyu-post/internal/pkg/event"
	"github.com/anzhiyu-c/anheyu-post/pkg/constant"
	"github.com/anzhiyu-c/anheyu-post/pkg/domain/model"
	"github.com/anzhiyu-c/anheyu-post/pkg/domain/repository"
	"github.com/anzhiyu-c/anheyu-post/pkg/idgen"
	"github.com/anzhiyu-c/anheyu-post/pkg/service/upload"
)

// SubmitParams 是一次表单提交的内容
type SubmitParams struct {
	Title   string
	Author  string
	Content string
	Image   *upload.Image
}

// Service 定义了文章相关的业务逻辑接口
type Service interface {
	// Submit 校验并保存一篇文章，校验失败时返回 *model.BlogError
	Submit(ctx context.Context, params SubmitParams) (*model.Post, error)

	// Delete 删除指定 ID 的文章，不存在时返回包装了 constant.ErrNotFound 的 *model.BlogError
	Delete(ctx context.Context, id uint64) error

	// Get 返回指定 ID 的文章
	Get(ctx context.Context, id uint64) (model.Post, error)

	// List 按提交顺序返回全部文章
	List(ctx context.Context) ([]model.Post, error)

	// Count 返回文章数量
	Count(ctx context.Context) (int, error)
}

// Publisher 是 Service 发布事件所需的最小接口，由 *event.EventBus 实现
type Publisher interface {
	Publish(topic event.Topic, payload interface{})
}

type postService struct {
	repo      repository.PostRepository
	allocator idgen.Allocator
	publisher Publisher
	now       func() time.Time
}

// Option 用于定制 postService
type Option func(*postService)

// WithClock 替换时间来源，主要用于测试
func WithClock(now func() time.Time) Option {
	return func(s *postService) {
		s.now = now
	}
}

// NewService 创建文章服务。publisher 可以为 nil，此时不发布事件。
func NewService(repo repository.PostRepository, allocator idgen.Allocator, publisher Publisher, opts ...Option) Service {
	s := &postService{
		repo:      repo,
		allocator: allocator,
		publisher: publisher,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *postService) Submit(ctx context.Context, params SubmitParams) (*model.Post, error) {
	if params.Image == nil {
		return nil, upload.ErrNoFile()
	}
	if blogErr := ValidateFields(params); blogErr != nil {
		return nil, blogErr
	}

	p := model.Post{
		ID:        s.allocator.Next(),
		Title:     params.Title,
		Content:   params.Content,
		Photo:     params.Image.DataURI(),
		Author:    params.Author,
		CreatedAt: s.now(),
	}
	if err := s.repo.Append(ctx, p); err != nil {
		return nil, fmt.Errorf("保存文章失败: %w", err)
	}

	log.Printf("[PostService] 新文章已保存: ID=%d, 标题=%q, 作者=%q, 图片=%s (%d 字节)",
		p.ID, p.Title, p.Author, params.Image.Filename, len(params.Image.Data))
	s.publish(event.PostCreated, p.ID)
	return &p, nil
}

func (s *postService) Delete(ctx context.Context, id uint64) error {
	if err := s.repo.Remove(ctx, id); err != nil {
		if errors.Is(err, constant.ErrNotFound) {
			return model.NewBlogErrorWrap(model.ErrorLocationID,
				fmt.Sprintf("Blog post with ID \"%d\" doesn't exist.", id), constant.ErrNotFound)
		}
		return fmt.Errorf("删除文章失败: %w", err)
	}

	log.Printf("[PostService] 文章已删除: ID=%d", id)
	s.publish(event.PostDeleted, id)
	return nil
}

func (s *postService) Get(ctx context.Context, id uint64) (model.Post, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *postService) List(ctx context.Context) ([]model.Post, error) {
	return s.repo.FindAll(ctx)
}

func (s *postService) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

func (s *postService) publish(topic event.Topic, id uint64) {
	if s.publisher != nil {
		s.publisher.Publish(topic, id)
	}
}
