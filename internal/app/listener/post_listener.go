/*
 * @Description: 监听文章创建与删除事件，记录日志并维护事件计数
 * @Author: 安知鱼
 * @Date: 2026-10-14 09:12:44
 * @LastEditTime: 2026-10-14 09:40:02
 * @LastEditors: 安知鱼
 */
package listener

import (
	"log"
	"sync/atomic"

	"github.com/anzhiyu-c/anheyu-post/internal/pkg/event"
)

// PostStats 是监听器观察到的事件计数快照
type PostStats struct {
	Created uint64
	Deleted uint64
}

// PostListener 订阅 PostCreated / PostDeleted 事件
type PostListener struct {
	created atomic.Uint64
	deleted atomic.Uint64
}

// NewPostListener 创建监听器并完成订阅
func NewPostListener(eventBus *event.EventBus) *PostListener {
	l := &PostListener{}
	eventBus.Subscribe(event.PostCreated, l.handlePostCreated)
	eventBus.Subscribe(event.PostDeleted, l.handlePostDeleted)
	return l
}

// Stats 返回当前计数
func (l *PostListener) Stats() PostStats {
	return PostStats{
		Created: l.created.Load(),
		Deleted: l.deleted.Load(),
	}
}

func (l *PostListener) handlePostCreated(payload interface{}) {
	id, ok := payload.(uint64)
	if !ok {
		log.Printf("[PostListener] 错误：收到的PostCreated事件负载类型不正确: %T", payload)
		return
	}
	total := l.created.Add(1)
	log.Printf("[PostListener] 收到 PostCreated 事件 for PostID %d (累计创建 %d 篇)", id, total)
}

func (l *PostListener) handlePostDeleted(payload interface{}) {
	id, ok := payload.(uint64)
	if !ok {
		log.Printf("[PostListener] 错误：收到的PostDeleted事件负载类型不正确: %T", payload)
		return
	}
	total := l.deleted.Add(1)
	log.Printf("[PostListener] 收到 PostDeleted 事件 for PostID %d (累计删除 %d 篇)", id, total)
}
