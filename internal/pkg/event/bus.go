/*
 * @Description: 一个带固定Worker池的异步事件总线
 * @Author: 安知鱼
 * @Date: 2025-07-10 19:06:12
 * @LastEditTime: 2026-10-12 10:38:51
 * @LastEditors: 安知鱼
 */
package event

import (
	"log"
	"sync"
)

// 定义事件类型
type Topic string

const (
	// 文章事件，负载为 uint64 文章ID
	PostCreated Topic = "post:created"
	PostDeleted Topic = "post:deleted"
)

// 事件处理器函数类型
type Handler func(payload interface{})

// Event 是在通道中传递的事件结构
type Event struct {
	Topic   Topic
	Payload interface{}
}

// EventBus 实现了基于Worker池的异步事件总线
type EventBus struct {
	mu        sync.RWMutex
	handlers  map[Topic][]Handler
	eventChan chan Event     // 带缓冲的事件通道
	wg        sync.WaitGroup // 用于优雅关闭
	closeOnce sync.Once
}

// 定义Worker池和通道的配置
const (
	DefaultWorkerCount = 2
	DefaultChannelSize = 256
)

// NewEventBus 创建并启动一个新的事件总线
func NewEventBus() *EventBus {
	return NewEventBusWithSize(DefaultWorkerCount, DefaultChannelSize)
}

// NewEventBusWithSize 使用指定的 worker 数量和通道容量创建事件总线
func NewEventBusWithSize(workers, channelSize int) *EventBus {
	if workers < 1 {
		workers = 1
	}
	bus := &EventBus{
		handlers:  make(map[Topic][]Handler),
		eventChan: make(chan Event, channelSize),
	}
	bus.startWorkers(workers)
	return bus
}

// startWorkers 启动固定数量的后台worker
func (b *EventBus) startWorkers(count int) {
	for i := 0; i < count; i++ {
		b.wg.Add(1)
		go b.worker(i + 1)
	}
}

// worker 是消费者，不断从通道中读取并处理事件
func (b *EventBus) worker(workerID int) {
	defer b.wg.Done()
	log.Printf("[EventBus] Worker %d started", workerID)

	for event := range b.eventChan {
		b.mu.RLock()
		handlers := b.handlers[event.Topic]
		b.mu.RUnlock()
		for _, handler := range handlers {
			handler(event.Payload)
		}
	}
	log.Printf("[EventBus] Worker %d stopped", workerID)
}

// Subscribe 订阅一个事件
func (b *EventBus) Subscribe(topic Topic, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[topic] = append(b.handlers[topic], handler)
}

// Publish 发布一个事件，非阻塞
func (b *EventBus) Publish(topic Topic, payload interface{}) {
	event := Event{Topic: topic, Payload: payload}

	// 使用非阻塞发送，确保Publish永远不会阻塞调用者（主流程）
	select {
	case b.eventChan <- event:
	default:
		log.Printf("[EventBus] WARN: Event channel is full. Dropping event for topic '%s'.", topic)
	}
}

// Shutdown 优雅地关闭事件总线，等待已入队的事件处理完毕。可重复调用。
func (b *EventBus) Shutdown() {
	b.closeOnce.Do(func() {
		log.Println("[EventBus] Shutting down...")
		close(b.eventChan)
		b.wg.Wait()
		log.Println("[EventBus] All workers have stopped.")
	})
}
