package idgen

import "sync/atomic"

// Allocator 分配唯一且单调递增的文章 ID
type Allocator interface {
	Next() uint64
}

// CounterAllocator 是基于原子计数器的 Allocator，首个 ID 为 start+1
type CounterAllocator struct {
	counter atomic.Uint64
}

// NewCounterAllocator 创建一个从 start 之后开始计数的分配器
func NewCounterAllocator(start uint64) *CounterAllocator {
	a := &CounterAllocator{}
	a.counter.Store(start)
	return a
}

// Next 返回下一个 ID，可被并发调用
func (a *CounterAllocator) Next() uint64 {
	return a.counter.Add(1)
}
