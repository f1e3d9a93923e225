// File: internal/worker/worker.go
package worker

import "sync"

// Task 為 pool 執行的工作單位
type Task func()

// Pool 簡單的背景工作池，用於請求外的非同步工作（如快取清除）
type Pool interface {
	Submit(Task)
	Stop()
}

// NewPool 建立 n 個 worker 的 pool；n <= 0 時視為 1
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{tasks: make(chan Task)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go p.work()
	}
	return p
}

type pool struct {
	tasks chan Task
	wg    sync.WaitGroup
}

func (p *pool) work() {
	defer p.wg.Done()
	for task := range p.tasks {
		if task != nil {
			task()
		}
	}
}

// Submit 送出工作；Stop 之後不可再呼叫
func (p *pool) Submit(t Task) {
	p.tasks <- t
}

// Stop 關閉 pool 並等待進行中的工作完成
func (p *pool) Stop() {
	close(p.tasks)
	p.wg.Wait()
}
