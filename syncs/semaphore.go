package syncs

import "sync"

// Semaphore bounds the number of goroutines running at once.
type Semaphore chan bool

func NewSemaphore(n int) Semaphore {
	if n < 1 {
		n = 1
	}
	return make(chan bool, n)
}

func (s Semaphore) Acquire() {
	s <- true
}

func (s Semaphore) Release() {
	<-s
}

// Go runs fn in a new goroutine tracked by wg once a slot is free.
// It blocks the caller until the slot is acquired.
func (s Semaphore) Go(wg *sync.WaitGroup, fn func()) {
	s.Acquire()
	wg.Go(func() {
		defer s.Release()
		fn()
	})
}
