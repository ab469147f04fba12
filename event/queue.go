package event

import "sync"

const queueSlots = 32

// Queue is a fixed-capacity ring buffer bridging event producers on other
// goroutines to the single dispatch thread. When full, the oldest pending
// event is dropped in favor of the new one: the listeners re-query device
// state on delivery, so a fresher trigger always wins.
type Queue struct {
	mu    sync.Mutex
	head  uint8
	tail  uint8
	slots [queueSlots]Event
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push enqueues ev. It reports false when the queue was full and the oldest
// pending event was discarded to make room.
func (q *Queue) Push(ev Event) bool {
	if ev == nil {
		return true
	}
	q.mu.Lock()
	defer q.mu.Unlock()

	ok := true
	if q.head-q.tail >= queueSlots {
		q.tail++
		ok = false
	}
	q.slots[q.head%queueSlots] = ev
	q.head++
	return ok
}

// Drain publishes every pending event on b, in arrival order, and returns
// the number delivered. Call it from the dispatch thread.
func (q *Queue) Drain(b *Bus) int {
	n := 0
	for {
		q.mu.Lock()
		if q.tail == q.head {
			q.mu.Unlock()
			return n
		}
		ev := q.slots[q.tail%queueSlots]
		q.slots[q.tail%queueSlots] = nil
		q.tail++
		q.mu.Unlock()

		b.Publish(ev)
		n++
	}
}
