package transition

import "container/heap"

// Queue is a min-heap of events ordered by Priority, soonest first.
// container/heap is not stable, so each event carries an insertion sequence
// number and equal priorities pop in insertion order. Only enqueue and
// pop-minimum are supported; a changed collection means a rebuilt queue.
type Queue struct {
	h   eventHeap
	seq int
}

func NewQueue() *Queue {
	return &Queue{}
}

func (q *Queue) Len() int {
	return q.h.Len()
}

// Push enqueues an event.
func (q *Queue) Push(e Event) {
	q.seq++
	heap.Push(&q.h, entry{Event: e, seq: q.seq})
}

// Peek returns the soonest event without removing it.
func (q *Queue) Peek() (Event, bool) {
	if q.h.Len() == 0 {
		return Event{}, false
	}

	return q.h[0].Event, true
}

// Pop removes and returns the soonest event.
func (q *Queue) Pop() (Event, bool) {
	if q.h.Len() == 0 {
		return Event{}, false
	}

	return heap.Pop(&q.h).(entry).Event, true
}

type entry struct {
	Event
	seq int
}

type eventHeap []entry

func (h eventHeap) Len() int { return len(h) }

func (h eventHeap) Less(i, j int) bool {
	if h[i].Priority != h[j].Priority {
		return h[i].Priority < h[j].Priority
	}

	return h[i].seq < h[j].seq
}

func (h eventHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *eventHeap) Push(x any) {
	*h = append(*h, x.(entry))
}

func (h *eventHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
