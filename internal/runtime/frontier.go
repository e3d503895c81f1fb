package runtime

import (
	"container/heap"

	"github.com/aretw0/pathfinder/pkg/domain"
)

// frontierEntry orders cells by (priority, seq). The cell index is payload only.
type frontierEntry struct {
	priority float64
	seq      uint64
	index    int
}

type entryQueue []frontierEntry

func (q entryQueue) Len() int { return len(q) }
func (q entryQueue) Less(i, j int) bool {
	if q[i].priority != q[j].priority {
		return q[i].priority < q[j].priority
	}
	return q[i].seq < q[j].seq
}
func (q entryQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *entryQueue) Push(x any) { *q = append(*q, x.(frontierEntry)) }

func (q *entryQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// Frontier is the open set: a min-queue on (priority, insertion order) with
// O(1) membership. Improving a queued cell pushes a second entry instead of
// re-ordering the first; the caller skips the outdated one when it surfaces.
type Frontier struct {
	queue   entryQueue
	members map[int]int // live entries per cell index
	counter uint64
}

// NewFrontier returns an empty frontier.
func NewFrontier() *Frontier {
	return &Frontier{members: make(map[int]int)}
}

// Push queues index with the given priority and the next insertion number.
func (f *Frontier) Push(index int, priority float64) {
	f.counter++
	heap.Push(&f.queue, frontierEntry{priority: priority, seq: f.counter, index: index})
	f.members[index]++
}

// PopMin removes the entry with the smallest (priority, insertion order).
func (f *Frontier) PopMin() (int, float64, error) {
	if len(f.queue) == 0 {
		return 0, 0, domain.ErrEmptyFrontier
	}
	e := heap.Pop(&f.queue).(frontierEntry)
	if f.members[e.index]--; f.members[e.index] == 0 {
		delete(f.members, e.index)
	}
	return e.index, e.priority, nil
}

// Contains reports whether index has at least one queued entry.
func (f *Frontier) Contains(index int) bool {
	return f.members[index] > 0
}

// Len returns the number of queued entries, outdated ones included.
func (f *Frontier) Len() int { return len(f.queue) }

func (f *Frontier) IsEmpty() bool { return len(f.queue) == 0 }
