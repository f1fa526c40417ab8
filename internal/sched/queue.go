// Package sched is a scheduled-event queue keyed by simulation tick.
//
// Games use it for every delayed effect (announcements, pauses between
// rounds, spawn timers). Events fire from the frame loop when the tick
// counter reaches them, so cancelling one is removing it by id; no timer
// can fire against state that has already moved on.
package sched

import "container/heap"

// ID identifies a scheduled event. The zero ID is never issued.
type ID uint64

// Event is a payload due at a tick.
type Event[T any] struct {
	ID      ID
	At      uint64
	Payload T
}

// Queue orders events by tick, then by scheduling order.
// A Queue is owned by one game and is not safe for concurrent use.
type Queue[T any] struct {
	items   eventHeap[T]
	pending map[ID]struct{}
	next    ID
}

// New creates an empty queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{pending: make(map[ID]struct{})}
}

// At schedules payload for an absolute tick.
func (q *Queue[T]) At(tick uint64, payload T) ID {
	if q.pending == nil {
		q.pending = make(map[ID]struct{})
	}
	q.next++
	id := q.next
	heap.Push(&q.items, Event[T]{ID: id, At: tick, Payload: payload})
	q.pending[id] = struct{}{}
	return id
}

// After schedules payload delay ticks after now.
func (q *Queue[T]) After(now uint64, delay int, payload T) ID {
	if delay < 0 {
		delay = 0
	}
	return q.At(now+uint64(delay), payload)
}

// Cancel removes a pending event and reports whether it was still pending.
func (q *Queue[T]) Cancel(id ID) bool {
	if _, ok := q.pending[id]; !ok {
		return false
	}
	delete(q.pending, id)
	return true
}

// Pending reports whether id is scheduled and not yet fired or cancelled.
func (q *Queue[T]) Pending(id ID) bool {
	_, ok := q.pending[id]
	return ok
}

// Due pops every event with At <= now, in firing order.
// Cancelled events are discarded on the way.
func (q *Queue[T]) Due(now uint64) []Event[T] {
	var out []Event[T]
	for q.items.Len() > 0 && q.items[0].At <= now {
		ev := heap.Pop(&q.items).(Event[T])
		if _, ok := q.pending[ev.ID]; !ok {
			continue
		}
		delete(q.pending, ev.ID)
		out = append(out, ev)
	}
	return out
}

// Len returns the number of pending events.
func (q *Queue[T]) Len() int {
	return len(q.pending)
}

// Clear drops every pending event. IDs keep increasing across clears.
func (q *Queue[T]) Clear() {
	q.items = q.items[:0]
	clear(q.pending)
}

type eventHeap[T any] []Event[T]

func (h eventHeap[T]) Len() int { return len(h) }

func (h eventHeap[T]) Less(i, j int) bool {
	if h[i].At != h[j].At {
		return h[i].At < h[j].At
	}
	return h[i].ID < h[j].ID
}

func (h eventHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *eventHeap[T]) Push(x any) { *h = append(*h, x.(Event[T])) }

func (h *eventHeap[T]) Pop() any {
	old := *h
	n := len(old)
	ev := old[n-1]
	*h = old[:n-1]
	return ev
}
