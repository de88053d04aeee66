package pubsub

import (
	"sync"

	"f1champsseason/pkg/queues"
)

const TopicResults = "results"

type subscriber[T any] interface {
	channel() <-chan T
	deliver(data T)
	stop()
}

// PubSub fans out values per topic. Publish never blocks the publisher: a
// Subscribe channel holds only the newest undelivered value, a SubscribeQueue
// channel buffers every value until it is received.
type PubSub[T any] struct {
	mu     sync.Mutex
	subs   map[string][]subscriber[T]
	closed bool
}

func NewPubSub[T any]() *PubSub[T] {
	return &PubSub[T]{
		subs: make(map[string][]subscriber[T]),
	}
}

// Subscribe returns a latest-wins subscription: a value not yet received is
// replaced by the next one published.
func (ps *PubSub[T]) Subscribe(topic string) <-chan T {
	return ps.add(topic, &latest[T]{ch: make(chan T, 1)})
}

// SubscribeQueue returns a lossless subscription delivering every value in
// publish order.
func (ps *PubSub[T]) SubscribeQueue(topic string) <-chan T {
	q := &queued[T]{
		items: queues.NewQueue[T](),
		wake:  make(chan struct{}, 1),
		done:  make(chan struct{}),
		out:   make(chan T),
	}
	go q.forward()
	return ps.add(topic, q)
}

func (ps *PubSub[T]) add(topic string, sub subscriber[T]) <-chan T {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	if ps.closed {
		sub.stop()
		return sub.channel()
	}
	ps.subs[topic] = append(ps.subs[topic], sub)
	return sub.channel()
}

// Unsubscribe removes and closes the subscription. Values still queued for
// it are discarded.
func (ps *PubSub[T]) Unsubscribe(topic string, ch <-chan T) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	subs := ps.subs[topic]
	for i, sub := range subs {
		if sub.channel() == ch {
			ps.subs[topic] = append(subs[:i], subs[i+1:]...)
			sub.stop()
			return
		}
	}
}

// Publish returns the number of subscribers the value was handed to.
func (ps *PubSub[T]) Publish(topic string, data T) int {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	for _, sub := range ps.subs[topic] {
		sub.deliver(data)
	}
	return len(ps.subs[topic])
}

// Close closes every subscription; later subscriptions are returned closed.
func (ps *PubSub[T]) Close() {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	if ps.closed {
		return
	}
	ps.closed = true
	for topic, subs := range ps.subs {
		for _, sub := range subs {
			sub.stop()
		}
		delete(ps.subs, topic)
	}
}

type latest[T any] struct {
	ch chan T
}

func (l *latest[T]) channel() <-chan T {
	return l.ch
}

// deliver runs under the PubSub lock, so once the stale value is drained the
// send cannot block.
func (l *latest[T]) deliver(data T) {
	select {
	case <-l.ch:
	default:
	}
	l.ch <- data
}

func (l *latest[T]) stop() {
	close(l.ch)
}

type queued[T any] struct {
	mu    sync.Mutex
	items *queues.Queue[T]
	wake  chan struct{}
	done  chan struct{}
	out   chan T
}

func (q *queued[T]) channel() <-chan T {
	return q.out
}

func (q *queued[T]) deliver(data T) {
	q.mu.Lock()
	q.items.Push(data)
	q.mu.Unlock()
	select {
	case q.wake <- struct{}{}:
	default:
	}
}

func (q *queued[T]) stop() {
	close(q.done)
}

func (q *queued[T]) forward() {
	defer close(q.out)
	for {
		q.mu.Lock()
		data, ok := q.items.Pop()
		q.mu.Unlock()
		if !ok {
			select {
			case <-q.wake:
				continue
			case <-q.done:
				return
			}
		}
		select {
		case q.out <- data:
		case <-q.done:
			return
		}
	}
}
