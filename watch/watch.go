/*
Package watch publishes structural B-tree events to any number of subscribers.

A Broadcaster is handed to a tree as its btree.Observer. Events are published
in the order the tree emits them; each subscriber receives them on a buffered
channel. A subscriber with a full buffer blocks delivery for all subscribers,
so clients should size buffers according to their insertion bursts.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package watch

import (
	"context"
	"sync"

	"github.com/guiguan/caster"
	"github.com/npillmayer/ordtree/btree"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ordtree'
func tracer() tracing.Trace {
	return tracing.Select("ordtree")
}

// Kind tells which kind of structural change an Event describes.
type Kind int

const (
	KindSplit Kind = iota // a node split
	KindGrow              // the root split and the tree grew by one level
)

func (k Kind) String() string {
	switch k {
	case KindSplit:
		return "split"
	case KindGrow:
		return "grow"
	}
	return "unknown"
}

// Event is a structural change published by a Broadcaster.
// Depending on Kind, either Split or Grow is set.
type Event struct {
	Kind  Kind
	Split btree.SplitEvent
	Grow  btree.GrowEvent
}

// Broadcaster implements btree.Observer by broadcasting events to subscribers.
type Broadcaster struct {
	cast      *caster.Caster
	ctx       context.Context // lifetime of the broadcaster
	done      chan struct{}   // closed by Close
	closeOnce sync.Once
}

var _ btree.Observer = (*Broadcaster)(nil)

// New creates a broadcaster. Cancelling ctx closes the broadcaster and all
// subscriptions.
func New(ctx context.Context) *Broadcaster {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Broadcaster{
		cast: caster.New(ctx),
		ctx:  ctx,
		done: make(chan struct{}),
	}
}

// Split publishes a split event (part of interface btree.Observer).
func (b *Broadcaster) Split(e btree.SplitEvent) {
	b.publish(Event{Kind: KindSplit, Split: e})
}

// Grow publishes a root growth event (part of interface btree.Observer).
func (b *Broadcaster) Grow(e btree.GrowEvent) {
	b.publish(Event{Kind: KindGrow, Grow: e})
}

func (b *Broadcaster) publish(e Event) {
	if !b.cast.Pub(e) {
		tracer().Debugf("watch: dropped %s event, broadcaster is closed", e.Kind)
	}
}

// Subscribe returns a channel receiving all events published from now on.
// The channel is closed when ctx is done or the broadcaster is closed.
// ok is false if the broadcaster has already been closed.
//
// Events a subscriber does not read are buffered up to capacity; once ctx is
// done, pending and further events for this subscription are discarded.
func (b *Broadcaster) Subscribe(ctx context.Context, capacity uint) (events <-chan Event, ok bool) {
	if ctx == nil {
		ctx = context.Background()
	}
	sub, ok := b.cast.Sub(ctx, capacity)
	if !ok {
		return nil, false
	}
	out := make(chan Event, capacity)
	go b.forward(ctx, sub, out)
	return out, true
}

// forward moves events from a caster subscription to out until the
// subscription, the broadcaster or ctx ends. On exit it keeps draining sub
// until caster closes it, so publishing never blocks on a gone subscriber.
func (b *Broadcaster) forward(ctx context.Context, sub chan interface{}, out chan<- Event) {
	defer close(out)
	defer func() {
		for range sub {
		}
	}()
	for {
		select {
		case m, open := <-sub:
			if !open {
				return
			}
			e, isEvent := m.(Event)
			if !isEvent {
				continue
			}
			select {
			case out <- e:
			case <-ctx.Done():
				return
			case <-b.done:
				return
			case <-b.ctx.Done():
				return
			}
		case <-ctx.Done():
			return
		case <-b.done:
			return
		case <-b.ctx.Done():
			return
		}
	}
}

// Close ends all subscriptions. Events published afterwards are dropped.
func (b *Broadcaster) Close() {
	b.closeOnce.Do(func() {
		close(b.done)
		b.cast.Close()
	})
}
