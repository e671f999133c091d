// Package live maintains per-collection snapshot feeds. Every committed
// mutation notifies the hub, which re-queries the complete result set and
// broadcasts it to subscribers. Feeds always carry whole snapshots, never
// deltas: downstream aggregations assume a full, consistent list on every
// update.
package live

import (
	"context"
	"log"
	"sync"
	"time"
)

// Collection names a live-queryable collection.
type Collection string

const (
	CollectionQuotes     Collection = "quotes"
	CollectionClients    Collection = "clients"
	CollectionPortfolio  Collection = "portfolio"
	CollectionSiteImages Collection = "site-images"
)

const (
	fetchTimeout  = 10 * time.Second
	subBufferSize = 16
)

// FetchFunc re-queries the complete, current result set for a collection.
type FetchFunc func(ctx context.Context) (interface{}, error)

// Snapshot is one full result set for a collection. Seq increases by one
// per broadcast, per collection; there is no cross-collection ordering.
type Snapshot struct {
	Collection Collection  `json:"collection"`
	Seq        uint64      `json:"seq"`
	Data       interface{} `json:"data"`
}

// Subscription delivers snapshots on C until Unsubscribe is called.
// Consumers must unsubscribe at teardown or the feed leaks the channel.
type Subscription struct {
	C <-chan Snapshot

	feed *feed
	id   int
	once sync.Once
}

func (s *Subscription) Unsubscribe() {
	s.once.Do(func() {
		s.feed.unsubscribe(s.id)
	})
}

type Hub struct {
	mu    sync.RWMutex
	feeds map[Collection]*feed
	done  chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		feeds: make(map[Collection]*feed),
		done:  make(chan struct{}),
	}
}

// Register wires a collection to its fetch function and performs the
// initial fetch in the background.
func (h *Hub) Register(collection Collection, fetch FetchFunc) {
	f := &feed{
		collection: collection,
		fetch:      fetch,
		notify:     make(chan struct{}, 1),
		subs:       make(map[int]chan Snapshot),
	}

	h.mu.Lock()
	h.feeds[collection] = f
	h.mu.Unlock()

	go f.run(h.done)
	f.requestRefresh()
}

// Notify schedules a re-fetch and broadcast for the collection. Multiple
// notifications while a fetch is in flight coalesce into one refresh.
func (h *Hub) Notify(collection Collection) {
	h.mu.RLock()
	f, ok := h.feeds[collection]
	h.mu.RUnlock()

	if ok {
		f.requestRefresh()
	}
}

// Subscribe attaches to a collection's feed. The latest snapshot, when one
// exists, is delivered immediately.
func (h *Hub) Subscribe(collection Collection) (*Subscription, bool) {
	h.mu.RLock()
	f, ok := h.feeds[collection]
	h.mu.RUnlock()

	if !ok {
		return nil, false
	}

	return f.subscribe(), true
}

// Latest returns the most recent snapshot for a collection, if any.
func (h *Hub) Latest(collection Collection) (Snapshot, bool) {
	h.mu.RLock()
	f, ok := h.feeds[collection]
	h.mu.RUnlock()

	if !ok {
		return Snapshot{}, false
	}

	return f.latest()
}

// Close stops all feeds and closes every subscriber channel.
func (h *Hub) Close() {
	close(h.done)

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, f := range h.feeds {
		f.close()
	}
	h.feeds = make(map[Collection]*feed)
}

type feed struct {
	collection Collection
	fetch      FetchFunc
	notify     chan struct{}

	mu     sync.Mutex
	seq    uint64
	last   *Snapshot
	subs   map[int]chan Snapshot
	nextID int
	closed bool
}

func (f *feed) run(done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case <-f.notify:
			f.refresh(done)
		}
	}
}

func (f *feed) refresh(done <-chan struct{}) {
	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	data, err := f.fetch(ctx)
	if err != nil {
		// Subscribers keep the last good snapshot; a failed refresh must
		// not wedge the feed or crash consumers.
		log.Printf("live: refresh failed for %s: %v", f.collection, err)
		return
	}

	select {
	case <-done:
		return
	default:
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return
	}

	f.seq++
	snap := Snapshot{Collection: f.collection, Seq: f.seq, Data: data}
	f.last = &snap

	for _, ch := range f.subs {
		select {
		case ch <- snap:
		default:
			// Slow subscriber: dropping is safe because every snapshot is
			// complete; the next broadcast supersedes this one.
		}
	}
}

func (f *feed) requestRefresh() {
	select {
	case f.notify <- struct{}{}:
	default:
	}
}

func (f *feed) subscribe() *Subscription {
	f.mu.Lock()
	defer f.mu.Unlock()

	ch := make(chan Snapshot, subBufferSize)
	f.nextID++
	id := f.nextID
	f.subs[id] = ch

	if f.last != nil {
		ch <- *f.last
	}

	return &Subscription{C: ch, feed: f, id: id}
}

func (f *feed) unsubscribe(id int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if ch, ok := f.subs[id]; ok {
		delete(f.subs, id)
		close(ch)
	}
}

func (f *feed) latest() (Snapshot, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.last == nil {
		return Snapshot{}, false
	}
	return *f.last, true
}

func (f *feed) close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.closed = true
	for id, ch := range f.subs {
		delete(f.subs, id)
		close(ch)
	}
}
