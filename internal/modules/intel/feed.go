package intel

import (
	"sync"

	"github.com/rs/zerolog"
)

// maxBuffered caps the ring buffer of recent messages.
const maxBuffered = 100

// Feed holds the rolling buffer of simulated intelligence messages and
// fans new batches out to stream subscribers. Refreshes are driven by the
// scheduler; the feed itself never talks to the network.
type Feed struct {
	gen       *Generator
	batchSize int
	log       zerolog.Logger

	mu     sync.RWMutex
	buffer []Message
	subs   map[chan []Message]struct{}
}

// NewFeed creates a feed refreshed in batches of batchSize, pre-seeded
// with the boot sequence.
func NewFeed(gen *Generator, batchSize int, log zerolog.Logger) *Feed {
	f := &Feed{
		gen:       gen,
		batchSize: batchSize,
		log:       log.With().Str("service", "intel_feed").Logger(),
		subs:      make(map[chan []Message]struct{}),
	}
	f.buffer = gen.BootSequence()
	return f
}

// Name implements the scheduler Job interface.
func (f *Feed) Name() string {
	return "intel_feed_refresh"
}

// Run implements the scheduler Job interface: generate one batch and
// publish it.
func (f *Feed) Run() error {
	batch := f.gen.Generate(f.batchSize)

	f.mu.Lock()
	f.buffer = append(f.buffer, batch...)
	if overflow := len(f.buffer) - maxBuffered; overflow > 0 {
		f.buffer = f.buffer[overflow:]
	}
	subs := make([]chan []Message, 0, len(f.subs))
	for ch := range f.subs {
		subs = append(subs, ch)
	}
	f.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- batch:
		default:
			// Slow subscriber, drop the batch for this one.
		}
	}

	f.log.Debug().Int("count", len(batch)).Msg("Intel feed refreshed")
	return nil
}

// Recent returns up to n of the most recent messages, oldest first.
func (f *Feed) Recent(n int) []Message {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if n <= 0 || n > len(f.buffer) {
		n = len(f.buffer)
	}
	out := make([]Message, n)
	copy(out, f.buffer[len(f.buffer)-n:])
	return out
}

// Subscribe registers a channel that receives every new batch.
func (f *Feed) Subscribe() chan []Message {
	ch := make(chan []Message, 4)
	f.mu.Lock()
	f.subs[ch] = struct{}{}
	f.mu.Unlock()
	return ch
}

// Unsubscribe removes a subscriber registered with Subscribe.
func (f *Feed) Unsubscribe(ch chan []Message) {
	f.mu.Lock()
	delete(f.subs, ch)
	f.mu.Unlock()
}
