// Package announce is the live region of a list: a short status message
// such as "Loaded 5 more items" that clears itself after a delay.
package announce

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

const DefaultClearAfter = 3 * time.Second

type Announcer interface {
	Announce(msg string)
}

// Func adapts a plain function to Announcer.
type Func func(msg string)

func (f Func) Announce(msg string) { f(msg) }

// Region holds the current announcement. A new announcement replaces the
// old one and restarts the clear timer. Safe for concurrent use.
type Region struct {
	mu         sync.Mutex
	message    string
	seq        uint64
	clearAfter time.Duration
	logger     *log.Logger
	onChange   func(msg string)
}

type Option func(*Region)

// WithLogger logs every announcement at info level.
func WithLogger(logger *log.Logger) Option {
	return func(r *Region) { r.logger = logger }
}

// OnChange is called, outside the lock, whenever the message changes,
// including when it is cleared.
func OnChange(fn func(msg string)) Option {
	return func(r *Region) { r.onChange = fn }
}

// NewRegion returns a region that clears after clearAfter. A non-positive
// delay keeps messages until the next one.
func NewRegion(clearAfter time.Duration, opts ...Option) *Region {
	r := &Region{clearAfter: clearAfter}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Region) Announce(msg string) {
	r.mu.Lock()
	r.seq++
	seq := r.seq
	r.message = msg
	r.mu.Unlock()

	if r.logger != nil {
		r.logger.Info("announce", "message", msg)
	}
	r.notify(msg)

	if r.clearAfter > 0 {
		time.AfterFunc(r.clearAfter, func() { r.clear(seq) })
	}
}

// clear drops the message only if no newer announcement has replaced it.
func (r *Region) clear(seq uint64) {
	r.mu.Lock()
	if r.seq != seq {
		r.mu.Unlock()
		return
	}
	r.message = ""
	r.mu.Unlock()
	r.notify("")
}

func (r *Region) Clear() {
	r.mu.Lock()
	r.seq++
	r.message = ""
	r.mu.Unlock()
	r.notify("")
}

// Current returns the message on display, or "" when clear.
func (r *Region) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.message
}

func (r *Region) notify(msg string) {
	if r.onChange != nil {
		r.onChange(msg)
	}
}
