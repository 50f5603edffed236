// Package slider implements the controller behind the image slider widget:
// a cyclic index over a fixed list of slides plus an autoplay timer that
// advances it.
package slider

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/pluqqy/pluqqy-widgets/pkg/models"
)

// DefaultInterval is the autoplay interval used unless WithInterval is given
const DefaultInterval = models.DefaultIntervalMS * time.Millisecond

var (
	// ErrOutOfRange is returned by GoTo for an index outside the deck
	ErrOutOfRange = errors.New("slide index out of range")
	// ErrNoSlides is returned by New for an empty deck
	ErrNoSlides = errors.New("slider needs at least one slide")
)

// Option configures a Controller
type Option func(*Controller)

// WithInterval sets the autoplay interval
func WithInterval(d time.Duration) Option {
	return func(c *Controller) {
		c.interval = d
	}
}

// WithClock replaces the system clock, mostly for tests
func WithClock(clock Clock) Option {
	return func(c *Controller) {
		c.clock = clock
	}
}

// WithOnAdvance registers fn to be called with the new index after every
// autoplay tick. It runs on the clock's goroutine, outside the controller lock.
func WithOnAdvance(fn func(index int)) Option {
	return func(c *Controller) {
		c.onAdvance = fn
	}
}

// WithAutoplay controls whether playback starts in New. It defaults to true.
func WithAutoplay(enabled bool) Option {
	return func(c *Controller) {
		c.autoplay = enabled
	}
}

// Controller holds the slider state. All methods are safe to call while the
// autoplay timer is firing.
type Controller struct {
	mu sync.Mutex

	slides  []models.Slide
	index   int
	playing bool
	closed  bool

	// timer is non-nil iff playing; generation identifies it so ticks from a
	// stopped timer that were already in flight are dropped.
	timer      Timer
	generation uint64

	interval  time.Duration
	clock     Clock
	onAdvance func(int)
	autoplay  bool
}

// New creates a controller at the first slide with autoplay running
func New(slides []models.Slide, opts ...Option) (*Controller, error) {
	if len(slides) == 0 {
		return nil, ErrNoSlides
	}

	c := &Controller{
		slides:   append([]models.Slide(nil), slides...),
		interval: DefaultInterval,
		clock:    SystemClock{},
		autoplay: true,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.interval <= 0 {
		return nil, fmt.Errorf("invalid autoplay interval: %s", c.interval)
	}

	if c.autoplay {
		c.mu.Lock()
		c.startLocked()
		c.mu.Unlock()
	}
	return c, nil
}

// Next advances to the following slide, wrapping to the first
func (c *Controller) Next() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.index = (c.index + 1) % len(c.slides)
}

// Previous moves to the preceding slide, wrapping to the last
func (c *Controller) Previous() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.index = (c.index - 1 + len(c.slides)) % len(c.slides)
}

// GoTo jumps to slide i
func (c *Controller) GoTo(i int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i < 0 || i >= len(c.slides) {
		return fmt.Errorf("%w: %d (have %d slides)", ErrOutOfRange, i, len(c.slides))
	}
	c.index = i
	return nil
}

// TogglePlayback pauses a playing slider or resumes a paused one
func (c *Controller) TogglePlayback() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.playing {
		c.stopLocked()
		return
	}
	c.startLocked()
}

// Reset returns to the first slide and restarts autoplay
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.index = 0
	c.startLocked()
}

// Close stops autoplay for good. Navigation keeps working, but neither
// TogglePlayback nor Reset start a timer afterwards.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()
	c.closed = true
}

// Index returns the current slide index
func (c *Controller) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// Playing reports whether autoplay is active
func (c *Controller) Playing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.playing
}

// Current returns the slide at the current index
func (c *Controller) Current() models.Slide {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.slides[c.index]
}

// Slides returns a copy of the deck
func (c *Controller) Slides() []models.Slide {
	return append([]models.Slide(nil), c.slides...)
}

// Len returns the number of slides
func (c *Controller) Len() int {
	return len(c.slides)
}

// Interval returns the autoplay interval
func (c *Controller) Interval() time.Duration {
	return c.interval
}

// startLocked replaces any running timer with a new one
func (c *Controller) startLocked() {
	c.stopLocked()
	if c.closed {
		return
	}
	c.generation++
	gen := c.generation
	c.timer = c.clock.Every(c.interval, func() { c.tick(gen) })
	c.playing = true
}

func (c *Controller) stopLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.playing = false
}

func (c *Controller) tick(gen uint64) {
	c.mu.Lock()
	if !c.playing || gen != c.generation {
		c.mu.Unlock()
		return
	}
	c.index = (c.index + 1) % len(c.slides)
	index := c.index
	onAdvance := c.onAdvance
	c.mu.Unlock()

	if onAdvance != nil {
		onAdvance(index)
	}
}
