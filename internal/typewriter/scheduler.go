// Package typewriter types text into sinks one character at a time.
//
// A Scheduler serialises every typing request it is given, across all
// callers and targets: requests run strictly in the order they were
// enqueued and only one of them is ever animating. The in-flight request can
// be cancelled between ticks; characters it already wrote stay where they are.
package typewriter

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	// DefaultDelay is the pause between characters when a request does not
	// set one.
	DefaultDelay = 50 * time.Millisecond

	// DefaultCursor is rendered after the last typed character while a
	// request is in progress.
	DefaultCursor = "_"
)

// Request asks for Text to be typed into Target. In append mode each
// character is added to whatever Target already holds; otherwise Target is
// cleared first and the text is revealed from the left. A Delay of zero or
// less uses the scheduler's default.
type Request struct {
	Text   string
	Target Sink
	Append bool
	Delay  time.Duration
}

type job struct {
	id   string
	req  Request
	done chan struct{}
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithDefaultDelay sets the delay used by requests that do not specify one.
func WithDefaultDelay(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.defaultDelay = d
		}
	}
}

// WithCursor sets the cursor rendered while typing. An empty cursor disables it.
func WithCursor(cursor string) Option {
	return func(s *Scheduler) { s.cursor = cursor }
}

// WithLogger sets the logger used to report failed requests.
func WithLogger(l *log.Logger) Option {
	return func(s *Scheduler) {
		if l != nil {
			s.logger = l
		}
	}
}

// Scheduler is a FIFO queue of typing requests with at most one request
// animating at a time.
type Scheduler struct {
	// mu guards the queue and run state. tickMu is held for the whole of a
	// tick's read-modify-write of the target, so a cancel never lands in the
	// middle of a character.
	mu              sync.Mutex
	tickMu          sync.Mutex
	queue           []*job
	running         bool
	cancelRequested bool
	idle            chan struct{}

	closed    chan struct{}
	closeOnce sync.Once

	defaultDelay time.Duration
	cursor       string
	logger       *log.Logger
}

// NewScheduler returns an idle Scheduler.
func NewScheduler(opts ...Option) *Scheduler {
	s := &Scheduler{
		idle:         make(chan struct{}),
		closed:       make(chan struct{}),
		defaultDelay: DefaultDelay,
		cursor:       DefaultCursor,
		logger:       log.Default(),
	}
	close(s.idle)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Type enqueues text for target. See Enqueue.
func (s *Scheduler) Type(text string, target Sink, appendMode bool, delay time.Duration) <-chan struct{} {
	return s.Enqueue(Request{Text: text, Target: target, Append: appendMode, Delay: delay})
}

// Enqueue adds req to the tail of the queue and starts it straight away if
// nothing is typing. It never blocks. The returned channel is closed once
// the request has finished, been cancelled, failed, or been discarded by
// Close; callers that do not need to wait can ignore it.
func (s *Scheduler) Enqueue(req Request) <-chan struct{} {
	j := &job{id: uuid.New().String(), req: req, done: make(chan struct{})}

	s.mu.Lock()
	defer s.mu.Unlock()

	select {
	case <-s.closed:
		close(j.done)
		return j.done
	default:
	}

	if s.running {
		s.queue = append(s.queue, j)
		return j.done
	}

	// Nothing is typing: j becomes the active request right away so that a
	// CancelCurrent issued after this call applies to it.
	s.running = true
	s.idle = make(chan struct{})
	s.cancelRequested = false
	go s.drain(j)
	return j.done
}

// CancelCurrent stops the request that is typing at its next tick. Requests
// still waiting in the queue are unaffected and reset the flag when they start.
func (s *Scheduler) CancelCurrent() {
	s.tickMu.Lock()
	s.mu.Lock()
	s.cancelRequested = true
	s.mu.Unlock()
	s.tickMu.Unlock()
}

// CancelAndClear cancels the in-flight request and empties target without
// any tick running in between.
func (s *Scheduler) CancelAndClear(target Sink) error {
	s.tickMu.Lock()
	defer s.tickMu.Unlock()

	s.mu.Lock()
	s.cancelRequested = true
	s.mu.Unlock()

	if err := target.SetText(""); err != nil {
		return fmt.Errorf("clearing target: %w", err)
	}
	return nil
}

// Busy reports whether a request is typing or about to start.
func (s *Scheduler) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Pending returns the number of requests waiting behind the current one.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

// Wait blocks until the queue has drained or ctx is done.
func (s *Scheduler) Wait(ctx context.Context) error {
	s.mu.Lock()
	idle := s.idle
	s.mu.Unlock()

	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops the scheduler. The in-flight request stops at its next tick
// and queued requests are discarded.
func (s *Scheduler) Close() {
	s.closeOnce.Do(func() {
		close(s.closed)

		s.mu.Lock()
		pending := s.queue
		s.queue = nil
		s.mu.Unlock()

		for _, j := range pending {
			close(j.done)
		}
	})
}

// drain runs j and then every queued request until the queue is empty.
// Whatever way a request ends, the next one is started.
func (s *Scheduler) drain(j *job) {
	for j != nil {
		s.logger.Printf("typewriter: request %s started: %d characters, append=%t", j.id, utf8.RuneCountInString(j.req.Text), j.req.Append)
		if err := s.run(j); err != nil {
			s.logger.Printf("typewriter: request %s failed: %v", j.id, err)
		}
		close(j.done)
		j = s.next()
	}
}

// next pops the head of the queue and resets the cancel flag for it, or marks
// the scheduler idle when the queue is empty.
func (s *Scheduler) next() *job {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.queue) == 0 {
		s.running = false
		close(s.idle)
		return nil
	}
	j := s.queue[0]
	s.queue[0] = nil
	s.queue = s.queue[1:]
	s.cancelRequested = false
	return j
}

func (s *Scheduler) cancelled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancelRequested
}

func (s *Scheduler) run(j *job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while typing: %v", r)
		}
	}()

	req := j.req
	if req.Target == nil {
		return fmt.Errorf("request has no target")
	}
	delay := req.Delay
	if delay <= 0 {
		delay = s.defaultDelay
	}

	a := &animation{
		s:      s,
		text:   []rune(req.Text),
		target: req.Target,
		append: req.Append,
	}
	if !req.Append {
		if err := a.clear(); err != nil {
			return err
		}
	}
	for step := len(a.text); step >= 0; step-- {
		if s.cancelled() {
			s.logger.Printf("typewriter: request %s cancelled", j.id)
			return a.hideCursor()
		}
		if !s.sleep(delay) {
			s.logger.Printf("typewriter: request %s stopped by close", j.id)
			return a.hideCursor()
		}
		stop, err := a.tick(step)
		if err != nil {
			return err
		}
		if stop {
			s.logger.Printf("typewriter: request %s cancelled", j.id)
			return nil
		}
	}
	return nil
}

// sleep waits for d and reports false if the scheduler was closed meanwhile.
func (s *Scheduler) sleep(d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-s.closed:
		return false
	}
}

// animation is the per-request character loop state.
type animation struct {
	s           *Scheduler
	text        []rune
	target      Sink
	append      bool
	cursorShown bool
}

// tick writes the character at position len(text)-step. It reports stop when
// the request was cancelled during the preceding wait.
func (a *animation) tick(step int) (stop bool, err error) {
	a.s.tickMu.Lock()
	defer a.s.tickMu.Unlock()

	content := a.stripCursor(a.target.Text())
	if a.s.cancelled() {
		if err := a.target.SetText(content); err != nil {
			return true, fmt.Errorf("removing cursor: %w", err)
		}
		return true, nil
	}

	pointer := len(a.text) - step
	if a.append {
		if pointer < len(a.text) {
			content += string(a.text[pointer])
		}
	} else {
		content = string(a.text[:pointer])
	}
	if step > 0 && a.s.cursor != "" {
		content += a.s.cursor
		a.cursorShown = true
	}

	if err := a.target.SetText(content); err != nil {
		return true, fmt.Errorf("writing character %d: %w", pointer, err)
	}
	return false, nil
}

func (a *animation) clear() error {
	a.s.tickMu.Lock()
	defer a.s.tickMu.Unlock()
	if err := a.target.SetText(""); err != nil {
		return fmt.Errorf("clearing target: %w", err)
	}
	return nil
}

func (a *animation) hideCursor() error {
	if !a.cursorShown {
		return nil
	}
	a.s.tickMu.Lock()
	defer a.s.tickMu.Unlock()
	if err := a.target.SetText(a.stripCursor(a.target.Text())); err != nil {
		return fmt.Errorf("removing cursor: %w", err)
	}
	return nil
}

// stripCursor removes a cursor this animation rendered, if it is still there.
func (a *animation) stripCursor(content string) string {
	if !a.cursorShown {
		return content
	}
	a.cursorShown = false
	return strings.TrimSuffix(content, a.s.cursor)
}
