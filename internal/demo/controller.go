// Package demo drives the landing page's "try it" widget: it validates the
// profile URL, asks the backend for an email, and types the streamed reply
// into the display through a typewriter.Scheduler.
package demo

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/ziadkadry99/inkwell/internal/page"
	"github.com/ziadkadry99/inkwell/internal/typewriter"
)

// Sender delivers requests to the backend.
type Sender interface {
	Send(ctx context.Context, req GenerateRequest) error
}

// Delays are the per-character typing delays for each kind of text.
type Delays struct {
	Greeting time.Duration
	Booting  time.Duration
	Token    time.Duration
	Notice   time.Duration
}

// DefaultDelays returns the delays used by the landing page.
func DefaultDelays() Delays {
	return Delays{
		Greeting: 20 * time.Millisecond,
		Booting:  40 * time.Millisecond,
		Token:    10 * time.Millisecond,
		Notice:   20 * time.Millisecond,
	}
}

// Trigger is the "try now" control. It is enabled only while the input
// holds a valid profile URL and no stream is running.
type Trigger struct {
	mu      sync.Mutex
	enabled bool
	classes *page.ClassList
}

// NewTrigger returns a disabled trigger.
func NewTrigger() *Trigger {
	return &Trigger{classes: page.NewClassList("bg-disabled")}
}

func (t *Trigger) Enabled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.enabled
}

// Classes returns the class attribute the control should carry.
func (t *Trigger) Classes() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.classes.String()
}

func (t *Trigger) set(enabled bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.enabled = enabled
	if enabled {
		t.classes.Add("bg-orange")
		t.classes.Remove("bg-disabled")
	} else {
		t.classes.Add("bg-disabled")
		t.classes.Remove("bg-orange")
	}
}

// Option configures a Controller.
type Option func(*Controller)

func WithMessages(m Messages) Option {
	return func(c *Controller) { c.messages = m }
}

func WithDelays(d Delays) Option {
	return func(c *Controller) { c.delays = d }
}

func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// Controller reacts to user input and stream messages by driving the display.
type Controller struct {
	sched    *typewriter.Scheduler
	display  typewriter.Sink
	sender   Sender
	trigger  *Trigger
	messages Messages
	delays   Delays
	logger   *log.Logger

	mu    sync.Mutex
	input string
	ended chan struct{}
}

// NewController returns a Controller typing into display.
func NewController(sched *typewriter.Scheduler, display typewriter.Sink, sender Sender, opts ...Option) *Controller {
	c := &Controller{
		sched:    sched,
		display:  display,
		sender:   sender,
		trigger:  NewTrigger(),
		messages: DefaultMessages(),
		delays:   DefaultDelays(),
		logger:   log.Default(),
		ended:    make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Trigger returns the try control's state.
func (c *Controller) Trigger() *Trigger { return c.trigger }

// Ended receives once each time a stream finishes or fails.
func (c *Controller) Ended() <-chan struct{} { return c.ended }

// Greet types the welcome text.
func (c *Controller) Greet() {
	c.sched.Type(c.messages.Greeting, c.display, true, c.delays.Greeting)
}

// InputChanged records the input field's value and gates the trigger on it.
func (c *Controller) InputChanged(value string) {
	c.mu.Lock()
	c.input = value
	c.mu.Unlock()
	c.trigger.set(MatchProfileURL(value))
}

// Submit sends a generation request for value. Invalid values are rejected
// with a *FormatError before anything is sent.
func (c *Controller) Submit(ctx context.Context, value string) error {
	c.mu.Lock()
	c.input = value
	c.mu.Unlock()

	profileURL, err := ValidateProfileURL(value)
	if err != nil {
		return err
	}

	// The boot text is queued before sending so the first token, which may
	// arrive while Send is still returning, clears it rather than the reverse.
	c.clear()
	c.sched.Type(c.messages.Booting, c.display, true, c.delays.Booting)

	req := GenerateRequest{Action: ActionGenerateChat, ProfileURL: profileURL}
	if err := c.sender.Send(ctx, req); err != nil {
		c.showError(err.Error())
		return fmt.Errorf("sending generate request: %w", err)
	}
	c.logger.Printf("demo: sent generate request for %s", profileURL)
	return nil
}

// HandleMessage decodes a raw stream message and applies it. Messages that
// are not valid envelopes are logged and dropped.
func (c *Controller) HandleMessage(raw []byte) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		c.logger.Printf("demo: decoding stream message: %v", err)
		return
	}
	if env.Data == nil {
		c.logger.Printf("demo: stream message without data: %s", raw)
		return
	}
	c.HandleEvent(*env.Data)
}

// HandleEvent applies one stream event.
func (c *Controller) HandleEvent(ev Event) {
	if ev.Type == EventError {
		c.logger.Printf("demo: stream error: %s", ev.ErrorMessage)
		c.showError(ev.ErrorMessage)
		c.trigger.set(true)
		c.signalEnd()
		return
	}

	if ev.StartsStream() {
		c.clear()
		c.trigger.set(false)
	}

	switch ev.Type {
	case EventEnd:
		c.trigger.set(true)
		c.signalEnd()
	case EventToken:
		c.sched.Type(ev.GeneratedToken, c.display, true, c.delays.Token)
	}
}

// Closed tells the user the connection is gone for good.
func (c *Controller) Closed() {
	c.logger.Printf("demo: connection closed")
	c.sched.Type(c.messages.IdleTimeout, c.display, true, c.delays.Notice)
}

func (c *Controller) showError(detail string) {
	c.clear()

	c.mu.Lock()
	input := strings.TrimSpace(c.input)
	c.mu.Unlock()

	c.sched.Type(fmt.Sprintf(c.messages.ErrorPreamble, input), c.display, true, c.delays.Notice)
	if detail != "" {
		c.sched.Type("\n\n"+detail, c.display, true, c.delays.Notice)
	}
}

// clear stops whatever is typing and empties the display.
func (c *Controller) clear() {
	if err := c.sched.CancelAndClear(c.display); err != nil {
		c.logger.Printf("demo: clearing display: %v", err)
	}
}

func (c *Controller) signalEnd() {
	select {
	case c.ended <- struct{}{}:
	default:
	}
}
