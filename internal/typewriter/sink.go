package typewriter

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"unicode/utf8"
)

// Sink is a mutable piece of text the scheduler types into.
type Sink interface {
	Text() string
	SetText(text string) error
}

// Buffer is an in-memory Sink safe for concurrent use.
type Buffer struct {
	mu   sync.Mutex
	text string
}

// NewBuffer returns a Buffer holding the given initial content.
func NewBuffer(initial string) *Buffer {
	return &Buffer{text: initial}
}

func (b *Buffer) Text() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.text
}

func (b *Buffer) SetText(text string) error {
	b.mu.Lock()
	b.text = text
	b.mu.Unlock()
	return nil
}

// TerminalSink mirrors its content onto a terminal. Each update writes only
// the difference from the previous content: growth is written as-is, shrinking
// on the current line is erased with backspaces, and clearing, or any shrink
// that crosses a line break, starts over on a fresh line.
type TerminalSink struct {
	mu   sync.Mutex
	w    io.Writer
	text string
}

// NewTerminalSink returns a TerminalSink writing to w.
func NewTerminalSink(w io.Writer) *TerminalSink {
	return &TerminalSink{w: w}
}

func (t *TerminalSink) Text() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.text
}

func (t *TerminalSink) SetText(text string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if text == t.text {
		return nil
	}

	var out string
	if text == "" {
		out = "\n"
	} else if strings.HasPrefix(text, t.text) {
		out = text[len(t.text):]
	} else {
		prefix := commonPrefix(t.text, text)
		removed := t.text[len(prefix):]
		if strings.Contains(removed, "\n") {
			out = "\n" + text
		} else {
			out = strings.Repeat("\b \b", utf8.RuneCountInString(removed)) + text[len(prefix):]
		}
	}

	if _, err := io.WriteString(t.w, out); err != nil {
		return fmt.Errorf("writing to terminal: %w", err)
	}
	t.text = text
	return nil
}

// commonPrefix returns the longest common prefix of a and b, cut on a rune
// boundary.
func commonPrefix(a, b string) string {
	n := 0
	for n < len(a) && n < len(b) {
		ra, sa := utf8.DecodeRuneInString(a[n:])
		rb, sb := utf8.DecodeRuneInString(b[n:])
		if ra != rb || sa != sb {
			break
		}
		n += sa
	}
	return a[:n]
}
