package page

import "strings"

// HeaderScrollThreshold is the scroll offset, in pixels, past which the
// header is raised.
const HeaderScrollThreshold = 10

// revealMargin is how far, in pixels, an element must be inside the
// viewport before it is revealed.
const revealMargin = 50

var raisedHeaderClasses = []string{"shadow-lg", "dark:shadow-shadow-light", "bg-white", "dark:bg-dark"}

// Header is the sticky page header.
type Header struct {
	Classes *ClassList
}

// NewHeader returns a header in its resting state.
func NewHeader() *Header {
	return &Header{Classes: NewClassList()}
}

// OnScroll raises the header above the threshold and lowers it below. At
// exactly the threshold the header keeps whatever state it had.
func (h *Header) OnScroll(scrollTop float64) {
	if scrollTop > HeaderScrollThreshold && !h.Classes.Contains("shadow-lg") {
		h.Classes.Add(raisedHeaderClasses...)
	}
	if scrollTop < HeaderScrollThreshold {
		h.Classes.Remove(raisedHeaderClasses...)
	}
}

// Raised reports whether the header currently casts a shadow.
func (h *Header) Raised() bool {
	return h.Classes.Contains("shadow-lg")
}

// NavLink is an in-page navigation anchor.
type NavLink struct {
	Href    string
	Classes *ClassList
}

// Fragment returns the section id the link points at.
func (l *NavLink) Fragment() string {
	_, id, _ := strings.Cut(l.Href, "#")
	return id
}

// HighlightNav marks the link of the last section whose top has crossed the
// middle of the viewport. sectionTops maps section ids to their offsets;
// links pointing at unknown sections are skipped.
func HighlightNav(links []*NavLink, sectionTops map[string]float64, scrollTop, viewportHeight float64) {
	for _, link := range links {
		top, ok := sectionTops[link.Fragment()]
		if !ok {
			continue
		}
		if scrollTop+viewportHeight/2 > top {
			for _, other := range links {
				other.Classes.Remove("text-blue")
			}
			link.Classes.Add("text-blue")
		}
	}
}

// revealAnimations maps marker classes to the animation they trigger, in the
// order they are applied.
var revealAnimations = []struct {
	marker, animation string
}{
	{"fade-up", "animate-fade-up"},
	{"fade-left", "animate-fade-left"},
	{"fade-right", "animate-fade-right"},
}

// Element is a page element that may animate into view.
type Element struct {
	Top     float64
	Classes *ClassList
}

// Reveal starts the entrance animation of every marked element that has
// scrolled far enough into view. Each animation is applied once. It returns
// the number of animations started.
func Reveal(elements []*Element, scrollTop, viewportHeight float64) int {
	started := 0
	for _, ra := range revealAnimations {
		for _, el := range elements {
			if !el.Classes.Contains(ra.marker) || el.Classes.Contains(ra.animation) {
				continue
			}
			if scrollTop+viewportHeight-revealMargin > el.Top {
				el.Classes.Remove("opacity-0")
				el.Classes.Add(ra.animation, "animate-once", "animate-duration-[1000ms]")
				started++
			}
		}
	}
	return started
}
