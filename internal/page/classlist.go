// Package page models the landing page's reactions to scroll, click and
// pointer events as plain state transitions over element class lists.
package page

import (
	"slices"
	"strings"
)

// ClassList is an ordered set of CSS class names.
type ClassList struct {
	names []string
}

// NewClassList returns a ClassList holding the given classes, in order,
// without duplicates.
func NewClassList(names ...string) *ClassList {
	c := &ClassList{}
	c.Add(names...)
	return c
}

// ParseClassList splits a class attribute value.
func ParseClassList(attr string) *ClassList {
	return NewClassList(strings.Fields(attr)...)
}

// Add appends any of names not already present.
func (c *ClassList) Add(names ...string) {
	for _, n := range names {
		if n != "" && !c.Contains(n) {
			c.names = append(c.names, n)
		}
	}
}

// Remove drops names that are present.
func (c *ClassList) Remove(names ...string) {
	c.names = slices.DeleteFunc(c.names, func(n string) bool {
		return slices.Contains(names, n)
	})
}

// Toggle removes name if present, adds it otherwise, and reports whether it
// is present afterwards.
func (c *ClassList) Toggle(name string) bool {
	if c.Contains(name) {
		c.Remove(name)
		return false
	}
	c.Add(name)
	return true
}

// ToggleAll toggles every name in turn.
func (c *ClassList) ToggleAll(names ...string) {
	for _, n := range names {
		c.Toggle(n)
	}
}

func (c *ClassList) Contains(name string) bool {
	return slices.Contains(c.names, name)
}

// Names returns a copy of the classes in order.
func (c *ClassList) Names() []string {
	return slices.Clone(c.names)
}

func (c *ClassList) String() string {
	return strings.Join(c.names, " ")
}
