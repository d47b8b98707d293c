// Package listterm is a worked example of the engine's user-extension
// hook: a Prolog-style cons cell, unifying element-wise with another
// cons cell via UnifyWith rather than through any built-in shape the
// core package already knows.
package listterm

import (
	"strings"

	"github.com/gitrdm/trailkanren/pkg/kanren"
)

// Empty is the shared atom used as the canonical empty-list tail,
// matching the convention that "[]" both terminates a proper list and
// is itself a valid (zero-length) list.
var Empty = kanren.NewAtom("[]")

// List is the cons of a head and a tail, where the tail is itself
// either another List or some other term (typically Empty, or an
// unbound variable for an open list). Lists are immutable once built;
// what changes during search is only what their head/tail variables
// dereference to.
type List struct {
	Head kanren.Term
	Tail kanren.Term
}

// New conses head onto tail.
func New(head, tail kanren.Term) *List {
	return &List{Head: head, Tail: tail}
}

// FromElements builds a proper list terminated by Empty.
func FromElements(elements ...kanren.Term) kanren.Term {
	var tail kanren.Term = Empty
	for i := len(elements) - 1; i >= 0; i-- {
		tail = New(elements[i], tail)
	}
	return tail
}

// FromOpenElements builds a list whose final tail is whatever the last
// element of elements already is (typically an unbound variable),
// rather than Empty — the "open list" idiom used to unify a known
// prefix against a partially-known list.
func FromOpenElements(elements ...kanren.Term) kanren.Term {
	if len(elements) < 2 {
		panic("listterm: FromOpenElements requires at least a head and a tail")
	}
	tail := elements[len(elements)-1]
	lst := New(elements[len(elements)-2], tail)
	for i := len(elements) - 3; i >= 0; i-- {
		lst = New(elements[i], lst)
	}
	return lst
}

func (l *List) Dereference() kanren.Term    { return l }
func (l *List) Bind(other kanren.Term) bool { return false }
func (l *List) Reset(old kanren.Term)       {}

// Equal reports structural equality of the head and tail slots, each
// dereferenced before being compared.
func (l *List) Equal(other kanren.Term) bool {
	o, ok := other.(*List)
	if !ok {
		return false
	}
	return l.Head.Dereference().Equal(o.Head.Dereference()) &&
		l.Tail.Dereference().Equal(o.Tail.Dereference())
}

// Less orders two lists head-first, then by tail; anything that is not
// itself a List sorts by the user-defined-term fallback rank.
func (l *List) Less(other kanren.Term) bool {
	o, ok := other.(*List)
	if !ok {
		return false
	}
	lh, oh := l.Head.Dereference(), o.Head.Dereference()
	if lh.Less(oh) {
		return true
	}
	if oh.Less(lh) {
		return false
	}
	return l.Tail.Dereference().Less(o.Tail.Dereference())
}

// UnifyWith unifies with another List element-wise (head with head,
// tail with tail); unification with a variable on the other side is
// already handled by the engine before UnifyWith is ever called, so
// this only needs to handle the List-with-List case.
func (l *List) UnifyWith(eng *kanren.Engine, other kanren.Term) bool {
	o, ok := other.(*List)
	if !ok {
		return false
	}
	return kanren.Unify(eng, l.Head, o.Head) && kanren.Unify(eng, l.Tail, o.Tail)
}

func (l *List) String() string {
	var b strings.Builder
	b.WriteString("[")
	b.WriteString(l.Head.Dereference().String())

	tail := l.Tail.Dereference()
	for {
		next, ok := tail.(*List)
		if !ok {
			break
		}
		b.WriteString(", ")
		b.WriteString(next.Head.Dereference().String())
		tail = next.Tail.Dereference()
	}

	if a, ok := tail.(*kanren.Atom); ok && a.Name == "[]" {
		b.WriteString("]")
		return b.String()
	}
	b.WriteString("|")
	b.WriteString(tail.String())
	b.WriteString("]")
	return b.String()
}
