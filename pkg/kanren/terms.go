package kanren

import (
	"fmt"
	"strings"
)

// Integer is an immutable numeric term. Integer and Float compare
// equal only when they share both kind and value, but order against
// each other by numeric value.
type Integer int64

// NewInteger constructs an Integer term.
func NewInteger(v int64) Integer { return Integer(v) }

func (i Integer) Dereference() Term    { return i }
func (i Integer) Bind(other Term) bool { return false }
func (i Integer) Reset(old Term)       {}
func (i Integer) String() string       { return fmt.Sprintf("%d", int64(i)) }

func (i Integer) Equal(other Term) bool {
	o, ok := other.(Integer)
	return ok && i == o
}

func (i Integer) Less(other Term) bool {
	if o, ok := other.(Integer); ok {
		return i < o
	}
	return lessByRank(i, other)
}

func (i Integer) UnifyWith(eng *Engine, other Term) bool { return false }

// Float is an immutable numeric term.
type Float float64

// NewFloat constructs a Float term.
func NewFloat(v float64) Float { return Float(v) }

func (f Float) Dereference() Term    { return f }
func (f Float) Bind(other Term) bool { return false }
func (f Float) Reset(old Term)       {}
func (f Float) String() string       { return fmt.Sprintf("%g", float64(f)) }

func (f Float) Equal(other Term) bool {
	o, ok := other.(Float)
	return ok && f == o
}

func (f Float) Less(other Term) bool {
	if o, ok := other.(Float); ok {
		return f < o
	}
	return lessByRank(f, other)
}

func (f Float) UnifyWith(eng *Engine, other Term) bool { return false }

// Atom is an immutable symbolic constant, identified by name.
type Atom struct {
	Name string
}

// NewAtom constructs an Atom term.
func NewAtom(name string) *Atom { return &Atom{Name: name} }

func (a *Atom) Dereference() Term    { return a }
func (a *Atom) Bind(other Term) bool { return false }
func (a *Atom) Reset(old Term)       {}
func (a *Atom) String() string       { return a.Name }

func (a *Atom) Equal(other Term) bool {
	o, ok := other.(*Atom)
	return ok && a.Name == o.Name
}

func (a *Atom) Less(other Term) bool {
	if o, ok := other.(*Atom); ok {
		return a.Name < o.Name
	}
	return lessByRank(a, other)
}

func (a *Atom) UnifyWith(eng *Engine, other Term) bool { return false }

// FlatList is an ordered, fixed-length sequence of terms. It unifies
// element-wise only with another FlatList of the same length; it never
// unifies with the user-extension hook, since it is itself a built-in
// shape the unifier already knows how to combine.
type FlatList struct {
	Elements []Term
}

// NewFlatList constructs a FlatList term from the given elements. The
// slice is not copied; callers that mutate it after construction are
// responsible for understanding the aliasing.
func NewFlatList(elements ...Term) *FlatList {
	return &FlatList{Elements: elements}
}

func (l *FlatList) Dereference() Term    { return l }
func (l *FlatList) Bind(other Term) bool { return false }
func (l *FlatList) Reset(old Term)       {}

func (l *FlatList) String() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Equal reports structural equality after the caller has already
// dereferenced both sides; each pair of elements is dereferenced before
// being compared.
func (l *FlatList) Equal(other Term) bool {
	o, ok := other.(*FlatList)
	if !ok || len(l.Elements) != len(o.Elements) {
		return false
	}
	for i, e := range l.Elements {
		if !e.Dereference().Equal(o.Elements[i].Dereference()) {
			return false
		}
	}
	return true
}

func (l *FlatList) Less(other Term) bool {
	o, ok := other.(*FlatList)
	if !ok {
		return lessByRank(l, other)
	}
	n := len(l.Elements)
	if len(o.Elements) < n {
		n = len(o.Elements)
	}
	for i := 0; i < n; i++ {
		a, b := l.Elements[i].Dereference(), o.Elements[i].Dereference()
		if a.Less(b) {
			return true
		}
		if b.Less(a) {
			return false
		}
	}
	return len(l.Elements) < len(o.Elements)
}

func (l *FlatList) UnifyWith(eng *Engine, other Term) bool { return false }
