package kanren

import (
	"fmt"
	"sync/atomic"
)

// varCounter is the process-wide source of variable creation ids. Ids
// must never be reused, even across engines that share terms; a single
// atomic counter shared by every Engine in the process satisfies that
// without requiring callers to thread an allocator through every term
// constructor.
var varCounter int64

func nextVarID() int64 {
	return atomic.AddInt64(&varCounter, 1)
}

// Var is a logical variable: the only term kind Bind accepts. Its value
// slot is either nil (unbound) or another Term. Dereference follows the
// chain of bound variables to the first non-variable or unbound
// variable, without mutating anything along the way.
type Var struct {
	id    int64
	name  string
	value Term
}

// NewVar creates a fresh, unbound variable. name is optional and used
// only for String().
func NewVar(name string) *Var {
	return &Var{id: nextVarID(), name: name}
}

// ID returns the variable's creation id, used by Less to order
// variables by age.
func (v *Var) ID() int64 { return v.id }

func (v *Var) String() string {
	if v.name != "" {
		return fmt.Sprintf("_%s%d", v.name, v.id)
	}
	return fmt.Sprintf("_G%d", v.id)
}

// Dereference walks the chain of bound Vars to the first non-variable
// term, or to the first unbound variable it meets. It never mutates a
// value slot (no path compression), matching the invariant that reads
// must stay undoable by the trail alone.
func (v *Var) Dereference() Term {
	var cur Term = v
	for {
		vv, ok := cur.(*Var)
		if !ok {
			return cur
		}
		if vv.value == nil {
			return vv
		}
		cur = vv.value
	}
}

// Bind records a new binding. Binding a variable to itself (after
// dereferencing) is an accepted no-op.
func (v *Var) Bind(other Term) bool {
	if other == Term(v) {
		return true
	}
	v.value = other
	return true
}

// Reset restores the value slot to old, which is nil for "was unbound".
func (v *Var) Reset(old Term) {
	v.value = old
}

func (v *Var) Equal(other Term) bool {
	ov, ok := other.(*Var)
	return ok && v.id == ov.id
}

func (v *Var) Less(other Term) bool {
	switch o := other.(type) {
	case *Var:
		return v.id < o.id
	case *UpdatableVar:
		// Both flavors of variable share one id space and order by age.
		return v.id < o.id
	default:
		return kindRank(v) < kindRank(other)
	}
}

func (v *Var) UnifyWith(eng *Engine, other Term) bool {
	return false
}

// UpdatableVar is a variable whose Dereference deliberately stops at
// itself, so that a subsequent Bind overwrites its own slot rather than
// the chain continuing through it. It is used to thread per-choice
// state (a running best bound, an accumulator) that must still be
// undoable by the trail: every overwrite is trailed, giving plain LIFO
// undo semantics at the cost of one trail entry per overwrite.
type UpdatableVar struct {
	id    int64
	name  string
	value Term
}

// NewUpdatableVar creates an updatable variable seeded with an initial
// value (which may be nil, meaning "no value yet").
func NewUpdatableVar(name string, initial Term) *UpdatableVar {
	return &UpdatableVar{id: nextVarID(), name: name, value: initial}
}

func (v *UpdatableVar) ID() int64 { return v.id }

func (v *UpdatableVar) String() string {
	if v.name != "" {
		return fmt.Sprintf("_%s%d!", v.name, v.id)
	}
	return fmt.Sprintf("_U%d", v.id)
}

// Dereference stops at the UpdatableVar itself; callers that need its
// current payload use Value(), and a Bind against it overwrites that
// payload rather than chaining through it.
func (v *UpdatableVar) Dereference() Term { return v }

// Value returns the variable's current payload, which may be nil.
func (v *UpdatableVar) Value() Term { return v.value }

// Bind overwrites the payload. The caller (the unifier, or direct host
// code implementing an updatable-assignment idiom) is responsible for
// trailing the prior value first so backtracking restores it.
func (v *UpdatableVar) Bind(other Term) bool {
	v.value = other
	return true
}

func (v *UpdatableVar) Reset(old Term) {
	v.value = old
}

func (v *UpdatableVar) Equal(other Term) bool {
	ov, ok := other.(*UpdatableVar)
	return ok && v.id == ov.id
}

func (v *UpdatableVar) Less(other Term) bool {
	switch o := other.(type) {
	case *UpdatableVar:
		return v.id < o.id
	case *Var:
		return v.id < o.id
	default:
		return kindRank(v) < kindRank(other)
	}
}

func (v *UpdatableVar) UnifyWith(eng *Engine, other Term) bool {
	return false
}
