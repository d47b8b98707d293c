// Package demopred collects a couple of worked relational predicates
// built on top of the core engine: list append (runnable forward or
// backward) and the SEND+MORE=MONEY cryptarithmetic puzzle.
package demopred

import (
	"github.com/gitrdm/trailkanren/pkg/kanren"
	"github.com/gitrdm/trailkanren/pkg/listterm"
)

// Append builds the goal for append(l1, l2, l3): l1 ++ l2 == l3. Like
// the textbook Prolog definition, it has two clauses tried in order —
// l1 is empty and l2 unifies directly with l3, or l1 is a cons cell
// and the recursive call handles the rest — and runs in any direction:
// forward (l1 and l2 bound, l3 a fresh variable), backward (l3 bound,
// l1/l2 fresh), or fully nondeterministic (only l3 bound, enumerating
// every split).
func Append(eng *kanren.Engine, l1, l2, l3 kanren.Term) kanren.Predicate {
	return kanren.Disjunction(
		appendBaseCase(eng, l1, l2, l3),
		appendRecursiveCase(eng, l1, l2, l3),
	)
}

// appendBaseCase is append([], L2, L2).
func appendBaseCase(eng *kanren.Engine, l1, l2, l3 kanren.Term) kanren.Predicate {
	return &appendBase{eng: eng, l1: l1, l2: l2, l3: l3}
}

type appendBase struct {
	base
	eng        *kanren.Engine
	l1, l2, l3 kanren.Term
}

func (a *appendBase) ApplyChoice() bool {
	return kanren.Unify(a.eng, a.l1, listterm.Empty) && kanren.Unify(a.eng, a.l2, a.l3)
}

// appendRecursiveCase is append([H|T], L2, [H|L4]) :- append(T, L2, L4).
// It is somewhat wasteful in always allocating H, T, and L4 even when
// the caller's lists are already fully bound — trimming that is
// possible but not worth the complexity here.
func appendRecursiveCase(eng *kanren.Engine, l1, l2, l3 kanren.Term) kanren.Predicate {
	return &appendRecursive{eng: eng, l1: l1, l2: l2, l3: l3}
}

type appendRecursive struct {
	base
	eng        *kanren.Engine
	l1, l2, l3 kanren.Term
}

func (a *appendRecursive) ApplyChoice() bool {
	h := kanren.NewVar("h")
	t := kanren.NewVar("t")
	l4 := kanren.NewVar("l4")

	if !kanren.Unify(a.eng, a.l1, listterm.FromOpenElements(h, t)) {
		return false
	}
	if !kanren.Unify(a.eng, a.l3, listterm.FromOpenElements(h, l4)) {
		return false
	}

	recur := Append(a.eng, t, a.l2, l4)
	kanren.LastInChain(recur).SetContinuation(a.continuation)
	a.SetContinuation(recur)
	return true
}

// base supplies the Kind/Initialize/MoreChoices boilerplate both
// append clauses share: each is semi-deterministic (at most one
// success, the recursion providing further nondeterminism downstream).
type base struct {
	continuation kanren.Predicate
}

func (b *base) Kind() kanren.Kind                     { return kanren.SemiDeterministic }
func (b *base) Initialize()                           {}
func (b *base) MoreChoices() bool                     { return false }
func (b *base) Continuation() kanren.Predicate        { return b.continuation }
func (b *base) SetContinuation(next kanren.Predicate) { b.continuation = next }
