package kanren

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// unifyGoal is a minimal SemiDeterministic predicate used throughout
// these tests to build small goal chains without needing a full
// relational predicate library.
type unifyGoal struct {
	basePredicate
	eng  *Engine
	a, b Term
}

func unify(eng *Engine, a, b Term) Predicate {
	return &unifyGoal{eng: eng, a: a, b: b}
}

func (*unifyGoal) Kind() Kind  { return SemiDeterministic }
func (*unifyGoal) Initialize() {}
func (u *unifyGoal) ApplyChoice() bool {
	return Unify(u.eng, u.a, u.b)
}
func (*unifyGoal) MoreChoices() bool { return false }

// memberGoal nondeterministically unifies x with each element of a
// fixed slice, one per choice — the stock example of a Nondeterministic
// predicate with more than one success.
type memberGoal struct {
	basePredicate
	eng     *Engine
	x       Term
	options []Term
	next    int
}

func member(eng *Engine, x Term, options ...Term) Predicate {
	return &memberGoal{eng: eng, x: x, options: options}
}

func (*memberGoal) Kind() Kind          { return Nondeterministic }
func (m *memberGoal) Initialize()       { m.next = 0 }
func (m *memberGoal) MoreChoices() bool { return m.next < len(m.options) }
func (m *memberGoal) ApplyChoice() bool {
	for m.next < len(m.options) {
		opt := m.options[m.next]
		m.next++
		if Unify(m.eng, m.x, opt) {
			return true
		}
	}
	return false
}

func TestConjunctionRunsGoalsInSequence(t *testing.T) {
	eng := NewEngine(nil)
	x := NewVar("x")
	y := NewVar("y")

	goal := Conjunction(
		unify(eng, x, NewInteger(1)),
		unify(eng, y, NewInteger(2)),
	)

	require.True(t, First(eng, goal))
	require.Equal(t, Integer(1), x.Dereference())
	require.Equal(t, Integer(2), y.Dereference())
}

func TestConjunctionShortCircuitsOnFailure(t *testing.T) {
	eng := NewEngine(nil)
	x := NewVar("x")

	goal := Conjunction(
		unify(eng, x, NewInteger(1)),
		unify(eng, x, NewInteger(2)),
	)

	require.False(t, First(eng, goal))
}

func TestDisjunctionEnumeratesAlternatives(t *testing.T) {
	eng := NewEngine(nil)
	x := NewVar("x")

	goal := Disjunction(
		unify(eng, x, NewInteger(1)),
		unify(eng, x, NewInteger(2)),
		unify(eng, x, NewInteger(3)),
	)

	var seen []Integer
	CollectAll(eng, Conjunction(goal, recordEach(&seen, x)))
	require.Equal(t, []Integer{1, 2, 3}, seen)
}

// recordEach is a deterministic predicate that appends x's current
// dereferenced value to out every time it runs, used by tests to
// observe each solution a Collect pass visits.
func recordEach(out *[]Integer, x Term) Predicate {
	return &recorder{out: out, x: x}
}

type recorder struct {
	basePredicate
	out *[]Integer
	x   Term
}

func (*recorder) Kind() Kind  { return Deterministic }
func (*recorder) Initialize() {}
func (r *recorder) ApplyChoice() bool {
	*r.out = append(*r.out, r.x.Dereference().(Integer))
	return true
}
func (*recorder) MoreChoices() bool { return false }

func TestMemberNondeterminism(t *testing.T) {
	eng := NewEngine(nil)
	x := NewVar("x")
	goal := member(eng, x, NewAtom("a"), NewAtom("b"))

	n := CollectAll(eng, goal)
	require.Equal(t, 2, n)
}

func TestCutPrunesChoicePoints(t *testing.T) {
	eng := NewEngine(nil)
	x := NewVar("x")

	barrier := CutBarrier(eng)
	goal := Conjunction(
		member(eng, x, NewInteger(1), NewInteger(2), NewInteger(3)),
		Cut(eng, barrier),
	)

	n := CollectAll(eng, goal)
	require.Equal(t, 1, n, "cut must prevent backtracking into member's remaining choices")
}

func TestOnceCommitsToFirstSolution(t *testing.T) {
	eng := NewEngine(nil)
	x := NewVar("x")
	goal := Once(eng, member(eng, x, NewInteger(1), NewInteger(2)))

	require.Equal(t, 1, CollectAll(eng, goal))
}

func TestOnceAfterNondeterministicSiblingKeepsSiblingChoices(t *testing.T) {
	eng := NewEngine(nil)
	x := NewVar("x")
	y := NewVar("y")

	goal := Conjunction(
		member(eng, y, NewAtom("a"), NewAtom("b")),
		Once(eng, member(eng, x, NewInteger(1), NewInteger(2))),
	)

	var seen []string
	n := Collect(eng, goal, func(i int) bool {
		seen = append(seen, y.Dereference().String()+"="+x.Dereference().String())
		return true
	})

	require.Equal(t, 2, n, "once must prune only its own goal's choices, not the preceding sibling's")
	require.Equal(t, []string{"a=1", "b=1"}, seen,
		"each of the sibling's solutions pairs with the once goal's first solution only")
}

func TestNotSucceedsOnlyWhenGoalFails(t *testing.T) {
	eng := NewEngine(nil)

	require.True(t, First(eng, Not(eng, unify(eng, NewAtom("a"), NewAtom("b")))),
		"goal can never unify, so its negation must succeed")
	require.False(t, First(eng, Not(eng, unify(eng, NewAtom("a"), NewAtom("a")))),
		"goal can unify, so its negation must fail")
}

func TestNotLeavesNoBindingsBehind(t *testing.T) {
	eng := NewEngine(nil)
	x := NewVar("x")
	height := eng.TrailHeight()

	require.False(t, First(eng, Not(eng, unify(eng, x, NewInteger(1)))))
	require.Equal(t, height, eng.TrailHeight(), "Not must undo any bindings its goal made")
	_, stillVar := x.Dereference().(*Var)
	require.True(t, stillVar)
}

func TestNotNotTestsSatisfiabilityWithoutBinding(t *testing.T) {
	eng := NewEngine(nil)
	x := NewVar("x")
	height := eng.TrailHeight()

	require.True(t, First(eng, NotNot(eng, unify(eng, x, NewInteger(1)))))
	require.Equal(t, height, eng.TrailHeight(), "NotNot must not leave goal's bindings in place")
	_, stillVar := x.Dereference().(*Var)
	require.True(t, stillVar)
}

func TestIfThenElseTakesThenBranchWhenCondSucceeds(t *testing.T) {
	eng := NewEngine(nil)
	x := NewVar("x")
	cond := unify(eng, x, NewInteger(1))
	then := unify(eng, NewAtom("ok"), NewAtom("ok"))
	elseGoal := NewFail()

	require.True(t, First(eng, IfThenElse(eng, cond, then, elseGoal)))
	require.Equal(t, Integer(1), x.Dereference(), "then branch must see cond's bindings")
}

func TestIfThenElseTakesElseBranchWhenCondFails(t *testing.T) {
	eng := NewEngine(nil)
	x := NewVar("x")
	cond := unify(eng, NewAtom("a"), NewAtom("b"))
	then := NewFail()
	elseGoal := unify(eng, x, NewInteger(9))

	require.True(t, First(eng, IfThenElse(eng, cond, then, elseGoal)))
	require.Equal(t, Integer(9), x.Dereference())
}

func TestLoopRunsBoundedIterations(t *testing.T) {
	eng := NewEngine(nil)
	var total []int

	goal := Loop(eng, func(i int) (Predicate, bool) {
		if i >= 3 {
			return nil, false
		}
		return &appendIntGoal{out: &total, v: i}, true
	})

	require.True(t, First(eng, goal))
	require.Equal(t, []int{0, 1, 2}, total)
}

type appendIntGoal struct {
	basePredicate
	out *[]int
	v   int
}

func (*appendIntGoal) Kind() Kind  { return Deterministic }
func (*appendIntGoal) Initialize() {}
func (a *appendIntGoal) ApplyChoice() bool {
	*a.out = append(*a.out, a.v)
	return true
}
func (*appendIntGoal) MoreChoices() bool { return false }

func TestRunUnbindAfterRestoresEngineState(t *testing.T) {
	eng := NewEngine(nil)
	x := NewVar("x")
	height := eng.TrailHeight()
	depth := eng.ChoiceDepth()

	require.True(t, eng.Run(member(eng, x, NewInteger(1), NewInteger(2)), true))
	require.Equal(t, height, eng.TrailHeight(), "unbindAfter must leave the trail at its pre-call height")
	require.Equal(t, depth, eng.ChoiceDepth(), "unbindAfter must discard every frame the goal created")
	_, stillVar := x.Dereference().(*Var)
	require.True(t, stillVar, "no binding the goal made may survive")
}

func TestRunWithoutUnbindKeepsFirstSolutionBindings(t *testing.T) {
	eng := NewEngine(nil)
	x := NewVar("x")

	require.True(t, eng.Run(unify(eng, x, NewInteger(7)), false))
	require.Equal(t, Integer(7), x.Dereference())
}

func TestCollectVisitsEverySolutionUntilExhausted(t *testing.T) {
	eng := NewEngine(nil)
	x := NewVar("x")
	goal := member(eng, x, NewInteger(1), NewInteger(2), NewInteger(3))

	var seen []Integer
	n := Collect(eng, goal, func(i int) bool {
		seen = append(seen, x.Dereference().(Integer))
		return true
	})

	require.Equal(t, 3, n)
	require.Equal(t, []Integer{1, 2, 3}, seen)
}

func TestCollectStopsEarlyWhenVisitReturnsFalse(t *testing.T) {
	eng := NewEngine(nil)
	x := NewVar("x")
	goal := member(eng, x, NewInteger(1), NewInteger(2), NewInteger(3))

	n := Collect(eng, goal, func(i int) bool { return i < 1 })
	require.Equal(t, 2, n)
}
