package kanren

// LoopBodyFactory builds the goal to run for iteration i (zero-based).
// It returns ok=false to signal the loop has no more iterations to
// offer, the same way a slice index running past its bound would.
type LoopBodyFactory func(i int) (body Predicate, ok bool)

// loopGoal drives make, in order, one iteration at a time. It is
// Deterministic: it never pushes a choice frame of its own, and any
// nondeterminism a
// body predicate brings stays live on the real choice stack exactly as
// it would for a body spliced in by hand, so a later failure can
// backtrack into an earlier iteration's own choice — not just the most
// recent one. This is why each iteration re-enters the very same
// loopGoal instance rather than constructing a throwaway per-iteration
// copy: the chain is body[0] -> loopGoal -> body[1] -> loopGoal -> ...,
// and the loop only ever has one identity for the driver to resume.
type loopGoal struct {
	basePredicate
	eng     *Engine
	make    LoopBodyFactory
	index   int
	started bool
	outer   Predicate
}

// Loop returns a predicate that, for i = 0, 1, 2, ..., asks make for an
// iteration body and splices it into the continuation chain ahead of
// the loop itself, advancing to the next index each time the loop is
// re-entered, and succeeding (resuming whatever continuation followed
// the loop originally) once make reports no body for the current
// index. Termination is entirely make's responsibility — this is
// bounded iteration, not general nondeterministic repetition.
func Loop(eng *Engine, make LoopBodyFactory) Predicate {
	return &loopGoal{eng: eng, make: make}
}

func (*loopGoal) Kind() Kind { return Deterministic }

// Initialize captures the loop's outer continuation exactly once, the
// first time the loop is entered — every later re-entry (as the tail
// of a spliced-in body's own continuation chain) must leave it alone,
// since by then basePredicate.continuation has been overwritten to
// point at the current iteration's body.
func (l *loopGoal) Initialize() {
	if !l.started {
		l.outer = l.continuation
		l.started = true
	}
}

func (l *loopGoal) ApplyChoice() bool {
	body, ok := l.make(l.index)
	if !ok {
		l.SetContinuation(l.outer)
		return true
	}
	l.index++

	LastInChain(body).SetContinuation(l)
	l.SetContinuation(body)
	return true
}

func (*loopGoal) MoreChoices() bool { return false }
