package kanren

// ifThenElseGoal tests cond at most once (like Once) and, depending on
// whether it succeeded, continues into then or into elseGoal — keeping
// cond's bindings visible to then, and making sure none of cond's
// partial bindings leak into elseGoal. Its own Kind is Nondeterministic
// purely so the engine gives it a choice frame to decide the branch in;
// once that decision is made the frame is spent, since backtracking
// into a chosen branch's own nondeterminism is handled by whatever
// frame that branch itself pushes further down the chain.
type ifThenElseGoal struct {
	basePredicate
	eng      *Engine
	cond     Predicate
	then     Predicate
	elseGoal Predicate
	decided  bool
}

// IfThenElse returns a predicate equivalent to "if cond succeeds (for
// at least one solution, committed to as with Once), run then;
// otherwise run elseGoal". This is the committing if-then-else of
// Prolog's (Cond -> Then ; Else), not a soft cut: cond is never retried
// for a second solution even if then later fails.
func IfThenElse(eng *Engine, cond, then, elseGoal Predicate) Predicate {
	return &ifThenElseGoal{eng: eng, cond: cond, then: then, elseGoal: elseGoal}
}

func (*ifThenElseGoal) Kind() Kind { return Nondeterministic }

func (g *ifThenElseGoal) Initialize() { g.decided = false }

func (g *ifThenElseGoal) ApplyChoice() bool {
	if g.decided {
		return false
	}
	g.decided = true

	var branch Predicate
	if g.eng.attemptOnce(g.cond) {
		branch = g.then
	} else {
		branch = g.elseGoal
	}
	LastInChain(branch).SetContinuation(g.continuation)
	g.SetContinuation(branch)
	return true
}

func (g *ifThenElseGoal) MoreChoices() bool { return !g.decided }
