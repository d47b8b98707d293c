package kanren

// CutBarrier captures the engine's current choice depth. A caller that
// is about to enter a goal whose body may contain a Cut records the
// barrier first, then passes it to Cut when building that body, so Cut
// knows exactly how far back to prune.
func CutBarrier(eng *Engine) int {
	return eng.ChoiceDepth()
}

// cutGoal is deterministic: it always succeeds, and its one effect is
// to discard every choice frame pushed since barrier was captured,
// committing the search to whatever choices were already made up to
// that point and preventing backtracking from reconsidering them.
type cutGoal struct {
	basePredicate
	eng     *Engine
	barrier int
}

// Cut returns a predicate that, when it runs, truncates eng's choice
// stack back to barrier (as returned by an earlier call to CutBarrier),
// pruning any choice points created since. It never touches the trail —
// bindings already made stay made, only the ability to reconsider them
// is removed.
func Cut(eng *Engine, barrier int) Predicate {
	return &cutGoal{eng: eng, barrier: barrier}
}

func (*cutGoal) Kind() Kind  { return Deterministic }
func (*cutGoal) Initialize() {}

func (c *cutGoal) ApplyChoice() bool {
	c.eng.TruncateChoices(c.barrier)
	return true
}

func (*cutGoal) MoreChoices() bool { return false }
