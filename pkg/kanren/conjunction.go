package kanren

// Conjunction splices a sequence of goals so that each only runs once
// its predecessor has succeeded, by attaching goal[i+1] onto the tail of
// goal[i]'s continuation chain. Conjunction itself is not a Predicate;
// it is a construction helper, since the combined chain's Kind is
// whatever the first goal's Kind already is — there is nothing extra
// for the engine to drive.
func Conjunction(goals ...Predicate) Predicate {
	if len(goals) == 0 {
		return NewTrue()
	}
	head := goals[0]
	tail := LastInChain(head)
	for _, g := range goals[1:] {
		tail.SetContinuation(g)
		tail = LastInChain(g)
	}
	return head
}

// trueGoal is the deterministic empty conjunct: it always succeeds
// and binds nothing.
type trueGoal struct {
	basePredicate
}

// NewTrue returns a predicate that succeeds exactly once and does
// nothing else, used as Conjunction's identity element and as a
// building block by combinators like IfThenElse.
func NewTrue() Predicate {
	return &trueGoal{}
}

func (*trueGoal) Kind() Kind        { return Deterministic }
func (*trueGoal) Initialize()       {}
func (*trueGoal) ApplyChoice() bool { return true }
func (*trueGoal) MoreChoices() bool { return false }

// failGoal is the predicate that never succeeds.
type failGoal struct {
	basePredicate
}

// NewFail returns a predicate that always fails.
func NewFail() Predicate {
	return &failGoal{}
}

func (*failGoal) Kind() Kind        { return SemiDeterministic }
func (*failGoal) Initialize()       {}
func (*failGoal) ApplyChoice() bool { return false }
func (*failGoal) MoreChoices() bool { return false }
