package kanren

// Disjunction returns a single Nondeterministic predicate that tries
// each of alternatives in turn, backtracking into the next one whenever
// the engine asks for another choice. Each alternative keeps whatever
// continuation it already carries, so Disjunction(a, b) where a and b
// are themselves conjunction chains still runs each chain to its own
// end before the engine considers the result a solution.
func Disjunction(alternatives ...Predicate) Predicate {
	return &disjunctionGoal{alternatives: alternatives}
}

type disjunctionGoal struct {
	basePredicate
	alternatives  []Predicate
	next          int
	after         Predicate
	afterCaptured bool
}

func (*disjunctionGoal) Kind() Kind { return Nondeterministic }

func (d *disjunctionGoal) Initialize() { d.next = 0 }

func (d *disjunctionGoal) ApplyChoice() bool {
	if !d.afterCaptured {
		d.after = d.continuation
		d.afterCaptured = true
	}
	if d.next >= len(d.alternatives) {
		return false
	}
	chosen := d.alternatives[d.next]
	d.next++
	LastInChain(chosen).SetContinuation(d.after)
	d.SetContinuation(chosen)
	return true
}

func (d *disjunctionGoal) MoreChoices() bool {
	return d.next < len(d.alternatives)
}
