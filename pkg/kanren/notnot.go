package kanren

// notGoal implements negation-as-failure: it succeeds iff goal has no
// solution, and never lets any of goal's bindings escape, win or lose.
type notGoal struct {
	basePredicate
	eng  *Engine
	goal Predicate
}

// Not returns the negation-as-failure of goal: it succeeds exactly when
// goal cannot be satisfied, and fails when goal can. Either way, any
// bindings goal made while being probed are undone before Not reports
// its own result.
func Not(eng *Engine, goal Predicate) Predicate {
	return &notGoal{eng: eng, goal: goal}
}

func (*notGoal) Kind() Kind  { return SemiDeterministic }
func (*notGoal) Initialize() {}

func (n *notGoal) ApplyChoice() bool {
	return !n.eng.probe(n.goal)
}

func (*notGoal) MoreChoices() bool { return false }

// notNotGoal implements double negation: it succeeds iff goal has a
// solution, but — like Not — never lets goal's bindings escape. It
// differs from Once(goal) in exactly that respect: Once keeps goal's
// first set of bindings, NotNot discards them and only reports that a
// solution existed.
type notNotGoal struct {
	basePredicate
	eng  *Engine
	goal Predicate
}

// NotNot returns a predicate that succeeds iff goal has at least one
// solution, without binding any of goal's variables in the surrounding
// search — useful for testing satisfiability as a guard condition.
func NotNot(eng *Engine, goal Predicate) Predicate {
	return &notNotGoal{eng: eng, goal: goal}
}

func (*notNotGoal) Kind() Kind  { return SemiDeterministic }
func (*notNotGoal) Initialize() {}

func (n *notNotGoal) ApplyChoice() bool {
	return n.eng.probe(n.goal)
}

func (*notNotGoal) MoreChoices() bool { return false }
