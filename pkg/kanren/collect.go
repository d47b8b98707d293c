package kanren

// Collect drives goal to completion, calling visit after each solution
// with the solution index (zero-based) and collecting results until
// either goal is exhausted or visit returns false to stop early. It
// returns the number of solutions visited.
//
// Collect is built directly on Engine.Next rather than as a Predicate
// itself: gathering solutions is something a caller does to a whole
// goal, not a combinator other goals compose with.
func Collect(eng *Engine, goal Predicate, visit func(i int) bool) int {
	saved := swapGoal(eng, goal)
	defer restoreGoal(eng, saved)

	count := 0
	for eng.Next() {
		if !visit(count) {
			count++
			break
		}
		count++
	}
	return count
}

// CollectAll runs goal to exhaustion and returns how many solutions it
// had, without capturing anything about each one beyond that count —
// useful for tests and callers that only care about cardinality.
func CollectAll(eng *Engine, goal Predicate) int {
	return Collect(eng, goal, func(int) bool { return true })
}

// First runs goal to its first solution and reports whether one
// existed, leaving its bindings in place on success (same contract as
// Solve, but against an existing Engine rather than a fresh one).
func First(eng *Engine, goal Predicate) bool {
	saved := swapGoal(eng, goal)
	ok := eng.Next()
	if !ok {
		restoreGoal(eng, saved)
	}
	return ok
}

type savedGoalState struct {
	stack   *ChoiceStack
	goal    Predicate
	started bool
}

func swapGoal(eng *Engine, goal Predicate) savedGoalState {
	saved := savedGoalState{stack: eng.stack, goal: eng.goal, started: eng.started}
	eng.stack = newChoiceStack()
	eng.goal = goal
	eng.started = false
	return saved
}

func restoreGoal(eng *Engine, saved savedGoalState) {
	eng.stack, eng.goal, eng.started = saved.stack, saved.goal, saved.started
}
