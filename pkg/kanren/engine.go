package kanren

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Engine drives a predicate chain to its successive solutions. It owns
// the trail and choice stack for one search and is not safe for
// concurrent use by more than one goroutine at a time — the driver is
// a single sequential backtracking loop, and nothing in this package's
// contract (ApplyChoice mutating shared trail state) would survive
// concurrent callers.
type Engine struct {
	trail   *Trail
	stack   *ChoiceStack
	goal    Predicate
	started bool
	log     *logrus.Logger
	// Trace turns on per-step debug logging of binds and backtracks.
	// It defaults on when KANREN_TRACE=1 is set in the environment, and
	// can also be set directly before calling Run/Next.
	Trace bool
}

// NewEngine returns an Engine ready to search goal's solutions. goal may
// be a single predicate or the head of a chain built by Conjunction or
// the other combinators.
func NewEngine(goal Predicate) *Engine {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.DebugLevel)
	eng := &Engine{
		trail: newTrail(),
		stack: newChoiceStack(),
		goal:  goal,
		log:   log,
	}
	if os.Getenv("KANREN_TRACE") == "1" {
		eng.Trace = true
	}
	return eng
}

// TrailUpdate trails v's current payload as its prior value and then
// overwrites the payload with next. Combinators
// use this to mutate an UpdatableVar's backing state in a way that
// backtracking can undo.
func (eng *Engine) TrailUpdate(v *UpdatableVar, next Term) {
	eng.trail.push(v, v.value)
	v.Bind(next)
}

// ChoiceDepth returns the current height of the choice stack. Cut
// captures this before entering a goal and truncates back to it later.
func (eng *Engine) ChoiceDepth() int { return eng.stack.depth() }

// TruncateChoices discards every choice frame above depth, without
// touching the trail. Used by cut once its own frame's enclosing goals
// have already been accounted for by the caller.
func (eng *Engine) TruncateChoices(depth int) { eng.stack.truncate(depth) }

// TrailHeight returns the current height of the trail.
func (eng *Engine) TrailHeight() int { return eng.trail.height() }

// Unwind undoes every binding trailed since h.
func (eng *Engine) Unwind(h int) { eng.trail.unwindTo(h) }

func (eng *Engine) trace(format string, args ...interface{}) {
	if eng.Trace {
		eng.log.WithField("component", "kanren").Debugf(format, args...)
	}
}

// Next runs the search forward until it reaches a success (returns
// true) or exhausts every choice (returns false). Calling Next again
// after a success resumes by backtracking into the most recent choice
// frame in search of the next solution — the same convention a
// generator's "give me another" call would follow.
func (eng *Engine) Next() bool {
	if eng.goal == nil {
		return false
	}

	var cur Predicate
	if eng.started {
		cur = nil
	} else {
		cur = eng.goal
		eng.started = true
	}

	for {
		if cur == nil {
			if eng.stack.depth() == 0 {
				return false
			}
			frame := eng.stack.top()
			eng.trail.unwindTo(frame.trailDepth)
			eng.trace("backtrack into choice frame at depth %d", eng.stack.depth()-1)
			if !frame.predicate.MoreChoices() {
				eng.stack.pop()
				continue
			}
			if !frame.predicate.ApplyChoice() {
				continue
			}
			cur = frame.predicate.Continuation()
			if cur == nil {
				return true
			}
			continue
		}

		switch cur.Kind() {
		case Nondeterministic:
			depth := eng.trail.height()
			eng.stack.push(cur, depth)
			cur.Initialize()
			if !cur.ApplyChoice() {
				cur = nil
				continue
			}
			cur = cur.Continuation()

		case SemiDeterministic:
			cur.Initialize()
			if !cur.ApplyChoice() {
				cur = nil
				continue
			}
			cur = cur.Continuation()

		case Deterministic:
			cur.Initialize()
			cur.ApplyChoice()
			cur = cur.Continuation()

		default:
			return false
		}

		if cur == nil {
			return true
		}
	}
}

// attemptOnce runs goal to its first solution using a choice stack
// scoped to this call. On success it leaves goal's bindings in place
// and reports true. On failure it unwinds back to the trail height it
// started at and reports false. Once is built directly on it, and
// IfThenElse uses it to test its condition: unlike probe, a success's
// bindings are meant to stay visible to whatever runs next.
func (eng *Engine) attemptOnce(goal Predicate) bool {
	height := eng.trail.height()

	savedStack, savedGoal, savedStarted := eng.stack, eng.goal, eng.started
	eng.stack = newChoiceStack()
	eng.goal = goal
	eng.started = false

	found := eng.Next()

	eng.stack, eng.goal, eng.started = savedStack, savedGoal, savedStarted
	if !found {
		eng.trail.unwindTo(height)
	}
	return found
}

// Run drives goal to its first solution, retrying choice points as
// needed, and reports whether one was found. With unbindAfter set, it
// additionally discards every choice frame goal created and unwinds the
// trail to its height at entry before returning, so no binding goal
// made — succeeding or not — survives the call. With unbindAfter
// false, a success leaves goal's bindings and live choice frames in
// place exactly as First does.
func (eng *Engine) Run(goal Predicate, unbindAfter bool) bool {
	height := eng.trail.height()
	saved := swapGoal(eng, goal)
	found := eng.Next()
	if unbindAfter {
		eng.stack = newChoiceStack()
		eng.trail.unwindTo(height)
		restoreGoal(eng, saved)
		return found
	}
	if !found {
		restoreGoal(eng, saved)
	}
	return found
}

// Solve runs goal to its first solution and reports whether one was
// found. It is a convenience wrapper around NewEngine+Next for callers
// that only want one answer.
func Solve(goal Predicate) bool {
	return NewEngine(goal).Next()
}

// probe runs goal to its first solution using a choice stack scoped to
// just this call, then unwinds every binding goal made regardless of
// the outcome, leaving eng exactly as it found it apart from the
// report of whether a solution existed. Not and NotNot both build on
// this: they test a goal's satisfiability without ever letting its
// bindings escape into the surrounding search.
func (eng *Engine) probe(goal Predicate) bool {
	height := eng.trail.height()

	savedStack, savedGoal, savedStarted := eng.stack, eng.goal, eng.started
	eng.stack = newChoiceStack()
	eng.goal = goal
	eng.started = false

	found := eng.Next()

	eng.stack, eng.goal, eng.started = savedStack, savedGoal, savedStarted
	eng.trail.unwindTo(height)
	return found
}
