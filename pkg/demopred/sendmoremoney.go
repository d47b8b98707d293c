package demopred

import "github.com/gitrdm/trailkanren/pkg/kanren"

// PuzzleVar is a digit variable with a range and a distinctness set: a
// value only binds if it falls in [lower, upper] and isn't already
// bound to one of the other variables sharing this PuzzleVar's
// distinctness set. The range/distinctness check happens before the
// engine's own unifier is asked to do anything, so a rejected bind
// never touches the trail.
type PuzzleVar struct {
	Var      *kanren.Var
	lower    int
	upper    int
	distinct []*PuzzleVar
}

// NewPuzzleVar creates a digit variable ranging over [lower, upper].
func NewPuzzleVar(name string, lower, upper int) *PuzzleVar {
	return &PuzzleVar{Var: kanren.NewVar(name), lower: lower, upper: upper}
}

// SetDistinct records the other variables this one must differ from
// once bound. It is set after construction since the full distinctness
// set (every puzzle variable) isn't known until all of them exist.
func (p *PuzzleVar) SetDistinct(others []*PuzzleVar) { p.distinct = others }

func (p *PuzzleVar) boundValue() (int, bool) {
	if v, ok := p.Var.Dereference().(kanren.Integer); ok {
		return int(v), true
	}
	return 0, false
}

func (p *PuzzleVar) isUsed(value int) bool {
	for _, d := range p.distinct {
		if d == p {
			continue
		}
		if v, ok := d.boundValue(); ok && v == value {
			return true
		}
	}
	return false
}

// Choices lists the still-available digits for this variable: every
// value in range that no variable in its distinctness set has already
// claimed.
func (p *PuzzleVar) Choices() []int {
	var choices []int
	for v := p.lower; v <= p.upper; v++ {
		if !p.isUsed(v) {
			choices = append(choices, v)
		}
	}
	return choices
}

// TryBind attempts to commit this variable to value, failing without
// touching the trail if value is out of range or already taken.
func (p *PuzzleVar) TryBind(eng *kanren.Engine, value int) bool {
	if value < p.lower || value > p.upper || p.isUsed(value) {
		return false
	}
	return kanren.Unify(eng, p.Var, kanren.NewInteger(int64(value)))
}

var solvedMarker = kanren.NewAtom("solved")

// ColumnSumConstraint models one column of the addition: the digits in
// lhs sum (plus nothing else) to rhs + 10*carryOut, where carryOut
// becomes the carry into the next column left. It tracks its own
// solved-state in a plain Var bound to solvedMarker once the column is
// fully determined, so repeated calls to TrySolve after that are O(1);
// backtracking that unbinds any of lhs/rhs/carryOut automatically
// unbinds solved too, since that bind is on the same trail.
type ColumnSumConstraint struct {
	lhs      []*PuzzleVar
	rhs      *PuzzleVar
	carryOut *PuzzleVar
	solved   *kanren.Var
}

// NewColumnSumConstraint builds the constraint lhs... + 10*0 = rhs +
// 10*carryOut (i.e., sum(lhs) = rhs + 10*carryOut).
func NewColumnSumConstraint(lhs []*PuzzleVar, rhs, carryOut *PuzzleVar) *ColumnSumConstraint {
	return &ColumnSumConstraint{lhs: lhs, rhs: rhs, carryOut: carryOut, solved: kanren.NewVar("solved")}
}

// TrySolve attempts to propagate this column's constraint given the
// current bindings. It reports ok=false if the column's digits can
// never be consistent (the caller should fail and backtrack), and
// progress=true if it bound something new this call.
func (c *ColumnSumConstraint) TrySolve(eng *kanren.Engine) (progress bool, ok bool) {
	if _, stillVar := c.solved.Dereference().(*kanren.Var); !stillVar {
		return false, true
	}

	sum := 0
	unboundCount := 0
	var unbound *PuzzleVar
	for _, v := range c.lhs {
		if val, bound := v.boundValue(); bound {
			sum += val
		} else {
			unboundCount++
			unbound = v
		}
	}

	carryVal, carryBound := c.carryOut.boundValue()
	rhsVal, rhsBound := c.rhs.boundValue()

	switch unboundCount {
	case 0:
		if !carryBound || !rhsBound {
			progress = true
		}
		if !c.carryOut.TryBind(eng, sum/10) {
			return progress, false
		}
		if !c.rhs.TryBind(eng, sum%10) {
			return progress, false
		}
		kanren.Unify(eng, c.solved, solvedMarker)
		return progress, true

	case 1:
		if !carryBound || !rhsBound {
			return false, true
		}
		value := rhsVal + 10*carryVal - sum
		if value < 0 || value > 9 {
			return false, false
		}
		if !unbound.TryBind(eng, value) {
			return false, false
		}
		kanren.Unify(eng, c.solved, solvedMarker)
		return true, true

	default:
		return false, true
	}
}

// AllConstraints runs every column constraint to a fixed point,
// interleaved with forcing any variable down to a single remaining
// choice: keep going while anything changed, fail the instant a
// constraint or an empty choice set says this branch can't work.
type AllConstraints struct {
	constraints []*ColumnSumConstraint
	vars        []*PuzzleVar
}

// NewAllConstraints bundles the puzzle's column constraints and the
// full list of puzzle variables (used to notice forced singletons).
func NewAllConstraints(vars []*PuzzleVar, constraints ...*ColumnSumConstraint) *AllConstraints {
	return &AllConstraints{constraints: constraints, vars: vars}
}

// TrySolve reports whether the current partial assignment is still
// consistent, propagating as much as it can along the way.
func (a *AllConstraints) TrySolve(eng *kanren.Engine) bool {
	progress := true
	for progress {
		progress = false
		for _, c := range a.constraints {
			p, ok := c.TrySolve(eng)
			if !ok {
				return false
			}
			progress = progress || p
		}
		for _, v := range a.vars {
			if _, stillVar := v.Var.Dereference().(*kanren.Var); !stillVar {
				continue
			}
			choices := v.Choices()
			if len(choices) == 0 {
				return false
			}
			if len(choices) == 1 {
				if !v.TryBind(eng, choices[0]) {
					return false
				}
				progress = true
			}
		}
	}
	return true
}

// chooseDigitGoal nondeterministically tries each of a variable's
// remaining choices, re-running the constraint propagation after each
// tentative bind and backing out (via the engine's trail) any choice
// that turns out inconsistent before trying the next.
type chooseDigitGoal struct {
	continuation kanren.Predicate
	eng          *kanren.Engine
	v            *PuzzleVar
	constraints  *AllConstraints
	choices      []int
	next         int
}

func (*chooseDigitGoal) Kind() kanren.Kind { return kanren.Nondeterministic }

func (g *chooseDigitGoal) Initialize() {}

func (g *chooseDigitGoal) MoreChoices() bool { return g.next < len(g.choices) }

func (g *chooseDigitGoal) ApplyChoice() bool {
	for g.next < len(g.choices) {
		value := g.choices[g.next]
		g.next++
		height := g.eng.TrailHeight()
		if g.v.TryBind(g.eng, value) && g.constraints.TrySolve(g.eng) {
			return true
		}
		g.eng.Unwind(height)
	}
	return false
}

func (g *chooseDigitGoal) Continuation() kanren.Predicate        { return g.continuation }
func (g *chooseDigitGoal) SetContinuation(next kanren.Predicate) { g.continuation = next }

// SearchBody returns the LoopBodyFactory that drives the puzzle to a
// solution: at each iteration it picks the first still-unbound variable
// in vars and returns a chooseDigitGoal for it, or reports no more
// iterations once every variable is bound.
func SearchBody(eng *kanren.Engine, vars []*PuzzleVar, constraints *AllConstraints) kanren.LoopBodyFactory {
	return func(i int) (kanren.Predicate, bool) {
		var next *PuzzleVar
		for _, v := range vars {
			if _, stillVar := v.Var.Dereference().(*kanren.Var); stillVar {
				next = v
				break
			}
		}
		if next == nil {
			return nil, false
		}
		return &chooseDigitGoal{eng: eng, v: next, constraints: constraints, choices: next.Choices()}, true
	}
}

// SendMoreMoneyVars are the eight puzzle variables in SEND+MORE=MONEY,
// constructed with their ranges (S and M can't be 0, the rest can) and
// wired to a shared distinctness set.
type SendMoreMoneyVars struct {
	S, E, N, D, M, O, R, Y *PuzzleVar
}

// NewSendMoreMoneyVars builds the eight digit variables for the puzzle.
func NewSendMoreMoneyVars() *SendMoreMoneyVars {
	vars := &SendMoreMoneyVars{
		S: NewPuzzleVar("S", 1, 9),
		E: NewPuzzleVar("E", 0, 9),
		N: NewPuzzleVar("N", 0, 9),
		D: NewPuzzleVar("D", 0, 9),
		M: NewPuzzleVar("M", 1, 9),
		O: NewPuzzleVar("O", 0, 9),
		R: NewPuzzleVar("R", 0, 9),
		Y: NewPuzzleVar("Y", 0, 9),
	}
	all := vars.slice()
	for _, v := range all {
		v.SetDistinct(all)
	}
	return vars
}

func (v *SendMoreMoneyVars) slice() []*PuzzleVar {
	return []*PuzzleVar{v.S, v.E, v.N, v.D, v.M, v.O, v.R, v.Y}
}

// SendMoreMoney builds the complete search goal for the puzzle: the
// column constraints for
//
//	  S E N D
//	+ M O R E
//	---------
//	M O N E Y
//
// followed by a Loop that assigns the remaining digits one at a time.
func SendMoreMoney(eng *kanren.Engine, vars *SendMoreMoneyVars) kanren.Predicate {
	c1 := NewPuzzleVar("c1", 0, 1)
	c2 := NewPuzzleVar("c2", 0, 1)
	c3 := NewPuzzleVar("c3", 0, 1)

	constraints := NewAllConstraints(
		append(vars.slice(), c1, c2, c3),
		NewColumnSumConstraint([]*PuzzleVar{vars.D, vars.E}, vars.Y, c1),
		NewColumnSumConstraint([]*PuzzleVar{vars.N, vars.R, c1}, vars.E, c2),
		NewColumnSumConstraint([]*PuzzleVar{vars.E, vars.O, c2}, vars.N, c3),
		NewColumnSumConstraint([]*PuzzleVar{vars.S, vars.M, c3}, vars.O, vars.M),
	)

	return solverGoal(eng, constraints, append(vars.slice(), c1, c2, c3))
}

// solverGoal wraps kanren.Loop with this puzzle's body factory, first
// checking the constraints are consistent before iterating so an
// impossible puzzle fails immediately rather than after a wasted pass
// through the loop.
func solverGoal(eng *kanren.Engine, constraints *AllConstraints, vars []*PuzzleVar) kanren.Predicate {
	return kanren.Conjunction(
		&checkConsistentGoal{eng: eng, constraints: constraints},
		kanren.Loop(eng, SearchBody(eng, vars, constraints)),
	)
}

type checkConsistentGoal struct {
	continuation kanren.Predicate
	eng          *kanren.Engine
	constraints  *AllConstraints
}

func (*checkConsistentGoal) Kind() kanren.Kind { return kanren.SemiDeterministic }
func (*checkConsistentGoal) Initialize()       {}
func (g *checkConsistentGoal) ApplyChoice() bool {
	return g.constraints.TrySolve(g.eng)
}
func (*checkConsistentGoal) MoreChoices() bool                       { return false }
func (g *checkConsistentGoal) Continuation() kanren.Predicate        { return g.continuation }
func (g *checkConsistentGoal) SetContinuation(next kanren.Predicate) { g.continuation = next }

// Digits renders vars.S..Y as their currently-dereferenced digit
// values, or -1 for any that are still unbound — useful for printing a
// partial or complete solution.
func (v *SendMoreMoneyVars) Digits() map[string]int {
	named := map[string]*PuzzleVar{
		"S": v.S, "E": v.E, "N": v.N, "D": v.D,
		"M": v.M, "O": v.O, "R": v.R, "Y": v.Y,
	}
	result := make(map[string]int, len(named))
	for letter, pv := range named {
		val, bound := pv.boundValue()
		if !bound {
			val = -1
		}
		result[letter] = val
	}
	return result
}
