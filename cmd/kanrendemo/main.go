// This program exercises the core search engine end to end: plain
// unification, disjunction, cut, if-then-else, negation-as-failure,
// and the two worked relational predicates in pkg/demopred.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gitrdm/trailkanren/pkg/demopred"
	"github.com/gitrdm/trailkanren/pkg/kanren"
	"github.com/gitrdm/trailkanren/pkg/listterm"
)

func main() {
	demo := flag.String("demo", "all", "which demo to run: unify, disjunction, cut, ifthenelse, negation, append, sendmoremoney, all")
	flag.Parse()

	demos := map[string]func(){
		"unify":         basicUnification,
		"disjunction":   multipleChoices,
		"cut":           cutPrunesChoices,
		"ifthenelse":    ifThenElseDemo,
		"negation":      negationDemo,
		"append":        appendDemo,
		"sendmoremoney": sendMoreMoneyDemo,
	}

	if *demo == "all" {
		for _, name := range []string{"unify", "disjunction", "cut", "ifthenelse", "negation", "append", "sendmoremoney"} {
			demos[name]()
		}
		return
	}

	run, ok := demos[*demo]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown demo %q\n", *demo)
		os.Exit(1)
	}
	run()
}

func basicUnification() {
	fmt.Println("1. Basic unification:")

	eng := kanren.NewEngine(nil)
	x := kanren.NewVar("x")

	goal := adHocSemiDet(func() bool {
		return kanren.Unify(eng, x, kanren.NewAtom("hello"))
	})

	fmt.Printf("   x = hello => %v (x=%v)\n", kanren.First(eng, goal), x.Dereference())
	fmt.Println()
}

func multipleChoices() {
	fmt.Println("2. Disjunction (choice points):")

	eng := kanren.NewEngine(nil)
	x := kanren.NewVar("x")

	goal := kanren.Disjunction(
		adHocSemiDet(func() bool { return kanren.Unify(eng, x, kanren.NewInteger(1)) }),
		adHocSemiDet(func() bool { return kanren.Unify(eng, x, kanren.NewInteger(2)) }),
		adHocSemiDet(func() bool { return kanren.Unify(eng, x, kanren.NewInteger(3)) }),
	)

	var values []kanren.Term
	kanren.Collect(eng, goal, func(i int) bool {
		values = append(values, x.Dereference())
		return true
	})
	fmt.Printf("   x ∈ {1, 2, 3} => %v\n", values)
	fmt.Println()
}

func cutPrunesChoices() {
	fmt.Println("3. Cut:")

	eng := kanren.NewEngine(nil)
	x := kanren.NewVar("x")

	barrier := kanren.CutBarrier(eng)
	goal := kanren.Conjunction(
		kanren.Disjunction(
			adHocSemiDet(func() bool { return kanren.Unify(eng, x, kanren.NewInteger(1)) }),
			adHocSemiDet(func() bool { return kanren.Unify(eng, x, kanren.NewInteger(2)) }),
		),
		kanren.Cut(eng, barrier),
	)

	n := kanren.CollectAll(eng, goal)
	fmt.Printf("   x ∈ {1, 2} with a cut after the first match => %d solution(s)\n", n)
	fmt.Println()
}

func ifThenElseDemo() {
	fmt.Println("4. If-then-else:")

	eng := kanren.NewEngine(nil)
	x := kanren.NewVar("x")

	cond := adHocSemiDet(func() bool { return kanren.Unify(eng, x, kanren.NewAtom("even")) })
	then := adHocSemiDet(func() bool { return true })
	elseGoal := kanren.NewFail()

	ok := kanren.First(eng, kanren.IfThenElse(eng, cond, then, elseGoal))
	fmt.Printf("   if x=even then ok else fail => %v, x=%v\n", ok, x.Dereference())
	fmt.Println()
}

func negationDemo() {
	fmt.Println("5. Negation as failure:")

	eng := kanren.NewEngine(nil)
	goal := kanren.Not(eng, adHocSemiDet(func() bool {
		return kanren.Unify(eng, kanren.NewAtom("a"), kanren.NewAtom("b"))
	}))

	fmt.Printf("   not(a = b) => %v\n", kanren.First(eng, goal))
	fmt.Println()
}

func appendDemo() {
	fmt.Println("6. append/3 (forward and backward):")

	eng := kanren.NewEngine(nil)
	l3 := kanren.NewVar("l3")

	a := listterm.FromElements(kanren.NewInteger(1), kanren.NewInteger(2))
	b := listterm.FromElements(kanren.NewInteger(3))

	kanren.First(eng, demopred.Append(eng, a, b, l3))
	fmt.Printf("   append([1,2], [3], L3) => L3=%v\n", l3.Dereference())

	eng2 := kanren.NewEngine(nil)
	l1 := kanren.NewVar("l1")
	l2 := kanren.NewVar("l2")
	whole := listterm.FromElements(kanren.NewInteger(1), kanren.NewInteger(2), kanren.NewInteger(3))

	n := kanren.Collect(eng2, demopred.Append(eng2, l1, l2, whole), func(i int) bool {
		fmt.Printf("   split %d: L1=%v L2=%v\n", i, l1.Dereference(), l2.Dereference())
		return true
	})
	fmt.Printf("   %d splits of [1,2,3] found\n", n)
	fmt.Println()
}

func sendMoreMoneyDemo() {
	fmt.Println("7. SEND + MORE = MONEY:")

	eng := kanren.NewEngine(nil)
	vars := demopred.NewSendMoreMoneyVars()

	if !kanren.First(eng, demopred.SendMoreMoney(eng, vars)) {
		fmt.Println("   no solution found")
		return
	}
	d := vars.Digits()
	fmt.Printf("   S=%d E=%d N=%d D=%d M=%d O=%d R=%d Y=%d\n",
		d["S"], d["E"], d["N"], d["D"], d["M"], d["O"], d["R"], d["Y"])
	fmt.Println()
}

// adHocSemiDet wraps a plain closure as a SemiDeterministic predicate,
// for demos that want a one-shot goal without declaring a named type.
func adHocSemiDet(try func() bool) kanren.Predicate {
	return &closureGoal{try: try}
}

type closureGoal struct {
	continuation kanren.Predicate
	try          func() bool
}

func (*closureGoal) Kind() kanren.Kind                       { return kanren.SemiDeterministic }
func (*closureGoal) Initialize()                             {}
func (g *closureGoal) ApplyChoice() bool                     { return g.try() }
func (*closureGoal) MoreChoices() bool                       { return false }
func (g *closureGoal) Continuation() kanren.Predicate        { return g.continuation }
func (g *closureGoal) SetContinuation(next kanren.Predicate) { g.continuation = next }
