package kanren

import "fmt"

// ExampleUnify shows binding a variable and then backtracking over it
// by hand, without any engine driving a choice point.
func ExampleUnify() {
	eng := NewEngine(nil)
	x := NewVar("x")

	ok := Unify(eng, x, NewAtom("hello"))
	fmt.Println(ok, x.Dereference())

	eng.Unwind(0)
	_, stillVar := x.Dereference().(*Var)
	fmt.Println(stillVar)

	// Output:
	// true hello
	// true
}

// ExampleDisjunction drives a three-way choice to exhaustion, printing
// each solution's binding for x in turn.
func ExampleDisjunction() {
	eng := NewEngine(nil)
	x := NewVar("x")

	goal := Disjunction(
		unify(eng, x, NewAtom("red")),
		unify(eng, x, NewAtom("green")),
		unify(eng, x, NewAtom("blue")),
	)

	Collect(eng, goal, func(i int) bool {
		fmt.Println(x.Dereference())
		return true
	})

	// Output:
	// red
	// green
	// blue
}
