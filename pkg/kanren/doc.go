// Package kanren provides an embeddable search core for logic-programming
// interpreters: logical variables with trailed bindings, structural
// unification, and a nondeterministic execution engine that drives
// user-supplied predicates through choice points, backtracking, cut,
// negation-as-failure, if-then-else, and bounded iteration.
//
// Client code composes predicates whose bodies are written in Go; this
// package supplies the control substrate that makes them backtrackable.
// The three load-bearing pieces are the Trail (an append-only log of
// variable mutations, undone on backtrack), the ChoiceStack (frames
// recording a live nondeterministic predicate and the trail height at
// entry), and the Engine driver that ties them together with a
// continuation-passing calling convention: a predicate that succeeds
// sets its Continuation field to the next predicate to run rather than
// returning into it.
//
// This package has no clause database, no parser, no occurs check, and
// no parallelism — it is strictly single-threaded and assumes a single
// Engine drives a single search at a time.
package kanren
