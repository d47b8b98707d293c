package kanren

// Unify attempts to make a and b equal, trailing every binding it makes
// on eng's trail so the caller can undo it later. It follows the seven
// steps of the unification algorithm directly:
//
//  1. dereference both sides
//  2. identical references succeed trivially
//  3. structurally-equal terms succeed without binding anything
//  4. an unbound variable on either side binds to the other's
//     dereferenced form
//  5. atoms, integers, and floats that reach here differ, so fail
//  6. flat lists must match length, then unify element-wise
//  7. anything else is delegated to the UnifyWith extension hook
//
// A failed element-wise unification does not undo the bindings it made
// along the way; that is the enclosing choice frame's job when the
// engine backtracks.
func Unify(eng *Engine, a, b Term) bool {
	da := a.Dereference()
	db := b.Dereference()

	if da == db {
		return true
	}

	if da.Equal(db) {
		return true
	}

	if av, ok := da.(*Var); ok {
		eng.trail.push(av, av.value)
		eng.trace("bind %s -> %s", av, db)
		return av.Bind(db)
	}
	if bv, ok := db.(*Var); ok {
		eng.trail.push(bv, bv.value)
		eng.trace("bind %s -> %s", bv, da)
		return bv.Bind(da)
	}

	// An UpdatableVar dereferences to itself even when it holds a value,
	// so it reaches this point whether bound or not; unifying it is an
	// overwrite of its payload, with the prior payload trailed.
	if av, ok := da.(*UpdatableVar); ok {
		eng.trail.push(av, av.value)
		eng.trace("update %s -> %s", av, db)
		return av.Bind(db)
	}
	if bv, ok := db.(*UpdatableVar); ok {
		eng.trail.push(bv, bv.value)
		eng.trace("update %s -> %s", bv, da)
		return bv.Bind(da)
	}

	switch da.(type) {
	case Integer, Float:
		return false
	}
	if _, ok := da.(*Atom); ok {
		return false
	}

	if la, ok := da.(*FlatList); ok {
		lb, ok := db.(*FlatList)
		if !ok || len(la.Elements) != len(lb.Elements) {
			return false
		}
		for i := range la.Elements {
			if !Unify(eng, la.Elements[i], lb.Elements[i]) {
				return false
			}
		}
		return true
	}

	return da.UnifyWith(eng, db)
}
