package listterm

import (
	"strings"
	"testing"

	"github.com/gitrdm/trailkanren/pkg/kanren"
	"github.com/stretchr/testify/require"
)

func TestUnifyProperLists(t *testing.T) {
	eng := kanren.NewEngine(nil)
	x := kanren.NewVar("x")

	a := FromElements(kanren.NewInteger(1), x, kanren.NewInteger(3))
	b := FromElements(kanren.NewInteger(1), kanren.NewInteger(2), kanren.NewInteger(3))

	require.True(t, kanren.Unify(eng, a, b))
	require.Equal(t, kanren.Integer(2), x.Dereference())
}

func TestUnifyOpenListAgainstProperList(t *testing.T) {
	eng := kanren.NewEngine(nil)
	rest := kanren.NewVar("rest")

	open := FromOpenElements(kanren.NewInteger(1), kanren.NewInteger(2), rest)
	closed := FromElements(kanren.NewInteger(1), kanren.NewInteger(2), kanren.NewInteger(3), kanren.NewInteger(4))

	require.True(t, kanren.Unify(eng, open, closed))

	tail, ok := rest.Dereference().(*List)
	require.True(t, ok)
	require.Equal(t, "[3, 4]", tail.String())
}

func TestUnifyFailsOnDifferingHead(t *testing.T) {
	eng := kanren.NewEngine(nil)

	a := FromElements(kanren.NewInteger(1))
	b := FromElements(kanren.NewInteger(2))

	require.False(t, kanren.Unify(eng, a, b))
}

func TestString(t *testing.T) {
	lst := FromElements(kanren.NewAtom("a"), kanren.NewAtom("b"))
	require.Equal(t, "[a, b]", lst.String())
}

func TestStringOpenList(t *testing.T) {
	v := kanren.NewVar("t")
	lst := FromOpenElements(kanren.NewAtom("a"), v)
	require.True(t, strings.HasPrefix(lst.String(), "[a|_t"))
}
