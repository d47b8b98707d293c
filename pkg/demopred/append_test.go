package demopred

import (
	"testing"

	"github.com/gitrdm/trailkanren/pkg/kanren"
	"github.com/gitrdm/trailkanren/pkg/listterm"
	"github.com/stretchr/testify/require"
)

func TestAppendForward(t *testing.T) {
	eng := kanren.NewEngine(nil)
	l3 := kanren.NewVar("l3")

	a := listterm.FromElements(kanren.NewInteger(1), kanren.NewInteger(2))
	b := listterm.FromElements(kanren.NewInteger(3))

	require.True(t, kanren.First(eng, Append(eng, a, b, l3)))
	require.Equal(t, "[1, 2, 3]", l3.Dereference().String())
}

func TestAppendBackward(t *testing.T) {
	eng := kanren.NewEngine(nil)
	l1 := kanren.NewVar("l1")
	l2 := kanren.NewVar("l2")

	whole := listterm.FromElements(kanren.NewInteger(1), kanren.NewInteger(2), kanren.NewInteger(3))

	var splits [][2]string
	kanren.Collect(eng, Append(eng, l1, l2, whole), func(i int) bool {
		splits = append(splits, [2]string{l1.Dereference().String(), l2.Dereference().String()})
		return true
	})

	require.Equal(t, 4, len(splits), "append/3 run backward should enumerate every split of a 3-element list")
	require.Equal(t, [2]string{"[]", "[1, 2, 3]"}, splits[0])
	require.Equal(t, [2]string{"[1, 2, 3]", "[]"}, splits[3])
}

func TestAppendFailsWhenThirdArgTooShort(t *testing.T) {
	eng := kanren.NewEngine(nil)
	a := listterm.FromElements(kanren.NewInteger(1), kanren.NewInteger(2))
	b := listterm.FromElements(kanren.NewInteger(3))
	short := listterm.FromElements(kanren.NewInteger(1), kanren.NewInteger(2))

	require.False(t, kanren.First(eng, Append(eng, a, b, short)))
}
