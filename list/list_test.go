package list_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlds/list"
)

// TestSingly_AppendOrder mirrors the textbook walkthrough: appended
// elements keep arrival order.
func TestSingly_AppendOrder(t *testing.T) {
	l := list.NewSingly[int]()
	l.Append(10)
	l.Append(20)
	l.Append(30)

	require.Equal(t, []int{10, 20, 30}, l.Values())
	require.Equal(t, 3, l.Len())
}

// TestSingly_PrependAndPop covers the O(1) front operations.
func TestSingly_PrependAndPop(t *testing.T) {
	l := list.NewSingly[string]()
	l.Append("b")
	l.Prepend("a")

	v, err := l.PopFront()
	require.NoError(t, err)
	require.Equal(t, "a", v)

	v, err = l.PopFront()
	require.NoError(t, err)
	require.Equal(t, "b", v)

	_, err = l.PopFront()
	require.ErrorIs(t, err, list.ErrEmptyList)
	require.Zero(t, l.Len())
}

// TestSingly_At covers index access and its bounds.
func TestSingly_At(t *testing.T) {
	l := list.NewSingly[int]()
	for _, v := range []int{1, 2, 3} {
		l.Append(v)
	}

	v, err := l.At(1)
	require.NoError(t, err)
	require.Equal(t, 2, v)

	_, err = l.At(-1)
	require.ErrorIs(t, err, list.ErrIndexOutOfRange)
	_, err = l.At(3)
	require.ErrorIs(t, err, list.ErrIndexOutOfRange)
}

// TestSingly_ZeroValue checks the zero value works without NewSingly.
func TestSingly_ZeroValue(t *testing.T) {
	var l list.Singly[int]
	l.Append(1)
	require.Equal(t, []int{1}, l.Values())
}

// TestDoubly_BothEnds exercises append/prepend and both traversal
// directions, mirroring the textbook forward/backward printout.
func TestDoubly_BothEnds(t *testing.T) {
	l := list.NewDoubly[int]()
	l.Append(1)
	l.Append(2)
	l.Prepend(0)

	require.Equal(t, []int{0, 1, 2}, l.Values())
	require.Equal(t, []int{2, 1, 0}, l.ValuesReverse())
	require.Equal(t, 3, l.Len())
}

// TestDoubly_PopBothEnds drains a list from alternating ends and
// verifies link maintenance down to empty.
func TestDoubly_PopBothEnds(t *testing.T) {
	l := list.NewDoubly[int]()
	for _, v := range []int{1, 2, 3, 4} {
		l.Append(v)
	}

	front, err := l.PopFront()
	require.NoError(t, err)
	require.Equal(t, 1, front)

	back, err := l.PopBack()
	require.NoError(t, err)
	require.Equal(t, 4, back)

	require.Equal(t, []int{2, 3}, l.Values())
	require.Equal(t, []int{3, 2}, l.ValuesReverse())

	_, _ = l.PopBack()
	_, _ = l.PopBack()
	_, err = l.PopBack()
	require.ErrorIs(t, err, list.ErrEmptyList)
	_, err = l.PopFront()
	require.ErrorIs(t, err, list.ErrEmptyList)
	require.Zero(t, l.Len())
}

// TestDoubly_SingleElement checks head/tail collapse on the one-element
// boundary for both pop directions.
func TestDoubly_SingleElement(t *testing.T) {
	l := list.NewDoubly[string]()

	l.Append("only")
	v, err := l.PopBack()
	require.NoError(t, err)
	require.Equal(t, "only", v)
	require.Empty(t, l.Values())
	require.Empty(t, l.ValuesReverse())

	l.Prepend("again")
	v, err = l.PopFront()
	require.NoError(t, err)
	require.Equal(t, "again", v)
	require.Zero(t, l.Len())
}
