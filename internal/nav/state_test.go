package nav

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveStatePriority(t *testing.T) {
	n, err := New(Options{Pages: []Page{
		{ID: "a", Name: "A", Type: TypeInfo},
		{ID: "b", Name: "B", Type: TypeDetails},
		{ID: "c", Name: "C", Type: TypeOther},
		{ID: "d", Name: "D", Type: TypeEnding, Disabled: true},
	}})
	require.NoError(t, err)
	page := func(id string) Page {
		p, ok := n.Page(id)
		require.True(t, ok)
		return p
	}

	require.Equal(t, StateSelected, n.ResolveState(page("a")))
	require.Equal(t, StateDefault, n.ResolveState(page("b")))

	n.Focus("b")
	require.Equal(t, StateSelected, n.ResolveState(page("b")))
	n.Hover("b")
	require.Equal(t, StateSelected, n.ResolveState(page("b")), "selection outranks hover")
	n.Blur()
	require.Equal(t, StateHovered, n.ResolveState(page("b")))

	n.DragStart("b")
	require.Equal(t, StateDefault, n.ResolveState(page("b")), "dragged page loses hover")
	n.DragEnd()

	n.Hover("d")
	require.Equal(t, StateDisabled, n.ResolveState(page("d")))

	n.Hover("c")
	require.Equal(t, StateHovered, n.ResolveState(page("c")))
	n.Unhover()
	require.Equal(t, StateDefault, n.ResolveState(page("c")))
}
