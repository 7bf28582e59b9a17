package nav

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDropMovesDraggedPage(t *testing.T) {
	n, _ := seeded(t)
	require.True(t, n.DragStart("1"))
	n.DragEnter()
	n.DragOver(3)
	require.True(t, n.Drop(3))

	require.Equal(t, []string{"2", "3", "1", "4"}, ids(n))
	require.Empty(t, n.DraggedID())
	_, over := n.DragOverIndex()
	require.False(t, over)
	require.Zero(t, n.DragDepth())
}

func TestDropSlots(t *testing.T) {
	cases := []struct {
		dragged string
		slot    int
		want    []string
	}{
		{"3", 0, []string{"3", "1", "2", "4"}},
		{"3", 1, []string{"1", "3", "2", "4"}},
		{"3", 2, []string{"1", "2", "3", "4"}},
		{"1", 2, []string{"2", "1", "3", "4"}},
		{"1", 4, []string{"2", "3", "4", "1"}},
		{"4", 0, []string{"4", "1", "2", "3"}},
	}
	for _, tc := range cases {
		n, _ := seeded(t)
		require.True(t, n.DragStart(tc.dragged))
		require.True(t, n.Drop(tc.slot))
		require.Equal(t, tc.want, ids(n), "drag %s to slot %d", tc.dragged, tc.slot)
	}
}

func TestDropWithoutDragIsNoop(t *testing.T) {
	n, _ := seeded(t)
	n.DragEnter()
	n.DragEnter()
	require.False(t, n.Drop(0))
	require.Equal(t, []string{"1", "2", "3", "4"}, ids(n))
	require.Zero(t, n.DragDepth())
}

func TestDragEndCancels(t *testing.T) {
	n, _ := seeded(t)
	require.True(t, n.DragStart("3"))
	n.DragEnter()
	n.DragOver(0)
	n.DragEnd()

	require.Equal(t, []string{"1", "2", "3", "4"}, ids(n))
	require.False(t, n.Dragging())
	_, over := n.DragOverIndex()
	require.False(t, over)
	require.Zero(t, n.DragDepth())

	n.DragEnd()
	require.False(t, n.Dragging())
}

func TestDragOverIgnoredWhenIdle(t *testing.T) {
	n, _ := seeded(t)
	n.DragOver(2)
	_, over := n.DragOverIndex()
	require.False(t, over)
}

func TestDragCounterBalance(t *testing.T) {
	n, _ := seeded(t)
	require.True(t, n.DragStart("2"))

	// page body, then its label: child enter fires before parent leave.
	n.DragEnter()
	n.DragOver(0)
	n.DragEnter()
	n.DragLeave()
	idx, over := n.DragOverIndex()
	require.True(t, over)
	require.Equal(t, 0, idx)

	// label -> icon -> body
	n.DragEnter()
	n.DragLeave()
	n.DragEnter()
	n.DragLeave()
	_, over = n.DragOverIndex()
	require.True(t, over)
	require.Equal(t, 1, n.DragDepth())

	n.DragLeave()
	_, over = n.DragOverIndex()
	require.False(t, over)
	require.Zero(t, n.DragDepth())
	require.True(t, n.Dragging())
}

func TestDropTargetDecoration(t *testing.T) {
	n, _ := seeded(t)
	require.True(t, n.DragStart("2"))
	n.DragEnter()
	n.DragOver(1)
	v := n.View()
	require.True(t, v[1].Dragged)
	require.False(t, v[1].DropTarget, "dragged page is never its own drop target")

	n.DragOver(2)
	v = n.View()
	require.True(t, v[2].DropTarget)
	require.False(t, v[1].DropTarget)
}

func TestEndToEndScenario(t *testing.T) {
	n, _ := seeded(t)
	require.Equal(t, "2", n.ActiveID())

	require.True(t, n.DragStart("1"))
	n.DragEnter()
	n.DragOver(3)
	require.True(t, n.Drop(3))
	n.DragEnd()
	require.Equal(t, []string{"Details", "Other", "Info", "Ending"}, names(n))
	require.Equal(t, "2", n.ActiveID())

	require.True(t, n.SetAsFirst("4"))
	require.Equal(t, []string{"Ending", "Details", "Other", "Info"}, names(n))
}
