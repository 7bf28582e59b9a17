package nav

// DragStart begins a drag gesture on id. Disabled and unknown pages cannot be
// dragged.
func (n *Navigator) DragStart(id string) bool {
	p, ok := n.Page(id)
	if !ok || p.Disabled {
		return false
	}
	n.dragged = id
	return true
}

// DragOver marks index as the current drop target. It is overwritten as the
// pointer moves and ignored outside a gesture.
func (n *Navigator) DragOver(index int) {
	if !n.Dragging() {
		return
	}
	n.dragOver = index
}

// DragEnter is called each time the pointer enters any element of a page
// item during a drag. Entering a child fires before leaving its parent, so
// the depth never drops to zero while the pointer stays inside the item.
func (n *Navigator) DragEnter() { n.dragDepth++ }

// DragLeave is the counterpart of DragEnter. The drop target is cleared
// only once the depth returns to zero.
func (n *Navigator) DragLeave() {
	n.dragDepth--
	if n.dragDepth == 0 {
		n.dragOver = none
	}
}

// DragDepth reports the enter/leave nesting depth.
func (n *Navigator) DragDepth() int { return n.dragDepth }

// Drop ends the gesture by moving the dragged page in front of the page
// currently at index. Len() drops at the end of the list.
func (n *Navigator) Drop(index int) bool {
	n.dragDepth = 0
	if !n.Dragging() {
		return false
	}
	moved := n.Reorder(n.dragged, n.insertionIndex(n.dragged, index))
	n.endDrag()
	return moved
}

// insertionIndex converts a drop slot in the current list into the Reorder
// target, which counts positions with the dragged page already removed.
func (n *Navigator) insertionIndex(dragged string, slot int) int {
	if from := n.Index(dragged); from >= 0 && slot > from {
		return slot - 1
	}
	return slot
}

// DragEnd ends the gesture without moving anything. It follows every drop
// as well, so it must be idempotent.
func (n *Navigator) DragEnd() { n.endDrag() }

func (n *Navigator) endDrag() {
	n.dragged = ""
	n.dragOver = none
	n.dragDepth = 0
}
