package nodelist

import (
	"errors"
)

var InvalidTargetError = errors.New("Attach target must be a node with an established position")

// IsAttached reports whether both relations are present.
func (n *Node[T]) IsAttached() bool {
	return n.next != nil && n.prev != nil
}

// AttachBefore makes n the immediate predecessor of target, detaching n
// from wherever it currently is first. The target only needs a position on
// its previous side, so attaching before the past-end sentinel is how
// appending works.
func (n *Node[T]) AttachBefore(target *Node[T]) error {
	if target == nil || target.prev == nil {
		return InvalidTargetError
	}

	n.Detach()

	// 摘除n可能使target失去位置（target就是n自己），此时保持摘除状态
	if target.prev != nil {
		n.spliceBefore(target)
		counter.Attached++
	}
	return nil
}

// AttachAfter makes n the immediate successor of target. Symmetric to
// AttachBefore; the target needs a position on its next side, so attaching
// after the before-start sentinel is how prepending works.
func (n *Node[T]) AttachAfter(target *Node[T]) error {
	if target == nil || target.next == nil {
		return InvalidTargetError
	}

	n.Detach()

	if target.next != nil {
		n.spliceAfter(target)
		counter.Attached++
	}
	return nil
}

// AttachToList appends n to the list.
func (n *Node[T]) AttachToList(l *NodeList[T]) error {
	if l == nil {
		return InvalidTargetError
	}
	return n.AttachBefore(&l.pastEnd)
}

// Detach 将节点从所在链上摘除：把两个邻居的关系互相接上，
// 再清除自己的关系。对已摘除的节点调用是无害的空操作，不会失败。
func (n *Node[T]) Detach() {
	if n.next == nil && n.prev == nil {
		return
	}
	n.unlink()
	counter.Detached++
}

// Close is the destruction hook for a node: it detaches first so that
// recycling the node's storage never leaves its old neighbors pointing at
// freed memory. Call it before a node goes away while possibly attached.
func (n *Node[T]) Close() error {
	n.Detach()
	return nil
}
