package nodelist

import (
	"errors"
)

var (
	InvalidIteratorError    = errors.New("The iterator's current node must not be null")
	BoundaryViolationError  = errors.New("The iterator cannot move past a boundary sentinel")
	NotDereferenceableError = errors.New("The iterator is not at a data node")
	NotRemovableError       = errors.New("The iterator's current node must be an attached data node")
)

// Iterator是只读的双向游标，按当前链接的结构对自身位置分类：
//
//	null:         current == nil
//	detached:     两个关系均缺失
//	attached:     两个关系均存在
//	before-start: 仅prev缺失
//	past-end:     仅next缺失
//
// 只读指的是不改写链接结构，Value返回的指针仍可修改载荷。
type Iterator[T any] struct {
	current *Node[T]
}

func NewIterator[T any](start *Node[T]) Iterator[T] {
	return Iterator[T]{current: start}
}

// Node returns the link the cursor currently references, usable as an
// attach target. Nil for a null cursor.
func (it Iterator[T]) Node() *Node[T] {
	return it.current
}

func (it Iterator[T]) IsAtNull() bool {
	return it.current == nil
}

func (it Iterator[T]) isAtDetachedNode() bool {
	return it.current.next == nil && it.current.prev == nil
}

func (it Iterator[T]) isAtAttachedNode() bool {
	return it.current.next != nil && it.current.prev != nil
}

func (it Iterator[T]) isAtDataNode() bool {
	return it.isAtAttachedNode() || it.isAtDetachedNode()
}

func (it Iterator[T]) isPastEnd() bool {
	return it.current.next == nil && it.current.prev != nil
}

func (it Iterator[T]) isBeforeStart() bool {
	return it.current.prev == nil && it.current.next != nil
}

func (it Iterator[T]) IsAtDetachedNode() (bool, error) {
	if it.current == nil {
		return false, InvalidIteratorError
	}
	return it.isAtDetachedNode(), nil
}

func (it Iterator[T]) IsAtAttachedNode() (bool, error) {
	if it.current == nil {
		return false, InvalidIteratorError
	}
	return it.isAtAttachedNode(), nil
}

// IsAtDataNode gates dereference: true at any payload node, attached or
// not, never at a sentinel (a sentinel always misses its outward relation).
func (it Iterator[T]) IsAtDataNode() (bool, error) {
	if it.current == nil {
		return false, InvalidIteratorError
	}
	return it.isAtDataNode(), nil
}

func (it Iterator[T]) IsPastEnd() (bool, error) {
	if it.current == nil {
		return false, InvalidIteratorError
	}
	return it.isPastEnd(), nil
}

func (it Iterator[T]) IsBeforeStart() (bool, error) {
	if it.current == nil {
		return false, InvalidIteratorError
	}
	return it.isBeforeStart(), nil
}

func (it *Iterator[T]) Next() error {
	if it.current == nil {
		return InvalidIteratorError
	}
	if it.isPastEnd() {
		return BoundaryViolationError
	}
	it.current = it.current.next
	return nil
}

func (it *Iterator[T]) Prev() error {
	if it.current == nil {
		return InvalidIteratorError
	}
	if it.isBeforeStart() {
		return BoundaryViolationError
	}
	it.current = it.current.prev
	return nil
}

// Value returns a reference to the payload at the cursor.
func (it Iterator[T]) Value() (*T, error) {
	if it.current == nil {
		return nil, InvalidIteratorError
	}
	if !it.isAtDataNode() {
		return nil, NotDereferenceableError
	}
	return &it.current.Value, nil
}

// Equal 故意不构成等价关系：空游标没有身份，与任何游标都不相等，
// 包括另一个空游标。以迭代器为循环终点时需要注意这一点。
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.current == other.current && it.current != nil
}

// MutIterator extends the read-only cursor with splice operations at the
// cursor position. The embedded Iterator is the widening conversion to the
// read-only view; there is no conversion back.
type MutIterator[T any] struct {
	Iterator[T]
}

func NewMutIterator[T any](start *Node[T]) MutIterator[T] {
	return MutIterator[T]{Iterator[T]{current: start}}
}

// AttachNodeBefore attaches node immediately before the cursor. Fails on a
// before-start cursor: there is no splice point on that side.
func (it MutIterator[T]) AttachNodeBefore(node *Node[T]) error {
	if it.current == nil {
		return InvalidIteratorError
	}
	if it.isBeforeStart() {
		return BoundaryViolationError
	}
	if node == nil {
		return InvalidTargetError
	}
	return node.AttachBefore(it.current)
}

// AttachNodeAfter attaches node immediately after the cursor. Fails on a
// past-end cursor.
func (it MutIterator[T]) AttachNodeAfter(node *Node[T]) error {
	if it.current == nil {
		return InvalidIteratorError
	}
	if it.isPastEnd() {
		return BoundaryViolationError
	}
	if node == nil {
		return InvalidTargetError
	}
	return node.AttachAfter(it.current)
}

// DetachAndAdvance removes the node at the cursor and moves the cursor to
// its old successor. This keeps the acting cursor valid while removing
// during traversal; any other cursor at the same node is invalidated.
func (it *MutIterator[T]) DetachAndAdvance() error {
	if it.current == nil {
		return InvalidIteratorError
	}
	if !it.isAtAttachedNode() {
		return NotRemovableError
	}
	next := it.current.next
	it.current.Detach()
	it.current = next
	return nil
}

// DetachAndRetreat removes the node at the cursor and moves the cursor to
// its old predecessor.
func (it *MutIterator[T]) DetachAndRetreat() error {
	if it.current == nil {
		return InvalidIteratorError
	}
	if !it.isAtAttachedNode() {
		return NotRemovableError
	}
	prev := it.current.prev
	it.current.Detach()
	it.current = prev
	return nil
}
