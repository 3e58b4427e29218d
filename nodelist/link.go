package nodelist

// Node是链表的唯一节点类型：一对链接关系加一个载荷值。
// 哨兵节点也使用此类型，只通过链接的缺失来区分位置，
// 不存在从裸链接到载荷节点的类型转换。
//
// 不变式：载荷节点的两个关系要么同时存在（已挂接）要么
// 同时缺失（已摘除）；哨兵朝外的一侧恒为nil。
type Node[T any] struct {
	next *Node[T]
	prev *Node[T]

	Value T
}

// NewNode返回一个已摘除的载荷节点，节点的存储归调用方所有。
func NewNode[T any](value T) *Node[T] {
	return &Node[T]{Value: value}
}

// Next返回同一条链上的下一个节点，链尾（past-end哨兵）返回nil。
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Prev返回同一条链上的上一个节点，链头（before-start哨兵）返回nil。
func (n *Node[T]) Prev() *Node[T] {
	return n.prev
}

// 只改写n与target两侧共四个节点的关系，调用前n必须已摘除、
// target.prev必须存在
func (n *Node[T]) spliceBefore(target *Node[T]) {
	n.next = target
	n.prev = target.prev
	target.prev.next = n
	target.prev = n
}

// 与spliceBefore对称，调用前target.next必须存在
func (n *Node[T]) spliceAfter(target *Node[T]) {
	n.prev = target
	n.next = target.next
	target.next.prev = n
	target.next = n
}

func (n *Node[T]) unlink() {
	if n.prev != nil {
		n.prev.next = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	}
	n.next = nil
	n.prev = nil
}
