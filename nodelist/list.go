package nodelist

// NodeList拥有且仅拥有两个哨兵节点，载荷节点的存储始终归
// 调用方所有，链表只通过哨兵之间的链接发现它们。
// 空表即哨兵相连的闭环：beforeStart.next == &pastEnd。
//
// 不是线程安全的。链表不可复制（复制侵入式链需要分配新的
// 载荷节点，超出容器的权限），转移整条链使用MoveFrom。
type NodeList[T any] struct {
	beforeStart Node[T]
	pastEnd     Node[T]
}

func New[T any]() *NodeList[T] {
	l := &NodeList[T]{}
	l.Init()
	return l
}

// Init重建空环。新建或已被Clear的链表之外不要调用，
// 否则环上的节点会保留指向旧哨兵的链接。
func (l *NodeList[T]) Init() {
	l.beforeStart.prev = nil
	l.beforeStart.next = &l.pastEnd
	l.pastEnd.prev = &l.beforeStart
	l.pastEnd.next = nil
}

// Begin returns a cursor at the first data node; equal to End() when the
// list is empty. Forward traversal covers [Begin, End).
func (l *NodeList[T]) Begin() MutIterator[T] {
	return NewMutIterator(l.beforeStart.next)
}

// End returns a cursor at the past-end sentinel.
func (l *NodeList[T]) End() MutIterator[T] {
	return NewMutIterator(&l.pastEnd)
}

// RBegin returns a cursor at the last data node; equal to REnd() when the
// list is empty. Reverse traversal runs Prev() over [RBegin, REnd).
func (l *NodeList[T]) RBegin() MutIterator[T] {
	return NewMutIterator(l.pastEnd.prev)
}

// REnd returns a cursor at the before-start sentinel.
func (l *NodeList[T]) REnd() MutIterator[T] {
	return NewMutIterator(&l.beforeStart)
}

func (l *NodeList[T]) IsEmpty() bool {
	return l.beforeStart.next == &l.pastEnd
}

// Size 遍历计数，O(n)。节点可以绕过链表直接挂接或摘除，
// 缓存的计数必然失真，因此不维护计数器。
func (l *NodeList[T]) Size() int {
	size := 0
	for node := l.beforeStart.next; node != &l.pastEnd; node = node.next {
		size++
	}
	return size
}

// Clear severs every node on the chain, sentinels included, then re-forms
// the empty ring. Payload nodes are only detached, never destroyed; the
// list does not own them. No-op on an empty list.
func (l *NodeList[T]) Clear() {
	if l.IsEmpty() {
		return
	}

	node := &l.beforeStart
	for node != nil {
		next := node.next
		node.next = nil
		node.prev = nil
		node = next
	}
	l.Init()
	counter.Cleared++
}

// MoveFrom transfers src's entire chain into l and resets src to its empty
// ring. Any chain l currently holds is severed first. Self-move keeps the
// chain intact.
func (l *NodeList[T]) MoveFrom(src *NodeList[T]) {
	if src == nil || src == l {
		return
	}

	l.Clear()
	if src.IsEmpty() {
		return
	}

	// 搬走边界关系后必须把两端节点指回l的哨兵，
	// 否则遍历会走回src的哨兵
	first, last := src.beforeStart.next, src.pastEnd.prev
	l.beforeStart.next = first
	first.prev = &l.beforeStart
	l.pastEnd.prev = last
	last.next = &l.pastEnd

	src.Init()
	counter.Moved++
}

// Close is the destruction hook for a list: it severs every payload node
// still on the chain so none of them keeps links into the sentinels.
func (l *NodeList[T]) Close() error {
	l.Clear()
	return nil
}
