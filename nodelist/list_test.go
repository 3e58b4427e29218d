package nodelist

import (
	"testing"
)

func TestEmptyList(t *testing.T) {
	list := New[int]()
	if !list.IsEmpty() {
		t.Error("New list should be empty")
	}
	if list.Size() != 0 {
		t.Error("Size should be 0, actually", list.Size())
	}
	if !list.Begin().Equal(list.End().Iterator) {
		t.Error("Begin should equal End on an empty list")
	}
	if !list.RBegin().Equal(list.REnd().Iterator) {
		t.Error("RBegin should equal REnd on an empty list")
	}
	if dump := DumpChain(list); dump != "" {
		t.Error("Dump of an empty list should be empty, actually", dump)
	}
}

func TestSizeTracksAttachedNodes(t *testing.T) {
	list, nodes := buildList(t, 1, 2, 3, 4)
	if list.Size() != 4 {
		t.Error("Size should be 4, actually", list.Size())
	}
	// 绕过链表直接摘除，Size仍然准确
	nodes[0].Detach()
	nodes[2].Detach()
	if list.Size() != 2 {
		t.Error("Size should be 2, actually", list.Size())
	}
	if values := listValues(list); len(values) != 2 || values[0] != 2 || values[1] != 4 {
		t.Error("Should be [2 4], actually", values)
	}
}

func TestClearSeversNodes(t *testing.T) {
	list, nodes := buildList(t, 1, 2, 3)
	list.Clear()

	if !list.IsEmpty() {
		t.Error("List should be empty after Clear")
	}
	for i, node := range nodes {
		if node.IsAttached() || node.Next() != nil || node.Prev() != nil {
			t.Error("Node", i, "should be fully severed after Clear")
		}
	}

	// 链表在Clear后可以继续使用，节点也可以重新挂接
	if err := nodes[1].AttachToList(list); err != nil {
		t.Fatal("Reattach after Clear failed:", err)
	}
	if dump := DumpChain(list); dump != "2" {
		t.Error("Should be 2, actually", dump)
	}

	empty := New[int]()
	empty.Clear() // no-op
	if !empty.IsEmpty() {
		t.Error("Clear on an empty list should keep it empty")
	}
}

func TestMoveFrom(t *testing.T) {
	source, _ := buildList(t, 1, 2, 3)
	dest := New[int]()

	dest.MoveFrom(source)
	if !source.IsEmpty() || source.Size() != 0 {
		t.Error("Source should be a valid empty list after move")
	}
	if dump := DumpChain(dest); dump != "1-2-3" {
		t.Error("Destination should hold 1-2-3, actually", dump)
	}
	if values := reverseValues(dest); len(values) != 3 || values[0] != 3 {
		t.Error("Reverse traversal after move should start at 3, actually", values)
	}

	// 源可以继续使用
	if err := NewNode(9).AttachToList(source); err != nil {
		t.Fatal("Attach to moved-from list failed:", err)
	}
	if dump := DumpChain(source); dump != "9" {
		t.Error("Moved-from list should hold 9, actually", dump)
	}
}

func TestMoveFromEmpty(t *testing.T) {
	dest, nodes := buildList(t, 1, 2)
	dest.MoveFrom(New[int]())
	if !dest.IsEmpty() {
		t.Error("Moving from an empty list should leave the destination empty")
	}
	if nodes[0].IsAttached() || nodes[1].IsAttached() {
		t.Error("The destination's old nodes should be severed")
	}
}

func TestMoveFromSelf(t *testing.T) {
	list, _ := buildList(t, 1, 2, 3)
	list.MoveFrom(list)
	if dump := DumpChain(list); dump != "1-2-3" {
		t.Error("Self-move should preserve the chain, actually", dump)
	}
}

func TestMoveFromOverwritesDestination(t *testing.T) {
	source, _ := buildList(t, 1, 2)
	dest, oldNodes := buildList(t, 8, 9)

	dest.MoveFrom(source)
	if dump := DumpChain(dest); dump != "1-2" {
		t.Error("Destination should hold 1-2, actually", dump)
	}
	if oldNodes[0].IsAttached() || oldNodes[1].IsAttached() {
		t.Error("The destination's previous chain should be severed, not leaked")
	}
}

func TestListClose(t *testing.T) {
	list, nodes := buildList(t, 1, 2)
	if err := list.Close(); err != nil {
		t.Error("Close failed:", err)
	}
	if nodes[0].IsAttached() || nodes[1].IsAttached() {
		t.Error("Close should sever the payload nodes")
	}
}

func TestCounterSwap(t *testing.T) {
	StatsCounter().GetCounter() // drain

	list, nodes := buildList(t, 1, 2, 3)
	nodes[0].Detach()
	other := New[int]()
	other.MoveFrom(list)
	other.Clear()

	c := StatsCounter().GetCounter().(*Counter)
	if c.Attached != 3 {
		t.Error("Attached should be 3, actually", c.Attached)
	}
	if c.Detached != 1 {
		t.Error("Detached should be 1, actually", c.Detached)
	}
	if c.Moved != 1 {
		t.Error("Moved should be 1, actually", c.Moved)
	}
	if c.Cleared != 1 {
		t.Error("Cleared should be 1, actually", c.Cleared)
	}

	c = StatsCounter().GetCounter().(*Counter)
	if c.Attached != 0 || c.Detached != 0 || c.Moved != 0 || c.Cleared != 0 {
		t.Error("GetCounter should clear the counts, actually", *c)
	}
}
