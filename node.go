package hashlife

import "fmt"

// Node is the quadtree value: four children of equal level. A Node is
// immutable once interned; the only fields that change after
// construction are the two memoized generation slots, and those are
// write-once.
//
// Level 0 nodes are leaves: DEAD and ALIVE, the two sentinel values
// handed out by every NodeStore. They never have children. A Node of
// level ℓ >= 1 has four children of level ℓ-1, representing a
// 2^ℓ x 2^ℓ square.
type Node struct {
	Level uint
	NW    *Node
	NE    *Node
	SW    *Node
	SE    *Node

	alive bool // meaningful only when Level == 0

	nextGen *Node
	leapGen *Node
}

// IsAlive reports whether a level-0 leaf node is the ALIVE sentinel.
// Calling it on a non-leaf node is a programmer error: unlike Python's
// truthiness overload on Cell/Node, this module never lets a Node
// coerce to a boolean implicitly.
func (n *Node) IsAlive() bool {
	if n.Level != 0 {
		panic(fmt.Sprintf("hashlife: IsAlive called on level %d node, only defined for level 0", n.Level))
	}
	return n.alive
}

func (n *Node) String() string {
	if n.Level == 0 {
		if n.alive {
			return "ALIVE"
		}
		return "DEAD"
	}
	return fmt.Sprintf("Node(level=%d)", n.Level)
}
