package hashlife

import "fmt"

// CenteredSubnode returns the centered 2^l x 2^l square of a 2^(l+1)
// node n, one level down from n. Requires n.Level >= 2.
func (ds *NodeStore) CenteredSubnode(n *Node) (*Node, error) {
	if n.Level < 2 {
		return nil, fmt.Errorf("centered subnode: level %d < 2: %w", n.Level, ErrLevelTooLow)
	}
	return ds.Intern(n.NW.SE, n.NE.SW, n.SW.NE, n.SE.NW)
}

// CenteredHorizontal returns the level-l node straddling the seam
// between west (on the left) and east (on the right). Both must be
// at the same level l >= 1.
func (ds *NodeStore) CenteredHorizontal(west, east *Node) (*Node, error) {
	if west.Level < 1 || east.Level < 1 {
		return nil, fmt.Errorf("centered horizontal: west level %d, east level %d: %w", west.Level, east.Level, ErrLevelTooLow)
	}
	return ds.Intern(west.NE, east.NW, west.SE, east.SW)
}

// CenteredVertical returns the level-l node straddling the seam
// between north (on top) and south (below). Both must be at the same
// level l >= 1.
func (ds *NodeStore) CenteredVertical(north, south *Node) (*Node, error) {
	if north.Level < 1 || south.Level < 1 {
		return nil, fmt.Errorf("centered vertical: north level %d, south level %d: %w", north.Level, south.Level, ErrLevelTooLow)
	}
	return ds.Intern(north.SW, north.SE, south.NW, south.NE)
}

// Expand returns a level-(l+1) node whose centered 2^l x 2^l region
// equals n, surrounded by empty space. Requires n.Level >= 1.
func (ds *NodeStore) Expand(n *Node) (*Node, error) {
	if n.Level < 1 {
		return nil, fmt.Errorf("expand: level %d < 1: %w", n.Level, ErrLevelTooLow)
	}
	e := ds.Empty(n.Level - 1)
	nw, err := ds.Intern(e, e, e, n.NW)
	if err != nil {
		return nil, err
	}
	ne, err := ds.Intern(e, e, n.NE, e)
	if err != nil {
		return nil, err
	}
	sw, err := ds.Intern(e, n.SW, e, e)
	if err != nil {
		return nil, err
	}
	se, err := ds.Intern(n.SE, e, e, e)
	if err != nil {
		return nil, err
	}
	return ds.Intern(nw, ne, sw, se)
}

// Shrink returns CenteredSubnode(n) if the outer ring of 12
// sub-subnodes is entirely empty; otherwise it fails with
// ErrCannotShrink. Requires n.Level >= 2 (level-1 shrink would need
// an undefined empty(-1) and is rejected explicitly).
func (ds *NodeStore) Shrink(n *Node) (*Node, error) {
	if n.Level < 2 {
		return nil, fmt.Errorf("shrink: level %d < 2: %w", n.Level, ErrLevelTooLow)
	}
	e := ds.Empty(n.Level - 2)
	ring := [12]*Node{
		n.NW.NW, n.NW.NE, n.NW.SW,
		n.NE.NW, n.NE.NE, n.NE.SE,
		n.SW.NW, n.SW.SW, n.SW.SE,
		n.SE.NE, n.SE.SW, n.SE.SE,
	}
	for _, r := range ring {
		if r != e {
			return nil, fmt.Errorf("shrink: outer ring is not empty(%d): %w", n.Level-2, ErrCannotShrink)
		}
	}
	return ds.CenteredSubnode(n)
}
