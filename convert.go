package hashlife

import "fmt"

// FromStateMap interns and returns the Node equivalent of sm. At
// level 0 this is one of the two sentinel leaves; otherwise it is the
// interned node built from the four recursive conversions of sm's
// quadrants.
func (ds *NodeStore) FromStateMap(sm *StateMap) (*Node, error) {
	if sm.level == 0 {
		return ds.Leaf(sm.Val().Alive()), nil
	}
	nw, err := ds.FromStateMap(sm.NW())
	if err != nil {
		return nil, err
	}
	ne, err := ds.FromStateMap(sm.NE())
	if err != nil {
		return nil, err
	}
	sw, err := ds.FromStateMap(sm.SW())
	if err != nil {
		return nil, err
	}
	se, err := ds.FromStateMap(sm.SE())
	if err != nil {
		return nil, err
	}
	return ds.Intern(nw, ne, sw, se)
}

// AsStateMap projects n into sm, writing cells into sm's backing
// grid. If sm is nil, a fresh 2^level x 2^level all-DEAD grid is
// allocated and wrapped first. If sm is non-nil and its level does
// not match n's, AsStateMap fails with ErrLevelMismatch.
func (ds *NodeStore) AsStateMap(n *Node, sm *StateMap) (*StateMap, error) {
	if sm != nil && sm.level != n.Level {
		return nil, fmt.Errorf("as state map: state map level %d != node level %d: %w", sm.level, n.Level, ErrLevelMismatch)
	}
	if sm == nil {
		side := 1 << n.Level
		rows := make([][]Cell, side)
		for i := range rows {
			rows[i] = make([]Cell, side)
		}
		sm = NewStateMap(n.Level, rows)
	}
	if n.Level == 0 {
		sm.rows[sm.rowStart][sm.colStart] = Cell(n.IsAlive())
		return sm, nil
	}
	if n.Level == 1 {
		sm.rows[sm.rowStart][sm.colStart] = Cell(n.NW.IsAlive())
		sm.rows[sm.rowStart][sm.colStart+1] = Cell(n.NE.IsAlive())
		sm.rows[sm.rowStart+1][sm.colStart] = Cell(n.SW.IsAlive())
		sm.rows[sm.rowStart+1][sm.colStart+1] = Cell(n.SE.IsAlive())
		return sm, nil
	}
	if _, err := ds.AsStateMap(n.NW, sm.NW()); err != nil {
		return nil, err
	}
	if _, err := ds.AsStateMap(n.NE, sm.NE()); err != nil {
		return nil, err
	}
	if _, err := ds.AsStateMap(n.SW, sm.SW()); err != nil {
		return nil, err
	}
	if _, err := ds.AsStateMap(n.SE, sm.SE()); err != nil {
		return nil, err
	}
	return sm, nil
}
