package hashlife

import "fmt"

// Rule parameterizes the outer-totalistic birth/survive rule: a DEAD
// cell with a neighbor-alive count in Birth becomes ALIVE; an ALIVE
// cell with a neighbor-alive count in Survive stays ALIVE. Counts
// outside {0,...,8} are impossible by construction and ignored.
//
// Rule is a value passed into NewEngine rather than a hardcoded
// constant, so a caller can simulate rules other than Life's B3/S23.
type Rule struct {
	Birth   []int
	Survive []int
}

// DefaultRule is Conway's Game of Life: B3/S23.
func DefaultRule() Rule {
	return Rule{Birth: []int{3}, Survive: []int{2, 3}}
}

// Engine binds a Rule to a NodeStore and exposes the evolution
// operators (NextGen, LeapGen) as methods, so that the birth/survive
// sets are engine-level configuration rather than a global constant.
type Engine struct {
	store   *NodeStore
	rule    Rule
	birth   [9]bool
	survive [9]bool
}

// NewEngine returns an Engine that interns into store and evolves
// cells according to rule.
func NewEngine(store *NodeStore, rule Rule) *Engine {
	e := &Engine{store: store, rule: rule}
	for _, b := range rule.Birth {
		if b >= 0 && b <= 8 {
			e.birth[b] = true
		}
	}
	for _, s := range rule.Survive {
		if s >= 0 && s <= 8 {
			e.survive[s] = true
		}
	}
	return e
}

// Store returns the NodeStore this Engine interns into.
func (e *Engine) Store() *NodeStore {
	return e.store
}

// Rule returns the Rule this Engine was constructed with.
func (e *Engine) Rule() Rule {
	return e.rule
}

// CenteredSubnode forwards to the bound NodeStore's CenteredSubnode.
func (e *Engine) CenteredSubnode(n *Node) (*Node, error) {
	return e.store.CenteredSubnode(n)
}

// CenteredHorizontal forwards to the bound NodeStore's
// CenteredHorizontal.
func (e *Engine) CenteredHorizontal(west, east *Node) (*Node, error) {
	return e.store.CenteredHorizontal(west, east)
}

// CenteredVertical forwards to the bound NodeStore's CenteredVertical.
func (e *Engine) CenteredVertical(north, south *Node) (*Node, error) {
	return e.store.CenteredVertical(north, south)
}

// Expand forwards to the bound NodeStore's Expand.
func (e *Engine) Expand(n *Node) (*Node, error) {
	return e.store.Expand(n)
}

// Shrink forwards to the bound NodeStore's Shrink.
func (e *Engine) Shrink(n *Node) (*Node, error) {
	return e.store.Shrink(n)
}

func (e *Engine) evalRule(alive bool, neighbors int) bool {
	if alive {
		return e.survive[neighbors]
	}
	return e.birth[neighbors]
}

// NextGen returns the Node of level l-1 representing the inner
// centered square of n advanced exactly one generation. The result is
// memoized on n; a second call returns the cached Node without
// recomputing.
func (e *Engine) NextGen(n *Node) (*Node, error) {
	if n.nextGen != nil {
		return n.nextGen, nil
	}
	if n.Level < 2 {
		return nil, fmt.Errorf("next gen: level %d < 2: %w", n.Level, ErrLevelTooLow)
	}
	var (
		result *Node
		err    error
	)
	if n.Level == 2 {
		result, err = e.baseCase(n)
	} else {
		result, err = e.nextGenRecursive(n)
	}
	if err != nil {
		return nil, err
	}
	n.nextGen = result
	return result, nil
}

// LeapGen returns the Node of level l-1 representing the inner
// centered square of n advanced exactly 2^(l-2) generations. Memoized
// the same way as NextGen.
func (e *Engine) LeapGen(n *Node) (*Node, error) {
	if n.leapGen != nil {
		return n.leapGen, nil
	}
	if n.Level < 2 {
		return nil, fmt.Errorf("leap gen: level %d < 2: %w", n.Level, ErrLevelTooLow)
	}
	var (
		result *Node
		err    error
	)
	if n.Level == 2 {
		result, err = e.NextGen(n)
	} else {
		result, err = e.leapGenRecursive(n)
	}
	if err != nil {
		return nil, err
	}
	n.leapGen = result
	return result, nil
}

// baseCase computes the next generation of a level-2 (4x4) node
// directly: each of the four central cells' eight immediate neighbors
// is counted and the rule is applied via Engine.evalRule.
func (e *Engine) baseCase(n *Node) (*Node, error) {
	nwCount, neCount, swCount, seCount := neighborsAlive(n)
	nwAlive := e.evalRule(n.NW.SE.IsAlive(), nwCount)
	neAlive := e.evalRule(n.NE.SW.IsAlive(), neCount)
	swAlive := e.evalRule(n.SW.NE.IsAlive(), swCount)
	seAlive := e.evalRule(n.SE.NW.IsAlive(), seCount)
	return e.store.Intern(
		e.store.Leaf(nwAlive),
		e.store.Leaf(neAlive),
		e.store.Leaf(swAlive),
		e.store.Leaf(seAlive),
	)
}

func countAlive(cells ...*Node) int {
	c := 0
	for _, cell := range cells {
		if cell.IsAlive() {
			c++
		}
	}
	return c
}

// neighborsAlive counts, for a level-2 (4x4) node n, the Moore
// neighborhood of each of the four central cells (n.nw.se, n.ne.sw,
// n.sw.ne, n.se.nw).
func neighborsAlive(n *Node) (nwCount, neCount, swCount, seCount int) {
	nw, ne, sw, se := n.NW, n.NE, n.SW, n.SE
	nwCount = countAlive(nw.NW, nw.NE, nw.SW, ne.NW, ne.SW, sw.NW, sw.NE, se.NW)
	neCount = countAlive(nw.NE, nw.SE, ne.NW, ne.NE, ne.SE, sw.NE, se.NW, se.NE)
	swCount = countAlive(nw.SW, nw.SE, ne.SW, sw.NW, sw.SW, sw.SE, se.NW, se.SW)
	seCount = countAlive(nw.SE, ne.SW, ne.SE, sw.NE, sw.SE, se.NE, se.SW, se.SE)
	return
}

// nextGenRecursive implements the recursive case of NextGen for
// level >= 3 nodes: nine overlapping level-(l-1) sub-blocks, built via
// CenteredSubnode, grouped into four super quadrants and advanced one
// generation each via NextGen.
func (e *Engine) nextGenRecursive(n *Node) (*Node, error) {
	ds := e.store

	n00, err := ds.CenteredSubnode(n.NW)
	if err != nil {
		return nil, err
	}
	h01, err := ds.CenteredHorizontal(n.NW, n.NE)
	if err != nil {
		return nil, err
	}
	n01, err := ds.CenteredSubnode(h01)
	if err != nil {
		return nil, err
	}
	n02, err := ds.CenteredSubnode(n.NE)
	if err != nil {
		return nil, err
	}
	v10, err := ds.CenteredVertical(n.NW, n.SW)
	if err != nil {
		return nil, err
	}
	n10, err := ds.CenteredSubnode(v10)
	if err != nil {
		return nil, err
	}
	c11, err := ds.CenteredSubnode(n)
	if err != nil {
		return nil, err
	}
	n11, err := ds.CenteredSubnode(c11)
	if err != nil {
		return nil, err
	}
	v12, err := ds.CenteredVertical(n.NE, n.SE)
	if err != nil {
		return nil, err
	}
	n12, err := ds.CenteredSubnode(v12)
	if err != nil {
		return nil, err
	}
	n20, err := ds.CenteredSubnode(n.SW)
	if err != nil {
		return nil, err
	}
	h21, err := ds.CenteredHorizontal(n.SW, n.SE)
	if err != nil {
		return nil, err
	}
	n21, err := ds.CenteredSubnode(h21)
	if err != nil {
		return nil, err
	}
	n22, err := ds.CenteredSubnode(n.SE)
	if err != nil {
		return nil, err
	}

	qNW, err := ds.Intern(n00, n01, n10, n11)
	if err != nil {
		return nil, err
	}
	qNE, err := ds.Intern(n01, n02, n11, n12)
	if err != nil {
		return nil, err
	}
	qSW, err := ds.Intern(n10, n11, n20, n21)
	if err != nil {
		return nil, err
	}
	qSE, err := ds.Intern(n11, n12, n21, n22)
	if err != nil {
		return nil, err
	}

	rNW, err := e.NextGen(qNW)
	if err != nil {
		return nil, err
	}
	rNE, err := e.NextGen(qNE)
	if err != nil {
		return nil, err
	}
	rSW, err := e.NextGen(qSW)
	if err != nil {
		return nil, err
	}
	rSE, err := e.NextGen(qSE)
	if err != nil {
		return nil, err
	}

	return ds.Intern(rNW, rNE, rSW, rSE)
}

// leapGenRecursive mirrors nextGenRecursive but recurses via LeapGen
// twice: once to build the nine intermediate blocks (each advanced
// 2^(l-3) generations rather than merely centered-subnoded), and once
// more to advance the assembled super quadrants another 2^(l-3),
// for 2^(l-2) in total.
func (e *Engine) leapGenRecursive(n *Node) (*Node, error) {
	ds := e.store

	n00, err := e.LeapGen(n.NW)
	if err != nil {
		return nil, err
	}
	h01, err := ds.CenteredHorizontal(n.NW, n.NE)
	if err != nil {
		return nil, err
	}
	n01, err := e.LeapGen(h01)
	if err != nil {
		return nil, err
	}
	n02, err := e.LeapGen(n.NE)
	if err != nil {
		return nil, err
	}
	v10, err := ds.CenteredVertical(n.NW, n.SW)
	if err != nil {
		return nil, err
	}
	n10, err := e.LeapGen(v10)
	if err != nil {
		return nil, err
	}
	c11, err := ds.CenteredSubnode(n)
	if err != nil {
		return nil, err
	}
	n11, err := e.LeapGen(c11)
	if err != nil {
		return nil, err
	}
	v12, err := ds.CenteredVertical(n.NE, n.SE)
	if err != nil {
		return nil, err
	}
	n12, err := e.LeapGen(v12)
	if err != nil {
		return nil, err
	}
	n20, err := e.LeapGen(n.SW)
	if err != nil {
		return nil, err
	}
	h21, err := ds.CenteredHorizontal(n.SW, n.SE)
	if err != nil {
		return nil, err
	}
	n21, err := e.LeapGen(h21)
	if err != nil {
		return nil, err
	}
	n22, err := e.LeapGen(n.SE)
	if err != nil {
		return nil, err
	}

	qNW, err := ds.Intern(n00, n01, n10, n11)
	if err != nil {
		return nil, err
	}
	qNE, err := ds.Intern(n01, n02, n11, n12)
	if err != nil {
		return nil, err
	}
	qSW, err := ds.Intern(n10, n11, n20, n21)
	if err != nil {
		return nil, err
	}
	qSE, err := ds.Intern(n11, n12, n21, n22)
	if err != nil {
		return nil, err
	}

	rNW, err := e.LeapGen(qNW)
	if err != nil {
		return nil, err
	}
	rNE, err := e.LeapGen(qNE)
	if err != nil {
		return nil, err
	}
	rSW, err := e.LeapGen(qSW)
	if err != nil {
		return nil, err
	}
	rSE, err := e.LeapGen(qSE)
	if err != nil {
		return nil, err
	}

	return ds.Intern(rNW, rNE, rSW, rSE)
}
